// Package plan compiles a record's field list and override configuration
// into per-field instructions consumed by the converter builders and the
// source generator.
//
// Planning pipeline:
//  1. Check overrides against the field list → diagnostics
//     (unknown keys with suggestions, colliding external keys,
//     omission requested on fields without a default)
//  2. For each field in declaration order:
//     - external key: rename if present, else the field name
//     - unstructure op: direct, or one of the omit ops when the field has a
//       default and omission is active for it
//     - structure op: required without a default, optional otherwise
//  3. The builders turn each instruction into a small closure; the generator
//     turns it into statements.
package plan
