// Package record describes record types: Go structs seen as an ordered list
// of named, typed fields, each with an optional default.
//
// Key types:
//   - Descriptor: the struct type, its fields in declaration order and the
//     constructor used to build instances from named arguments
//   - FieldSpec: external name, Go field index, declared type and default
//   - TypeRef: a resolved reflect.Type or a name resolved later through a Namespace
//   - Default: none, a static value, a factory or a factory taking the instance
//
// Descriptors are built once with Describe (or Of) and are read-only
// afterwards. Field types that can only be named once the whole type graph is
// known are declared with WithTypeRef and resolved by Namespace.Resolve
// before any structuring function is generated.
package record
