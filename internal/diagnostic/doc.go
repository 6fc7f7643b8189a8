// Package diagnostic collects problems found while planning converters:
// override keys that match no field, renames that collide, omission settings
// that cannot take effect and type references that cannot be resolved.
//
// Diagnostics are grouped by severity. Errors abort generation; warnings and
// infos are reported to the user (logged by the converter, printed by the CLI).
package diagnostic
