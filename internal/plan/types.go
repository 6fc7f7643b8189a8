package plan

import (
	"converter-generator/internal/diagnostic"
	"converter-generator/record"
)

//go:generate go tool stringer -type=Op -trimprefix=Op -output=op_string.go

// Op is the instruction planned for one field.
type Op int

const (
	// OpDirect - always emit the converted value.
	OpDirect Op = iota
	// OpOmitStatic - emit only if the value differs from the stored default.
	OpOmitStatic
	// OpOmitFactory - emit only if the value differs from factory().
	OpOmitFactory
	// OpOmitSelfFactory - emit only if the value differs from factory(instance).
	OpOmitSelfFactory
	// OpRequired - the key must be present when structuring.
	OpRequired
	// OpOptional - the key may be absent; the constructor applies the default.
	OpOptional
)

// Omits returns true for the conditional unstructure ops.
func (o Op) Omits() bool {
	return o == OpOmitStatic || o == OpOmitFactory || o == OpOmitSelfFactory
}

// Record is the planner's view of a record type.
type Record struct {
	// Name is the package-qualified type name, used in diagnostics.
	Name string
	// Fields in declaration order.
	Fields []record.FieldSpec
}

// FromDescriptor returns the planner's view of d.
func FromDescriptor(d *record.Descriptor) Record {
	return Record{Name: d.Name(), Fields: d.Fields}
}

// Field is one planned field.
type Field struct {
	// Spec is the field being converted.
	Spec record.FieldSpec
	// Key is the external key in the generic map.
	Key string
	// Param is the constructor argument name.
	Param string
	// Op is the instruction for this direction.
	Op Op
}

// Plan holds both directions for a record type.
type Plan struct {
	// Type is the package-qualified record type name.
	Type string
	// Unstructure lists the unstructure instructions in declaration order.
	Unstructure []Field
	// Structure lists the structure instructions in declaration order.
	Structure []Field
	// Diagnostics found while checking the overrides.
	Diagnostics diagnostic.Diagnostics
}
