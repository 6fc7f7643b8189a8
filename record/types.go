package record

import (
	"fmt"
	"reflect"
	"strings"
)

// TypeRef is the declared type of a field. It is either resolved (Type set)
// or a forward reference by name that a Namespace resolves later.
type TypeRef struct {
	Name string
	Type reflect.Type
}

// Resolved returns a TypeRef for a known type.
func Resolved(t reflect.Type) TypeRef {
	return TypeRef{Type: t}
}

// Named returns an unresolved TypeRef.
func Named(name string) TypeRef {
	return TypeRef{Name: name}
}

// IsResolved returns true if the reference points at a concrete type.
func (r TypeRef) IsResolved() bool {
	return r.Type != nil
}

// String returns a human-readable representation of the TypeRef.
func (r TypeRef) String() string {
	if r.Type != nil {
		return r.Type.String()
	}

	return "ref:" + r.Name
}

// FieldSpec describes one field of a record type.
type FieldSpec struct {
	Name    string       // External name, from the conv tag or the Go field name
	GoName  string       // Go field name
	Index   int          // Field index in the struct
	GoType  reflect.Type // Storage type of the Go field
	Type    TypeRef      // Declared type used for structuring
	Default Default      // Default, if any
}

// HasDefault returns true if the field declares a default.
func (f FieldSpec) HasDefault() bool {
	return f.Default.IsSet()
}

// ParamName returns the constructor argument name for the field.
// A single leading underscore marks internal storage and is stripped.
func (f FieldSpec) ParamName() string {
	if strings.HasPrefix(f.Name, "_") {
		return f.Name[1:]
	}

	return f.Name
}

// Args holds named constructor arguments keyed by FieldSpec.ParamName.
type Args map[string]any

// Constructor builds an instance of a record type from named arguments.
// Arguments for fields with defaults may be absent; the constructor then
// applies the default itself.
type Constructor func(args Args) (any, error)

// Validator is implemented by record types that check their own invariants
// after construction.
type Validator interface {
	Validate() error
}

// Descriptor is the ordered field list of a record type.
type Descriptor struct {
	Type        reflect.Type
	Fields      []FieldSpec
	Constructor Constructor
}

// Name returns the package-qualified type name.
func (d *Descriptor) Name() string {
	return TypeName(d.Type)
}

// Field returns the field with the given external name.
func (d *Descriptor) Field(name string) (FieldSpec, bool) {
	for _, f := range d.Fields {
		if f.Name == name {
			return f, true
		}
	}

	return FieldSpec{}, false
}

// FieldNames returns the external field names in declaration order.
func (d *Descriptor) FieldNames() []string {
	names := make([]string, len(d.Fields))
	for i, f := range d.Fields {
		names[i] = f.Name
	}

	return names
}

// IsResolved returns true if no field carries a forward reference.
func (d *Descriptor) IsResolved() bool {
	for _, f := range d.Fields {
		if !f.Type.IsResolved() {
			return false
		}
	}

	return true
}

// Construct builds an instance with the descriptor's constructor.
func (d *Descriptor) Construct(args Args) (any, error) {
	if d.Constructor == nil {
		return nil, fmt.Errorf("%s has no constructor", d.Name())
	}

	return d.Constructor(args)
}

// TypeName returns a package-qualified name for t, e.g. "shop.Order".
func TypeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}

	if t.Name() == "" || t.PkgPath() == "" {
		return t.String()
	}

	return t.PkgPath() + "." + t.Name()
}
