package builder

import (
	"reflect"

	"converter-generator/generic"
)

// Unstructurer converts any value into its generic form.
type Unstructurer interface {
	Unstructure(v any) (any, error)
}

// Structurer converts generic data into a value of type t.
type Structurer interface {
	Structure(data any, t reflect.Type) (any, error)
}

// Converter is both directions, as implemented by the converter registry.
type Converter interface {
	Unstructurer
	Structurer
}

// UnstructureFunc converts a record instance (or a pointer to one) into a map.
// A nil pointer yields a nil map.
type UnstructureFunc func(instance any) (*generic.Map, error)

// StructureFunc builds a record instance from generic map data.
type StructureFunc func(data any, t reflect.Type) (any, error)

// Pair holds the generated functions of one record type.
type Pair struct {
	Type        reflect.Type
	Unstructure UnstructureFunc
	Structure   StructureFunc
}
