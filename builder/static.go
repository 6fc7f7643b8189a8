package builder

import (
	"fmt"
	"reflect"

	"converter-generator/generic"
)

// The helpers below are called by generated source files. They apply the
// same rules as the functions built at runtime.

// LookupFunc reads a key from structuring input.
type LookupFunc func(key string) (any, bool)

// Lookup adapts structuring input for the record type named typeName.
// Input that is not a supported map yields a *StructureError wrapping ErrNotAMap.
func Lookup(typeName string, data any) (LookupFunc, error) {
	get, ok := lookup(data)
	if !ok {
		return nil, &StructureError{Type: typeName, Err: fmt.Errorf("%w: got %T", ErrNotAMap, data)}
	}

	return LookupFunc(get), nil
}

// Emit converts value with c and stores it under key.
func Emit(c Unstructurer, out *generic.Map, key string, value any) error {
	v, err := c.Unstructure(value)
	if err != nil {
		return err
	}

	out.Set(key, v)

	return nil
}

// Field converts raw into a T with c.
func Field[T any](c Structurer, raw any) (T, error) {
	var zero T

	v, err := c.Structure(raw, reflect.TypeFor[T]())
	if err != nil {
		return zero, err
	}

	if v == nil {
		return zero, nil
	}

	out, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("%w: converter returned %T for %s", ErrWrongType, v, reflect.TypeFor[T]())
	}

	return out, nil
}

// Equal compares a field value with its default the way omission does.
func Equal[T any](value, def T) bool {
	return equalFunc(reflect.TypeFor[T]())(value, def)
}
