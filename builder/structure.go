package builder

import (
	"fmt"
	"reflect"

	"converter-generator/generic"
	"converter-generator/internal/plan"
	"converter-generator/override"
	"converter-generator/record"
)

// lookupFunc reads a key from the input map.
type lookupFunc func(key string) (any, bool)

// fieldReader reads one field from the input into the constructor arguments.
type fieldReader func(get lookupFunc, args record.Args) error

// BuildStructure generates the structure function of d.
//
// Forward references are resolved against ns first; generation fails if any
// remains unresolved. Each field is read from its external key and converted
// with conv into its declared type. A field without a default must be
// present; a field with a default is passed to the constructor only when
// present, so the constructor applies the type's own default otherwise.
func BuildStructure(
	d *record.Descriptor, conv Structurer, ns *record.Namespace, overrides override.Set,
) (StructureFunc, error) {
	resolved, err := ns.Resolve(d)
	if err != nil {
		return nil, fmt.Errorf("generating structure function for %s: %w", d.Name(), err)
	}

	r := plan.FromDescriptor(resolved)

	if diags := plan.Check(r, overrides); diags.HasErrors() {
		return nil, fmt.Errorf("generating structure function for %s: %w", r.Name, diags.Error())
	}

	fields := plan.Structure(r, overrides)
	readers := make([]fieldReader, len(fields))

	for i, f := range fields {
		readers[i] = compileReader(f, conv, r.Name)
	}

	typ := resolved.Type
	name := r.Name
	construct := resolved.Constructor

	return func(data any, t reflect.Type) (any, error) {
		if t != nil && t != typ && t != reflect.PointerTo(typ) {
			return nil, &StructureError{Type: name, Err: fmt.Errorf("%w: target %s", ErrWrongType, t)}
		}

		get, ok := lookup(data)
		if !ok {
			return nil, &StructureError{Type: name, Err: fmt.Errorf("%w: got %T", ErrNotAMap, data)}
		}

		args := make(record.Args, len(readers))
		for _, read := range readers {
			if err := read(get, args); err != nil {
				return nil, err
			}
		}

		inst, err := construct(args)
		if err != nil {
			return nil, &StructureError{Type: name, Err: err}
		}

		if t != nil && t.Kind() == reflect.Pointer {
			ptr := reflect.New(typ)
			ptr.Elem().Set(reflect.ValueOf(inst))

			return ptr.Interface(), nil
		}

		return inst, nil
	}, nil
}

// compileReader turns one planned field into its reader.
func compileReader(f plan.Field, conv Structurer, typeName string) fieldReader {
	key, param, fieldType := f.Key, f.Param, f.Spec.Type.Type

	if f.Op == plan.OpOptional {
		return func(get lookupFunc, args record.Args) error {
			raw, ok := get(key)
			if !ok {
				return nil
			}

			v, err := conv.Structure(raw, fieldType)
			if err != nil {
				return err
			}

			args[param] = v

			return nil
		}
	}

	field := f.Spec.Name

	return func(get lookupFunc, args record.Args) error {
		raw, ok := get(key)
		if !ok {
			return &MissingFieldError{Type: typeName, Field: field, Key: key}
		}

		v, err := conv.Structure(raw, fieldType)
		if err != nil {
			return err
		}

		args[param] = v

		return nil
	}
}

// lookup adapts the supported map shapes.
func lookup(data any) (lookupFunc, bool) {
	switch m := data.(type) {
	case *generic.Map:
		if m == nil {
			return nil, false
		}

		return m.Get, true
	case generic.Map:
		return m.Get, true
	case map[string]any:
		return func(key string) (any, bool) {
			v, ok := m[key]
			return v, ok
		}, true
	default:
		return nil, false
	}
}

// Build generates both functions of d.
func Build(
	d *record.Descriptor, conv Converter, ns *record.Namespace, omitIfDefault bool, overrides override.Set,
) (*Pair, error) {
	un, err := BuildUnstructure(d, conv, omitIfDefault, overrides)
	if err != nil {
		return nil, err
	}

	st, err := BuildStructure(d, conv, ns, overrides)
	if err != nil {
		return nil, err
	}

	return &Pair{Type: d.Type, Unstructure: un, Structure: st}, nil
}
