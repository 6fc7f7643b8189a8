package record

import (
	"fmt"
	"reflect"
)

// NewConstructor returns the reflection-based constructor for d.
//
// Supplied arguments are assigned first. Absent fields fall back to their
// static or factory default; self factories run last, in declaration order,
// and see every other field already populated. A field without a default and
// without an argument is an error. If the result implements Validator, its
// Validate error is returned.
func NewConstructor(d *Descriptor) Constructor {
	params := make(map[string]int, len(d.Fields))
	for i, f := range d.Fields {
		params[f.ParamName()] = i
	}

	return func(args Args) (any, error) {
		for name := range args {
			if _, ok := params[name]; !ok {
				return nil, fmt.Errorf("%w %q for %s", ErrUnknownArgument, name, d.Name())
			}
		}

		ptr := reflect.New(d.Type)
		v := ptr.Elem()

		var deferred []FieldSpec

		for _, f := range d.Fields {
			if arg, ok := args[f.ParamName()]; ok {
				if err := assign(v.Field(f.Index), arg); err != nil {
					return nil, fmt.Errorf("argument %q: %w", f.ParamName(), err)
				}

				continue
			}

			switch f.Default.Kind {
			case DefaultNone:
				return nil, fmt.Errorf("%w %q for %s", ErrMissingArgument, f.ParamName(), d.Name())
			case DefaultSelfFactory:
				deferred = append(deferred, f)
			default:
				if err := assign(v.Field(f.Index), f.Default.Current(nil)); err != nil {
					return nil, fmt.Errorf("default of %q: %w", f.Name, err)
				}
			}
		}

		for _, f := range deferred {
			if err := assign(v.Field(f.Index), f.Default.Current(v.Interface())); err != nil {
				return nil, fmt.Errorf("default of %q: %w", f.Name, err)
			}
		}

		if val, ok := ptr.Interface().(Validator); ok {
			if err := val.Validate(); err != nil {
				return nil, err
			}
		}

		return v.Interface(), nil
	}
}

// assign stores value into dst, accepting nil for nillable kinds.
func assign(dst reflect.Value, value any) error {
	if value == nil {
		if !assignable(nil, dst.Type()) {
			return fmt.Errorf("%w: nil for %s", ErrArgumentMismatch, dst.Type())
		}

		dst.SetZero()

		return nil
	}

	rv := reflect.ValueOf(value)
	if !rv.Type().AssignableTo(dst.Type()) {
		return fmt.Errorf("%w: %s for %s", ErrArgumentMismatch, rv.Type(), dst.Type())
	}

	dst.Set(rv)

	return nil
}
