package builder

import (
	"fmt"
	"reflect"

	"converter-generator/generic"
	"converter-generator/internal/plan"
	"converter-generator/override"
	"converter-generator/record"
)

// fieldWriter emits one field of self into out. boxed is self as an interface
// value, handed to self factories.
type fieldWriter func(self reflect.Value, boxed any, out *generic.Map) error

// BuildUnstructure generates the unstructure function of d.
//
// Fields are written in declaration order under their external key. A field
// with a default is left out when omission is active for it (its override
// forces it, or inherits and omitIfDefault is set) and its value equals the
// default evaluated at call time. Values are converted with conv; defaults
// are compared as is.
func BuildUnstructure(
	d *record.Descriptor, conv Unstructurer, omitIfDefault bool, overrides override.Set,
) (UnstructureFunc, error) {
	r := plan.FromDescriptor(d)

	if diags := plan.Check(r, overrides); diags.HasErrors() {
		return nil, fmt.Errorf("generating unstructure function for %s: %w", r.Name, diags.Error())
	}

	fields := plan.Unstructure(r, omitIfDefault, overrides)
	writers := make([]fieldWriter, len(fields))

	for i, f := range fields {
		writers[i] = compileWriter(f, conv)
	}

	typ := d.Type
	name := r.Name

	return func(instance any) (*generic.Map, error) {
		self := reflect.ValueOf(instance)
		if self.Kind() == reflect.Pointer && self.Type().Elem() == typ {
			if self.IsNil() {
				return nil, nil
			}

			self = self.Elem()
			instance = self.Interface()
		}

		if !self.IsValid() || self.Type() != typ {
			return nil, fmt.Errorf("%w: unstructuring %s, got %T", ErrWrongType, name, instance)
		}

		out := generic.NewMap(len(writers))
		for _, w := range writers {
			if err := w(self, instance, out); err != nil {
				return nil, err
			}
		}

		return out, nil
	}, nil
}

// compileWriter turns one planned field into its writer.
func compileWriter(f plan.Field, conv Unstructurer) fieldWriter {
	idx, key := f.Spec.Index, f.Key

	emit := func(value any, out *generic.Map) error {
		return Emit(conv, out, key, value)
	}

	equal := equalFunc(f.Spec.GoType)

	switch f.Op {
	case plan.OpOmitStatic:
		def := record.Coerce(f.Spec.Default.Value, f.Spec.GoType)

		return func(self reflect.Value, _ any, out *generic.Map) error {
			cur := self.Field(idx).Interface()
			if equal(cur, def) {
				return nil
			}

			return emit(cur, out)
		}

	case plan.OpOmitFactory:
		factory, goType := f.Spec.Default.Factory, f.Spec.GoType

		return func(self reflect.Value, _ any, out *generic.Map) error {
			cur := self.Field(idx).Interface()
			if equal(cur, record.Coerce(factory(), goType)) {
				return nil
			}

			return emit(cur, out)
		}

	case plan.OpOmitSelfFactory:
		factory, goType := f.Spec.Default.SelfFactory, f.Spec.GoType

		return func(self reflect.Value, boxed any, out *generic.Map) error {
			cur := self.Field(idx).Interface()
			if equal(cur, record.Coerce(factory(boxed), goType)) {
				return nil
			}

			return emit(cur, out)
		}

	default:
		return func(self reflect.Value, _ any, out *generic.Map) error {
			return emit(self.Field(idx).Interface(), out)
		}
	}
}

// equalFunc picks the comparison used for omission. Types whose values can
// always be compared with == use it; anything that may hold slices, maps or
// functions falls back to reflect.DeepEqual.
func equalFunc(t reflect.Type) func(a, b any) bool {
	if t != nil && strictlyComparable(t) {
		return func(a, b any) bool { return a == b }
	}

	return reflect.DeepEqual
}

func strictlyComparable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Interface, reflect.Slice, reflect.Map, reflect.Func:
		return false
	case reflect.Array:
		return strictlyComparable(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if !strictlyComparable(t.Field(i).Type) {
				return false
			}
		}

		return true
	default:
		return t.Comparable()
	}
}
