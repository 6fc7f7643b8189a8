package record

import (
	"fmt"
	"reflect"
	"strings"

	"gopkg.in/yaml.v3"
)

// Struct tag keys recognised by Describe.
const (
	TagName    = "conv"    // external name, or "-" to skip the field
	TagDefault = "default" // static default, parsed as YAML into the field type
)

// Option adjusts a Descriptor while it is being built.
type Option func(d *Descriptor) error

// Of describes the record type T.
func Of[T any](opts ...Option) (*Descriptor, error) {
	return Describe(reflect.TypeFor[T](), opts...)
}

// Describe builds a Descriptor for the struct type t.
// Exported fields are listed in declaration order; options are applied
// afterwards, and a reflection-based constructor is installed unless
// WithConstructor provides one.
func Describe(t reflect.Type, opts ...Option) (*Descriptor, error) {
	if t == nil || t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %v", ErrNotStruct, t)
	}

	d := &Descriptor{Type: t}
	seen := make(map[string]bool)

	for i := range t.NumField() {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}

		name := sf.Name
		if tag, ok := sf.Tag.Lookup(TagName); ok {
			tagName, _, _ := strings.Cut(tag, ",")
			if tagName == "-" {
				continue
			}

			if tagName != "" {
				name = tagName
			}
		}

		if seen[name] {
			return nil, fmt.Errorf("%w: %s.%s", ErrDuplicateField, TypeName(t), name)
		}

		seen[name] = true

		field := FieldSpec{
			Name:   name,
			GoName: sf.Name,
			Index:  i,
			GoType: sf.Type,
			Type:   Resolved(sf.Type),
		}

		if lit, ok := sf.Tag.Lookup(TagDefault); ok {
			v, err := parseDefault(lit, sf.Type)
			if err != nil {
				return nil, fmt.Errorf("%w for %s.%s: %w", ErrInvalidDefault, TypeName(t), name, err)
			}

			field.Default = Static(v)
		}

		d.Fields = append(d.Fields, field)
	}

	for _, opt := range opts {
		if err := opt(d); err != nil {
			return nil, fmt.Errorf("describing %s: %w", TypeName(t), err)
		}
	}

	if d.Constructor == nil {
		d.Constructor = NewConstructor(d)
	}

	return d, nil
}

// parseDefault decodes a default tag value into a value of type t.
func parseDefault(lit string, t reflect.Type) (any, error) {
	ptr := reflect.New(t)
	if err := yaml.Unmarshal([]byte(lit), ptr.Interface()); err != nil {
		return nil, err
	}

	return ptr.Elem().Interface(), nil
}

// field returns a pointer to the field named name inside d.
func (d *Descriptor) field(name string) (*FieldSpec, error) {
	for i := range d.Fields {
		if d.Fields[i].Name == name {
			return &d.Fields[i], nil
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrUnknownField, name)
}

// WithDefault sets a static default. The value must be assignable to the field.
func WithDefault(name string, value any) Option {
	return func(d *Descriptor) error {
		f, err := d.field(name)
		if err != nil {
			return err
		}

		if !assignable(value, f.GoType) {
			return fmt.Errorf("%w for %s: %T is not assignable to %s", ErrInvalidDefault, name, value, f.GoType)
		}

		f.Default = Static(Coerce(value, f.GoType))

		return nil
	}
}

// WithFactory sets a default computed by calling fn each time it is needed.
func WithFactory(name string, fn func() any) Option {
	return func(d *Descriptor) error {
		f, err := d.field(name)
		if err != nil {
			return err
		}

		f.Default = Factory(fn)

		return nil
	}
}

// WithSelfFactory sets a default computed from the instance the field belongs to.
func WithSelfFactory(name string, fn func(self any) any) Option {
	return func(d *Descriptor) error {
		f, err := d.field(name)
		if err != nil {
			return err
		}

		f.Default = SelfFactory(fn)

		return nil
	}
}

// WithFactoryOf is the typed form of WithFactory.
func WithFactoryOf[F any](name string, fn func() F) Option {
	return WithFactory(name, func() any { return fn() })
}

// WithSelfFactoryOf is the typed form of WithSelfFactory.
// T must be the record type itself; self factories receive the record by value.
func WithSelfFactoryOf[T, F any](name string, fn func(self T) F) Option {
	return func(d *Descriptor) error {
		if got := reflect.TypeFor[T](); got != d.Type {
			return fmt.Errorf("%w for %s: self factory takes %s, want %s", ErrInvalidDefault, name, got, d.Type)
		}

		return WithSelfFactory(name, func(self any) any { return fn(self.(T)) })(d)
	}
}

// WithTypeRef declares the field's type by name, to be resolved by a Namespace.
// The resolved type must be assignable to the Go field.
func WithTypeRef(name, ref string) Option {
	return func(d *Descriptor) error {
		f, err := d.field(name)
		if err != nil {
			return err
		}

		f.Type = Named(ref)

		return nil
	}
}

// WithConstructor replaces the reflection-based constructor.
func WithConstructor(c Constructor) Option {
	return func(d *Descriptor) error {
		d.Constructor = c
		return nil
	}
}

// Coerce returns v as a value of type t, so that it compares equal to a
// field of that type holding the same value. nil becomes the zero value of t.
// Values that cannot become a t are returned unchanged.
func Coerce(v any, t reflect.Type) any {
	if t == nil {
		return v
	}

	if v == nil {
		if !assignable(nil, t) {
			return v
		}

		return reflect.Zero(t).Interface()
	}

	rv := reflect.ValueOf(v)
	if rv.Type() == t || t.Kind() == reflect.Interface {
		return v
	}

	if rv.Type().AssignableTo(t) || (rv.Kind() == t.Kind() && rv.Type().ConvertibleTo(t)) {
		return rv.Convert(t).Interface()
	}

	// Numbers convert across kinds only when no precision is lost.
	if isNumber(rv.Kind()) && isNumber(t.Kind()) {
		out := rv.Convert(t)
		if out.Convert(rv.Type()).Equal(rv) {
			return out.Interface()
		}
	}

	return v
}

func isNumber(k reflect.Kind) bool {
	return (k >= reflect.Int && k <= reflect.Float64) && k != reflect.Uintptr
}

func assignable(v any, t reflect.Type) bool {
	if v == nil {
		switch t.Kind() {
		case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map, reflect.Func, reflect.Chan:
			return true
		default:
			return false
		}
	}

	return reflect.TypeOf(v).AssignableTo(t)
}
