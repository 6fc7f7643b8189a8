package converter

import (
	"encoding"
	"encoding/base64"
	"fmt"
	"reflect"
	"strconv"
	"time"

	"converter-generator/generic"
	"converter-generator/internal/metrics"
	"converter-generator/record"
)

// Structure builds a value of type t from generic data, the inverse of
// Unstructure. Numbers convert between numeric types only when no
// information is lost.
func (c *Converter) Structure(data any, t reflect.Type) (any, error) {
	if t == nil {
		return nil, fmt.Errorf("%w: nil target type", ErrUnsupportedType)
	}

	v, err := c.structure(data, t)
	if err != nil {
		return nil, err
	}

	return v.Interface(), nil
}

// StructureAs builds a T from generic data.
func StructureAs[T any](c *Converter, data any) (T, error) {
	var zero T

	v, err := c.structure(data, reflect.TypeFor[T]())
	if err != nil {
		return zero, err
	}

	out, _ := v.Interface().(T)

	return out, nil
}

func (c *Converter) structure(data any, t reflect.Type) (reflect.Value, error) {
	if hook, ok := c.structureHook(t); ok {
		c.metrics.RecordHook(record.TypeName(t), metrics.DirectionStructure)

		v, err := hook(data, t)
		if err != nil {
			return reflect.Value{}, err
		}

		return valueOf(v, t)
	}

	k := KindOf(t)

	switch {
	case k == KindBool:
		rv := reflect.ValueOf(data)
		if data == nil || rv.Kind() != reflect.Bool {
			return reflect.Value{}, mismatch(data, t)
		}

		out := reflect.New(t).Elem()
		out.SetBool(rv.Bool())

		return out, nil

	case k == KindString:
		rv := reflect.ValueOf(data)
		if data == nil || rv.Kind() != reflect.String {
			return reflect.Value{}, mismatch(data, t)
		}

		out := reflect.New(t).Elem()
		out.SetString(rv.String())

		return out, nil

	case k.IsSigned():
		i, ok := intValue(data)
		out := reflect.New(t).Elem()

		if !ok || out.OverflowInt(i) {
			return reflect.Value{}, mismatch(data, t)
		}

		out.SetInt(i)

		return out, nil

	case k.IsUnsigned():
		u, ok := uintValue(data)
		out := reflect.New(t).Elem()

		if !ok || out.OverflowUint(u) {
			return reflect.Value{}, mismatch(data, t)
		}

		out.SetUint(u)

		return out, nil

	case k.IsFloat():
		f, ok := floatValue(data)
		out := reflect.New(t).Elem()

		if !ok || out.OverflowFloat(f) {
			return reflect.Value{}, mismatch(data, t)
		}

		out.SetFloat(f)

		return out, nil

	case k == KindTime:
		return structureTime(data, t)

	case k == KindDuration:
		return structureDuration(data, t)

	case k == KindText:
		return structureText(data, t)

	case k == KindGeneric:
		return structureGeneric(data, t)

	case k == KindInterface:
		if data == nil {
			return reflect.Zero(t), nil
		}

		return valueOf(data, t)

	case k == KindPointer:
		if data == nil {
			return reflect.Zero(t), nil
		}

		elem, err := c.structure(data, t.Elem())
		if err != nil {
			return reflect.Value{}, err
		}

		ptr := reflect.New(t.Elem())
		ptr.Elem().Set(elem)

		return ptr, nil

	case k == KindSlice:
		return c.structureSlice(data, t)

	case k == KindArray:
		return c.structureArray(data, t)

	case k == KindMap:
		return c.structureMap(data, t)

	case k == KindRecord:
		return c.structureRecord(data, t)

	default:
		return reflect.Value{}, fmt.Errorf("%w: %s", ErrUnsupportedType, t)
	}
}

func structureTime(data any, t reflect.Type) (reflect.Value, error) {
	switch v := data.(type) {
	case time.Time:
		return reflect.ValueOf(v), nil
	case string:
		tm, err := time.Parse(time.RFC3339Nano, v)
		if err != nil {
			return reflect.Value{}, fmt.Errorf("%w: %w", ErrTypeMismatch, err)
		}

		return reflect.ValueOf(tm), nil
	default:
		return reflect.Value{}, mismatch(data, t)
	}
}

func structureDuration(data any, t reflect.Type) (reflect.Value, error) {
	switch v := data.(type) {
	case time.Duration:
		return reflect.ValueOf(v), nil
	case string:
		d, err := time.ParseDuration(v)
		if err != nil {
			return reflect.Value{}, fmt.Errorf("%w: %w", ErrTypeMismatch, err)
		}

		return reflect.ValueOf(d), nil
	}

	if n, ok := intValue(data); ok {
		return reflect.ValueOf(time.Duration(n)), nil
	}

	return reflect.Value{}, mismatch(data, t)
}

func structureText(data any, t reflect.Type) (reflect.Value, error) {
	if data != nil && reflect.TypeOf(data) == t {
		return reflect.ValueOf(data), nil
	}

	if !reflect.PointerTo(t).Implements(unmarshalerType) {
		return reflect.Value{}, fmt.Errorf("%w: %s has no UnmarshalText", ErrUnsupportedType, t)
	}

	var text []byte

	switch v := data.(type) {
	case string:
		text = []byte(v)
	case []byte:
		text = v
	default:
		return reflect.Value{}, mismatch(data, t)
	}

	ptr := reflect.New(t)
	if err := ptr.Interface().(encoding.TextUnmarshaler).UnmarshalText(text); err != nil {
		return reflect.Value{}, fmt.Errorf("%w: %w", ErrTypeMismatch, err)
	}

	return ptr.Elem(), nil
}

func structureGeneric(data any, t reflect.Type) (reflect.Value, error) {
	var m *generic.Map

	switch v := data.(type) {
	case *generic.Map:
		m = v
	case generic.Map:
		m = &v
	case map[string]any:
		m = generic.FromMap(v)
	case nil:
	default:
		return reflect.Value{}, mismatch(data, t)
	}

	if t == genericPtrType {
		return reflect.ValueOf(m), nil
	}

	if m == nil {
		m = generic.NewMap(0)
	}

	return reflect.ValueOf(m).Elem(), nil
}

func (c *Converter) structureSlice(data any, t reflect.Type) (reflect.Value, error) {
	if data == nil {
		return reflect.Zero(t), nil
	}

	if t.Elem().Kind() == reflect.Uint8 && KindOf(t.Elem()) == KindUint8 {
		switch v := data.(type) {
		case []byte:
			return reflect.ValueOf(append([]byte(nil), v...)).Convert(t), nil
		case string:
			b, err := base64.StdEncoding.DecodeString(v)
			if err != nil {
				return reflect.Value{}, fmt.Errorf("%w: %w", ErrTypeMismatch, err)
			}

			return reflect.ValueOf(b).Convert(t), nil
		}
	}

	rv := reflect.ValueOf(data)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return reflect.Value{}, mismatch(data, t)
	}

	out := reflect.MakeSlice(t, rv.Len(), rv.Len())
	if err := c.fill(out, rv); err != nil {
		return reflect.Value{}, err
	}

	return out, nil
}

func (c *Converter) structureArray(data any, t reflect.Type) (reflect.Value, error) {
	rv := reflect.ValueOf(data)
	if data == nil || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) || rv.Len() != t.Len() {
		return reflect.Value{}, mismatch(data, t)
	}

	out := reflect.New(t).Elem()
	if err := c.fill(out, rv); err != nil {
		return reflect.Value{}, err
	}

	return out, nil
}

// fill structures every element of src into dst, which has the same length.
func (c *Converter) fill(dst, src reflect.Value) error {
	elem := dst.Type().Elem()

	for i := range src.Len() {
		v, err := c.structure(src.Index(i).Interface(), elem)
		if err != nil {
			return err
		}

		dst.Index(i).Set(v)
	}

	return nil
}

func (c *Converter) structureMap(data any, t reflect.Type) (reflect.Value, error) {
	if data == nil {
		return reflect.Zero(t), nil
	}

	entries, ok := mapEntries(data)
	if !ok {
		return reflect.Value{}, mismatch(data, t)
	}

	out := reflect.MakeMapWithSize(t, len(entries))

	for _, e := range entries {
		key, err := mapKey(e.key, t.Key())
		if err != nil {
			return reflect.Value{}, err
		}

		v, err := c.structure(e.value, t.Elem())
		if err != nil {
			return reflect.Value{}, err
		}

		out.SetMapIndex(key, v)
	}

	return out, nil
}

func (c *Converter) structureRecord(data any, t reflect.Type) (reflect.Value, error) {
	if data != nil && reflect.TypeOf(data) == t {
		return reflect.ValueOf(data), nil
	}

	pair, err := c.pairFor(t)
	if err != nil {
		return reflect.Value{}, err
	}

	v, err := pair.Structure(data, t)
	c.metrics.RecordConversion(record.TypeName(t), metrics.DirectionStructure, err)

	if err != nil {
		return reflect.Value{}, err
	}

	return reflect.ValueOf(v), nil
}

type entry struct {
	key   string
	value any
}

// mapEntries lists the entries of any string-keyed map, in order for *generic.Map.
func mapEntries(data any) ([]entry, bool) {
	switch m := data.(type) {
	case *generic.Map:
		if m == nil {
			return nil, true
		}

		out := make([]entry, 0, m.Len())
		m.Range(func(key string, value any) bool {
			out = append(out, entry{key, value})
			return true
		})

		return out, true
	case generic.Map:
		return mapEntries(&m)
	}

	rv := reflect.ValueOf(data)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}

	out := make([]entry, 0, rv.Len())

	iter := rv.MapRange()
	for iter.Next() {
		out = append(out, entry{iter.Key().String(), iter.Value().Interface()})
	}

	return out, true
}

// mapKey parses a map key rendered by mapKeyString.
func mapKey(key string, t reflect.Type) (reflect.Value, error) {
	out := reflect.New(t).Elem()

	switch k := KindOf(t); {
	case k == KindString:
		out.SetString(key)
	case k.IsSigned():
		i, err := strconv.ParseInt(key, 10, t.Bits())
		if err != nil {
			return reflect.Value{}, fmt.Errorf("%w: map key %q: %w", ErrTypeMismatch, key, err)
		}

		out.SetInt(i)
	case k.IsUnsigned():
		u, err := strconv.ParseUint(key, 10, t.Bits())
		if err != nil {
			return reflect.Value{}, fmt.Errorf("%w: map key %q: %w", ErrTypeMismatch, key, err)
		}

		out.SetUint(u)
	case k == KindText:
		return structureText(key, t)
	default:
		return reflect.Value{}, fmt.Errorf("%w: map key %s", ErrUnsupportedType, t)
	}

	return out, nil
}

// valueOf converts v into a reflect.Value assignable to t.
func valueOf(v any, t reflect.Type) (reflect.Value, error) {
	if v == nil {
		switch t.Kind() {
		case reflect.Interface, reflect.Pointer, reflect.Slice, reflect.Map:
			return reflect.Zero(t), nil
		default:
			return reflect.Value{}, mismatch(v, t)
		}
	}

	rv := reflect.ValueOf(v)
	if !rv.Type().AssignableTo(t) {
		return reflect.Value{}, mismatch(v, t)
	}

	out := reflect.New(t).Elem()
	out.Set(rv)

	return out, nil
}

func mismatch(data any, t reflect.Type) error {
	return fmt.Errorf("%w: cannot structure %T as %s", ErrTypeMismatch, data, t)
}
