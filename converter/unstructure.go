package converter

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"
	"time"

	"converter-generator/internal/metrics"
	"converter-generator/record"
)

// Unstructure converts v into generic data.
//
// Scalars become their builtin type (a named int becomes int), time.Time
// becomes RFC 3339 text, time.Duration and text marshalers become strings,
// slices and arrays become []any, maps become map[string]any and records
// become *generic.Map. Nil pointers, slices, maps and interfaces become nil.
func (c *Converter) Unstructure(v any) (any, error) {
	if v == nil {
		return nil, nil
	}

	return c.unstructure(reflect.ValueOf(v))
}

func (c *Converter) unstructure(rv reflect.Value) (any, error) {
	t := rv.Type()

	if hook, ok := c.unstructureHook(t); ok {
		c.metrics.RecordHook(record.TypeName(t), metrics.DirectionUnstructure)
		return hook(rv.Interface())
	}

	switch k := KindOf(t); k {
	case KindBool, KindString,
		KindInt, KindInt8, KindInt16, KindInt32, KindInt64,
		KindUint, KindUint8, KindUint16, KindUint32, KindUint64,
		KindFloat32, KindFloat64:
		if bt := basicTypes[k]; t != bt {
			rv = rv.Convert(bt)
		}

		return rv.Interface(), nil

	case KindTime:
		return rv.Interface().(time.Time).Format(time.RFC3339Nano), nil

	case KindDuration:
		return time.Duration(rv.Int()).String(), nil

	case KindText:
		text, err := rv.Interface().(encoding.TextMarshaler).MarshalText()
		if err != nil {
			return nil, fmt.Errorf("unstructuring %s: %w", t, err)
		}

		return string(text), nil

	case KindGeneric:
		return rv.Interface(), nil

	case KindPointer, KindInterface:
		if rv.IsNil() {
			return nil, nil
		}

		return c.unstructure(rv.Elem())

	case KindSlice:
		if rv.IsNil() {
			return nil, nil
		}

		if t.Elem().Kind() == reflect.Uint8 && KindOf(t.Elem()) == KindUint8 {
			return append([]byte(nil), rv.Bytes()...), nil
		}

		return c.unstructureList(rv)

	case KindArray:
		return c.unstructureList(rv)

	case KindMap:
		return c.unstructureMap(rv)

	case KindRecord:
		return c.unstructureRecord(rv)

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, t)
	}
}

func (c *Converter) unstructureList(rv reflect.Value) (any, error) {
	out := make([]any, rv.Len())

	for i := range out {
		v, err := c.unstructure(rv.Index(i))
		if err != nil {
			return nil, err
		}

		out[i] = v
	}

	return out, nil
}

func (c *Converter) unstructureMap(rv reflect.Value) (any, error) {
	if rv.IsNil() {
		return nil, nil
	}

	out := make(map[string]any, rv.Len())

	iter := rv.MapRange()
	for iter.Next() {
		key, err := mapKeyString(iter.Key())
		if err != nil {
			return nil, err
		}

		v, err := c.unstructure(iter.Value())
		if err != nil {
			return nil, err
		}

		out[key] = v
	}

	return out, nil
}

func (c *Converter) unstructureRecord(rv reflect.Value) (any, error) {
	t := rv.Type()

	pair, err := c.pairFor(t)
	if err != nil {
		return nil, err
	}

	out, err := pair.Unstructure(rv.Interface())
	c.metrics.RecordConversion(record.TypeName(t), metrics.DirectionUnstructure, err)

	if err != nil {
		return nil, err
	}

	return out, nil
}

// mapKeyString renders a map key. String, integer and text marshaler keys
// are supported.
func mapKeyString(key reflect.Value) (string, error) {
	switch k := KindOf(key.Type()); {
	case k == KindString:
		return key.String(), nil
	case k.IsSigned():
		return strconv.FormatInt(key.Int(), 10), nil
	case k.IsUnsigned():
		return strconv.FormatUint(key.Uint(), 10), nil
	case k == KindText:
		text, err := key.Interface().(encoding.TextMarshaler).MarshalText()
		if err != nil {
			return "", fmt.Errorf("unstructuring map key %s: %w", key.Type(), err)
		}

		return string(text), nil
	default:
		return "", fmt.Errorf("%w: map key %s", ErrUnsupportedType, key.Type())
	}
}
