package converter

import (
	"encoding"
	"reflect"
	"time"

	"converter-generator/generic"
)

//go:generate go tool stringer -type=Kind -output=kind_string.go

// Kind classifies a Go type by the conversion rule applied to it.
type Kind int

const (
	KindInvalid Kind = iota // unsupported

	KindBool
	KindInt
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindFloat32
	KindFloat64
	KindString
	KindTime      // time.Time as RFC 3339 text
	KindDuration  // time.Duration as text, e.g. "1h30m"
	KindText      // encoding.TextMarshaler
	KindGeneric   // generic.Map, passed through
	KindPointer   // nil or the converted element
	KindSlice     // []any
	KindArray     // []any of fixed length
	KindMap       // map[string]any
	KindInterface // dynamic value
	KindRecord    // struct handled by generated functions

	// KindTotal is the number of kinds defined.
	KindTotal = int(iota)
)

func (k Kind) IsNumber() bool {
	return k.IsInteger() || k.IsFloat()
}

func (k Kind) IsInteger() bool {
	return k.IsSigned() || k.IsUnsigned()
}

func (k Kind) IsFloat() bool {
	switch k {
	default:
		return false
	case KindFloat32, KindFloat64:
		return true
	}
}

func (k Kind) IsSigned() bool {
	switch k {
	default:
		return false
	case KindInt, KindInt8, KindInt16, KindInt32, KindInt64:
		return true
	}
}

func (k Kind) IsUnsigned() bool {
	switch k {
	default:
		return false
	case KindUint, KindUint8, KindUint16, KindUint32, KindUint64:
		return true
	}
}

// IsScalar reports kinds that unstructure to a bool, number or string.
func (k Kind) IsScalar() bool {
	switch k {
	case KindBool, KindString, KindTime, KindDuration, KindText:
		return true
	default:
		return k.IsNumber()
	}
}

var (
	timeType        = reflect.TypeFor[time.Time]()
	durationType    = reflect.TypeFor[time.Duration]()
	genericType     = reflect.TypeFor[generic.Map]()
	genericPtrType  = reflect.TypeFor[*generic.Map]()
	marshalerType   = reflect.TypeFor[encoding.TextMarshaler]()
	unmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()
)

var basicKinds = map[reflect.Kind]Kind{
	reflect.Bool:    KindBool,
	reflect.Int:     KindInt,
	reflect.Int8:    KindInt8,
	reflect.Int16:   KindInt16,
	reflect.Int32:   KindInt32,
	reflect.Int64:   KindInt64,
	reflect.Uint:    KindUint,
	reflect.Uint8:   KindUint8,
	reflect.Uint16:  KindUint16,
	reflect.Uint32:  KindUint32,
	reflect.Uint64:  KindUint64,
	reflect.Float32: KindFloat32,
	reflect.Float64: KindFloat64,
	reflect.String:  KindString,
}

// basicTypes holds the builtin type of every scalar kind. Named scalar types
// unstructure to their builtin type.
var basicTypes = map[Kind]reflect.Type{
	KindBool:    reflect.TypeFor[bool](),
	KindInt:     reflect.TypeFor[int](),
	KindInt8:    reflect.TypeFor[int8](),
	KindInt16:   reflect.TypeFor[int16](),
	KindInt32:   reflect.TypeFor[int32](),
	KindInt64:   reflect.TypeFor[int64](),
	KindUint:    reflect.TypeFor[uint](),
	KindUint8:   reflect.TypeFor[uint8](),
	KindUint16:  reflect.TypeFor[uint16](),
	KindUint32:  reflect.TypeFor[uint32](),
	KindUint64:  reflect.TypeFor[uint64](),
	KindFloat32: reflect.TypeFor[float32](),
	KindFloat64: reflect.TypeFor[float64](),
	KindString:  reflect.TypeFor[string](),
}

// KindOf returns the conversion kind of rtype.
func KindOf(rtype reflect.Type) Kind {
	if rtype == nil {
		return KindInvalid
	}

	switch rtype {
	case timeType:
		return KindTime
	case durationType:
		return KindDuration
	case genericType, genericPtrType:
		return KindGeneric
	}

	if rtype.Kind() != reflect.Interface && rtype.Kind() != reflect.Pointer && rtype.Implements(marshalerType) {
		return KindText
	}

	if k, ok := basicKinds[rtype.Kind()]; ok {
		return k
	}

	switch rtype.Kind() {
	case reflect.Pointer:
		return KindPointer
	case reflect.Slice:
		return KindSlice
	case reflect.Array:
		return KindArray
	case reflect.Map:
		return KindMap
	case reflect.Interface:
		return KindInterface
	case reflect.Struct:
		return KindRecord
	default:
		return KindInvalid
	}
}
