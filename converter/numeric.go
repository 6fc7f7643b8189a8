package converter

import (
	"encoding/json"
	"math"
	"reflect"
)

// 2^63 as a float64; every integral float below it in magnitude fits int64.
const twoPow63 = float64(1 << 63)

// intValue extracts an integer from any numeric input without losing
// information: floats must be integral, unsigned values must fit int64.
func intValue(data any) (int64, bool) {
	if n, ok := data.(json.Number); ok {
		if i, err := n.Int64(); err == nil {
			return i, true
		}

		f, err := n.Float64()
		if err != nil {
			return 0, false
		}

		return floatToInt(f)
	}

	if data == nil {
		return 0, false
	}

	rv := reflect.ValueOf(data)
	switch k := KindOf(rv.Type()); {
	case k.IsSigned():
		return rv.Int(), true
	case k.IsUnsigned():
		u := rv.Uint()
		return int64(u), u <= math.MaxInt64
	case k.IsFloat():
		return floatToInt(rv.Float())
	default:
		return 0, false
	}
}

// uintValue is intValue for unsigned targets.
func uintValue(data any) (uint64, bool) {
	if n, ok := data.(json.Number); ok {
		f, err := n.Float64()
		if err != nil || f < 0 {
			return 0, false
		}

		if i, err := n.Int64(); err == nil {
			return uint64(i), true
		}

		return floatToUint(f)
	}

	if data == nil {
		return 0, false
	}

	rv := reflect.ValueOf(data)
	switch k := KindOf(rv.Type()); {
	case k.IsSigned():
		i := rv.Int()
		return uint64(i), i >= 0
	case k.IsUnsigned():
		return rv.Uint(), true
	case k.IsFloat():
		return floatToUint(rv.Float())
	default:
		return 0, false
	}
}

// floatValue extracts a float from any numeric input. Integers must be
// exactly representable.
func floatValue(data any) (float64, bool) {
	if n, ok := data.(json.Number); ok {
		f, err := n.Float64()
		return f, err == nil
	}

	if data == nil {
		return 0, false
	}

	rv := reflect.ValueOf(data)
	switch k := KindOf(rv.Type()); {
	case k.IsSigned():
		i := rv.Int()
		f := float64(i)

		return f, f < twoPow63 && int64(f) == i
	case k.IsUnsigned():
		u := rv.Uint()
		f := float64(u)

		return f, f < 2*twoPow63 && uint64(f) == u
	case k.IsFloat():
		return rv.Float(), true
	default:
		return 0, false
	}
}

func floatToInt(f float64) (int64, bool) {
	if f != math.Trunc(f) || f < -twoPow63 || f >= twoPow63 {
		return 0, false
	}

	return int64(f), true
}

func floatToUint(f float64) (uint64, bool) {
	if f != math.Trunc(f) || f < 0 || f >= 2*twoPow63 {
		return 0, false
	}

	return uint64(f), true
}
