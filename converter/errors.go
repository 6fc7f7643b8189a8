package converter

import "errors"

var (
	// ErrUnsupportedType is returned for values no conversion rule covers.
	ErrUnsupportedType = errors.New("unsupported type")
	// ErrTypeMismatch is returned when input data does not fit the target type.
	ErrTypeMismatch = errors.New("type mismatch")
	// ErrUnknownOverride is returned in strict mode for override keys that
	// name no field.
	ErrUnknownOverride = errors.New("override names no field")
)
