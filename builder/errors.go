package builder

import (
	"errors"
	"fmt"
)

var (
	ErrMissingField = errors.New("missing required field")
	ErrNotAMap      = errors.New("input is not a map")
	ErrWrongType    = errors.New("value has the wrong type")
)

// MissingFieldError reports a required field whose key is absent from the input.
type MissingFieldError struct {
	Type  string // Record type being structured
	Field string // Field name
	Key   string // External key that was looked up
}

func (e *MissingFieldError) Error() string {
	if e.Key != e.Field {
		return fmt.Sprintf("%s: missing required field %q (key %q)", e.Type, e.Field, e.Key)
	}

	return fmt.Sprintf("%s: missing required field %q", e.Type, e.Field)
}

// Is makes errors.Is(err, ErrMissingField) match.
func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField
}

// StructureError reports a failure building an instance of Type.
type StructureError struct {
	Type string
	Err  error
}

func (e *StructureError) Error() string {
	return fmt.Sprintf("structuring %s: %v", e.Type, e.Err)
}

func (e *StructureError) Unwrap() error {
	return e.Err
}
