package record

import (
	"errors"
	"fmt"
)

var (
	ErrNotStruct        = errors.New("record type must be a struct")
	ErrUnknownField     = errors.New("unknown field")
	ErrDuplicateField   = errors.New("duplicate field name")
	ErrInvalidDefault   = errors.New("invalid default")
	ErrUnresolvedType   = errors.New("unresolved type reference")
	ErrMissingArgument  = errors.New("missing constructor argument")
	ErrUnknownArgument  = errors.New("unknown constructor argument")
	ErrArgumentMismatch = errors.New("constructor argument has the wrong type")
)

// ResolveError reports a field whose forward reference could not be resolved.
type ResolveError struct {
	Type  string // Owning record type
	Field string // External field name
	Ref   string // Referenced type name
	Err   error
}

func (e *ResolveError) Error() string {
	msg := fmt.Sprintf("%s.%s: cannot resolve %q", e.Type, e.Field, e.Ref)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

func (e *ResolveError) Unwrap() error {
	return e.Err
}
