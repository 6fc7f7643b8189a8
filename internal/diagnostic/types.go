package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"converter-generator/internal/common"
)

// Diagnostic codes reported while planning converters.
const (
	CodeUnknownOverride    = "unknown-override"
	CodeRenameCollision    = "rename-collision"
	CodeOmitWithoutDefault = "omit-without-default"
	CodeUnresolvedType     = "unresolved-type"
	CodeUnknownType        = "unknown-type"
	CodeDuplicateType      = "duplicate-type"
	CodeInvalidConfig      = "invalid-config"
)

// Diagnostics holds all diagnostic information collected for one or more types.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code identifies the kind of problem, one of the Code constants.
	Code string
	// Message is the human-readable description.
	Message string
	// Type is the record type this relates to (if any).
	Type string
	// Field is the field or override key this relates to (if any).
	Field string
	// Suggestions are potential fixes or alternatives.
	Suggestions []string
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// Add appends d to the list matching its severity.
func (d *Diagnostics) Add(diag Diagnostic) {
	switch diag.Severity {
	case SeverityError:
		d.Errors = append(d.Errors, diag)
	case SeverityWarning:
		d.Warnings = append(d.Warnings, diag)
	default:
		d.Infos = append(d.Infos, diag)
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, typeName, field string, suggestions ...string) {
	d.Add(Diagnostic{SeverityError, code, message, typeName, field, suggestions})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, typeName, field string, suggestions ...string) {
	d.Add(Diagnostic{SeverityWarning, code, message, typeName, field, suggestions})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, typeName, field string, suggestions ...string) {
	d.Add(Diagnostic{SeverityInfo, code, message, typeName, field, suggestions})
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// IsEmpty returns true if nothing was reported.
func (d *Diagnostics) IsEmpty() bool {
	return len(d.Errors)+len(d.Warnings)+len(d.Infos) == 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// All returns every diagnostic, errors first.
func (d *Diagnostics) All() []Diagnostic {
	all := make([]Diagnostic, 0, len(d.Errors)+len(d.Warnings)+len(d.Infos))
	all = append(all, d.Errors...)
	all = append(all, d.Warnings...)

	return append(all, d.Infos...)
}

// WithCode returns the diagnostics of any severity carrying code.
func (d *Diagnostics) WithCode(code string) []Diagnostic {
	var out []Diagnostic

	for _, diag := range d.All() {
		if diag.Code == code {
			out = append(out, diag)
		}
	}

	return out
}

// Error returns a combined error from all error diagnostics, or nil if there are none.
func (d *Diagnostics) Error() error {
	if !d.HasErrors() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Type != "" {
		prefix = append(prefix, "["+d.Type+"]")
	}

	if d.Field != "" {
		prefix = append(prefix, d.Field)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(d.Suggestions) > 0 {
		msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(d.Suggestions, ", "))
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
