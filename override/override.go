// Package override describes per-field policy consumed by the converter
// builders: an optional external rename and an omit-if-default setting.
//
// The zero Override is neutral: the field keeps its own name and follows the
// global omit-if-default flag of the converter.
//
//	overrides := override.Set{
//		"Count": override.New(override.OmitIfDefault(true)),
//		"Y":     override.New(override.Rename("yy")),
//	}
package override

// Override is the policy attached to a single field.
type Override struct {
	// Rename is the external key used for the field in both directions.
	// Empty means the field name is used.
	Rename string
	// OmitIfDefault controls whether the field is left out of unstructured
	// output when its value equals its current default.
	OmitIfDefault Tristate
}

// Option configures an Override built by New.
type Option func(*Override)

// New builds an Override from the given options. Every option is optional.
func New(opts ...Option) Override {
	var o Override
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Rename sets the external key of the field.
func Rename(name string) Option {
	return func(o *Override) {
		o.Rename = name
	}
}

// OmitIfDefault forces omission on or off regardless of the global flag.
func OmitIfDefault(omit bool) Option {
	return func(o *Override) {
		o.OmitIfDefault = TristateOf(omit)
	}
}

// IsNeutral returns true if the override changes nothing.
func (o Override) IsNeutral() bool {
	return o.Rename == "" && o.OmitIfDefault == Inherit
}

// Key returns the external key for a field named field.
func (o Override) Key(field string) string {
	if o.Rename != "" {
		return o.Rename
	}

	return field
}

// Omits reports whether omission applies given the converter-wide flag.
// Whether the field has a default at all is decided by the caller.
func (o Override) Omits(global bool) bool {
	switch o.OmitIfDefault {
	case Always:
		return true
	case Never:
		return false
	default:
		return global
	}
}

// Set maps field names to their overrides.
type Set map[string]Override

// For returns the override for field, or the neutral override.
func (s Set) For(field string) Override {
	if o, ok := s[field]; ok {
		return o
	}

	return Override{}
}

// Merge returns a new Set holding s overlaid with other.
// Entries of other win on conflict.
func (s Set) Merge(other Set) Set {
	out := make(Set, len(s)+len(other))
	for k, v := range s {
		out[k] = v
	}

	for k, v := range other {
		out[k] = v
	}

	return out
}
