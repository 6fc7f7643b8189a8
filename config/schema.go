package config

import (
	"converter-generator/override"
)

// CurrentVersion is the only configuration version understood.
const CurrentVersion = "1"

// File is the root configuration document.
type File struct {
	// Version of the configuration format.
	Version string `yaml:"version"`
	// OmitIfDefault is the converter-wide omit-if-default flag.
	OmitIfDefault bool `yaml:"omit_if_default,omitempty"`
	// Strict makes override keys that match no field an error.
	Strict bool `yaml:"strict,omitempty"`
	// Types lists per-type overrides.
	Types []TypeConfig `yaml:"types,omitempty"`
}

// TypeConfig holds the overrides of one record type.
type TypeConfig struct {
	// Type is the record type name.
	Type string `yaml:"type"`
	// OmitIfDefault replaces the converter-wide flag for this type when set.
	OmitIfDefault override.Tristate `yaml:"omit_if_default,omitempty"`
	// Fields maps field names to their overrides.
	Fields map[string]FieldConfig `yaml:"fields,omitempty"`
}

// FieldConfig is the YAML form of override.Override.
type FieldConfig struct {
	Rename        string            `yaml:"rename,omitempty"`
	OmitIfDefault override.Tristate `yaml:"omit_if_default,omitempty"`
}

// Override converts the entry into an override.Override.
func (f FieldConfig) Override() override.Override {
	return override.Override{Rename: f.Rename, OmitIfDefault: f.OmitIfDefault}
}

// Overrides returns the field overrides of the type.
func (t *TypeConfig) Overrides() override.Set {
	if t == nil || len(t.Fields) == 0 {
		return nil
	}

	set := make(override.Set, len(t.Fields))
	for name, f := range t.Fields {
		set[name] = f.Override()
	}

	return set
}

// OmitIfDefaultFor returns the omit-if-default flag that applies to a type,
// falling back to the file-wide flag.
func (f *File) OmitIfDefaultFor(names ...string) bool {
	return f.OmitIfDefaultOr(f.OmitIfDefault, names...)
}

// OmitIfDefaultOr returns the flag set on the type entry, or global when the
// entry is missing or inherits.
func (f *File) OmitIfDefaultOr(global bool, names ...string) bool {
	if tc, ok := f.Lookup(names...); ok {
		if v, set := tc.OmitIfDefault.Bool(); set {
			return v
		}
	}

	return global
}

// StrictOr returns the strict flag of the file, or global when f is nil.
func (f *File) StrictOr(global bool) bool {
	if f == nil {
		return global
	}

	return f.Strict || global
}

// Lookup returns the first type entry matching any of names.
func (f *File) Lookup(names ...string) (*TypeConfig, bool) {
	if f == nil {
		return nil, false
	}

	for _, name := range names {
		for i := range f.Types {
			if f.Types[i].Type == name {
				return &f.Types[i], true
			}
		}
	}

	return nil, false
}

// Overrides returns the field overrides for the first type entry matching any of names.
func (f *File) Overrides(names ...string) override.Set {
	tc, _ := f.Lookup(names...)
	return tc.Overrides()
}

// TypeNames returns the configured type names in file order.
func (f *File) TypeNames() []string {
	if f == nil {
		return nil
	}

	names := make([]string, len(f.Types))
	for i, t := range f.Types {
		names[i] = t.Type
	}

	return names
}
