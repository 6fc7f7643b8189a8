package override

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

//go:generate go tool stringer -type=Tristate -output=tristate_string.go

// Tristate is an optional boolean.
type Tristate int

const (
	Inherit Tristate = iota // follow the converter-wide setting
	Always
	Never
)

// TristateOf converts a plain bool into Always or Never.
func TristateOf(b bool) Tristate {
	if b {
		return Always
	}

	return Never
}

// Bool returns the explicit value and whether one is set.
func (t Tristate) Bool() (value, ok bool) {
	switch t {
	case Always:
		return true, true
	case Never:
		return false, true
	default:
		return false, false
	}
}

// ParseTristate accepts "inherit", an empty string, or anything strconv.ParseBool accepts.
func ParseTristate(s string) (Tristate, error) {
	switch s {
	case "", "inherit", "null", "~":
		return Inherit, nil
	}

	b, err := strconv.ParseBool(s)
	if err != nil {
		return Inherit, fmt.Errorf("invalid tristate %q: expected true, false or inherit", s)
	}

	return TristateOf(b), nil
}

// UnmarshalYAML implements custom YAML unmarshaling for Tristate.
// Accepts true, false, null or the string "inherit".
func (t *Tristate) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("expected scalar for tristate, got %v", node.Kind)
	}

	v, err := ParseTristate(node.Value)
	if err != nil {
		return err
	}

	*t = v

	return nil
}

// MarshalYAML outputs a bool for explicit values and null for Inherit.
func (t Tristate) MarshalYAML() (any, error) {
	if b, ok := t.Bool(); ok {
		return b, nil
	}

	return nil, nil
}
