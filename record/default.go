package record

//go:generate go tool stringer -type=DefaultKind -trimprefix=Default -output=defaultkind_string.go

// DefaultKind tells how a field obtains its default value.
type DefaultKind int

const (
	DefaultNone        DefaultKind = iota // no default, the field is required
	DefaultStatic                         // a stored value
	DefaultFactory                        // a function called with no arguments
	DefaultSelfFactory                    // a function called with the instance
)

// Default is the default of a field.
type Default struct {
	Kind        DefaultKind
	Value       any
	Factory     func() any
	SelfFactory func(self any) any
}

// Static returns a static default.
func Static(v any) Default {
	return Default{Kind: DefaultStatic, Value: v}
}

// Factory returns a default computed by calling fn.
func Factory(fn func() any) Default {
	return Default{Kind: DefaultFactory, Factory: fn}
}

// SelfFactory returns a default computed from the instance it belongs to.
func SelfFactory(fn func(self any) any) Default {
	return Default{Kind: DefaultSelfFactory, SelfFactory: fn}
}

// IsSet returns true if a default is declared.
func (d Default) IsSet() bool {
	return d.Kind != DefaultNone
}

// Current evaluates the default. self is only used by self factories.
func (d Default) Current(self any) any {
	switch d.Kind {
	case DefaultStatic:
		return d.Value
	case DefaultFactory:
		return d.Factory()
	case DefaultSelfFactory:
		return d.SelfFactory(self)
	default:
		return nil
	}
}
