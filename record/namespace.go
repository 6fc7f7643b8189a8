package record

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
)

// Namespace maps type names to concrete types and resolves forward
// references declared with WithTypeRef.
//
// Composite names are built from registered names with the prefixes
// "[]", "*" and "map[string]", e.g. "[]*Tree".
type Namespace struct {
	mu    sync.RWMutex
	types map[string]reflect.Type
}

// NewNamespace creates an empty Namespace.
func NewNamespace() *Namespace {
	return &Namespace{types: make(map[string]reflect.Type)}
}

// Define registers t under name. Redefining a name with a different type is an error.
func (n *Namespace) Define(name string, t reflect.Type) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if prev, ok := n.types[name]; ok && prev != t {
		return fmt.Errorf("type name %q already defined as %s", name, prev)
	}

	n.types[name] = t

	return nil
}

// Lookup resolves a possibly composite type name.
func (n *Namespace) Lookup(name string) (reflect.Type, error) {
	switch {
	case strings.HasPrefix(name, "[]"):
		elem, err := n.Lookup(name[2:])
		if err != nil {
			return nil, err
		}

		return reflect.SliceOf(elem), nil

	case strings.HasPrefix(name, "*"):
		elem, err := n.Lookup(name[1:])
		if err != nil {
			return nil, err
		}

		return reflect.PointerTo(elem), nil

	case strings.HasPrefix(name, "map[string]"):
		elem, err := n.Lookup(name[len("map[string]"):])
		if err != nil {
			return nil, err
		}

		return reflect.MapOf(reflect.TypeFor[string](), elem), nil
	}

	if n == nil {
		return nil, fmt.Errorf("%w: %q (no namespace)", ErrUnresolvedType, name)
	}

	n.mu.RLock()
	t, ok := n.types[name]
	n.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnresolvedType, name)
	}

	return t, nil
}

// Resolve returns a copy of d in which every forward reference points at a
// concrete type. d itself is left untouched; an already resolved descriptor
// is returned as is. All failing fields are reported together.
func (n *Namespace) Resolve(d *Descriptor) (*Descriptor, error) {
	if d.IsResolved() {
		return d, nil
	}

	out := *d
	out.Fields = make([]FieldSpec, len(d.Fields))
	copy(out.Fields, d.Fields)

	var errs []error

	for i := range out.Fields {
		f := &out.Fields[i]
		if f.Type.IsResolved() {
			continue
		}

		t, err := n.Lookup(f.Type.Name)
		if err == nil && !t.AssignableTo(f.GoType) {
			err = fmt.Errorf("%w: %s is not assignable to %s", ErrUnresolvedType, t, f.GoType)
		}

		if err != nil {
			errs = append(errs, &ResolveError{Type: d.Name(), Field: f.Name, Ref: f.Type.Name, Err: err})
			continue
		}

		f.Type = TypeRef{Name: f.Type.Name, Type: t}
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return &out, nil
}
