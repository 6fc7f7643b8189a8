package analyze

import (
	"errors"
	"fmt"
	"go/token"
	"go/types"
	"math"
	"reflect"
	"strconv"

	"gopkg.in/yaml.v3"

	"converter-generator/record"
)

// ErrUnsupportedDefault is returned for static defaults that have no Go literal form.
var ErrUnsupportedDefault = errors.New("unsupported static default")

// parseDefault reads the default tags of a field. At most one may be present.
func parseDefault(tag reflect.StructTag, t types.Type) (Default, error) {
	var found []Default

	if lit, ok := tag.Lookup(TagDefault); ok {
		expr, err := literal(lit, t)
		if err != nil {
			return Default{}, err
		}

		found = append(found, Default{Kind: record.DefaultStatic, Expr: expr})
	}

	if fn, ok := tag.Lookup(TagFactory); ok {
		if !token.IsIdentifier(fn) {
			return Default{}, fmt.Errorf("%w: %s %q is not an identifier", ErrUnsupportedDefault, TagFactory, fn)
		}

		found = append(found, Default{Kind: record.DefaultFactory, Func: fn})
	}

	if fn, ok := tag.Lookup(TagSelfFactory); ok {
		if !token.IsIdentifier(fn) {
			return Default{}, fmt.Errorf("%w: %s %q is not an identifier", ErrUnsupportedDefault, TagSelfFactory, fn)
		}

		found = append(found, Default{Kind: record.DefaultSelfFactory, Func: fn})
	}

	switch len(found) {
	case 0:
		return Default{}, nil
	case 1:
		return found[0], nil
	default:
		return Default{}, fmt.Errorf("%w: more than one default tag", ErrUnsupportedDefault)
	}
}

// literal turns a default tag into a Go expression assignable to t.
// The tag is decoded with yaml.v3 into a value of t's basic kind, the same
// way record.Describe decodes it at runtime, and the literal is rendered
// from that value. Nilable types only accept null or an empty tag.
func literal(lit string, t types.Type) (string, error) {
	switch t.Underlying().(type) {
	case *types.Pointer, *types.Slice, *types.Map, *types.Interface, *types.Signature, *types.Chan:
		var node yaml.Node
		if err := yaml.Unmarshal([]byte(lit), &node); err != nil {
			return "", fmt.Errorf("%w: %w", ErrUnsupportedDefault, err)
		}

		if scalar, empty := scalarOf(&node); empty || (scalar != nil && scalar.Tag == "!!null") {
			return "nil", nil
		}

		return "", fmt.Errorf("%w for %s, use %s", ErrUnsupportedDefault, t, TagFactory)
	}

	basic, ok := t.Underlying().(*types.Basic)
	if !ok {
		return "", fmt.Errorf("%w for %s, use %s", ErrUnsupportedDefault, t, TagFactory)
	}

	rt, ok := basicTypes[basic.Kind()]
	if !ok {
		return "", fmt.Errorf("%w for %s", ErrUnsupportedDefault, t)
	}

	ptr := reflect.New(rt)
	if err := yaml.Unmarshal([]byte(lit), ptr.Interface()); err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnsupportedDefault, err)
	}

	v := ptr.Elem()

	switch {
	case v.Kind() == reflect.String:
		return strconv.Quote(v.String()), nil
	case v.Kind() == reflect.Bool:
		return strconv.FormatBool(v.Bool()), nil
	case v.CanInt():
		return strconv.FormatInt(v.Int(), 10), nil
	case v.CanUint():
		return strconv.FormatUint(v.Uint(), 10), nil
	case v.CanFloat():
		f := v.Float()
		if math.IsInf(f, 0) || math.IsNaN(f) {
			return "", fmt.Errorf("%w: %q has no constant form", ErrUnsupportedDefault, lit)
		}

		return strconv.FormatFloat(f, 'g', -1, rt.Bits()), nil
	default:
		return "", fmt.Errorf("%w for %s", ErrUnsupportedDefault, t)
	}
}

// basicTypes maps the basic kinds a default can be decoded into.
var basicTypes = map[types.BasicKind]reflect.Type{
	types.Bool:    reflect.TypeFor[bool](),
	types.Int:     reflect.TypeFor[int](),
	types.Int8:    reflect.TypeFor[int8](),
	types.Int16:   reflect.TypeFor[int16](),
	types.Int32:   reflect.TypeFor[int32](),
	types.Int64:   reflect.TypeFor[int64](),
	types.Uint:    reflect.TypeFor[uint](),
	types.Uint8:   reflect.TypeFor[uint8](),
	types.Uint16:  reflect.TypeFor[uint16](),
	types.Uint32:  reflect.TypeFor[uint32](),
	types.Uint64:  reflect.TypeFor[uint64](),
	types.Float32: reflect.TypeFor[float32](),
	types.Float64: reflect.TypeFor[float64](),
	types.String:  reflect.TypeFor[string](),
}

// scalarOf returns the scalar of a document node. empty is true for an
// empty document.
func scalarOf(node *yaml.Node) (scalar *yaml.Node, empty bool) {
	if node.Kind == 0 {
		return nil, true
	}

	if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		node = node.Content[0]
	}

	if node.Kind != yaml.ScalarNode {
		return nil, false
	}

	return node, false
}
