package builder

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"converter-generator/generic"
)

// wrongConverter returns a fixed value whatever the target type.
type wrongConverter struct{ value any }

func (w wrongConverter) Unstructure(v any) (any, error) { return v, nil }

func (w wrongConverter) Structure(any, reflect.Type) (any, error) { return w.value, nil }

func TestLookup(t *testing.T) {
	get, err := Lookup("shop.Order", map[string]any{"a": 1})
	require.NoError(t, err)

	v, ok := get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	_, err = Lookup("shop.Order", []any{})
	require.ErrorIs(t, err, ErrNotAMap)

	var se *StructureError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "shop.Order", se.Type)
}

func TestEmit(t *testing.T) {
	out := generic.NewMap(1)
	require.NoError(t, Emit(&stubConverter{}, out, "k", 3))

	v, _ := out.Get("k")
	assert.Equal(t, 3, v)

	err := Emit(&stubConverter{failOn: 4}, out, "j", 4)
	require.ErrorIs(t, err, errStub)
	assert.False(t, out.Has("j"))
}

func TestField(t *testing.T) {
	n, err := Field[int](&stubConverter{}, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	p, err := Field[*point](&stubConverter{}, nil)
	require.NoError(t, err)
	assert.Nil(t, p)

	_, err = Field[int](wrongConverter{value: "five"}, 5)
	require.ErrorIs(t, err, ErrWrongType)
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal(3, 3))
	assert.False(t, Equal("a", "b"))
	assert.True(t, Equal([]string{}, []string{}))
	assert.True(t, Equal(point{1, 2}, point{1, 2}))
}
