package generic

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestMap_SetKeepsOrder(t *testing.T) {
	m := NewMap(0)
	m.Set("b", 1)
	m.Set("a", 2)
	m.Set("c", 3)
	m.Set("b", 10)

	assert.Equal(t, []string{"b", "a", "c"}, m.Keys())
	assert.Equal(t, 3, m.Len())

	v, ok := m.Get("b")
	require.True(t, ok)
	assert.Equal(t, 10, v)
}

func TestMap_Delete(t *testing.T) {
	m := NewMap(0)
	m.Set("a", 1)
	m.Set("b", 2)
	m.Delete("a")
	m.Delete("missing")

	assert.Equal(t, []string{"b"}, m.Keys())
	assert.False(t, m.Has("a"))
}

func TestMap_NilIsEmpty(t *testing.T) {
	var m *Map

	assert.Equal(t, 0, m.Len())
	assert.False(t, m.Has("x"))
	assert.Nil(t, m.Keys())
	assert.Nil(t, m.ToMap())
	m.Delete("x")
}

func TestMap_Range_StopsEarly(t *testing.T) {
	m := FromMap(map[string]any{"a": 1, "b": 2, "c": 3})

	var seen []string
	m.Range(func(k string, _ any) bool {
		seen = append(seen, k)
		return k != "b"
	})

	assert.Equal(t, []string{"a", "b"}, seen)
}

func TestMap_ToMap_Nested(t *testing.T) {
	inner := NewMap(0)
	inner.Set("x", 1)

	m := NewMap(0)
	m.Set("inner", inner)
	m.Set("list", []any{inner, "s"})

	assert.Equal(t, map[string]any{
		"inner": map[string]any{"x": 1},
		"list":  []any{map[string]any{"x": 1}, "s"},
	}, m.ToMap())
}

func TestMap_JSON_RoundTripKeepsOrder(t *testing.T) {
	src := `{"z":1,"a":{"y":true,"b":null},"m":[1,"two",{"k":"v"}]}`

	var m Map
	require.NoError(t, json.Unmarshal([]byte(src), &m))

	assert.Equal(t, []string{"z", "a", "m"}, m.Keys())

	nested, ok := m.Get("a")
	require.True(t, ok)
	require.IsType(t, &Map{}, nested)
	assert.Equal(t, []string{"y", "b"}, nested.(*Map).Keys())

	z, _ := m.Get("z")
	assert.Equal(t, json.Number("1"), z)

	out, err := json.Marshal(&m)
	require.NoError(t, err)
	assert.JSONEq(t, src, string(out))
	assert.Equal(t, src, string(out))
}

func TestMap_JSON_RejectsNonObject(t *testing.T) {
	var m Map
	assert.Error(t, json.Unmarshal([]byte(`[1,2]`), &m))
}

func TestMap_YAML_RoundTripKeepsOrder(t *testing.T) {
	src := "z: 1\na:\n    y: true\n    b: text\nm:\n    - 1\n    - two\n"

	var m Map
	require.NoError(t, yaml.Unmarshal([]byte(src), &m))
	assert.Equal(t, []string{"z", "a", "m"}, m.Keys())

	z, _ := m.Get("z")
	assert.Equal(t, 1, z)

	out, err := yaml.Marshal(&m)
	require.NoError(t, err)
	assert.Equal(t, src, string(out))
}
