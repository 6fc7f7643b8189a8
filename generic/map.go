// Package generic provides the in-memory representation produced by
// unstructuring and consumed by structuring: an insertion-ordered,
// string-keyed map whose values are nil, booleans, numbers, strings,
// []any, map[string]any or nested *Map values.
package generic

import (
	"maps"
	"slices"
)

// Map is a string-keyed map that remembers insertion order.
// A nil *Map behaves as an empty, read-only map.
type Map struct {
	keys   []string
	values map[string]any
}

// NewMap creates an empty Map with room for capacity keys.
func NewMap(capacity int) *Map {
	return &Map{
		keys:   make([]string, 0, capacity),
		values: make(map[string]any, capacity),
	}
}

// FromMap builds a Map from a Go map. Keys are sorted since Go maps carry no order.
func FromMap(src map[string]any) *Map {
	m := NewMap(len(src))
	for _, k := range slices.Sorted(maps.Keys(src)) {
		m.Set(k, src[k])
	}

	return m
}

// Set stores value under key. Replacing an existing key keeps its position.
func (m *Map) Set(key string, value any) {
	if m.values == nil {
		m.values = make(map[string]any)
	}

	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}

	m.values[key] = value
}

// Get returns the value stored under key.
func (m *Map) Get(key string) (any, bool) {
	if m == nil {
		return nil, false
	}

	v, ok := m.values[key]

	return v, ok
}

// Has returns true if key is present.
func (m *Map) Has(key string) bool {
	_, ok := m.Get(key)
	return ok
}

// Delete removes key, if present.
func (m *Map) Delete(key string) {
	if m == nil {
		return
	}

	if _, ok := m.values[key]; !ok {
		return
	}

	delete(m.values, key)
	m.keys = slices.DeleteFunc(m.keys, func(k string) bool { return k == key })
}

// Len returns the number of keys.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}

	return len(m.keys)
}

// Keys returns a copy of the keys in insertion order.
func (m *Map) Keys() []string {
	if m == nil {
		return nil
	}

	return slices.Clone(m.keys)
}

// Range calls fn for each entry in order until fn returns false.
func (m *Map) Range(fn func(key string, value any) bool) {
	if m == nil {
		return
	}

	for _, k := range m.keys {
		if !fn(k, m.values[k]) {
			return
		}
	}
}

// ToMap converts the Map into plain Go maps and slices, recursively.
func (m *Map) ToMap() map[string]any {
	if m == nil {
		return nil
	}

	out := make(map[string]any, len(m.keys))
	for _, k := range m.keys {
		out[k] = plain(m.values[k])
	}

	return out
}

func plain(v any) any {
	switch vv := v.(type) {
	case *Map:
		return vv.ToMap()
	case []any:
		out := make([]any, len(vv))
		for i, e := range vv {
			out[i] = plain(e)
		}

		return out
	case map[string]any:
		out := make(map[string]any, len(vv))
		for k, e := range vv {
			out[k] = plain(e)
		}

		return out
	default:
		return v
	}
}
