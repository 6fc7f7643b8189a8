package plan

import (
	"maps"
	"slices"

	"converter-generator/override"
)

// sortedKeys returns override keys in a deterministic order.
func sortedKeys(s override.Set) []string {
	return slices.Sorted(maps.Keys(s))
}
