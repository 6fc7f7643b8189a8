package match

import (
	"cmp"
	"slices"
	"strings"
)

// DefaultSuggestThreshold is the minimum similarity for a name to be suggested.
const DefaultSuggestThreshold = 0.6

// Suggestion is a candidate name with its similarity to the query.
type Suggestion struct {
	Name  string
	Score float64
}

// Suggest returns the candidates whose normalized similarity to name is at
// least threshold, best first. Ties keep candidate order.
func Suggest(name string, candidates []string, threshold float64) []string {
	var found []Suggestion

	for _, c := range candidates {
		if c == name {
			continue
		}

		if score := Similarity(name, c); score >= threshold {
			found = append(found, Suggestion{Name: c, Score: score})
		}
	}

	slices.SortStableFunc(found, func(a, b Suggestion) int {
		return cmp.Compare(b.Score, a.Score)
	})

	out := make([]string, len(found))
	for i, s := range found {
		out[i] = s.Name
	}

	return out
}

// Similarity scores two identifiers between 0 and 1 after normalization,
// so that "order_id", "OrderID" and "orderId" are identical.
func Similarity(a, b string) float64 {
	na, nb := Normalize(a), Normalize(b)
	if na == "" && nb == "" {
		return 1
	}

	longest := max(len([]rune(na)), len([]rune(nb)))

	return 1 - float64(Distance(na, nb))/float64(longest)
}

// Normalize lowercases an identifier and strips '_', '-' and spaces.
func Normalize(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, r := range strings.ToLower(s) {
		switch r {
		case '_', '-', ' ':
		default:
			b.WriteRune(r)
		}
	}

	return b.String()
}

// Distance is the Levenshtein edit distance between a and b, counted in runes.
func Distance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}

	row := make([]int, len(ra)+1)
	for i := range row {
		row[i] = i
	}

	for j := 1; j <= len(rb); j++ {
		diag := row[0]
		row[0] = j

		for i := 1; i <= len(ra); i++ {
			above := row[i]

			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}

			row[i] = min(row[i]+1, row[i-1]+1, diag+cost)
			diag = above
		}
	}

	return row[len(ra)]
}
