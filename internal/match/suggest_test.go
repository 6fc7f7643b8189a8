package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"kitten", "sitting", 3},
		{"saturday", "sunday", 3},
		{"count", "count", 0},
		{"héllo", "hello", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, Distance(tt.a, tt.b))
			assert.Equal(t, tt.want, Distance(tt.b, tt.a), "distance must be symmetric")
		})
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "orderid", Normalize("Order_ID"))
	assert.Equal(t, "orderid", Normalize("orderId"))
	assert.Equal(t, "createdat", Normalize("created-at"))
}

func TestSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, Similarity("OrderID", "order_id"), 1e-9)
	assert.InDelta(t, 1.0, Similarity("", ""), 1e-9)
	assert.InDelta(t, 0.8, Similarity("count", "counr"), 1e-9)
	assert.Less(t, Similarity("count", "label"), 0.5)
}

func TestSuggest(t *testing.T) {
	fields := []string{"Count", "Label", "Counter", "Amount"}

	assert.Equal(t, []string{"Count", "Counter", "Amount"}, Suggest("count", fields, DefaultSuggestThreshold))
	assert.Equal(t, []string{"Label"}, Suggest("labl", fields, DefaultSuggestThreshold))
	assert.Empty(t, Suggest("zzz", fields, DefaultSuggestThreshold))
	assert.Empty(t, Suggest("Count", []string{"Count"}, 0))
}
