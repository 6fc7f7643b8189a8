package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics_Add(t *testing.T) {
	var d Diagnostics
	assert.True(t, d.IsEmpty())
	assert.NoError(t, d.Error())

	d.AddInfo(CodeOmitWithoutDefault, "field has no default", "shop.Order", "Name")
	d.AddWarning(CodeUnknownOverride, "override matches no field", "shop.Order", "Cuont", "Count")
	assert.False(t, d.HasErrors())

	d.AddError(CodeRenameCollision, "two fields share key", "shop.Order", "id")
	assert.True(t, d.HasErrors())

	all := d.All()
	require.Len(t, all, 3)
	assert.Equal(t, SeverityError, all[0].Severity)
	assert.Equal(t, SeverityWarning, all[1].Severity)
	assert.Equal(t, SeverityInfo, all[2].Severity)

	assert.Len(t, d.WithCode(CodeUnknownOverride), 1)
	assert.Empty(t, d.WithCode(CodeUnknownType))
}

func TestDiagnostics_Merge(t *testing.T) {
	var a, b Diagnostics
	a.AddError(CodeUnknownType, "a", "", "")
	b.AddError(CodeUnknownType, "b", "", "")
	b.AddWarning(CodeUnknownOverride, "c", "", "")

	a.Merge(b)
	assert.Len(t, a.Errors, 2)
	assert.Len(t, a.Warnings, 1)
	assert.EqualError(t, a.Error(), "[unknown-type] a; [unknown-type] b")
}

func TestDiagnostic_String(t *testing.T) {
	tests := []struct {
		name string
		diag Diagnostic
		want string
	}{
		{
			name: "full",
			diag: Diagnostic{Code: CodeUnknownOverride, Message: "no such field", Type: "shop.Order", Field: "Cuont", Suggestions: []string{"Count"}},
			want: "[shop.Order] Cuont: [unknown-override] no such field (did you mean Count?)",
		},
		{
			name: "message only",
			diag: Diagnostic{Message: "plain"},
			want: "plain",
		},
		{
			name: "field only",
			diag: Diagnostic{Message: "m", Field: "X"},
			want: "X: m",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.diag.String())
		})
	}
}

func TestSeverity_String(t *testing.T) {
	assert.Equal(t, "info", SeverityInfo.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "unknown", Severity(42).String())
}
