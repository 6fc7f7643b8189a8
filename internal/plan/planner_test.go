package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"converter-generator/internal/diagnostic"
	"converter-generator/override"
	"converter-generator/record"
)

func sampleRecord() Record {
	return Record{
		Name: "shop.Item",
		Fields: []record.FieldSpec{
			{Name: "ID"},
			{Name: "Count", Default: record.Static(0)},
			{Name: "Tags", Default: record.Factory(func() any { return []string{} })},
			{Name: "Total", Default: record.SelfFactory(func(any) any { return 0 })},
			{Name: "_secret", Default: record.Static("")},
		},
	}
}

func ops(fields []Field) []Op {
	out := make([]Op, len(fields))
	for i, f := range fields {
		out[i] = f.Op
	}

	return out
}

func keys(fields []Field) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = f.Key
	}

	return out
}

func TestUnstructure_NoOmission(t *testing.T) {
	fields := Unstructure(sampleRecord(), false, nil)

	assert.Equal(t, []Op{OpDirect, OpDirect, OpDirect, OpDirect, OpDirect}, ops(fields))
	assert.Equal(t, []string{"ID", "Count", "Tags", "Total", "_secret"}, keys(fields))
}

func TestUnstructure_GlobalOmission(t *testing.T) {
	fields := Unstructure(sampleRecord(), true, nil)

	assert.Equal(t, []Op{OpDirect, OpOmitStatic, OpOmitFactory, OpOmitSelfFactory, OpOmitStatic}, ops(fields))
}

func TestUnstructure_OverridesWinOverGlobal(t *testing.T) {
	overrides := override.Set{
		"ID":    override.New(override.OmitIfDefault(true)),
		"Count": override.New(override.OmitIfDefault(false)),
		"Tags":  override.New(override.Rename("labels")),
	}

	fields := Unstructure(sampleRecord(), true, overrides)

	assert.Equal(t, OpDirect, fields[0].Op, "no default means no omission")
	assert.Equal(t, OpDirect, fields[1].Op)
	assert.Equal(t, OpOmitFactory, fields[2].Op)
	assert.Equal(t, "labels", fields[2].Key)

	fields = Unstructure(sampleRecord(), false, override.Set{
		"Count": override.New(override.OmitIfDefault(true)),
	})
	assert.Equal(t, []Op{OpDirect, OpOmitStatic, OpDirect, OpDirect, OpDirect}, ops(fields))
}

func TestStructure(t *testing.T) {
	fields := Structure(sampleRecord(), override.Set{"Count": override.New(override.Rename("n"))})

	assert.Equal(t, []Op{OpRequired, OpOptional, OpOptional, OpOptional, OpOptional}, ops(fields))
	assert.Equal(t, []string{"ID", "n", "Tags", "Total", "_secret"}, keys(fields))
	assert.Equal(t, "secret", fields[4].Param)
	assert.Equal(t, "_secret", fields[4].Key, "the external key keeps the leading underscore")
}

func TestCheck_UnknownOverride(t *testing.T) {
	diags := Check(sampleRecord(), override.Set{"Counts": override.New(override.Rename("c"))})

	require.Len(t, diags.Warnings, 1)
	w := diags.Warnings[0]
	assert.Equal(t, diagnostic.CodeUnknownOverride, w.Code)
	assert.Equal(t, "Counts", w.Field)
	assert.Equal(t, "shop.Item", w.Type)
	assert.Contains(t, w.Suggestions, "Count")
	assert.False(t, diags.HasErrors())
}

func TestCheck_RenameCollision(t *testing.T) {
	diags := Check(sampleRecord(), override.Set{"Count": override.New(override.Rename("ID"))})

	require.True(t, diags.HasErrors())
	assert.Equal(t, diagnostic.CodeRenameCollision, diags.Errors[0].Code)
	assert.Error(t, diags.Error())
}

func TestCheck_OmitWithoutDefault(t *testing.T) {
	diags := Check(sampleRecord(), override.Set{"ID": override.New(override.OmitIfDefault(true))})

	require.Len(t, diags.Infos, 1)
	assert.Equal(t, diagnostic.CodeOmitWithoutDefault, diags.Infos[0].Code)
}

func TestNew(t *testing.T) {
	p := New(sampleRecord(), true, nil)

	assert.Equal(t, "shop.Item", p.Type)
	assert.Len(t, p.Unstructure, 5)
	assert.Len(t, p.Structure, 5)
	assert.True(t, p.Diagnostics.IsEmpty())
}

func TestOp_String(t *testing.T) {
	assert.Equal(t, "OmitSelfFactory", OpOmitSelfFactory.String())
	assert.True(t, OpOmitFactory.Omits())
	assert.False(t, OpRequired.Omits())
}
