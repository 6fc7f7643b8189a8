package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"converter-generator/internal/diagnostic"
	"converter-generator/override"
)

func TestParse(t *testing.T) {
	yaml := `
version: "1"
omit_if_default: true
strict: true
types:
  - type: shop.Order
    fields:
      Count: {omit_if_default: false}
      Y: {rename: yy}
  - type: example.com/shop.Customer
    omit_if_default: false
    fields:
      Name:
        rename: name
        omit_if_default: inherit
`

	f, err := Parse([]byte(yaml))
	require.NoError(t, err)

	assert.Equal(t, "1", f.Version)
	assert.True(t, f.OmitIfDefault)
	assert.True(t, f.Strict)
	assert.Equal(t, []string{"shop.Order", "example.com/shop.Customer"}, f.TypeNames())

	assert.Equal(t, override.Set{
		"Count": override.New(override.OmitIfDefault(false)),
		"Y":     override.New(override.Rename("yy")),
	}, f.Overrides("shop.Order"))

	assert.Equal(t, override.Set{
		"Name": override.New(override.Rename("name")),
	}, f.Overrides("example.com/shop.Customer", "shop.Customer"))

	assert.True(t, f.OmitIfDefaultFor("shop.Order"))
	assert.False(t, f.OmitIfDefaultFor("example.com/shop.Customer"))
	assert.True(t, f.OmitIfDefaultFor("other.Type"))
}

func TestParse_Defaults(t *testing.T) {
	f, err := Parse(nil)
	require.NoError(t, err)

	assert.Equal(t, CurrentVersion, f.Version)
	assert.False(t, f.OmitIfDefault)
	assert.Empty(t, f.Types)
	assert.Nil(t, f.Overrides("anything"))
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown key", "version: \"1\"\nomit: true\n"},
		{"bad tristate", "types:\n  - type: a.B\n    fields:\n      X: {omit_if_default: sometimes}\n"},
		{"not a mapping", "- a\n- b\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestValidate(t *testing.T) {
	f := &File{
		Version: "2",
		Types: []TypeConfig{
			{Type: "a.B", Fields: map[string]FieldConfig{"X": {}}},
			{Type: "a.B"},
			{},
		},
	}

	diags := f.Validate()
	assert.True(t, diags.HasErrors())
	assert.Len(t, diags.WithCode(diagnostic.CodeDuplicateType), 1)
	assert.Len(t, diags.WithCode(diagnostic.CodeInvalidConfig), 3)
	assert.Len(t, diags.Infos, 1)
}

func TestWriteAndLoadFile(t *testing.T) {
	f := &File{
		Version:       CurrentVersion,
		OmitIfDefault: true,
		Types: []TypeConfig{{
			Type:   "shop.Order",
			Fields: map[string]FieldConfig{"Y": {Rename: "yy", OmitIfDefault: override.Never}},
		}},
	}

	path := filepath.Join(t.TempDir(), "converters.yaml")
	require.NoError(t, WriteFile(f, path))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, f, loaded)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
