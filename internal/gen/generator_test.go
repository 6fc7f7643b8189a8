package gen

import (
	"go/format"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"converter-generator/config"
	"converter-generator/internal/analyze"
	"converter-generator/internal/diagnostic"
)

const (
	storePkg     = "converter-generator/store"
	warehousePkg = "converter-generator/warehouse"
)

func loadGraph(t *testing.T, patterns ...string) *analyze.TypeGraph {
	t.Helper()

	graph, err := analyze.NewAnalyzer().LoadPackages(patterns...)
	require.NoError(t, err)

	return graph
}

func generate(t *testing.T, cfg GeneratorConfig, graph *analyze.TypeGraph, pkgPath string) string {
	t.Helper()

	file, diags, err := NewGenerator(cfg).Generate(graph, pkgPath)
	require.NoError(t, err, diags.Error())
	require.NotNil(t, file)

	formatted, err := format.Source(file.Content)
	require.NoError(t, err)
	assert.Equal(t, string(formatted), string(file.Content), "output is not gofmt clean")

	return string(file.Content)
}

func TestGenerator_Generate_Store(t *testing.T) {
	graph := loadGraph(t, storePkg)
	content := generate(t, DefaultGeneratorConfig(), graph, storePkg)

	assert.Contains(t, content, "// Code generated by converter-generator. DO NOT EDIT.")
	assert.Contains(t, content, "package store")
	assert.Contains(t, content, `"converter-generator/builder"`)
	assert.Contains(t, content, `"converter-generator/generic"`)
	assert.Contains(t, content, `"time"`)

	for _, name := range []string{"Customer", "Order", "OrderItem", "Product"} {
		assert.Contains(t, content, "func Unstructure"+name+"(c builder.Unstructurer, v *"+name+") (*generic.Map, error)")
		assert.Contains(t, content, "func Structure"+name+"(c builder.Structurer, data any) ("+name+", error)")
	}

	// Keys come from the conv tag, the leading underscore stays in the key.
	assert.Contains(t, content, `builder.Emit(c, out, "_token", v.Token)`)
	assert.NotContains(t, content, "v.Audit")
	assert.NotContains(t, content, "password")

	// Defaults on the structure side.
	assert.Contains(t, content, `out.Status = "PENDING"`)
	assert.Contains(t, content, "out.Items = NoItems()")
	assert.Contains(t, content, "missingTotalCents = true")
	assert.Contains(t, content, "out.TotalCents = SumItems(out)")
	assert.Contains(t, content, "out.Address = nil")
	assert.Contains(t, content, "out.IsActive = true")
	assert.Contains(t, content, `&builder.MissingFieldError{Type: "converter-generator/store.Order", Field: "id", Key: "id"}`)
	assert.Contains(t, content, "if err := out.Validate(); err != nil {")

	// Without omission every field is emitted unconditionally.
	assert.NotContains(t, content, "builder.Equal")

	// Hooks.
	assert.Contains(t, content, "func RegisterConverters(c *converter.Converter)")
	assert.Contains(t, content, "c.RegisterUnstructureHook(reflect.TypeFor[Order]()")
	assert.Contains(t, content, "return StructureOrder(c, data)")
}

func TestGenerator_Generate_OmitIfDefault(t *testing.T) {
	graph := loadGraph(t, storePkg)

	cfg := DefaultGeneratorConfig()
	cfg.OmitIfDefault = true
	content := generate(t, cfg, graph, storePkg)

	assert.Contains(t, content, `if !builder.Equal[OrderStatus](v.Status, "PENDING") {`)
	assert.Contains(t, content, "if !builder.Equal[[]OrderItem](v.Items, NoItems()) {")
	assert.Contains(t, content, "if !builder.Equal[int64](v.TotalCents, SumItems(*v)) {")
	assert.Contains(t, content, "if !builder.Equal[*string](v.Address, nil) {")
	assert.Contains(t, content, "if !builder.Equal[int](v.Quantity, 1) {")

	// Fields without a default are always emitted.
	assert.NotContains(t, content, "builder.Equal[int64](v.ID")
}

func TestGenerator_Generate_Overrides(t *testing.T) {
	graph := loadGraph(t, storePkg)

	file, err := config.Parse([]byte(`
version: "1"
types:
  - type: store.Order
    omit_if_default: true
    fields:
      status:
        rename: state
      items:
        omit_if_default: false
`))
	require.NoError(t, err)

	cfg := DefaultGeneratorConfig()
	cfg.Overrides = file
	cfg.Types = []string{"Order"}
	content := generate(t, cfg, graph, storePkg)

	assert.Contains(t, content, `if !builder.Equal[OrderStatus](v.Status, "PENDING") {`)
	assert.Contains(t, content, `builder.Emit(c, out, "state", v.Status)`)
	assert.Contains(t, content, `get("state")`)
	assert.NotContains(t, content, `get("status")`)
	assert.NotContains(t, content, "builder.Equal[[]OrderItem]")
	assert.NotContains(t, content, "func UnstructureProduct")
}

func TestGenerator_Generate_CrossPackage(t *testing.T) {
	graph := loadGraph(t, storePkg, warehousePkg)

	cfg := DefaultGeneratorConfig()
	cfg.OmitIfDefault = true
	cfg.Register = false
	content := generate(t, cfg, graph, warehousePkg)

	assert.Contains(t, content, "package warehouse")
	assert.Contains(t, content, `"converter-generator/store"`)
	assert.Contains(t, content, "builder.Field[store.Order](c, raw)")
	assert.Contains(t, content, "builder.Field[*time.Time](c, raw)")
	assert.Contains(t, content, "builder.Field[time.Duration](c, raw)")
	assert.Contains(t, content, "if !builder.Equal[float64](v.WeightKg, 0.5) {")
	assert.Contains(t, content, "if !builder.Equal[map[string]string](v.Labels, NoLabels()) {")
	assert.NotContains(t, content, "RegisterConverters")
	assert.NotContains(t, content, `"reflect"`)
}

func TestGenerator_Plan_RenameCollision(t *testing.T) {
	graph := loadGraph(t, storePkg)

	file, err := config.Parse([]byte(`
types:
  - type: store.Product
    fields:
      name:
        rename: sku
`))
	require.NoError(t, err)

	cfg := DefaultGeneratorConfig()
	cfg.Overrides = file
	_, diags, err := NewGenerator(cfg).Plan(graph, storePkg)

	require.Error(t, err)
	assert.NotEmpty(t, diags.WithCode(diagnostic.CodeRenameCollision))
}

func TestGenerator_Plan_UnknownOverride(t *testing.T) {
	graph := loadGraph(t, storePkg)

	file, err := config.Parse([]byte(`
types:
  - type: store.Product
    fields:
      nme:
        rename: title
  - type: store.Prodcut
    omit_if_default: true
`))
	require.NoError(t, err)

	cfg := DefaultGeneratorConfig()
	cfg.Overrides = file
	plans, diags, err := NewGenerator(cfg).Plan(graph, storePkg)
	require.NoError(t, err)
	assert.Len(t, plans, 4)

	unknown := diags.WithCode(diagnostic.CodeUnknownOverride)
	require.Len(t, unknown, 1)
	assert.Equal(t, "nme", unknown[0].Field)
	assert.Contains(t, unknown[0].Suggestions, "name")

	types := diags.WithCode(diagnostic.CodeUnknownType)
	require.Len(t, types, 1)
	assert.Equal(t, "store.Prodcut", types[0].Type)
	assert.Contains(t, types[0].Suggestions, "Product")
}

func TestGenerator_Plan_UnknownSelectedType(t *testing.T) {
	graph := loadGraph(t, storePkg)

	cfg := DefaultGeneratorConfig()
	cfg.Types = []string{"Ordr"}
	_, diags, err := NewGenerator(cfg).Plan(graph, storePkg)

	require.Error(t, err)

	types := diags.WithCode(diagnostic.CodeUnknownType)
	require.Len(t, types, 1)
	assert.Contains(t, types[0].Suggestions, "Order")
}

func TestGenerator_Plan_PackageNotLoaded(t *testing.T) {
	graph := loadGraph(t, storePkg)

	_, _, err := NewGenerator(DefaultGeneratorConfig()).Plan(graph, warehousePkg)
	require.Error(t, err)
}

func TestWriteFilesAndCheck(t *testing.T) {
	dir := t.TempDir()
	file := &GeneratedFile{Dir: dir, Filename: DefaultFilename, Content: []byte("package store\n\nvar a = 1\n")}

	stale, err := Check(file, "")
	require.NoError(t, err)
	require.NotNil(t, stale)
	assert.True(t, stale.Missing)

	require.NoError(t, WriteFiles([]*GeneratedFile{file}, ""))

	stale, err = Check(file, "")
	require.NoError(t, err)
	assert.Nil(t, stale)

	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultFilename), []byte("package store\n\nvar a = 2\n"), filePerm))

	stale, err = Check(file, "")
	require.NoError(t, err)
	require.NotNil(t, stale)
	assert.False(t, stale.Missing)
	assert.Equal(t, "-var a = 2\n+var a = 1\n", stale.Diff)
	assert.Contains(t, stale.String(), "out of date")
}

func TestWriteFiles_OutputDir(t *testing.T) {
	out := filepath.Join(t.TempDir(), "nested")
	file := &GeneratedFile{Dir: "/does/not/matter", Filename: "x_gen.go", Content: []byte("package x\n")}

	require.NoError(t, WriteFiles([]*GeneratedFile{file}, out))

	data, err := os.ReadFile(filepath.Join(out, "x_gen.go"))
	require.NoError(t, err)
	assert.Equal(t, "package x\n", string(data))
}

func TestLineDiff(t *testing.T) {
	assert.Empty(t, LineDiff("a\nb\n", "a\nb\n"))
	assert.Equal(t, "-b\n+c\n", LineDiff("a\nb\n", "a\nc\n"))
	assert.Equal(t, "+\n", LineDiff("a\n", "a\n\n"))
}

func TestGenerator_Plan_Strict(t *testing.T) {
	graph := loadGraph(t, storePkg)

	file, err := config.Parse([]byte(`
strict: true
types:
  - type: store.Product
    fields:
      nme:
        rename: title
`))
	require.NoError(t, err)

	cfg := DefaultGeneratorConfig()
	cfg.Overrides = file
	_, diags, err := NewGenerator(cfg).Plan(graph, storePkg)

	require.Error(t, err)
	require.Len(t, diags.Errors, 1)
	assert.Equal(t, diagnostic.CodeUnknownOverride, diags.Errors[0].Code)
	assert.Empty(t, diags.Warnings)
}
