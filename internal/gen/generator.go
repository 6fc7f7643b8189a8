package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"reflect"
	"slices"
	"strings"

	"github.com/rs/zerolog"

	"converter-generator/builder"
	"converter-generator/config"
	"converter-generator/converter"
	"converter-generator/generic"
	"converter-generator/internal/analyze"
	"converter-generator/internal/common"
	"converter-generator/internal/diagnostic"
	"converter-generator/internal/match"
	"converter-generator/internal/plan"
	"converter-generator/record"
)

// DefaultFilename is the name of the generated file.
const DefaultFilename = "converters_gen.go"

// Import paths of the packages generated code depends on.
var (
	builderPkg   = reflect.TypeFor[builder.Pair]().PkgPath()
	genericPkg   = reflect.TypeFor[generic.Map]().PkgPath()
	converterPkg = reflect.TypeFor[converter.Converter]().PkgPath()
)

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// Filename of the generated file inside the package directory.
	Filename string
	// OmitIfDefault is the global omit-if-default flag.
	OmitIfDefault bool
	// Overrides holds per-type overrides, may be nil.
	Overrides *config.File
	// Types restricts generation to these type names; empty means every record.
	Types []string
	// Register emits RegisterConverters.
	Register bool
	// Strict turns unknown overrides and unknown configured types into errors.
	Strict bool
	// DebugDir receives the unformatted source when formatting fails.
	DebugDir string
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Filename: DefaultFilename,
		Register: true,
	}
}

// Generator renders converter functions for the records of a package.
type Generator struct {
	config GeneratorConfig
	log    zerolog.Logger
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	if config.Filename == "" {
		config.Filename = DefaultFilename
	}

	return &Generator{config: config, log: zerolog.Nop()}
}

// WithLogger sets the logger.
func (g *Generator) WithLogger(log zerolog.Logger) *Generator {
	g.log = log
	return g
}

// WithDebugDir sets where unformatted source is written when formatting fails.
func (g *Generator) WithDebugDir(dir string) *Generator {
	g.config.DebugDir = dir
	return g
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Dir is the directory of the package the file belongs to.
	Dir string
	// Filename is the name of the file (e.g., "converters_gen.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// TypePlan is the field plan of one record type.
type TypePlan struct {
	Type          *analyze.TypeInfo
	OmitIfDefault bool
	Plan          *plan.Plan
}

// Plan plans every selected record of the package pkgPath.
// Diagnostics of every type are returned; an error means at least one
// type cannot be generated.
func (g *Generator) Plan(graph *analyze.TypeGraph, pkgPath string) ([]*TypePlan, diagnostic.Diagnostics, error) {
	var diags diagnostic.Diagnostics

	pkg, ok := graph.Packages[pkgPath]
	if !ok {
		return nil, diags, fmt.Errorf("package %s not loaded", pkgPath)
	}

	records := graph.Records(pkgPath)
	g.checkConfiguredTypes(pkg, records, &diags)

	selected, err := g.selectTypes(records, &diags)
	if err != nil {
		return nil, diags, err
	}

	plans := make([]*TypePlan, 0, len(selected))

	for _, t := range selected {
		for _, e := range t.Errors {
			diags.AddError(diagnostic.CodeInvalidConfig, e.Error(), t.ID.String(), "")
		}

		if len(t.Errors) > 0 {
			continue
		}

		names := []string{t.ID.String(), t.ID.Short()}
		omit := g.config.Overrides.OmitIfDefaultOr(g.config.OmitIfDefault, names...)
		p := plan.New(recordOf(t), omit, g.config.Overrides.Overrides(names...))

		diags.Merge(p.Diagnostics)
		plans = append(plans, &TypePlan{Type: t, OmitIfDefault: omit, Plan: p})
	}

	if g.config.Overrides.StrictOr(g.config.Strict) {
		diags = promote(diags, diagnostic.CodeUnknownOverride, diagnostic.CodeUnknownType)
	}

	if diags.HasErrors() {
		return plans, diags, fmt.Errorf("planning %s: %w", pkgPath, diags.Error())
	}

	return plans, diags, nil
}

// Generate renders the converter file of the package pkgPath.
func (g *Generator) Generate(graph *analyze.TypeGraph, pkgPath string) (*GeneratedFile, diagnostic.Diagnostics, error) {
	plans, diags, err := g.Plan(graph, pkgPath)
	if err != nil {
		return nil, diags, err
	}

	pkg := graph.Packages[pkgPath]
	file := &GeneratedFile{Dir: pkg.Dir, Filename: g.config.Filename}

	if len(plans) == 0 {
		return nil, diags, fmt.Errorf("no record types to generate in %s", pkgPath)
	}

	data := g.buildFileData(pkg, plans)

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, diags, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		if g.config.DebugDir != "" {
			if derr := writeDebugUnformatted(g.config.DebugDir, file.Filename, buf.Bytes()); derr != nil {
				g.log.Warn().Err(derr).Msg("failed to write unformatted source")
			}
		}

		file.Content = buf.Bytes()

		return file, diags, fmt.Errorf("formatting code: %w", err)
	}

	file.Content = formatted

	g.log.Debug().
		Str("package", pkgPath).
		Int("types", len(plans)).
		Int("bytes", len(formatted)).
		Msg("generated converter file")

	return file, diags, nil
}

// selectTypes applies the Types filter.
func (g *Generator) selectTypes(records []*analyze.TypeInfo, diags *diagnostic.Diagnostics) ([]*analyze.TypeInfo, error) {
	if len(g.config.Types) == 0 {
		return records, nil
	}

	byName := make(map[string]*analyze.TypeInfo, len(records))
	names := make([]string, len(records))

	for i, r := range records {
		byName[r.ID.Name] = r
		names[i] = r.ID.Name
	}

	var out []*analyze.TypeInfo

	for _, name := range g.config.Types {
		t, ok := byName[name]
		if !ok {
			diags.AddError(diagnostic.CodeUnknownType, "no record type with this name", name, "",
				match.Suggest(name, names, match.DefaultSuggestThreshold)...)

			continue
		}

		out = append(out, t)
	}

	if diags.HasErrors() {
		return nil, diags.Error()
	}

	return out, nil
}

// checkConfiguredTypes warns about configured types of this package that do not exist.
func (g *Generator) checkConfiguredTypes(pkg *analyze.PackageInfo, records []*analyze.TypeInfo, diags *diagnostic.Diagnostics) {
	if g.config.Overrides == nil {
		return
	}

	known := make(map[string]bool, 2*len(records))
	names := make([]string, len(records))

	for i, r := range records {
		known[r.ID.String()] = true
		known[r.ID.Short()] = true
		names[i] = r.ID.Name
	}

	alias := common.PkgAlias(pkg.Path)

	for _, name := range g.config.Overrides.TypeNames() {
		pkgPart, typePart, ok := cutLast(name, ".")
		if !ok || known[name] || (pkgPart != pkg.Path && pkgPart != alias) {
			continue
		}

		diags.AddWarning(diagnostic.CodeUnknownType, "configured type is not a record of this package", name, "",
			match.Suggest(typePart, names, match.DefaultSuggestThreshold)...)
	}
}

// promote turns the warnings carrying one of codes into errors.
func promote(diags diagnostic.Diagnostics, codes ...string) diagnostic.Diagnostics {
	out := diagnostic.Diagnostics{Errors: slices.Clone(diags.Errors), Infos: diags.Infos}

	for _, w := range diags.Warnings {
		if slices.Contains(codes, w.Code) {
			w.Severity = diagnostic.SeverityError
		}

		out.Add(w)
	}

	return out
}

// recordOf returns the planner's view of t.
func recordOf(t *analyze.TypeInfo) plan.Record {
	specs := make([]record.FieldSpec, len(t.Fields))
	for i := range t.Fields {
		specs[i] = t.Fields[i].Spec()
	}

	return plan.Record{Name: t.ID.String(), Fields: specs}
}

func cutLast(s, sep string) (before, after string, found bool) {
	i := strings.LastIndex(s, sep)
	if i < 0 {
		return s, "", false
	}

	return s[:i], s[i+len(sep):], true
}
