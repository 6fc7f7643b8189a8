package gen

import (
	"fmt"
	"strconv"
	"text/template"

	"converter-generator/internal/analyze"
	"converter-generator/internal/common"
	"converter-generator/internal/plan"
	"converter-generator/record"
)

// fileData is the template input for one generated file.
type fileData struct {
	Package  string
	Imports  []analyze.Import
	Types    []typeData
	Register bool
}

// typeData is the template input for one record type.
type typeData struct {
	Name        string // Go type name
	TypeName    string // Package-qualified name used in errors
	Unstructure []writeData
	Structure   []readData
	Deferred    []readData // Self factory defaults applied after every other field
	Validate    bool
}

// writeData renders one field of an unstructure function.
type writeData struct {
	GoName  string
	Key     string
	Type    string
	Default string // Expression compared against, empty when the field is always emitted
}

// readData renders one field of a structure function.
type readData struct {
	GoName   string
	Field    string
	Key      string
	Type     string
	Required bool
	Default  string // Expression assigned when the key is absent
	Deferred bool
}

var fileTemplate = template.Must(template.New("file").Funcs(template.FuncMap{
	"quote": strconv.Quote,
}).Parse(fileTmpl))

const fileTmpl = `// Code generated by converter-generator. DO NOT EDIT.

package {{.Package}}

import (
{{- range .Imports}}
	{{if .Alias}}{{.Alias}} {{end}}{{quote .Path}}
{{- end}}
)
{{range .Types}}
// Unstructure{{.Name}} converts v into its generic map form.
// A nil v yields a nil map.
func Unstructure{{.Name}}(c builder.Unstructurer, v *{{.Name}}) (*generic.Map, error) {
	if v == nil {
		return nil, nil
	}

	out := generic.NewMap({{len .Unstructure}})
{{range .Unstructure}}
{{- if .Default}}
	if !builder.Equal[{{.Type}}](v.{{.GoName}}, {{.Default}}) {
		if err := builder.Emit(c, out, {{quote .Key}}, v.{{.GoName}}); err != nil {
			return nil, err
		}
	}
{{- else}}
	if err := builder.Emit(c, out, {{quote .Key}}, v.{{.GoName}}); err != nil {
		return nil, err
	}
{{- end}}
{{end}}
	return out, nil
}

// Structure{{.Name}} builds an instance of {{.Name}} from generic map data.
func Structure{{.Name}}(c builder.Structurer, data any) ({{.Name}}, error) {
	var out {{.Name}}

	get, err := builder.Lookup({{quote .TypeName}}, data)
	if err != nil {
		return out, err
	}
{{- if not .Structure}}

	_ = get
{{- end}}
{{- range .Deferred}}

	missing{{.GoName}} := false
{{- end}}
{{$type := .}}
{{- range .Structure}}
{{- if .Required}}
	if raw, ok := get({{quote .Key}}); !ok {
		return {{$type.Name}}{}, &builder.MissingFieldError{Type: {{quote $type.TypeName}}, Field: {{quote .Field}}, Key: {{quote .Key}}}
	} else if out.{{.GoName}}, err = builder.Field[{{.Type}}](c, raw); err != nil {
		return {{$type.Name}}{}, err
	}
{{- else}}
	if raw, ok := get({{quote .Key}}); ok {
		if out.{{.GoName}}, err = builder.Field[{{.Type}}](c, raw); err != nil {
			return {{$type.Name}}{}, err
		}
	} else {
{{- if .Deferred}}
		missing{{.GoName}} = true
{{- else}}
		out.{{.GoName}} = {{.Default}}
{{- end}}
	}
{{- end}}
{{end}}
{{- range .Deferred}}
	if missing{{.GoName}} {
		out.{{.GoName}} = {{.Default}}
	}
{{end}}
{{- if .Validate}}
	if err := out.Validate(); err != nil {
		return {{.Name}}{}, &builder.StructureError{Type: {{quote .TypeName}}, Err: err}
	}
{{end}}
	return out, nil
}
{{end}}
{{- if .Register}}
// RegisterConverters installs the functions of this file as hooks on c.
func RegisterConverters(c *converter.Converter) {
{{- range .Types}}
	c.RegisterUnstructureHook(reflect.TypeFor[{{.Name}}](), func(v any) (any, error) {
		inst := v.({{.Name}})
		return Unstructure{{.Name}}(c, &inst)
	})
	c.RegisterStructureHook(reflect.TypeFor[{{.Name}}](), func(data any, _ reflect.Type) (any, error) {
		return Structure{{.Name}}(c, data)
	})
{{- end}}
}
{{- end}}
`

// buildFileData collects the template input for the planned types of pkg.
func (g *Generator) buildFileData(pkg *analyze.PackageInfo, plans []*TypePlan) *fileData {
	reserved := []string{common.PkgAlias(builderPkg), common.PkgAlias(genericPkg)}
	if g.config.Register {
		reserved = append(reserved, common.PkgAlias(converterPkg), "reflect")
	}

	ts := analyze.NewTypeStringer(pkg.Path, reserved...)

	data := &fileData{
		Package:  pkg.Name,
		Register: g.config.Register,
	}

	for _, tp := range plans {
		data.Types = append(data.Types, buildTypeData(ts, tp))
	}

	data.Imports = append(data.Imports,
		analyze.Import{Path: builderPkg},
		analyze.Import{Path: genericPkg},
	)

	if g.config.Register {
		data.Imports = append(data.Imports,
			analyze.Import{Path: converterPkg},
			analyze.Import{Path: "reflect"},
		)
	}

	data.Imports = append(data.Imports, ts.Imports()...)

	return data
}

func buildTypeData(ts *analyze.TypeStringer, tp *TypePlan) typeData {
	t := tp.Type

	byKey := make(map[string]*analyze.FieldInfo, len(t.Fields))
	for i := range t.Fields {
		byKey[t.Fields[i].Key] = &t.Fields[i]
	}

	td := typeData{
		Name:     t.ID.Name,
		TypeName: t.ID.String(),
		Validate: t.HasValidate,
	}

	for _, f := range tp.Plan.Unstructure {
		fi := byKey[f.Spec.Name]

		w := writeData{
			GoName: fi.Name,
			Key:    f.Key,
			Type:   ts.String(fi.Type),
		}

		if f.Op.Omits() {
			w.Default = defaultExpr(fi.Default, "*v")
		}

		td.Unstructure = append(td.Unstructure, w)
	}

	for _, f := range tp.Plan.Structure {
		fi := byKey[f.Spec.Name]

		r := readData{
			GoName:   fi.Name,
			Field:    f.Spec.Name,
			Key:      f.Key,
			Type:     ts.String(fi.Type),
			Required: f.Op == plan.OpRequired,
		}

		if !r.Required {
			r.Default = defaultExpr(fi.Default, "out")
			r.Deferred = fi.Default.Kind == record.DefaultSelfFactory
		}

		if r.Deferred {
			td.Deferred = append(td.Deferred, r)
		}

		td.Structure = append(td.Structure, r)
	}

	return td
}

// defaultExpr returns the expression evaluating d. self is the instance
// expression handed to self factories.
func defaultExpr(d analyze.Default, self string) string {
	switch d.Kind {
	case record.DefaultFactory:
		return d.Func + "()"
	case record.DefaultSelfFactory:
		return fmt.Sprintf("%s(%s)", d.Func, self)
	default:
		return d.Expr
	}
}
