package analyze

import (
	"errors"
	"fmt"
	"go/types"
	"path/filepath"
	"reflect"

	"golang.org/x/tools/go/packages"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedTypes |
	packages.NeedImports

// Analyzer loads Go packages and builds a type graph.
type Analyzer struct {
	dir       string
	graph     *TypeGraph
	typeCache map[types.Type]*TypeInfo // Cache to handle recursive types
}

// NewAnalyzer creates a new Analyzer that resolves patterns relative to the
// current directory.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		graph:     NewTypeGraph(),
		typeCache: make(map[types.Type]*TypeInfo),
	}
}

// WithDir sets the directory patterns are resolved from.
func (a *Analyzer) WithDir(dir string) *Analyzer {
	a.dir = dir
	return a
}

// LoadPackages loads the specified packages and builds the type graph.
// Patterns are standard Go package patterns (e.g., "./store", "converter-generator/store").
func (a *Analyzer) LoadPackages(patterns ...string) (*TypeGraph, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
		Dir:  a.dir,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	// Check for package errors
	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %w", errors.Join(errs...))
	}

	// Register packages first so isExternalPackage sees all of them
	for _, pkg := range pkgs {
		a.graph.Packages[pkg.PkgPath] = &PackageInfo{
			Path: pkg.PkgPath,
			Name: pkg.Name,
			Dir:  packageDir(pkg),
		}
	}

	for _, pkg := range pkgs {
		a.processPackage(pkg)
	}

	return a.graph, nil
}

// Graph returns the current type graph.
func (a *Analyzer) Graph() *TypeGraph {
	return a.graph
}

func packageDir(pkg *packages.Package) string {
	if len(pkg.GoFiles) == 0 {
		return ""
	}

	return filepath.Dir(pkg.GoFiles[0])
}

// processPackage extracts types from a loaded package.
func (a *Analyzer) processPackage(pkg *packages.Package) {
	pkgInfo := a.graph.Packages[pkg.PkgPath]

	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		obj := scope.Lookup(name)

		// Only process type names (not variables, constants, functions)
		typeName, ok := obj.(*types.TypeName)
		if !ok || typeName.IsAlias() {
			continue
		}

		// Only process exported types
		if !typeName.Exported() {
			continue
		}

		typeID := TypeID{
			PkgPath: pkg.PkgPath,
			Name:    name,
		}

		typeInfo := a.analyzeType(typeName.Type())
		typeInfo.ID = typeID

		a.graph.Types[typeID] = typeInfo
		pkgInfo.Types = append(pkgInfo.Types, typeID)
	}
}

// analyzeType recursively analyzes a go/types.Type and returns a TypeInfo.
func (a *Analyzer) analyzeType(t types.Type) *TypeInfo {
	// Check cache to handle recursive types
	if cached, ok := a.typeCache[t]; ok {
		return cached
	}

	info := &TypeInfo{
		GoType: t,
	}

	// Pre-cache to handle recursive types (we'll fill in details)
	a.typeCache[t] = info

	switch tt := t.(type) {
	case *types.Named:
		a.analyzeNamedType(tt, info)

	case *types.Basic:
		info.Kind = TypeKindBasic

	case *types.Pointer:
		info.Kind = TypeKindPointer
		info.ElemType = a.analyzeType(tt.Elem())

	case *types.Slice:
		info.Kind = TypeKindSlice
		info.ElemType = a.analyzeType(tt.Elem())

	case *types.Array:
		info.Kind = TypeKindArray
		info.ElemType = a.analyzeType(tt.Elem())

	case *types.Map:
		info.Kind = TypeKindMap
		info.ElemType = a.analyzeType(tt.Elem())

	case *types.Interface:
		info.Kind = TypeKindInterface

	case *types.Struct:
		info.Kind = TypeKindStruct
		a.analyzeStructFields(tt, info)

	default:
		// Channels, functions, etc. are marked as unknown (unsupported)
		info.Kind = TypeKindUnknown
	}

	return info
}

// analyzeNamedType analyzes a named type.
func (a *Analyzer) analyzeNamedType(named *types.Named, info *TypeInfo) {
	obj := named.Obj()

	pkgPath := ""
	if obj.Pkg() != nil {
		pkgPath = obj.Pkg().Path()
	}

	info.ID = TypeID{
		PkgPath: pkgPath,
		Name:    obj.Name(),
	}

	if pkgPath == "" || a.isExternalPackage(pkgPath) {
		// External/opaque type (e.g., time.Time); the converter decides how it converts
		info.Kind = TypeKindExternal
		info.Underlying = a.analyzeType(named.Underlying())

		return
	}

	switch ut := named.Underlying().(type) {
	case *types.Struct:
		info.Kind = TypeKindStruct
		info.HasValidate = hasValidate(named)
		a.analyzeStructFields(ut, info)

	default:
		// Named type wrapping something else (e.g., type OrderStatus string)
		info.Kind = TypeKindAlias
		info.Underlying = a.analyzeType(ut)
	}
}

// isExternalPackage returns true if the package is not in our analyzed set.
func (a *Analyzer) isExternalPackage(pkgPath string) bool {
	_, ok := a.graph.Packages[pkgPath]
	return !ok
}

// analyzeStructFields extracts fields from a struct type.
func (a *Analyzer) analyzeStructFields(st *types.Struct, info *TypeInfo) {
	seen := make(map[string]bool)

	for i := range st.NumFields() {
		field := st.Field(i)

		if !field.Exported() {
			continue
		}

		tag := reflect.StructTag(st.Tag(i))

		key, skip := convKey(tag, field.Name())
		if skip {
			continue
		}

		if seen[key] {
			info.Errors = append(info.Errors, fmt.Errorf("%s: duplicate field name %q", info.ID, key))
			continue
		}

		seen[key] = true

		fieldInfo := FieldInfo{
			Name:     field.Name(),
			Key:      key,
			Exported: true,
			Type:     a.analyzeType(field.Type()),
			Tag:      tag,
			Embedded: field.Embedded(),
			Index:    i,
		}

		def, err := parseDefault(tag, field.Type())
		if err != nil {
			info.Errors = append(info.Errors, fmt.Errorf("%s.%s: %w", info.ID, field.Name(), err))
		}

		fieldInfo.Default = def

		info.Fields = append(info.Fields, fieldInfo)
	}
}

// hasValidate reports whether *T has a method Validate() error.
func hasValidate(named *types.Named) bool {
	obj, _, _ := types.LookupFieldOrMethod(types.NewPointer(named), true, named.Obj().Pkg(), "Validate")

	fn, ok := obj.(*types.Func)
	if !ok {
		return false
	}

	sig, ok := fn.Type().(*types.Signature)
	if !ok || sig.Params().Len() != 0 || sig.Results().Len() != 1 {
		return false
	}

	return types.Identical(sig.Results().At(0).Type(), types.Universe.Lookup("error").Type())
}

// GetStruct returns the TypeInfo for a named struct.
func (a *Analyzer) GetStruct(pkgPath, typeName string) (*TypeInfo, error) {
	id := TypeID{PkgPath: pkgPath, Name: typeName}

	info := a.graph.GetType(id)
	if info == nil {
		return nil, fmt.Errorf("type %s not found", id)
	}

	if info.Kind != TypeKindStruct {
		return nil, fmt.Errorf("type %s is not a struct (kind: %s)", id, info.Kind)
	}

	return info, nil
}
