package analyze

import (
	"go/types"
	"reflect"
	"strings"

	"converter-generator/internal/common"
	"converter-generator/record"
)

// Tag keys read from struct fields.
const (
	TagName        = record.TagName
	TagDefault     = record.TagDefault
	TagFactory     = "default_factory"
	TagSelfFactory = "default_self"
)

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "converter-generator/store"
	Name    string // e.g., "Order"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// Short returns the name qualified by the last package path element, e.g. "store.Order".
func (t TypeID) Short() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return common.PkgAlias(t.PkgPath) + "." + t.Name
}

// TypeKind represents the kind of a type.
type TypeKind int

const (
	TypeKindUnknown  TypeKind = iota
	TypeKindBasic             // int, string, bool, etc.
	TypeKindStruct            // struct type
	TypeKindPointer           // pointer to another type
	TypeKindSlice             // slice of another type
	TypeKindArray             // array of another type
	TypeKindMap               // map type
	TypeKindAlias             // named type wrapping a non-struct type
	TypeKindExternal          // named type from a package outside the analyzed set (e.g., time.Time)
	TypeKindInterface         // interface type
)

// String returns a human-readable representation of the TypeKind.
func (k TypeKind) String() string {
	switch k {
	case TypeKindBasic:
		return "basic"
	case TypeKindStruct:
		return "struct"
	case TypeKindPointer:
		return "pointer"
	case TypeKindSlice:
		return "slice"
	case TypeKindArray:
		return "array"
	case TypeKindMap:
		return "map"
	case TypeKindAlias:
		return "alias"
	case TypeKindExternal:
		return "external"
	case TypeKindInterface:
		return "interface"
	default:
		return common.UnknownStr
	}
}

// TypeInfo describes a Go type in the type graph.
type TypeInfo struct {
	ID          TypeID      // Unique identifier (empty for unnamed types like *T or []T)
	Kind        TypeKind    // Kind of type
	Underlying  *TypeInfo   // For named types, the underlying type
	ElemType    *TypeInfo   // For pointers, slices, arrays and maps, the element type
	Fields      []FieldInfo // For structs, the list of fields
	GoType      types.Type  // The original go/types.Type
	HasValidate bool        // True if *T has a Validate() error method
	Errors      []error     // Tag problems found while analyzing the fields
}

// IsNamed returns true if this type has a name (TypeID is set).
func (t *TypeInfo) IsNamed() bool {
	return t.ID.Name != ""
}

// IsRecord returns true for named struct types without tag errors.
func (t *TypeInfo) IsRecord() bool {
	return t.IsNamed() && t.Kind == TypeKindStruct && len(t.Errors) == 0
}

// Default is the default declared by the tags of a field.
type Default struct {
	Kind record.DefaultKind
	// Expr is the Go expression of a static default.
	Expr string
	// Func is the name of the factory function.
	Func string
}

// FieldInfo describes a struct field.
type FieldInfo struct {
	Name     string            // Go field name
	Key      string            // External name from the conv tag, or Name
	Exported bool              // Whether the field is exported
	Type     *TypeInfo         // Field type
	Tag      reflect.StructTag // Raw struct tag
	Embedded bool              // Whether the field is embedded (anonymous)
	Index    int               // Field index in the struct
	Default  Default           // Declared default, if any
}

// HasDefault returns true if the field declares a default.
func (f *FieldInfo) HasDefault() bool {
	return f.Default.Kind != record.DefaultNone
}

// Spec returns the record view of the field used by the planner.
func (f *FieldInfo) Spec() record.FieldSpec {
	return record.FieldSpec{
		Name:    f.Key,
		GoName:  f.Name,
		Index:   f.Index,
		Default: record.Default{Kind: f.Default.Kind},
	}
}

// HasTag returns true if the field has the specified tag.
func (f *FieldInfo) HasTag(key string) bool {
	_, ok := f.Tag.Lookup(key)
	return ok
}

// GetTag returns the value of the specified tag.
func (f *FieldInfo) GetTag(key string) string {
	return f.Tag.Get(key)
}

// convKey parses the conv tag. skip is true for "-".
func convKey(tag reflect.StructTag, goName string) (key string, skip bool) {
	v, ok := tag.Lookup(TagName)
	if !ok {
		return goName, false
	}

	name, _, _ := strings.Cut(v, ",")

	switch name {
	case "-":
		return "", true
	case "":
		return goName, false
	default:
		return name, false
	}
}

// TypeGraph holds all analyzed types from loaded packages.
type TypeGraph struct {
	// Types maps TypeID to TypeInfo for all named types.
	Types map[TypeID]*TypeInfo
	// Packages maps package paths to their package info.
	Packages map[string]*PackageInfo
}

// NewTypeGraph creates a new empty TypeGraph.
func NewTypeGraph() *TypeGraph {
	return &TypeGraph{
		Types:    make(map[TypeID]*TypeInfo),
		Packages: make(map[string]*PackageInfo),
	}
}

// GetType returns the TypeInfo for a given TypeID, or nil if not found.
func (g *TypeGraph) GetType(id TypeID) *TypeInfo {
	return g.Types[id]
}

// Records returns the record types of a package in name order.
func (g *TypeGraph) Records(pkgPath string) []*TypeInfo {
	pkg, ok := g.Packages[pkgPath]
	if !ok {
		return nil
	}

	var out []*TypeInfo

	for _, id := range pkg.Types {
		if t := g.Types[id]; t != nil && t.IsNamed() && t.Kind == TypeKindStruct {
			out = append(out, t)
		}
	}

	return out
}

// PackageInfo holds information about a loaded package.
type PackageInfo struct {
	Path  string   // Import path
	Name  string   // Package name
	Dir   string   // Directory holding the package sources
	Types []TypeID // Named types defined in this package, in name order
}
