package analyze

import (
	"go/types"
	"sort"
	"strconv"
)

// Import is an import required by rendered type expressions.
type Import struct {
	Alias string // Empty when the package name is used as is
	Path  string
}

// TypeStringer renders go/types types as source expressions inside a
// package, collecting the imports they need.
type TypeStringer struct {
	pkgPath  string
	reserved map[string]bool
	imports  map[string]Import // by path
	names    map[string]string // name in use -> path
}

// NewTypeStringer creates a stringer for code living in package pkgPath.
// reserved names are already taken by other imports of the file.
func NewTypeStringer(pkgPath string, reserved ...string) *TypeStringer {
	s := &TypeStringer{
		pkgPath:  pkgPath,
		reserved: make(map[string]bool, len(reserved)),
		imports:  make(map[string]Import),
		names:    make(map[string]string),
	}

	for _, r := range reserved {
		s.reserved[r] = true
	}

	return s
}

// TypeString returns the source form of t.
func (s *TypeStringer) TypeString(t types.Type) string {
	return types.TypeString(t, s.qualifier)
}

// String returns the source form of a TypeInfo.
func (s *TypeStringer) String(t *TypeInfo) string {
	if t == nil || t.GoType == nil {
		return "<nil>"
	}

	return s.TypeString(t.GoType)
}

// Imports returns the collected imports sorted by path.
func (s *TypeStringer) Imports() []Import {
	out := make([]Import, 0, len(s.imports))
	for _, imp := range s.imports {
		out = append(out, imp)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Path < out[j].Path
	})

	return out
}

func (s *TypeStringer) qualifier(pkg *types.Package) string {
	if pkg.Path() == s.pkgPath {
		return ""
	}

	if imp, ok := s.imports[pkg.Path()]; ok {
		if imp.Alias != "" {
			return imp.Alias
		}

		return pkg.Name()
	}

	name := pkg.Name()
	alias := ""

	for i := 2; s.reserved[name] || s.names[name] != ""; i++ {
		name = pkg.Name() + strconv.Itoa(i)
		alias = name
	}

	s.names[name] = pkg.Path()
	s.imports[pkg.Path()] = Import{Alias: alias, Path: pkg.Path()}

	return name
}
