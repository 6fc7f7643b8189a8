package analyze

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"golang.org/x/mod/modfile"
)

// ErrNoModule is returned when no go.mod is found above a directory.
var ErrNoModule = errors.New("go.mod not found")

// Module describes the Go module enclosing a directory.
type Module struct {
	Root string // Directory containing go.mod
	Path string // Module path declared in go.mod
}

// FindModule walks up from dir to the nearest go.mod and reads its module path.
func FindModule(dir string) (*Module, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}

	for d := abs; ; d = filepath.Dir(d) {
		gomod := filepath.Join(d, "go.mod")

		data, err := os.ReadFile(gomod)
		if err == nil {
			modPath := modfile.ModulePath(data)
			if modPath == "" {
				return nil, fmt.Errorf("%s declares no module path", gomod)
			}

			return &Module{Root: d, Path: modPath}, nil
		}

		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}

		if filepath.Dir(d) == d {
			return nil, fmt.Errorf("%w above %s", ErrNoModule, abs)
		}
	}
}

// ImportPath returns the import path of the package in dir, which must lie
// inside the module.
func (m *Module) ImportPath(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	rel, err := filepath.Rel(m.Root, abs)
	if err != nil {
		return "", err
	}

	if rel == "." {
		return m.Path, nil
	}

	if rel == ".." || filepath.IsAbs(rel) || len(rel) > 2 && rel[:3] == ".."+string(filepath.Separator) {
		return "", fmt.Errorf("%s is outside module %s", dir, m.Path)
	}

	return path.Join(m.Path, filepath.ToSlash(rel)), nil
}
