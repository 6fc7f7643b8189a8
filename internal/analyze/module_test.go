package analyze

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindModule(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "go.mod"), []byte("module example.com/shop\n\ngo 1.24\n"), 0o644))

	nested := filepath.Join(root, "internal", "orders")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	mod, err := FindModule(nested)
	require.NoError(t, err)
	assert.Equal(t, "example.com/shop", mod.Path)

	path, err := mod.ImportPath(nested)
	require.NoError(t, err)
	assert.Equal(t, "example.com/shop/internal/orders", path)

	path, err = mod.ImportPath(root)
	require.NoError(t, err)
	assert.Equal(t, "example.com/shop", path)

	_, err = mod.ImportPath(filepath.Dir(root))
	require.Error(t, err)
}

func TestFindModule_ThisRepository(t *testing.T) {
	mod, err := FindModule(".")
	require.NoError(t, err)
	assert.Equal(t, "converter-generator", mod.Path)

	path, err := mod.ImportPath(".")
	require.NoError(t, err)
	assert.Equal(t, "converter-generator/internal/analyze", path)
}
