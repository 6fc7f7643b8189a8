package analyze

import (
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeStringer(t *testing.T) {
	analyzer := NewAnalyzer()
	_, err := analyzer.LoadPackages(warehousePkg, storePkg)
	require.NoError(t, err)

	shipment, err := analyzer.GetStruct(warehousePkg, "Shipment")
	require.NoError(t, err)

	s := NewTypeStringer(warehousePkg, "builder", "generic")

	got := make([]string, len(shipment.Fields))
	for i := range shipment.Fields {
		got[i] = s.String(shipment.Fields[i].Type)
	}

	assert.Equal(t, []string{
		"uint", "store.Order", "string", "float64", "map[string]string", "*time.Time", "time.Duration",
	}, got)

	assert.Equal(t, []Import{
		{Path: storePkg},
		{Path: "time"},
	}, s.Imports())

	assert.Equal(t, "<nil>", s.String(nil))
}

func TestTypeStringer_SamePackageAndCollisions(t *testing.T) {
	local := types.NewPackage("example.com/app/shop", "shop")
	other := types.NewPackage("example.com/lib/generic", "generic")

	named := types.NewNamed(types.NewTypeName(0, local, "Order", nil), types.NewStruct(nil, nil), nil)
	foreign := types.NewNamed(types.NewTypeName(0, other, "Box", nil), types.NewStruct(nil, nil), nil)

	s := NewTypeStringer("example.com/app/shop", "generic")

	assert.Equal(t, "Order", s.TypeString(named))
	assert.Equal(t, "[]*generic2.Box", s.TypeString(types.NewSlice(types.NewPointer(foreign))))
	assert.Equal(t, "generic2.Box", s.TypeString(foreign))
	assert.Equal(t, []Import{{Alias: "generic2", Path: "example.com/lib/generic"}}, s.Imports())
}
