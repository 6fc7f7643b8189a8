package analyze

import (
	"go/constant"
	"go/token"
	"go/types"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"converter-generator/record"
)

func TestParseDefault(t *testing.T) {
	str := types.Typ[types.String]
	integer := types.Typ[types.Int]
	float := types.Typ[types.Float64]
	boolean := types.Typ[types.Bool]
	slice := types.NewSlice(str)

	tests := []struct {
		name    string
		tag     reflect.StructTag
		typ     types.Type
		want    Default
		wantErr bool
	}{
		{"none", `conv:"x"`, integer, Default{}, false},
		{"string", `default:"open"`, str, Default{Kind: record.DefaultStatic, Expr: `"open"`}, false},
		{"quoted number into string", `default:"123"`, str, Default{Kind: record.DefaultStatic, Expr: `"123"`}, false},
		{"empty string", `default:""`, str, Default{Kind: record.DefaultStatic, Expr: `""`}, false},
		{"empty int", `default:""`, integer, Default{Kind: record.DefaultStatic, Expr: "0"}, false},
		{"int", `default:"42"`, integer, Default{Kind: record.DefaultStatic, Expr: "42"}, false},
		{"negative int", `default:"-7"`, integer, Default{Kind: record.DefaultStatic, Expr: "-7"}, false},
		{"bad int", `default:"four"`, integer, Default{}, true},
		{"float", `default:"1.50"`, float, Default{Kind: record.DefaultStatic, Expr: "1.5"}, false},
		{"bool", `default:"true"`, boolean, Default{Kind: record.DefaultStatic, Expr: "true"}, false},
		{"bad bool", `default:"maybe"`, boolean, Default{}, true},
		{"null slice", `default:"null"`, slice, Default{Kind: record.DefaultStatic, Expr: "nil"}, false},
		{"composite literal", `default:"[a, b]"`, slice, Default{}, true},
		{"sequence into string", `default:"[a, b]"`, str, Default{}, true},
		{"factory", `default_factory:"NewTags"`, slice, Default{Kind: record.DefaultFactory, Func: "NewTags"}, false},
		{"self factory", `default_self:"Total"`, integer, Default{Kind: record.DefaultSelfFactory, Func: "Total"}, false},
		{"bad factory name", `default_factory:"new tags"`, slice, Default{}, true},
		{"two defaults", `default:"1" default_factory:"One"`, integer, Default{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDefault(tt.tag, tt.typ)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnsupportedDefault)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConvKey(t *testing.T) {
	key, skip := convKey(`conv:"id"`, "ID")
	assert.Equal(t, "id", key)
	assert.False(t, skip)

	key, skip = convKey(`conv:",omitempty"`, "ID")
	assert.Equal(t, "ID", key)
	assert.False(t, skip)

	_, skip = convKey(`conv:"-"`, "ID")
	assert.True(t, skip)

	key, _ = convKey(`json:"id"`, "ID")
	assert.Equal(t, "ID", key)
}

// TestLiteral_MatchesRuntimeDefault checks that a default tag yields the
// same value in generated code as record.Describe decodes at runtime.
func TestLiteral_MatchesRuntimeDefault(t *testing.T) {
	tests := []struct {
		lit string
		rt  reflect.Type
		typ types.Type
	}{
		{"null", reflect.TypeFor[string](), types.Typ[types.String]},
		{"~", reflect.TypeFor[int](), types.Typ[types.Int]},
		{"true", reflect.TypeFor[string](), types.Typ[types.String]},
		{"1", reflect.TypeFor[bool](), types.Typ[types.Bool]},
		{"false", reflect.TypeFor[bool](), types.Typ[types.Bool]},
		{"42", reflect.TypeFor[int8](), types.Typ[types.Int8]},
		{"300", reflect.TypeFor[int8](), types.Typ[types.Int8]},
		{"1.0", reflect.TypeFor[int](), types.Typ[types.Int]},
		{"0x1F", reflect.TypeFor[uint16](), types.Typ[types.Uint16]},
		{"-1", reflect.TypeFor[uint](), types.Typ[types.Uint]},
		{"2.5", reflect.TypeFor[float32](), types.Typ[types.Float32]},
		{"1e3", reflect.TypeFor[float64](), types.Typ[types.Float64]},
		{"", reflect.TypeFor[float64](), types.Typ[types.Float64]},
		{"'quoted'", reflect.TypeFor[string](), types.Typ[types.String]},
		{"null", reflect.TypeFor[*string](), types.NewPointer(types.Typ[types.String])},
		{"", reflect.TypeFor[[]int](), types.NewSlice(types.Typ[types.Int])},
	}

	for _, tt := range tests {
		t.Run(tt.rt.String()+"/"+tt.lit, func(t *testing.T) {
			st := reflect.StructOf([]reflect.StructField{{
				Name: "F",
				Type: tt.rt,
				Tag:  reflect.StructTag(`default:"` + tt.lit + `"`),
			}})

			d, runtimeErr := record.Describe(st)
			expr, staticErr := literal(tt.lit, tt.typ)

			if runtimeErr != nil || staticErr != nil {
				assert.Error(t, runtimeErr, "runtime accepted what generation rejected")
				assert.Error(t, staticErr, "generation accepted %q as %s", tt.lit, expr)

				return
			}

			want := d.Fields[0].Default.Value

			tv, err := types.Eval(token.NewFileSet(), nil, token.NoPos, expr)
			require.NoError(t, err, expr)

			if tv.IsNil() {
				assert.True(t, reflect.ValueOf(want).IsNil(), "static nil, runtime %v", want)
				return
			}

			got := reflect.New(tt.rt).Elem()

			switch val := tv.Value; {
			case tt.rt.Kind() == reflect.String:
				got.SetString(constant.StringVal(val))
			case tt.rt.Kind() == reflect.Bool:
				got.SetBool(constant.BoolVal(val))
			case got.CanInt():
				i, _ := constant.Int64Val(val)
				got.SetInt(i)
			case got.CanUint():
				u, _ := constant.Uint64Val(val)
				got.SetUint(u)
			case got.CanFloat():
				f, _ := constant.Float64Val(val)
				got.SetFloat(f)
			}

			assert.Equal(t, want, got.Interface())
		})
	}
}
