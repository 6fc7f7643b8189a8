package override

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestNew_Neutral(t *testing.T) {
	o := New()

	assert.True(t, o.IsNeutral())
	assert.Equal(t, "count", o.Key("count"))
	assert.True(t, o.Omits(true))
	assert.False(t, o.Omits(false))
}

func TestNew_Options(t *testing.T) {
	o := New(Rename("yy"), OmitIfDefault(false))

	assert.False(t, o.IsNeutral())
	assert.Equal(t, "yy", o.Key("y"))
	assert.Equal(t, Never, o.OmitIfDefault)
	assert.False(t, o.Omits(true))

	o = New(OmitIfDefault(true))
	assert.True(t, o.Omits(false))
}

func TestSet_For(t *testing.T) {
	s := Set{"y": New(Rename("yy"))}

	assert.Equal(t, "yy", s.For("y").Key("y"))
	assert.True(t, s.For("missing").IsNeutral())

	var nilSet Set
	assert.True(t, nilSet.For("x").IsNeutral())
}

func TestSet_Merge(t *testing.T) {
	base := Set{"a": New(Rename("A")), "b": New(OmitIfDefault(true))}
	merged := base.Merge(Set{"a": New(Rename("AA"))})

	assert.Equal(t, "AA", merged["a"].Rename)
	assert.Equal(t, Always, merged["b"].OmitIfDefault)
	assert.Equal(t, "A", base["a"].Rename, "merge must not modify the receiver")
}

func TestTristate_String(t *testing.T) {
	assert.Equal(t, "Inherit", Inherit.String())
	assert.Equal(t, "Always", Always.String())
	assert.Equal(t, "Never", Never.String())
	assert.Equal(t, "Tristate(7)", Tristate(7).String())
}

func TestParseTristate(t *testing.T) {
	tests := []struct {
		in      string
		want    Tristate
		wantErr bool
	}{
		{"", Inherit, false},
		{"inherit", Inherit, false},
		{"true", Always, false},
		{"false", Never, false},
		{"1", Always, false},
		{"maybe", Inherit, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTristate(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTristate_YAML(t *testing.T) {
	var doc struct {
		A Tristate `yaml:"a"`
		B Tristate `yaml:"b"`
		C Tristate `yaml:"c"`
	}

	err := yaml.Unmarshal([]byte("a: true\nb: false\nc: inherit\n"), &doc)
	require.NoError(t, err)

	assert.Equal(t, Always, doc.A)
	assert.Equal(t, Never, doc.B)
	assert.Equal(t, Inherit, doc.C)

	out, err := yaml.Marshal(struct {
		A Tristate `yaml:"a"`
		B Tristate `yaml:"b"`
	}{Always, Never})
	require.NoError(t, err)
	assert.Equal(t, "a: true\nb: false\n", string(out))
}
