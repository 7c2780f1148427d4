package theme

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuiltinThemesAreComplete(t *testing.T) {
	for _, def := range Builtin().Definitions() {
		t.Run(string(def.ID), func(t *testing.T) {
			require.NoError(t, def.Tokens.Validate())
			require.NotEmpty(t, def.Name)
			require.Equal(t, def, Get(string(def.ID)))
		})
	}
}

func TestGetFallsBackToDefault(t *testing.T) {
	for _, id := range []string{"", "unknown", "NEON-ish", "  ", "solarized"} {
		def := Get(id)
		require.Equal(t, IDDefault, def.ID, "id %q", id)
		require.NoError(t, def.Tokens.Validate())
	}
}

func TestLookupReportsRecognition(t *testing.T) {
	reg := Builtin()

	def, ok := reg.Lookup(" Neon ")
	require.True(t, ok)
	require.Equal(t, IDNeon, def.ID)

	def, ok = reg.Lookup("vaporwave")
	require.False(t, ok)
	require.Equal(t, reg.Default(), def)
}

func TestRegistryOrderAndIndex(t *testing.T) {
	reg := Builtin()
	require.Equal(t, []ID{IDDefault, IDDark, IDNeon, IDKpop}, reg.IDs())
	require.Equal(t, 4, reg.Len())
	require.Equal(t, 2, reg.IndexOf("neon"))
	require.Equal(t, 0, reg.IndexOf("missing"))
	require.True(t, reg.Has("KPOP"))
	require.False(t, reg.Has("kpop2"))
}

func TestNewRegistryRejectsBadInput(t *testing.T) {
	_, err := NewRegistry(IDDefault)
	require.Error(t, err)

	_, err = NewRegistry(IDDark, DefaultTheme)
	require.ErrorContains(t, err, "fallback")

	_, err = NewRegistry(IDDefault, DefaultTheme, DefaultTheme)
	require.ErrorContains(t, err, "duplicate")

	broken := NeonTheme
	broken.Tokens.Accent = ""
	_, err = NewRegistry(IDDefault, DefaultTheme, broken)
	require.ErrorContains(t, err, "accent is empty")
}

func TestDefinitionsReturnsCopy(t *testing.T) {
	reg := Builtin()
	defs := reg.Definitions()
	defs[0].Name = "mutated"
	require.Equal(t, "Default", reg.Default().Name)
}

func TestTokensValidate(t *testing.T) {
	tokens := DarkTheme.Tokens
	tokens.Cursor = "blue"
	tokens.Font = "serif"
	err := tokens.Validate()
	require.ErrorContains(t, err, `cursor "blue" is not #RRGGBB`)
	require.ErrorContains(t, err, `font "serif" is unknown`)
}
