package tui

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadStyles_ArchivoInexistenteUsaDefaults(t *testing.T) {
	st, err := LoadStyles(filepath.Join(t.TempDir(), "no-existe.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Equal(t, DefaultPalette(), st.Palette)
}

func TestLoadStyles_SobreescribeSoloLasClavesPresentes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "styles.yaml")
	require.NoError(t, os.WriteFile(path, []byte("primary: \"#ff0000\"\nerror: \"196\"\n"), 0o600))

	st, err := LoadStyles(path)
	require.NoError(t, err)
	assert.Equal(t, "#ff0000", st.Palette.Primary)
	assert.Equal(t, "196", st.Palette.Error)
	assert.Equal(t, DefaultPalette().Accent, st.Palette.Accent)
}

func TestLoadStyles_YAMLInvalido(t *testing.T) {
	path := filepath.Join(t.TempDir(), "styles.yaml")
	require.NoError(t, os.WriteFile(path, []byte("primary: [sin cerrar\n"), 0o600))

	st, err := LoadStyles(path)
	assert.Error(t, err)
	assert.Equal(t, DefaultPalette(), st.Palette)
}

func TestLoadStyles_SinRuta(t *testing.T) {
	st, err := LoadStyles("")
	require.NoError(t, err)
	assert.Equal(t, DefaultPalette(), st.Palette)
}
