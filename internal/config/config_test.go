package config

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	v := New()
	l, err := Load(afero.NewMemMapFs(), v)
	require.NoError(t, err)
	assert.Equal(t, Default(), l)
}

func TestLoad_ConfigFile(t *testing.T) {
	fsys := afero.NewMemMapFs()
	cfg := "blocks_dir: blocks\nstyles_dir: assets/scss/blocks\ntemplate_ext: .twig\nnamespace: theme\n"
	require.NoError(t, afero.WriteFile(fsys, "/theme/.blockgen.yaml", []byte(cfg), 0o644))

	v := New()
	v.Set(KeyRoot, "/theme")

	l, err := Load(fsys, v)
	require.NoError(t, err)
	assert.Equal(t, "blocks", l.BlocksDir)
	assert.Equal(t, "assets/scss/blocks", l.StylesDir)
	assert.Equal(t, "twig", l.TemplateExt)
	assert.Equal(t, "theme", l.Namespace)
	// Unset keys keep their defaults.
	assert.Equal(t, "functions.php", l.RegistrationFile)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/theme/.blockgen.yaml", []byte("category: FromFile\n"), 0o644))
	t.Setenv("BLOCKGEN_CATEGORY", "FromEnv")
	t.Setenv("BLOCKGEN_ROOT", "/theme")

	l, err := Load(fsys, New())
	require.NoError(t, err)
	assert.Equal(t, "FromEnv", l.Category)
	assert.Equal(t, "/theme", l.Root)
}

func TestLoad_RootKeyInFileIgnored(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/theme/.blockgen.yaml", []byte("root: /elsewhere\nicon: star-filled\n"), 0o644))

	v := New()
	v.Set(KeyRoot, "/theme")

	l, err := Load(fsys, v)
	require.NoError(t, err)
	assert.Equal(t, "/theme", l.Root)
	assert.Equal(t, "star-filled", l.Icon)
}

func TestLoad_MalformedFile(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/theme/.blockgen.yaml", []byte("blocks_dir: [\n"), 0o644))

	v := New()
	v.Set(KeyRoot, "/theme")
	_, err := Load(fsys, v)
	assert.Error(t, err)
}

func TestLayoutPaths(t *testing.T) {
	l := Default()
	l.Root = "/theme"

	assert.Equal(t, filepath.Join("/theme", "template-parts", "blocks", "hero-banner"), l.BlockDir("hero-banner"))
	assert.Equal(t, "hero-banner.php", l.TemplateFile("hero-banner"))
	assert.Equal(t, filepath.Join("/theme", "sass", "blocks", "_hero-banner.scss"), l.StylePath("hero-banner"))
	assert.Equal(t, filepath.Join("/theme", "sass", "blocks", "_blocks.scss"), l.StyleIndexPath())
	assert.Equal(t, filepath.Join("/theme", "functions.php"), l.RegistrationPath())
}

func TestFilePath(t *testing.T) {
	assert.Equal(t, filepath.Join("/theme", ".blockgen.yaml"), FilePath("/theme"))
}
