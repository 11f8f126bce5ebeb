package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "standard", cfg.Font)
	assert.Equal(t, 80, cfg.Width)
	assert.True(t, cfg.Color)
	assert.Empty(t, cfg.Templates.Dir)
}

func TestLoadUserConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)

	dir := filepath.Join(home, "figgo")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"),
		[]byte("font = \"doom\"\nwidth = 120\n"), 0644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "doom", cfg.Font)
	assert.Equal(t, 120, cfg.Width)
	// Values the file does not set keep their defaults
	assert.True(t, cfg.Color)
}

func TestEnvironmentOverridesFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)

	dir := filepath.Join(home, "figgo")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"),
		[]byte("font = \"doom\"\n"), 0644))

	t.Setenv("FIGGO_FONT", "slant")
	t.Setenv("FIGGO_TEMPLATES_DIR", "/custom/templates")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "slant", cfg.Font)
	assert.Equal(t, "/custom/templates", cfg.Templates.Dir)
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)

	dir := filepath.Join(home, "figgo")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"),
		[]byte("font = [unclosed"), 0644))

	_, err := Load()
	assert.Error(t, err)
}
