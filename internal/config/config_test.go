package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/HMasataka/servedir/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "servedir.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := config.Default()

	assert.Equal(t, ":8000", cfg.Addr)
	assert.Equal(t, ".", cfg.Root)
	assert.Equal(t, "index.html", cfg.Index)
	assert.True(t, cfg.OpenBrowser)
}

func TestLoad(t *testing.T) {
	t.Run("all keys set", func(t *testing.T) {
		path := writeConfig(t, `
addr = ":3000"
root = "public"
index = "home.html"
open = false
`)

		cfg, err := config.Load(path)

		require.NoError(t, err)
		assert.Equal(t, ":3000", cfg.Addr)
		assert.Equal(t, filepath.Join(filepath.Dir(path), "public"), cfg.Root)
		assert.Equal(t, "home.html", cfg.Index)
		assert.False(t, cfg.OpenBrowser)
	})

	t.Run("absent keys keep defaults", func(t *testing.T) {
		path := writeConfig(t, `addr = ":3000"`)

		cfg, err := config.Load(path)

		require.NoError(t, err)
		assert.Equal(t, ":3000", cfg.Addr)
		assert.Equal(t, ".", cfg.Root)
		assert.Equal(t, "index.html", cfg.Index)
		assert.True(t, cfg.OpenBrowser)
	})

	t.Run("absolute root is left alone", func(t *testing.T) {
		dir := t.TempDir()
		path := writeConfig(t, "root = '"+dir+"'")

		cfg, err := config.Load(path)

		require.NoError(t, err)
		assert.Equal(t, dir, cfg.Root)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := config.Load(filepath.Join(t.TempDir(), "nope.toml"))

		assert.Error(t, err)
	})

	t.Run("malformed toml", func(t *testing.T) {
		path := writeConfig(t, "addr = [broken")

		_, err := config.Load(path)

		assert.Error(t, err)
	})

	t.Run("invalid values rejected", func(t *testing.T) {
		path := writeConfig(t, `index = "docs/home.html"`)

		_, err := config.Load(path)

		assert.Error(t, err)
	})
}

func TestConfig_Validate(t *testing.T) {
	t.Run("defaults are valid", func(t *testing.T) {
		assert.NoError(t, config.Default().Validate())
	})

	t.Run("empty addr", func(t *testing.T) {
		cfg := config.Default()
		cfg.Addr = ""

		assert.Error(t, cfg.Validate())
	})

	t.Run("empty root", func(t *testing.T) {
		cfg := config.Default()
		cfg.Root = ""

		assert.Error(t, cfg.Validate())
	})

	t.Run("index with path separator", func(t *testing.T) {
		cfg := config.Default()
		cfg.Index = "docs/index.html"

		assert.Error(t, cfg.Validate())
	})
}
