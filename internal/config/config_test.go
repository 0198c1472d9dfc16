package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
zoom_presets = ["100%", "200%"]
default_zoom = "100%"
base_columns = 100
case_sensitive_search = true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, []string{"100%", "200%"}, cfg.ZoomPresets)
	require.Equal(t, "100%", cfg.DefaultZoom)
	require.Equal(t, 100, cfg.BaseColumns)
	require.True(t, cfg.CaseSensitiveSearch)
	// Unset fields keep their defaults.
	require.Equal(t, "docgrip.log", cfg.LogFile)
}

func TestLoadMalformedFileFallsBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("zoom_presets = [unclosed"), 0644))

	cfg, err := Load(path)
	require.Error(t, err)
	require.Equal(t, DefaultConfig(), cfg)
}
