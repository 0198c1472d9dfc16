package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration
type Config struct {
	// ZoomPresets are the specs the zoom keys cycle through, in order.
	ZoomPresets []string `toml:"zoom_presets"`
	// DefaultZoom is applied right after load ("fit" or a percentage).
	DefaultZoom string `toml:"default_zoom"`
	// BaseColumns is the text wrap width at 100% zoom.
	BaseColumns int `toml:"base_columns"`
	// CaseSensitiveSearch makes full-text search match case.
	CaseSensitiveSearch bool `toml:"case_sensitive_search"`
	// LogFile receives the application log.
	LogFile string `toml:"log_file"`
}

// DefaultConfig returns the default configuration. The zoom presets
// mirror the classic viewer dropdown.
func DefaultConfig() *Config {
	return &Config{
		ZoomPresets: []string{"50%", "75%", "100%", "125%", "150%", "200%"},
		DefaultZoom: "fit",
		BaseColumns: 80,
		LogFile:     "docgrip.log",
	}
}

// Load reads the configuration from path, or from
// ~/.config/docgrip/config.toml when path is empty. A missing file
// yields the defaults; a malformed file is an error and the caller
// falls back to the defaults after reporting it.
func Load(path string) (*Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return DefaultConfig(), err
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return DefaultConfig(), fmt.Errorf("read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parse config: %w", err)
	}

	if len(cfg.ZoomPresets) == 0 {
		cfg.ZoomPresets = DefaultConfig().ZoomPresets
	}
	if cfg.BaseColumns <= 0 {
		cfg.BaseColumns = DefaultConfig().BaseColumns
	}
	if cfg.DefaultZoom == "" {
		cfg.DefaultZoom = DefaultConfig().DefaultZoom
	}
	if cfg.LogFile == "" {
		cfg.LogFile = DefaultConfig().LogFile
	}

	return cfg, nil
}

func resolvePath(path string) (string, error) {
	if path != "" {
		return path, nil
	}
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve config dir: %w", err)
		}
		configDir = filepath.Join(home, ".config")
	}
	return filepath.Join(configDir, "docgrip", "config.toml"), nil
}
