// Package config handles optional application configuration via a TOML file.
// Configuration lives at ~/.config/relctl/config.toml (overridable with the
// RELCTL_CONFIG environment variable) and covers the history database and
// console behavior. A missing file means defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const configPathEnv = "RELCTL_CONFIG"

// Config holds application configuration.
type Config struct {
	History HistoryConfig `toml:"history"`
	UI      UIConfig      `toml:"ui"`
}

// HistoryConfig controls release history persistence.
type HistoryConfig struct {
	// Path is the SQLite database location. Empty means the built-in
	// default (~/.relctl/history.db).
	Path string `toml:"path"`

	// Disabled skips history recording entirely.
	Disabled bool `toml:"disabled"`
}

// UIConfig controls console decoration.
type UIConfig struct {
	Spinner bool `toml:"spinner"`
	Banner  bool `toml:"banner"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		UI: UIConfig{Spinner: true, Banner: true},
	}
}

// Path returns the config file location, honoring RELCTL_CONFIG.
func Path() (string, error) {
	if p := os.Getenv(configPathEnv); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home dir: %w", err)
	}
	return filepath.Join(home, ".config", "relctl", "config.toml"), nil
}

// Load reads the configuration file if present, falling back to defaults.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), err
	}
	return LoadFrom(path)
}

// LoadFrom reads the configuration from an explicit path. A missing file is
// not an error.
func LoadFrom(path string) (Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}
