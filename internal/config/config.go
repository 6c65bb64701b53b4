// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"mimectl/internal/issue"
	"mimectl/internal/xdg"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	// AppName is the application name, used as the config subdirectory.
	AppName = "mimectl"
	// ConfigFileName is the name of the config file.
	ConfigFileName = "config.toml"
)

// Config is the tool configuration.
type Config struct {
	// EnableSelector runs the interactive selector when a MIME type has
	// several candidate handlers instead of silently picking the first.
	EnableSelector bool `mapstructure:"enable_selector" toml:"enable_selector"`
	// Selector is the dmenu-style command used to pick a handler. It
	// receives the candidates on stdin and must print the choice.
	Selector string `mapstructure:"selector" toml:"selector"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		EnableSelector: false,
		Selector:       "rofi -dmenu -p 'Open With: '",
	}
}

// configDirOverride lets tests point the package at a scratch directory.
var configDirOverride string

// SetConfigDirOverride overrides the configuration directory. Pass "" to
// restore environment-based resolution. Intended for tests.
func SetConfigDirOverride(dir string) {
	configDirOverride = dir
}

// ConfigDir returns the mimectl configuration directory,
// $XDG_CONFIG_HOME/mimectl.
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir() (string, error) {
	if configDirOverride != "" {
		return configDirOverride, nil
	}
	configHome, err := xdg.ConfigHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(configHome, AppName), nil
}

// Load reads the configuration, creating the file with defaults when it does
// not exist yet.
func Load() (Config, error) {
	cfg := DefaultConfig()

	dir, err := ConfigDir()
	if err != nil {
		return cfg, err
	}
	path := filepath.Join(dir, ConfigFileName)

	v := viper.New()
	v.SetDefault("enable_selector", cfg.EnableSelector)
	v.SetDefault("selector", cfg.Selector)
	v.SetConfigFile(path)
	v.SetConfigType("toml")

	if err := v.ReadInConfig(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return cfg, issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(path).
				WithSuggestion("Check that the file contains valid TOML syntax").
				WithSuggestion("Delete the file to regenerate the defaults").
				Wrap(err).
				BuildError()
		}
		if err := writeDefault(path, cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// writeDefault materializes the default configuration on first run.
func writeDefault(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode default config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write default config %s: %w", path, err)
	}
	return nil
}
