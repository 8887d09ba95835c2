// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/ils/internal/logging"
	"github.com/jeranaias/ils/internal/source"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config is the complete ils configuration.
type Config struct {
	Display DisplayConfig `toml:"display"`
	Source  SourceConfig  `toml:"source"`
	Log     LogConfig     `toml:"log"`
}

// DisplayConfig controls rendering.
type DisplayConfig struct {
	// Long selects the long listing format by default.
	Long bool `toml:"long"`
	// Color is "auto", "always" or "never".
	Color string `toml:"color"`
	// Hyperlink wraps names in OSC 8 file:// links.
	Hyperlink bool `toml:"hyperlink"`
	// HumanSizes prints sizes as KiB/MiB in long listings.
	HumanSizes bool `toml:"human_sizes"`
}

// SourceConfig controls which entries are listed.
type SourceConfig struct {
	All    bool     `toml:"all"`
	Ignore []string `toml:"ignore"`
}

// LogConfig controls diagnostics on stderr.
type LogConfig struct {
	Level       string `toml:"level"`
	Development bool   `toml:"development"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Display: DisplayConfig{Color: ColorAuto},
		Log:     LogConfig{Level: "warn"},
	}
}

// =============================================================================
// PATHS
// =============================================================================

// ConfigDir returns ~/.ils.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".ils"), nil
}

// DefaultPath returns ~/.ils/config.toml.
func DefaultPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// =============================================================================
// LOADING
// =============================================================================

// Load builds the configuration from defaults, the config file and env.
// path names the config file explicitly; when empty, env.ConfigPath and then
// DefaultPath are tried, and a missing default file is not an error.
func Load(path string, env Env) (*Config, error) {
	cfg := Default()

	explicit := true
	if path == "" {
		path = env.ConfigPath
	}
	if path == "" {
		explicit = false
		if p, err := DefaultPath(); err == nil {
			path = p
		}
	}

	if path != "" {
		err := LoadTOML(cfg, path)
		switch {
		case err == nil:
		case !explicit && errors.Is(err, fs.ErrNotExist):
		default:
			return nil, err
		}
	}

	cfg.ApplyEnv(env)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadTOML decodes the file at path over cfg.
func LoadTOML(cfg *Config, path string) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("failed to load TOML config from %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown keys in %s: %v", path, undecoded)
	}
	return nil
}

// ApplyEnv overlays environment settings.
func (c *Config) ApplyEnv(env Env) {
	if env.LogLevel != "" {
		c.Log.Level = env.LogLevel
	}
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate checks enumerated values and ignore patterns.
func (c *Config) Validate() error {
	var errs ValidateErrors

	switch c.Display.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		errs = append(errs, ValidationError{
			Field:   "display.color",
			Message: fmt.Sprintf("invalid mode '%s', must be one of: auto, always, never", c.Display.Color),
		})
	}

	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, ValidationError{
			Field:   "log.level",
			Message: fmt.Sprintf("invalid level '%s', must be one of: debug, info, warn, error", c.Log.Level),
		})
	}

	if err := (source.Filter{Ignore: c.Source.Ignore}).Validate(); err != nil {
		errs = append(errs, ValidationError{Field: "source.ignore", Message: err.Error()})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
