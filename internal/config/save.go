// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"bytes"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/ils/internal/util"
)

// =============================================================================
// SAVING
// =============================================================================

// SaveTOML writes cfg to path, replacing any existing file atomically.
// The file is created owner read/write only.
func SaveTOML(cfg *Config, path string) error {
	var buf bytes.Buffer
	buf.WriteString("# ils configuration file\n")
	buf.WriteString("# Generated by ils --write-config\n\n")

	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := util.WriteFileAtomic(path, buf.Bytes(), 0o600, 0o700); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// SavePath returns where --write-config writes: path if set, then
// env.ConfigPath, then DefaultPath.
func SavePath(path string, env Env) (string, error) {
	if path != "" {
		return path, nil
	}
	if env.ConfigPath != "" {
		return env.ConfigPath, nil
	}
	return DefaultPath()
}
