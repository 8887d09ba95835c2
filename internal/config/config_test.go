// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

// =============================================================================
// LOAD TESTS
// =============================================================================

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("", Env{})
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
[display]
long = true
color = "never"
human_sizes = true

[source]
all = true
ignore = ["*.o", "build"]

[log]
level = "debug"
`)
	cfg, err := Load(path, Env{})
	require.NoError(t, err)

	assert.True(t, cfg.Display.Long)
	assert.Equal(t, ColorNever, cfg.Display.Color)
	assert.True(t, cfg.Display.HumanSizes)
	assert.False(t, cfg.Display.Hyperlink)
	assert.True(t, cfg.Source.All)
	assert.Equal(t, []string{"*.o", "build"}, cfg.Source.Ignore)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_EnvConfigPathAndLevel(t *testing.T) {
	path := writeConfig(t, "[log]\nlevel = \"info\"\n")

	cfg, err := Load("", Env{ConfigPath: path, LogLevel: "error"})
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Log.Level)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"), Env{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoad_UnknownKey(t *testing.T) {
	path := writeConfig(t, "[display]\ncolour = \"never\"\n")
	_, err := Load(path, Env{})
	assert.ErrorContains(t, err, "unknown keys")
}

func TestLoad_Invalid(t *testing.T) {
	path := writeConfig(t, `
[display]
color = "sometimes"

[source]
ignore = ["[oops"]

[log]
level = "chatty"
`)
	_, err := Load(path, Env{})
	require.Error(t, err)

	var verrs ValidateErrors
	require.True(t, errors.As(err, &verrs))
	fields := make([]string, len(verrs))
	for i, v := range verrs {
		fields[i] = v.Field
	}
	assert.Equal(t, []string{"display.color", "log.level", "source.ignore"}, fields)
}

// =============================================================================
// ENV TESTS
// =============================================================================

func TestLoadEnv(t *testing.T) {
	t.Setenv("LC_TIME", "de_DE.UTF-8")
	t.Setenv("COLUMNS", "132")
	t.Setenv("NO_COLOR", "1")
	t.Setenv("ILS_LOG_LEVEL", "debug")
	t.Setenv("ILS_CONFIG", "/etc/ils.toml")

	env, err := LoadEnv()
	require.NoError(t, err)
	assert.Equal(t, "de_DE.UTF-8", env.TimeLocale)
	assert.Equal(t, "1", env.NoColor)
	assert.Equal(t, "debug", env.LogLevel)
	assert.Equal(t, "/etc/ils.toml", env.ConfigPath)

	w, ok := env.TermWidth()
	assert.True(t, ok)
	assert.Equal(t, 132, w)
}

func TestEnvTermWidth(t *testing.T) {
	for _, cols := range []string{"", "wide", "0", "-5"} {
		_, ok := Env{Columns: cols}.TermWidth()
		assert.False(t, ok, cols)
	}
	w, ok := Env{Columns: " 80 "}.TermWidth()
	assert.True(t, ok)
	assert.Equal(t, 80, w)
}

// =============================================================================
// SAVE TESTS
// =============================================================================

func TestSaveTOML_RoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Display.Long = true
	cfg.Display.Color = ColorNever
	cfg.Source.Ignore = []string{"*.o", "build"}
	cfg.Log.Level = "debug"

	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	require.NoError(t, SaveTOML(cfg, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	loaded, err := Load(path, Env{})
	require.NoError(t, err)
	assert.True(t, loaded.Display.Long)
	assert.Equal(t, ColorNever, loaded.Display.Color)
	assert.Equal(t, []string{"*.o", "build"}, loaded.Source.Ignore)
	assert.Equal(t, "debug", loaded.Log.Level)
}

func TestSavePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path, err := SavePath("/x/flag.toml", Env{ConfigPath: "/x/env.toml"})
	require.NoError(t, err)
	assert.Equal(t, "/x/flag.toml", path)

	path, err = SavePath("", Env{ConfigPath: "/x/env.toml"})
	require.NoError(t, err)
	assert.Equal(t, "/x/env.toml", path)

	path, err = SavePath("", Env{})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".ils", "config.toml"), path)
}
