// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// Env holds the environment variables ils reads.
type Env struct {
	TimeLocale string `envconfig:"LC_TIME"`
	Columns    string `envconfig:"COLUMNS"`
	NoColor    string `envconfig:"NO_COLOR"`
	ForceColor string `envconfig:"FORCE_COLOR"`
	LogLevel   string `envconfig:"ILS_LOG_LEVEL"`
	ConfigPath string `envconfig:"ILS_CONFIG"`
}

// LoadEnv reads Env from the process environment.
func LoadEnv() (Env, error) {
	var env Env
	if err := envconfig.Process("", &env); err != nil {
		return Env{}, fmt.Errorf("failed to load environment: %w", err)
	}
	return env, nil
}

// TermWidth returns COLUMNS as a width. ok is false when it is unset or not
// a positive integer.
func (e Env) TermWidth() (width int, ok bool) {
	n, err := strconv.Atoi(strings.TrimSpace(e.Columns))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
