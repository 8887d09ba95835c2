// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config loads ils settings.
//
// # Configuration Precedence
//
// Settings are applied in this order, later wins:
//   - Built-in defaults
//   - ~/.ils/config.toml (or the file named by ILS_CONFIG / --config)
//   - Environment variables (ILS_LOG_LEVEL)
//   - Command line flags (applied by the cli package)
//
// Terminal related variables (LC_TIME, COLUMNS, NO_COLOR, FORCE_COLOR) are
// read into Env and interpreted by the caller.
//
// # Example File
//
//	[display]
//	long = true
//	color = "always"
//	human_sizes = true
//
//	[source]
//	all = false
//	ignore = ["*.o", "node_modules"]
//
//	[log]
//	level = "debug"
package config
