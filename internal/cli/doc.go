// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli implements the ils command line.
//
// # Key Types
//
//   - App: one command run against a pair of output streams
//   - Args: parsed flags and paths
//   - ArgParser: long, short and combined short flag parsing
//   - CommandError: a failed step with the exit code ExitCode maps it to
//
// # Usage
//
//	os.Exit(cli.Run(ctx, os.Args[1:]))
//
// Run loads the environment and ~/.ils/config.toml, lays flags over them,
// resolves the LC_TIME locale once, lists each path and renders it to a
// buffered stdout.
//
// # Exit Codes
//
//   - 0: success
//   - 1: general error
//   - 2: usage error
//   - 3: configuration error
//   - 7: path not found or not a directory
//   - 9: output could not be written
package cli
