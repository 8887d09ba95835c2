// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package locale resolves the display locale and formats dates with it.
//
// The locale is resolved once by the caller, usually from LC_TIME at
// startup, and then passed around as an immutable Locale value. There is no
// package level cache.
//
// # Usage
//
//	loc := locale.New(locale.Resolve(os.Getenv("LC_TIME")), time.Local)
//	fmt.Println(loc.FormatTime(time.Now()))
package locale
