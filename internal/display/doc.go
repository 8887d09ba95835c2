// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package display renders directory entries as terminal text.
//
// Two modes are supported:
//
//   - Compact: names flowed left to right into as many columns as fit the
//     terminal width, one space apart. Without a width, or when nothing fits,
//     one name per line.
//   - Long: one line per entry with permissions, uid:gid, size, date and name.
//     The first four columns are padded to the widest cell of the batch.
//
// All widths are visible widths: SGR color sequences (and, when enabled,
// OSC 8 hyperlinks) do not count, wide glyphs count two cells.
//
// # Usage
//
//	err := display.Render(os.Stdout, entries, display.Options{
//	    Long:      true,
//	    TermWidth: 120,
//	    Locale:    loc,
//	})
//	if errors.Is(err, display.ErrOutputWrite) {
//	    // stdout went away
//	}
package display
