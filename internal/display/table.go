// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package display

import (
	"io"
	"strings"
)

// =============================================================================
// LONG TABLE
// =============================================================================

// longColumns is the number of cells per long row: permissions, owner,
// size, date, name.
const longColumns = 5

// writeTable writes one row per entry. Every column but the last is padded
// to its widest cell in the batch.
func writeTable(w io.Writer, rows [][longColumns]Cell) error {
	var widths [longColumns - 1]int
	for _, row := range rows {
		for col := range widths {
			if row[col].Width > widths[col] {
				widths[col] = row[col].Width
			}
		}
	}

	var line strings.Builder
	for _, row := range rows {
		line.Reset()
		for col, c := range row {
			if col > 0 {
				line.WriteByte(' ')
			}
			if col < len(widths) {
				c.appendPadded(&line, widths[col])
			} else {
				line.WriteString(c.Text)
			}
		}
		line.WriteByte('\n')

		if _, err := io.WriteString(w, line.String()); err != nil {
			return &WriteError{Stage: "table", Err: err}
		}
	}
	return nil
}
