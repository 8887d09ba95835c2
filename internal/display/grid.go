// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package display

import (
	"io"
	"sort"
	"strings"
)

// =============================================================================
// COMPACT GRID
// =============================================================================

// gridLayout is a feasible left-to-right arrangement of cells.
type gridLayout struct {
	columns int
	widths  []int // per column
}

// fitIntoWidth finds the arrangement with the most columns whose total
// width, separators included, is at most maxWidth. ok is false when no
// arrangement fits, which happens only if a single cell is wider than
// maxWidth.
func fitIntoWidth(cells []Cell, separator, maxWidth int) (layout gridLayout, ok bool) {
	n := len(cells)
	if n == 0 || maxWidth <= 0 {
		return gridLayout{}, false
	}

	for _, c := range cells {
		if c.Width > maxWidth {
			return gridLayout{}, false
		}
	}

	for columns := maxColumns(cells, separator, maxWidth); columns >= 1; columns-- {
		widths := make([]int, columns)
		for i, c := range cells {
			if col := i % columns; c.Width > widths[col] {
				widths[col] = c.Width
			}
		}

		total := separator * (columns - 1)
		for _, w := range widths {
			total += w
		}
		if total <= maxWidth {
			return gridLayout{columns: columns, widths: widths}, true
		}
	}
	return gridLayout{}, false
}

// maxColumns bounds the column count from above. Every column is at least
// as wide as one distinct cell, so c columns need at least the c narrowest
// widths plus separators.
func maxColumns(cells []Cell, separator, maxWidth int) int {
	widths := make([]int, len(cells))
	for i, c := range cells {
		widths[i] = c.Width
	}
	sort.Ints(widths)

	columns, total := 0, 0
	for _, w := range widths {
		next := total + w
		if columns > 0 {
			next += separator
		}
		if next > maxWidth {
			break
		}
		total = next
		columns++
	}
	if columns == 0 {
		return 1
	}
	return columns
}

// writeGrid writes the rows of layout. The last cell of a row is not padded.
func writeGrid(w io.Writer, cells []Cell, layout gridLayout, separator int) error {
	gap := strings.Repeat(" ", separator)
	var line strings.Builder

	for rowStart := 0; rowStart < len(cells); rowStart += layout.columns {
		rowEnd := rowStart + layout.columns
		if rowEnd > len(cells) {
			rowEnd = len(cells)
		}

		line.Reset()
		for i := rowStart; i < rowEnd; i++ {
			if i == rowEnd-1 {
				line.WriteString(cells[i].Text)
				break
			}
			cells[i].appendPadded(&line, layout.widths[i-rowStart])
			line.WriteString(gap)
		}
		line.WriteByte('\n')

		if _, err := io.WriteString(w, line.String()); err != nil {
			return &WriteError{Stage: "grid", Err: err}
		}
	}
	return nil
}

// writeLines is the single column fallback: one cell per line, never cut.
func writeLines(w io.Writer, cells []Cell) error {
	for _, c := range cells {
		if _, err := io.WriteString(w, c.Text+"\n"); err != nil {
			return &WriteError{Stage: "lines", Err: err}
		}
	}
	return nil
}
