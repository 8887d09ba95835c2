// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package display

import "strings"

// Alignment controls which side of a cell receives padding.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// Cell is one measured piece of output text.
type Cell struct {
	Text  string
	Width int
	Align Alignment
}

// NewCell measures text and returns a left aligned cell.
func NewCell(text string, hyperlink bool) Cell {
	return Cell{Text: text, Width: VisibleWidth(text, hyperlink), Align: AlignLeft}
}

// appendPadded writes the cell padded with spaces to width cells. Cells
// already at least that wide are written unchanged.
func (c Cell) appendPadded(b *strings.Builder, width int) {
	pad := width - c.Width
	if pad <= 0 {
		b.WriteString(c.Text)
		return
	}
	if c.Align == AlignRight {
		b.WriteString(strings.Repeat(" ", pad))
		b.WriteString(c.Text)
		return
	}
	b.WriteString(c.Text)
	b.WriteString(strings.Repeat(" ", pad))
}
