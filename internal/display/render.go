// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package display

import (
	"io"
	"strconv"

	"github.com/dustin/go-humanize"

	"github.com/jeranaias/ils/internal/locale"
	"github.com/jeranaias/ils/internal/meta"
)

// placeholder stands in for an absent optional field.
const placeholder = "_"

// compactSeparator is the number of spaces between grid columns.
const compactSeparator = 1

// NameStyler decorates entry names, for example with colors or hyperlinks.
type NameStyler interface {
	Name(e meta.Entry) string
}

// Options selects how Render lays out entries.
type Options struct {
	// Long selects the five column long format instead of the grid.
	Long bool

	// TermWidth is the terminal width in cells. Zero or less means no
	// terminal, which makes compact mode print one name per line.
	TermWidth int

	// Hyperlink makes width measurement skip OSC 8 sequences. Set it when
	// Styler emits hyperlinks.
	Hyperlink bool

	// HumanSizes renders sizes as IEC units (4.0 KiB) instead of bytes.
	HumanSizes bool

	// Locale formats dates in long mode.
	Locale locale.Locale

	// Styler decorates names. Nil leaves names as they are.
	Styler NameStyler
}

// Render writes entries to w in the order given. It returns a *WriteError on
// the first failed write. An empty slice writes nothing.
func Render(w io.Writer, entries []meta.Entry, opts Options) error {
	if len(entries) == 0 {
		return nil
	}
	if opts.Long {
		return renderLong(w, entries, opts)
	}
	return renderCompact(w, entries, opts)
}

func renderCompact(w io.Writer, entries []meta.Entry, opts Options) error {
	cells := make([]Cell, len(entries))
	for i, e := range entries {
		cells[i] = NewCell(opts.name(e), opts.Hyperlink)
	}

	if opts.TermWidth > 0 {
		if layout, ok := fitIntoWidth(cells, compactSeparator, opts.TermWidth); ok {
			return writeGrid(w, cells, layout, compactSeparator)
		}
	}
	return writeLines(w, cells)
}

func renderLong(w io.Writer, entries []meta.Entry, opts Options) error {
	rows := make([][longColumns]Cell, len(entries))
	for i, e := range entries {
		rows[i] = [longColumns]Cell{
			NewCell(permissionsText(e), false),
			NewCell(ownerText(e), false),
			NewCell(opts.sizeText(e), false),
			NewCell(opts.dateText(e), false),
			NewCell(opts.name(e), opts.Hyperlink),
		}
	}
	return writeTable(w, rows)
}

// =============================================================================
// FIELD TEXT
// =============================================================================

func (o Options) name(e meta.Entry) string {
	if o.Styler == nil {
		return e.Name
	}
	return o.Styler.Name(e)
}

func permissionsText(e meta.Entry) string {
	if e.PermissionsOrAttributes == nil {
		return placeholder
	}
	return e.PermissionsOrAttributes.String()
}

func ownerText(e meta.Entry) string {
	if e.Owner == nil {
		return placeholder
	}
	return e.Owner.String()
}

func (o Options) sizeText(e meta.Entry) string {
	if e.Size == nil {
		return placeholder
	}
	if o.HumanSizes {
		return humanize.IBytes(*e.Size)
	}
	return strconv.FormatUint(*e.Size, 10)
}

func (o Options) dateText(e meta.Entry) string {
	if e.Date == nil {
		return placeholder
	}
	return o.Locale.FormatTime(e.Date.Time())
}
