// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package display

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// =============================================================================
// VISIBLE WIDTH
// =============================================================================

const (
	sgrIntroducer = "\x1b["
	sgrTerminator = "m"

	hyperlinkIntroducer = "\x1b]8;;"
	hyperlinkTerminator = "\x1b\\"
)

// East Asian ambiguous runes are narrow regardless of the user's locale so
// layouts do not depend on RUNEWIDTH_EASTASIAN or LC_ALL.
var widthCondition = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

// VisibleWidth returns the number of terminal cells s occupies.
//
// Every SGR sequence (ESC '[' up to the next 'm') is zero width. With
// hyperlink set, every OSC 8 sequence (ESC "]8;;" up to the next ESC '\') is
// zero width as well. An introducer without its terminator is not a sequence
// and is measured as raw text, the ESC itself counting one cell.
func VisibleWidth(s string, hyperlink bool) int {
	if strings.IndexByte(s, '\x1b') < 0 {
		return rawWidth(s, nil)
	}

	hidden := make([]bool, len(s))
	markSpans(hidden, s, sgrIntroducer, sgrTerminator)
	if hyperlink {
		markSpans(hidden, s, hyperlinkIntroducer, hyperlinkTerminator)
	}
	return rawWidth(s, hidden)
}

// markSpans flags the bytes of every well-formed intro..term span.
func markSpans(hidden []bool, s, intro, term string) {
	for off := 0; off < len(s); {
		i := strings.Index(s[off:], intro)
		if i < 0 {
			return
		}
		start := off + i
		if j := strings.Index(s[start:], term); j >= 0 {
			end := start + j + len(term)
			for k := start; k < end; k++ {
				hidden[k] = true
			}
		}
		off = start + len(intro)
	}
}

func rawWidth(s string, hidden []bool) int {
	width := 0
	for i, r := range s {
		if hidden != nil && hidden[i] {
			continue
		}
		width += runeWidth(r)
	}
	return width
}

func runeWidth(r rune) int {
	if r < 0x20 || (r >= 0x7f && r < 0xa0) {
		return 1
	}
	return widthCondition.RuneWidth(r)
}
