// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVisibleWidth(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		hyperlink bool
		want      int
	}{
		{"plain", "plain", false, 5},
		{"empty", "", false, 0},
		{"sgr colored", "\x1b[31mfoo\x1b[0m", false, 3},
		{"sgr bold and color", "\x1b[1;34mbin\x1b[0m", false, 3},
		{"wide rune", "日abcd", false, 6},
		{"all wide", "日本語", false, 6},
		{"combining mark", "e\u0301", false, 1},
		{"wide rune colored", "\x1b[32m日本\x1b[0m", false, 4},
		{"unterminated sgr counts raw", "\x1b[31foo", false, 7},
		{
			"hyperlink stripped",
			"\x1b]8;;file:///tmp/a\x1b\\a\x1b]8;;\x1b\\",
			true,
			1,
		},
		{
			"hyperlink with color",
			"\x1b]8;;file:///x\x1b\\\x1b[34mdir\x1b[0m\x1b]8;;\x1b\\",
			true,
			3,
		},
		{
			"unterminated hyperlink counts raw",
			"\x1b]8;;abc",
			true,
			8,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, VisibleWidth(tt.input, tt.hyperlink))
		})
	}
}

func TestVisibleWidth_HyperlinkDisabled(t *testing.T) {
	s := "\x1b]8;;u\x1b\\a\x1b]8;;\x1b\\"
	// Without hyperlink handling every byte of the OSC sequences is text.
	assert.Equal(t, len(s), VisibleWidth(s, false))
	assert.Equal(t, 1, VisibleWidth(s, true))
}

func TestVisibleWidth_AmbiguousIsNarrow(t *testing.T) {
	// U+00B1 is East Asian ambiguous.
	assert.Equal(t, 1, VisibleWidth("±", false))
}
