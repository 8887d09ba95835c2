// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// terminal.go - Terminal detection for ils output.
//
// Width and color depend on where stdout goes:
// - Interactive terminals (detected width, full color profile)
// - Piped output (no width, no color unless forced)

package cli

import (
	"io"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/jeranaias/ils/internal/config"
)

// fdWriter is satisfied by *os.File.
type fdWriter interface {
	Fd() uintptr
}

// =============================================================================
// TTY DETECTION
// =============================================================================

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(fdWriter)
	return ok && term.IsTerminal(int(f.Fd()))
}

// =============================================================================
// TERMINAL WIDTH DETECTION
// =============================================================================

// TerminalWidth returns the width of the terminal behind w. ok is false when
// w is not a terminal or its size is unknown.
func TerminalWidth(w io.Writer) (width int, ok bool) {
	if !IsTerminal(w) {
		return 0, false
	}
	f := w.(fdWriter)
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return 0, false
	}
	return width, true
}

// ResolveWidth picks the layout width: the --width flag, then COLUMNS, then
// the terminal size. Zero means no width is known.
func ResolveWidth(flagWidth int, env config.Env, w io.Writer) int {
	if flagWidth > 0 {
		return flagWidth
	}
	if width, ok := env.TermWidth(); ok {
		return width
	}
	if width, ok := TerminalWidth(w); ok {
		return width
	}
	return 0
}

// =============================================================================
// COLOR SUPPORT
// =============================================================================

// ColorProfile returns the profile names are colored with.
//
// "never" and "always" are explicit. For "auto", NO_COLOR disables color,
// FORCE_COLOR enables it, and otherwise a terminal gets its detected profile.
func ColorProfile(mode string, env config.Env, w io.Writer) termenv.Profile {
	switch mode {
	case config.ColorNever:
		return termenv.Ascii
	case config.ColorAlways:
		return atLeastANSI(detectedProfile(w))
	}

	if env.NoColor != "" {
		return termenv.Ascii
	}
	if env.ForceColor != "" {
		return atLeastANSI(detectedProfile(w))
	}
	return detectedProfile(w)
}

func detectedProfile(w io.Writer) termenv.Profile {
	if !IsTerminal(w) {
		return termenv.Ascii
	}
	return termenv.NewOutput(w).ColorProfile()
}

func atLeastANSI(p termenv.Profile) termenv.Profile {
	if p == termenv.Ascii {
		return termenv.ANSI
	}
	return p
}
