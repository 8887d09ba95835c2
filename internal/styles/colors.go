// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import "github.com/charmbracelet/lipgloss"

// =============================================================================
// PALETTE
// =============================================================================

var (
	Blue    = lipgloss.Color("4")
	Green   = lipgloss.Color("2")
	Cyan    = lipgloss.Color("6")
	Yellow  = lipgloss.Color("3")
	Magenta = lipgloss.Color("5")
	Red     = lipgloss.Color("1")
	White   = lipgloss.Color("15")
)

// palette holds one style per decorated file type.
type palette struct {
	directory  lipgloss.Style
	executable lipgloss.Style
	setUID     lipgloss.Style
	symlink    lipgloss.Style
	symlinkDir lipgloss.Style
	pipe       lipgloss.Style
	socket     lipgloss.Style
	device     lipgloss.Style
}

func newPalette(r *lipgloss.Renderer) palette {
	return palette{
		directory:  r.NewStyle().Foreground(Blue).Bold(true),
		executable: r.NewStyle().Foreground(Green).Bold(true),
		setUID:     r.NewStyle().Foreground(White).Background(Red),
		symlink:    r.NewStyle().Foreground(Cyan),
		symlinkDir: r.NewStyle().Foreground(Cyan).Bold(true),
		pipe:       r.NewStyle().Foreground(Yellow),
		socket:     r.NewStyle().Foreground(Magenta).Bold(true),
		device:     r.NewStyle().Foreground(Yellow).Bold(true),
	}
}
