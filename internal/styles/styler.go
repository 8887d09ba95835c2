// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"io"
	"net/url"
	"path"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/jeranaias/ils/internal/meta"
)

// Options configures a Styler.
type Options struct {
	// Hyperlink wraps names in OSC 8 links to their file:// URL.
	Hyperlink bool

	// Dir is the listed directory, used to build link targets.
	Dir string

	// Hostname goes into link targets. Empty means a local link.
	Hostname string
}

// Styler decorates entry names for one listing.
type Styler struct {
	color   bool
	opts    Options
	palette palette
}

// New returns a Styler rendering for profile. termenv.Ascii disables color.
func New(profile termenv.Profile, opts Options) *Styler {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(profile)

	if opts.Dir != "" {
		if abs, err := filepath.Abs(opts.Dir); err == nil {
			opts.Dir = abs
		}
	}

	return &Styler{
		color:   profile != termenv.Ascii,
		opts:    opts,
		palette: newPalette(r),
	}
}

// Name returns the decorated name of e.
func (s *Styler) Name(e meta.Entry) string {
	name := e.Name
	if s.color {
		if style, ok := s.styleFor(e.FileType); ok {
			name = style.Render(name)
		}
	}
	if s.opts.Hyperlink {
		name = termenv.Hyperlink(s.link(e.Name), name)
	}
	return name
}

func (s *Styler) styleFor(ft meta.FileType) (lipgloss.Style, bool) {
	switch t := ft.(type) {
	case meta.Directory:
		if t.UID {
			return s.palette.setUID, true
		}
		return s.palette.directory, true
	case meta.File:
		switch {
		case t.UID:
			return s.palette.setUID, true
		case t.Exec:
			return s.palette.executable, true
		}
	case meta.SymLink:
		if t.IsDir {
			return s.palette.symlinkDir, true
		}
		return s.palette.symlink, true
	case meta.Pipe:
		return s.palette.pipe, true
	case meta.Socket:
		return s.palette.socket, true
	case meta.CharDevice, meta.BlockDevice:
		return s.palette.device, true
	}
	return lipgloss.Style{}, false
}

func (s *Styler) link(name string) string {
	u := url.URL{
		Scheme: "file",
		Host:   s.opts.Hostname,
		Path:   path.Join(filepath.ToSlash(s.opts.Dir), name),
	}
	return u.String()
}
