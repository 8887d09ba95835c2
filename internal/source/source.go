// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package source

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/jeranaias/ils/internal/meta"
)

var (
	ErrNotFound   = errors.New("source: no such file or directory")
	ErrNotDir     = errors.New("source: not a directory")
	ErrBadPattern = errors.New("source: invalid ignore pattern")
)

// Source lists one directory level.
type Source interface {
	List(ctx context.Context, dir string) ([]meta.Entry, error)
}

// Filter decides which names are listed.
type Filter struct {
	// All includes names starting with '.'.
	All bool

	// Ignore holds doublestar patterns matched against the base name.
	Ignore []string
}

// Validate checks every ignore pattern.
func (f Filter) Validate() error {
	for _, p := range f.Ignore {
		if !doublestar.ValidatePattern(p) {
			return fmt.Errorf("%w: %q", ErrBadPattern, p)
		}
	}
	return nil
}

// Keep reports whether name is listed.
func (f Filter) Keep(name string) bool {
	if !f.All && strings.HasPrefix(name, ".") {
		return false
	}
	for _, p := range f.Ignore {
		if ok, _ := doublestar.Match(p, name); ok {
			return false
		}
	}
	return true
}

func sortByName(entries []meta.Entry) {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})
}

// statError maps a failed stat of the listed directory itself.
func statError(dir string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrNotFound, dir)
	}
	return fmt.Errorf("source: stat %s: %w", dir, err)
}

// =============================================================================
// MODE CONVERSION
// =============================================================================

// rawMode converts an fs.FileMode to st_mode bits so every source feeds
// meta.FileTypeFromMode the same way.
func rawMode(m fs.FileMode) uint32 {
	mode := uint32(m.Perm())
	if m&fs.ModeSetuid != 0 {
		mode |= 0o4000
	}
	if m&fs.ModeSetgid != 0 {
		mode |= 0o2000
	}
	if m&fs.ModeSticky != 0 {
		mode |= 0o1000
	}

	switch {
	case m&fs.ModeDir != 0:
		mode |= 0o040000
	case m&fs.ModeSymlink != 0:
		mode |= 0o120000
	case m&fs.ModeNamedPipe != 0:
		mode |= 0o010000
	case m&fs.ModeSocket != 0:
		mode |= 0o140000
	case m&fs.ModeCharDevice != 0:
		mode |= 0o020000
	case m&fs.ModeDevice != 0:
		mode |= 0o060000
	default:
		mode |= 0o100000
	}
	return mode
}

// entryFromInfo builds an entry from portable metadata only.
func entryFromInfo(name string, info fs.FileInfo, linkIsDir bool) meta.Entry {
	mode := rawMode(info.Mode())
	size := uint64(info.Size())
	date := meta.NewDate(info.ModTime())

	return meta.Entry{
		Name:                    name,
		PermissionsOrAttributes: meta.PermissionsFromMode(uint16(mode & 0o7777)),
		Date:                    &date,
		FileType:                meta.FileTypeFromMode(mode, linkIsDir),
		Size:                    &size,
	}
}
