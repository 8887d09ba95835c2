// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package source

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/jeranaias/ils/internal/meta"
)

// FSSource lists directories of an fs.FS. Paths use fs.FS syntax ("." for
// the root). Owner and inode are never known.
type FSSource struct {
	Filter
	FS fs.FS
}

// List returns the entries of dir.
func (s *FSSource) List(ctx context.Context, dir string) ([]meta.Entry, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	info, err := fs.Stat(s.FS, dir)
	if err != nil {
		return nil, statError(dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDir, dir)
	}

	dirEntries, err := fs.ReadDir(s.FS, dir)
	if err != nil {
		return nil, fmt.Errorf("source: read %s: %w", dir, err)
	}

	entries := make([]meta.Entry, 0, len(dirEntries))
	for _, d := range dirEntries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !s.Keep(d.Name()) {
			continue
		}
		info, err := d.Info()
		if err != nil {
			entries = append(entries, meta.Entry{Name: d.Name(), FileType: meta.FileTypeFromMode(rawMode(d.Type()), false)})
			continue
		}
		entries = append(entries, entryFromInfo(d.Name(), info, false))
	}

	sortByName(entries)
	return entries, nil
}
