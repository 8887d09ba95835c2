// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package source

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/charlievieth/fastwalk"
	"go.uber.org/zap"

	"github.com/jeranaias/ils/internal/logging"
	"github.com/jeranaias/ils/internal/meta"
)

// DirSource lists directories of the host filesystem.
type DirSource struct {
	Filter
	Logger *logging.Logger
}

// List returns the entries of dir. Subdirectories are not descended into.
// Entries that cannot be stat'ed are listed with name and type only.
func (s *DirSource) List(ctx context.Context, dir string) ([]meta.Entry, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	logger := logging.OrNop(s.Logger)

	info, err := os.Stat(dir)
	if err != nil {
		return nil, statError(dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDir, dir)
	}

	root := filepath.Clean(dir)
	var (
		mu      sync.Mutex
		entries []meta.Entry
	)

	conf := fastwalk.Config{Follow: false}
	err = fastwalk.Walk(&conf, root, func(p string, d fs.DirEntry, err error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if filepath.Clean(p) == root {
			return err
		}
		if err != nil {
			logger.Warn("skipping unreadable entry", zap.String("path", p), zap.Error(err))
			return nil
		}

		name := d.Name()
		if s.Keep(name) {
			e, statErr := statEntry(p, name)
			if statErr != nil {
				logger.Warn("cannot stat entry", zap.String("path", p), zap.Error(statErr))
				e = meta.Entry{Name: name, FileType: meta.FileTypeFromMode(rawMode(d.Type()), false)}
			}
			mu.Lock()
			entries = append(entries, e)
			mu.Unlock()
		}

		if d.IsDir() {
			return filepath.SkipDir
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("source: read %s: %w", dir, err)
	}

	sortByName(entries)
	logger.Debug("listed directory", zap.String("dir", root), zap.Int("entries", len(entries)))
	return entries, nil
}
