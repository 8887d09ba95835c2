// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

//go:build !(linux || darwin || freebsd || netbsd || openbsd)

package source

import (
	"os"

	"github.com/jeranaias/ils/internal/meta"
)

// statEntry falls back to portable metadata: no owner, inode or ctime.
func statEntry(path, name string) (meta.Entry, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return meta.Entry{}, err
	}
	linkIsDir := false
	if info.Mode()&os.ModeSymlink != 0 {
		if target, err := os.Stat(path); err == nil {
			linkIsDir = target.IsDir()
		}
	}
	return entryFromInfo(name, info, linkIsDir), nil
}
