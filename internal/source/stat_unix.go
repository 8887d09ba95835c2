// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

//go:build linux || darwin || freebsd || netbsd || openbsd

package source

import (
	"golang.org/x/sys/unix"

	"github.com/jeranaias/ils/internal/meta"
)

// statEntry reads full metadata with lstat. Symlinks are additionally
// stat'ed to learn whether they point at a directory.
func statEntry(path, name string) (meta.Entry, error) {
	var st unix.Stat_t
	if err := unix.Lstat(path, &st); err != nil {
		return meta.Entry{}, err
	}

	mode := uint32(st.Mode)
	linkIsDir := false
	if mode&unix.S_IFMT == unix.S_IFLNK {
		var target unix.Stat_t
		if unix.Stat(path, &target) == nil {
			linkIsDir = uint32(target.Mode)&unix.S_IFMT == unix.S_IFDIR
		}
	}

	size := uint64(st.Size)
	inode := uint64(st.Ino)
	date := meta.Date{
		Primary:   timestamp(st.Mtim),
		Secondary: timestamp(st.Ctim),
	}

	return meta.Entry{
		Name:                    name,
		PermissionsOrAttributes: meta.PermissionsFromMode(uint16(mode & 0o7777)),
		Date:                    &date,
		Owner:                   &meta.Owner{UID: st.Uid, GID: st.Gid},
		FileType:                meta.FileTypeFromMode(mode, linkIsDir),
		Size:                    &size,
		Inode:                   &inode,
	}, nil
}

// timestamp treats a zero nanosecond field as absent, matching inodes that
// carry no sub-second time.
func timestamp(ts unix.Timespec) meta.Timestamp {
	return meta.Timestamp{
		Sec:     int64(ts.Sec),
		Nsec:    uint32(ts.Nsec),
		HasNsec: ts.Nsec != 0,
	}
}
