// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package meta

import "strconv"

// =============================================================================
// ENTRY
// =============================================================================

// Entry is one item of a directory listing. Optional fields are nil when the
// entry source could not provide them.
type Entry struct {
	Name                    string
	PermissionsOrAttributes PermissionsOrAttributes
	Date                    *Date
	Owner                   *Owner
	FileType                FileType
	Size                    *uint64
	Inode                   *uint64

	// Content holds child entries for recursive listings. Single-level
	// rendering ignores it.
	Content []Entry
}

// Owner is the numeric user and group of an entry.
type Owner struct {
	UID uint32
	GID uint32
}

// String renders the owner as "uid:gid".
func (o Owner) String() string {
	return strconv.FormatUint(uint64(o.UID), 10) + ":" + strconv.FormatUint(uint64(o.GID), 10)
}

// Kind returns the entry's file type kind, or KindFile when the source did not
// set one.
func (e Entry) Kind() Kind {
	if e.FileType == nil {
		return KindFile
	}
	return e.FileType.Kind()
}
