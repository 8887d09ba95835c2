// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package meta contains the normalized record of one directory entry.
//
// Entries are produced by an entry source, one per directory item, and are
// treated as immutable afterwards. The renderer only reads them.
//
// # Key Types
//
//   - Entry: Name plus optional permissions, owner, size, inode and date
//   - FileType: Tagged variant (File, Directory, SymLink, devices, Pipe, Socket)
//   - PermissionsOrAttributes: Permission bits today, room for attribute schemes
//   - Date: Primary timestamp with a secondary fallback
//
// # Usage
//
//	size := uint64(4096)
//	e := meta.Entry{
//	    Name:                    "bin",
//	    FileType:                meta.Directory{},
//	    PermissionsOrAttributes: meta.PermissionsFromMode(0o755),
//	    Size:                    &size,
//	}
//	fmt.Println(e.PermissionsOrAttributes) // rwxr-xr-x
package meta
