// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package source produces the entries of one directory level.
//
// The renderer does not sort or filter; sources return entries sorted by
// name with hidden and ignored names already removed.
//
// # Key Types
//
//   - Source: The interface the command lists through
//   - DirSource: Host directories, with owner, inode and ctime on unix
//   - FSSource: Any fs.FS, for embedded trees and tests
//
// # Usage
//
//	src := &source.DirSource{Ignore: []string{"*.o"}}
//	entries, err := src.List(ctx, "/usr/lib")
//	if errors.Is(err, source.ErrNotDir) {
//	    // ...
//	}
package source
