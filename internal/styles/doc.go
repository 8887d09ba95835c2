// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles colors entry names by file type.
//
// Colors are plain ANSI palette indices so the listing follows the user's
// terminal theme and no background detection query is sent. The color
// profile decides whether any escape sequence is emitted at all.
//
// # Usage
//
//	s := styles.New(termenv.ANSI, styles.Options{Hyperlink: true, Dir: "/etc"})
//	fmt.Println(s.Name(entry))
package styles
