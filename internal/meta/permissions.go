// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package meta

// =============================================================================
// PERMISSIONS OR ATTRIBUTES
// =============================================================================

// PermissionsOrAttributes is what the long listing shows in its first column.
// Permissions is the only variant; filesystems with attribute flags instead
// of mode bits get their own variant.
type PermissionsOrAttributes interface {
	String() string
	permissionsOrAttributes()
}

// Permissions is the decoded permission part of a mode.
type Permissions struct {
	UserRead    bool
	UserWrite   bool
	UserExecute bool

	GroupRead    bool
	GroupWrite   bool
	GroupExecute bool

	OtherRead    bool
	OtherWrite   bool
	OtherExecute bool

	// Parsed but not part of String.
	Sticky bool
	SetGID bool
	SetUID bool
}

func (Permissions) permissionsOrAttributes() {}

// PermissionsFromMode decodes the low twelve bits of mode.
func PermissionsFromMode(mode uint16) Permissions {
	return Permissions{
		UserRead:    mode&0o400 != 0,
		UserWrite:   mode&0o200 != 0,
		UserExecute: mode&0o100 != 0,

		GroupRead:    mode&0o040 != 0,
		GroupWrite:   mode&0o020 != 0,
		GroupExecute: mode&0o010 != 0,

		OtherRead:    mode&0o004 != 0,
		OtherWrite:   mode&0o002 != 0,
		OtherExecute: mode&0o001 != 0,

		Sticky: mode&0o1000 != 0,
		SetGID: mode&0o2000 != 0,
		SetUID: mode&0o4000 != 0,
	}
}

// String renders the three rwx triplets, always nine characters.
func (p Permissions) String() string {
	b := [9]byte{
		bit(p.UserRead, 'r'), bit(p.UserWrite, 'w'), bit(p.UserExecute, 'x'),
		bit(p.GroupRead, 'r'), bit(p.GroupWrite, 'w'), bit(p.GroupExecute, 'x'),
		bit(p.OtherRead, 'r'), bit(p.OtherWrite, 'w'), bit(p.OtherExecute, 'x'),
	}
	return string(b[:])
}

// FormatMode renders mode as a nine character permission string.
func FormatMode(mode uint16) string {
	return PermissionsFromMode(mode).String()
}

func bit(set bool, c byte) byte {
	if set {
		return c
	}
	return '-'
}
