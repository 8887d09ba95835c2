// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package meta

// =============================================================================
// FILE TYPE
// =============================================================================

// Kind identifies the variant of a FileType.
type Kind int

const (
	KindFile Kind = iota
	KindDirectory
	KindSymLink
	KindCharDevice
	KindBlockDevice
	KindPipe
	KindSocket
)

// String returns the lowercase kind name.
func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDirectory:
		return "directory"
	case KindSymLink:
		return "symlink"
	case KindCharDevice:
		return "char-device"
	case KindBlockDevice:
		return "block-device"
	case KindPipe:
		return "pipe"
	case KindSocket:
		return "socket"
	default:
		return "unknown"
	}
}

// FileType is a tagged variant; each variant is a struct carrying its own
// flags. Switch on the concrete type to read them.
type FileType interface {
	Kind() Kind
}

// File is a regular file.
type File struct {
	UID  bool // set-uid bit
	Exec bool // any execute bit
}

// Directory is a directory.
type Directory struct {
	UID bool // set-uid bit
}

// SymLink is a symbolic link. IsDir reports whether the target is a directory.
type SymLink struct {
	IsDir bool
}

// CharDevice is a character device.
type CharDevice struct{}

// BlockDevice is a block device.
type BlockDevice struct{}

// Pipe is a named pipe (FIFO).
type Pipe struct{}

// Socket is a unix domain socket.
type Socket struct{}

func (File) Kind() Kind        { return KindFile }
func (Directory) Kind() Kind   { return KindDirectory }
func (SymLink) Kind() Kind     { return KindSymLink }
func (CharDevice) Kind() Kind  { return KindCharDevice }
func (BlockDevice) Kind() Kind { return KindBlockDevice }
func (Pipe) Kind() Kind        { return KindPipe }
func (Socket) Kind() Kind      { return KindSocket }

// S_IFMT values shared by ext*, Linux and the BSDs.
const (
	modeTypeMask = 0o170000
	modeSocket   = 0o140000
	modeSymLink  = 0o120000
	modeBlock    = 0o060000
	modeDir      = 0o040000
	modeChar     = 0o020000
	modeFIFO     = 0o010000

	modeSetUID = 0o4000
	modeExec   = 0o111
)

// FileTypeFromMode derives the file type from a raw st_mode value.
// linkIsDir is only consulted for symbolic links. Unknown type bits are
// treated as regular files.
func FileTypeFromMode(mode uint32, linkIsDir bool) FileType {
	switch mode & modeTypeMask {
	case modeDir:
		return Directory{UID: mode&modeSetUID != 0}
	case modeSymLink:
		return SymLink{IsDir: linkIsDir}
	case modeChar:
		return CharDevice{}
	case modeBlock:
		return BlockDevice{}
	case modeFIFO:
		return Pipe{}
	case modeSocket:
		return Socket{}
	default:
		return File{
			UID:  mode&modeSetUID != 0,
			Exec: mode&modeExec != 0,
		}
	}
}
