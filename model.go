// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathrules

package findglob

// Class is a bitset over directory-entry kinds. A pattern's class filters
// which kinds of entry it may terminally match; sections themselves are
// class-agnostic.
type Class uint8

const (
	// ClassFile matches regular files.
	ClassFile Class = 1 << iota
	// ClassDir matches directories.
	ClassDir
)

// ClassBoth is the default class for a pattern with no `:f:`/`:d:` flag and
// no trailing slash: it may terminally match either kind of entry.
const ClassBoth = ClassFile | ClassDir

func (c Class) has(k Class) bool {
	return c&k != 0
}

func (c Class) String() string {
	switch c {
	case ClassFile:
		return "file"
	case ClassDir:
		return "dir"
	case ClassBoth:
		return "file|dir"
	default:
		return "none"
	}
}

// classOf reports the Class of a single directory entry.
func classOf(isDir bool) Class {
	if isDir {
		return ClassDir
	}
	return ClassFile
}
