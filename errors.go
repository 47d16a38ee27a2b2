// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathrules

package findglob

import "errors"

// Sentinel errors returned by pattern parsing, path construction, and the
// walker. Callers compare against these with errors.Is; wrapping with
// fmt.Errorf("...: %w", ...) is used throughout to attach the offending
// pattern or path without losing the sentinel.
var (
	// ErrEmptyPattern is returned when a pattern string is empty after
	// trimming its anti-pattern marker, or a positional argument is "".
	ErrEmptyPattern = errors.New("findglob: empty pattern")

	// ErrInvalidPattern is returned when a section's escape grammar is
	// violated: a trailing backslash, an escape of any byte other than
	// `\`, `*`, or `?`, or two adjacent unescaped `*` within one section.
	ErrInvalidPattern = errors.New("findglob: invalid pattern")

	// ErrNoPositivePatterns is returned when every supplied pattern is an
	// anti-pattern; a walk needs at least one positive pattern to produce
	// any matches at all.
	ErrNoPositivePatterns = errors.New("findglob: no positive patterns given")

	// ErrConsecutiveAny is returned when a pattern contains two adjacent
	// "**" sections with nothing between them ("a/**/**/b"), which is
	// redundant and rejected rather than silently collapsed.
	ErrConsecutiveAny = errors.New("findglob: consecutive ** sections")

	// ErrInvalidExtendedSyntax is returned when a leading ":flags:" block is
	// malformed: an unterminated block or a flag given twice.
	ErrInvalidExtendedSyntax = errors.New("findglob: invalid extended pattern syntax")

	// ErrUnknownExtendedFlag is returned when a recognized ":...:" block
	// contains a character that is not one of the defined flags.
	ErrUnknownExtendedFlag = errors.New("findglob: unknown extended pattern flag")

	// errPathTooLong is returned internally by pathExtend when appending a
	// segment would exceed the path length cap. It is wrapped with the
	// offending path before reaching a caller, so it is unexported; both
	// pattern parsing and the walker treat it as fatal and return it.
	errPathTooLong = errors.New("findglob: path exceeds maximum length")

	// ErrDirUnreadable is returned by the walker when a directory cannot be
	// opened or listed. The walk treats this as a reported warning and
	// continues with sibling directories and later roots, including when
	// the unreadable directory is a root's own start.
	ErrDirUnreadable = errors.New("findglob: directory unreadable")
)
