// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathrules

package findglob

import (
	"strings"

	"github.com/woozymasta/findglob/internal/winpath"
)

// isSep reports whether c is a path separator. Only '/' is ever a separator;
// '\' is always a literal character, even on Windows, since allowing it to
// double as a separator would break escape parsing in section grammars.
func isSep(c byte) bool {
	return winpath.IsSep(c)
}

// pathSegment is one segment yielded by a pathIter: a volume prefix (only
// ever the first segment, if present) or a run of non-separator bytes.
type pathSegment struct {
	text    string
	isVol   bool
	present bool
}

// pathIter walks a path string one segment at a time, the way a directory
// tree is walked one path component at a time. The first segment, when
// present, may be a volume (see internal/winpath); every subsequent segment
// is a non-empty run of non-separator bytes with any run of leading
// separators skipped.
type pathIter struct {
	base  string
	nskip int
	ok    bool
	i     int
}

// newPathIter creates an iterator over base and returns its first segment.
func newPathIter(base string) (pathIter, pathSegment) {
	it := pathIter{base: base, ok: true}
	return it, it.next()
}

// index returns the zero-based index of the most recently returned segment.
func (it *pathIter) index() int {
	return it.i
}

// more reports whether the iterator has more segments to yield, reflecting
// the state left by the most recent call to next.
func (it *pathIter) more() bool {
	return it.ok
}

// next advances the iterator and returns the next segment, or a zero segment
// with present=false once the path is exhausted.
func (it *pathIter) next() pathSegment {
	if !it.ok {
		return pathSegment{}
	}
	if it.nskip != 0 {
		it.i++
	}
	if it.nskip >= len(it.base) {
		it.ok = false
		return pathSegment{}
	}

	if it.nskip == 0 {
		if nvol := winpath.VolumeLen(it.base); nvol > 0 {
			it.nskip = nvol
			return pathSegment{text: it.base[:nvol], isVol: true, present: true}
		}
	}

	nsep := countLeadingSep(it.base, it.nskip)
	nsect := countLeadingNonSep(it.base, it.nskip+nsep)
	if nsect == 0 {
		it.nskip = len(it.base)
		it.ok = false
		return pathSegment{}
	}

	start := it.nskip + nsep
	end := start + nsect
	it.nskip = end
	return pathSegment{text: it.base[start:end], present: true}
}

func countLeadingSep(path string, skip int) int {
	n := 0
	for skip+n < len(path) && isSep(path[skip+n]) {
		n++
	}
	return n
}

func countLeadingNonSep(path string, skip int) int {
	n := 0
	for skip+n < len(path) && !isSep(path[skip+n]) {
		n++
	}
	return n
}

// pathSegments collects every segment of path, in order. Used where a plain
// slice is more readable than the single-step iterator (pattern parsing,
// start rewriting).
func pathSegments(path string) []pathSegment {
	it, seg := newPathIter(path)
	var out []pathSegment
	for seg.present {
		out = append(out, seg)
		seg = it.next()
	}
	return out
}

// pathExtend appends text to base with a single '/' joiner, inserted only
// when base is non-empty and does not already end in a separator. Returns an
// error if the result would exceed capBytes.
func pathExtend(base string, text string, capBytes int) (string, error) {
	needSep := len(base) > 0 && !isSep(base[len(base)-1])
	sep := 0
	if needSep {
		sep = 1
	}
	if len(base)+sep+len(text) > capBytes {
		return base, errPathTooLong
	}
	if needSep {
		return base + "/" + text, nil
	}
	return base + text, nil
}

// pathStartswith reports whether a starts with b as a sequence of whole path
// components — "a/b/c" starts with "a/b", but "a/bb" does not start with
// "a/b". A bare volume ("/" or "C:/") is always a valid prefix of anything
// beneath it.
func pathStartswith(a, b string) bool {
	if !strings.HasPrefix(a, b) {
		return false
	}
	if len(b) > 0 && isSep(b[len(b)-1]) {
		return true
	}
	if len(a) == len(b) {
		return true
	}
	return isSep(a[len(b)])
}

// pathCompareFold performs an ASCII case-insensitive ordering comparison,
// returning -1, 0, or 1. It exists for API parity with the case-sensitive
// byte ordering used to sort directory entries (the spec's "String view"
// calls for both), but nothing in this module's default matching behavior
// uses it — name matching stays case-sensitive on every platform.
func pathCompareFold(a, b string) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		ac, bc := foldByte(a[i]), foldByte(b[i])
		if ac != bc {
			if ac < bc {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}

// pathEqualFold reports whether a and b are equal under ASCII case folding.
func pathEqualFold(a, b string) bool {
	return len(a) == len(b) && pathCompareFold(a, b) == 0
}

func foldByte(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
