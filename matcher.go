// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathrules

package findglob

// MatchPath reports whether path -- an already-resolved, absolute,
// slash-separated path with no wildcards of its own -- would be matched by
// patterns the way a Walker's descent would match it, without touching the
// filesystem. It runs the same per-segment transition the Walker applies
// while descending a root's start (see matchesInitialFile), just against a
// caller-supplied path instead of one discovered on disk: useful for
// answering "would this one path be picked up by this pattern set" without
// paying for a directory walk.
//
// patterns must already be absolutized (ParsePatterns does this); an
// anti-pattern's terminal match at or before the final segment suppresses
// a true result from any positive pattern, the same short-circuit
// processDir applies during a real walk.
func MatchPath(patterns []*pattern, path string, isDir bool) bool {
	segs := pathSegments(path)
	if len(segs) == 0 {
		return false
	}

	matches := make([]match, 0, len(patterns))
	for _, p := range patterns {
		matches = append(matches, match{pattern: p})
	}

	var pool matchPool
	target := classOf(isDir)
	matched := false
	for i, seg := range segs {
		c := ClassDir
		last := i == len(segs)-1
		if last {
			c = target
		}

		next, terminal := processDir(&pool, matches, seg.text, c)
		matches = next

		if last {
			matched = terminal
			break
		}
		if len(matches) == 0 {
			return false
		}
	}

	return matched
}
