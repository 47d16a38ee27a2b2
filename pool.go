// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathrules

package findglob

// matchPool and entryPool are free-list stacks of reusable slices, one kind
// per per-level array the walker needs: the live match set it carries one
// recursion deeper, and the sorted directory-entry listing it builds and
// discards within a single directory visit. They are not sync.Pool: a
// sync.Pool is free to drop its contents between any two calls, which would
// defeat the point here -- the walker is single-threaded and wants a true
// stack, not a GC-driven cache, so that array reuse is deterministic and
// unconditional across the whole traversal.

type matchPool struct {
	free [][]match
}

func (p *matchPool) get(capHint int) []match {
	if n := len(p.free); n > 0 {
		s := p.free[n-1]
		p.free = p.free[:n-1]
		return s[:0]
	}
	return make([]match, 0, capHint)
}

func (p *matchPool) put(s []match) {
	p.free = append(p.free, s)
}

type dirEntry struct {
	name  string
	isDir bool
}

type entryPool struct {
	free [][]dirEntry
}

func (p *entryPool) get() []dirEntry {
	if n := len(p.free); n > 0 {
		s := p.free[n-1]
		p.free = p.free[:n-1]
		return s[:0]
	}
	return make([]dirEntry, 0, 32)
}

func (p *entryPool) put(s []dirEntry) {
	p.free = append(p.free, s)
}
