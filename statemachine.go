// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathrules

package findglob

// transFlags is the subset of {Match0, Match1, Match2, Terminal} produced by
// one descent step. Several flags may be set at once (e.g. Match0|Match2 for
// `**/a/x`); the walker treats the set as independent facts, not a single
// outcome.
type transFlags uint8

const (
	// transMatch0 means this entry is consumed without advancing the
	// match's section index -- only possible when the current section is
	// ANY, re-offering the same ** to the next path component.
	transMatch0 transFlags = 1 << iota
	// transMatch1 means this entry is consumed and the section index
	// advances by one.
	transMatch1
	// transMatch2 means this entry is consumed and the section index
	// advances by two, used when an ANY section is skipped entirely
	// because the following section already matched this entry.
	transMatch2
	// transTerminal means the pattern is fully satisfied at this entry.
	transTerminal
)

func (f transFlags) has(k transFlags) bool { return f&k != 0 }

// match is a live (pattern, consumed-section-count) pair tracked by the
// walker across one directory's worth of entries.
type match struct {
	pattern *pattern
	k       int
}

// transition computes the flags produced by testing m against a single
// directory entry, per the path-descent state machine: a sequence of
// increasingly specific cases driven by whether the current section is ANY
// and how many sections remain. Certain logically possible flags (e.g.
// Match0 re-offered at `**/a/**` once a skip-through is available) are
// deliberately never set, since the walker would otherwise carry redundant
// live matches for paths it will reach anyway through another flag.
func transition(m match, name string, c Class) transFlags {
	p := m.pattern
	sec := p.sections[m.k]

	if !sectionMatches(sec, name) {
		return 0
	}

	remains := len(p.sections) - m.k
	classMatch := p.class.has(c)
	isDir := c == ClassDir

	if sec.kind != sectionAny {
		switch {
		case remains == 1:
			if classMatch {
				return transTerminal
			}
			return 0
		case remains == 2 && p.sections[m.k+1].kind == sectionAny:
			f := transMatch1
			if classMatch && isDir {
				f |= transTerminal
			}
			return f
		default:
			return transMatch1
		}
	}

	// sec is ANY ("**").
	if remains == 1 {
		f := transMatch0
		if classMatch {
			f |= transTerminal
		}
		return f
	}

	next := p.sections[m.k+1]
	if !sectionMatches(next, name) {
		return transMatch0
	}

	if remains == 2 {
		f := transMatch0
		if classMatch {
			f |= transTerminal
		}
		return f
	}

	next2 := p.sections[m.k+2]
	if next2.kind == sectionAny {
		if remains == 3 {
			f := transMatch2
			if classMatch && isDir {
				f |= transTerminal
			}
			return f
		}
		return transMatch2
	}

	return transMatch0 | transMatch2
}
