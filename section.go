// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathrules

package findglob

import (
	"fmt"
	"strings"
)

// sectionKind distinguishes the three section variants. sectionMatches
// switches on it with one case per variant and no default case; a variant
// it does not handle reaches the trailing "return false".
type sectionKind uint8

const (
	sectionAny sectionKind = iota
	sectionConstant
	sectionGlob
)

// globOpt is the optimization a GLOB section was classified into during
// parsing. Each one except globOptNone lets sectionMatches avoid the
// general two-pointer matcher.
type globOpt uint8

const (
	globOptAny globOpt = iota
	globOptPrefix
	globOptSuffix
	globOptBookends
	globOptContains
	globOptNone
)

// section is one `/`-delimited fragment of a parsed pattern.
type section struct {
	kind sectionKind

	// GLOB only.
	opt globOpt

	// CONSTANT: the literal text. GLOB/PREFIX: the required prefix.
	// GLOB/SUFFIX: the required suffix. GLOB/CONTAINS: the required
	// substring. GLOB/BOOKENDS: the required prefix (text2 is the
	// required suffix). GLOB/NONE: the full token string, one byte per
	// original glyph, paired with lit.
	text  string
	text2 string

	// GLOB/NONE only: lit[i] is true when text[i] is a literal byte to
	// compare directly, false when text[i] is itself '*' or '?' acting as
	// a wildcard marker at that position.
	lit []bool
}

type sectionTok struct {
	b    byte
	wild byte // 0 for literal, '*' or '?' for a wildcard marker
}

// parseSection classifies one path segment of a pattern into a section,
// per the escape grammar: `\\`, `\*`, `\?` are literal escapes; a bare `*`
// is a zero-or-more wildcard; a bare `?` matches exactly one byte; anything
// else is literal. Two adjacent unescaped `*` within a section is an error
// -- `**` is legal only as an entire section, handled before this grammar
// ever runs.
func parseSection(raw string) (section, error) {
	if raw == "" {
		return section{}, fmt.Errorf("%w: empty section", ErrEmptyPattern)
	}
	if raw == "**" {
		return section{kind: sectionAny}, nil
	}

	toks := make([]sectionTok, 0, len(raw))
	prevStar := false
	for i := 0; i < len(raw); {
		c := raw[i]
		switch {
		case c == '\\':
			if i+1 >= len(raw) {
				return section{}, fmt.Errorf("%w: trailing backslash in %q", ErrInvalidPattern, raw)
			}
			next := raw[i+1]
			if next != '\\' && next != '*' && next != '?' {
				return section{}, fmt.Errorf("%w: invalid escape \\%c in %q", ErrInvalidPattern, next, raw)
			}
			toks = append(toks, sectionTok{b: next})
			i += 2
			prevStar = false
		case c == '*':
			if prevStar {
				return section{}, fmt.Errorf("%w: consecutive unescaped '*' in %q", ErrInvalidPattern, raw)
			}
			toks = append(toks, sectionTok{b: '*', wild: '*'})
			i++
			prevStar = true
		case c == '?':
			toks = append(toks, sectionTok{b: '?', wild: '?'})
			i++
			prevStar = false
		default:
			toks = append(toks, sectionTok{b: c})
			i++
			prevStar = false
		}
	}

	qCount := 0
	var starIdxs []int
	for idx, t := range toks {
		switch t.wild {
		case '?':
			qCount++
		case '*':
			starIdxs = append(starIdxs, idx)
		}
	}

	if qCount == 0 && len(starIdxs) == 1 && len(toks) == 1 {
		return section{kind: sectionGlob, opt: globOptAny}, nil
	}

	if qCount == 0 {
		switch len(starIdxs) {
		case 0:
			return section{kind: sectionConstant, text: tokText(toks)}, nil
		case 1:
			si := starIdxs[0]
			switch {
			case si == 0:
				return section{kind: sectionGlob, opt: globOptSuffix, text: tokText(toks[1:])}, nil
			case si == len(toks)-1:
				return section{kind: sectionGlob, opt: globOptPrefix, text: tokText(toks[:si])}, nil
			default:
				return section{kind: sectionGlob, opt: globOptBookends, text: tokText(toks[:si]), text2: tokText(toks[si+1:])}, nil
			}
		case 2:
			if starIdxs[0] == 0 && starIdxs[1] == len(toks)-1 {
				return section{kind: sectionGlob, opt: globOptContains, text: tokText(toks[1 : len(toks)-1])}, nil
			}
		}
	}

	text := make([]byte, len(toks))
	lit := make([]bool, len(toks))
	for idx, t := range toks {
		if t.wild == 0 {
			text[idx] = t.b
			lit[idx] = true
		} else {
			text[idx] = t.wild
			lit[idx] = false
		}
	}
	return section{kind: sectionGlob, opt: globOptNone, text: string(text), lit: lit}, nil
}

func tokText(toks []sectionTok) string {
	b := make([]byte, len(toks))
	for i, t := range toks {
		b[i] = t.b
	}
	return string(b)
}

// sectionMatches reports whether name satisfies section, independent of any
// ** semantics -- the ANY variant always reports true here; its special
// zero-or-more-components behavior lives entirely in the state machine
// (statemachine.go).
func sectionMatches(s section, name string) bool {
	switch s.kind {
	case sectionAny:
		return true
	case sectionConstant:
		return s.text == name
	case sectionGlob:
		switch s.opt {
		case globOptAny:
			return true
		case globOptPrefix:
			return strings.HasPrefix(name, s.text)
		case globOptSuffix:
			return strings.HasSuffix(name, s.text)
		case globOptContains:
			return strings.Contains(name, s.text)
		case globOptBookends:
			return len(name) >= len(s.text)+len(s.text2) &&
				strings.HasPrefix(name, s.text) && strings.HasSuffix(name, s.text2)
		case globOptNone:
			return globMatch(s.text, s.lit, name)
		}
	}
	return false
}

// globMatch is the full per-character matcher backing the GLOB/NONE
// optimization: lit[i] forces a literal byte comparison of text[i]; a
// non-literal '?' consumes exactly one name byte; a non-literal '*'
// consumes any run, including empty. It is the fallback used only when
// none of the five cheaper optimizations apply (NONE_ is the expensive
// one, the rest are exercised far more often in practice).
//
// Implemented iteratively with a backtrack bookmark (starIdx/matchIdx)
// rather than the source's recursion, to keep stack depth independent of
// name length.
func globMatch(text string, lit []bool, name string) bool {
	ti, ni := 0, 0
	starIdx, matchIdx := -1, 0

	for ni < len(name) {
		switch {
		case ti < len(text) && lit[ti] && text[ti] == name[ni]:
			ti++
			ni++
		case ti < len(text) && !lit[ti] && text[ti] == '?':
			ti++
			ni++
		case ti < len(text) && !lit[ti] && text[ti] == '*':
			starIdx, matchIdx = ti, ni
			ti++
		case starIdx != -1:
			ti = starIdx + 1
			matchIdx++
			ni = matchIdx
		default:
			return false
		}
	}

	for ti < len(text) && !lit[ti] && text[ti] == '*' {
		ti++
	}
	return ti == len(text)
}
