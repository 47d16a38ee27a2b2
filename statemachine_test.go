// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathrules

package findglob

import "testing"

func mustPattern(t *testing.T, sections ...string) *pattern {
	t.Helper()
	p := &pattern{class: ClassBoth}
	for _, raw := range sections {
		if raw == "**" {
			p.sections = append(p.sections, section{kind: sectionAny})
			continue
		}
		s, err := parseSection(raw)
		if err != nil {
			t.Fatalf("parseSection(%q): %v", raw, err)
		}
		p.sections = append(p.sections, s)
	}
	return p
}

// TestTransitionAny ports the test_match_text cases for a terminal "**".
func TestTransitionAny(t *testing.T) {
	p := mustPattern(t, "**")
	m := match{pattern: p, k: 0}

	f := transition(m, "anything", ClassDir)
	if !f.has(transMatch0) || !f.has(transTerminal) {
		t.Errorf("**: transition(dir) = %v, want Match0|Terminal", f)
	}
	f = transition(m, "anything", ClassFile)
	if !f.has(transMatch0) || !f.has(transTerminal) {
		t.Errorf("**: transition(file) = %v, want Match0|Terminal", f)
	}
}

// TestTransitionAnyThenLiteral ports "**/a": MATCH_0 when name != "a",
// MATCH_0|TERMINAL when name == "a" (remains==2 case, §4.5.2c).
func TestTransitionAnyThenLiteral(t *testing.T) {
	p := mustPattern(t, "**", "a")
	m := match{pattern: p, k: 0}

	if f := transition(m, "b", ClassDir); f != transMatch0 {
		t.Errorf("**/a vs b: transition = %v, want Match0", f)
	}
	if f := transition(m, "a", ClassDir); !f.has(transMatch0) || !f.has(transTerminal) {
		t.Errorf("**/a vs a: transition = %v, want Match0|Terminal", f)
	}
}

// TestTransitionAnyThenLiteralThenAny ports "**/a/**": MATCH_2, TERMINAL
// only for a directory entry (remains==3 case, §4.5.2d).
func TestTransitionAnyThenLiteralThenAny(t *testing.T) {
	p := mustPattern(t, "**", "a", "**")
	m := match{pattern: p, k: 0}

	f := transition(m, "a", ClassDir)
	if !f.has(transMatch2) || !f.has(transTerminal) {
		t.Errorf("**/a/** vs dir a: transition = %v, want Match2|Terminal", f)
	}
	f = transition(m, "a", ClassFile)
	if !f.has(transMatch2) || f.has(transTerminal) {
		t.Errorf("**/a/** vs file a: transition = %v, want Match2 only", f)
	}
	if f := transition(m, "b", ClassDir); f != transMatch0 {
		t.Errorf("**/a/** vs b: transition = %v, want Match0", f)
	}
}

// TestTransitionAnyThenLiteralThenLiteral ports "**/a/x": MATCH_0|MATCH_2
// when the entry equals the **-adjacent literal "a", MATCH_0 otherwise.
func TestTransitionAnyThenLiteralThenLiteral(t *testing.T) {
	p := mustPattern(t, "**", "a", "x")
	m := match{pattern: p, k: 0}

	if f := transition(m, "a", ClassDir); f != transMatch0|transMatch2 {
		t.Errorf("**/a/x vs a: transition = %v, want Match0|Match2", f)
	}
	if f := transition(m, "b", ClassDir); f != transMatch0 {
		t.Errorf("**/a/x vs b: transition = %v, want Match0", f)
	}
}

// TestTransitionLiteralTerminal ports "a": TERMINAL only, class-gated.
func TestTransitionLiteralTerminal(t *testing.T) {
	p := mustPattern(t, "a")
	m := match{pattern: p, k: 0}

	if f := transition(m, "a", ClassDir); f != transTerminal {
		t.Errorf("a vs dir a: transition = %v, want Terminal", f)
	}

	fileOnly := &pattern{class: ClassFile, sections: p.sections}
	mf := match{pattern: fileOnly, k: 0}
	if f := transition(mf, "a", ClassDir); f != 0 {
		t.Errorf("a (class file) vs dir a: transition = %v, want none", f)
	}
}

// TestTransitionLiteralThenAny ports "a/**": MATCH_1, with TERMINAL gated on
// the entry itself already being a directory (remains==2, §4.5.3b).
func TestTransitionLiteralThenAny(t *testing.T) {
	p := mustPattern(t, "a", "**")
	m := match{pattern: p, k: 0}

	f := transition(m, "a", ClassDir)
	if !f.has(transMatch1) || !f.has(transTerminal) {
		t.Errorf("a/** vs dir a: transition = %v, want Match1|Terminal", f)
	}
	f = transition(m, "a", ClassFile)
	if !f.has(transMatch1) || f.has(transTerminal) {
		t.Errorf("a/** vs file a: transition = %v, want Match1 only", f)
	}
}

// TestTransitionNoMatch confirms a non-matching entry yields no flags at all.
func TestTransitionNoMatch(t *testing.T) {
	p := mustPattern(t, "a", "b")
	m := match{pattern: p, k: 0}
	if f := transition(m, "x", ClassDir); f != 0 {
		t.Errorf("transition on non-matching entry = %v, want 0", f)
	}
}
