// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathrules

package findglob

import (
	"errors"
	"testing"
)

func TestParsePatternShorthand(t *testing.T) {
	p, err := parsePattern("!a/b", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !p.anti {
		t.Error("expected anti=true for leading !")
	}
	if p.class != ClassBoth {
		t.Errorf("class = %v, want ClassBoth", p.class)
	}

	p, err = parsePattern("a/b/", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.class != ClassDir {
		t.Errorf("class = %v, want ClassDir for trailing slash", p.class)
	}
	if p.anti {
		t.Error("expected anti=false")
	}
}

func TestParsePatternExtendedSyntax(t *testing.T) {
	cases := []struct {
		raw       string
		wantAnti  bool
		wantClass Class
	}{
		{":f:a/b", false, ClassFile},
		{":d:a/b", false, ClassDir},
		{":!:a/b", true, ClassBoth},
		{":!f:a/b", true, ClassFile},
	}
	for _, c := range cases {
		p, err := parsePattern(c.raw, 0)
		if err != nil {
			t.Fatalf("parsePattern(%q): %v", c.raw, err)
		}
		if p.anti != c.wantAnti {
			t.Errorf("parsePattern(%q).anti = %v, want %v", c.raw, p.anti, c.wantAnti)
		}
		if p.class != c.wantClass {
			t.Errorf("parsePattern(%q).class = %v, want %v", c.raw, p.class, c.wantClass)
		}
	}
}

func TestParsePatternExtendedSyntaxErrors(t *testing.T) {
	cases := []string{":fd", ":x:a", ":ff:a"}
	for _, raw := range cases {
		if _, err := parsePattern(raw, 0); err == nil {
			t.Errorf("parsePattern(%q): expected error, got none", raw)
		}
	}
}

func TestParsePatternEmpty(t *testing.T) {
	for _, raw := range []string{"", "!"} {
		_, err := parsePattern(raw, 0)
		if !errors.Is(err, ErrEmptyPattern) {
			t.Errorf("parsePattern(%q) error = %v, want ErrEmptyPattern", raw, err)
		}
	}
}

func TestParsePatternConsecutiveAny(t *testing.T) {
	_, err := parsePattern("**/**", 0)
	if !errors.Is(err, ErrConsecutiveAny) {
		t.Errorf("parsePattern(\"**/**\") error = %v, want ErrConsecutiveAny", err)
	}
}

func TestParsePatternStart(t *testing.T) {
	p, err := parsePattern("example/**", 0)
	if err != nil {
		t.Fatal(err)
	}
	if p.start != "example" {
		t.Errorf("start = %q, want %q", p.start, "example")
	}
	if p.printstart != "example" {
		t.Errorf("printstart = %q, want %q", p.printstart, "example")
	}

	p, err = parsePattern("**", 0)
	if err != nil {
		t.Fatal(err)
	}
	if p.start != "" {
		t.Errorf("start = %q, want empty", p.start)
	}
}

func TestPatternAbsolutize(t *testing.T) {
	p, err := parsePattern("example/**", 0)
	if err != nil {
		t.Fatal(err)
	}
	if err := p.absolutize("/home/user"); err != nil {
		t.Fatal(err)
	}
	if p.start != "/home/user/example" {
		t.Errorf("start = %q, want %q", p.start, "/home/user/example")
	}
	if p.printstart != "example" {
		t.Errorf("printstart changed after absolutize: %q", p.printstart)
	}
	// The last section ("**") must survive the splice untouched.
	if p.sections[len(p.sections)-1].kind != sectionAny {
		t.Errorf("expected trailing section to remain ANY after absolutize")
	}
}

func TestPatternAbsolutizeEmptyStart(t *testing.T) {
	p, err := parsePattern("**", 0)
	if err != nil {
		t.Fatal(err)
	}
	if err := p.absolutize("/home/user"); err != nil {
		t.Fatal(err)
	}
	if p.start != "/home/user" {
		t.Errorf("start = %q, want cwd", p.start)
	}
	if p.printstart != "" {
		t.Errorf("printstart = %q, want empty", p.printstart)
	}
}

func TestParsePatternsRequiresPositive(t *testing.T) {
	_, err := ParsePatterns("/home/user", []string{"!a", "!b"})
	if !errors.Is(err, ErrNoPositivePatterns) {
		t.Fatalf("error = %v, want ErrNoPositivePatterns", err)
	}
}

func TestParsePatternsOrdinals(t *testing.T) {
	patterns, err := ParsePatterns("/home/user", []string{"a", "b", "c"})
	if err != nil {
		t.Fatal(err)
	}
	for i, p := range patterns {
		if p.order != i {
			t.Errorf("patterns[%d].order = %d, want %d", i, p.order, i)
		}
	}
}
