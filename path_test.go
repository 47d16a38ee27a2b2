// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathrules

package findglob

import "testing"

func TestPathIterSegments(t *testing.T) {
	cases := []struct {
		path string
		want []string
	}{
		{"a/b/c", []string{"a", "b", "c"}},
		{"/a/b", []string{"/", "a", "b"}},
		{"a//b", []string{"a", "b"}},
		{"", nil},
		{"a", []string{"a"}},
		{"/", []string{"/"}},
	}

	for _, c := range cases {
		segs := pathSegments(c.path)
		if len(segs) != len(c.want) {
			t.Fatalf("pathSegments(%q) = %v, want %v", c.path, segs, c.want)
		}
		for i, s := range segs {
			if s.text != c.want[i] {
				t.Errorf("pathSegments(%q)[%d] = %q, want %q", c.path, i, s.text, c.want[i])
			}
		}
	}
}

func TestPathIterVolumeFlag(t *testing.T) {
	segs := pathSegments("/a/b")
	if len(segs) == 0 || !segs[0].isVol {
		t.Fatalf("expected leading segment of %q to be flagged as a volume", "/a/b")
	}
	if segs[1].isVol {
		t.Fatalf("expected second segment to not be a volume")
	}
}

func TestPathExtend(t *testing.T) {
	cases := []struct {
		base, text string
		want       string
	}{
		{"", "a", "a"},
		{"a", "b", "a/b"},
		{"a/", "b", "a/b"},
		{"/", "a", "/a"},
	}
	for _, c := range cases {
		got, err := pathExtend(c.base, c.text, maxPathLen)
		if err != nil {
			t.Fatalf("pathExtend(%q, %q) error: %v", c.base, c.text, err)
		}
		if got != c.want {
			t.Errorf("pathExtend(%q, %q) = %q, want %q", c.base, c.text, got, c.want)
		}
	}
}

func TestPathExtendTooLong(t *testing.T) {
	_, err := pathExtend("abc", "def", 5)
	if err == nil {
		t.Fatal("expected an error when the result exceeds cap")
	}
}

func TestPathStartswith(t *testing.T) {
	cases := []struct {
		a, b string
		want bool
	}{
		{"a/b/c", "a/b", true},
		{"a/bb", "a/b", false},
		{"/a", "/", true},
		{"a/b", "a/b", true},
		{"a/b", "a/bc", false},
	}
	for _, c := range cases {
		if got := pathStartswith(c.a, c.b); got != c.want {
			t.Errorf("pathStartswith(%q, %q) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestPathEqualFold(t *testing.T) {
	if !pathEqualFold("ABC", "abc") {
		t.Error("expected case-insensitive equality")
	}
	if pathEqualFold("ABC", "abcd") {
		t.Error("expected length mismatch to break equality")
	}
}
