// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathrules

package findglob

import "os"

// OSDirReader is the real, os-package-backed DirReader used by the CLI.
type OSDirReader struct{}

// Stat reports whether path exists and names a directory.
func (OSDirReader) Stat(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}

// ReadDir lists the immediate entries of a directory.
func (OSDirReader) ReadDir(path string) ([]DirEntry, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	out := make([]DirEntry, len(entries))
	for i, e := range entries {
		out[i] = DirEntry{Name: e.Name(), IsDir: e.IsDir()}
	}
	return out, nil
}

// Getwd returns the absolutizer's current-working-directory with any
// Windows backslashes normalized to forward slashes, matching the
// requirement that absolutization always works in slash-separated form.
func Getwd() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return normalizeSlashes(cwd), nil
}

func normalizeSlashes(p string) string {
	b := []byte(p)
	changed := false
	for i, c := range b {
		if c == '\\' {
			b[i] = '/'
			changed = true
		}
	}
	if !changed {
		return p
	}
	return string(b)
}
