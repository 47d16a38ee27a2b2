// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathrules

/*
Package findglob implements a multi-pattern filesystem enumerator: given a
set of glob-style patterns and anti-patterns, it plans the minimum set of
starting directories that covers every pattern, then walks the filesystem
emitting the paths of files and directories that match.

Basic flow:
  - parse raw CLI-style pattern strings into patterns (`ParsePatterns`)
  - plan roots from the parsed patterns (`PlanRoots`)
  - drive a `Walker` over a `DirReader` to enumerate and print matches

A pattern is a sequence of `/`-separated sections (`**`, literal text, or a
name-level glob), an anti flag, a class filter (file/dir/both), and a start
path derived from its leading literal sections. Patterns sharing a common
start-ancestry are grouped into one root by `PlanRoots`, so a directory
tree covered by several patterns is only ever walked once.

Directory enumeration is the one platform-specific dependency; it is
abstracted behind the `DirReader` interface so the matcher and planner are
testable without touching a real filesystem. `OSDirReader` is the
production implementation.
*/
package findglob
