// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathrules

package findglob

import (
	"fmt"
	"io"
	"sort"
)

// DirEntry is one filesystem entry as returned by a DirReader -- name is
// always the bare last path component, never a separator-containing path.
type DirEntry struct {
	Name  string
	IsDir bool
}

// DirReader abstracts directory enumeration, the one platform-specific
// collaborator the walker depends on. The real, os-package-backed
// implementation lives in osdirreader.go; any other implementation (for
// example an in-memory one) can be passed to NewWalker in its place.
type DirReader interface {
	// Stat reports whether path exists and, if so, whether it names a
	// directory. Any other error (including "not found") is returned as
	// err with isDir meaningless.
	Stat(path string) (isDir bool, err error)
	// ReadDir lists the immediate entries of a directory. Implementations
	// need not filter "." and ".."; the walker drops them itself.
	ReadDir(path string) ([]DirEntry, error)
}

// Walker drives the path-descent state machine over a DirReader, printing
// one matched path per line to out and diagnostics to errOut.
type Walker struct {
	fs     DirReader
	out    io.Writer
	errOut io.Writer

	matches matchPool
	entries entryPool

	dirErrors bool
}

// NewWalker builds a Walker over fs, writing matches to out and
// per-directory diagnostics to errOut.
func NewWalker(fs DirReader, out, errOut io.Writer) *Walker {
	return &Walker{fs: fs, out: out, errOut: errOut}
}

// Walk plans roots over patterns and traverses each in turn, in the order
// PlanRoots returns them. A stat failure on a root's own start is fatal and
// aborts the whole walk immediately; a directory that fails to open partway
// through a traversal is reported and skipped, with sibling directories and
// later roots still walked, but causes Walk to report ErrDirUnreadable once
// every root has been attempted.
func (w *Walker) Walk(patterns []*pattern) error {
	for _, g := range PlanRoots(patterns) {
		if err := w.walkRoot(g); err != nil {
			return err
		}
	}
	if w.dirErrors {
		return ErrDirUnreadable
	}
	return nil
}

func (w *Walker) walkRoot(g rootGroup) error {
	isDir, err := w.fs.Stat(g.start)
	if err != nil {
		return fmt.Errorf("findglob: stat %s: %w", displayPath(g.printstart), err)
	}

	if !isDir {
		if w.matchesInitialFile(g) {
			w.print(g.printstart)
		}
		return nil
	}

	matches := make([]match, 0, len(g.members))
	for _, p := range g.members {
		matches = append(matches, match{pattern: p})
	}

	terminalAtStart := false
	for _, seg := range pathSegments(g.start) {
		next, terminal := processDir(&w.matches, matches, seg.text, ClassDir)
		matches = next
		terminalAtStart = terminal
		if len(matches) == 0 {
			break
		}
	}

	if terminalAtStart {
		w.print(g.printstart)
	}
	if len(matches) > 0 {
		return w.descend(g.start, g.printstart, matches)
	}
	return nil
}

// matchesInitialFile simulates descent through every segment of a root
// whose start turned out to name a file rather than a directory: each
// intermediate segment is tested with ClassDir (it must, after all, be a
// real directory on disk to have been descended into), and only the final
// segment is tested with ClassFile.
func (w *Walker) matchesInitialFile(g rootGroup) bool {
	matches := make([]match, 0, len(g.members))
	for _, p := range g.members {
		matches = append(matches, match{pattern: p})
	}

	segs := pathSegments(g.start)
	for i, seg := range segs {
		class := ClassDir
		if i == len(segs)-1 {
			class = ClassFile
		}
		next, terminal := processDir(&w.matches, matches, seg.text, class)
		matches = next
		if i == len(segs)-1 {
			return terminal
		}
		if len(matches) == 0 {
			return false
		}
	}
	return false
}

// processDir applies the path-descent transition to every member against
// one entry, returning the carried-forward live set and whether any
// non-anti member went terminal. A terminal anti-pattern match
// short-circuits the whole entry: the carried-forward set is cleared and
// terminal is reported false, pruning both printing and recursion for this
// entry's subtree.
func processDir(pool *matchPool, members []match, name string, c Class) (next []match, terminal bool) {
	next = pool.get(len(members))
	for _, m := range members {
		f := transition(m, name, c)
		if f == 0 {
			continue
		}
		if f.has(transTerminal) {
			if m.pattern.anti {
				return next[:0], false
			}
			terminal = true
		}
		if f.has(transMatch0) {
			next = append(next, match{pattern: m.pattern, k: m.k})
		}
		if f.has(transMatch1) {
			next = append(next, match{pattern: m.pattern, k: m.k + 1})
		}
		if f.has(transMatch2) {
			next = append(next, match{pattern: m.pattern, k: m.k + 2})
		}
	}
	return next, terminal
}

// descend lists path, filters and sorts its entries, prints terminal
// matches, and recurses into subdirectories that still have a live match.
// A ReadDir failure is reported and treated as a pruned (not fatal)
// subtree; a path-length overflow building a child path is fatal, per the
// same distinction the top-level stat failure gets.
func (w *Walker) descend(path, printpath string, matches []match) error {
	defer w.matches.put(matches)

	raw, err := w.fs.ReadDir(path)
	if err != nil {
		fmt.Fprintf(w.errOut, "findglob: %s: %v\n", displayPath(printpath), err)
		w.dirErrors = true
		return nil
	}

	kept := w.entries.get()
	defer w.entries.put(kept)
	for _, e := range raw {
		if e.Name == "." || e.Name == ".." {
			continue
		}
		kept = append(kept, dirEntry{name: e.Name, isDir: e.IsDir})
	}
	sort.Slice(kept, func(i, j int) bool { return kept[i].name < kept[j].name })

	for _, e := range kept {
		c := classOf(e.isDir)
		next, terminal := processDir(&w.matches, matches, e.name, c)

		childPrint, err := pathExtend(printpath, e.name, maxPathLen)
		if err != nil {
			return fmt.Errorf("findglob: %s: %w", displayPath(printpath), err)
		}

		if terminal {
			w.print(childPrint)
		}
		if !e.isDir {
			w.matches.put(next)
			continue
		}
		if len(next) == 0 {
			w.matches.put(next)
			continue
		}

		childPath, err := pathExtend(path, e.name, maxPathLen)
		if err != nil {
			return fmt.Errorf("findglob: %s: %w", displayPath(path), err)
		}
		if err := w.descend(childPath, childPrint, next); err != nil {
			return err
		}
	}
	return nil
}

func (w *Walker) print(p string) {
	fmt.Fprintln(w.out, displayPath(p))
}

// displayPath renders the degenerate empty printstart as "." -- the
// walker's own cwd, written the way a shell would.
func displayPath(p string) string {
	if p == "" {
		return "."
	}
	return p
}
