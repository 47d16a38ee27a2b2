// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathrules

package findglob

import "sort"

// rootGroup is one independent traversal: a starting directory plus every
// pattern reachable from it (itself, any other positive pattern nested
// beneath it, and every anti-pattern, which rides along with every group).
type rootGroup struct {
	members    []*pattern
	start      string
	printstart string
}

// PlanRoots groups patterns so that each root directory is walked exactly
// once. A positive pattern i is a root iff, for every other positive
// pattern j, i's start does not path_startswith j's start -- or, when the
// two starts are equal, i has the lower original ordinal. Anti-patterns are
// never roots; they are added to every group so every traversal can prune
// against them. Groups are returned in increasing root-ordinal order, the
// same order their root pattern was supplied on the command line.
func PlanRoots(patterns []*pattern) []rootGroup {
	var positives, antis []*pattern
	for _, p := range patterns {
		if p.anti {
			antis = append(antis, p)
		} else {
			positives = append(positives, p)
		}
	}

	groups := make([]rootGroup, 0, len(positives))
	for i, pi := range positives {
		if !isRoot(positives, i) {
			continue
		}

		members := make([]*pattern, 0, len(positives)+len(antis))
		members = append(members, pi)
		for j, pj := range positives {
			if j == i {
				continue
			}
			if pathStartswith(pj.start, pi.start) {
				members = append(members, pj)
			}
		}
		members = append(members, antis...)
		sortGroupMembers(members)

		groups = append(groups, rootGroup{
			members:    members,
			start:      pi.start,
			printstart: pi.printstart,
		})
	}

	return groups
}

func isRoot(positives []*pattern, i int) bool {
	pi := positives[i]
	for j, pj := range positives {
		if j == i {
			continue
		}
		if !pathStartswith(pi.start, pj.start) {
			continue
		}
		if pi.start == pj.start && i < j {
			continue
		}
		return false
	}
	return true
}

// sortGroupMembers stably reorders a group so anti-patterns precede
// positive patterns, with original ordinal as the tiebreak within each
// half. This lets the walker's anti-pattern short-circuit fire before any
// positive pattern in the same group is even evaluated for a given entry.
func sortGroupMembers(members []*pattern) {
	sort.SliceStable(members, func(a, b int) bool {
		pa, pb := members[a], members[b]
		if pa.anti != pb.anti {
			return pa.anti
		}
		return pa.order < pb.order
	})
}
