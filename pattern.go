// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathrules

package findglob

import (
	"fmt"
	"strings"

	"github.com/woozymasta/findglob/internal/winpath"
)

// maxPathLen bounds path assembly during absolutization and descent. The
// section parser itself has no separate bound (see DESIGN.md for the
// chosen resolution of that ambiguity); this is the one limit enforced
// throughout the package.
const maxPathLen = 4096

// pattern is a parsed, user-supplied glob with its class filter, anti flag,
// and absolutized start. sections is mutated in place by absolutize: its
// leading run of CONSTANT sections is replaced wholesale by the segments of
// the absolute start path, so that descent from k=0 walks the start itself
// before reaching any directory the walker actually has to open.
type pattern struct {
	sections   []section
	anti       bool
	class      Class
	start      string
	printstart string
	order      int
}

// parsePattern parses one raw CLI argument into a pattern: leading shorthand
// (`!`, extended `:flags:`) first, then the remaining payload is split into
// sections via the path iterator, with a leading volume (if any) folded
// straight into a CONSTANT section rather than run through the escape
// grammar.
func parsePattern(raw string, order int) (*pattern, error) {
	if raw == "" {
		return nil, ErrEmptyPattern
	}

	p := &pattern{class: ClassBoth, order: order}
	payload := raw

	if strings.HasPrefix(payload, ":") {
		rest := payload[1:]
		end := strings.IndexByte(rest, ':')
		if end < 0 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidExtendedSyntax, raw)
		}
		flags := rest[:end]
		payload = rest[end+1:]

		seen := make(map[byte]bool, len(flags))
		haveF, haveD := false, false
		for i := 0; i < len(flags); i++ {
			f := flags[i]
			if seen[f] {
				return nil, fmt.Errorf("%w: duplicate flag %q in %q", ErrInvalidExtendedSyntax, string(f), raw)
			}
			seen[f] = true
			switch f {
			case '!':
				p.anti = true
			case 'f':
				haveF = true
			case 'd':
				haveD = true
			default:
				return nil, fmt.Errorf("%w: %q in %q", ErrUnknownExtendedFlag, string(f), raw)
			}
		}
		switch {
		case haveF && haveD, !haveF && !haveD:
			p.class = ClassBoth
		case haveF:
			p.class = ClassFile
		case haveD:
			p.class = ClassDir
		}
	} else {
		if strings.HasPrefix(payload, "!") {
			p.anti = true
			payload = payload[1:]
		}
		if payload != "" && strings.HasSuffix(payload, "/") {
			p.class = ClassDir
			payload = strings.TrimSuffix(payload, "/")
		}
	}

	if payload == "" {
		return nil, ErrEmptyPattern
	}

	segs := pathSegments(payload)
	if len(segs) == 0 {
		return nil, ErrEmptyPattern
	}

	sections := make([]section, 0, len(segs))
	for _, seg := range segs {
		if seg.isVol {
			sections = append(sections, section{kind: sectionConstant, text: seg.text})
			continue
		}
		s, err := parseSection(seg.text)
		if err != nil {
			return nil, err
		}
		sections = append(sections, s)
	}

	for i := 1; i < len(sections); i++ {
		if sections[i].kind == sectionAny && sections[i-1].kind == sectionAny {
			return nil, fmt.Errorf("%w: %q", ErrConsecutiveAny, raw)
		}
	}

	p.sections = sections

	start := ""
	for _, s := range sections {
		if s.kind != sectionConstant {
			break
		}
		joined, err := pathExtend(start, s.text, maxPathLen)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", err, raw)
		}
		start = joined
	}
	p.start = start
	p.printstart = start

	return p, nil
}

// leadingConstantCount returns how many sections, from the front, are
// CONSTANT -- the run that absolutize replaces.
func (p *pattern) leadingConstantCount() int {
	n := 0
	for _, s := range p.sections {
		if s.kind != sectionConstant {
			break
		}
		n++
	}
	return n
}

// absolutize rewrites p.start to an absolute path (joining cwd in when p's
// own start is relative and carries no volume) and splices the absolute
// path's own segments into the front of p.sections as CONSTANT sections,
// replacing whatever leading CONSTANT run was parsed from the raw pattern.
// printstart is untouched: it is what the walker later uses to build
// user-visible output paths, and stays relative to however the user wrote
// the pattern.
func (p *pattern) absolutize(cwd string) error {
	abs := p.start
	switch {
	case abs == "":
		abs = cwd
	case winpath.VolumeLen(abs) == 0:
		joined, err := pathExtend(cwd, abs, maxPathLen)
		if err != nil {
			return fmt.Errorf("%w: %q", err, p.printstart)
		}
		abs = joined
	}

	segs := pathSegments(abs)
	leading := p.leadingConstantCount()
	newSections := make([]section, 0, len(segs)+len(p.sections)-leading)
	for _, seg := range segs {
		newSections = append(newSections, section{kind: sectionConstant, text: seg.text})
	}
	newSections = append(newSections, p.sections[leading:]...)

	p.sections = newSections
	p.start = abs
	return nil
}

// ParsePatterns parses every raw CLI argument, absolutizing each against
// cwd, and enforces that at least one of them is a positive (non-anti)
// pattern.
func ParsePatterns(cwd string, args []string) ([]*pattern, error) {
	if len(args) == 0 {
		return nil, ErrEmptyPattern
	}

	patterns := make([]*pattern, 0, len(args))
	for i, raw := range args {
		p, err := parsePattern(raw, i)
		if err != nil {
			return nil, err
		}
		if err := p.absolutize(cwd); err != nil {
			return nil, err
		}
		patterns = append(patterns, p)
	}

	antiCount := 0
	havePositive := false
	for _, p := range patterns {
		if p.anti {
			antiCount++
		} else {
			havePositive = true
		}
	}
	if !havePositive {
		return nil, fmt.Errorf("%w: you provided %d antipatterns but no patterns at all", ErrNoPositivePatterns, antiCount)
	}

	return patterns, nil
}
