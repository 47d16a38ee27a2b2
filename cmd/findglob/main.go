// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta

// Command findglob enumerates filesystem paths matching one or more
// glob-style patterns, pruned by anti-patterns, jointly planning a minimal
// set of starting directories.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/woozymasta/findglob"
)

const version = "0.1.0"

type options struct {
	Version bool `short:"v" long:"version" description:"print version and exit"`
	Args    struct {
		Patterns []string `positional-arg-name:"PATTERN" optional:"yes"`
	} `positional-args:"yes"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(argv []string, stdout, stderr io.Writer) int {
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	var opts options
	parser := flags.NewParser(&opts, flags.Default)
	parser.Name = "findglob"
	parser.Usage = "[OPTIONS] PATTERN..."

	if _, err := parser.ParseArgs(argv); err != nil {
		if flags.WroteHelp(err) {
			return 0
		}
		logger.Error("argument parsing failed", "error", err)
		return 1
	}

	if opts.Version {
		fmt.Fprintln(stdout, "findglob version", version)
		return 0
	}

	if len(opts.Args.Patterns) == 0 {
		logger.Error("no patterns given", "error", findglob.ErrEmptyPattern)
		return 1
	}

	cwd, err := findglob.Getwd()
	if err != nil {
		logger.Error("resolve working directory", "error", err)
		return 1
	}

	patterns, err := findglob.ParsePatterns(cwd, opts.Args.Patterns)
	if err != nil {
		logger.Error("parse patterns", "error", err)
		return 1
	}

	w := findglob.NewWalker(findglob.OSDirReader{}, stdout, stderr)
	if err := w.Walk(patterns); err != nil {
		logger.Error("walk failed", "error", err)
		return 1
	}

	return 0
}
