// Copyright 2026 The NBTKit Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bufio"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"
)

func runDump(args []string, logger *slog.Logger) int {
	flagSet := pflag.NewFlagSet("nbtkit dump", pflag.ContinueOnError)
	flagSet.SetOutput(os.Stderr)
	compression := flagSet.String("compression", "auto", "compression scheme: auto, none, gzip, zlib, zstd, lz4")
	colorMode := flagSet.String("color", "auto", "colorize output: auto, always, never")
	maxDepth := flagSet.Int("max-depth", 0, "collapse containers nested deeper than this (0 = unlimited)")
	configPath := flagSet.String("config", "", "path to a JSONC config file")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}
	if !flagSet.Changed("compression") && cfg.Compression != "" {
		*compression = cfg.Compression
	}
	if !flagSet.Changed("color") && cfg.Color != "" {
		*colorMode = cfg.Color
	}
	if !flagSet.Changed("max-depth") && cfg.MaxDepth > 0 {
		*maxDepth = cfg.MaxDepth
	}

	paths := flagSet.Args()
	if len(paths) != 1 {
		fmt.Fprintln(os.Stderr, "usage: nbtkit dump [flags] <file>")
		return 2
	}
	path := paths[0]

	renderer, err := newRenderer(os.Stdout, *colorMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}

	root, scheme, trailing, err := decodeSource(path, *compression)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	if trailing {
		logger.Warn("trailing bytes after document", "path", path, "compression", scheme.String())
	}

	out := bufio.NewWriter(os.Stdout)
	if err := renderTree(out, root, newPalette(renderer), *maxDepth); err != nil {
		fmt.Fprintf(os.Stderr, "error: rendering %s: %v\n", path, err)
		return 1
	}
	if err := out.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	return 0
}
