// Copyright 2026 The NBTKit Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/nbtkit/nbtkit/lib/export"
)

func runExport(args []string, logger *slog.Logger) int {
	flagSet := pflag.NewFlagSet("nbtkit export", pflag.ContinueOnError)
	flagSet.SetOutput(os.Stderr)
	format := flagSet.String("format", "json", "output encoding: json, yaml, cbor")
	outPath := flagSet.String("out", "", "write to this path instead of stdout")
	indent := flagSet.Int("indent", 2, "JSON indent width (0 = compact)")
	compression := flagSet.String("compression", "auto", "compression scheme: auto, none, gzip, zlib, zstd, lz4")
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
	if !flagSet.Changed("format") && cfg.Format != "" {
		*format = cfg.Format
	}
	if !flagSet.Changed("indent") && cfg.Indent > 0 {
		*indent = cfg.Indent
	}
	if !flagSet.Changed("compression") && cfg.Compression != "" {
		*compression = cfg.Compression
	}

	paths := flagSet.Args()
	if len(paths) != 1 {
		fmt.Fprintln(os.Stderr, "usage: nbtkit export [flags] <file>")
		return 2
	}
	path := paths[0]

	root, scheme, trailing, err := decodeSource(path, *compression)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	if trailing {
		logger.Warn("trailing bytes after document", "path", path, "compression", scheme.String())
	}

	var data []byte
	switch *format {
	case "json":
		data, err = export.JSON(root, *indent)
		if err == nil {
			data = append(data, '\n')
		}
	case "yaml":
		data, err = export.YAML(root)
	case "cbor":
		data, err = export.CBOR(root)
	default:
		fmt.Fprintf(os.Stderr, "error: invalid format %q (want json, yaml, or cbor)\n", *format)
		return 2
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: exporting %s: %v\n", path, err)
		return 1
	}

	if *outPath == "" || *outPath == "-" {
		if _, err := os.Stdout.Write(data); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 1
		}
		return 0
	}
	if err := os.WriteFile(*outPath, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	return 0
}
