// Copyright 2026 The NBTKit Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/nbtkit/nbtkit/lib/fingerprint"
)

func runDigest(args []string, logger *slog.Logger) int {
	flagSet := pflag.NewFlagSet("nbtkit digest", pflag.ContinueOnError)
	flagSet.SetOutput(os.Stderr)
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
	if !flagSet.Changed("compression") && cfg.Compression != "" {
		*compression = cfg.Compression
	}

	paths := flagSet.Args()
	if len(paths) == 0 {
		fmt.Fprintln(os.Stderr, "usage: nbtkit digest [flags] <file>...")
		return 2
	}

	exit := 0
	for _, path := range paths {
		root, scheme, trailing, err := decodeSource(path, *compression)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			exit = 1
			continue
		}
		if trailing {
			logger.Warn("trailing bytes after document", "path", path, "compression", scheme.String())
		}
		fmt.Printf("%s  %s\n", fingerprint.Format(fingerprint.Document(root)), path)
	}
	return exit
}
