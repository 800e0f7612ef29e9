// Copyright 2026 The NBTKit Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"

	"github.com/nbtkit/nbtkit/lib/nbt"
	"github.com/nbtkit/nbtkit/lib/nbtfile"
	"github.com/nbtkit/nbtkit/lib/version"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	// Handle --version before anything else.
	for _, argument := range args {
		if argument == "--version" {
			fmt.Printf("nbtkit %s\n", version.Info())
			return 0
		}
	}

	if len(args) == 0 {
		printUsage()
		return 2
	}

	logger := newLogger()
	command, rest := args[0], args[1:]

	switch command {
	case "dump":
		return runDump(rest, logger)
	case "export":
		return runExport(rest, logger)
	case "digest":
		return runDigest(rest, logger)
	case "version":
		fmt.Printf("nbtkit %s\n", version.Full())
		return 0
	case "help", "--help", "-h":
		printUsage()
		return 0
	default:
		fmt.Fprintf(os.Stderr, "error: unknown command %q\n", command)
		printUsage()
		return 2
	}
}

// newLogger builds the CLI logger: human-readable text when stderr is
// a terminal, JSON when piped or redirected.
func newLogger() *slog.Logger {
	options := &slog.HandlerOptions{Level: slog.LevelInfo}
	var handler slog.Handler
	if term.IsTerminal(int(os.Stderr.Fd())) {
		handler = slog.NewTextHandler(os.Stderr, options)
	} else {
		handler = slog.NewJSONHandler(os.Stderr, options)
	}
	return slog.New(handler)
}

func printUsage() {
	fmt.Fprint(os.Stderr, `nbtkit inspects and converts binary tag documents.

Usage:
  nbtkit dump   [--compression MODE] [--color MODE] [--max-depth N] <file>
  nbtkit export [--format json|yaml|cbor] [--out PATH] [--indent N] <file>
  nbtkit digest [--compression MODE] <file>...
  nbtkit version

Compression modes: auto (detect from magic bytes, the default), none,
gzip, zlib, zstd, lz4.

Run any command with --help for its full flag list.
`)
}

// decodeSource opens path, unwraps its compression, and decodes the
// document. The compression argument is "auto" for magic-byte
// detection or a concrete scheme name. The returned boolean reports
// whether bytes remained after the document.
func decodeSource(path, compression string) (*nbt.Tag, nbtfile.Scheme, bool, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nbtfile.SchemeNone, false, err
	}
	defer file.Close()

	var reader io.ReadCloser
	var scheme nbtfile.Scheme
	if compression == "auto" {
		reader, scheme, err = nbtfile.NewReader(file)
	} else {
		scheme, err = nbtfile.ParseScheme(compression)
		if err == nil {
			reader, err = nbtfile.Decompress(file, scheme)
		}
	}
	if err != nil {
		return nil, scheme, false, fmt.Errorf("opening %s: %w", path, err)
	}
	defer reader.Close()

	root, err := nbt.ReadDocument(reader)
	if err != nil {
		return nil, scheme, false, fmt.Errorf("decoding %s: %w", path, err)
	}

	var probe [1]byte
	n, _ := io.ReadFull(reader, probe[:])
	return root, scheme, n > 0, nil
}
