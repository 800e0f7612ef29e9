// Copyright 2026 The NBTKit Authors
// SPDX-License-Identifier: Apache-2.0

package nbtfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/nbtkit/nbtkit/lib/nbt"
)

// Decompress wraps r with the decompressor for the given scheme. The
// caller owns closing the returned reader; closing it does not close
// r.
func Decompress(r io.Reader, scheme Scheme) (io.ReadCloser, error) {
	switch scheme {
	case SchemeNone:
		return io.NopCloser(r), nil

	case SchemeGzip:
		reader, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("gzip reader: %w", err)
		}
		return reader, nil

	case SchemeZlib:
		reader, err := zlib.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("zlib reader: %w", err)
		}
		return reader, nil

	case SchemeZstd:
		decoder, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("zstd reader: %w", err)
		}
		return decoder.IOReadCloser(), nil

	case SchemeLZ4:
		return io.NopCloser(lz4.NewReader(r)), nil

	default:
		return nil, fmt.Errorf("unsupported compression scheme: %d", uint8(scheme))
	}
}

// NewReader sniffs the compression scheme from the head of r and
// returns a reader for the decompressed document stream along with
// the detected scheme. Closing the returned reader does not close r.
func NewReader(r io.Reader) (io.ReadCloser, Scheme, error) {
	buffered := bufio.NewReader(r)

	// A short peek is fine: DetectScheme matches what is there, and
	// a file shorter than any magic cannot be compressed anyway.
	prefix, err := buffered.Peek(4)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, SchemeNone, fmt.Errorf("sniffing compression scheme: %w", err)
	}

	scheme := DetectScheme(prefix)
	reader, err := Decompress(buffered, scheme)
	if err != nil {
		return nil, scheme, err
	}
	return reader, scheme, nil
}

// openFile couples a decompressing reader with the file underneath it
// so one Close releases both.
type openFile struct {
	io.Reader
	decompressor io.Closer
	file         *os.File
}

func (f *openFile) Close() error {
	err := f.decompressor.Close()
	if closeErr := f.file.Close(); err == nil {
		err = closeErr
	}
	return err
}

// Open opens the document file at path, detects its compression
// scheme, and returns a reader for the decompressed stream. Close on
// the returned reader releases the decompressor and the file.
func Open(path string) (io.ReadCloser, Scheme, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, SchemeNone, err
	}

	reader, scheme, err := NewReader(file)
	if err != nil {
		file.Close()
		return nil, scheme, fmt.Errorf("opening %s: %w", path, err)
	}
	return &openFile{Reader: reader, decompressor: reader, file: file}, scheme, nil
}

// ReadFile opens, detects, and fully decodes the document file at
// path, returning the document root and the compression scheme it was
// stored under.
func ReadFile(path string) (*nbt.Tag, Scheme, error) {
	reader, scheme, err := Open(path)
	if err != nil {
		return nil, scheme, err
	}
	defer reader.Close()

	root, err := nbt.ReadDocument(reader)
	if err != nil {
		return nil, scheme, fmt.Errorf("decoding %s: %w", path, err)
	}
	return root, scheme, nil
}
