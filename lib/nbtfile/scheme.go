// Copyright 2026 The NBTKit Authors
// SPDX-License-Identifier: Apache-2.0

// Package nbtfile opens compressed document files. Documents are
// stored either bare or wrapped in one of four stream compression
// formats, and the format is identified by magic bytes rather than by
// file extension, so a mislabeled file still opens correctly.
package nbtfile

import "fmt"

// Scheme identifies the compression wrapping around a stored
// document. The zero value is SchemeNone.
type Scheme uint8

const (
	// SchemeNone indicates a bare document with no compression
	// wrapper.
	SchemeNone Scheme = 0

	// SchemeGzip indicates a gzip stream. The most common wrapping
	// for documents written by game tooling.
	SchemeGzip Scheme = 1

	// SchemeZlib indicates a raw zlib stream, used inside region
	// container files.
	SchemeZlib Scheme = 2

	// SchemeZstd indicates a zstd stream.
	SchemeZstd Scheme = 3

	// SchemeLZ4 indicates an lz4 frame stream.
	SchemeLZ4 Scheme = 4
)

// String returns the human-readable name of a scheme.
func (s Scheme) String() string {
	switch s {
	case SchemeNone:
		return "none"
	case SchemeGzip:
		return "gzip"
	case SchemeZlib:
		return "zlib"
	case SchemeZstd:
		return "zstd"
	case SchemeLZ4:
		return "lz4"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(s))
	}
}

// ParseScheme parses a scheme from its string representation.
func ParseScheme(name string) (Scheme, error) {
	switch name {
	case "none":
		return SchemeNone, nil
	case "gzip":
		return SchemeGzip, nil
	case "zlib":
		return SchemeZlib, nil
	case "zstd":
		return SchemeZstd, nil
	case "lz4":
		return SchemeLZ4, nil
	default:
		return 0, fmt.Errorf("unknown compression scheme: %q", name)
	}
}

// DetectScheme sniffs the compression scheme from the first bytes of
// a stored document. Four bytes are enough for every format; shorter
// prefixes are matched as far as they go. Anything unrecognized is
// reported as SchemeNone: a bare document begins with the compound
// type id 0x0a, and genuinely malformed input is better diagnosed by
// the document decoder than guessed at here.
func DetectScheme(prefix []byte) Scheme {
	if len(prefix) >= 4 {
		if prefix[0] == 0x28 && prefix[1] == 0xb5 && prefix[2] == 0x2f && prefix[3] == 0xfd {
			return SchemeZstd
		}
		if prefix[0] == 0x04 && prefix[1] == 0x22 && prefix[2] == 0x4d && prefix[3] == 0x18 {
			return SchemeLZ4
		}
	}
	if len(prefix) >= 2 {
		if prefix[0] == 0x1f && prefix[1] == 0x8b {
			return SchemeGzip
		}
		if looksLikeZlib(prefix[0], prefix[1]) {
			return SchemeZlib
		}
	}
	return SchemeNone
}

// looksLikeZlib applies the zlib header checks from RFC 1950: the
// compression method must be deflate, the window size field must be
// in range, and the two header bytes viewed as a big-endian integer
// must be a multiple of 31.
func looksLikeZlib(cmf, flg byte) bool {
	if cmf&0x0f != 8 {
		return false
	}
	if cmf>>4 > 7 {
		return false
	}
	return (uint16(cmf)<<8|uint16(flg))%31 == 0
}
