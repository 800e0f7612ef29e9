// Copyright 2026 The NBTKit Authors
// SPDX-License-Identifier: Apache-2.0

// Package fingerprint derives stable content digests for decoded
// documents. Two documents fingerprint equal exactly when they are
// logically equal: same tree shape, same names, same values. The wire
// details that do not affect meaning, compound key order and source
// compression, do not affect the fingerprint.
//
// The digest is BLAKE3 in keyed mode over a canonical transcript of
// the tree. The transcript is not the document wire format and cannot
// be decoded; it exists only to be hashed.
package fingerprint

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math"
	"sort"

	"github.com/zeebo/blake3"

	"github.com/nbtkit/nbtkit/lib/nbt"
)

// Fingerprint is a 32-byte BLAKE3 digest of a document tree.
type Fingerprint [32]byte

// documentDomainKey is the 32-byte key for BLAKE3 keyed hashing.
// Domain separation keeps document fingerprints from colliding with
// hashes of the same bytes computed in any other context. The byte
// values are the ASCII encoding of the domain name, zero-padded to 32
// bytes, so the key is readable in hex dumps without giving up any
// cryptographic property.
var documentDomainKey = [32]byte{
	'n', 'b', 't', 'k', 'i', 't', '.', 'f', 'i', 'n', 'g', 'e', 'r', 'p', 'r', 'i',
	'n', 't', '.', 'd', 'o', 'c', 'u', 'm', 'e', 'n', 't', 0, 0, 0, 0, 0,
}

// Document computes the fingerprint of a decoded document tree. The
// transcript walks the tree depth-first writing, per tag: the kind
// byte, a name-presence byte with the length-prefixed name when one
// is present, and the payload with fixed-width big-endian integers
// and length-prefixed variable data. Compound entries are visited in
// bytewise name order, which is what makes the fingerprint
// independent of wire key order. Floating point payloads are hashed
// by bit pattern.
//
// Panics if root is nil.
func Document(root *nbt.Tag) Fingerprint {
	if root == nil {
		panic("fingerprint.Document: nil document root")
	}

	hasher, err := blake3.NewKeyed(documentDomainKey[:])
	if err != nil {
		panic("fingerprint: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	if err := writeTag(hasher, root); err != nil {
		// Decoded tags always satisfy their own accessors; this can
		// only trip on a tag value broken by construction.
		panic("fingerprint: " + err.Error())
	}

	var fp Fingerprint
	copy(fp[:], hasher.Sum(nil))
	return fp
}

// Format returns the hex-encoded string representation of a
// fingerprint. This is the canonical format for CLI output and logs.
func Format(fp Fingerprint) string {
	return hex.EncodeToString(fp[:])
}

// Parse parses a 64-character hex string into a Fingerprint.
func Parse(hexString string) (Fingerprint, error) {
	var fp Fingerprint
	decoded, err := hex.DecodeString(hexString)
	if err != nil {
		return fp, fmt.Errorf("parsing document fingerprint: %w", err)
	}
	if len(decoded) != 32 {
		return fp, fmt.Errorf("document fingerprint is %d bytes, want 32", len(decoded))
	}
	copy(fp[:], decoded)
	return fp, nil
}

func writeTag(hasher *blake3.Hasher, tag *nbt.Tag) error {
	hasher.Write([]byte{byte(tag.Type())})

	if name, named := tag.Name(); named {
		hasher.Write([]byte{0x01})
		writeUint32(hasher, uint32(len(name)))
		hasher.Write([]byte(name))
	} else {
		hasher.Write([]byte{0x00})
	}

	switch tag.Type() {
	case nbt.TagByte:
		value, err := tag.AsByte()
		if err != nil {
			return err
		}
		hasher.Write([]byte{byte(value)})

	case nbt.TagShort:
		value, err := tag.AsShort()
		if err != nil {
			return err
		}
		var scratch [2]byte
		binary.BigEndian.PutUint16(scratch[:], uint16(value))
		hasher.Write(scratch[:])

	case nbt.TagInt:
		value, err := tag.AsInt()
		if err != nil {
			return err
		}
		writeUint32(hasher, uint32(value))

	case nbt.TagLong:
		value, err := tag.AsLong()
		if err != nil {
			return err
		}
		writeUint64(hasher, uint64(value))

	case nbt.TagFloat:
		value, err := tag.AsFloat()
		if err != nil {
			return err
		}
		writeUint32(hasher, math.Float32bits(value))

	case nbt.TagDouble:
		value, err := tag.AsDouble()
		if err != nil {
			return err
		}
		writeUint64(hasher, math.Float64bits(value))

	case nbt.TagString:
		value, err := tag.AsString()
		if err != nil {
			return err
		}
		writeUint32(hasher, uint32(len(value)))
		hasher.Write([]byte(value))

	case nbt.TagByteArray:
		values, err := tag.AsByteArray()
		if err != nil {
			return err
		}
		writeUint32(hasher, uint32(len(values)))
		raw := make([]byte, len(values))
		for i, value := range values {
			raw[i] = byte(value)
		}
		hasher.Write(raw)

	case nbt.TagIntArray:
		values, err := tag.AsIntArray()
		if err != nil {
			return err
		}
		writeUint32(hasher, uint32(len(values)))
		for _, value := range values {
			writeUint32(hasher, uint32(value))
		}

	case nbt.TagLongArray:
		values, err := tag.AsLongArray()
		if err != nil {
			return err
		}
		writeUint32(hasher, uint32(len(values)))
		for _, value := range values {
			writeUint64(hasher, uint64(value))
		}

	case nbt.TagList:
		elementType, elements, err := tag.AsList()
		if err != nil {
			return err
		}
		hasher.Write([]byte{byte(elementType)})
		writeUint32(hasher, uint32(len(elements)))
		for _, element := range elements {
			if err := writeTag(hasher, element); err != nil {
				return err
			}
		}

	case nbt.TagCompound:
		entries, err := tag.AsCompound()
		if err != nil {
			return err
		}
		sorted := make([]nbt.CompoundEntry, len(entries))
		copy(sorted, entries)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

		writeUint32(hasher, uint32(len(sorted)))
		for _, entry := range sorted {
			if err := writeTag(hasher, entry.Value); err != nil {
				return err
			}
		}

	default:
		return fmt.Errorf("no transcript for %s", tag)
	}

	return nil
}

func writeUint32(hasher *blake3.Hasher, value uint32) {
	var scratch [4]byte
	binary.BigEndian.PutUint32(scratch[:], value)
	hasher.Write(scratch[:])
}

func writeUint64(hasher *blake3.Hasher, value uint64) {
	var scratch [8]byte
	binary.BigEndian.PutUint64(scratch[:], value)
	hasher.Write(scratch[:])
}
