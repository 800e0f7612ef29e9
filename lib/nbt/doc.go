// Copyright 2026 The NBTKit Authors
// SPDX-License-Identifier: Apache-2.0

// Package nbt decodes the Named Binary Tag format: the binary,
// self-describing tree structure used to persist hierarchical game and
// world state. A document is a single named compound tag; compounds
// hold uniquely named child tags, lists hold ordered unnamed children
// of one element type, and the leaves are fixed-width big-endian
// numerics, length-prefixed UTF-8 strings, and integer arrays.
//
// The package is a decoder only. It reads from any io.Reader with a
// strict read-exactly-or-fail discipline and materializes the complete
// document in one pass:
//
//	root, err := nbt.ReadDocument(reader)
//	if err != nil {
//		return err
//	}
//	level := root.Get("Level")
//	seed, err := level.Get("RandomSeed").AsLong()
//
// Wire format, in brief:
//
//   - every multi-byte numeric is big-endian
//   - a string is a uint16 byte length followed by UTF-8 bytes
//   - a keyed tag (document root, compound child) is a one-byte type
//     id, a name string, then the type-specific payload
//   - a list element is the payload alone; its type is declared once
//     in the list header and elements carry no names
//   - a compound payload is a sequence of keyed tags terminated by the
//     TAG_END id byte; arrays and lists carry an int32 length instead
//
// Failures are permanent for the decode in progress: the decoder never
// resynchronizes, retries, or returns a partial tree. Every error is a
// *Error whose Kind distinguishes truncated input, an unknown type id,
// a non-compound document root, an invalid construction request, and
// the unsupported open-ended list length encoding, with the byte
// offset at which the condition was detected.
//
// Decoding is synchronous and single-threaded. Decoders share no
// state, so any number of documents may be decoded concurrently as
// long as each call has its own reader. The caller owns the byte
// source and closes it after the decode returns; package nbtfile
// provides openers that pair with this contract.
package nbt
