// Copyright 2026 The NBTKit Authors
// SPDX-License-Identifier: Apache-2.0

package nbt

import "fmt"

// TagType identifies the payload shape of a tag. The wire id is the
// single source of truth for how many bytes follow and how they are
// structured. The enumeration is closed: values outside 0-12 are
// malformed input.
type TagType uint8

const (
	// TagEnd terminates a compound payload. It never appears as a
	// real tag: it has no payload, no name, and cannot be constructed
	// as a value.
	TagEnd TagType = 0

	// TagByte is a single signed 8-bit integer.
	TagByte TagType = 1

	// TagShort is a signed 16-bit integer.
	TagShort TagType = 2

	// TagInt is a signed 32-bit integer.
	TagInt TagType = 3

	// TagLong is a signed 64-bit integer.
	TagLong TagType = 4

	// TagFloat is an IEEE 754 single-precision float.
	TagFloat TagType = 5

	// TagDouble is an IEEE 754 double-precision float.
	TagDouble TagType = 6

	// TagByteArray is an int32-length-prefixed sequence of signed
	// 8-bit integers.
	TagByteArray TagType = 7

	// TagString is a uint16-length-prefixed UTF-8 string.
	TagString TagType = 8

	// TagList is an ordered sequence of unnamed tags sharing one
	// element type, declared once in the list header.
	TagList TagType = 9

	// TagCompound is a set of uniquely named child tags terminated by
	// a TagEnd byte.
	TagCompound TagType = 10

	// TagIntArray is an int32-length-prefixed sequence of signed
	// 32-bit integers.
	TagIntArray TagType = 11

	// TagLongArray is an int32-length-prefixed sequence of signed
	// 64-bit integers.
	TagLongArray TagType = 12
)

// String returns the canonical display name of a tag type.
func (t TagType) String() string {
	switch t {
	case TagEnd:
		return "TAG_END"
	case TagByte:
		return "TAG_BYTE"
	case TagShort:
		return "TAG_SHORT"
	case TagInt:
		return "TAG_INT"
	case TagLong:
		return "TAG_LONG"
	case TagFloat:
		return "TAG_FLOAT"
	case TagDouble:
		return "TAG_DOUBLE"
	case TagByteArray:
		return "TAG_BYTE_ARRAY"
	case TagString:
		return "TAG_STRING"
	case TagList:
		return "TAG_LIST"
	case TagCompound:
		return "TAG_COMPOUND"
	case TagIntArray:
		return "TAG_INT_ARRAY"
	case TagLongArray:
		return "TAG_LONG_ARRAY"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(t))
	}
}

// valid reports whether t is one of the thirteen known discriminants.
func (t TagType) valid() bool {
	return t <= TagLongArray
}
