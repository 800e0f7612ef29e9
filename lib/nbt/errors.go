// Copyright 2026 The NBTKit Authors
// SPDX-License-Identifier: Apache-2.0

package nbt

import "fmt"

// ErrorKind classifies decode failures. Every failure is fatal for the
// decode in progress: there is no retry and no partial tree, and the
// caller may start over only by reopening the byte source.
type ErrorKind int

const (
	// ErrTruncated means the stream ended before a fixed-width read
	// or a declared length could be satisfied.
	ErrTruncated ErrorKind = iota + 1

	// ErrUnknownTagType means a type id byte fell outside the closed
	// 0-12 enumeration.
	ErrUnknownTagType

	// ErrInvalidRoot means the document did not begin with a compound
	// tag. Detected before any recursive decode starts, after exactly
	// one type-id byte has been consumed.
	ErrInvalidRoot

	// ErrInvalidTag means the dispatcher was asked to materialize a
	// tag that can never be a value: TagEnd, or an id with no
	// decodable variant.
	ErrInvalidTag

	// ErrUnsupportedListLength means a list declared a non-positive
	// length. The open-ended list encoding that uses this sentinel is
	// deliberately unimplemented, so such input is rejected rather
	// than treated as an empty list.
	ErrUnsupportedListLength
)

// String returns a short human-readable name for the error kind.
func (k ErrorKind) String() string {
	switch k {
	case ErrTruncated:
		return "truncated input"
	case ErrUnknownTagType:
		return "unknown tag type"
	case ErrInvalidRoot:
		return "invalid root"
	case ErrInvalidTag:
		return "invalid tag construction"
	case ErrUnsupportedListLength:
		return "unsupported list length"
	default:
		return fmt.Sprintf("unknown kind(%d)", int(k))
	}
}

// Error is the failure type returned by every decode entry point. Kind
// identifies the failure class, Offset is the byte position at which
// the condition was detected (the start of the offending read), and
// Detail names the construct being read together with the offending
// raw id or length where one applies. Err carries the underlying I/O
// error for truncation failures, so errors.Is with io.ErrUnexpectedEOF
// works through the wrapper.
type Error struct {
	Kind   ErrorKind
	Offset int64
	Detail string
	Err    error
}

func (e *Error) Error() string {
	message := fmt.Sprintf("nbt: %s at offset %d", e.Kind, e.Offset)
	if e.Detail != "" {
		message += ": " + e.Detail
	}
	if e.Err != nil {
		message += ": " + e.Err.Error()
	}
	return message
}

func (e *Error) Unwrap() error {
	return e.Err
}
