// Copyright 2026 The NBTKit Authors
// SPDX-License-Identifier: Apache-2.0

package fingerprint

import (
	"bytes"
	"encoding/binary"
	"strings"
	"testing"

	"github.com/nbtkit/nbtkit/lib/nbt"
)

func str(text string) []byte {
	return append(binary.BigEndian.AppendUint16(nil, uint16(len(text))), text...)
}

func keyed(tagType nbt.TagType, name string, parts ...[]byte) []byte {
	encoded := append([]byte{byte(tagType)}, str(name)...)
	for _, part := range parts {
		encoded = append(encoded, part...)
	}
	return encoded
}

func compound(name string, children ...[]byte) []byte {
	parts := append([][]byte{}, children...)
	parts = append(parts, []byte{0x00})
	return keyed(nbt.TagCompound, name, parts...)
}

func decode(t *testing.T, wire []byte) *nbt.Tag {
	t.Helper()
	root, err := nbt.ReadDocument(bytes.NewReader(wire))
	if err != nil {
		t.Fatalf("ReadDocument: %v", err)
	}
	return root
}

func TestDocumentDeterministic(t *testing.T) {
	t.Parallel()
	root := decode(t, compound("Level",
		keyed(nbt.TagInt, "count", binary.BigEndian.AppendUint32(nil, 9)),
		keyed(nbt.TagString, "name", str("alpha")),
	))
	if Document(root) != Document(root) {
		t.Error("same tree hashed twice gave different fingerprints")
	}
}

func TestDocumentIgnoresKeyOrder(t *testing.T) {
	t.Parallel()
	forward := decode(t, compound("Level",
		keyed(nbt.TagInt, "count", binary.BigEndian.AppendUint32(nil, 9)),
		keyed(nbt.TagString, "name", str("alpha")),
		compound("inner",
			keyed(nbt.TagByte, "a", []byte{1}),
			keyed(nbt.TagByte, "b", []byte{2}),
		),
	))
	reversed := decode(t, compound("Level",
		compound("inner",
			keyed(nbt.TagByte, "b", []byte{2}),
			keyed(nbt.TagByte, "a", []byte{1}),
		),
		keyed(nbt.TagString, "name", str("alpha")),
		keyed(nbt.TagInt, "count", binary.BigEndian.AppendUint32(nil, 9)),
	))

	if Document(forward) != Document(reversed) {
		t.Error("key order changed the fingerprint")
	}
}

func TestDocumentDistinguishes(t *testing.T) {
	t.Parallel()
	base := compound("Level", keyed(nbt.TagByte, "v", []byte{1}))

	tests := []struct {
		name string
		wire []byte
	}{
		{
			name: "changed value",
			wire: compound("Level", keyed(nbt.TagByte, "v", []byte{2})),
		},
		{
			name: "changed child name",
			wire: compound("Level", keyed(nbt.TagByte, "w", []byte{1})),
		},
		{
			name: "changed type same bits",
			wire: compound("Level", keyed(nbt.TagShort, "v", []byte{0x00, 0x01})),
		},
		{
			name: "changed root name",
			wire: compound("Other", keyed(nbt.TagByte, "v", []byte{1})),
		},
		{
			name: "extra child",
			wire: compound("Level",
				keyed(nbt.TagByte, "v", []byte{1}),
				keyed(nbt.TagByte, "x", []byte{0}),
			),
		},
	}

	baseFingerprint := Document(decode(t, base))
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			if Document(decode(t, test.wire)) == baseFingerprint {
				t.Error("variant collided with the base document")
			}
		})
	}
}

func TestDocumentListVersusArray(t *testing.T) {
	t.Parallel()
	// A BYTE list [1, 2] and a byte array [1, 2] hold the same
	// numbers in different shapes.
	list := decode(t, compound("",
		keyed(nbt.TagList, "a", []byte{byte(nbt.TagByte)}, binary.BigEndian.AppendUint32(nil, 2), []byte{1, 2}),
	))
	array := decode(t, compound("",
		keyed(nbt.TagByteArray, "a", binary.BigEndian.AppendUint32(nil, 2), []byte{1, 2}),
	))

	if Document(list) == Document(array) {
		t.Error("list and array of the same bytes collided")
	}
}

func TestDocumentNestingShape(t *testing.T) {
	t.Parallel()
	flat := decode(t, compound("",
		compound("a"),
		compound("b"),
	))
	nested := decode(t, compound("",
		compound("a",
			compound("b"),
		),
	))

	if Document(flat) == Document(nested) {
		t.Error("different nesting shapes collided")
	}
}

func TestDocumentNilPanics(t *testing.T) {
	t.Parallel()
	defer func() {
		if recovered := recover(); recovered == nil {
			t.Error("Document(nil) did not panic")
		}
	}()
	Document(nil)
}

func TestFormatParseRoundTrip(t *testing.T) {
	t.Parallel()
	fp := Document(decode(t, compound("Level", keyed(nbt.TagByte, "v", []byte{1}))))

	formatted := Format(fp)
	if len(formatted) != 64 {
		t.Fatalf("Format: got %d characters, want 64", len(formatted))
	}
	if formatted != strings.ToLower(formatted) {
		t.Errorf("Format: got mixed case %q", formatted)
	}

	parsed, err := Parse(formatted)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if parsed != fp {
		t.Errorf("round trip changed the fingerprint: %s != %s", Format(parsed), formatted)
	}
}

func TestParseRejectsBadInput(t *testing.T) {
	t.Parallel()
	if _, err := Parse("abc123"); err == nil {
		t.Error("Parse of a short string should fail")
	}
	if _, err := Parse(strings.Repeat("zz", 32)); err == nil {
		t.Error("Parse of non-hex input should fail")
	}
}
