// Copyright 2026 The NBTKit Authors
// SPDX-License-Identifier: Apache-2.0

package nbt

import "testing"

func TestTagTypeString(t *testing.T) {
	t.Parallel()
	tests := []struct {
		tagType TagType
		want    string
	}{
		{TagEnd, "TAG_END"},
		{TagByte, "TAG_BYTE"},
		{TagShort, "TAG_SHORT"},
		{TagInt, "TAG_INT"},
		{TagLong, "TAG_LONG"},
		{TagFloat, "TAG_FLOAT"},
		{TagDouble, "TAG_DOUBLE"},
		{TagByteArray, "TAG_BYTE_ARRAY"},
		{TagString, "TAG_STRING"},
		{TagList, "TAG_LIST"},
		{TagCompound, "TAG_COMPOUND"},
		{TagIntArray, "TAG_INT_ARRAY"},
		{TagLongArray, "TAG_LONG_ARRAY"},
		{TagType(13), "unknown(13)"},
		{TagType(255), "unknown(255)"},
	}

	for _, test := range tests {
		if got := test.tagType.String(); got != test.want {
			t.Errorf("TagType(%d).String(): got %q, want %q", uint8(test.tagType), got, test.want)
		}
	}
}

func TestTagTypeValid(t *testing.T) {
	t.Parallel()
	for id := 0; id <= 12; id++ {
		if !TagType(id).valid() {
			t.Errorf("TagType(%d).valid(): got false, want true", id)
		}
	}
	for _, id := range []int{13, 14, 99, 255} {
		if TagType(id).valid() {
			t.Errorf("TagType(%d).valid(): got true, want false", id)
		}
	}
}
