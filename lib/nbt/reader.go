// Copyright 2026 The NBTKit Authors
// SPDX-License-Identifier: Apache-2.0

package nbt

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// ReadDocument decodes one complete document from r. A document is a
// single keyed tag whose type must be TAG_COMPOUND; anything else
// fails with ErrInvalidRoot after exactly one type-id byte has been
// consumed. On success the returned tag is the fully materialized
// root, the whole document has been consumed, and no further reads
// occur. On failure no tag is returned and any partially decoded
// state is discarded.
//
// The decoder reads strictly forward and never rewinds, so r needs no
// seeking. Trailing bytes after the document are left unread for the
// caller to inspect or ignore.
func ReadDocument(r io.Reader) (*Tag, error) {
	d := &decoder{r: r}

	rootType, err := d.readTagType("document root type")
	if err != nil {
		return nil, err
	}
	if rootType != TagCompound {
		return nil, &Error{
			Kind:   ErrInvalidRoot,
			Offset: 0,
			Detail: fmt.Sprintf("document root is %s, want %s", rootType, TagCompound),
		}
	}

	rootName, err := d.readString("document root name")
	if err != nil {
		return nil, err
	}
	return d.decodeTag(TagCompound, rootName, true)
}

// decoder tracks the read position over a forward-only byte cursor.
// The offset is the number of bytes consumed so far and gives every
// error an exact position in the stream.
type decoder struct {
	r      io.Reader
	offset int64
}

// readFull reads exactly len(buffer) bytes. A short read fails with
// ErrTruncated at the offset where the read began, wrapping the
// underlying I/O error.
func (d *decoder) readFull(buffer []byte, what string) error {
	start := d.offset
	n, err := io.ReadFull(d.r, buffer)
	d.offset += int64(n)
	if err != nil {
		return &Error{
			Kind:   ErrTruncated,
			Offset: start,
			Detail: fmt.Sprintf("reading %s (%d bytes)", what, len(buffer)),
			Err:    err,
		}
	}
	return nil
}

func (d *decoder) readUint8(what string) (uint8, error) {
	var scratch [1]byte
	if err := d.readFull(scratch[:], what); err != nil {
		return 0, err
	}
	return scratch[0], nil
}

func (d *decoder) readUint16(what string) (uint16, error) {
	var scratch [2]byte
	if err := d.readFull(scratch[:], what); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(scratch[:]), nil
}

func (d *decoder) readUint32(what string) (uint32, error) {
	var scratch [4]byte
	if err := d.readFull(scratch[:], what); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(scratch[:]), nil
}

func (d *decoder) readUint64(what string) (uint64, error) {
	var scratch [8]byte
	if err := d.readFull(scratch[:], what); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(scratch[:]), nil
}

// readInt32 reads a signed 32-bit length field. The bit pattern is
// preserved, so negative declared lengths come through as negative.
func (d *decoder) readInt32(what string) (int32, error) {
	value, err := d.readUint32(what)
	return int32(value), err
}

// readString reads a uint16 byte length followed by that many bytes
// of UTF-8 text. The format nominally uses modified UTF-8; the bytes
// are passed through verbatim, which matches standard UTF-8 for all
// common input.
func (d *decoder) readString(what string) (string, error) {
	length, err := d.readUint16(what + " length")
	if err != nil {
		return "", err
	}
	if length == 0 {
		return "", nil
	}
	buffer := make([]byte, length)
	if err := d.readFull(buffer, what); err != nil {
		return "", err
	}
	return string(buffer), nil
}

// readTagType reads one type-id byte and validates it against the
// closed enumeration. An id outside 0-12 fails with ErrUnknownTagType
// carrying the raw byte.
func (d *decoder) readTagType(what string) (TagType, error) {
	start := d.offset
	id, err := d.readUint8(what)
	if err != nil {
		return 0, err
	}
	tagType := TagType(id)
	if !tagType.valid() {
		return 0, &Error{
			Kind:   ErrUnknownTagType,
			Offset: start,
			Detail: fmt.Sprintf("reading %s: id 0x%02x is outside the known range 0-12", what, id),
		}
	}
	return tagType, nil
}

// decodeTag constructs the tag of the given type and decodes its
// payload from the cursor. The name is attached only at keyed decode
// sites (compound children and the document root); list elements pass
// named=false. This switch is the single dispatch point of the
// recursion: container cases call back into it for their children.
func (d *decoder) decodeTag(tagType TagType, name string, named bool) (*Tag, error) {
	tag := &Tag{kind: tagType, name: name, named: named}

	switch tagType {
	case TagByte:
		value, err := d.readUint8("TAG_BYTE payload")
		if err != nil {
			return nil, err
		}
		tag.byteValue = int8(value)

	case TagShort:
		value, err := d.readUint16("TAG_SHORT payload")
		if err != nil {
			return nil, err
		}
		tag.shortValue = int16(value)

	case TagInt:
		value, err := d.readUint32("TAG_INT payload")
		if err != nil {
			return nil, err
		}
		tag.intValue = int32(value)

	case TagLong:
		value, err := d.readUint64("TAG_LONG payload")
		if err != nil {
			return nil, err
		}
		tag.longValue = int64(value)

	case TagFloat:
		bits, err := d.readUint32("TAG_FLOAT payload")
		if err != nil {
			return nil, err
		}
		tag.floatValue = math.Float32frombits(bits)

	case TagDouble:
		bits, err := d.readUint64("TAG_DOUBLE payload")
		if err != nil {
			return nil, err
		}
		tag.doubleValue = math.Float64frombits(bits)

	case TagString:
		value, err := d.readString("TAG_STRING payload")
		if err != nil {
			return nil, err
		}
		tag.stringValue = value

	case TagByteArray:
		if err := d.decodeByteArray(tag); err != nil {
			return nil, err
		}

	case TagIntArray:
		if err := d.decodeIntArray(tag); err != nil {
			return nil, err
		}

	case TagLongArray:
		if err := d.decodeLongArray(tag); err != nil {
			return nil, err
		}

	case TagList:
		if err := d.decodeList(tag); err != nil {
			return nil, err
		}

	case TagCompound:
		if err := d.decodeCompound(tag); err != nil {
			return nil, err
		}

	case TagEnd:
		return nil, &Error{
			Kind:   ErrInvalidTag,
			Offset: d.offset,
			Detail: "TAG_END is a compound terminator, not a value",
		}

	default:
		// Unreachable through readTagType, which bounds ids to the
		// registry; kept so the dispatcher enforces its own contract.
		return nil, &Error{
			Kind:   ErrInvalidTag,
			Offset: d.offset,
			Detail: fmt.Sprintf("no decodable variant for id %d", uint8(tagType)),
		}
	}

	return tag, nil
}

// decodeByteArray reads an int32 length and then that many signed
// bytes. A zero or negative declared length yields an empty array with
// no element reads; the two cases are not distinguished.
func (d *decoder) decodeByteArray(tag *Tag) error {
	length, err := d.readInt32("TAG_BYTE_ARRAY length")
	if err != nil {
		return err
	}
	if length <= 0 {
		tag.byteArray = []int8{}
		return nil
	}

	raw := make([]byte, length)
	if err := d.readFull(raw, "TAG_BYTE_ARRAY payload"); err != nil {
		return err
	}
	values := make([]int8, length)
	for i, b := range raw {
		values[i] = int8(b)
	}
	tag.byteArray = values
	return nil
}

// decodeIntArray reads an int32 length and then that many big-endian
// int32 elements. Non-positive lengths yield an empty array.
func (d *decoder) decodeIntArray(tag *Tag) error {
	length, err := d.readInt32("TAG_INT_ARRAY length")
	if err != nil {
		return err
	}
	if length <= 0 {
		tag.intArray = []int32{}
		return nil
	}

	values := make([]int32, length)
	for i := range values {
		value, err := d.readUint32("TAG_INT_ARRAY element")
		if err != nil {
			return err
		}
		values[i] = int32(value)
	}
	tag.intArray = values
	return nil
}

// decodeLongArray reads an int32 length and then that many big-endian
// int64 elements. Non-positive lengths yield an empty array.
func (d *decoder) decodeLongArray(tag *Tag) error {
	length, err := d.readInt32("TAG_LONG_ARRAY length")
	if err != nil {
		return err
	}
	if length <= 0 {
		tag.longArray = []int64{}
		return nil
	}

	values := make([]int64, length)
	for i := range values {
		value, err := d.readUint64("TAG_LONG_ARRAY element")
		if err != nil {
			return err
		}
		values[i] = int64(value)
	}
	tag.longArray = values
	return nil
}

// decodeList reads the element type and an int32 length, then decodes
// that many unnamed children of the element type. A non-positive
// length is the wire sentinel for the open-ended list encoding, which
// is not implemented: it fails rather than producing an empty list.
// This is the documented asymmetry with the array decoders, where a
// non-positive length means empty.
func (d *decoder) decodeList(tag *Tag) error {
	elementType, err := d.readTagType("TAG_LIST element type")
	if err != nil {
		return err
	}

	lengthStart := d.offset
	length, err := d.readInt32("TAG_LIST length")
	if err != nil {
		return err
	}
	if length <= 0 {
		return &Error{
			Kind:   ErrUnsupportedListLength,
			Offset: lengthStart,
			Detail: fmt.Sprintf("declared length %d; the open-ended list encoding is not implemented", length),
		}
	}

	tag.elementType = elementType
	tag.elements = make([]*Tag, 0, length)
	for i := int32(0); i < length; i++ {
		element, err := d.decodeTag(elementType, "", false)
		if err != nil {
			return err
		}
		tag.elements = append(tag.elements, element)
	}
	return nil
}

// decodeCompound reads keyed children until the TAG_END terminator:
// each child is a type id, a name, and a payload decoded through the
// dispatcher. There is no count on the wire; termination is purely
// structural. Duplicate names are malformed input and resolve
// last-write-wins.
func (d *decoder) decodeCompound(tag *Tag) error {
	for {
		childType, err := d.readTagType("compound child type")
		if err != nil {
			return err
		}
		if childType == TagEnd {
			return nil
		}

		childName, err := d.readString("compound child name")
		if err != nil {
			return err
		}
		child, err := d.decodeTag(childType, childName, true)
		if err != nil {
			return err
		}
		tag.insert(childName, child)
	}
}
