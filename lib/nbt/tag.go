// Copyright 2026 The NBTKit Authors
// SPDX-License-Identifier: Apache-2.0

package nbt

import "fmt"

// CompoundEntry is one named child of a compound tag, in wire order.
type CompoundEntry struct {
	Name  string
	Value *Tag
}

// Tag is one node of a decoded document: a type, an optional name, and
// a payload whose shape the type determines. Tags are constructed only
// by decoding and are immutable afterwards. A tag exclusively owns its
// payload, and container tags exclusively own their children; the tree
// has no sharing and no cycles.
//
// The name is present exactly when the tag was decoded at a keyed
// site: as a compound child or as the document root. List elements are
// unnamed by format rule. The empty string is a legal present name,
// distinct from no name at all, which is why Name reports presence
// separately.
type Tag struct {
	kind  TagType
	name  string
	named bool

	byteValue   int8
	shortValue  int16
	intValue    int32
	longValue   int64
	floatValue  float32
	doubleValue float64
	stringValue string

	byteArray []int8
	intArray  []int32
	longArray []int64

	elementType TagType
	elements    []*Tag

	entries []CompoundEntry
	index   map[string]int
}

// Type returns the tag's type, fixed at decode time. A nil tag
// reports TagEnd, which no decoded tag ever carries.
func (t *Tag) Type() TagType {
	if t == nil {
		return TagEnd
	}
	return t.kind
}

// Name returns the tag's name and whether one is present. Only
// compound children and the document root carry names; list elements
// and nil tags report ("", false).
func (t *Tag) Name() (string, bool) {
	if t == nil {
		return "", false
	}
	return t.name, t.named
}

// String returns a short description of the tag for diagnostics, such
// as TAG_INT("count") or TAG_BYTE for an unnamed list element.
func (t *Tag) String() string {
	if t == nil {
		return "<nil tag>"
	}
	if t.named {
		return fmt.Sprintf("%s(%q)", t.kind, t.name)
	}
	return t.kind.String()
}

// AsByte returns the TAG_BYTE payload.
func (t *Tag) AsByte() (int8, error) {
	if err := t.expect(TagByte); err != nil {
		return 0, err
	}
	return t.byteValue, nil
}

// AsShort returns the TAG_SHORT payload.
func (t *Tag) AsShort() (int16, error) {
	if err := t.expect(TagShort); err != nil {
		return 0, err
	}
	return t.shortValue, nil
}

// AsInt returns the TAG_INT payload.
func (t *Tag) AsInt() (int32, error) {
	if err := t.expect(TagInt); err != nil {
		return 0, err
	}
	return t.intValue, nil
}

// AsLong returns the TAG_LONG payload.
func (t *Tag) AsLong() (int64, error) {
	if err := t.expect(TagLong); err != nil {
		return 0, err
	}
	return t.longValue, nil
}

// AsFloat returns the TAG_FLOAT payload.
func (t *Tag) AsFloat() (float32, error) {
	if err := t.expect(TagFloat); err != nil {
		return 0, err
	}
	return t.floatValue, nil
}

// AsDouble returns the TAG_DOUBLE payload.
func (t *Tag) AsDouble() (float64, error) {
	if err := t.expect(TagDouble); err != nil {
		return 0, err
	}
	return t.doubleValue, nil
}

// AsString returns the TAG_STRING payload.
func (t *Tag) AsString() (string, error) {
	if err := t.expect(TagString); err != nil {
		return "", err
	}
	return t.stringValue, nil
}

// AsByteArray returns the TAG_BYTE_ARRAY payload. The slice is the
// tag's own storage; callers must not modify it.
func (t *Tag) AsByteArray() ([]int8, error) {
	if err := t.expect(TagByteArray); err != nil {
		return nil, err
	}
	return t.byteArray, nil
}

// AsIntArray returns the TAG_INT_ARRAY payload. The slice is the
// tag's own storage; callers must not modify it.
func (t *Tag) AsIntArray() ([]int32, error) {
	if err := t.expect(TagIntArray); err != nil {
		return nil, err
	}
	return t.intArray, nil
}

// AsLongArray returns the TAG_LONG_ARRAY payload. The slice is the
// tag's own storage; callers must not modify it.
func (t *Tag) AsLongArray() ([]int64, error) {
	if err := t.expect(TagLongArray); err != nil {
		return nil, err
	}
	return t.longArray, nil
}

// AsList returns the TAG_LIST payload: the element type declared in
// the list header and the elements in wire order. Elements are always
// unnamed. The slice is the tag's own storage; callers must not
// modify it.
func (t *Tag) AsList() (TagType, []*Tag, error) {
	if err := t.expect(TagList); err != nil {
		return 0, nil, err
	}
	return t.elementType, t.elements, nil
}

// AsCompound returns the TAG_COMPOUND payload as entries in wire
// order. When the input carried duplicate names (malformed but not
// rejected), the later value occupies the earlier entry's position.
// The slice is the tag's own storage; callers must not modify it.
func (t *Tag) AsCompound() ([]CompoundEntry, error) {
	if err := t.expect(TagCompound); err != nil {
		return nil, err
	}
	return t.entries, nil
}

// Get returns the named child of a compound tag, or nil when the name
// is absent or the tag is not a compound. The nil result is safe to
// chain: accessors on a nil tag return a descriptive error.
func (t *Tag) Get(name string) *Tag {
	if t == nil || t.kind != TagCompound {
		return nil
	}
	position, ok := t.index[name]
	if !ok {
		return nil
	}
	return t.entries[position].Value
}

// Len returns the number of children of a list or compound tag, the
// number of elements of an array tag, and 0 for every other type.
func (t *Tag) Len() int {
	if t == nil {
		return 0
	}
	switch t.kind {
	case TagList:
		return len(t.elements)
	case TagCompound:
		return len(t.entries)
	case TagByteArray:
		return len(t.byteArray)
	case TagIntArray:
		return len(t.intArray)
	case TagLongArray:
		return len(t.longArray)
	default:
		return 0
	}
}

// expect verifies the tag is non-nil and of the wanted type.
func (t *Tag) expect(want TagType) error {
	if t == nil {
		return fmt.Errorf("nbt: nil tag")
	}
	if t.kind != want {
		return fmt.Errorf("nbt: tag is %s, want %s", t.kind, want)
	}
	return nil
}

// insert adds a keyed child during compound decode. A duplicate name
// overwrites the existing entry's value in place, keeping the first
// occurrence's position.
func (t *Tag) insert(name string, child *Tag) {
	if t.index == nil {
		t.index = make(map[string]int)
	}
	if position, exists := t.index[name]; exists {
		t.entries[position].Value = child
		return
	}
	t.index[name] = len(t.entries)
	t.entries = append(t.entries, CompoundEntry{Name: name, Value: child})
}
