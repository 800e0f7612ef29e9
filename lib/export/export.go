// Copyright 2026 The NBTKit Authors
// SPDX-License-Identifier: Apache-2.0

// Package export projects decoded documents into interchange
// encodings: JSON, YAML, and CBOR. Projections are one-way and lossy.
// Plain numbers, strings, arrays, and objects survive; the integer
// width distinctions and list element types of the source format do
// not, so an export cannot be turned back into document bytes. Exports
// are for inspection and downstream tooling.
//
// All three encodings are deterministic: compound keys are emitted in
// sorted order, and CBOR uses Core Deterministic Encoding (RFC 8949
// §4.2), so the same document always produces identical bytes. The
// exported value is the root's payload; the root name, when present,
// has no slot in any of the three encodings.
package export

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"

	"github.com/nbtkit/nbtkit/lib/nbt"
)

// encMode is the CBOR encoder configured with Core Deterministic
// Encoding: sorted map keys, smallest integer encoding, no
// indefinite-length items.
var encMode cbor.EncMode

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("export: CBOR encoder initialization failed: " + err.Error())
	}
}

// JSON renders the document root's payload as JSON. An indent of 0
// produces compact output; a positive indent pretty-prints with that
// many spaces per level. Non-finite floating point values (NaN,
// infinities) have no JSON representation and fail the export.
func JSON(root *nbt.Tag, indent int) ([]byte, error) {
	value, err := plain(root)
	if err != nil {
		return nil, err
	}
	if indent > 0 {
		return json.MarshalIndent(value, "", strings.Repeat(" ", indent))
	}
	return json.Marshal(value)
}

// CBOR renders the document root's payload as deterministic CBOR.
func CBOR(root *nbt.Tag) ([]byte, error) {
	value, err := plain(root)
	if err != nil {
		return nil, err
	}
	return encMode.Marshal(value)
}

// YAML renders the document root's payload as YAML. The node tree is
// built explicitly so that mapping keys come out in sorted order.
func YAML(root *nbt.Tag) ([]byte, error) {
	node, err := yamlNode(root)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(node)
}

// plain projects a tag to plain Go values: scalars keep their native
// widths, arrays and lists become slices, compounds become string
// maps. encoding/json and the deterministic CBOR mode both sort map
// keys on marshal.
func plain(tag *nbt.Tag) (any, error) {
	switch tag.Type() {
	case nbt.TagByte:
		return tag.AsByte()
	case nbt.TagShort:
		return tag.AsShort()
	case nbt.TagInt:
		return tag.AsInt()
	case nbt.TagLong:
		return tag.AsLong()
	case nbt.TagFloat:
		return tag.AsFloat()
	case nbt.TagDouble:
		return tag.AsDouble()
	case nbt.TagString:
		return tag.AsString()
	case nbt.TagByteArray:
		return tag.AsByteArray()
	case nbt.TagIntArray:
		return tag.AsIntArray()
	case nbt.TagLongArray:
		return tag.AsLongArray()

	case nbt.TagList:
		_, elements, err := tag.AsList()
		if err != nil {
			return nil, err
		}
		values := make([]any, len(elements))
		for i, element := range elements {
			value, err := plain(element)
			if err != nil {
				return nil, err
			}
			values[i] = value
		}
		return values, nil

	case nbt.TagCompound:
		entries, err := tag.AsCompound()
		if err != nil {
			return nil, err
		}
		object := make(map[string]any, len(entries))
		for _, entry := range entries {
			value, err := plain(entry.Value)
			if err != nil {
				return nil, err
			}
			object[entry.Name] = value
		}
		return object, nil

	default:
		return nil, fmt.Errorf("export: no projection for %s", tag)
	}
}

// yamlNode builds the explicit YAML node for a tag. Scalars carry
// resolved tags so that, for example, a string spelled "true" stays a
// string.
func yamlNode(tag *nbt.Tag) (*yaml.Node, error) {
	switch tag.Type() {
	case nbt.TagByte:
		value, err := tag.AsByte()
		if err != nil {
			return nil, err
		}
		return intScalar(int64(value)), nil
	case nbt.TagShort:
		value, err := tag.AsShort()
		if err != nil {
			return nil, err
		}
		return intScalar(int64(value)), nil
	case nbt.TagInt:
		value, err := tag.AsInt()
		if err != nil {
			return nil, err
		}
		return intScalar(int64(value)), nil
	case nbt.TagLong:
		value, err := tag.AsLong()
		if err != nil {
			return nil, err
		}
		return intScalar(value), nil
	case nbt.TagFloat:
		value, err := tag.AsFloat()
		if err != nil {
			return nil, err
		}
		return floatScalar(float64(value), 32), nil
	case nbt.TagDouble:
		value, err := tag.AsDouble()
		if err != nil {
			return nil, err
		}
		return floatScalar(value, 64), nil
	case nbt.TagString:
		value, err := tag.AsString()
		if err != nil {
			return nil, err
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}, nil

	case nbt.TagByteArray:
		values, err := tag.AsByteArray()
		if err != nil {
			return nil, err
		}
		sequence := emptySequence(len(values))
		for _, value := range values {
			sequence.Content = append(sequence.Content, intScalar(int64(value)))
		}
		return sequence, nil
	case nbt.TagIntArray:
		values, err := tag.AsIntArray()
		if err != nil {
			return nil, err
		}
		sequence := emptySequence(len(values))
		for _, value := range values {
			sequence.Content = append(sequence.Content, intScalar(int64(value)))
		}
		return sequence, nil
	case nbt.TagLongArray:
		values, err := tag.AsLongArray()
		if err != nil {
			return nil, err
		}
		sequence := emptySequence(len(values))
		for _, value := range values {
			sequence.Content = append(sequence.Content, intScalar(value))
		}
		return sequence, nil

	case nbt.TagList:
		_, elements, err := tag.AsList()
		if err != nil {
			return nil, err
		}
		sequence := emptySequence(len(elements))
		for _, element := range elements {
			node, err := yamlNode(element)
			if err != nil {
				return nil, err
			}
			sequence.Content = append(sequence.Content, node)
		}
		return sequence, nil

	case nbt.TagCompound:
		entries, err := tag.AsCompound()
		if err != nil {
			return nil, err
		}
		sorted := make([]nbt.CompoundEntry, len(entries))
		copy(sorted, entries)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

		mapping := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, entry := range sorted {
			node, err := yamlNode(entry.Value)
			if err != nil {
				return nil, err
			}
			key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: entry.Name}
			mapping.Content = append(mapping.Content, key, node)
		}
		return mapping, nil

	default:
		return nil, fmt.Errorf("export: no projection for %s", tag)
	}
}

func intScalar(value int64) *yaml.Node {
	return &yaml.Node{
		Kind:  yaml.ScalarNode,
		Tag:   "!!int",
		Value: strconv.FormatInt(value, 10),
	}
}

// floatScalar renders a float so the YAML resolver reads it back as a
// float: non-finite values use the YAML spellings and whole numbers
// keep a trailing ".0".
func floatScalar(value float64, bits int) *yaml.Node {
	var rendered string
	switch {
	case math.IsNaN(value):
		rendered = ".nan"
	case math.IsInf(value, 1):
		rendered = ".inf"
	case math.IsInf(value, -1):
		rendered = "-.inf"
	default:
		rendered = strconv.FormatFloat(value, 'g', -1, bits)
		if !strings.ContainsAny(rendered, ".eE") {
			rendered += ".0"
		}
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: rendered}
}

func emptySequence(capacity int) *yaml.Node {
	return &yaml.Node{
		Kind:    yaml.SequenceNode,
		Tag:     "!!seq",
		Content: make([]*yaml.Node, 0, capacity),
	}
}
