// Copyright 2026 The NBTKit Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/nbtkit/nbtkit/lib/nbt"
)

// arrayPreview is how many leading array elements dump shows before
// truncating with an ellipsis.
const arrayPreview = 8

// palette holds the dump styles. Built from a lipgloss renderer so
// the color profile follows the --color flag instead of the process
// environment.
type palette struct {
	typeLabel lipgloss.Style
	name      lipgloss.Style
	value     lipgloss.Style
	summary   lipgloss.Style
}

func newPalette(renderer *lipgloss.Renderer) palette {
	return palette{
		typeLabel: renderer.NewStyle().Foreground(lipgloss.Color("6")),
		name:      renderer.NewStyle().Foreground(lipgloss.Color("3")),
		value:     renderer.NewStyle(),
		summary:   renderer.NewStyle().Foreground(lipgloss.Color("244")),
	}
}

// newRenderer builds the lipgloss renderer for the given color mode:
// "always" forces ANSI 256 colors, "never" strips all styling, and
// "auto" detects the terminal and honors NO_COLOR.
func newRenderer(w io.Writer, colorMode string) (*lipgloss.Renderer, error) {
	switch colorMode {
	case "always":
		return lipgloss.NewRenderer(w, termenv.WithProfile(termenv.ANSI256)), nil
	case "never":
		return lipgloss.NewRenderer(w, termenv.WithProfile(termenv.Ascii)), nil
	case "auto":
		if termenv.EnvNoColor() {
			return lipgloss.NewRenderer(w, termenv.WithProfile(termenv.Ascii)), nil
		}
		return lipgloss.NewRenderer(w), nil
	default:
		return nil, fmt.Errorf("invalid color mode %q (want auto, always, or never)", colorMode)
	}
}

// renderTree writes the document tree to w in display order, which is
// wire order. Containers deeper than maxDepth levels collapse to a
// one-line summary; maxDepth 0 means unlimited.
func renderTree(w io.Writer, root *nbt.Tag, styles palette, maxDepth int) error {
	return renderTag(w, root, styles, 0, maxDepth)
}

func renderTag(w io.Writer, tag *nbt.Tag, styles palette, depth, maxDepth int) error {
	indent := strings.Repeat("\t", depth)
	header := styles.typeLabel.Render(tag.Type().String())
	if name, named := tag.Name(); named {
		header += styles.name.Render(fmt.Sprintf("('%s')", name))
	}

	switch tag.Type() {
	case nbt.TagCompound:
		entries, err := tag.AsCompound()
		if err != nil {
			return err
		}
		header += ": " + styles.summary.Render(countNoun(len(entries), "entry", "entries"))
		if collapsed(depth, maxDepth) {
			_, err := fmt.Fprintf(w, "%s%s { ... }\n", indent, header)
			return err
		}
		if _, err := fmt.Fprintf(w, "%s%s\n%s{\n", indent, header, indent); err != nil {
			return err
		}
		for _, entry := range entries {
			if err := renderTag(w, entry.Value, styles, depth+1, maxDepth); err != nil {
				return err
			}
		}
		_, err = fmt.Fprintf(w, "%s}\n", indent)
		return err

	case nbt.TagList:
		elementType, elements, err := tag.AsList()
		if err != nil {
			return err
		}
		header += ": " + styles.summary.Render(fmt.Sprintf(
			"%s of type %s", countNoun(len(elements), "entry", "entries"), elementType))
		if collapsed(depth, maxDepth) {
			_, err := fmt.Fprintf(w, "%s%s { ... }\n", indent, header)
			return err
		}
		if _, err := fmt.Fprintf(w, "%s%s\n%s{\n", indent, header, indent); err != nil {
			return err
		}
		for _, element := range elements {
			if err := renderTag(w, element, styles, depth+1, maxDepth); err != nil {
				return err
			}
		}
		_, err = fmt.Fprintf(w, "%s}\n", indent)
		return err

	default:
		rendered, err := scalarValue(tag, styles)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s%s: %s\n", indent, header, rendered)
		return err
	}
}

// scalarValue renders the payload of a non-container tag.
func scalarValue(tag *nbt.Tag, styles palette) (string, error) {
	switch tag.Type() {
	case nbt.TagByte:
		value, err := tag.AsByte()
		if err != nil {
			return "", err
		}
		return styles.value.Render(fmt.Sprintf("%#04x", uint8(value))), nil

	case nbt.TagShort:
		value, err := tag.AsShort()
		if err != nil {
			return "", err
		}
		return styles.value.Render(fmt.Sprintf("%d", value)), nil

	case nbt.TagInt:
		value, err := tag.AsInt()
		if err != nil {
			return "", err
		}
		return styles.value.Render(fmt.Sprintf("%d", value)), nil

	case nbt.TagLong:
		value, err := tag.AsLong()
		if err != nil {
			return "", err
		}
		return styles.value.Render(fmt.Sprintf("%d", value)), nil

	case nbt.TagFloat:
		value, err := tag.AsFloat()
		if err != nil {
			return "", err
		}
		return styles.value.Render(fmt.Sprintf("%g", value)), nil

	case nbt.TagDouble:
		value, err := tag.AsDouble()
		if err != nil {
			return "", err
		}
		return styles.value.Render(fmt.Sprintf("%g", value)), nil

	case nbt.TagString:
		value, err := tag.AsString()
		if err != nil {
			return "", err
		}
		return styles.value.Render(fmt.Sprintf("'%s'", value)), nil

	case nbt.TagByteArray:
		values, err := tag.AsByteArray()
		if err != nil {
			return "", err
		}
		preview := make([]string, 0, min(len(values), arrayPreview))
		for _, value := range values[:min(len(values), arrayPreview)] {
			preview = append(preview, fmt.Sprintf("%#04x", uint8(value)))
		}
		return arraySummary(len(values), "byte", "bytes", preview, styles), nil

	case nbt.TagIntArray:
		values, err := tag.AsIntArray()
		if err != nil {
			return "", err
		}
		preview := make([]string, 0, min(len(values), arrayPreview))
		for _, value := range values[:min(len(values), arrayPreview)] {
			preview = append(preview, fmt.Sprintf("%d", value))
		}
		return arraySummary(len(values), "int", "ints", preview, styles), nil

	case nbt.TagLongArray:
		values, err := tag.AsLongArray()
		if err != nil {
			return "", err
		}
		preview := make([]string, 0, min(len(values), arrayPreview))
		for _, value := range values[:min(len(values), arrayPreview)] {
			preview = append(preview, fmt.Sprintf("%d", value))
		}
		return arraySummary(len(values), "long", "longs", preview, styles), nil

	default:
		return "", fmt.Errorf("no rendering for %s", tag)
	}
}

func arraySummary(total int, singular, plural string, preview []string, styles palette) string {
	elements := strings.Join(preview, " ")
	if total > len(preview) {
		elements += " ..."
	}
	return styles.summary.Render(countNoun(total, singular, plural)) +
		" " + styles.value.Render("["+elements+"]")
}

func countNoun(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("1 %s", singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}

func collapsed(depth, maxDepth int) bool {
	return maxDepth > 0 && depth >= maxDepth
}
