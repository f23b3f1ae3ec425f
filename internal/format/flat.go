// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package format

import (
	"strconv"
	"strings"
)

// FlatWrapWidth is the flat renderer's string length threshold. Strings
// over it are hard-wrapped every FlatWrapWidth characters rather than
// truncated.
const FlatWrapWidth = 80

// indentUnit is two spaces per nesting level, shared by both renderers.
const indentUnit = "  "

// Renderer turns a decoded Value into a displayable text block.
type Renderer interface {
	Render(v *Value) string
}

// =============================================================================
// FLAT RENDERER
// =============================================================================

// FlatRenderer produces a plain block layout: inline lines for small
// scalar-only composites, bulleted lists for string arrays, brace-
// delimited indented blocks for everything else.
type FlatRenderer struct {
	styles Styles
}

// NewFlatRenderer creates a flat renderer drawing with st.
func NewFlatRenderer(st Styles) *FlatRenderer {
	return &FlatRenderer{styles: st}
}

// Render formats v as a text block.
func (r *FlatRenderer) Render(v *Value) string {
	return r.render(v, 0)
}

func (r *FlatRenderer) render(v *Value, indent int) string {
	switch v.Kind {
	case KindObject:
		return r.renderObject(v, indent)
	case KindArray:
		return r.renderArray(v, indent)
	default:
		return r.scalar(v)
	}
}

func (r *FlatRenderer) renderObject(v *Value, indent int) string {
	if len(v.Fields) == 0 {
		return "{}"
	}
	if isErrorObject(v) {
		return r.renderErrorObject(v, indent)
	}

	// Small scalar-only objects collapse to one comma-joined line.
	if len(v.Fields) <= 5 && allScalar(fieldValues(v.Fields)) {
		pairs := make([]string, 0, len(v.Fields))
		for _, f := range v.Fields {
			pairs = append(pairs, r.styles.Key.Render(f.Key)+": "+r.scalar(f.Value))
		}
		return strings.Repeat(indentUnit, indent) + strings.Join(pairs, ", ")
	}

	lines := []string{"{"}
	inner := strings.Repeat(indentUnit, indent+1)
	for _, f := range v.Fields {
		lines = append(lines, inner+r.styles.Key.Render(f.Key)+": "+r.render(f.Value, indent+1))
	}
	lines = append(lines, strings.Repeat(indentUnit, indent)+"}")
	return strings.Join(lines, "\n")
}

// renderErrorObject is the dedicated layout for responses carrying an
// "error" or "message" field: a single emphasized key: value line so
// failures stand out from data. Composite field values fall back to
// compact JSON.
func (r *FlatRenderer) renderErrorObject(v *Value, indent int) string {
	pairs := make([]string, 0, len(v.Fields))
	for _, f := range v.Fields {
		var rendered string
		if f.Value.IsScalar() {
			rendered = r.scalar(f.Value)
		} else {
			rendered = f.Value.JSON()
		}
		pairs = append(pairs, r.styles.Error.Render(f.Key)+": "+rendered)
	}
	return strings.Repeat(indentUnit, indent) + strings.Join(pairs, ", ")
}

func (r *FlatRenderer) renderArray(v *Value, indent int) string {
	if len(v.Items) == 0 {
		return "[]"
	}

	// String collections read best as a bulleted list with a count.
	if len(v.Items) > 3 && allStrings(v.Items) {
		lines := []string{r.styles.Header.Render("Items (" + strconv.Itoa(len(v.Items)) + " total):")}
		prefix := strings.Repeat(indentUnit, indent)
		for _, item := range v.Items {
			lines = append(lines, prefix+r.styles.Bullet.Render("*")+" "+r.styles.Str.Render(item.Str))
		}
		return strings.Join(lines, "\n")
	}

	// Small scalar-only arrays collapse to one bracketed line.
	if len(v.Items) <= 5 && allScalar(v.Items) {
		parts := make([]string, 0, len(v.Items))
		for _, item := range v.Items {
			parts = append(parts, r.scalar(item))
		}
		return "[" + strings.Join(parts, ", ") + "]"
	}

	lines := []string{"["}
	inner := strings.Repeat(indentUnit, indent+1)
	for _, item := range v.Items {
		lines = append(lines, inner+r.render(item, indent+1))
	}
	lines = append(lines, strings.Repeat(indentUnit, indent)+"]")
	return strings.Join(lines, "\n")
}

func (r *FlatRenderer) scalar(v *Value) string {
	switch v.Kind {
	case KindNull:
		return r.styles.Null.Render("null")
	case KindBool:
		return r.styles.Bool.Render(strconv.FormatBool(v.Bool))
	case KindNumber:
		return r.styles.Num.Render(v.Num)
	case KindString:
		switch ClassifyString(v.Str, FlatWrapWidth) {
		case StringErrorLike:
			return r.styles.Error.Render(strconv.Quote(v.Str))
		case StringTruncated:
			return r.styles.Str.Render(strings.Join(chunkRunes(v.Str, FlatWrapWidth), "\n"))
		default:
			return r.styles.Str.Render(strconv.Quote(v.Str))
		}
	}
	return v.JSON()
}

// chunkRunes splits s into pieces of at most size runes.
func chunkRunes(s string, size int) []string {
	runes := []rune(s)
	var chunks []string
	for start := 0; start < len(runes); start += size {
		end := start + size
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[start:end]))
	}
	return chunks
}
