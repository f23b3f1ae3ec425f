// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package format

import (
	"strings"
	"unicode/utf8"
)

// =============================================================================
// STRING CLASSIFICATION
// =============================================================================

// StringKind classifies a scalar string for rendering.
type StringKind int

const (
	// StringNormal renders quoted in the plain string color.
	StringNormal StringKind = iota
	// StringErrorLike renders in the error color. Matched before length,
	// so an error message is never truncated into unrecognizability.
	StringErrorLike
	// StringTruncated is over the renderer's length threshold and gets
	// the renderer's own truncation treatment (ellipsis or wrapping).
	StringTruncated
)

// ClassifyString applies the classification rules in order: a
// case-insensitive substring match for "error" or "invalid" wins, then
// the length check against threshold (in characters, not bytes).
func ClassifyString(s string, threshold int) StringKind {
	lower := strings.ToLower(s)
	if strings.Contains(lower, "error") || strings.Contains(lower, "invalid") {
		return StringErrorLike
	}
	if utf8.RuneCountInString(s) > threshold {
		return StringTruncated
	}
	return StringNormal
}

// isErrorObject reports whether an object should use the dedicated
// error layout: any field named "error" or "message".
func isErrorObject(v *Value) bool {
	return v.Lookup("error") != nil || v.Lookup("message") != nil
}

// allScalar reports whether every element of items is a scalar.
func allScalar(items []*Value) bool {
	for _, item := range items {
		if !item.IsScalar() {
			return false
		}
	}
	return true
}

// allStrings reports whether every element of items is a string.
func allStrings(items []*Value) bool {
	for _, item := range items {
		if item.Kind != KindString {
			return false
		}
	}
	return true
}

// fieldValues collects the values of an object's fields.
func fieldValues(fields []Field) []*Value {
	vals := make([]*Value, len(fields))
	for i, f := range fields {
		vals[i] = f.Value
	}
	return vals
}
