// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package format

import (
	"strings"
	"testing"
)

func mustDecode(t *testing.T, data string) *Value {
	t.Helper()
	v, err := DecodeJSON([]byte(data))
	if err != nil {
		t.Fatalf("DecodeJSON(%q): %v", data, err)
	}
	return v
}

// =============================================================================
// DECODING
// =============================================================================

func TestDecodeJSONPreservesKeyOrder(t *testing.T) {
	v := mustDecode(t, `{"zulu":1,"alpha":2,"mike":3}`)
	if v.Kind != KindObject {
		t.Fatalf("kind = %v, want KindObject", v.Kind)
	}
	want := []string{"zulu", "alpha", "mike"}
	for i, f := range v.Fields {
		if f.Key != want[i] {
			t.Errorf("field[%d] = %q, want %q", i, f.Key, want[i])
		}
	}
}

func TestDecodeJSONPreservesNumberLiterals(t *testing.T) {
	tests := []string{
		"0.30000000000000004",
		"123456789012345678901234567890",
		"1e100",
		"-0.5",
	}
	for _, lit := range tests {
		v := mustDecode(t, lit)
		if v.Kind != KindNumber || v.Num != lit {
			t.Errorf("DecodeJSON(%s) = kind %v, literal %q", lit, v.Kind, v.Num)
		}
	}
}

func TestDecodeJSONScalars(t *testing.T) {
	if v := mustDecode(t, "null"); v.Kind != KindNull {
		t.Errorf("null decoded as %v", v.Kind)
	}
	if v := mustDecode(t, "true"); v.Kind != KindBool || !v.Bool {
		t.Errorf("true decoded as %+v", v)
	}
	if v := mustDecode(t, `"hi"`); v.Kind != KindString || v.Str != "hi" {
		t.Errorf("string decoded as %+v", v)
	}
}

func TestDecodeJSONErrors(t *testing.T) {
	for _, bad := range []string{"", "{", `{"a":}`, "[1,2", "1 2"} {
		if _, err := DecodeJSON([]byte(bad)); err == nil {
			t.Errorf("DecodeJSON(%q) succeeded, want error", bad)
		}
	}
}

func TestValueJSONRoundTrip(t *testing.T) {
	src := `{"a":[1,true,null,"x"],"b":{"c":0.30000000000000004}}`
	v := mustDecode(t, src)
	if got := v.JSON(); got != src {
		t.Errorf("JSON() = %s, want %s", got, src)
	}
}

// =============================================================================
// CLASSIFICATION
// =============================================================================

func TestClassifyString(t *testing.T) {
	long := strings.Repeat("a", 150)
	tests := []struct {
		name      string
		input     string
		threshold int
		want      StringKind
	}{
		{"plain", "ok", 100, StringNormal},
		{"invalid any case", "Invalid token supplied", 100, StringErrorLike},
		{"error uppercase", "FATAL ERROR: something", 100, StringErrorLike},
		{"error embedded", "the connection errored out", 100, StringErrorLike},
		{"long", long, 100, StringTruncated},
		{"long but under threshold", long, 200, StringNormal},
		{"exactly threshold", strings.Repeat("a", 100), 100, StringNormal},
		{"error beats length", "error " + long, 100, StringErrorLike},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyString(tt.input, tt.threshold); got != tt.want {
				t.Errorf("ClassifyString(len %d, %d) = %v, want %v",
					len(tt.input), tt.threshold, got, tt.want)
			}
		})
	}
}

// =============================================================================
// FLAT RENDERER
// =============================================================================

func TestFlatInlineObject(t *testing.T) {
	r := NewFlatRenderer(PlainStyles())
	got := r.Render(mustDecode(t, `{"x":1,"y":true,"z":"ok"}`))
	want := `x: 1, y: true, z: "ok"`
	if got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}

func TestFlatBulletedStringList(t *testing.T) {
	r := NewFlatRenderer(PlainStyles())
	got := r.Render(mustDecode(t, `["a","b","c","d"]`))
	lines := strings.Split(got, "\n")
	if lines[0] != "Items (4 total):" {
		t.Errorf("header = %q, want Items (4 total):", lines[0])
	}
	want := []string{"* a", "* b", "* c", "* d"}
	if len(lines) != 5 {
		t.Fatalf("got %d lines, want 5:\n%s", len(lines), got)
	}
	for i, w := range want {
		if lines[i+1] != w {
			t.Errorf("line %d = %q, want %q", i+1, lines[i+1], w)
		}
	}
}

func TestFlatSmallArrayInline(t *testing.T) {
	r := NewFlatRenderer(PlainStyles())

	// Three strings: under the bullet threshold, inline instead.
	if got := r.Render(mustDecode(t, `["a","b","c"]`)); got != `["a", "b", "c"]` {
		t.Errorf("Render = %q", got)
	}
	if got := r.Render(mustDecode(t, `[1, 2, 3]`)); got != "[1, 2, 3]" {
		t.Errorf("Render = %q", got)
	}
}

func TestFlatEmptyComposites(t *testing.T) {
	r := NewFlatRenderer(PlainStyles())
	if got := r.Render(mustDecode(t, `{}`)); got != "{}" {
		t.Errorf("empty object = %q", got)
	}
	if got := r.Render(mustDecode(t, `[]`)); got != "[]" {
		t.Errorf("empty array = %q", got)
	}
}

func TestFlatWrapsLongStrings(t *testing.T) {
	r := NewFlatRenderer(PlainStyles())
	got := r.Render(&Value{Kind: KindString, Str: strings.Repeat("a", 150)})
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d wrapped lines, want 2", len(lines))
	}
	if len(lines[0]) != 80 || len(lines[1]) != 70 {
		t.Errorf("line lengths = %d, %d; want 80, 70", len(lines[0]), len(lines[1]))
	}
}

func TestFlatErrorObjectLayout(t *testing.T) {
	r := NewFlatRenderer(PlainStyles())
	got := r.Render(mustDecode(t, `{"error":"nope","code":5}`))
	want := `error: "nope", code: 5`
	if got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}

	// "message" triggers the same layout even with more than 5 fields
	// or composite siblings.
	got = r.Render(mustDecode(t, `{"message":"done","detail":[1,2,3,4,5,6]}`))
	want = `message: "done", detail: [1,2,3,4,5,6]`
	if got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}

func TestFlatNestedBlock(t *testing.T) {
	r := NewFlatRenderer(PlainStyles())
	got := r.Render(mustDecode(t, `{"a":1,"b":{"c":[1,2,3,4,5,6]}}`))
	want := strings.Join([]string{
		"{",
		"  a: 1",
		"  b: {",
		"    c: [",
		"      1",
		"      2",
		"      3",
		"      4",
		"      5",
		"      6",
		"    ]",
		"  }",
		"}",
	}, "\n")
	if got != want {
		t.Errorf("Render =\n%s\nwant:\n%s", got, want)
	}
}

// =============================================================================
// TREE RENDERER
// =============================================================================

func TestTreeTruncatesLongStrings(t *testing.T) {
	r := NewTreeRenderer(PlainStyles())
	long := strings.Repeat("a", 150)
	got := r.Render(&Value{Kind: KindString, Str: long})

	if !strings.Contains(got, strings.Repeat("a", 100)+"...") {
		t.Errorf("output missing the 100-char prefix with ellipsis:\n%s", got)
	}
	if strings.Contains(got, strings.Repeat("a", 101)) {
		t.Errorf("output kept more than 100 characters:\n%s", got)
	}
}

func TestTreeLayout(t *testing.T) {
	r := NewTreeRenderer(PlainStyles())
	got := r.Render(mustDecode(t, `{"a":1,"b":{"c":"x"},"d":[true,null]}`))
	want := strings.Join([]string{
		"root",
		"+- a: 1",
		"+- b",
		"|  `- c: \"x\"",
		"`- d",
		"   +- [0] true",
		"   `- [1] null",
	}, "\n")
	if got != want {
		t.Errorf("Render =\n%s\nwant:\n%s", got, want)
	}
}

func TestTreeEmptyCompositesAreLeaves(t *testing.T) {
	r := NewTreeRenderer(PlainStyles())
	got := r.Render(mustDecode(t, `{"a":{},"b":[]}`))
	want := strings.Join([]string{
		"root",
		"+- a: {}",
		"`- b: []",
	}, "\n")
	if got != want {
		t.Errorf("Render =\n%s\nwant:\n%s", got, want)
	}
}

func TestTreeErrorLikeString(t *testing.T) {
	r := NewTreeRenderer(PlainStyles())
	got := r.Render(mustDecode(t, `{"status":"Invalid token supplied"}`))
	if !strings.Contains(got, `status: "Invalid token supplied"`) {
		t.Errorf("Render =\n%s", got)
	}
}

// Both renderers implement Renderer; the active one is a config choice.
var (
	_ Renderer = (*FlatRenderer)(nil)
	_ Renderer = (*TreeRenderer)(nil)
)
