// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package format

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// =============================================================================
// VALUE MODEL
// =============================================================================

// Kind discriminates the shape of a decoded JSON value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// Field is one object member. Order of fields matches the document.
type Field struct {
	Key   string
	Value *Value
}

// Value is a decoded JSON value. Unlike map[string]any, it preserves
// object key order and keeps numbers as their source literal, so
// rendering never reorders fields or rounds precision.
type Value struct {
	Kind   Kind
	Bool   bool
	Num    string // numeric literal, exactly as received
	Str    string
	Items  []*Value // KindArray
	Fields []Field  // KindObject
}

// IsScalar reports whether the value is not an object or array.
func (v *Value) IsScalar() bool {
	return v.Kind != KindObject && v.Kind != KindArray
}

// Lookup returns the value of the named object field, or nil.
func (v *Value) Lookup(key string) *Value {
	if v.Kind != KindObject {
		return nil
	}
	for _, f := range v.Fields {
		if f.Key == key {
			return f.Value
		}
	}
	return nil
}

// JSON re-encodes the value as compact JSON, preserving field order and
// numeric literals. Used for raw display and for composite values inside
// single-line layouts.
func (v *Value) JSON() string {
	var b strings.Builder
	v.encode(&b)
	return b.String()
}

func (v *Value) encode(b *strings.Builder) {
	switch v.Kind {
	case KindNull:
		b.WriteString("null")
	case KindBool:
		b.WriteString(strconv.FormatBool(v.Bool))
	case KindNumber:
		b.WriteString(v.Num)
	case KindString:
		b.WriteString(strconv.Quote(v.Str))
	case KindArray:
		b.WriteByte('[')
		for i, item := range v.Items {
			if i > 0 {
				b.WriteByte(',')
			}
			item.encode(b)
		}
		b.WriteByte(']')
	case KindObject:
		b.WriteByte('{')
		for i, f := range v.Fields {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.Quote(f.Key))
			b.WriteByte(':')
			f.Value.encode(b)
		}
		b.WriteByte('}')
	}
}

// =============================================================================
// DECODING
// =============================================================================

// DecodeJSON parses data into a Value tree. Object key order follows the
// document and numbers stay textual (json.Number under the hood), so a
// value like 0.30000000000000004 survives a round trip untouched.
func DecodeJSON(data []byte) (*Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	v, err := decodeValue(dec)
	if err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if dec.More() {
		return nil, fmt.Errorf("decode response: trailing data after top-level value")
	}
	return v, nil
}

func decodeValue(dec *json.Decoder) (*Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		}
		return nil, fmt.Errorf("unexpected delimiter %q", t.String())
	case string:
		return &Value{Kind: KindString, Str: t}, nil
	case json.Number:
		return &Value{Kind: KindNumber, Num: t.String()}, nil
	case bool:
		return &Value{Kind: KindBool, Bool: t}, nil
	case nil:
		return &Value{Kind: KindNull}, nil
	}
	return nil, fmt.Errorf("unexpected token %v", tok)
}

func decodeObject(dec *json.Decoder) (*Value, error) {
	obj := &Value{Kind: KindObject}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("object key is %v, not a string", keyTok)
		}
		val, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		obj.Fields = append(obj.Fields, Field{Key: key, Value: val})
	}
	if _, err := dec.Token(); err != nil { // closing brace
		return nil, err
	}
	return obj, nil
}

func decodeArray(dec *json.Decoder) (*Value, error) {
	arr := &Value{Kind: KindArray}
	for dec.More() {
		item, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		arr.Items = append(arr.Items, item)
	}
	if _, err := dec.Token(); err != nil { // closing bracket
		return nil, err
	}
	return arr, nil
}
