// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"unicode"

	"github.com/jeranaias/comet-tui/internal/commands"
)

// =============================================================================
// COERCION ERRORS
// =============================================================================

// MissingParamError reports a required parameter that was not supplied.
type MissingParamError struct {
	Command string
	Param   string
}

func (e *MissingParamError) Error() string {
	return fmt.Sprintf("missing required parameter --%s for command %s", e.Param, e.Command)
}

// TypeError reports a value that could not be coerced to its declared type.
type TypeError struct {
	Param string
	Want  string
	Raw   string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("parameter --%s expects %s, got %q", e.Param, e.Want, e.Raw)
}

// ListError reports a value that is not a valid list literal.
type ListError struct {
	Param string
	Raw   string
}

func (e *ListError) Error() string {
	return fmt.Sprintf("parameter --%s expects a list (e.g., [1,2,3]), got %q", e.Param, e.Raw)
}

// =============================================================================
// REQUEST BUILDING
// =============================================================================

// Request holds the coerced wire form of one command invocation.
// Query carries the URL parameters; Form carries the parameters that
// travel in the request body. Neither includes cmd or key, which the
// client adds at dispatch time.
type Request struct {
	Command string
	Query   url.Values
	Form    url.Values
}

// BuildRequest coerces raw string arguments against the descriptor's
// declared parameter types and routes each value to the query string or
// the form body. It performs no network I/O.
//
// The universal beautify flag is only forwarded when it coerces to true,
// matching the upstream API's expectations.
func BuildRequest(desc *commands.Descriptor, args map[string]string) (*Request, error) {
	req := &Request{
		Command: desc.Name,
		Query:   url.Values{},
		Form:    url.Values{},
	}

	for _, p := range desc.Params {
		raw, ok := args[p.Name]
		if !ok {
			if p.Required {
				return nil, &MissingParamError{Command: desc.Name, Param: p.Name}
			}
			continue
		}

		dest := req.Query
		if p.Post {
			dest = req.Form
		}

		switch p.Type {
		case commands.TypeInt:
			n, err := strconv.Atoi(raw)
			if err != nil {
				return nil, &TypeError{Param: p.Name, Want: "an integer", Raw: raw}
			}
			dest.Set(p.Name, strconv.Itoa(n))

		case commands.TypeBool:
			v := coerceBool(raw)
			if p.Name == "beautify" && !v {
				continue
			}
			dest.Set(p.Name, strconv.FormatBool(v))

		case commands.TypeList:
			elems, err := parseListLiteral(raw)
			if err != nil {
				return nil, &ListError{Param: p.Name, Raw: raw}
			}
			for _, e := range elems {
				dest.Add(p.Name, e)
			}

		default:
			dest.Set(p.Name, raw)
		}
	}

	return req, nil
}

// coerceBool maps a raw value to a boolean the way the shell documents
// it: "true", "1" and "yes" (any case) are true, everything else false.
func coerceBool(raw string) bool {
	switch strings.ToLower(raw) {
	case "true", "1", "yes":
		return true
	}
	return false
}

// =============================================================================
// LIST LITERAL PARSER
// =============================================================================

// parseListLiteral parses a bracketed list literal such as [1,2,3] or
// ["a", 'b', true, [4,5]] into the string form of each top-level
// element. Only integers, quoted strings, booleans, and nested lists
// are accepted; anything else is a parse error. This is a strict
// literal grammar, not an expression language.
func parseListLiteral(raw string) ([]string, error) {
	p := &listParser{input: []rune(strings.TrimSpace(raw))}
	elems, err := p.parseList()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos < len(p.input) {
		return nil, fmt.Errorf("trailing data at offset %d", p.pos)
	}
	return elems, nil
}

type listParser struct {
	input []rune
	pos   int
}

func (p *listParser) skipSpace() {
	for p.pos < len(p.input) && unicode.IsSpace(p.input[p.pos]) {
		p.pos++
	}
}

func (p *listParser) peek() (rune, bool) {
	if p.pos >= len(p.input) {
		return 0, false
	}
	return p.input[p.pos], true
}

// parseList consumes "[ elem (, elem)* ]" and returns the string form
// of each element.
func (p *listParser) parseList() ([]string, error) {
	p.skipSpace()
	if r, ok := p.peek(); !ok || r != '[' {
		return nil, fmt.Errorf("expected '[' at offset %d", p.pos)
	}
	p.pos++

	var elems []string
	p.skipSpace()
	if r, ok := p.peek(); ok && r == ']' {
		p.pos++
		return elems, nil
	}

	for {
		elem, err := p.parseElement()
		if err != nil {
			return nil, err
		}
		elems = append(elems, elem)

		p.skipSpace()
		r, ok := p.peek()
		if !ok {
			return nil, fmt.Errorf("unterminated list")
		}
		switch r {
		case ',':
			p.pos++
		case ']':
			p.pos++
			return elems, nil
		default:
			return nil, fmt.Errorf("expected ',' or ']' at offset %d", p.pos)
		}
	}
}

// parseElement consumes one element: an integer, a quoted string, a
// boolean, or a nested list. Nested lists are re-encoded in bracket
// form so the element stays a single wire value.
func (p *listParser) parseElement() (string, error) {
	p.skipSpace()
	r, ok := p.peek()
	if !ok {
		return "", fmt.Errorf("unexpected end of input")
	}

	switch {
	case r == '[':
		inner, err := p.parseList()
		if err != nil {
			return "", err
		}
		return "[" + strings.Join(inner, ",") + "]", nil

	case r == '"' || r == '\'':
		return p.parseQuoted(r)

	case r == '-' || unicode.IsDigit(r):
		return p.parseInt()

	default:
		return p.parseBool()
	}
}

func (p *listParser) parseQuoted(quote rune) (string, error) {
	p.pos++ // opening quote
	var b strings.Builder
	for p.pos < len(p.input) {
		r := p.input[p.pos]
		switch r {
		case '\\':
			p.pos++
			if p.pos >= len(p.input) {
				return "", fmt.Errorf("unterminated escape")
			}
			b.WriteRune(p.input[p.pos])
			p.pos++
		case quote:
			p.pos++
			return b.String(), nil
		default:
			b.WriteRune(r)
			p.pos++
		}
	}
	return "", fmt.Errorf("unterminated string")
}

func (p *listParser) parseInt() (string, error) {
	start := p.pos
	if r, ok := p.peek(); ok && r == '-' {
		p.pos++
	}
	digits := 0
	for p.pos < len(p.input) && unicode.IsDigit(p.input[p.pos]) {
		p.pos++
		digits++
	}
	if digits == 0 {
		return "", fmt.Errorf("expected digits at offset %d", start)
	}
	return string(p.input[start:p.pos]), nil
}

func (p *listParser) parseBool() (string, error) {
	start := p.pos
	for p.pos < len(p.input) && unicode.IsLetter(p.input[p.pos]) {
		p.pos++
	}
	word := string(p.input[start:p.pos])
	switch word {
	case "true", "false":
		return word, nil
	}
	return "", fmt.Errorf("invalid list element %q at offset %d", word, start)
}
