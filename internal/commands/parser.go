// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import "strings"

// =============================================================================
// TOKENIZER
// =============================================================================

// Tokenize splits a raw input line into whitespace-separated tokens. It is
// shared by the parser and the completion engine so both always agree on
// token boundaries. There is no quoting: a value containing spaces cannot be
// expressed in the line grammar.
func Tokenize(input string) []string {
	return strings.Fields(input)
}

// =============================================================================
// PARSE RESULT
// =============================================================================

// Arg is one supplied argument, in the order it appeared on the line.
type Arg struct {
	Name  string
	Value string
}

// ParseResult is the outcome of parsing one submitted line.
type ParseResult struct {
	// Command is the recognized command name, or "" when the line was empty
	// or the first token is not a known command. Callers must treat both
	// cases uniformly as "no command".
	Command string

	// Args are the supplied arguments, raw and untyped, in line order.
	Args []Arg
}

// Get returns the raw value supplied for name.
func (p ParseResult) Get(name string) (string, bool) {
	for _, a := range p.Args {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Has reports whether name was supplied on the line.
func (p ParseResult) Has(name string) bool {
	_, ok := p.Get(name)
	return ok
}

// =============================================================================
// PARSER
// =============================================================================

// Parser turns submitted lines into ParseResults against a registry.
type Parser struct {
	registry *Registry
}

// NewParser creates a parser backed by the given registry.
func NewParser(registry *Registry) *Parser {
	return &Parser{registry: registry}
}

// Parse parses a submitted line.
//
// The first token must be a known command name or the result carries no
// command and no arguments. Remaining tokens are walked with a cursor: a
// "--name" token followed by a non-"--" token records name=value and skips
// both; anything else advances by one without recording.
//
// A trailing bare flag ("--source" with nothing after it, or "--flag"
// followed by another "--" token) is therefore silently dropped. This
// differs from the legacy CLI flag parser, which records bare flags as
// boolean "true"; this parser is the canonical one. See the package tests
// for the documented divergence.
func (p *Parser) Parse(input string) ParseResult {
	tokens := Tokenize(input)
	if len(tokens) == 0 {
		return ParseResult{}
	}

	if p.registry.Lookup(tokens[0]) == nil {
		return ParseResult{}
	}

	result := ParseResult{Command: tokens[0]}
	for i := 1; i < len(tokens); {
		t := tokens[i]
		if strings.HasPrefix(t, "--") && i+1 < len(tokens) && !strings.HasPrefix(tokens[i+1], "--") {
			result.Args = append(result.Args, Arg{Name: t[2:], Value: tokens[i+1]})
			i += 2
			continue
		}
		i++
	}
	return result
}
