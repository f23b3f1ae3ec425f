// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import "strings"

// =============================================================================
// COMPLETION CONTEXT
// =============================================================================

// Context classifies what kind of candidates the completion engine produced
// for the current input. The renderer uses it to label the suggestion list.
type Context int

const (
	// ContextRoot: empty input or a bare "help" token
	ContextRoot Context = iota

	// ContextHelpTarget: "help <prefix>"
	ContextHelpTarget

	// ContextHelpArgs: "help <command> <args...>"
	ContextHelpArgs

	// ContextCommand: a single token being typed as a command name
	ContextCommand

	// ContextArgument: second-or-later token of a recognized command line
	ContextArgument
)

// String returns a short label for the context.
func (c Context) String() string {
	switch c {
	case ContextRoot:
		return "commands"
	case ContextHelpTarget:
		return "help topics"
	case ContextHelpArgs:
		return "parameters"
	case ContextCommand:
		return "commands"
	case ContextArgument:
		return "arguments"
	default:
		return "suggestions"
	}
}

// =============================================================================
// COMPLETION ENGINE
// =============================================================================

// Completer computes candidate strings for the current input line.
type Completer struct {
	registry *Registry
}

// NewCompleter creates a completer backed by the given registry.
func NewCompleter(registry *Registry) *Completer {
	return &Completer{registry: registry}
}

// Complete returns the ordered candidate list and the context that produced
// it. Matching is exact prefix matching; there is no fuzzy matching and no
// case folding.
func (c *Completer) Complete(input string) ([]string, Context) {
	tokens := Tokenize(input)

	// Empty line, or a lone "help": everything is on the table.
	if len(tokens) == 0 || (len(tokens) == 1 && tokens[0] == "help") {
		return c.rootCandidates(), ContextRoot
	}

	if tokens[0] == "help" {
		switch {
		case len(tokens) == 2:
			return c.helpTargets(tokens[1]), ContextHelpTarget
		case len(tokens) >= 3:
			return c.helpArgs(tokens[1], tokens[2:]), ContextHelpArgs
		default:
			return nil, ContextHelpTarget
		}
	}

	if len(tokens) == 1 {
		return c.commandNames(tokens[0]), ContextCommand
	}

	return c.argumentFlags(tokens[0], tokens[1:]), ContextArgument
}

// rootCandidates lists "help", then every command, then every category.
// The three lists are concatenated as-is; duplicates are not removed.
func (c *Completer) rootCandidates() []string {
	names := c.registry.AllNames()
	cats := c.registry.Categories()
	out := make([]string, 0, 1+len(names)+len(cats))
	out = append(out, "help")
	out = append(out, names...)
	out = append(out, cats...)
	return out
}

// helpTargets lists categories then commands whose name starts with prefix.
func (c *Completer) helpTargets(prefix string) []string {
	var out []string
	for _, cat := range c.registry.Categories() {
		if strings.HasPrefix(cat, prefix) {
			out = append(out, cat)
		}
	}
	for _, name := range c.registry.AllNames() {
		if strings.HasPrefix(name, prefix) {
			out = append(out, name)
		}
	}
	return out
}

// helpArgs lists the parameter names of cmd, in descriptor order, excluding
// names that already appear verbatim among the trailing tokens. This is a
// plain membership test; "--" prefixes are not stripped here.
func (c *Completer) helpArgs(cmd string, rest []string) []string {
	d := c.registry.Lookup(cmd)
	if d == nil {
		return nil
	}
	seen := make(map[string]bool, len(rest))
	for _, t := range rest {
		seen[t] = true
	}
	var out []string
	for _, p := range d.Params {
		if !seen[p.Name] {
			out = append(out, p.Name)
		}
	}
	return out
}

// commandNames lists command names with the given prefix, in catalog order.
func (c *Completer) commandNames(prefix string) []string {
	var out []string
	for _, name := range c.registry.AllNames() {
		if strings.HasPrefix(name, prefix) {
			out = append(out, name)
		}
	}
	return out
}

// argumentFlags lists "--name" for every parameter of cmd not already
// supplied. A parameter counts as supplied when some trailing token starts
// with "--" and the remainder equals the parameter name; the partially
// typed flag itself therefore filters nothing unless it happens to match a
// full name.
func (c *Completer) argumentFlags(cmd string, rest []string) []string {
	d := c.registry.Lookup(cmd)
	if d == nil {
		return nil
	}
	supplied := make(map[string]bool, len(rest))
	for _, t := range rest {
		if strings.HasPrefix(t, "--") {
			supplied[t[2:]] = true
		}
	}
	var out []string
	for _, p := range d.Params {
		if !supplied[p.Name] {
			out = append(out, "--"+p.Name)
		}
	}
	return out
}
