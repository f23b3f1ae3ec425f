// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// args.go - Legacy flag parsing for the plain CLI surface.
package cli

import (
	"strings"
)

// ParseFlags parses "--name value" pairs from tokens into a map.
//
// Unlike the shell's canonical parser, a bare trailing flag ("--source"
// with no value, or followed by another "--" token) is recorded with
// the value "true". The interactive shell drops such flags instead;
// the divergence is covered by tests in this package.
//
// Deprecated: new code should parse through the commands package. The
// one-shot CLI and the REPL both do; this parser is retained only as
// the pinned contract for the implicit-true shorthand.
func ParseFlags(tokens []string) map[string]string {
	flags := make(map[string]string)

	for i := 0; i < len(tokens); i++ {
		t := tokens[i]
		if !strings.HasPrefix(t, "--") {
			continue
		}
		name := t[2:]
		if name == "" {
			continue
		}
		if i+1 < len(tokens) && !strings.HasPrefix(tokens[i+1], "--") {
			flags[name] = tokens[i+1]
			i++
			continue
		}
		flags[name] = "true"
	}

	return flags
}
