// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// terminal.go - Terminal detection for the comet CLI surface.
//
// The one-shot and REPL entry points behave differently when output is
// piped: colors are dropped and interactive prompts are refused. The
// NO_COLOR convention (https://no-color.org/) is honored.
package cli

import (
	"os"
	"sync"

	"golang.org/x/term"
)

// CanPrompt reports whether stdin is a terminal, so interactive
// prompting (the REPL) is possible.
func CanPrompt() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

var (
	colorsEnabled     bool
	colorsEnabledOnce sync.Once
)

// ColorsEnabled reports whether output should be colored. NO_COLOR
// wins over FORCE_COLOR, which wins over stdout TTY detection. The
// answer is computed once; the environment does not change mid-run.
func ColorsEnabled() bool {
	colorsEnabledOnce.Do(func() {
		switch {
		case os.Getenv("NO_COLOR") != "":
			colorsEnabled = false
		case os.Getenv("FORCE_COLOR") != "":
			colorsEnabled = true
		default:
			colorsEnabled = term.IsTerminal(int(os.Stdout.Fd()))
		}
	})
	return colorsEnabled
}
