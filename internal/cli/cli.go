// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - CLI parsing and command routing for comet.
package cli

import (
	"fmt"
	"os"
	"strings"
)

// Version information (can be overridden at build time)
var (
	Version   = "1.0.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota
	CmdRun
	CmdRepl
	CmdVersion
	CmdHelp
)

const usageText = `comet - interactive command shell for the constelia.ai API

Usage:
  comet                 Start the interactive shell (default)
  comet run "<line>"    Run one command line and print the response
  comet repl            Line-mode REPL with tab completion
  comet version         Print version information
  comet help            Show this help

Examples:
  comet run "getMember --scripts true"
  comet run "getScript --id 150 --beautify true"

Environment:
  COMET_API_KEY    Member key (overrides the key file)
  COMET_KEY_PATH   Path to the key file
  COMET_BASE_URL   API endpoint override
  COMET_RENDERER   Response renderer: tree or flat
  NO_COLOR         Disable colored output
`

// Parse splits the command line into the command and its remaining
// arguments.
func Parse(args []string) (Command, []string) {
	if len(args) == 0 {
		return CmdTUI, nil
	}

	switch args[0] {
	case "run":
		return CmdRun, trailing(args)
	case "repl":
		return CmdRepl, trailing(args)
	case "version", "--version", "-v":
		return CmdVersion, nil
	case "help", "--help", "-h":
		return CmdHelp, nil
	default:
		// An unrecognized first argument is treated as a one-shot line.
		return CmdRun, args
	}
}

// trailing returns everything after the command word, or nil when the
// command stands alone.
func trailing(args []string) []string {
	if len(args) <= 1 {
		return nil
	}
	return args[1:]
}

// Execute runs the parsed command and returns the process exit code.
// The TUI command is handled by the caller; this covers the plain CLI
// surface.
func Execute(cmd Command, rest []string) int {
	switch cmd {
	case CmdVersion:
		fmt.Printf("comet %s (commit %s, built %s)\n", Version, GitCommit, BuildDate)
		return ExitSuccess

	case CmdHelp:
		fmt.Print(usageText)
		return ExitSuccess

	case CmdRun:
		line := strings.TrimSpace(strings.Join(rest, " "))
		if line == "" {
			fmt.Fprintln(os.Stderr, "Usage: comet run \"<command line>\"")
			return ExitUsageError
		}
		return RunOnce(line)

	case CmdRepl:
		return RunRepl()
	}

	return ExitSuccess
}
