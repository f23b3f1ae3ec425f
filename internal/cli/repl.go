// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// repl.go - Line-mode REPL for terminals where the TUI is unwanted.
package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/jeranaias/comet-tui/internal/api"
	"github.com/jeranaias/comet-tui/internal/commands"
	"github.com/jeranaias/comet-tui/internal/config"
)

// RunRepl runs the line-oriented REPL. Returns the process exit code.
func RunRepl() int {
	if !CanPrompt() {
		fmt.Fprintln(os.Stderr, "stdin is not a terminal; use 'comet run' for scripting")
		return ExitUsageError
	}

	cfg, reg, client, err := Setup()
	if err != nil {
		DisplayError(err)
		return GetExitCode(err)
	}

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	completer := commands.NewCompleter(reg)
	line.SetCompleter(func(input string) []string {
		candidates, _ := completer.Complete(input)
		// liner replaces the whole line, so re-attach the prefix the
		// candidate extends.
		trimmed := strings.TrimRight(input, " ")
		cut := strings.LastIndex(trimmed, " ")
		prefix := ""
		if cut >= 0 {
			prefix = input[:cut+1]
		}
		out := make([]string, len(candidates))
		for i, c := range candidates {
			out[i] = prefix + c
		}
		return out
	})

	fmt.Println("comet", Version, "- type 'help' for commands, 'exit' to leave")

	for {
		input, err := line.Prompt("comet> ")
		if err != nil {
			// Ctrl+C or Ctrl+D ends the session.
			fmt.Println()
			return ExitSuccess
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)

		if input == "exit" || input == "quit" {
			return ExitSuccess
		}
		if input == "clear" {
			fmt.Print("\033[2J\033[H")
			continue
		}

		runReplLine(cfg, reg, client, input)
	}
}

// runReplLine executes one REPL line, printing output and errors.
func runReplLine(cfg *config.Config, reg *commands.Registry, client *api.Client, input string) {
	tokens := commands.Tokenize(input)
	if handled, _ := runBuiltin(reg, tokens); handled {
		return
	}

	parser := commands.NewParser(reg)
	result := parser.Parse(input)
	if result.Command == "" {
		fmt.Printf("Unknown command: %s. Type 'help' for a list of commands.\n", tokens[0])
		return
	}

	args := make(map[string]string, len(result.Args))
	for _, a := range result.Args {
		args[a.Name] = a.Value
	}

	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	resp, err := client.Dispatch(ctx, reg.Lookup(result.Command), args)
	if err != nil {
		DisplayError(err)
		return
	}
	printResponse(cfg, resp)
}

