// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// run.go - One-shot command execution for scripting and pipelines.
package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jeranaias/comet-tui/internal/api"
	"github.com/jeranaias/comet-tui/internal/commands"
	"github.com/jeranaias/comet-tui/internal/config"
	"github.com/jeranaias/comet-tui/internal/format"
)

// runTimeout bounds one one-shot API call.
const runTimeout = 60 * time.Second

// Setup resolves the shared configuration, loads the key, and builds
// the registry and client used by every CLI entry point. The config
// comes from the process-wide instance so repeated one-shot and REPL
// setups agree on what they loaded.
func Setup() (*config.Config, *commands.Registry, *api.Client, error) {
	cfg := config.Global()
	if err := config.LoadKey(cfg); err != nil {
		// A missing key only matters once a dispatch happens; builtins
		// like help still work.
		if !errors.Is(err, config.ErrNoKeyPath) {
			return nil, nil, nil, err
		}
	}

	reg := commands.NewRegistry()
	return cfg, reg, api.NewClient(cfg), nil
}

// newCLIRenderer picks the value renderer for plain CLI output. Colors
// are dropped when stdout is not a terminal.
func newCLIRenderer(cfg *config.Config) format.Renderer {
	st := format.PlainStyles()
	if ColorsEnabled() {
		st = format.DefaultStyles()
	}
	if cfg.UI.Renderer == "tree" {
		return format.NewTreeRenderer(st)
	}
	return format.NewFlatRenderer(st)
}

// RunOnce executes one command line and prints the response. Returns
// the process exit code.
func RunOnce(line string) int {
	cfg, reg, client, err := Setup()
	if err != nil {
		DisplayError(err)
		return GetExitCode(err)
	}

	tokens := commands.Tokenize(line)
	if len(tokens) == 0 {
		fmt.Println("Nothing to run.")
		return ExitUsageError
	}

	// Local builtins work without a key.
	if handled, code := runBuiltin(reg, tokens); handled {
		return code
	}

	parser := commands.NewParser(reg)
	result := parser.Parse(line)
	if result.Command == "" {
		DisplayError(fmt.Errorf("unknown command: %s", tokens[0]))
		return ExitUsageError
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
		return GetExitCode(err)
	}

	printResponse(cfg, resp)
	return ExitSuccess
}

// printResponse renders a dispatch result to stdout.
func printResponse(cfg *config.Config, resp *api.Response) {
	if resp.JSON != nil {
		fmt.Println(newCLIRenderer(cfg).Render(resp.JSON))
		return
	}
	fmt.Println(resp.Raw)
}

// runBuiltin handles help, list, and search without network access.
func runBuiltin(reg *commands.Registry, tokens []string) (bool, int) {
	switch tokens[0] {
	case "help":
		printHelp(reg, tokens[1:])
		return true, ExitSuccess

	case "list":
		if len(tokens) > 1 && tokens[1] == "categories" {
			for _, cat := range reg.Categories() {
				fmt.Println("  -", cat)
			}
			return true, ExitSuccess
		}
		fmt.Println("Usage: list categories")
		return true, ExitUsageError

	case "search":
		if len(tokens) < 2 {
			fmt.Println("Usage: search <keyword>")
			return true, ExitUsageError
		}
		printSearch(reg, tokens[1])
		return true, ExitSuccess
	}

	return false, ExitSuccess
}

// printHelp writes the plain-text help pages.
func printHelp(reg *commands.Registry, args []string) {
	if len(args) == 0 {
		fmt.Println("Available categories:")
		for _, cat := range reg.Categories() {
			fmt.Println("  -", cat)
		}
		fmt.Println()
		fmt.Println("Type 'help <command>' for more details on a command.")
		fmt.Println("Type 'help <category>' to list commands in a category.")
		return
	}

	arg := args[0]
	if d := reg.Lookup(arg); d != nil {
		fmt.Println("Command:", d.Name)
		fmt.Println("  Description:", d.Description)
		fmt.Println("  Category:", d.Category)
		fmt.Println("  Parameters:")
		for _, p := range d.Params {
			line := fmt.Sprintf("    --%s (%s)", p.Name, p.Type)
			if p.Required {
				line += " (Required)"
			}
			if p.Post {
				line += " (POST data)"
			}
			fmt.Println(line)
		}
		if d.Example != "" {
			fmt.Println("  Example:", d.Example)
		}
		return
	}

	for _, cat := range reg.Categories() {
		if strings.EqualFold(cat, arg) {
			fmt.Printf("Commands in category '%s':\n", cat)
			for _, name := range reg.CommandsInCategory(cat) {
				fmt.Printf("  %s: %s\n", name, reg.Lookup(name).Description)
			}
			return
		}
	}

	fmt.Println("Unknown command or category:", arg)
}

// printSearch writes search results for a keyword.
func printSearch(reg *commands.Registry, keyword string) {
	cmds, cats := reg.Search(keyword)
	if len(cmds) == 0 && len(cats) == 0 {
		fmt.Printf("No commands or categories found matching '%s'.\n", keyword)
		return
	}
	if len(cmds) > 0 {
		fmt.Printf("Commands matching '%s':\n", keyword)
		for _, name := range cmds {
			fmt.Printf("  %s: %s\n", name, reg.Lookup(name).Description)
		}
	}
	if len(cats) > 0 {
		fmt.Printf("Categories matching '%s':\n", keyword)
		for _, cat := range cats {
			fmt.Println("  -", cat)
		}
	}
}
