// comet - an interactive shell for the constelia.ai API.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/comet-tui/internal/api"
	"github.com/jeranaias/comet-tui/internal/cli"
	"github.com/jeranaias/comet-tui/internal/commands"
	"github.com/jeranaias/comet-tui/internal/config"
	"github.com/jeranaias/comet-tui/internal/ui/shell"
	"github.com/jeranaias/comet-tui/internal/ui/styles"
)

// Version information (set at build time)
var (
	Version   = "1.0.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	// Sync version info with cli package
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cmd, rest := cli.Parse(os.Args[1:])

	if cmd == cli.CmdTUI {
		os.Exit(runTUI())
	}
	os.Exit(cli.Execute(cmd, rest))
}

// runTUI starts the interactive shell and returns the exit code.
func runTUI() int {
	// The TUI owns the terminal; keep request logging out of it.
	log.SetOutput(io.Discard)

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return cli.ExitConfigError
	}
	// Publish the instance so anything reading config.Global() in this
	// process sees what the shell validated.
	config.SetGlobal(cfg)

	firstRun := false
	if err := config.LoadKey(cfg); err != nil {
		switch {
		case errors.Is(err, config.ErrNoKeyPath), errors.Is(err, os.ErrNotExist):
			firstRun = true
		case errors.Is(err, config.ErrEmptyKey):
			fmt.Fprintln(os.Stderr, styles.RenderWarning("key file is empty. Please ensure your API key is in the file."))
			firstRun = true
		default:
			fmt.Fprintln(os.Stderr, "Error reading key file:", err)
			fmt.Fprintln(os.Stderr, "You may need to delete the config in ~/.comet and restart.")
			return cli.ExitConfigError
		}
	}

	reg := commands.NewRegistry()
	client := api.NewClient(cfg)

	model := shell.New(cfg, reg, client, Version, firstRun)
	program := tea.NewProgram(model, tea.WithAltScreen())

	// Reload the key when the file changes on disk.
	watcher := startKeyWatcher(cfg, program)
	if watcher != nil {
		defer watcher.Close()
	}

	if _, err := program.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return cli.ExitGeneralError
	}
	return cli.ExitSuccess
}

// startKeyWatcher watches the configured key file and forwards changes
// into the running program. Returns nil when no key path is set.
func startKeyWatcher(cfg *config.Config, program *tea.Program) config.KeyWatcher {
	if cfg.API.KeyPath == "" {
		return nil
	}

	watcher, err := config.NewKeyWatcher(cfg.API.KeyPath)
	if err != nil {
		return nil
	}
	if err := watcher.Watch(func(key string) {
		program.Send(shell.KeyChangedMsg{Key: key})
	}); err != nil {
		watcher.Close()
		return nil
	}
	return watcher
}
