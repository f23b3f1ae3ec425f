// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package shell

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/comet-tui/internal/api"
	"github.com/jeranaias/comet-tui/internal/commands"
	"github.com/jeranaias/comet-tui/internal/config"
	"github.com/jeranaias/comet-tui/internal/ui/components"
)

// dispatchTimeout bounds one API call from the shell.
const dispatchTimeout = 60 * time.Second

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		cmd := m.spinner.Update(msg)
		m.statusBar.SetSpinnerFrame(m.spinner.Frame())
		return m, cmd

	case DispatchCompleteMsg:
		m.finishDispatch(msg)
		return m, nil

	case KeyChangedMsg:
		if msg.Err != nil {
			m.appendOutput(components.ErrorLine(m.theme, msg.Err))
		} else {
			m.client.SetKey(msg.Key)
			m.appendOutput(m.theme.StatusReady.Render("API key reloaded from disk."))
		}
		return m, nil

	case KeyPathAcceptedMsg:
		m.finishFirstRun(msg)
		return m, nil
	}

	return m, nil
}

// resize recomputes component dimensions and initializes the viewport
// on the first size message.
func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.theme.SetSize(width, height)
	m.header.SetWidth(width)
	m.statusBar.SetWidth(width)
	m.welcome.SetWidth(width)
	m.popup.SetWidth(width / 2)
	m.input.Width = width - 4

	// Header, input, popup area, and status bar share the column.
	vpHeight := height - 3 - commands.WindowSize
	if vpHeight < 3 {
		vpHeight = 3
	}
	if !m.viewportReady {
		m.viewport = viewport.New(width, vpHeight)
		m.viewportReady = true
		m.syncViewport()
	} else {
		m.viewport.Width = width
		m.viewport.Height = vpHeight
	}
}

// =============================================================================
// KEY HANDLING
// =============================================================================

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "enter":
		return m.handleSubmit()

	case "up":
		if !m.suggest.Empty() {
			m.suggest.MoveUp()
			return m, nil
		}

	case "down":
		if !m.suggest.Empty() {
			m.suggest.MoveDown()
			return m, nil
		}

	case "tab":
		if !m.suggest.Empty() {
			if newInput, ok := m.suggest.Accept(m.input.Value()); ok {
				m.input.SetValue(newInput)
				m.input.CursorEnd()
				m.refreshSuggestions(true)
			}
			return m, nil
		}

	case "esc":
		if !m.suggest.Empty() {
			m.dismissSuggestions()
			return m, nil
		}
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.refreshSuggestions(false)
	}
	return m, cmd
}

// handleSubmit runs the current input line.
func (m *Model) handleSubmit() (tea.Model, tea.Cmd) {
	line := strings.TrimSpace(m.input.Value())
	if line == "" {
		return m, nil
	}

	if m.state == StateFirstRun {
		m.input.SetValue("")
		return m, acceptKeyPathCmd(m.cfg, line)
	}

	if m.state == StateBusy {
		m.appendOutput(m.theme.StatusBusy.Render("A command is already running; wait for it to finish."))
		return m, nil
	}

	m.input.SetValue("")
	m.dismissSuggestions()
	m.appendOutput(m.theme.CommandEcho.Render("> " + line))

	if handled, cmd := m.runBuiltin(line); handled {
		return m, cmd
	}

	return m.startDispatch(line)
}

// =============================================================================
// BUILTINS
// =============================================================================

// runBuiltin handles the local commands that never reach the API.
func (m *Model) runBuiltin(line string) (bool, tea.Cmd) {
	tokens := commands.Tokenize(line)
	if len(tokens) == 0 {
		return true, nil
	}

	switch tokens[0] {
	case "exit", "quit":
		m.appendOutput("Exiting comet.")
		return true, tea.Quit

	case "clear":
		m.clearOutput()
		return true, nil

	case "help":
		m.showHelp(tokens[1:])
		return true, nil

	case "list":
		if len(tokens) > 1 && tokens[1] == "categories" {
			m.showHelp(nil)
		} else {
			m.appendOutput("Usage: list categories")
		}
		return true, nil

	case "search":
		if len(tokens) > 1 {
			if m.mdRenderer == nil {
				m.mdRenderer = newMarkdownRenderer(m.width)
			}
			m.appendOutput(renderMarkdown(m.mdRenderer, helpSearch(m.registry, tokens[1])))
		} else {
			m.appendOutput("Usage: search <keyword>")
		}
		return true, nil
	}

	return false, nil
}

// showHelp renders the help page for the given arguments.
func (m *Model) showHelp(args []string) {
	if m.mdRenderer == nil {
		m.mdRenderer = newMarkdownRenderer(m.width)
	}

	if len(args) == 0 {
		m.appendOutput(renderMarkdown(m.mdRenderer, helpOverview(m.registry)))
		return
	}

	arg := args[0]
	if d := m.registry.Lookup(arg); d != nil {
		m.appendOutput(renderMarkdown(m.mdRenderer, helpCommand(d)))
		return
	}
	for _, cat := range m.registry.Categories() {
		if strings.EqualFold(cat, arg) {
			m.appendOutput(renderMarkdown(m.mdRenderer, helpCategory(m.registry, cat)))
			return
		}
	}
	m.appendOutput("Unknown command or category: " + arg)
}

// =============================================================================
// DISPATCH
// =============================================================================

// startDispatch parses the line and fires the API call as a command.
func (m *Model) startDispatch(line string) (tea.Model, tea.Cmd) {
	parser := commands.NewParser(m.registry)
	result := parser.Parse(line)
	if result.Command == "" {
		first := commands.Tokenize(line)[0]
		m.appendOutput("Unknown command: " + first + ". Type 'help' for a list of commands.")
		return m, nil
	}

	desc := m.registry.Lookup(result.Command)
	args := make(map[string]string, len(result.Args))
	for _, a := range result.Args {
		args[a.Name] = a.Value
	}

	m.state = StateBusy
	m.statusBar.SetStatus(components.StatusBusy)
	spin := m.spinner.Start()

	return m, tea.Batch(spin, dispatchCmd(m.client, desc, args, line))
}

// dispatchCmd performs the API call off the event loop.
func dispatchCmd(client *api.Client, desc *commands.Descriptor, args map[string]string, line string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), dispatchTimeout)
		defer cancel()

		resp, err := client.Dispatch(ctx, desc, args)
		return DispatchCompleteMsg{Input: line, Resp: resp, Err: err}
	}
}

// finishDispatch renders the outcome and returns to Ready.
func (m *Model) finishDispatch(msg DispatchCompleteMsg) {
	m.state = StateReady
	m.spinner.Stop()
	m.statusBar.SetStatus(components.StatusReady)
	m.statusBar.SetSpinnerFrame("")

	if msg.Err != nil {
		m.appendOutput(components.ErrorLine(m.theme, msg.Err))
		return
	}

	if msg.Resp.JSON != nil {
		m.appendOutput(m.renderer.Render(msg.Resp.JSON))
		return
	}
	m.appendOutput(m.theme.RawResponse.Render("Raw response (not JSON):"))
	m.appendOutput(msg.Resp.Raw)
}

// =============================================================================
// FIRST-RUN KEY SETUP
// =============================================================================

// acceptKeyPathCmd validates a key file path and persists it.
func acceptKeyPathCmd(cfg *config.Config, path string) tea.Cmd {
	return func() tea.Msg {
		if err := config.SetKeyPath(cfg, path); err != nil {
			return KeyPathAcceptedMsg{Path: path, Err: err}
		}
		key, err := config.ReadKeyFile(path)
		return KeyPathAcceptedMsg{Key: key, Path: path, Err: err}
	}
}

// finishFirstRun applies the validated key or reports the failure.
func (m *Model) finishFirstRun(msg KeyPathAcceptedMsg) {
	if msg.Err != nil {
		m.appendOutput(components.ErrorLine(m.theme, msg.Err))
		m.appendOutput("Please enter the absolute path to your key.txt file:")
		return
	}

	m.client.SetKey(msg.Key)
	m.state = StateReady
	m.welcome.SetFirstRun(false)
	m.input.Placeholder = "Enter command here..."
	m.appendOutput("API key loaded. Type 'help' for available commands.")
}
