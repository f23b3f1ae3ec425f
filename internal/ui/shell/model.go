// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package shell

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/glamour"

	"github.com/jeranaias/comet-tui/internal/api"
	"github.com/jeranaias/comet-tui/internal/commands"
	"github.com/jeranaias/comet-tui/internal/config"
	"github.com/jeranaias/comet-tui/internal/format"
	"github.com/jeranaias/comet-tui/internal/ui/components"
	"github.com/jeranaias/comet-tui/internal/ui/styles"
)

// =============================================================================
// SHELL STATE
// =============================================================================

// State represents the current state of the shell.
type State int

const (
	// StateFirstRun: no key file yet, the input collects a key.txt path
	StateFirstRun State = iota

	// StateReady: accepting command input
	StateReady

	// StateBusy: a dispatch is in flight; submits are ignored
	StateBusy
)

// =============================================================================
// SHELL MODEL
// =============================================================================

// Model is the Bubble Tea model for the command shell. It owns every
// piece of mutable state; commands communicate only through messages.
type Model struct {
	state State

	// Styling
	theme *styles.Theme

	// Dimensions
	width  int
	height int

	// Engine
	registry  *commands.Registry
	completer *commands.Completer
	suggest   *commands.SuggestionState
	client    *api.Client
	cfg       *config.Config

	// Rendering
	renderer   format.Renderer
	mdRenderer *glamour.TermRenderer

	// UI components
	viewport  viewport.Model
	input     textinput.Model
	spinner   components.Spinner
	header    *components.Header
	statusBar *components.StatusBar
	welcome   *components.Welcome
	popup     *components.SuggestionPopup

	// Transcript
	lines         []string
	viewportReady bool

	// Current completion context, for the popup footer
	completionCtx commands.Context
}

// New creates the shell model. firstRun switches the input into key
// path collection mode until a valid key file is supplied.
func New(cfg *config.Config, reg *commands.Registry, client *api.Client, version string, firstRun bool) *Model {
	theme := styles.NewTheme()

	input := textinput.New()
	input.Placeholder = "Enter command here..."
	input.Prompt = "> "
	input.PromptStyle = theme.InputPrompt
	input.TextStyle = theme.InputText
	input.PlaceholderStyle = theme.InputPlaceholder
	input.Focus()

	suggest := commands.NewSuggestionState()

	m := &Model{
		state:     StateReady,
		theme:     theme,
		registry:  reg,
		completer: commands.NewCompleter(reg),
		suggest:   suggest,
		client:    client,
		cfg:       cfg,
		renderer:  newRenderer(cfg),
		input:     input,
		spinner:   components.NewSpinner(theme),
		header:    components.NewHeader(theme, version),
		statusBar: components.NewStatusBar(theme),
		welcome:   components.NewWelcome(theme, version),
		popup:     components.NewSuggestionPopup(suggest, theme),
	}

	if firstRun {
		m.state = StateFirstRun
		m.welcome.SetFirstRun(true)
		m.input.Placeholder = "Path to key.txt"
	}

	return m
}

// newRenderer picks the value renderer from the configuration.
func newRenderer(cfg *config.Config) format.Renderer {
	st := format.DefaultStyles()
	if cfg.UI.Renderer == "tree" {
		return format.NewTreeRenderer(st)
	}
	return format.NewFlatRenderer(st)
}

// State returns the current shell state.
func (m *Model) State() State {
	return m.state
}

// Input returns the current input line, for tests.
func (m *Model) Input() string {
	return m.input.Value()
}

// Transcript returns the accumulated output lines joined, for tests.
func (m *Model) Transcript() string {
	return strings.Join(m.lines, "\n")
}

// appendOutput adds a block of text to the transcript and scrolls the
// viewport to the bottom.
func (m *Model) appendOutput(text string) {
	if text == "" {
		return
	}
	m.lines = append(m.lines, strings.Split(text, "\n")...)
	m.syncViewport()
}

// clearOutput resets the transcript.
func (m *Model) clearOutput() {
	m.lines = nil
	m.syncViewport()
}

// syncViewport pushes the transcript into the viewport.
func (m *Model) syncViewport() {
	if !m.viewportReady {
		return
	}
	m.viewport.SetContent(strings.Join(m.lines, "\n"))
	m.viewport.GotoBottom()
}

// refreshSuggestions recomputes the candidate list for the current
// input. preserve keeps the selection index across internal refreshes;
// user edits pass false so the selection resets.
func (m *Model) refreshSuggestions(preserve bool) {
	if m.state == StateFirstRun {
		return
	}
	candidates, ctx := m.completer.Complete(m.input.Value())
	m.completionCtx = ctx
	m.suggest.SetCandidates(candidates, preserve)
	m.popup.SetContext(ctx)
	m.statusBar.SetSuggesting(!m.suggest.Empty())
}

// dismissSuggestions clears the popup.
func (m *Model) dismissSuggestions() {
	m.suggest.SetCandidates(nil, false)
	m.statusBar.SetSuggesting(false)
}
