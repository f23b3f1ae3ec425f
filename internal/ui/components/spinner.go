// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/comet-tui/internal/ui/styles"
)

// =============================================================================
// SPINNER
// =============================================================================

// Spinner shows progress while a command dispatch is in flight.
type Spinner struct {
	spinner   spinner.Model
	message   string
	startTime time.Time
	active    bool
}

// NewSpinner creates the comet spinner with its trailing-tail frames.
func NewSpinner(theme *styles.Theme) Spinner {
	s := spinner.New()
	s.Spinner = spinner.Spinner{
		Frames: styles.CometSpinner.Frames,
		FPS:    styles.CometSpinner.Duration(),
	}
	s.Style = theme.Spinner

	return Spinner{
		spinner: s,
		message: "Contacting constelia.ai",
	}
}

// Start activates the spinner and returns its tick command.
func (s *Spinner) Start() tea.Cmd {
	s.active = true
	s.startTime = time.Now()
	return s.spinner.Tick
}

// Stop deactivates the spinner.
func (s *Spinner) Stop() {
	s.active = false
}

// Active reports whether the spinner is running.
func (s *Spinner) Active() bool {
	return s.active
}

// Frame returns the current animation frame for embedding elsewhere,
// such as the status bar.
func (s *Spinner) Frame() string {
	return s.spinner.View()
}

// SetMessage sets the text shown next to the animation.
func (s *Spinner) SetMessage(msg string) {
	s.message = msg
}

// Update advances the animation on tick messages.
func (s *Spinner) Update(msg tea.Msg) tea.Cmd {
	if !s.active {
		return nil
	}
	var cmd tea.Cmd
	s.spinner, cmd = s.spinner.Update(msg)
	return cmd
}

// View renders the spinner line with its message and elapsed time.
func (s *Spinner) View(theme *styles.Theme) string {
	if !s.active {
		return ""
	}
	elapsed := time.Since(s.startTime).Round(time.Second)
	line := s.spinner.View() + " " + s.message
	if elapsed >= time.Second {
		line += " (" + elapsed.String() + ")"
	}
	return theme.ThinkingText.Render(line)
}
