// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/comet-tui/internal/ui/styles"
)

// =============================================================================
// STATUS BAR COMPONENT
// =============================================================================

// Status represents the current shell status.
type Status int

const (
	StatusReady Status = iota
	StatusBusy
	StatusError
)

// String returns the display string for the status.
func (s Status) String() string {
	switch s {
	case StatusReady:
		return "Ready"
	case StatusBusy:
		return "Working..."
	case StatusError:
		return "Error"
	default:
		return "Unknown"
	}
}

// Icon returns an ASCII icon for the status.
// ACCESSIBILITY: Distinct shapes alongside colors for colorblind users.
func (s Status) Icon() string {
	switch s {
	case StatusReady:
		return styles.StatusIndicators.Success
	case StatusBusy:
		return styles.StatusIndicators.Pending
	case StatusError:
		return styles.StatusIndicators.Error
	default:
		return "-"
	}
}

// Shortcut is one key hint shown on the right side of the bar.
type Shortcut struct {
	Key  string
	Desc string
}

// defaultShortcuts are shown when the input line is empty.
var defaultShortcuts = []Shortcut{
	{"tab", "complete"},
	{"up/dn", "select"},
	{"enter", "run"},
	{"ctrl+c", "quit"},
}

// suggestShortcuts are shown while the suggestion popup is open.
var suggestShortcuts = []Shortcut{
	{"tab", "accept"},
	{"up/dn", "select"},
	{"esc", "dismiss"},
}

// StatusBar is the single-line bar at the bottom of the shell.
type StatusBar struct {
	status     Status
	spinner    string
	width      int
	suggesting bool
	theme      *styles.Theme
}

// NewStatusBar creates a status bar in the Ready state.
func NewStatusBar(theme *styles.Theme) *StatusBar {
	return &StatusBar{status: StatusReady, theme: theme}
}

// SetStatus updates the displayed status.
func (b *StatusBar) SetStatus(s Status) {
	b.status = s
}

// Status returns the current status.
func (b *StatusBar) Status() Status {
	return b.status
}

// SetSpinnerFrame sets the animation frame shown while busy.
func (b *StatusBar) SetSpinnerFrame(frame string) {
	b.spinner = frame
}

// SetWidth sets the render width.
func (b *StatusBar) SetWidth(width int) {
	b.width = width
}

// SetSuggesting switches the shortcut hints to the popup set.
func (b *StatusBar) SetSuggesting(on bool) {
	b.suggesting = on
}

// View renders the bar: status on the left, shortcuts on the right.
func (b *StatusBar) View() string {
	var left string
	switch b.status {
	case StatusBusy:
		frame := b.spinner
		if frame == "" {
			frame = styles.CometSpinner.Frames[0]
		}
		left = b.theme.StatusBusy.Render(frame + " " + b.status.String())
	case StatusError:
		left = b.theme.ErrorMessage.Render(b.status.Icon() + " " + b.status.String())
	default:
		left = b.theme.StatusReady.Render(b.status.Icon() + " " + b.status.String())
	}

	right := b.renderShortcuts()

	gap := b.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}

	line := left + strings.Repeat(" ", gap) + right
	return b.theme.StatusBar.Width(b.width).Render(line)
}

// renderShortcuts draws the key hints for the current mode.
func (b *StatusBar) renderShortcuts() string {
	shortcuts := defaultShortcuts
	if b.suggesting {
		shortcuts = suggestShortcuts
	}

	parts := make([]string, 0, len(shortcuts))
	for _, sc := range shortcuts {
		parts = append(parts,
			b.theme.ShortcutKey.Render(sc.Key)+" "+b.theme.ShortcutDesc.Render(sc.Desc))
	}
	return strings.Join(parts, "  ")
}
