// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/comet-tui/internal/ui/styles"
)

// =============================================================================
// HEADER COMPONENT
// =============================================================================

// Header is the one-line title bar at the top of the shell.
type Header struct {
	title    string
	subtitle string
	width    int
	theme    *styles.Theme
}

// NewHeader creates the shell header.
func NewHeader(theme *styles.Theme, version string) *Header {
	return &Header{
		title:    "comet",
		subtitle: "constelia.ai " + version,
		theme:    theme,
	}
}

// SetWidth sets the render width.
func (h *Header) SetWidth(width int) {
	h.width = width
}

// View renders the header bar.
func (h *Header) View() string {
	title := h.theme.HeaderTitle.Render("* " + h.title)
	subtitle := h.theme.HeaderSubtitle.Render(h.subtitle)

	gap := h.width - lipgloss.Width(title) - lipgloss.Width(subtitle) - 2
	if gap < 1 {
		gap = 1
	}

	line := title + lipgloss.NewStyle().Width(gap).Render("") + subtitle
	return h.theme.Header.Width(h.width).Render(line)
}
