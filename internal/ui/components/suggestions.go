// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/jeranaias/comet-tui/internal/commands"
	"github.com/jeranaias/comet-tui/internal/ui/styles"
	"github.com/jeranaias/comet-tui/internal/util"
)

// =============================================================================
// SUGGESTION POPUP COMPONENT
// =============================================================================

// SuggestionPopup renders the completion window above the input line.
// Navigation and windowing live in commands.SuggestionState; this
// component only draws whatever window the state exposes.
type SuggestionPopup struct {
	state *commands.SuggestionState
	ctx   commands.Context
	width int
	theme *styles.Theme
}

// NewSuggestionPopup creates a popup bound to a navigation state.
func NewSuggestionPopup(state *commands.SuggestionState, theme *styles.Theme) *SuggestionPopup {
	return &SuggestionPopup{
		state: state,
		width: 44,
		theme: theme,
	}
}

// SetContext records which completion context produced the candidates,
// shown as a footer label.
func (p *SuggestionPopup) SetContext(ctx commands.Context) {
	p.ctx = ctx
}

// SetWidth sets the popup width.
func (p *SuggestionPopup) SetWidth(width int) {
	if width < 20 {
		width = 20
	}
	p.width = width
}

// Visible reports whether there is anything to draw.
func (p *SuggestionPopup) Visible() bool {
	return p.state != nil && !p.state.Empty()
}

// View renders the popup, or "" when there are no candidates.
func (p *SuggestionPopup) View() string {
	if !p.Visible() {
		return ""
	}

	start, items := p.state.Window()
	selected := p.state.Selected()
	inner := p.width - 4 // border and padding

	var lines []string
	for i, item := range items {
		lines = append(lines, p.renderItem(item, start+i == selected, inner))
	}

	total := len(p.state.Candidates())
	if total > len(items) {
		footer := p.theme.SuggestionContext.Render(
			util.PadRight(p.ctx.String()+" ("+toStr(selected+1)+"/"+toStr(total)+")", inner))
		lines = append(lines, footer)
	}

	return p.theme.SuggestionPopup.Width(p.width).Render(strings.Join(lines, "\n"))
}

// renderItem draws one candidate row with a selection indicator.
func (p *SuggestionPopup) renderItem(item string, isSelected bool, width int) string {
	marker := "  "
	style := p.theme.SuggestionItem
	if isSelected {
		marker = "> "
		style = p.theme.SuggestionSelected
	}

	text := marker + util.TruncateWidth(item, width-2)
	return style.Render(util.PadRight(text, width))
}
