// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package format

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/comet-tui/internal/ui/styles"
)

// Styles holds the lipgloss styles both renderers draw with. Callers
// that want uncolored output (tests, piped stdout) use PlainStyles.
type Styles struct {
	Key    lipgloss.Style // object keys
	Str    lipgloss.Style // normal strings
	Num    lipgloss.Style // numbers
	Bool   lipgloss.Style // booleans
	Null   lipgloss.Style // null
	Error  lipgloss.Style // error-like strings and error-layout keys
	Bullet lipgloss.Style // list bullet marker
	Header lipgloss.Style // string-list count header
	Index  lipgloss.Style // array index labels in the tree renderer
	Guide  lipgloss.Style // tree guide characters
}

// DefaultStyles builds the colored style set from the application
// palette.
func DefaultStyles() Styles {
	return Styles{
		Key:    lipgloss.NewStyle().Bold(true).Foreground(styles.SyntaxFunction),
		Str:    lipgloss.NewStyle().Foreground(styles.SyntaxString),
		Num:    lipgloss.NewStyle().Bold(true).Foreground(styles.SyntaxNumber),
		Bool:   lipgloss.NewStyle().Bold(true).Foreground(styles.SyntaxConstant),
		Null:   lipgloss.NewStyle().Italic(true).Foreground(styles.SyntaxComment),
		Error:  lipgloss.NewStyle().Foreground(styles.Rose),
		Bullet: lipgloss.NewStyle().Foreground(styles.Amber),
		Header: lipgloss.NewStyle().Bold(true).Underline(true),
		Index:  lipgloss.NewStyle().Foreground(styles.SyntaxKeyword),
		Guide:  lipgloss.NewStyle().Foreground(styles.TextMuted),
	}
}

// PlainStyles builds a style set that renders text unmodified.
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{
		Key:    plain,
		Str:    plain,
		Num:    plain,
		Bool:   plain,
		Null:   plain,
		Error:  plain,
		Bullet: plain,
		Header: plain,
		Index:  plain,
		Guide:  plain,
	}
}
