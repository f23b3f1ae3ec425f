// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/jeranaias/comet-tui/internal/ui/styles"
)

// =============================================================================
// WELCOME COMPONENT
// =============================================================================

const cometLogo = `
      *
     .*      _________  _____ ______   _______  _________
    ..*     |  ___|   ||     |  ___|  |__   __||___   ___|
   ...*     | |   | | || | | | |__       | |       | |
    ..*     | |___| |_|| | | | |___     _| |_      | |
     .*     |_____|____|_|_|_|_____|   |_____|     |_|
      *
`

// Welcome renders the startup banner, in one of two modes: the normal
// greeting when a key is loaded, or the first-run prompt asking for the
// key file path.
type Welcome struct {
	version  string
	firstRun bool
	width    int
	theme    *styles.Theme
}

// NewWelcome creates the welcome banner.
func NewWelcome(theme *styles.Theme, version string) *Welcome {
	return &Welcome{version: version, theme: theme}
}

// SetFirstRun switches to the key-file prompt mode.
func (w *Welcome) SetFirstRun(on bool) {
	w.firstRun = on
}

// SetWidth sets the render width.
func (w *Welcome) SetWidth(width int) {
	w.width = width
}

// View renders the banner box.
func (w *Welcome) View() string {
	var b strings.Builder

	b.WriteString(w.theme.WelcomeLogo.Render(strings.Trim(cometLogo, "\n")))
	b.WriteString("\n")
	b.WriteString(w.theme.WelcomeVersion.Render("comet " + w.version))
	b.WriteString("\n\n")

	if w.firstRun {
		b.WriteString(w.theme.WelcomeInfo.Render(
			"Welcome to comet! It looks like this is your first time running it\n" +
				"or your key.txt path is missing or invalid."))
		b.WriteString("\n\n")
		b.WriteString(w.theme.WelcomePrompt.Render(
			"Please enter the absolute path to your key.txt file:"))
	} else {
		b.WriteString(w.theme.WelcomeInfo.Render(
			"API key loaded. Type 'help' for available commands."))
	}

	box := w.theme.WelcomeBox
	if w.width > 0 {
		box = box.Width(w.width - 2)
	}
	return box.Render(b.String())
}
