// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package shell

import (
	"strings"
)

// View implements tea.Model. Layout, top to bottom: header, transcript
// viewport, spinner line while busy, suggestion popup, input line,
// status bar.
func (m *Model) View() string {
	if !m.viewportReady {
		return "Starting comet..."
	}

	var b strings.Builder

	b.WriteString(m.header.View())
	b.WriteString("\n")

	if len(m.lines) == 0 {
		b.WriteString(m.welcome.View())
	} else {
		b.WriteString(m.viewport.View())
	}
	b.WriteString("\n")

	if m.spinner.Active() {
		b.WriteString(m.spinner.View(m.theme))
		b.WriteString("\n")
	}

	if m.popup.Visible() && m.state != StateBusy {
		b.WriteString(m.popup.View())
		b.WriteString("\n")
	}

	b.WriteString(m.theme.InputContainer.Render(m.input.View()))
	b.WriteString("\n")
	b.WriteString(m.statusBar.View())

	return b.String()
}
