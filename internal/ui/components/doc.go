// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package components provides the visual UI components for the comet shell.

Each component is a small, theme-driven renderer built on Lip Gloss. The
shell model owns all state transitions; components only draw.

Header (header.go) - Title bar with app name and version.
StatusBar (statusbar.go) - Bottom bar with shell status and key hints.
SuggestionPopup (suggestions.go) - Completion window above the input line.
Spinner (spinner.go) - Dispatch-in-flight animation.
Welcome (welcome.go) - Startup banner and first-run key prompt.
ErrorLine (error.go) - User-facing error rendering.

All components accept a *styles.Theme for consistent styling:

	theme := styles.NewTheme()
	bar := components.NewStatusBar(theme)
	bar.SetWidth(80)
	view := bar.View()
*/
package components
