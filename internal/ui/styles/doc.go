// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the visual styling system for the comet TUI
application.

This package defines the complete color palette, theme, and animation
system used throughout the application. All colors use Lip Gloss
AdaptiveColor for automatic light/dark terminal detection.

# Color System (colors.go)

## Primary Accent Colors

  - Purple - Primary accent for headers and selections
  - Cyan - Brand color for command names and the prompt
  - Emerald - Success states and the connected indicator
  - Amber - Warnings, list bullets, pending states
  - Rose - Errors and error-like response values

## Response Syntax Colors

The JSON value renderers in internal/format color object keys and
scalars with the Syntax* palette (Catppuccin Latte/Mocha).

## Text Colors

Hierarchical text color system:

	TextPrimary   - Main content text
	TextSecondary - Supporting text
	TextMuted     - De-emphasized text, tree guides
	TextInverse   - Text on colored backgrounds

# Theme System (theme.go)

The Theme struct provides runtime color adaptation:

	theme := styles.NewTheme()
	if theme.IsDark {
		// Dark terminal detected
	}
	if theme.HasTrueColor {
		// Terminal supports 16M colors
	}

# Animation System (animations.go)

Pre-defined spinner styles:

	CometSpinner - Streaking comet animation
	DotsSpinner  - Classic three-dot animation
	LineSpinner  - Simple line rotation

Tree guide characters (TreeChars, RenderTreeLine) back the tree-style
response renderer.

## Status Indicators

ASCII indicators for various states:

	StatusIndicators.Success - [OK]
	StatusIndicators.Error   - [X]
	StatusIndicators.Warning - [!]
	StatusIndicators.Info    - [i]

# Usage Example

	import "github.com/jeranaias/comet-tui/internal/ui/styles"

	// Use adaptive colors
	headerStyle := lipgloss.NewStyle().
		Background(styles.SurfaceDim).
		Foreground(styles.TextPrimary)

	// Use theme for runtime detection
	theme := styles.NewTheme()
	prompt := theme.InputPrompt.Render("> ")

	// Use spinner configuration
	spinner := styles.CometSpinner
	interval := spinner.Duration()
*/
package styles
