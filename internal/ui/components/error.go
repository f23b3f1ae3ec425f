// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"errors"

	"github.com/jeranaias/comet-tui/internal/api"
	"github.com/jeranaias/comet-tui/internal/ui/styles"
)

// =============================================================================
// ERROR DISPLAY
// =============================================================================

// ErrorLine renders one user-facing error line for the transcript. The
// whole pipeline funnels failures here: coercion errors, HTTP errors,
// and parse errors all surface as a single styled line.
func ErrorLine(theme *styles.Theme, err error) string {
	if err == nil {
		return ""
	}
	return theme.ErrorMessage.Render(styles.StatusIndicators.Error + " " + errorText(err))
}

// errorText picks the display text for an error. Coercion errors
// already read as a full sentence; everything else keeps its Error()
// string as-is.
func errorText(err error) string {
	var missing *api.MissingParamError
	if errors.As(err, &missing) {
		return "Error: " + missing.Error()
	}
	var typeErr *api.TypeError
	if errors.As(err, &typeErr) {
		return "Error: " + typeErr.Error()
	}
	var listErr *api.ListError
	if errors.As(err, &listErr) {
		return "Error: " + listErr.Error()
	}
	return err.Error()
}
