// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"errors"
	"strings"
	"testing"

	"github.com/jeranaias/comet-tui/internal/api"
	"github.com/jeranaias/comet-tui/internal/commands"
	"github.com/jeranaias/comet-tui/internal/ui/styles"
)

func testTheme() *styles.Theme {
	return styles.NewTheme()
}

func TestSuggestionPopupEmpty(t *testing.T) {
	state := commands.NewSuggestionState()
	popup := NewSuggestionPopup(state, testTheme())

	if popup.Visible() {
		t.Error("popup with no candidates should not be visible")
	}
	if popup.View() != "" {
		t.Error("empty popup should render nothing")
	}
}

func TestSuggestionPopupWindow(t *testing.T) {
	state := commands.NewSuggestionState()
	state.SetCandidates([]string{"alpha", "beta", "gamma", "delta", "epsilon", "zeta", "eta"}, false)

	popup := NewSuggestionPopup(state, testTheme())
	popup.SetContext(commands.ContextCommand)
	view := popup.View()

	// Only the five-item window is drawn.
	if strings.Contains(view, "zeta") {
		t.Error("items outside the window should not render")
	}
	if !strings.Contains(view, "alpha") || !strings.Contains(view, "epsilon") {
		t.Errorf("window items missing from view:\n%s", view)
	}

	// Selected item carries the marker.
	if !strings.Contains(view, "> alpha") {
		t.Errorf("selected marker missing:\n%s", view)
	}

	// Footer shows position out of the full candidate count.
	if !strings.Contains(view, "(1/7)") {
		t.Errorf("footer count missing:\n%s", view)
	}
}

func TestSuggestionPopupFollowsSelection(t *testing.T) {
	state := commands.NewSuggestionState()
	state.SetCandidates([]string{"a", "b", "c", "d", "e", "f", "g"}, false)
	for i := 0; i < 4; i++ {
		state.MoveDown()
	}

	popup := NewSuggestionPopup(state, testTheme())
	view := popup.View()

	if !strings.Contains(view, "> e") {
		t.Errorf("marker should follow selection:\n%s", view)
	}
}

func TestStatusBarStates(t *testing.T) {
	bar := NewStatusBar(testTheme())
	bar.SetWidth(80)

	if got := bar.View(); !strings.Contains(got, "Ready") {
		t.Errorf("ready bar missing status: %q", got)
	}

	bar.SetStatus(StatusBusy)
	bar.SetSpinnerFrame("*   ")
	if got := bar.View(); !strings.Contains(got, "Working...") {
		t.Errorf("busy bar missing status: %q", got)
	}

	bar.SetSuggesting(true)
	if got := bar.View(); !strings.Contains(got, "dismiss") {
		t.Errorf("suggesting bar should show esc hint: %q", got)
	}
}

func TestHeaderView(t *testing.T) {
	h := NewHeader(testTheme(), "1.0.0")
	h.SetWidth(60)

	view := h.View()
	if !strings.Contains(view, "comet") {
		t.Errorf("header missing title: %q", view)
	}
	if !strings.Contains(view, "1.0.0") {
		t.Errorf("header missing version: %q", view)
	}
}

func TestWelcomeModes(t *testing.T) {
	w := NewWelcome(testTheme(), "1.0.0")

	view := w.View()
	if !strings.Contains(view, "API key loaded") {
		t.Errorf("normal welcome missing greeting:\n%s", view)
	}

	w.SetFirstRun(true)
	view = w.View()
	if !strings.Contains(view, "key.txt") {
		t.Errorf("first-run welcome missing key prompt:\n%s", view)
	}
}

func TestErrorLine(t *testing.T) {
	theme := testTheme()

	if ErrorLine(theme, nil) != "" {
		t.Error("nil error should render nothing")
	}

	line := ErrorLine(theme, errors.New("API request failed: HTTP 401"))
	if !strings.Contains(line, "API request failed") {
		t.Errorf("line missing error text: %q", line)
	}

	line = ErrorLine(theme, &api.MissingParamError{Command: "getScript", Param: "id"})
	if !strings.Contains(line, "Error: missing required parameter --id") {
		t.Errorf("coercion error not prefixed: %q", line)
	}
}

func TestToStr(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "0"},
		{7, "7"},
		{42, "42"},
		{-13, "-13"},
		{1000, "1000"},
	}
	for _, tt := range tests {
		if got := toStr(tt.n); got != tt.want {
			t.Errorf("toStr(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}
