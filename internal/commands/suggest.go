// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"strings"
	"unicode"
)

// WindowSize is the maximum number of suggestions shown at once.
const WindowSize = 5

// =============================================================================
// SUGGESTION STATE
// =============================================================================

// SuggestionState holds the current candidate list and the circular
// selection cursor over it. It is owned by the event loop; no locking.
type SuggestionState struct {
	candidates []string
	selected   int
}

// NewSuggestionState creates an empty suggestion state.
func NewSuggestionState() *SuggestionState {
	return &SuggestionState{}
}

// SetCandidates replaces the candidate list.
//
// preserve controls what happens to the selection: a user edit (typing,
// deleting) passes false and the selection resets to 0; an internal refresh
// (after navigation or after accepting a suggestion) passes true and the
// selection is kept, wrapped into the new list by the modulo rule.
func (s *SuggestionState) SetCandidates(candidates []string, preserve bool) {
	s.candidates = candidates
	if !preserve || len(candidates) == 0 {
		s.selected = 0
		return
	}
	s.selected %= len(candidates)
}

// Candidates returns the current candidate list.
func (s *SuggestionState) Candidates() []string {
	return s.candidates
}

// Empty reports whether there are no candidates.
func (s *SuggestionState) Empty() bool {
	return len(s.candidates) == 0
}

// Selected returns the absolute index of the current selection.
func (s *SuggestionState) Selected() int {
	return s.selected
}

// MoveDown advances the selection, wrapping at the end. No-op when empty.
func (s *SuggestionState) MoveDown() {
	if len(s.candidates) == 0 {
		return
	}
	s.selected = (s.selected + 1) % len(s.candidates)
}

// MoveUp retreats the selection, wrapping at the start. No-op when empty.
func (s *SuggestionState) MoveUp() {
	if len(s.candidates) == 0 {
		return
	}
	s.selected = (s.selected - 1 + len(s.candidates)) % len(s.candidates)
}

// Window returns the visible slice of candidates around the selection and
// the index of the first visible candidate. The window has size
// min(WindowSize, len) and always contains the selection.
func (s *SuggestionState) Window() (start int, items []string) {
	n := len(s.candidates)
	if n == 0 {
		return 0, nil
	}
	size := WindowSize
	if n < size {
		size = n
	}
	start = s.selected - 2
	if start < 0 {
		start = 0
	}
	if start > n-size {
		start = n - size
	}
	return start, s.candidates[start : start+size]
}

// Accept applies the selected candidate to input: the last
// whitespace-delimited token is replaced by the candidate plus a trailing
// space, or the candidate is appended when the input is blank. ok is false
// when there is nothing to accept.
//
// An out-of-range selection cannot occur under correct use, but falls back
// to the first candidate rather than panicking.
func (s *SuggestionState) Accept(input string) (newInput string, ok bool) {
	if len(s.candidates) == 0 {
		return input, false
	}
	sel := s.selected
	if sel < 0 || sel >= len(s.candidates) {
		sel = 0
	}
	candidate := s.candidates[sel]

	trimmed := strings.TrimRightFunc(input, unicode.IsSpace)
	if trimmed == "" {
		return candidate + " ", true
	}
	cut := strings.LastIndexFunc(trimmed, unicode.IsSpace)
	return trimmed[:cut+1] + candidate + " ", true
}
