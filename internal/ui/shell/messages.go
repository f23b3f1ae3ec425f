// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// messages.go - Bubble Tea message types the shell exchanges with its
// commands.
package shell

import (
	"github.com/jeranaias/comet-tui/internal/api"
)

// =============================================================================
// DISPATCH MESSAGES
// =============================================================================

// DispatchCompleteMsg delivers the outcome of one command dispatch.
// Exactly one of Resp and Err is set.
type DispatchCompleteMsg struct {
	Input string
	Resp  *api.Response
	Err   error
}

// =============================================================================
// KEY FILE MESSAGES
// =============================================================================

// KeyChangedMsg signals that the key file changed on disk and was
// re-read. Sent by the watcher goroutine through program.Send.
type KeyChangedMsg struct {
	Key string
	Err error
}

// KeyPathAcceptedMsg reports the outcome of validating and persisting a
// key file path entered during first-run setup.
type KeyPathAcceptedMsg struct {
	Key  string
	Path string
	Err  error
}
