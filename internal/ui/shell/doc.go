// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package shell provides the interactive command shell for the comet TUI.

The shell is a single Bubble Tea model owning all mutable state: the
input line, the suggestion navigation state, the transcript, and the
dispatch lifecycle. Completion candidates come from the commands
package; dispatches run as tea.Cmd functions and report back through
DispatchCompleteMsg.

States:

	StateFirstRun - no key file configured; the input collects a path
	StateReady    - accepting command input
	StateBusy     - a dispatch is in flight; submits are refused

Key handling while the popup is open: up/down move the selection
(preserving it across internal refreshes), tab accepts the highlighted
candidate and recomputes candidates for the new input, esc dismisses,
and any text edit resets the selection to the top.
*/
package shell
