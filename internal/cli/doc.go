// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli provides the plain command-line surface for comet.
//
// The interactive TUI is the default entry point; this package covers
// everything else: one-shot execution for scripting (comet run), a
// line-mode REPL with tab completion (comet repl), version and help
// output, and terminal capability detection shared by all of them.
//
// Exit codes distinguish usage errors, configuration problems, and API
// failures so shell scripts can branch on the outcome.
package cli
