// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package format renders JSON-shaped API responses for terminal display.
//
// A response is first decoded into a Value tree (DecodeJSON), which
// preserves object key order and numeric literals exactly as received.
// Two renderers turn a Value into text:
//
//   - TreeRenderer draws an indented guide tree and truncates long
//     strings at 100 characters with an ellipsis.
//   - FlatRenderer produces a plain block layout and hard-wraps long
//     strings every 80 characters instead of truncating.
//
// The two truncation strategies are intentionally different and are not
// unified; the active renderer is a user-facing configuration choice.
//
// Both renderers share the layout rules for composites: objects with an
// "error" or "message" key get a single-line emphasis layout, small
// all-scalar objects render inline as comma-joined key: value pairs,
// string arrays longer than three elements render as a bulleted list
// with a count header, and everything else falls back to an indented
// block with two spaces per level.
package format
