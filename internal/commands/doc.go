// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package commands implements the command engine for the comet shell:
// the static catalog of remote API commands, the line parser, the
// completion engine, and the suggestion navigation state.
//
// The package is organized as follows:
//   - registry.go: immutable Registry built from the static catalog
//   - catalog.go: the catalog data (one Descriptor per remote command)
//   - parser.go: line tokenizer and the canonical argument parser
//   - completion.go: context-sensitive completion engine
//   - suggest.go: suggestion list navigation and windowing
//
// All types in this package are pure data and logic; nothing here touches
// the network or the terminal.
package commands
