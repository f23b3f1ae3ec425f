// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides unified configuration loading and management for comet.
//
// Supports both TOML and JSON configuration formats, with sensible defaults,
// environment variable overrides, and validation. The license key itself
// lives in a separate file named by api_key_path and is never persisted
// into the config.
//
// # Key Types
//
//   - Config: Main configuration structure with all settings
//   - APIConfig: Upstream API settings (base URL, key path, timeout, rate)
//   - UIConfig: Renderer and theme selection
//   - KeyWatcher: Reload the license key when its file changes
//
// # Configuration Precedence
//
// Configuration is loaded from (in order of precedence):
//   - Environment variables (COMET_*)
//   - ~/.comet/config.toml
//   - ~/.comet/config.json (compatibility with older installs)
//   - Built-in defaults
//
// # Usage
//
// Load configuration and the license key:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := config.LoadKey(cfg); err != nil {
//	    // first-run flow prompts for the key path
//	}
package config
