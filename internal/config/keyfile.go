// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// =============================================================================
// LICENSE KEY FILE
// =============================================================================

// Key file errors.
var (
	// ErrNoKeyPath means neither a key path nor a COMET_API_KEY
	// override is configured; the shell runs its first-run flow.
	ErrNoKeyPath = errors.New("no api key path configured")
	// ErrEmptyKey means the key file exists but holds nothing usable.
	ErrEmptyKey = errors.New("api key file is empty")
)

// LoadKey resolves the license key for cfg and stores it in cfg.API.Key.
//
// Precedence: an already-set key (the COMET_API_KEY override) wins, then
// the key file named by api_key_path. The file's content is trimmed so a
// trailing newline from an editor does not corrupt the key.
func LoadKey(cfg *Config) error {
	if cfg.API.Key != "" {
		return nil
	}
	if cfg.API.KeyPath == "" {
		return ErrNoKeyPath
	}

	key, err := ReadKeyFile(cfg.API.KeyPath)
	if err != nil {
		return err
	}
	cfg.API.Key = key
	return nil
}

// ReadKeyFile reads and trims the license key from path.
func ReadKeyFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read key file %s: %w", path, err)
	}
	key := strings.TrimSpace(string(data))
	if key == "" {
		return "", fmt.Errorf("%s: %w", path, ErrEmptyKey)
	}
	return key, nil
}

// SetKeyPath records path as the key file location and persists the
// config. Used by the first-run flow after the user supplies a path.
func SetKeyPath(cfg *Config, path string) error {
	if _, err := ReadKeyFile(path); err != nil {
		return err
	}
	cfg.API.KeyPath = path
	if err := LoadKey(cfg); err != nil {
		return err
	}
	return Save(cfg)
}
