// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"testing"

	"github.com/jeranaias/comet-tui/internal/config"
)

func TestSetupUsesGlobalConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("COMET_API_KEY", "")
	t.Setenv("COMET_KEY_PATH", "")
	config.ResetGlobalForTesting()
	t.Cleanup(config.ResetGlobalForTesting)

	cfg, reg, client, err := Setup()
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	if cfg != config.Global() {
		t.Error("Setup should hand back the process-wide config instance")
	}
	if reg == nil || client == nil {
		t.Error("Setup returned a nil registry or client")
	}

	// A second entry point in the same process sees the same instance.
	cfg2, _, _, err := Setup()
	if err != nil {
		t.Fatalf("Setup (second): %v", err)
	}
	if cfg2 != cfg {
		t.Error("repeated Setup calls should share one config")
	}
}
