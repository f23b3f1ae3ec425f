// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// errors.go - Exit codes and error display for the comet CLI surface.
//
// Commands return errors; the entry points decide how to display them
// and which exit code to use.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/jeranaias/comet-tui/internal/api"
	"github.com/jeranaias/comet-tui/internal/config"
	"github.com/jeranaias/comet-tui/internal/ui/styles"
)

// =============================================================================
// EXIT CODES
// =============================================================================

const (
	// ExitSuccess indicates successful execution
	ExitSuccess = 0
	// ExitGeneralError indicates a general/unknown error
	ExitGeneralError = 1
	// ExitUsageError indicates invalid command usage or arguments
	ExitUsageError = 2
	// ExitConfigError indicates a configuration or key file error
	ExitConfigError = 3
	// ExitAPIError indicates the API rejected the request
	ExitAPIError = 4
)

// DisplayError prints an error to stderr, styled when the terminal
// supports it.
func DisplayError(err error) {
	if ColorsEnabled() {
		fmt.Fprintln(os.Stderr, styles.RenderError(err.Error()))
		return
	}
	fmt.Fprintln(os.Stderr, "Error:", err)
}

// GetExitCode maps an error to its exit code category.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var missing *api.MissingParamError
	var typeErr *api.TypeError
	var listErr *api.ListError
	if errors.As(err, &missing) || errors.As(err, &typeErr) || errors.As(err, &listErr) {
		return ExitUsageError
	}

	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		return ExitAPIError
	}

	if errors.Is(err, api.ErrNotConfigured) ||
		errors.Is(err, config.ErrNoKeyPath) ||
		errors.Is(err, config.ErrEmptyKey) {
		return ExitConfigError
	}

	var validation config.ValidateErrors
	if errors.As(err, &validation) {
		return ExitConfigError
	}

	return ExitGeneralError
}
