// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// errors.go - Error types and exit codes for the ils command.
//
// Every failure is returned up to Run as an error and printed exactly once.
// ExitCode maps it to the process exit status.

package cli

import (
	"errors"
	"fmt"

	"github.com/jeranaias/ils/internal/display"
	"github.com/jeranaias/ils/internal/source"
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
	// ExitConfigError indicates configuration file or settings error
	ExitConfigError = 3
	// ExitNotFoundError indicates a missing path or a path that is not a directory
	ExitNotFoundError = 7
	// ExitOutputError indicates the listing could not be written
	ExitOutputError = 9
)

// Actions recorded in CommandError.
const (
	ActionConfig = "config"
	ActionList   = "list"
	ActionRender = "render"
)

// =============================================================================
// ERROR TYPES
// =============================================================================

// CommandError represents a failed step of a command run.
type CommandError struct {
	Command string // Command that failed, always "ils" today
	Action  string // Step being performed (config, list, render)
	Reason  string // Human-readable reason
	Err     error  // Underlying error (if any)
}

func (e *CommandError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Command, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Command, e.Reason)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// UsageError reports bad flags or arguments.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string {
	return e.Message
}

// NewCommandError creates a new command error.
func NewCommandError(action, reason string, err error) error {
	return &CommandError{
		Command: "ils",
		Action:  action,
		Reason:  reason,
		Err:     err,
	}
}

// =============================================================================
// EXIT CODE MAPPING
// =============================================================================

// ExitCode returns the process exit status for err.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var usage *UsageError
	switch {
	case errors.As(err, &usage):
		return ExitUsageError
	case errors.Is(err, display.ErrOutputWrite):
		return ExitOutputError
	case errors.Is(err, source.ErrNotFound), errors.Is(err, source.ErrNotDir):
		return ExitNotFoundError
	}

	var cmdErr *CommandError
	if errors.As(err, &cmdErr) && cmdErr.Action == ActionConfig {
		return ExitConfigError
	}
	return ExitGeneralError
}
