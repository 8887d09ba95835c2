// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package display

import (
	"errors"
	"fmt"
)

// ErrOutputWrite matches every WriteError with errors.Is.
var ErrOutputWrite = errors.New("display: output write failed")

// WriteError is returned when the output sink rejects a write. Output
// already written before the failure is left as is.
type WriteError struct {
	Stage string // "grid", "lines", "table", or a caller's own stage such as "flush"
	Err   error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("display: writing %s output: %v", e.Stage, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// Is reports ErrOutputWrite as a match so callers need not know the stage.
func (e *WriteError) Is(target error) bool {
	return target == ErrOutputWrite
}
