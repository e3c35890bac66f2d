package cli

import (
	"errors"
	"fmt"
)

// Exit codes for CLI commands.
const (
	// ExitCodeSuccess indicates successful execution.
	ExitCodeSuccess = 0
	// ExitCodeError indicates a general error (command failed, invalid input, prompt failure).
	ExitCodeError = 1
)

// ExitError carries the process exit code for a failed command up to the
// single place that terminates the process.
//
// When Reported is true the command has already shown the failure through its
// Sink, and the top-level handler must not print it again.
type ExitError struct {
	// Code is the process exit status.
	Code int
	// Err is the underlying failure.
	Err error
	// Reported marks errors whose message was already shown to the user.
	Reported bool
}

// NewReportedError wraps err as an already-reported failure with ExitCodeError.
func NewReportedError(err error) *ExitError {
	return &ExitError{
		Code:     ExitCodeError,
		Err:      err,
		Reported: true,
	}
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// IsReported reports whether err (or anything it wraps) was already shown to the user.
func IsReported(err error) bool {
	var exitErr *ExitError
	return errors.As(err, &exitErr) && exitErr.Reported
}

// ExitCode maps an error returned by a command to a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitCodeSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) && exitErr.Code != ExitCodeSuccess {
		return exitErr.Code
	}

	// Default to general error
	return ExitCodeError
}
