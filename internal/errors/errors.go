package apperrors

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess       = 0   // Indicates successful execution.
	ExitErrorGeneric  = 1   // Indicates a generic error.
	ExitErrorTimeout  = 2   // Indicates the run exceeded its timeout.
	ExitErrorDisplay  = 3   // Indicates a figure could not be displayed.
	ExitErrorConfig   = 4   // Indicates a configuration error.
	ExitErrorCanceled = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the application cannot proceed due to incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// ValidationError represents an input validation failure. It identifies which
// field failed validation and provides a human-readable explanation.
type ValidationError struct {
	// Field is the name of the field that failed validation.
	Field string
	// Message explains the validation failure.
	Message string
}

// Error returns a formatted message describing the validation failure.
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// DisplayError reports that a figure could not be shown, typically because
// no interactive terminal is attached to the output.
type DisplayError struct {
	// Cause is the underlying error that prevented the display.
	Cause error
}

// Error returns a message prefixed with the display failure context.
func (e DisplayError) Error() string {
	return fmt.Sprintf("display unavailable: %v", e.Cause)
}

// Unwrap returns the original wrapped error.
func (e DisplayError) Unwrap() error { return e.Cause }

// RenderError reports a failure to write a figure image.
type RenderError struct {
	// Path is the destination file of the figure.
	Path string
	// Cause is the underlying rendering or I/O error.
	Cause error
}

// Error returns a message naming the figure path and the cause.
func (e RenderError) Error() string {
	return fmt.Sprintf("rendering %s: %v", e.Path, e.Cause)
}

// Unwrap returns the original wrapped error.
func (e RenderError) Unwrap() error { return e.Cause }

// UnknownMethodError is returned when a correction method identifier is not
// one of the supported procedures.
type UnknownMethodError struct {
	// Method is the identifier that was not recognized.
	Method string
}

// Error returns a message naming the rejected method.
func (e UnknownMethodError) Error() string {
	return fmt.Sprintf("unknown correction method %q", e.Method)
}

// TimeoutError represents a run that exceeded its configured time budget.
type TimeoutError struct {
	// Operation is the name of the operation that timed out.
	Operation string
	// Limit is the duration after which the operation was considered timed out.
	Limit time.Duration
}

// Error returns a formatted message describing the timeout.
func (e TimeoutError) Error() string {
	return fmt.Sprintf("operation %q timed out after %s", e.Operation, e.Limit)
}

// Unwrap lets errors.Is match context.DeadlineExceeded on a TimeoutError.
func (e TimeoutError) Unwrap() error { return context.DeadlineExceeded }

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or deadline exceeded error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// ExitCodeFor maps an error to the process exit code that reports it.
// A nil error maps to ExitSuccess.
func ExitCodeFor(err error) int {
	var (
		configErr     ConfigError
		validationErr ValidationError
		displayErr    DisplayError
	)
	switch {
	case err == nil:
		return ExitSuccess
	case IsContextError(err):
		if errors.Is(err, context.DeadlineExceeded) {
			return ExitErrorTimeout
		}
		return ExitErrorCanceled
	case errors.As(err, &configErr), errors.As(err, &validationErr):
		return ExitErrorConfig
	case errors.As(err, &displayErr):
		return ExitErrorDisplay
	default:
		return ExitErrorGeneric
	}
}
