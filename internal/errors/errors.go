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
	ExitErrorTimeout  = 2   // Indicates the operation timed out.
	ExitErrorMismatch = 3   // Indicates a result mismatch between strategies.
	ExitErrorConfig   = 4   // Indicates a configuration error.
	ExitErrorCanceled = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// Arithmetic error kinds. Every failure raised by the numeric core wraps
// exactly one of these.
var (
	// ErrParse reports a malformed, empty or partially numeric decimal string.
	ErrParse = errors.New("malformed decimal string")
	// ErrUnderflow reports an unsigned subtraction or decrement below zero.
	ErrUnderflow = errors.New("unsigned underflow")
	// ErrDivisionByZero reports a divide or modulo by zero.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrInvalidModulus reports a modulus Montgomery reduction cannot use.
	ErrInvalidModulus = errors.New("invalid modulus")
	// ErrIncompatibleOperands reports values from different moduli or curves.
	ErrIncompatibleOperands = errors.New("incompatible operands")
	// ErrNotInvertible reports a value sharing a factor with its modulus.
	ErrNotInvertible = errors.New("value is not invertible")
	// ErrPointAtInfinity reports an affine view requested for the identity.
	ErrPointAtInfinity = errors.New("point at infinity")
	// ErrNotOnCurve reports affine coordinates that do not satisfy the curve
	// equation.
	ErrNotOnCurve = errors.New("point is not on the curve")
)

// ParseError describes a decimal string that could not be parsed.
type ParseError struct {
	// Input is the offending string.
	Input string
	// Offset is the byte offset of the first invalid character.
	Offset int
}

// Error returns a message naming the input and the failing offset.
func (e ParseError) Error() string {
	if e.Input == "" {
		return "malformed decimal string: empty input"
	}
	return fmt.Sprintf("malformed decimal string %q: invalid character at offset %d", e.Input, e.Offset)
}

// Is reports whether target is ErrParse.
func (e ParseError) Is(target error) bool { return target == ErrParse }

// ArithmeticError ties an arithmetic failure to the operation that raised it.
type ArithmeticError struct {
	// Op names the operation, e.g. "Nat.Sub" or "montgomery.New".
	Op string
	// Err is one of the sentinel errors of this package.
	Err error
}

func (e *ArithmeticError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *ArithmeticError) Unwrap() error {
	return e.Err
}

// NewArithmeticError wraps kind with the name of the failing operation.
func NewArithmeticError(op string, kind error) error {
	return &ArithmeticError{Op: op, Err: kind}
}

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the application cannot proceed due to incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
//
// Returns:
//   - string: The error message string.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
// It allows for the creation of configuration-specific errors with dynamic
// content.
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

// CalculationError encapsulates a calculation error while preserving the
// original cause. This allows for structured error handling and inspection
// of what went wrong during a scalar multiplication or arithmetic command.
type CalculationError struct {
	// Cause is the underlying error that triggered this calculation error.
	Cause error
}

// Error returns the error message from the underlying cause.
//
// Returns:
//   - string: The error message string from the wrapped error.
func (e CalculationError) Error() string { return e.Cause.Error() }

// Unwrap returns the original wrapped error, allowing for error chain
// inspection (e.g., using errors.Is or errors.As).
//
// Returns:
//   - error: The underlying cause of the CalculationError.
func (e CalculationError) Unwrap() error { return e.Cause }

// TimeoutError represents a calculation timeout. It captures the operation
// name and the duration limit that was exceeded.
type TimeoutError struct {
	// Operation is the name of the operation that timed out.
	Operation string
	// Limit is the duration after which the operation was considered timed out.
	Limit time.Duration
}

// Error returns a formatted message describing the timeout.
//
// Returns:
//   - string: The error message string.
func (e TimeoutError) Error() string {
	return fmt.Sprintf("operation %q timed out after %s", e.Operation, e.Limit)
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
//
// Returns:
//   - string: The error message string.
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

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
//
// Parameters:
//   - err: The error to check.
//
// Returns:
//   - bool: true if the error is a context error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// IsArithmeticError reports whether err carries one of the arithmetic kinds.
func IsArithmeticError(err error) bool {
	for _, kind := range []error{
		ErrParse, ErrUnderflow, ErrDivisionByZero, ErrInvalidModulus,
		ErrIncompatibleOperands, ErrNotInvertible, ErrPointAtInfinity, ErrNotOnCurve,
	} {
		if errors.Is(err, kind) {
			return true
		}
	}
	return false
}
