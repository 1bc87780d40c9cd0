// Package apperrors provides tests for application error types.
package apperrors

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestParseError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      ParseError
		expected string
	}{
		{
			name:     "empty input",
			err:      ParseError{},
			expected: "malformed decimal string: empty input",
		},
		{
			name:     "invalid character",
			err:      ParseError{Input: "12a4", Offset: 2},
			expected: `malformed decimal string "12a4": invalid character at offset 2`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.err.Error() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, tt.err.Error())
			}
			if !errors.Is(tt.err, ErrParse) {
				t.Error("ParseError should match ErrParse")
			}
			if errors.Is(tt.err, ErrUnderflow) {
				t.Error("ParseError should not match ErrUnderflow")
			}
		})
	}
}

func TestArithmeticError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		op       string
		kind     error
		expected string
	}{
		{"subtraction underflow", "Nat.Sub", ErrUnderflow, "Nat.Sub: unsigned underflow"},
		{"division by zero", "Nat.DivMod", ErrDivisionByZero, "Nat.DivMod: division by zero"},
		{"even modulus", "montgomery.New", ErrInvalidModulus, "montgomery.New: invalid modulus"},
		{"mixed moduli", "modular.Add", ErrIncompatibleOperands, "modular.Add: incompatible operands"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := NewArithmeticError(tt.op, tt.kind)
			if err.Error() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, err.Error())
			}
			if !errors.Is(err, tt.kind) {
				t.Errorf("errors.Is should find %v in the chain", tt.kind)
			}
			var arithErr *ArithmeticError
			if !errors.As(err, &arithErr) || arithErr.Op != tt.op {
				t.Errorf("errors.As should expose Op %q", tt.op)
			}
			if !IsArithmeticError(fmt.Errorf("wrapped: %w", err)) {
				t.Error("IsArithmeticError should see through wrapping")
			}
		})
	}

	if IsArithmeticError(errors.New("plain")) {
		t.Error("IsArithmeticError should reject unrelated errors")
	}
}

func TestConfigError(t *testing.T) {
	t.Parallel()
	err := NewConfigError("invalid value %q for flag %s", "abc", "-m")
	if err.Error() != `invalid value "abc" for flag -m` {
		t.Errorf("unexpected message %q", err.Error())
	}
	var configErr ConfigError
	if !errors.As(err, &configErr) {
		t.Error("expected error to be ConfigError type")
	}
}

func TestCalculationError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		cause       error
		expectedMsg string
		checkIs     error
	}{
		{
			name:        "Error returns cause message",
			cause:       NewArithmeticError("Int.QuoRem", ErrDivisionByZero),
			expectedMsg: "Int.QuoRem: division by zero",
			checkIs:     ErrDivisionByZero,
		},
		{
			name:        "errors.Is works with context errors",
			cause:       context.Canceled,
			expectedMsg: "context canceled",
			checkIs:     context.Canceled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := CalculationError{Cause: tt.cause}
			if err.Error() != tt.expectedMsg {
				t.Errorf("expected %q, got %q", tt.expectedMsg, err.Error())
			}
			if err.Unwrap() != tt.cause {
				t.Error("Unwrap should return the original cause")
			}
			if !errors.Is(err, tt.checkIs) {
				t.Errorf("errors.Is should find %v in the chain", tt.checkIs)
			}
		})
	}
}

func TestTimeoutAndValidationErrors(t *testing.T) {
	t.Parallel()
	timeout := TimeoutError{Operation: "scalarmult", Limit: 30 * time.Second}
	if timeout.Error() != `operation "scalarmult" timed out after 30s` {
		t.Errorf("unexpected timeout message %q", timeout.Error())
	}
	validation := ValidationError{Field: "curve", Message: "unknown curve"}
	if validation.Error() != `validation error for "curve": unknown curve` {
		t.Errorf("unexpected validation message %q", validation.Error())
	}
}

func TestWrapError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		original    error
		format      string
		args        []any
		expectedMsg string
		expectNil   bool
		checkIs     error
	}{
		{
			name:        "wraps error with context",
			original:    ErrNotInvertible,
			format:      "inverting %s",
			args:        []any{"12"},
			expectedMsg: "inverting 12: value is not invertible",
			checkIs:     ErrNotInvertible,
		},
		{
			name:        "preserves error chain",
			original:    context.DeadlineExceeded,
			format:      "operation timed out",
			expectedMsg: "operation timed out: context deadline exceeded",
			checkIs:     context.DeadlineExceeded,
		},
		{
			name:      "returns nil for nil error",
			original:  nil,
			format:    "some context",
			expectNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			wrapped := WrapError(tt.original, tt.format, tt.args...)

			if tt.expectNil {
				if wrapped != nil {
					t.Error("WrapError(nil, ...) should return nil")
				}
				return
			}
			if wrapped.Error() != tt.expectedMsg {
				t.Errorf("expected %q, got %q", tt.expectedMsg, wrapped.Error())
			}
			if !errors.Is(wrapped, tt.checkIs) {
				t.Errorf("wrapped error should preserve %v in the chain", tt.checkIs)
			}
		})
	}
}

func TestIsContextError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"context.Canceled", context.Canceled, true},
		{"context.DeadlineExceeded", context.DeadlineExceeded, true},
		{"wrapped context.Canceled", WrapError(context.Canceled, "operation canceled"), true},
		{"arithmetic error", NewArithmeticError("Nat.Sub", ErrUnderflow), false},
		{"nil error", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := IsContextError(tt.err); got != tt.expected {
				t.Errorf("IsContextError(%v) = %v, expected %v", tt.err, got, tt.expected)
			}
		})
	}
}

type plainColors struct{}

func (plainColors) Red() string    { return "" }
func (plainColors) Yellow() string { return "" }
func (plainColors) Reset() string  { return "" }

func TestHandleCalculationError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      error
		duration time.Duration
		wantCode int
		wantOut  string
	}{
		{"nil error", nil, 0, ExitSuccess, ""},
		{"deadline", context.DeadlineExceeded, time.Second, ExitErrorTimeout, "Timeout"},
		{"timeout type", TimeoutError{Operation: "x", Limit: time.Second}, 0, ExitErrorTimeout, "Timeout"},
		{"canceled", context.Canceled, 0, ExitErrorCanceled, "Canceled"},
		{"config", NewConfigError("bad flag"), 0, ExitErrorConfig, "bad flag"},
		{"arithmetic", NewArithmeticError("Nat.Sub", ErrUnderflow), 0, ExitErrorGeneric, "unsigned underflow"},
		{"parse", WrapError(ParseError{Input: "12x", Offset: 2}, "operand a"), 0, ExitErrorConfig, "Invalid input"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			code := HandleCalculationError(tt.err, tt.duration, &buf, plainColors{})
			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d", code, tt.wantCode)
			}
			if !strings.Contains(buf.String(), tt.wantOut) {
				t.Errorf("output %q should contain %q", buf.String(), tt.wantOut)
			}
		})
	}
}

func TestExitCodes(t *testing.T) {
	t.Parallel()
	codes := map[string]int{
		"ExitSuccess":       ExitSuccess,
		"ExitErrorGeneric":  ExitErrorGeneric,
		"ExitErrorTimeout":  ExitErrorTimeout,
		"ExitErrorMismatch": ExitErrorMismatch,
		"ExitErrorConfig":   ExitErrorConfig,
		"ExitErrorCanceled": ExitErrorCanceled,
	}

	if ExitSuccess != 0 {
		t.Errorf("ExitSuccess should be 0, got %d", ExitSuccess)
	}
	if ExitErrorCanceled != 130 {
		t.Errorf("ExitErrorCanceled should be 130 (SIGINT convention), got %d", ExitErrorCanceled)
	}

	seen := make(map[int]string)
	for name, code := range codes {
		if existing, ok := seen[code]; ok {
			t.Errorf("duplicate exit code %d: %s and %s", code, existing, name)
		}
		seen[code] = name
	}
}
