package karou

import (
	"fmt"

	"github.com/pkg/errors"
)

// ParseError is one recoverable syntax problem found by the Parser.
type ParseError struct {
	Line    int
	Column  int
	Message string
}

func (e ParseError) Error() string {
	return fmt.Sprintf("Line %d: %s", e.Line, e.Message)
}

var (
	ErrUndefinedVariable = errors.New("undefined variable")
	ErrUnsupportedCall   = errors.New("unsupported call")
	ErrDivisionByZero    = errors.New("division by zero")
)

// RuntimeError is a condition raised while interpreting. Its cause is one
// of the Err* sentinels above.
type RuntimeError struct {
	cause  error
	detail string
}

func newRuntimeError(cause error, format string, args ...any) *RuntimeError {
	return &RuntimeError{cause, fmt.Sprintf(format, args...)}
}

func (e *RuntimeError) Error() string {
	if e.detail == "" {
		return "Runtime error: " + e.cause.Error()
	}
	return "Runtime error: " + e.cause.Error() + ": " + e.detail
}

// Cause lets errors.Cause reach the sentinel.
func (e *RuntimeError) Cause() error {
	return e.cause
}

func (e *RuntimeError) Unwrap() error {
	return e.cause
}
