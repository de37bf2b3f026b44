// Package numerr defines the failure taxonomy for json-number.
//
// Every error returned by the formatter, the number model, or the CLI maps to
// exactly one FailureClass, which determines the exit code and lets tests
// check how something failed, not just that it did.
package numerr

import (
	"errors"
	"fmt"
)

// FailureClass is a stable failure category.
type FailureClass string

const (
	NotFinite       FailureClass = "NOT_FINITE"
	OutOfRange      FailureClass = "OUT_OF_RANGE"
	InvalidGrammar  FailureClass = "INVALID_GRAMMAR"
	NumberOverflow  FailureClass = "NUMBER_OVERFLOW"
	NumberUnderflow FailureClass = "NUMBER_UNDERFLOW"
	NotShortest     FailureClass = "NOT_SHORTEST"
	CLIUsage        FailureClass = "CLI_USAGE"
	InternalIO      FailureClass = "INTERNAL_IO"
	InternalError   FailureClass = "INTERNAL_ERROR"
)

// ExitCode returns the process exit code for this failure class.
func (fc FailureClass) ExitCode() int {
	switch fc {
	case InternalIO, InternalError:
		return 10
	default:
		return 2
	}
}

// Error is the structured error type for all json-number failures.
// Offset is a byte offset into the offending literal, or -1.
type Error struct {
	Class   FailureClass
	Offset  int
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	if e.Offset >= 0 {
		return fmt.Sprintf("numerr: %s at byte %d: %s", e.Class, e.Offset, msg)
	}
	return fmt.Sprintf("numerr: %s: %s", e.Class, msg)
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given class and message.
func New(class FailureClass, offset int, message string) *Error {
	return &Error{Class: class, Offset: offset, Message: message}
}

// Newf is New with a formatted message.
func Newf(class FailureClass, offset int, format string, args ...any) *Error {
	return &Error{Class: class, Offset: offset, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(class FailureClass, offset int, message string, cause error) *Error {
	return &Error{Class: class, Offset: offset, Message: message, Cause: cause}
}

// ClassOf returns the failure class carried by err, or InternalError when
// err does not wrap an *Error.
func ClassOf(err error) FailureClass {
	var e *Error
	if errors.As(err, &e) {
		return e.Class
	}
	return InternalError
}
