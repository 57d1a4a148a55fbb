// Package errors provides the coded error type shared by the key space and
// the commands built on it.
package errors

import "fmt"

// Error is the domain error type returned by every command.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message, sent to clients
	Cause   error  // Wrapped underlying error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error by code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// Reply renders the error the way it is sent over the wire.
func (e *Error) Reply() string {
	return e.Code.Prefix() + " " + e.Error()
}

func NewError(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

func WrapError(code Code, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}
