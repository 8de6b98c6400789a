// Package apperrors defines the typed error taxonomy shared by the
// application-lifecycle engine and the HTTP layer. Handlers map codes to
// status codes; everything that is not one of the expected codes is Internal.
package apperrors

import (
	"errors"
	"fmt"
)

type Code string

const (
	CodeNotFound          Code = "not_found"
	CodeForbidden         Code = "forbidden"
	CodeDuplicate         Code = "duplicate_application"
	CodeInvalidTransition Code = "invalid_transition"
	CodeConflict          Code = "conflict"
	CodeInternal          Code = "internal"
)

type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

func New(code Code, message string, err error) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

func NotFound(message string) *Error  { return New(CodeNotFound, message, nil) }
func Forbidden(message string) *Error { return New(CodeForbidden, message, nil) }
func Duplicate(message string) *Error { return New(CodeDuplicate, message, nil) }
func Conflict(message string) *Error  { return New(CodeConflict, message, nil) }

func InvalidTransition(from, to string) *Error {
	return New(CodeInvalidTransition, fmt.Sprintf("cannot transition from %s to %s", from, to), nil)
}

func Internal(message string, err error) *Error {
	return New(CodeInternal, message, err)
}

// Is reports whether err carries the given code. A nil or untyped error never
// matches; untyped errors are treated as Internal by CodeOf.
func Is(err error, code Code) bool {
	return CodeOf(err) == code && err != nil
}

// CodeOf extracts the taxonomy code from err, defaulting to Internal.
func CodeOf(err error) Code {
	if err == nil {
		return ""
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeInternal
}
