// Package errors provides typed application errors for the lens tooling.
package errors

import (
	"errors"
	"fmt"
)

// AsType is a generic error type assertion.
// Returns the error as type T and true if the error chain contains type T.
func AsType[T error](err error) (T, bool) {
	var target T
	if errors.As(err, &target) {
		return target, true
	}
	return target, false
}

// ErrorCode represents application error categories.
type ErrorCode string

// Error codes.
const (
	ErrCodeValidation ErrorCode = "VALIDATION_ERROR"
	ErrCodeNotFound   ErrorCode = "NOT_FOUND"
	ErrCodeConflict   ErrorCode = "CONFLICT"
	ErrCodeInternal   ErrorCode = "INTERNAL_ERROR"
)

// AppError is the standard application error type.
type AppError struct {
	Code    ErrorCode      `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
	cause   error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As.
func (e *AppError) Unwrap() error {
	return e.cause
}

// WithCause sets the underlying cause.
func (e *AppError) WithCause(cause error) *AppError {
	e.cause = cause
	return e
}

// WithDetail adds a detail to the error.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// Is matches another *AppError by code, or falls through to the cause.
func (e *AppError) Is(target error) bool {
	if t, ok := target.(*AppError); ok {
		return e.Code == t.Code
	}
	return errors.Is(e.cause, target)
}

// ExitCode returns the process exit status used by the CLI for this error.
func (e *AppError) ExitCode() int {
	if code, ok := exitCodeMap[e.Code]; ok {
		return code
	}
	return 1
}

var exitCodeMap = map[ErrorCode]int{
	ErrCodeValidation: 2,
	ErrCodeNotFound:   3,
	ErrCodeConflict:   4,
	ErrCodeInternal:   1,
}

// CodeOf returns the code of the first AppError in err's chain, or
// ErrCodeInternal when there is none.
func CodeOf(err error) ErrorCode {
	if appErr, ok := AsType[*AppError](err); ok {
		return appErr.Code
	}
	return ErrCodeInternal
}
