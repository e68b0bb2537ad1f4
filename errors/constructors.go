package errors

// New creates a new AppError with the given code and message.
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Validation creates a validation error.
func Validation(message string) *AppError {
	return New(ErrCodeValidation, message)
}

// NotFound creates a not found error.
func NotFound(resource string) *AppError {
	return New(ErrCodeNotFound, resource+" not found")
}

// Conflict creates a conflict error.
func Conflict(message string) *AppError {
	return New(ErrCodeConflict, message)
}

// Internal creates an internal error.
func Internal(message string) *AppError {
	return New(ErrCodeInternal, message)
}

// Wrap creates an AppError with code and message around cause.
// A nil cause yields nil.
func Wrap(cause error, code ErrorCode, message string) error {
	if cause == nil {
		return nil
	}
	return New(code, message).WithCause(cause)
}
