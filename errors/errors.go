package errors

import (
	stderrors "errors"
	"fmt"
)

// AppError is the unified application error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// ExitCode is the recommended process exit code for this error.
	ExitCode int `json:"-"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError with the exit code derived from code.
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		ExitCode: ExitCodeFor(code),
	}
}

// --- Common Error Constructors ---

// InvalidInput creates a new AppError for invalid input.
func InvalidInput(field, reason string) *AppError {
	err := New(ErrCodeInvalidInput, fmt.Sprintf("Invalid input: %s", reason))
	if field != "" {
		err.WithDetail("field", field)
	}
	return err
}

// Validation creates a new AppError for validation errors.
func Validation(message string) *AppError {
	return New(ErrCodeInvalidInput, message)
}

// MissingField creates a new AppError for a missing required field.
func MissingField(field string) *AppError {
	return New(ErrCodeMissingField, fmt.Sprintf("Missing required field: %s", field)).
		WithDetail("field", field)
}

// InvalidFormat creates a new AppError for an invalid field format.
func InvalidFormat(field, expectedFormat string) *AppError {
	return New(ErrCodeInvalidFormat, fmt.Sprintf("Invalid format for %s. Expected: %s", field, expectedFormat)).
		WithDetail("field", field).
		WithDetail("expected_format", expectedFormat)
}

// UnknownStage creates a new AppError for a stage missing from the catalogue.
func UnknownStage(stage string) *AppError {
	return New(ErrCodeUnknownStage, fmt.Sprintf("Unknown stage: %s", stage)).
		WithDetail("stage", stage)
}

// UnknownReducer creates a new AppError for a reducer missing from the catalogue.
func UnknownReducer(name string) *AppError {
	return New(ErrCodeUnknownReducer, fmt.Sprintf("Unknown reducer: %s", name)).
		WithDetail("reducer", name)
}

// SourceFailed creates a new AppError for a source that stopped with an error.
func SourceFailed(source string, cause error) *AppError {
	return New(ErrCodeSourceFailed, fmt.Sprintf("The %s source failed.", source)).
		WithDetail("source", source).
		WithCause(cause)
}

// Internal creates a new AppError for an unexpected failure.
func Internal(cause error) *AppError {
	return New(ErrCodeInternal, "An unexpected error occurred.").WithCause(cause)
}

// IsAppError checks if an error is an AppError.
func IsAppError(err error) bool {
	var appErr *AppError
	return stderrors.As(err, &appErr)
}

// AsAppError converts an error to an AppError if possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// HasCode reports whether err is an AppError carrying code.
func HasCode(err error, code ErrorCode) bool {
	appErr, ok := AsAppError(err)
	return ok && appErr.Code == code
}
