package apperror

import (
	"errors"
	"net/http"
)

// ValidationMessage is the user-facing message attached to every validation failure.
const ValidationMessage = "Validation error"

// AppError is a custom error type that includes an HTTP status code and optional field errors.
type AppError struct {
	Code    int      // HTTP Status Code (e.g., 400, 404)
	Message string   // User-facing error message
	Errors  []string // Field-level messages, rendered in the "errors" array of the envelope
	Err     error    // The underlying error, if any (not exposed to user)
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError with a status code and message.
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new AppError wrapping an existing error.
func Wrap(err error, code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Validation creates a 400 AppError carrying one message per failed field rule.
func Validation(messages ...string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: ValidationMessage,
		Errors:  messages,
	}
}

// IsValidation reports whether err is a validation AppError.
func IsValidation(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == http.StatusBadRequest && appErr.Message == ValidationMessage
}
