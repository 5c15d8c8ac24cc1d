package apperrors

import "errors"

// Resource errors
var (
	ErrStudentNotFound    = errors.New("student not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// User errors
var (
	ErrUserNotFound          = errors.New("user not found")
	ErrUsernameAlreadyExists = errors.New("username already exists")
)

// Authentication errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenNotFound      = errors.New("token not found")
)

// Authorization errors
var (
	ErrPermissionDenied = errors.New("permission denied")
)

// Validation errors
var (
	ErrValidationFailed = errors.New("validation failed")
)

// CustomError carries a human-readable message alongside a sentinel error,
// so callers can match on the sentinel while responses surface the message.
type CustomError struct {
	Err     error
	Message string
}

// Error implements the error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements the errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError wrapping err with a message
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// NewValidationError creates a validation failure with a message
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// NewNotFoundError creates a student not-found error with a message
func NewNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrStudentNotFound,
		Message: message,
	}
}
