package utils

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/lib/pq"

	"github.com/khairuladnan/StudentMS_Backend/internal/constants"
)

// Custom error types for the application
var (
	ErrNotFound           = errors.New("resource not found")
	ErrUnauthenticated    = errors.New("unauthenticated access")
	ErrForbidden          = errors.New("forbidden access")
	ErrBadRequest         = errors.New("invalid request")
	ErrInternalServer     = errors.New("internal server error")
	ErrValidation         = errors.New("validation error")
	ErrConflict           = errors.New("duplicate resource")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrExpiredToken       = errors.New("expired token")
	ErrInvalidToken       = errors.New("invalid token")
)

// AppError represents an application error with additional context.
type AppError struct {
	Err        error    // The underlying error category
	StatusCode int      // HTTP status code
	Message    string   // User-friendly error message
	DevInfo    string   // Additional information for developers, logged but never sent
	Violations []string // Field violations for validation errors, in input order
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if len(e.Violations) > 0 {
		return fmt.Sprintf("%s: %s", e.Message, strings.Join(e.Violations, "; "))
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewValidationFailedError creates a validation error carrying every
// violation found in the request, not just the first.
func NewValidationFailedError(violations []string) *AppError {
	return &AppError{
		Err:        ErrValidation,
		StatusCode: http.StatusBadRequest,
		Message:    constants.MsgValidationFailed,
		Violations: violations,
	}
}

// NewBadRequestError creates a new bad request error.
func NewBadRequestError(message string) *AppError {
	return &AppError{
		Err:        ErrBadRequest,
		StatusCode: http.StatusBadRequest,
		Message:    message,
	}
}

// NewNotFoundError creates a new not found error.
func NewNotFoundError(message string) *AppError {
	if message == "" {
		message = constants.MsgResourceNotFound
	}
	return &AppError{
		Err:        ErrNotFound,
		StatusCode: http.StatusNotFound,
		Message:    message,
	}
}

// NewConflictError creates a new duplicate resource error.
func NewConflictError(message string) *AppError {
	return &AppError{
		Err:        ErrConflict,
		StatusCode: http.StatusConflict,
		Message:    message,
	}
}

// NewInvalidCredentialsError creates the unified login failure error. The
// message never distinguishes an unknown email from a wrong password.
func NewInvalidCredentialsError() *AppError {
	return &AppError{
		Err:        ErrInvalidCredentials,
		StatusCode: http.StatusUnauthorized,
		Message:    constants.MsgInvalidCredentials,
	}
}

// NewUnauthenticatedError creates an error for requests without credentials.
func NewUnauthenticatedError(message string) *AppError {
	if message == "" {
		message = constants.MsgNoToken
	}
	return &AppError{
		Err:        ErrUnauthenticated,
		StatusCode: http.StatusUnauthorized,
		Message:    message,
	}
}

// NewExpiredTokenError creates an error for tokens past their expiry.
func NewExpiredTokenError() *AppError {
	return &AppError{
		Err:        ErrExpiredToken,
		StatusCode: http.StatusForbidden,
		Message:    constants.MsgInvalidToken,
	}
}

// NewInvalidTokenError creates an error for malformed or badly signed tokens.
func NewInvalidTokenError() *AppError {
	return &AppError{
		Err:        ErrInvalidToken,
		StatusCode: http.StatusForbidden,
		Message:    constants.MsgInvalidToken,
	}
}

// NewInternalServerError creates a new internal server error. The underlying
// error is retained in DevInfo for logging only.
func NewInternalServerError(err error) *AppError {
	devInfo := ""
	if err != nil {
		devInfo = err.Error()
	}
	return &AppError{
		Err:        ErrInternalServer,
		StatusCode: http.StatusInternalServerError,
		Message:    constants.MsgInternalServerError,
		DevInfo:    devInfo,
	}
}

// ParseError attempts to parse various types of errors into an AppError.
func ParseError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	switch {
	case errors.Is(err, ErrNotFound):
		return NewNotFoundError("")
	case errors.Is(err, ErrUnauthenticated):
		return NewUnauthenticatedError("")
	case errors.Is(err, ErrInvalidCredentials):
		return NewInvalidCredentialsError()
	case errors.Is(err, ErrExpiredToken):
		return NewExpiredTokenError()
	case errors.Is(err, ErrInvalidToken):
		return NewInvalidTokenError()
	case errors.Is(err, ErrConflict):
		return NewConflictError(err.Error())
	case errors.Is(err, ErrBadRequest):
		return NewBadRequestError(err.Error())
	}

	// PostgreSQL errors carry class codes; the uniqueness violation on the
	// email index is how a lost insert race surfaces.
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "23505": // unique_violation
			if strings.Contains(pqErr.Constraint, "email") {
				return &AppError{
					Err:        ErrConflict,
					StatusCode: http.StatusConflict,
					Message:    constants.MsgEmailRegistered,
					DevInfo:    pqErr.Error(),
				}
			}
			return &AppError{
				Err:        ErrConflict,
				StatusCode: http.StatusConflict,
				Message:    "A resource with the same unique identifier already exists",
				DevInfo:    pqErr.Error(),
			}
		case "23502": // not_null_violation
			return &AppError{
				Err:        ErrValidation,
				StatusCode: http.StatusBadRequest,
				Message:    fmt.Sprintf("The %s field cannot be empty", pqErr.Column),
				DevInfo:    pqErr.Error(),
			}
		}
	}

	errMsg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(errMsg, "duplicate key") || strings.Contains(errMsg, "unique constraint"):
		return &AppError{
			Err:        ErrConflict,
			StatusCode: http.StatusConflict,
			Message:    constants.MsgEmailRegistered,
			DevInfo:    err.Error(),
		}
	case strings.Contains(errMsg, "no rows"):
		return NewNotFoundError("")
	}

	return NewInternalServerError(err)
}

// IsNotFoundError checks if an error is a not found error.
func IsNotFoundError(err error) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.StatusCode == http.StatusNotFound
	}
	return errors.Is(err, ErrNotFound)
}

// IsConflictError checks if an error is a duplicate resource error.
func IsConflictError(err error) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.StatusCode == http.StatusConflict
	}
	return errors.Is(err, ErrConflict)
}

// IsValidationError checks if an error is a validation error.
func IsValidationError(err error) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return errors.Is(appErr.Err, ErrValidation)
	}
	return errors.Is(err, ErrValidation)
}

// StatusCode returns the HTTP status code for an error.
func StatusCode(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}
