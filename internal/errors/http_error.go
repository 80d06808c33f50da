package errors

import (
	stderrors "errors"
	"net/http"
)

// HTTPError represents an error with an associated HTTP status code.
type HTTPError struct {
	Code    int
	Message string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTPError with the given code and message.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{
		Code:    code,
		Message: message,
	}
}

// Helper for common errors
var (
	ErrUnauthorized = func(msg string) *HTTPError { return NewHTTPError(http.StatusUnauthorized, msg) }
	ErrBadRequest   = func(msg string) *HTTPError { return NewHTTPError(http.StatusBadRequest, msg) }
)

// FromError maps a service error to the status the API answers with.
// Store failures never leak their cause to the client.
func FromError(err error) *HTTPError {
	var httpErr *HTTPError
	switch {
	case stderrors.As(err, &httpErr):
		return httpErr
	case stderrors.Is(err, ErrNoAvailability):
		return NewHTTPError(http.StatusConflict, err.Error())
	case IsValidation(err):
		return ErrBadRequest(err.Error())
	default:
		return NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}
}
