// Package errors defines the error taxonomy of the text search service.
// The core index has no failure path; errors exist only at the document
// loading boundary and the HTTP surface.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrDocumentLoad means the document text could not be obtained. It
	// aborts construction entirely; no partial index is ever produced.
	ErrDocumentLoad = errors.New("document load failed")

	// ErrInvalidInput covers malformed query parameters at the HTTP
	// boundary. An unknown query word is not an error.
	ErrInvalidInput = errors.New("invalid input")

	ErrTimeout  = errors.New("operation timed out")
	ErrInternal = errors.New("internal error")
)

// AppError pairs a sentinel error with a message and the HTTP status to
// report it with.
type AppError struct {
	Err        error
	Message    string
	StatusCode int
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Err.Error(), e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New wraps a sentinel in an AppError.
func New(sentinel error, statusCode int, message string) *AppError {
	return &AppError{
		Err:        sentinel,
		Message:    message,
		StatusCode: statusCode,
	}
}

// Newf wraps a sentinel in an AppError with a formatted message.
func Newf(sentinel error, statusCode int, format string, args ...any) *AppError {
	return &AppError{
		Err:        sentinel,
		Message:    fmt.Sprintf(format, args...),
		StatusCode: statusCode,
	}
}

// HTTPStatusCode maps err to the HTTP status it should be reported with.
func HTTPStatusCode(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	switch {
	case errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, ErrDocumentLoad), errors.Is(err, ErrTimeout):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
