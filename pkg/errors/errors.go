package errors

import "net/http"

// HTTPError carries an HTTP status code alongside a caller-facing message.
// Delivery layers map domain errors into HTTPError via their mapError helpers.
type HTTPError struct {
	Code    int
	Message string
}

// NewHTTPError creates an HTTPError with the given status code and message.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

func (e *HTTPError) Error() string {
	return e.Message
}

// ErrInternalServerError is the opaque failure surfaced for any
// downstream error the delivery layer does not map explicitly.
var ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "Internal Server Error")
