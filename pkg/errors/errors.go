package errors

import "net/http"

// HTTPError is an error that knows how it should be rendered over HTTP.
type HTTPError struct {
	Code       int    `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
}

// NewHTTPError creates an HTTPError. The status is derived from code when code is a valid HTTP status.
func NewHTTPError(code int, message string) *HTTPError {
	status := http.StatusBadRequest
	if code >= 100 && code <= 599 {
		status = code
	}
	return &HTTPError{Code: code, Message: message, StatusCode: status}
}

// Error implements error.
func (e *HTTPError) Error() string {
	return e.Message
}

// ValidationError describes one invalid request field.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error implements error.
func (e ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
