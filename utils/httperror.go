package utils

import "net/http"

// HTTPError is an error carrying the HTTP status it should be answered
// with. Services return these so handlers can translate failures without
// string matching.
type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string { return e.Message }

func NewHTTPError(status int, message string) *HTTPError {
	return &HTTPError{Status: status, Message: message}
}

func BadRequest(message string) *HTTPError {
	return NewHTTPError(http.StatusBadRequest, message)
}

func NotFound(message string) *HTTPError {
	return NewHTTPError(http.StatusNotFound, message)
}

func Unauthorized(message string) *HTTPError {
	return NewHTTPError(http.StatusUnauthorized, message)
}

// StatusOf extracts the HTTP status from an error, defaulting to 500.
func StatusOf(err error) int {
	if httpErr, ok := err.(*HTTPError); ok {
		return httpErr.Status
	}
	return http.StatusInternalServerError
}
