package upstream

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNoSession       = errors.New("upstream: no session on request context")
	ErrNotFound        = errors.New("upstream: resource not found")
	ErrUnauthorized    = errors.New("upstream: unauthorized")
	ErrRejected        = errors.New("upstream: request rejected")
	ErrUnavailable     = errors.New("upstream: service unavailable")
	ErrInvalidResponse = errors.New("upstream: invalid response body")
)

// APIError represents a non-2xx response from the upstream API
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("upstream API error [%d] %s %s", e.StatusCode, e.Method, e.Path)
	}
	return fmt.Sprintf("upstream API error [%d] %s %s: %s", e.StatusCode, e.Method, e.Path, e.Message)
}

// Unwrap lets callers match the status class with errors.Is.
func (e *APIError) Unwrap() error {
	switch {
	case e.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case e.StatusCode == http.StatusUnauthorized, e.StatusCode == http.StatusForbidden:
		return ErrUnauthorized
	case e.StatusCode == http.StatusBadRequest, e.StatusCode == http.StatusUnprocessableEntity, e.StatusCode == http.StatusConflict:
		return ErrRejected
	case e.StatusCode >= 500:
		return ErrUnavailable
	default:
		return nil
	}
}
