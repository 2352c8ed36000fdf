package workspace

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a lookup by path or ID yields nothing.
var ErrNotFound = errors.New("not found")

// APIError is a failure reported by the workspace itself, either through a
// non-zero envelope code or a non-2xx HTTP status.
type APIError struct {
	// Endpoint is the API path that failed, e.g. "/api/block/updateBlock".
	Endpoint string
	// Code is the envelope code. Zero when the failure was an HTTP status.
	Code int
	// StatusCode is the HTTP status of the response.
	StatusCode int
	// Message is the workspace's explanation, passed through verbatim.
	Message string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("workspace %s failed (code %d): %s", e.Endpoint, e.Code, e.Message)
	}
	return fmt.Sprintf("workspace %s failed (HTTP %d): %s", e.Endpoint, e.StatusCode, e.Message)
}

// IsAPIError reports whether err is or wraps an *APIError.
func IsAPIError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr)
}
