package backend

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrCartNotFound marks the one 404 the storefront treats as a legitimate
// state: no cart exists yet for the current identity.
var ErrCartNotFound = errors.New("no cart for current user")

// APIError carries the backend's HTTP status and message through to the
// caller unchanged, for the caller to interpret.
type APIError struct {
	StatusCode int    `json:"-"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("backend request failed with status %d", e.StatusCode)
}

// IsNotFound reports whether err is a backend 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusNotFound
	}
	return false
}

// UserMessage extracts a message suitable for a toast: the backend's own
// message when present, otherwise the given fallback.
func UserMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
