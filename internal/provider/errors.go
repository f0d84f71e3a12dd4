package provider

import (
	"errors"
	"fmt"
)

// ErrMissingCredential is returned by clients that require an API key when
// none is configured. Callers treat it as "provider unavailable" and move on
// to the next candidate without attempting a network call.
var ErrMissingCredential = errors.New("provider credential not configured")

// StatusError is a non-2xx upstream response.
type StatusError struct {
	Provider string
	Path     string
	Status   int
	Body     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s returned %d: %s", e.Provider, e.Path, e.Status, e.Body)
}

// Truncate returns a bounded string representation for error messages.
func Truncate(b []byte, maxLen int) string {
	if len(b) <= maxLen {
		return string(b)
	}
	return string(b[:maxLen]) + "..."
}
