package api

import (
	"errors"
	"fmt"
)

// Sentinel conditions callers branch on with errors.Is.
var (
	// ErrMissingParameter means a required identity or file id was
	// absent. Reported before any network call.
	ErrMissingParameter = errors.New("missing required parameter")
	// ErrTimeout means a bounded operation exceeded its deadline and
	// is worth retrying.
	ErrTimeout = errors.New("request timed out")
)

// APIError is a non-2xx response from the backend, carrying whatever
// message the server put in its "error" field.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server returned status %d", e.Status)
	}
	return e.Message
}
