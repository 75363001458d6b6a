package transport

import "time"

// Constants for default server configuration.
const (
	// DefaultServerURL is the default URL for the DocuMind backend.
	DefaultServerURL = "http://localhost:5000"
	// APIPrefix is the versioned route prefix all endpoints share.
	APIPrefix = "/api/v1"
)

// Request bounds. Delete keeps its own tighter deadline so a slow
// delete can be reported as retry-eligible rather than a generic
// failure.
const (
	DefaultTimeout = 15 * time.Second
	DeleteTimeout  = 10 * time.Second
)
