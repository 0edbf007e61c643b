package olog

import (
	"errors"
	"fmt"
)

// ErrFileNotFound reports that a local file scheduled for upload does not
// exist. It is raised before any network call is made.
var ErrFileNotFound = errors.New("attachment file not found")

// TransportError reports that no HTTP response was obtained: DNS or connect
// failure, connection reset, or the configured timeout elapsing. The
// underlying fault is available via Unwrap.
type TransportError struct {
	Op  string // "METHOD /path"
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("olog: %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// APIError reports a well-formed HTTP response whose status code indicates
// failure. Body holds whatever diagnostic text the service returned.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("olog: server returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("olog: server returned status %d: %s", e.StatusCode, e.Body)
}
