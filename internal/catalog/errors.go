package catalog

import "errors"

// Sentinel errors for lookup misses. A miss is an ordinary, recoverable
// outcome; callers translate these into transport-level not-found responses.
var (
	ErrEndpointNotFound = errors.New("endpoint not found")
	ErrToolNotFound     = errors.New("tool not found")
)
