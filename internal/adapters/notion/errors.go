package notion

import "errors"

// Sentinel kinds for archive errors.
var (
	ErrNotConfigured = errors.New("notion api key or database id is not configured")
	ErrUpstream      = errors.New("notion api call failed")
	ErrInvalidJob    = errors.New("archive job has no record")
)
