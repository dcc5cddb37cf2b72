package repository

import "errors"

// Sentinel kinds for roster errors.
var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidAllocation = errors.New("invalid allocation")
	ErrInvalidRoster     = errors.New("invalid roster")
)
