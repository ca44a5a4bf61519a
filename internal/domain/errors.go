package domain

import "errors"

// Sentinel errors shared across packages.
var (
	// ErrInvalidImport is returned when an imported snapshot lacks a
	// recognizable schema version or cannot be parsed.
	ErrInvalidImport = errors.New("invalid progression snapshot")
)
