package errors

import "errors"

// Domain errors
var (
	// Target validation errors, surfaced before any probe runs.
	ErrEmptyTarget   = errors.New("target cannot be empty")
	ErrInvalidTarget = errors.New("target is not a valid domain or URL")

	// API errors
	ErrMissingURL = errors.New("url is required")
)
