package errors

import "errors"

// Sentinel errors for known conditions.
var (
	// ErrValidation indicates invalid input: a bad count or bad settings.
	ErrValidation = errors.New("validation error")

	// ErrPermission indicates insufficient filesystem permissions.
	ErrPermission = errors.New("permission denied")

	// ErrNotFound indicates a template or config file was not found.
	ErrNotFound = errors.New("not found")
)
