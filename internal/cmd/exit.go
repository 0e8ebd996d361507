// Package cmd provides command implementations for opponentgen.
package cmd

// Exit codes.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitValidationError indicates invalid input: a non-integer count or bad settings.
	ExitValidationError = 2

	// ExitPermissionDenied indicates a file could not be read or written due to permissions.
	ExitPermissionDenied = 4

	// ExitNotFound indicates a template or config file was not found.
	ExitNotFound = 5
)
