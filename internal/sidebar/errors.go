package sidebar

import "errors"

var (
	// ErrInputNotFound is returned when the sidebar export file does not exist
	ErrInputNotFound = errors.New("sidebar file not found")
	// ErrMalformedInput is returned when the export is not valid JSON after repair
	ErrMalformedInput = errors.New("malformed sidebar JSON")
	// ErrNoEligibleContainer is returned when no container holds both spaces and items
	ErrNoEligibleContainer = errors.New("no container with spaces and items")
)
