package domain

import "errors"

// Sentinel errors for the domain layer. Handlers map these to HTTP responses
// with errors.Is.
var (
	ErrNotFound          = errors.New("module not found")
	ErrInvalidIdentifier = errors.New("invalid module identifier")
	ErrMalformedModule   = errors.New("module content is not valid JSON")
)
