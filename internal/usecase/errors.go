package usecase

import "errors"

// Closed set of failure kinds. Handlers match with errors.Is and map each kind
// to exactly one HTTP status; nothing else about an error reaches the client.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("access denied")
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("already exists")
	ErrValidation         = errors.New("invalid input")

	// ErrOAuthDisabled is returned when Google credentials are not configured.
	ErrOAuthDisabled = errors.New("oauth is not configured")
)
