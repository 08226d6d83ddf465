package services

import "errors"

// Domain error values returned by the services. Handlers map these to HTTP
// statuses with errors.Is; anything else is treated as a storage failure.
var (
	ErrValidation         = errors.New("validation failed")
	ErrDuplicateEmail     = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("unauthorized")
	ErrNotFound           = errors.New("post not found")
)
