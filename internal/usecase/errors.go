package usecase

import "errors"

// Sentinel errors for request-level failures. Handlers match these with
// errors.Is; anything else coming out of a service is treated as an
// internal failure and never echoed to clients.
var (
	ErrValidation = errors.New("validation failed")
	ErrInvalidID  = errors.New("invalid booking ID")
)
