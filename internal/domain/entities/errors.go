package entities

import "errors"

// Error categories shared by the domain and usecase layers.
//
// Specific errors wrap one of these with fmt.Errorf("%w: ...") so callers can
// tell a correction (validation) from a retry (integration) with errors.Is.
var (
	ErrValidation   = errors.New("validation error")
	ErrPermission   = errors.New("permission denied")
	ErrNotFound     = errors.New("not found")
	ErrInvalidState = errors.New("invalid state")
	ErrIntegration  = errors.New("integration unavailable")
)
