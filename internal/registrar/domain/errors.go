package domain

import (
	"errors"

	"nathanbeddoewebdev/registrar/internal/apierr"
)

// Re-export shared sentinel errors so registrar callers do not need to import
// the error taxonomy package directly.
var (
	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = apierr.ErrNotFound

	// ErrUnauthorized indicates missing or invalid credentials.
	ErrUnauthorized = apierr.ErrUnauthorized

	// ErrRateLimited indicates the provider throttled the request.
	ErrRateLimited = apierr.ErrRateLimited

	// ErrConflict indicates a state or uniqueness conflict.
	ErrConflict = apierr.ErrConflict

	// ErrInvalidRequest indicates input rejected before any call was made.
	ErrInvalidRequest = apierr.ErrInvalidRequest
)

// ErrUnsupported indicates the provider lacks the requested capability.
var ErrUnsupported = errors.New("operation not supported by provider")
