package domain

import "errors"

// Domain errors (no external dependencies).
var (
	ErrNotFound           = errors.New("resource not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email is already registered")
	ErrInvalidInput       = errors.New("invalid input")
	ErrDuplicate          = errors.New("duplicate resource")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("access denied")
	ErrConflict           = errors.New("conflict with current state")

	// Pricing engine failures. The first two are permanent configuration
	// problems the caller must surface; ErrStoreUnavailable is transient and
	// safe to retry because the engine performs no writes.
	ErrProductNotFound    = errors.New("product not found")
	ErrPriceConfigMissing = errors.New("no active price configuration for channel")
	ErrStoreUnavailable   = errors.New("data store unavailable")
)
