package domain

import "errors"

// Failure taxonomy for reminder operations. The handler matches these with
// errors.Is to build user-facing responses.
var (
	ErrAddressNotFound        = errors.New("address not found")
	ErrResolverUnavailable    = errors.New("geocoding service unavailable")
	ErrCalculationUnavailable = errors.New("sunset calculation unavailable")
	ErrStorageUnavailable     = errors.New("reminder storage unavailable")

	// Informational outcomes, not real failures.
	ErrAlreadySubscribed = errors.New("channel already has a sunset reminder")
	ErrNotSubscribed     = errors.New("channel has no sunset reminder")
)
