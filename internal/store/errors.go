package store

import "errors"

var (
	// ErrAuthRequired is returned when an operation needs a bearer token
	// and the identity provider has none. The operation aborts before any
	// network call; this is not a transport failure.
	ErrAuthRequired = errors.New("authentication required")

	// ErrValidation is wrapped into errors returned when a client-side
	// precondition fails (for example an empty required field). The
	// gateway is never called in that case.
	ErrValidation = errors.New("validation failed")
)
