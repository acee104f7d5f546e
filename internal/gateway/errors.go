package gateway

import "errors"

// Sentinel errors wrapped into the errors produced by mapHTTPError so that
// callers can branch with errors.Is without inspecting status codes.
var (
	ErrBadRequest   = errors.New("bad request")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
)
