package config

import "errors"

// Validation errors returned by [ClientConfig] validation when required
// configuration groups are incomplete.
var (
	// ErrInvalidAPIConfigs indicates invalid remote API settings
	// (for example, a missing base URL).
	ErrInvalidAPIConfigs = errors.New("invalid api configuration")
)
