package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseEnv_AllVariables verifies that every env-mapped field is picked up
// under its prefixed name.
func TestParseEnv_AllVariables(t *testing.T) {
	t.Setenv("API_BASE_URL", "http://env:8000/api")
	t.Setenv("API_REQUEST_TIMEOUT", "45s")
	t.Setenv("IDENTITY_SIGN_IN_URL", "https://identity.example.com/signin")
	t.Setenv("IDENTITY_REFRESH_URL", "https://identity.example.com/token")
	t.Setenv("IDENTITY_API_KEY", "env-key")
	t.Setenv("CACHE_DECK_LIST_TTL", "3m")
	t.Setenv("CONFIG", "/etc/wordbook/config.json")

	var cfg StructuredConfig
	require.NoError(t, parseEnv(&cfg))

	assert.Equal(t, "http://env:8000/api", cfg.API.BaseURL)
	assert.Equal(t, 45*time.Second, cfg.API.RequestTimeout)
	assert.Equal(t, "https://identity.example.com/signin", cfg.Identity.SignInURL)
	assert.Equal(t, "https://identity.example.com/token", cfg.Identity.RefreshURL)
	assert.Equal(t, "env-key", cfg.Identity.APIKey)
	assert.Equal(t, 3*time.Minute, cfg.Cache.DeckListTTL)
	assert.Equal(t, "/etc/wordbook/config.json", cfg.JSONFilePath)
}

// TestParseEnv_EmptyEnvironment verifies that absent variables do not cause
// an error.
func TestParseEnv_EmptyEnvironment(t *testing.T) {
	var cfg StructuredConfig
	require.NoError(t, parseEnv(&cfg))
}

// TestParseEnv_InvalidDuration verifies that a malformed duration value is
// reported as an error.
func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("API_REQUEST_TIMEOUT", "not-a-duration")

	var cfg StructuredConfig
	assert.Error(t, parseEnv(&cfg))
}
