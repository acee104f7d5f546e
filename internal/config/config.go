// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Masaki Kondo

// Package config assembles the client configuration from environment
// variables, command-line flags, and an optional JSON file. The three layers
// are merged in that order; a value set by an earlier layer wins.
package config

import (
	"fmt"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-wordbook client. It aggregates all sub-configurations and is populated
// by merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// API holds the remote wordbook API address and timeouts.
	API API `envPrefix:"API_"`

	// Identity holds the identity-provider endpoints and key.
	Identity Identity `envPrefix:"IDENTITY_"`

	// Cache holds client cache policy settings.
	Cache Cache `envPrefix:"CACHE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// API holds network settings for the remote wordbook API.
type API struct {
	// BaseURL is the base URL of the wordbook REST API,
	// e.g. "http://localhost:8000/api".
	// Env: API_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout is the default timeout for outbound requests.
	// Env: API_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Identity holds settings for the external identity provider that issues
// bearer tokens.
type Identity struct {
	// SignInURL is the password sign-in endpoint.
	// Env: IDENTITY_SIGN_IN_URL
	SignInURL string `env:"SIGN_IN_URL"`

	// RefreshURL is the token refresh endpoint.
	// Env: IDENTITY_REFRESH_URL
	RefreshURL string `env:"REFRESH_URL"`

	// APIKey is the provider project key appended to both endpoints.
	// Env: IDENTITY_API_KEY
	APIKey string `env:"API_KEY"`
}

// Cache holds cache policy settings for the entity stores.
type Cache struct {
	// DeckListTTL is how long the combined owned+public wordbook listing
	// stays fresh before FetchAllDecks goes back to the network.
	// Env: CACHE_DECK_LIST_TTL
	DeckListTTL time.Duration `env:"DECK_LIST_TTL"`
}

// ClientConfig is the validated configuration view handed to the rest of the
// client at startup.
type ClientConfig struct {
	API      API
	Identity Identity
	Cache    Cache
}

// GetClientConfig builds and validates the client configuration from the
// merged layers (env, flags, optional JSON file).
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := getStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		API:      cfg.API,
		Identity: cfg.Identity,
		Cache:    cfg.Cache,
	}
	clientCfg.applyDefaults()

	return clientCfg, clientCfg.validate()
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.API.RequestTimeout == 0 {
		cfg.API.RequestTimeout = 15 * time.Second
	}
	if cfg.Cache.DeckListTTL == 0 {
		cfg.Cache.DeckListTTL = 5 * time.Minute
	}
}

func (cfg *ClientConfig) validate() error {
	if cfg.API.BaseURL == "" {
		return ErrInvalidAPIConfigs
	}
	return nil
}

func getStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
