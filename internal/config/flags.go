package config

import (
	"flag"
	"time"
)

// parseFlags parses all configuration flags.
//
// Flags:
//
//	-a API base URL
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-sign-in-url identity provider sign-in endpoint
//	-refresh-url identity provider token refresh endpoint
//	-api-key identity provider project key
//	-deck-list-ttl freshness window for the combined wordbook listing
//	-c/-config json file path with configs
func parseFlags() *StructuredConfig {
	var baseURL string
	var requestTimeout time.Duration
	var signInURL string
	var refreshURL string
	var apiKey string
	var deckListTTL time.Duration
	var jsonConfigPath string

	flag.StringVar(&baseURL, "a", "", "Wordbook API base URL")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&signInURL, "sign-in-url", "", "Identity sign-in endpoint")
	flag.StringVar(&refreshURL, "refresh-url", "", "Identity token refresh endpoint")
	flag.StringVar(&apiKey, "api-key", "", "Identity provider project key")
	flag.DurationVar(&deckListTTL, "deck-list-ttl", 0, "Deck list freshness window (e.g., 5m)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		API: API{
			BaseURL:        baseURL,
			RequestTimeout: requestTimeout,
		},
		Identity: Identity{
			SignInURL:  signInURL,
			RefreshURL: refreshURL,
			APIKey:     apiKey,
		},
		Cache: Cache{
			DeckListTTL: deckListTTL,
		},
		JSONFilePath: jsonConfigPath,
	}
}
