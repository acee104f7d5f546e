package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/mkondo/go-wordbook/internal/gateway"
	"github.com/mkondo/go-wordbook/internal/identity"
	"github.com/mkondo/go-wordbook/internal/logger"
	"github.com/mkondo/go-wordbook/models"
)

// UserStore caches the two single-entity collections tied to the account:
// the profile and the presentation settings. Each is fetched once and then
// served from cache; an update replaces the cached record with the
// gateway's response.
type UserStore struct {
	gateway  gateway.Gateway
	identity identity.Provider
	logger   *logger.Logger

	mu       sync.Mutex
	profile  *models.UserProfile
	settings *models.UserSettings
	inFlight int
	err      error
}

// NewUserStore constructs an empty UserStore.
func NewUserStore(gw gateway.Gateway, id identity.Provider, log *logger.Logger) *UserStore {
	return &UserStore{gateway: gw, identity: id, logger: log}
}

// LoadProfile returns the cached profile, fetching it on first use.
func (s *UserStore) LoadProfile(ctx context.Context) (models.UserProfile, error) {
	s.mu.Lock()
	if s.profile != nil {
		p := *s.profile
		s.mu.Unlock()
		return p, nil
	}
	s.mu.Unlock()

	token, err := s.begin()
	if err != nil {
		return models.UserProfile{}, err
	}
	defer s.end()

	profile, err := s.gateway.GetProfile(ctx, token)
	if err != nil {
		return models.UserProfile{}, s.fail(fmt.Errorf("load profile: %w", err))
	}

	s.mu.Lock()
	s.profile = &profile
	s.mu.Unlock()
	return profile, nil
}

// UpdateProfile applies a partial profile update and replaces the cache
// with the server's record. On failure the cache is untouched.
func (s *UserStore) UpdateProfile(ctx context.Context, patch models.UserProfilePatch) (models.UserProfile, error) {
	token, err := s.begin()
	if err != nil {
		return models.UserProfile{}, err
	}
	defer s.end()

	profile, err := s.gateway.UpdateProfile(ctx, patch, token)
	if err != nil {
		return models.UserProfile{}, s.fail(fmt.Errorf("update profile: %w", err))
	}

	s.mu.Lock()
	s.profile = &profile
	s.mu.Unlock()
	return profile, nil
}

// LoadSettings returns the cached settings, fetching them on first use.
func (s *UserStore) LoadSettings(ctx context.Context) (models.UserSettings, error) {
	s.mu.Lock()
	if s.settings != nil {
		v := *s.settings
		s.mu.Unlock()
		return v, nil
	}
	s.mu.Unlock()

	token, err := s.begin()
	if err != nil {
		return models.UserSettings{}, err
	}
	defer s.end()

	settings, err := s.gateway.GetSettings(ctx, token)
	if err != nil {
		return models.UserSettings{}, s.fail(fmt.Errorf("load settings: %w", err))
	}

	s.mu.Lock()
	s.settings = &settings
	s.mu.Unlock()
	return settings, nil
}

// UpdateSettings applies a partial settings update and replaces the cache
// with the server's record. On failure the cache is untouched.
func (s *UserStore) UpdateSettings(ctx context.Context, patch models.UserSettingsPatch) (models.UserSettings, error) {
	token, err := s.begin()
	if err != nil {
		return models.UserSettings{}, err
	}
	defer s.end()

	settings, err := s.gateway.UpdateSettings(ctx, patch, token)
	if err != nil {
		return models.UserSettings{}, s.fail(fmt.Errorf("update settings: %w", err))
	}

	s.mu.Lock()
	s.settings = &settings
	s.mu.Unlock()
	return settings, nil
}

// Profile returns the cached profile, if any.
func (s *UserStore) Profile() (models.UserProfile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile == nil {
		return models.UserProfile{}, false
	}
	return *s.profile, true
}

// Settings returns the cached settings, if any.
func (s *UserStore) Settings() (models.UserSettings, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.settings == nil {
		return models.UserSettings{}, false
	}
	return *s.settings, true
}

// Loading reports whether a profile/settings operation is in flight.
func (s *UserStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inFlight > 0
}

// Err returns the error recorded by the most recent failed operation, nil
// after a success.
func (s *UserStore) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Reset drops the cached profile and settings.
func (s *UserStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = nil
	s.settings = nil
	s.inFlight = 0
	s.err = nil
}

// begin counts the operation as in flight; operations overlap, so Loading
// stays true until the last one ends.
func (s *UserStore) begin() (string, error) {
	token := s.identity.Token()

	s.mu.Lock()
	defer s.mu.Unlock()
	if token == "" {
		s.err = ErrAuthRequired
		return "", ErrAuthRequired
	}
	s.inFlight++
	s.err = nil
	return token, nil
}

func (s *UserStore) end() {
	s.mu.Lock()
	s.inFlight--
	s.mu.Unlock()
}

func (s *UserStore) fail(err error) error {
	s.mu.Lock()
	s.err = err
	s.mu.Unlock()
	return err
}
