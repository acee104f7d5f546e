// Package identity supplies bearer tokens for the remote wordbook API.
//
// The stores only depend on [Provider]: an empty token means "not
// authenticated, do not call the network". The REST implementation in
// rest.go signs in against a Firebase-style identity endpoint and refreshes
// the token when its JWT expiry approaches.
package identity

//go:generate mockgen -source=provider.go -destination=../mock/identity_mock.go -package=mock

// Provider yields the current bearer token for the signed-in user.
type Provider interface {
	// Token returns the current bearer token, or an empty string when no
	// user is signed in. Callers must treat an empty token as "abort
	// before any network call", not as an error to retry.
	Token() string

	// UserID returns the identity-provider user id of the signed-in user,
	// or an empty string when no user is signed in.
	UserID() string
}

type staticProvider struct {
	token  string
	userID string
}

// Static returns a Provider that always yields the given token and user id.
// Intended for tests and for wiring a pre-issued token.
func Static(token, userID string) Provider {
	return &staticProvider{token: token, userID: userID}
}

func (s *staticProvider) Token() string  { return s.token }
func (s *staticProvider) UserID() string { return s.userID }
