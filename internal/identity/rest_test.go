// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Masaki Kondo

package identity

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkondo/go-wordbook/internal/config"
	"github.com/mkondo/go-wordbook/internal/logger"
)

// mintToken builds a signed JWT with the given expiry and user id. The
// provider never verifies signatures, so the signing key is arbitrary.
func mintToken(t *testing.T, exp time.Time, userID string) string {
	t.Helper()

	claims := jwt.MapClaims{"exp": exp.Unix()}
	if userID != "" {
		claims["user_id"] = userID
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("testkey"))
	require.NoError(t, err)
	return signed
}

func newTestProvider(t *testing.T, signInURL, refreshURL string) *RESTProvider {
	t.Helper()

	p, err := NewRESTProvider(config.Identity{
		SignInURL:  signInURL,
		RefreshURL: refreshURL,
		APIKey:     "testapikey",
	}, logger.Nop())
	require.NoError(t, err)
	return p
}

func TestNewRESTProvider_MissingEndpoints(t *testing.T) {
	_, err := NewRESTProvider(config.Identity{SignInURL: "http://localhost"}, logger.Nop())
	require.Error(t, err)

	_, err = NewRESTProvider(config.Identity{RefreshURL: "http://localhost"}, logger.Nop())
	require.Error(t, err)
}

// ── SignIn ───────────────────────────────────────────────────────────────────

func TestSignIn_Success(t *testing.T) {
	idToken := mintToken(t, time.Now().Add(time.Hour), "user-1")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "testapikey", r.URL.Query().Get("key"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "alice@example.com", body["email"])
		assert.Equal(t, "secret", body["password"])
		assert.Equal(t, true, body["returnSecureToken"])

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{
			"idToken":      idToken,
			"refreshToken": "refresh-1",
			"localId":      "user-1",
			"expiresIn":    "3600",
		})
	}))
	defer srv.Close()

	p := newTestProvider(t, srv.URL, srv.URL+"/refresh")

	require.NoError(t, p.SignIn(context.Background(), "alice@example.com", "secret"))
	assert.Equal(t, idToken, p.Token())
	assert.Equal(t, "user-1", p.UserID())
}

func TestSignIn_FallsBackToTokenUserID(t *testing.T) {
	idToken := mintToken(t, time.Now().Add(time.Hour), "user-7")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{
			"idToken":      idToken,
			"refreshToken": "refresh-1",
		})
	}))
	defer srv.Close()

	p := newTestProvider(t, srv.URL, srv.URL+"/refresh")

	require.NoError(t, p.SignIn(context.Background(), "alice@example.com", "secret"))
	assert.Equal(t, "user-7", p.UserID())
}

func TestSignIn_RejectedCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error": {"message": "INVALID_PASSWORD"}}`))
	}))
	defer srv.Close()

	p := newTestProvider(t, srv.URL, srv.URL+"/refresh")

	err := p.SignIn(context.Background(), "alice@example.com", "wrong")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "INVALID_PASSWORD")
	assert.Empty(t, p.Token())
}

// ── Token ────────────────────────────────────────────────────────────────────

func TestToken_EmptyBeforeSignIn(t *testing.T) {
	p := newTestProvider(t, "http://localhost/signin", "http://localhost/refresh")
	assert.Empty(t, p.Token())
}

func TestToken_RefreshesNearExpiry(t *testing.T) {
	oldToken := mintToken(t, time.Now().Add(30*time.Second), "user-1")
	newToken := mintToken(t, time.Now().Add(time.Hour), "user-1")

	var mux http.ServeMux
	mux.HandleFunc("/signin", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{
			"idToken":      oldToken,
			"refreshToken": "refresh-1",
			"localId":      "user-1",
		})
	})
	mux.HandleFunc("/refresh", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "refresh_token", r.Form.Get("grant_type"))
		assert.Equal(t, "refresh-1", r.Form.Get("refresh_token"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{
			"id_token":      newToken,
			"refresh_token": "refresh-2",
			"user_id":       "user-1",
		})
	})
	srv := httptest.NewServer(&mux)
	defer srv.Close()

	p := newTestProvider(t, srv.URL+"/signin", srv.URL+"/refresh")
	require.NoError(t, p.SignIn(context.Background(), "alice@example.com", "secret"))

	// The stored token expires inside the refresh window, so Token()
	// exchanges the refresh token before returning.
	assert.Equal(t, newToken, p.Token())
	// And the refreshed token is now fresh enough to be returned as is.
	assert.Equal(t, newToken, p.Token())
}

func TestToken_RefreshFailureReturnsEmpty(t *testing.T) {
	oldToken := mintToken(t, time.Now().Add(30*time.Second), "user-1")

	var mux http.ServeMux
	mux.HandleFunc("/signin", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{
			"idToken":      oldToken,
			"refreshToken": "refresh-1",
			"localId":      "user-1",
		})
	})
	mux.HandleFunc("/refresh", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error": {"message": "TOKEN_EXPIRED"}}`))
	})
	srv := httptest.NewServer(&mux)
	defer srv.Close()

	p := newTestProvider(t, srv.URL+"/signin", srv.URL+"/refresh")
	require.NoError(t, p.SignIn(context.Background(), "alice@example.com", "secret"))

	assert.Empty(t, p.Token())
}

// ── SignOut ──────────────────────────────────────────────────────────────────

func TestSignOut_DropsTokens(t *testing.T) {
	idToken := mintToken(t, time.Now().Add(time.Hour), "user-1")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{
			"idToken":      idToken,
			"refreshToken": "refresh-1",
			"localId":      "user-1",
		})
	}))
	defer srv.Close()

	p := newTestProvider(t, srv.URL, srv.URL+"/refresh")
	require.NoError(t, p.SignIn(context.Background(), "alice@example.com", "secret"))
	require.NotEmpty(t, p.Token())

	p.SignOut()
	assert.Empty(t, p.Token())
	assert.Empty(t, p.UserID())
}

// ── Static provider ──────────────────────────────────────────────────────────

func TestStatic(t *testing.T) {
	p := Static("token-1", "user-1")
	assert.Equal(t, "token-1", p.Token())
	assert.Equal(t, "user-1", p.UserID())
}
