// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Masaki Kondo

// Package gateway provides the transport layer for the remote wordbook API.
//
// The primary abstraction is [Gateway], which decouples the entity stores
// from the wire protocol. The package ships an HTTP/REST implementation
// ([NewHTTPGateway]) built on resty.
//
// Every method takes the bearer token explicitly; the gateway holds no
// session state of its own. Non-2xx responses are mapped to errors carrying
// the human-readable message from the response body, with sentinel values
// from errors.go wrapped in so callers can use [errors.Is].
package gateway

import (
	"context"

	"github.com/mkondo/go-wordbook/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/gateway_mock.go -package=mock

// Gateway defines transport-agnostic communication with the remote wordbook
// API. GET-shaped methods are idempotent; mutations are not and are never
// retried by the implementation.
type Gateway interface {
	// ListOwnedWordbooks returns every wordbook owned by the caller.
	ListOwnedWordbooks(ctx context.Context, token string) ([]models.Wordbook, error)

	// ListPublicWordbooks returns every wordbook published by other users.
	ListPublicWordbooks(ctx context.Context, token string) ([]models.Wordbook, error)

	// GetWordbook returns a single wordbook by id.
	GetWordbook(ctx context.Context, id, token string) (models.Wordbook, error)

	// SearchWordbooks runs a filtered, paginated wordbook search.
	SearchWordbooks(ctx context.Context, query models.SearchQuery, token string) (models.SearchResult, error)

	// CreateWordbook creates a wordbook and returns the server-assigned
	// record (id, timestamps).
	CreateWordbook(ctx context.Context, data models.WordbookData, token string) (models.Wordbook, error)

	// UpdateWordbook applies a partial update and returns the updated
	// record. Nil patch fields are left untouched on the server.
	UpdateWordbook(ctx context.Context, id string, patch models.WordbookPatch, token string) (models.Wordbook, error)

	// DeleteWordbook deletes a wordbook; the server cascades the delete to
	// its cards.
	DeleteWordbook(ctx context.Context, id, token string) error

	// DuplicateWordbook creates a new wordbook seeded from sourceID with
	// the given attributes and returns the server-assigned record.
	DuplicateWordbook(ctx context.Context, sourceID string, data models.WordbookData, token string) (models.Wordbook, error)

	// ListWords returns the cards of one wordbook, in server order.
	ListWords(ctx context.Context, wordbookID, token string) ([]models.Card, error)

	// CreateWord creates a card and returns the server-assigned record.
	CreateWord(ctx context.Context, card models.NewCard, token string) (models.Card, error)

	// UpdateWord applies a partial card update and returns the updated
	// record.
	UpdateWord(ctx context.Context, id string, patch models.CardPatch, token string) (models.Card, error)

	// DeleteWord deletes a single card.
	DeleteWord(ctx context.Context, id, token string) error

	// ListBookmarks returns the caller's bookmarks.
	ListBookmarks(ctx context.Context, token string) ([]models.Bookmark, error)

	// CreateBookmark bookmarks a card for the caller.
	CreateBookmark(ctx context.Context, cardID, token string) (models.Bookmark, error)

	// DeleteBookmark removes a bookmark by its own id.
	DeleteBookmark(ctx context.Context, id, token string) error

	// DeleteBookmarkByCard removes the caller's bookmark on the given card.
	DeleteBookmarkByCard(ctx context.Context, cardID, token string) error

	// BookmarkExists reports whether the caller has bookmarked the card.
	BookmarkExists(ctx context.Context, cardID, token string) (bool, error)

	// GetProfile returns the caller's profile.
	GetProfile(ctx context.Context, token string) (models.UserProfile, error)

	// UpdateProfile applies a partial profile update and returns the
	// updated record.
	UpdateProfile(ctx context.Context, patch models.UserProfilePatch, token string) (models.UserProfile, error)

	// GetSettings returns the caller's settings.
	GetSettings(ctx context.Context, token string) (models.UserSettings, error)

	// UpdateSettings applies a partial settings update and returns the
	// updated record.
	UpdateSettings(ctx context.Context, patch models.UserSettingsPatch, token string) (models.UserSettings, error)
}
