// Package store holds the client-side entity caches that sit between the
// view layer and the remote wordbook API.
//
// Each store is the single source of truth for one entity family: wordbooks
// plus their card lists ([DeckStore]), the user's bookmarks
// ([BookmarkStore]), and the profile/settings singletons ([UserStore]).
// All reads the view performs and all writes it requests go through a store;
// the cache maps are owned exclusively by their store and are never mutated
// from outside.
//
// Stores follow one discipline for every operation: check preconditions
// (token present, required fields non-empty), call the gateway, then
// reconcile the cache with the response. The cache is only mutated on
// confirmed success, so a failed call never leaves a half-applied state.
// Failures are recorded in a per-store error field and the loading flag is
// cleared on every exit path; nothing is retried automatically.
//
// Multiple asynchronous operations can be in flight against the same cache
// key (rapid deck switches, a fetch racing a delete). List fetches therefore
// carry a per-key monotonic sequence number: a response whose sequence is no
// longer the latest for its key is discarded instead of clobbering newer
// state.
package store

import (
	"time"

	"github.com/mkondo/go-wordbook/internal/gateway"
	"github.com/mkondo/go-wordbook/internal/identity"
	"github.com/mkondo/go-wordbook/internal/logger"
)

// Stores bundles the entity caches for one client session.
type Stores struct {
	Decks     *DeckStore
	Bookmarks *BookmarkStore
	User      *UserStore
}

// NewStores constructs the full store set for a session. deckListTTL bounds
// the freshness of the combined owned+public wordbook listing; zero means
// the 5-minute default.
func NewStores(gw gateway.Gateway, id identity.Provider, deckListTTL time.Duration, log *logger.Logger) *Stores {
	return &Stores{
		Decks:     NewDeckStore(gw, id, deckListTTL, log),
		Bookmarks: NewBookmarkStore(gw, id, log),
		User:      NewUserStore(gw, id, log),
	}
}

// Reset drops every cached collection, returning the stores to their
// post-construction state. Used on sign-out.
func (s *Stores) Reset() {
	s.Decks.Reset()
	s.Bookmarks.Reset()
	s.User.Reset()
}
