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

// BookmarkStore caches the signed-in user's bookmarks as both the full
// records and their card-id projection. The two are mutated in the same
// critical section on every change, so bookmarkedCardIDs is always exactly
// the set of card ids present in bookmarks, at most one per card, even if
// the remote briefly holds a duplicate.
type BookmarkStore struct {
	gateway  gateway.Gateway
	identity identity.Provider
	logger   *logger.Logger

	mu                sync.Mutex
	bookmarks         []models.Bookmark
	bookmarkedCardIDs map[string]struct{}
	loaded            bool
	loadInFlight      bool
	inFlight          int
	err               error
}

// NewBookmarkStore constructs an empty BookmarkStore.
func NewBookmarkStore(gw gateway.Gateway, id identity.Provider, log *logger.Logger) *BookmarkStore {
	return &BookmarkStore{
		gateway:           gw,
		identity:          id,
		logger:            log,
		bookmarkedCardIDs: make(map[string]struct{}),
	}
}

// Load fetches the user's bookmark list once. If the list is already loaded
// or a load is in flight, Load is a no-op; concurrent callers cause exactly
// one gateway call. Requires a signed-in identity.
func (s *BookmarkStore) Load(ctx context.Context) error {
	token := s.identity.Token()

	s.mu.Lock()
	if s.loaded || s.loadInFlight {
		s.mu.Unlock()
		return nil
	}
	if token == "" {
		s.err = ErrAuthRequired
		s.mu.Unlock()
		return ErrAuthRequired
	}
	s.loadInFlight = true
	s.inFlight++
	s.err = nil
	s.mu.Unlock()

	items, err := s.gateway.ListBookmarks(ctx, token)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loadInFlight = false
	s.inFlight--
	if err != nil {
		s.err = fmt.Errorf("load bookmarks: %w", err)
		return s.err
	}

	ids := make(map[string]struct{}, len(items))
	deduped := items[:0]
	for _, b := range items {
		if _, dup := ids[b.CardID]; dup {
			continue
		}
		ids[b.CardID] = struct{}{}
		deduped = append(deduped, b)
	}
	s.bookmarks = deduped
	s.bookmarkedCardIDs = ids
	s.loaded = true
	return nil
}

// Toggle flips the bookmark on a card. Which remote call to make is decided
// from local membership; the local collections are only mutated after that
// call succeeds, so a failure leaves membership unchanged.
func (s *BookmarkStore) Toggle(ctx context.Context, cardID string) error {
	if cardID == "" {
		return fmt.Errorf("%w: card id is required", ErrValidation)
	}

	token := s.identity.Token()

	s.mu.Lock()
	if token == "" {
		s.err = ErrAuthRequired
		s.mu.Unlock()
		return ErrAuthRequired
	}
	_, bookmarked := s.bookmarkedCardIDs[cardID]
	s.inFlight++
	s.err = nil
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.inFlight--
		s.mu.Unlock()
	}()

	if bookmarked {
		if err := s.gateway.DeleteBookmarkByCard(ctx, cardID, token); err != nil {
			return s.fail(fmt.Errorf("remove bookmark: %w", err))
		}

		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.bookmarkedCardIDs, cardID)
		kept := s.bookmarks[:0]
		for _, b := range s.bookmarks {
			if b.CardID != cardID {
				kept = append(kept, b)
			}
		}
		s.bookmarks = kept
		return nil
	}

	created, err := s.gateway.CreateBookmark(ctx, cardID, token)
	if err != nil {
		return s.fail(fmt.Errorf("add bookmark: %w", err))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, dup := s.bookmarkedCardIDs[cardID]; dup {
		return nil
	}
	s.bookmarkedCardIDs[cardID] = struct{}{}
	s.bookmarks = append(s.bookmarks, created)
	return nil
}

// IsBookmarked reports local membership for a card. Pure read, never
// triggers a fetch.
func (s *BookmarkStore) IsBookmarked(cardID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.bookmarkedCardIDs[cardID]
	return ok
}

// Bookmarks returns a snapshot of the bookmark records.
func (s *BookmarkStore) Bookmarks() []models.Bookmark {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Bookmark(nil), s.bookmarks...)
}

// Loaded reports whether the initial bookmark load has completed.
func (s *BookmarkStore) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded
}

// Loading reports whether any bookmark operation is in flight. Operations
// overlap, so an in-flight count rather than a flag.
func (s *BookmarkStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inFlight > 0
}

// Err returns the error recorded by the most recent failed operation, nil
// after a success.
func (s *BookmarkStore) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Reset drops all bookmark state, allowing a fresh Load.
func (s *BookmarkStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookmarks = nil
	s.bookmarkedCardIDs = make(map[string]struct{})
	s.loaded = false
	s.loadInFlight = false
	s.inFlight = 0
	s.err = nil
}

func (s *BookmarkStore) fail(err error) error {
	s.mu.Lock()
	s.err = err
	s.mu.Unlock()
	return err
}
