// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Masaki Kondo

package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"dario.cat/mergo"

	"github.com/mkondo/go-wordbook/internal/gateway"
	"github.com/mkondo/go-wordbook/internal/identity"
	"github.com/mkondo/go-wordbook/internal/logger"
	"github.com/mkondo/go-wordbook/internal/validators"
	"github.com/mkondo/go-wordbook/models"
)

const defaultDeckListTTL = 5 * time.Minute

// Cache keys for the per-key request sequence guard.
const (
	keyOwnedDecks  = "decks:owned"
	keyPublicDecks = "decks:public"
)

func cardsKey(deckID string) string { return "cards:" + deckID }

// DeckStore caches the owned and public wordbook collections and the card
// list of every opened wordbook, and orchestrates all wordbook/card
// mutations against the gateway. It also owns the selection state (which
// deck is active, which card index each deck was left at).
//
// Only the combined listing served by FetchAllDecks carries a TTL; card
// lists are cached until a card mutation on their deck or an explicit
// re-fetch invalidates them.
type DeckStore struct {
	gateway   gateway.Gateway
	identity  identity.Provider
	validator validators.Validator
	logger    *logger.Logger

	mu            sync.Mutex
	decks         []models.Wordbook
	publicDecks   []models.Wordbook
	cachedCards   map[string][]models.Card
	lastListFetch time.Time
	seq           map[string]uint64
	inFlight      int
	err           error

	selection *SelectionState

	ttl time.Duration
	now func() time.Time
}

// NewDeckStore constructs a DeckStore. deckListTTL zero means the 5-minute
// default.
func NewDeckStore(gw gateway.Gateway, id identity.Provider, deckListTTL time.Duration, log *logger.Logger) *DeckStore {
	if deckListTTL <= 0 {
		deckListTTL = defaultDeckListTTL
	}

	return &DeckStore{
		gateway:     gw,
		identity:    id,
		validator:   validators.NewWordbookValidator(),
		logger:      log,
		cachedCards: make(map[string][]models.Card),
		seq:         make(map[string]uint64),
		selection:   NewSelectionState(),
		ttl:         deckListTTL,
		now:         time.Now,
	}
}

// Reset drops every cached collection and the selection state.
func (s *DeckStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.decks = nil
	s.publicDecks = nil
	s.cachedCards = make(map[string][]models.Card)
	s.lastListFetch = time.Time{}
	s.seq = make(map[string]uint64)
	s.inFlight = 0
	s.err = nil
	s.selection.reset()
}

// begin checks the token precondition and counts the operation as in
// flight. The returned token is non-empty. Operations overlap (every
// tea.Cmd runs on its own goroutine), so a counter rather than a flag:
// Loading stays true until the last of them ends.
func (s *DeckStore) begin() (string, error) {
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

func (s *DeckStore) end() {
	s.mu.Lock()
	s.inFlight--
	s.mu.Unlock()
}

// fail records err in the store's error field and returns it.
func (s *DeckStore) fail(err error) error {
	s.mu.Lock()
	s.err = err
	s.mu.Unlock()
	return err
}

// nextSeq issues a new sequence number for key. A response may only be
// applied while its number is still the latest issued for that key.
func (s *DeckStore) nextSeq(key string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq[key]++
	return s.seq[key]
}

// bumpSeq invalidates every in-flight response for key. Callers must hold
// s.mu.
func (s *DeckStore) bumpSeqLocked(key string) {
	s.seq[key]++
}

// FetchOwnedDecks replaces the owned-wordbook collection with the gateway's
// response. On failure the prior cache is left untouched and the error is
// recorded.
func (s *DeckStore) FetchOwnedDecks(ctx context.Context) ([]models.Wordbook, error) {
	token, err := s.begin()
	if err != nil {
		return nil, err
	}
	defer s.end()

	return s.fetchOwned(ctx, token)
}

func (s *DeckStore) fetchOwned(ctx context.Context, token string) ([]models.Wordbook, error) {
	seq := s.nextSeq(keyOwnedDecks)

	items, err := s.gateway.ListOwnedWordbooks(ctx, token)
	if err != nil {
		return nil, s.fail(fmt.Errorf("fetch owned decks: %w", err))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.seq[keyOwnedDecks] != seq {
		s.logger.Debug().Msg("discarding stale owned-deck response")
		return items, nil
	}
	s.decks = items
	return items, nil
}

// FetchPublicDecks replaces the public-wordbook collection with the
// gateway's response. Same contract as FetchOwnedDecks.
func (s *DeckStore) FetchPublicDecks(ctx context.Context) ([]models.Wordbook, error) {
	token, err := s.begin()
	if err != nil {
		return nil, err
	}
	defer s.end()

	return s.fetchPublic(ctx, token)
}

func (s *DeckStore) fetchPublic(ctx context.Context, token string) ([]models.Wordbook, error) {
	seq := s.nextSeq(keyPublicDecks)

	items, err := s.gateway.ListPublicWordbooks(ctx, token)
	if err != nil {
		return nil, s.fail(fmt.Errorf("fetch public decks: %w", err))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.seq[keyPublicDecks] != seq {
		s.logger.Debug().Msg("discarding stale public-deck response")
		return items, nil
	}
	s.publicDecks = items
	return items, nil
}

// FetchAllDecks returns the owned and public collections. If a combined
// fetch completed within the TTL window and the cached union is non-empty,
// the cache is returned without touching the network. Otherwise both halves
// are fetched concurrently; a failed half degrades to an empty list so the
// other half still lands, and the fetch time is re-stamped on any success.
func (s *DeckStore) FetchAllDecks(ctx context.Context) (owned, public []models.Wordbook, err error) {
	s.mu.Lock()
	fresh := !s.lastListFetch.IsZero() && s.now().Sub(s.lastListFetch) < s.ttl
	if fresh && len(s.decks)+len(s.publicDecks) > 0 {
		owned = append([]models.Wordbook(nil), s.decks...)
		public = append([]models.Wordbook(nil), s.publicDecks...)
		s.mu.Unlock()
		return owned, public, nil
	}
	s.mu.Unlock()

	token, err := s.begin()
	if err != nil {
		return nil, nil, err
	}
	defer s.end()

	ownedSeq := s.nextSeq(keyOwnedDecks)
	publicSeq := s.nextSeq(keyPublicDecks)

	var (
		wg                  sync.WaitGroup
		ownedRes, publicRes []models.Wordbook
		ownedErr, publicErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		ownedRes, ownedErr = s.gateway.ListOwnedWordbooks(ctx, token)
	}()
	go func() {
		defer wg.Done()
		publicRes, publicErr = s.gateway.ListPublicWordbooks(ctx, token)
	}()
	wg.Wait()

	if ownedErr != nil {
		s.logger.Error().Err(ownedErr).Msg("owned half of combined deck fetch failed")
		ownedRes = []models.Wordbook{}
	}
	if publicErr != nil {
		s.logger.Error().Err(publicErr).Msg("public half of combined deck fetch failed")
		publicRes = []models.Wordbook{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.seq[keyOwnedDecks] == ownedSeq && ownedErr == nil {
		s.decks = ownedRes
	}
	if s.seq[keyPublicDecks] == publicSeq && publicErr == nil {
		s.publicDecks = publicRes
	}
	if ownedErr == nil || publicErr == nil {
		s.lastListFetch = s.now()
	}

	if fetchErr := errors.Join(ownedErr, publicErr); fetchErr != nil {
		s.err = fetchErr
		if ownedErr != nil && publicErr != nil {
			return nil, nil, fetchErr
		}
	}

	owned = append([]models.Wordbook(nil), s.decks...)
	public = append([]models.Wordbook(nil), s.publicDecks...)
	return owned, public, nil
}

// FetchWordsInDeck fetches and caches the card list of one wordbook, sorted
// by creation time ascending. Subsequent Words reads are served from cache
// until a card mutation on that deck or another explicit fetch.
func (s *DeckStore) FetchWordsInDeck(ctx context.Context, deckID string) ([]models.Card, error) {
	if deckID == "" {
		return nil, fmt.Errorf("%w: deck id is required", ErrValidation)
	}

	token, err := s.begin()
	if err != nil {
		return nil, err
	}
	defer s.end()

	return s.fetchWords(ctx, deckID, token)
}

func (s *DeckStore) fetchWords(ctx context.Context, deckID, token string) ([]models.Card, error) {
	key := cardsKey(deckID)
	seq := s.nextSeq(key)

	items, err := s.gateway.ListWords(ctx, deckID, token)
	if err != nil {
		return nil, s.fail(fmt.Errorf("fetch words in deck %s: %w", deckID, err))
	}
	models.SortCardsByCreatedAt(items)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.seq[key] != seq {
		s.logger.Debug().Str("deck_id", deckID).Msg("discarding stale word-list response")
		return items, nil
	}
	s.cachedCards[deckID] = items
	return items, nil
}

// AddCardToCache appends a card to a deck's cached list without a network
// round trip. Used when the caller already holds a server-confirmed card.
func (s *DeckStore) AddCardToCache(deckID string, card models.Card) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cachedCards[deckID] = append(s.cachedCards[deckID], card)
}

// AddCard creates a card via the gateway and, on success, re-fetches the
// deck's word list so server-assigned fields and ordering come from the
// source of truth. On failure the cache is untouched.
func (s *DeckStore) AddCard(ctx context.Context, card models.NewCard) (models.Card, error) {
	if err := s.validator.Validate(ctx, card); err != nil {
		return models.Card{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	token, err := s.begin()
	if err != nil {
		return models.Card{}, err
	}
	defer s.end()

	created, err := s.gateway.CreateWord(ctx, card, token)
	if err != nil {
		return models.Card{}, s.fail(fmt.Errorf("add card: %w", err))
	}

	if _, err = s.fetchWords(ctx, card.WordbookID, token); err != nil {
		return created, err
	}
	return created, nil
}

// UpdateCard updates a card via the gateway and, on success, re-fetches the
// deck's word list. On failure the cache is untouched.
func (s *DeckStore) UpdateCard(ctx context.Context, deckID, cardID string, patch models.CardPatch) (models.Card, error) {
	if deckID == "" || cardID == "" {
		return models.Card{}, fmt.Errorf("%w: deck id and card id are required", ErrValidation)
	}
	if err := s.validator.Validate(ctx, patch); err != nil {
		return models.Card{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	token, err := s.begin()
	if err != nil {
		return models.Card{}, err
	}
	defer s.end()

	updated, err := s.gateway.UpdateWord(ctx, cardID, patch, token)
	if err != nil {
		return models.Card{}, s.fail(fmt.Errorf("update card: %w", err))
	}

	if _, err = s.fetchWords(ctx, deckID, token); err != nil {
		return updated, err
	}
	return updated, nil
}

// DeleteCard deletes a card via the gateway and, on success, re-fetches the
// deck's word list. On failure the cache is untouched.
func (s *DeckStore) DeleteCard(ctx context.Context, deckID, cardID string) error {
	if deckID == "" || cardID == "" {
		return fmt.Errorf("%w: deck id and card id are required", ErrValidation)
	}

	token, err := s.begin()
	if err != nil {
		return err
	}
	defer s.end()

	if err = s.gateway.DeleteWord(ctx, cardID, token); err != nil {
		return s.fail(fmt.Errorf("delete card: %w", err))
	}

	_, err = s.fetchWords(ctx, deckID, token)
	return err
}

// CreateDeck creates a wordbook via the gateway and, on success, re-fetches
// the owned collection so server-assigned identity and counts land in the
// cache. On failure no local mutation happens.
func (s *DeckStore) CreateDeck(ctx context.Context, data models.WordbookData) (models.Wordbook, error) {
	if err := s.validator.Validate(ctx, data); err != nil {
		return models.Wordbook{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	token, err := s.begin()
	if err != nil {
		return models.Wordbook{}, err
	}
	defer s.end()

	created, err := s.gateway.CreateWordbook(ctx, data, token)
	if err != nil {
		return models.Wordbook{}, s.fail(fmt.Errorf("create deck: %w", err))
	}

	if _, err = s.fetchOwned(ctx, token); err != nil {
		return created, err
	}
	return created, nil
}

// UpdateDeck updates a wordbook via the gateway and, on success, patches the
// cached record in place in both the owned and public collections. Fields
// the response leaves zero keep their cached values, so a partial update
// never erases data the payload omitted. On failure the cache is
// byte-for-byte untouched.
func (s *DeckStore) UpdateDeck(ctx context.Context, deckID string, patch models.WordbookPatch) (models.Wordbook, error) {
	if deckID == "" {
		return models.Wordbook{}, fmt.Errorf("%w: deck id is required", ErrValidation)
	}
	if err := s.validator.Validate(ctx, patch); err != nil {
		return models.Wordbook{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	token, err := s.begin()
	if err != nil {
		return models.Wordbook{}, err
	}
	defer s.end()

	updated, err := s.gateway.UpdateWordbook(ctx, deckID, patch, token)
	if err != nil {
		return models.Wordbook{}, s.fail(fmt.Errorf("update deck: %w", err))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	patchDeckInPlace(s.decks, updated)
	patchDeckInPlace(s.publicDecks, updated)
	return updated, nil
}

// patchDeckInPlace merges updated over the matching element of decks.
// IsPublic is carried over verbatim since mergo cannot distinguish "false"
// from "absent" on a bool.
func patchDeckInPlace(decks []models.Wordbook, updated models.Wordbook) {
	for i := range decks {
		if decks[i].ID != updated.ID {
			continue
		}
		merged := decks[i]
		if err := mergo.Merge(&merged, updated, mergo.WithOverride); err != nil {
			return
		}
		merged.IsPublic = updated.IsPublic
		decks[i] = merged
		return
	}
}

// DeleteDeck deletes a wordbook via the gateway. On success the deck leaves
// every deck collection and its card-cache entry and remembered card index
// are dropped in the same transition; in-flight list responses for the
// affected keys are invalidated. On failure the cache is untouched.
func (s *DeckStore) DeleteDeck(ctx context.Context, deckID string) error {
	if deckID == "" {
		return fmt.Errorf("%w: deck id is required", ErrValidation)
	}

	token, err := s.begin()
	if err != nil {
		return err
	}
	defer s.end()

	if err = s.gateway.DeleteWordbook(ctx, deckID, token); err != nil {
		return s.fail(fmt.Errorf("delete deck: %w", err))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.decks = removeDeck(s.decks, deckID)
	s.publicDecks = removeDeck(s.publicDecks, deckID)
	delete(s.cachedCards, deckID)
	s.bumpSeqLocked(cardsKey(deckID))
	s.bumpSeqLocked(keyOwnedDecks)
	s.bumpSeqLocked(keyPublicDecks)
	s.selection.forgetDeck(deckID)
	return nil
}

func removeDeck(decks []models.Wordbook, deckID string) []models.Wordbook {
	out := decks[:0]
	for _, d := range decks {
		if d.ID != deckID {
			out = append(out, d)
		}
	}
	return out
}

// DuplicateDeck creates a new wordbook seeded from sourceID. The copy is
// always created private regardless of the source's visibility. On success
// the owned collection is re-fetched for the server-assigned identity.
func (s *DeckStore) DuplicateDeck(ctx context.Context, sourceID string, data models.WordbookData) (models.Wordbook, error) {
	if sourceID == "" {
		return models.Wordbook{}, fmt.Errorf("%w: source deck id is required", ErrValidation)
	}
	if err := s.validator.Validate(ctx, data); err != nil {
		return models.Wordbook{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	data.IsPublic = false

	token, err := s.begin()
	if err != nil {
		return models.Wordbook{}, err
	}
	defer s.end()

	created, err := s.gateway.DuplicateWordbook(ctx, sourceID, data, token)
	if err != nil {
		return models.Wordbook{}, s.fail(fmt.Errorf("duplicate deck: %w", err))
	}

	if _, err = s.fetchOwned(ctx, token); err != nil {
		return created, err
	}
	return created, nil
}

// InitializeDeckData is the composite read behind opening a deck's detail
// view: it selects the deck, populates the owned collection if this is the
// first load, resolves the deck's display name, and ensures the card cache
// holds the deck's words. A deck missing from the owned collection yields an
// empty name rather than an error.
func (s *DeckStore) InitializeDeckData(ctx context.Context, deckID string) (words []models.Card, deckName string, err error) {
	if deckID == "" {
		return nil, "", fmt.Errorf("%w: deck id is required", ErrValidation)
	}

	token, err := s.begin()
	if err != nil {
		return nil, "", err
	}
	defer s.end()

	s.selection.SelectDeck(deckID)

	s.mu.Lock()
	decks := append([]models.Wordbook(nil), s.decks...)
	cached, haveCards := s.cachedCards[deckID]
	words = append([]models.Card(nil), cached...)
	s.mu.Unlock()

	if len(decks) == 0 {
		if decks, err = s.fetchOwned(ctx, token); err != nil {
			return nil, "", err
		}
	}
	for _, d := range decks {
		if d.ID == deckID {
			deckName = d.Name
			break
		}
	}

	if !haveCards {
		if words, err = s.fetchWords(ctx, deckID, token); err != nil {
			return nil, "", err
		}
	}

	return words, deckName, nil
}

// SearchDecks runs a wordbook search. Results are not cached; the search
// page owns its own pagination state.
func (s *DeckStore) SearchDecks(ctx context.Context, query models.SearchQuery) (models.SearchResult, error) {
	if err := s.validator.Validate(ctx, query); err != nil {
		return models.SearchResult{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	token, err := s.begin()
	if err != nil {
		return models.SearchResult{}, err
	}
	defer s.end()

	result, err := s.gateway.SearchWordbooks(ctx, query, token)
	if err != nil {
		return models.SearchResult{}, s.fail(fmt.Errorf("search decks: %w", err))
	}
	return result, nil
}

// SelectDeck makes deckID the active deck. It never triggers fetching;
// loading the deck's cards is the caller's decision.
func (s *DeckStore) SelectDeck(deckID string) { s.selection.SelectDeck(deckID) }

// SelectedDeck returns the active deck id, or an empty string.
func (s *DeckStore) SelectedDeck() string { return s.selection.SelectedDeck() }

// NavigateCard records newIndex as the viewing position of the active deck.
// No-op when no deck is selected. Bounds are the view's responsibility.
func (s *DeckStore) NavigateCard(newIndex int) { s.selection.NavigateCard(newIndex) }

// CardIndex returns the remembered viewing position for deckID, zero if
// none was recorded.
func (s *DeckStore) CardIndex(deckID string) int { return s.selection.CardIndex(deckID) }

// Decks returns a snapshot of the owned-wordbook collection.
func (s *DeckStore) Decks() []models.Wordbook {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Wordbook(nil), s.decks...)
}

// PublicDecks returns a snapshot of the public-wordbook collection.
func (s *DeckStore) PublicDecks() []models.Wordbook {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Wordbook(nil), s.publicDecks...)
}

// AllDecks returns the owned and public collections as one slice, owned
// first.
func (s *DeckStore) AllDecks() []models.Wordbook {
	s.mu.Lock()
	defer s.mu.Unlock()
	all := make([]models.Wordbook, 0, len(s.decks)+len(s.publicDecks))
	all = append(all, s.decks...)
	return append(all, s.publicDecks...)
}

// Words returns a snapshot of a deck's cached card list and whether an
// entry exists. It never triggers a fetch; stale reads are acceptable,
// blocked reads are not.
func (s *DeckStore) Words(deckID string) ([]models.Card, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cards, ok := s.cachedCards[deckID]
	return append([]models.Card(nil), cards...), ok
}

// Loading reports whether any deck/card operation is in flight.
func (s *DeckStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inFlight > 0
}

// Err returns the error recorded by the most recent failed operation, nil
// after a success.
func (s *DeckStore) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}
