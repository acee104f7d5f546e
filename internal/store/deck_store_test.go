// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Masaki Kondo

package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mkondo/go-wordbook/internal/identity"
	"github.com/mkondo/go-wordbook/internal/logger"
	"github.com/mkondo/go-wordbook/internal/mock"
	"github.com/mkondo/go-wordbook/models"
)

const testToken = "token-1"

func newTestDeckStore(t *testing.T, ctrl *gomock.Controller) (*DeckStore, *mock.MockGateway) {
	t.Helper()
	gw := mock.NewMockGateway(ctrl)
	s := NewDeckStore(gw, identity.Static(testToken, "user-1"), 0, logger.Nop())
	return s, gw
}

func deck(id, name string) models.Wordbook {
	return models.Wordbook{ID: id, Name: name, OwnerID: "user-1"}
}

func publicDeck(id, name string) models.Wordbook {
	return models.Wordbook{ID: id, Name: name, IsPublic: true, OwnerID: "user-2", OwnerDisplayName: "someone"}
}

// ── Fetching collections ─────────────────────────────────────────────────────

func TestDeckStore_FetchOwnedDecks_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, gw := newTestDeckStore(t, ctrl)
	ctx := context.Background()
	want := []models.Wordbook{deck("d1", "TOEFL"), deck("d2", "IELTS")}

	gw.EXPECT().ListOwnedWordbooks(ctx, testToken).Return(want, nil)

	got, err := s.FetchOwnedDecks(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, want, s.Decks())
	assert.False(t, s.Loading())
	assert.NoError(t, s.Err())
}

func TestDeckStore_FetchOwnedDecks_NoToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gw := mock.NewMockGateway(ctrl)
	s := NewDeckStore(gw, identity.Static("", ""), 0, logger.Nop())

	_, err := s.FetchOwnedDecks(context.Background())
	require.ErrorIs(t, err, ErrAuthRequired)
	assert.ErrorIs(t, s.Err(), ErrAuthRequired)
}

func TestDeckStore_FetchOwnedDecks_GatewayError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, gw := newTestDeckStore(t, ctrl)
	ctx := context.Background()

	gw.EXPECT().ListOwnedWordbooks(ctx, testToken).Return([]models.Wordbook{deck("d1", "TOEFL")}, nil)
	_, err := s.FetchOwnedDecks(ctx)
	require.NoError(t, err)

	gw.EXPECT().ListOwnedWordbooks(ctx, testToken).Return(nil, errors.New("boom"))
	_, err = s.FetchOwnedDecks(ctx)
	require.Error(t, err)

	// Prior cache survives the failed refresh.
	assert.Len(t, s.Decks(), 1)
	assert.Error(t, s.Err())
	assert.False(t, s.Loading())
}

func TestDeckStore_Loading_TrueWhileAnyOperationInFlight(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, gw := newTestDeckStore(t, ctrl)
	ctx := context.Background()

	started := make(chan struct{})
	release := make(chan struct{})
	gw.EXPECT().ListOwnedWordbooks(ctx, testToken).DoAndReturn(
		func(context.Context, string) ([]models.Wordbook, error) {
			close(started)
			<-release
			return nil, nil
		})
	gw.EXPECT().ListPublicWordbooks(ctx, testToken).Return(nil, nil)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = s.FetchOwnedDecks(ctx)
	}()
	<-started

	// A second operation completing must not clear the flag while the
	// first is still running.
	_, err := s.FetchPublicDecks(ctx)
	require.NoError(t, err)
	assert.True(t, s.Loading())

	close(release)
	<-done
	assert.False(t, s.Loading())
}

// ── Combined fetch and TTL ───────────────────────────────────────────────────

func TestDeckStore_FetchAllDecks_CachesWithinTTL(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, gw := newTestDeckStore(t, ctrl)
	ctx := context.Background()

	gw.EXPECT().ListOwnedWordbooks(ctx, testToken).Return([]models.Wordbook{deck("d1", "TOEFL")}, nil).Times(1)
	gw.EXPECT().ListPublicWordbooks(ctx, testToken).Return([]models.Wordbook{publicDeck("p1", "Phrasal verbs")}, nil).Times(1)

	owned, public, err := s.FetchAllDecks(ctx)
	require.NoError(t, err)
	assert.Len(t, owned, 1)
	assert.Len(t, public, 1)

	// Second call inside the window is served from cache.
	owned, public, err = s.FetchAllDecks(ctx)
	require.NoError(t, err)
	assert.Equal(t, "d1", owned[0].ID)
	assert.Equal(t, "p1", public[0].ID)
}

func TestDeckStore_FetchAllDecks_RefetchesAfterTTL(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, gw := newTestDeckStore(t, ctrl)
	ctx := context.Background()

	current := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return current }

	gw.EXPECT().ListOwnedWordbooks(ctx, testToken).Return([]models.Wordbook{deck("d1", "TOEFL")}, nil).Times(2)
	gw.EXPECT().ListPublicWordbooks(ctx, testToken).Return([]models.Wordbook{publicDeck("p1", "Phrasal verbs")}, nil).Times(2)

	_, _, err := s.FetchAllDecks(ctx)
	require.NoError(t, err)

	current = current.Add(5*time.Minute + time.Second)
	_, _, err = s.FetchAllDecks(ctx)
	require.NoError(t, err)
}

func TestDeckStore_FetchAllDecks_EmptyCacheNeverShortCircuits(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, gw := newTestDeckStore(t, ctrl)
	ctx := context.Background()

	gw.EXPECT().ListOwnedWordbooks(ctx, testToken).Return([]models.Wordbook{}, nil).Times(2)
	gw.EXPECT().ListPublicWordbooks(ctx, testToken).Return([]models.Wordbook{}, nil).Times(2)

	_, _, err := s.FetchAllDecks(ctx)
	require.NoError(t, err)

	// Both lists are empty, so the freshness window does not apply.
	_, _, err = s.FetchAllDecks(ctx)
	require.NoError(t, err)
}

func TestDeckStore_FetchAllDecks_OneHalfFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, gw := newTestDeckStore(t, ctrl)
	ctx := context.Background()

	gw.EXPECT().ListOwnedWordbooks(ctx, testToken).Return([]models.Wordbook{deck("d1", "TOEFL")}, nil)
	gw.EXPECT().ListPublicWordbooks(ctx, testToken).Return(nil, errors.New("boom"))

	owned, public, err := s.FetchAllDecks(ctx)
	require.NoError(t, err)
	assert.Len(t, owned, 1)
	assert.Empty(t, public)
	assert.Error(t, s.Err())
}

func TestDeckStore_FetchAllDecks_BothHalvesFail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, gw := newTestDeckStore(t, ctrl)
	ctx := context.Background()

	gw.EXPECT().ListOwnedWordbooks(ctx, testToken).Return(nil, errors.New("owned boom"))
	gw.EXPECT().ListPublicWordbooks(ctx, testToken).Return(nil, errors.New("public boom"))

	_, _, err := s.FetchAllDecks(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "owned boom")
	assert.Contains(t, err.Error(), "public boom")
}

func TestDeckStore_FetchOwnedDecks_IgnoresTTL(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, gw := newTestDeckStore(t, ctrl)
	ctx := context.Background()

	// The dedicated owned fetch always goes to the network, even right
	// after a combined fetch stamped the freshness window.
	gw.EXPECT().ListOwnedWordbooks(ctx, testToken).Return([]models.Wordbook{deck("d1", "TOEFL")}, nil).Times(2)
	gw.EXPECT().ListPublicWordbooks(ctx, testToken).Return([]models.Wordbook{publicDeck("p1", "Phrasal verbs")}, nil).Times(1)

	_, _, err := s.FetchAllDecks(ctx)
	require.NoError(t, err)

	_, err = s.FetchOwnedDecks(ctx)
	require.NoError(t, err)
}

// ── Card lists ───────────────────────────────────────────────────────────────

func TestDeckStore_FetchWordsInDeck_SortsByCreationTime(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, gw := newTestDeckStore(t, ctrl)
	ctx := context.Background()

	base := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	unsorted := []models.Card{
		{ID: "c3", English: "gamma", WordbookID: "d1", CreatedAt: base.Add(3 * time.Hour)},
		{ID: "c1", English: "alpha", WordbookID: "d1", CreatedAt: base.Add(1 * time.Hour)},
		{ID: "c2", English: "beta", WordbookID: "d1", CreatedAt: base.Add(2 * time.Hour)},
	}

	gw.EXPECT().ListWords(ctx, "d1", testToken).Return(unsorted, nil)

	got, err := s.FetchWordsInDeck(ctx, "d1")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"c1", "c2", "c3"}, []string{got[0].ID, got[1].ID, got[2].ID})

	cached, ok := s.Words("d1")
	require.True(t, ok)
	assert.Equal(t, got, cached)
}

func TestDeckStore_FetchWordsInDeck_StaleResponseDiscarded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, gw := newTestDeckStore(t, ctrl)
	ctx := context.Background()

	release := make(chan struct{})
	started := make(chan struct{})

	gw.EXPECT().ListWords(ctx, "d1", testToken).DoAndReturn(
		func(context.Context, string, string) ([]models.Card, error) {
			close(started)
			<-release
			return []models.Card{{ID: "c1", English: "alpha", WordbookID: "d1"}}, nil
		})
	gw.EXPECT().DeleteWordbook(ctx, "d1", testToken).Return(nil)

	done := make(chan error, 1)
	go func() {
		_, err := s.FetchWordsInDeck(ctx, "d1")
		done <- err
	}()

	<-started
	// The delete bumps the sequence for d1's card list, so the in-flight
	// response must not land in the cache.
	require.NoError(t, s.DeleteDeck(ctx, "d1"))
	close(release)
	require.NoError(t, <-done)

	_, ok := s.Words("d1")
	assert.False(t, ok)
}

// ── Card mutations ───────────────────────────────────────────────────────────

func TestDeckStore_AddCard_RefetchesDeckWords(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, gw := newTestDeckStore(t, ctrl)
	ctx := context.Background()

	newCard := models.NewCard{English: "ephemeral", WordbookID: "d1"}
	created := models.Card{ID: "c9", English: "ephemeral", WordbookID: "d1"}

	gw.EXPECT().CreateWord(ctx, newCard, testToken).Return(created, nil)
	gw.EXPECT().ListWords(ctx, "d1", testToken).Return([]models.Card{created}, nil)

	got, err := s.AddCard(ctx, newCard)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	cached, ok := s.Words("d1")
	require.True(t, ok)
	assert.Len(t, cached, 1)
}

func TestDeckStore_AddCard_ValidationSkipsGateway(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, _ := newTestDeckStore(t, ctrl)

	_, err := s.AddCard(context.Background(), models.NewCard{WordbookID: "d1"})
	require.ErrorIs(t, err, ErrValidation)
}

func TestDeckStore_AddCard_GatewayErrorLeavesCacheUntouched(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, gw := newTestDeckStore(t, ctrl)
	ctx := context.Background()

	seeded := models.Card{ID: "c1", English: "alpha", WordbookID: "d1"}
	gw.EXPECT().ListWords(ctx, "d1", testToken).Return([]models.Card{seeded}, nil)
	_, err := s.FetchWordsInDeck(ctx, "d1")
	require.NoError(t, err)

	newCard := models.NewCard{English: "beta", WordbookID: "d1"}
	gw.EXPECT().CreateWord(ctx, newCard, testToken).Return(models.Card{}, errors.New("boom"))

	_, err = s.AddCard(ctx, newCard)
	require.Error(t, err)

	cached, ok := s.Words("d1")
	require.True(t, ok)
	assert.Equal(t, []models.Card{seeded}, cached)
	assert.Error(t, s.Err())
}

func TestDeckStore_DeleteCard_RefetchesDeckWords(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, gw := newTestDeckStore(t, ctrl)
	ctx := context.Background()

	gw.EXPECT().DeleteWord(ctx, "c1", testToken).Return(nil)
	gw.EXPECT().ListWords(ctx, "d1", testToken).Return([]models.Card{}, nil)

	require.NoError(t, s.DeleteCard(ctx, "d1", "c1"))

	cached, ok := s.Words("d1")
	require.True(t, ok)
	assert.Empty(t, cached)
}

func TestDeckStore_AddCardToCache_AppendsLocally(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, _ := newTestDeckStore(t, ctrl)

	s.AddCardToCache("d1", models.Card{ID: "c1", English: "alpha", WordbookID: "d1"})

	cached, ok := s.Words("d1")
	require.True(t, ok)
	assert.Len(t, cached, 1)
}

// ── Deck mutations ───────────────────────────────────────────────────────────

func TestDeckStore_CreateDeck_RefetchesOwned(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, gw := newTestDeckStore(t, ctrl)
	ctx := context.Background()

	data := models.WordbookData{Name: "New deck"}
	created := deck("d1", "New deck")

	gw.EXPECT().CreateWordbook(ctx, data, testToken).Return(created, nil)
	gw.EXPECT().ListOwnedWordbooks(ctx, testToken).Return([]models.Wordbook{created}, nil)

	got, err := s.CreateDeck(ctx, data)
	require.NoError(t, err)
	assert.Equal(t, created, got)
	assert.Equal(t, []models.Wordbook{created}, s.Decks())
}

func TestDeckStore_CreateDeck_EmptyName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, _ := newTestDeckStore(t, ctrl)

	_, err := s.CreateDeck(context.Background(), models.WordbookData{})
	require.ErrorIs(t, err, ErrValidation)
}

func TestDeckStore_CreateDeck_GatewayErrorNoMutation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, gw := newTestDeckStore(t, ctrl)
	ctx := context.Background()

	gw.EXPECT().CreateWordbook(ctx, gomock.Any(), testToken).Return(models.Wordbook{}, errors.New("boom"))

	_, err := s.CreateDeck(ctx, models.WordbookData{Name: "New deck"})
	require.Error(t, err)
	assert.Empty(t, s.Decks())
}

func TestDeckStore_UpdateDeck_PatchesInPlace(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, gw := newTestDeckStore(t, ctrl)
	ctx := context.Background()

	seeded := deck("d1", "Old name")
	seeded.Description = "original description"
	seeded.NumWords = 7
	gw.EXPECT().ListOwnedWordbooks(ctx, testToken).Return([]models.Wordbook{seeded}, nil)
	_, err := s.FetchOwnedDecks(ctx)
	require.NoError(t, err)

	name := "New name"
	patch := models.WordbookPatch{Name: &name}
	// A terse update response: the server echoes only what changed.
	updated := models.Wordbook{ID: "d1", Name: "New name"}
	gw.EXPECT().UpdateWordbook(ctx, "d1", patch, testToken).Return(updated, nil)

	_, err = s.UpdateDeck(ctx, "d1", patch)
	require.NoError(t, err)

	decks := s.Decks()
	require.Len(t, decks, 1)
	assert.Equal(t, "New name", decks[0].Name)
	// Fields the response left zero keep their cached values.
	assert.Equal(t, "original description", decks[0].Description)
	assert.Equal(t, 7, decks[0].NumWords)
}

func TestDeckStore_UpdateDeck_CanUnpublish(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, gw := newTestDeckStore(t, ctrl)
	ctx := context.Background()

	seeded := deck("d1", "Deck")
	seeded.IsPublic = true
	gw.EXPECT().ListOwnedWordbooks(ctx, testToken).Return([]models.Wordbook{seeded}, nil)
	_, err := s.FetchOwnedDecks(ctx)
	require.NoError(t, err)

	isPublic := false
	patch := models.WordbookPatch{IsPublic: &isPublic}
	updated := deck("d1", "Deck")
	gw.EXPECT().UpdateWordbook(ctx, "d1", patch, testToken).Return(updated, nil)

	_, err = s.UpdateDeck(ctx, "d1", patch)
	require.NoError(t, err)

	decks := s.Decks()
	require.Len(t, decks, 1)
	assert.False(t, decks[0].IsPublic)
}

func TestDeckStore_UpdateDeck_GatewayErrorNoMutation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, gw := newTestDeckStore(t, ctrl)
	ctx := context.Background()

	seeded := deck("d1", "Old name")
	seeded.Description = "original description"
	seeded.NumWords = 7
	gw.EXPECT().ListOwnedWordbooks(ctx, testToken).Return([]models.Wordbook{seeded}, nil)
	_, err := s.FetchOwnedDecks(ctx)
	require.NoError(t, err)
	before := s.Decks()

	name := "New name"
	patch := models.WordbookPatch{Name: &name}
	gw.EXPECT().UpdateWordbook(ctx, "d1", patch, testToken).Return(models.Wordbook{}, errors.New("boom"))

	_, err = s.UpdateDeck(ctx, "d1", patch)
	require.Error(t, err)

	// A rejected update leaves the cached deck exactly as it was.
	assert.Equal(t, before, s.Decks())
	assert.Error(t, s.Err())
}

func TestDeckStore_DeleteDeck_CascadesLocally(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, gw := newTestDeckStore(t, ctrl)
	ctx := context.Background()

	gw.EXPECT().ListOwnedWordbooks(ctx, testToken).Return([]models.Wordbook{deck("d1", "TOEFL"), deck("d2", "IELTS")}, nil)
	_, err := s.FetchOwnedDecks(ctx)
	require.NoError(t, err)

	gw.EXPECT().ListWords(ctx, "d1", testToken).Return([]models.Card{{ID: "c1", WordbookID: "d1"}}, nil)
	_, err = s.FetchWordsInDeck(ctx, "d1")
	require.NoError(t, err)

	s.SelectDeck("d1")
	s.NavigateCard(0)

	gw.EXPECT().DeleteWordbook(ctx, "d1", testToken).Return(nil)
	require.NoError(t, s.DeleteDeck(ctx, "d1"))

	decks := s.Decks()
	require.Len(t, decks, 1)
	assert.Equal(t, "d2", decks[0].ID)

	_, ok := s.Words("d1")
	assert.False(t, ok)
	assert.Empty(t, s.SelectedDeck())
}

func TestDeckStore_DeleteDeck_GatewayErrorNoMutation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, gw := newTestDeckStore(t, ctrl)
	ctx := context.Background()

	gw.EXPECT().ListOwnedWordbooks(ctx, testToken).Return([]models.Wordbook{deck("d1", "TOEFL")}, nil)
	_, err := s.FetchOwnedDecks(ctx)
	require.NoError(t, err)

	gw.EXPECT().DeleteWordbook(ctx, "d1", testToken).Return(errors.New("boom"))
	require.Error(t, s.DeleteDeck(ctx, "d1"))

	assert.Len(t, s.Decks(), 1)
}

func TestDeckStore_DuplicateDeck_ForcesPrivateCopy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, gw := newTestDeckStore(t, ctrl)
	ctx := context.Background()

	data := models.WordbookData{Name: "My copy", IsPublic: true}
	created := deck("d9", "My copy")

	gw.EXPECT().DuplicateWordbook(ctx, "p1", gomock.Any(), testToken).DoAndReturn(
		func(_ context.Context, _ string, got models.WordbookData, _ string) (models.Wordbook, error) {
			assert.False(t, got.IsPublic)
			return created, nil
		})
	gw.EXPECT().ListOwnedWordbooks(ctx, testToken).Return([]models.Wordbook{created}, nil)

	_, err := s.DuplicateDeck(ctx, "p1", data)
	require.NoError(t, err)
	assert.Equal(t, []models.Wordbook{created}, s.Decks())
}

// ── Search ───────────────────────────────────────────────────────────────────

func TestDeckStore_SearchDecks_PassesThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, gw := newTestDeckStore(t, ctrl)
	ctx := context.Background()

	query := models.SearchQuery{Q: "toefl", SortBy: models.SortByNumWords}
	want := models.SearchResult{
		Wordbooks: []models.Wordbook{publicDeck("d1", "TOEFL 3800")},
		Total:     1,
		Page:      1,
	}
	gw.EXPECT().SearchWordbooks(ctx, query, testToken).Return(want, nil)

	got, err := s.SearchDecks(ctx, query)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.NoError(t, s.Err())
}

func TestDeckStore_SearchDecks_InvalidSortKeySkipsGateway(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, _ := newTestDeckStore(t, ctrl)

	_, err := s.SearchDecks(context.Background(), models.SearchQuery{SortBy: "popularity"})
	require.ErrorIs(t, err, ErrValidation)
}

func TestDeckStore_SearchDecks_GatewayErrorRecorded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, gw := newTestDeckStore(t, ctrl)
	ctx := context.Background()

	gw.EXPECT().SearchWordbooks(ctx, gomock.Any(), testToken).Return(models.SearchResult{}, errors.New("boom"))

	_, err := s.SearchDecks(ctx, models.SearchQuery{Q: "toefl"})
	require.Error(t, err)
	assert.Error(t, s.Err())
}

// ── InitializeDeckData ───────────────────────────────────────────────────────

func TestDeckStore_InitializeDeckData_FirstOpen(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, gw := newTestDeckStore(t, ctrl)
	ctx := context.Background()

	gw.EXPECT().ListOwnedWordbooks(ctx, testToken).Return([]models.Wordbook{deck("d1", "TOEFL")}, nil)
	gw.EXPECT().ListWords(ctx, "d1", testToken).Return([]models.Card{{ID: "c1", WordbookID: "d1"}}, nil)

	words, name, err := s.InitializeDeckData(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, "TOEFL", name)
	assert.Len(t, words, 1)
	assert.Equal(t, "d1", s.SelectedDeck())
}

func TestDeckStore_InitializeDeckData_CachedWordsSkipFetch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, gw := newTestDeckStore(t, ctrl)
	ctx := context.Background()

	gw.EXPECT().ListOwnedWordbooks(ctx, testToken).Return([]models.Wordbook{deck("d1", "TOEFL")}, nil)
	_, err := s.FetchOwnedDecks(ctx)
	require.NoError(t, err)

	gw.EXPECT().ListWords(ctx, "d1", testToken).Return([]models.Card{{ID: "c1", WordbookID: "d1"}}, nil).Times(1)
	_, err = s.FetchWordsInDeck(ctx, "d1")
	require.NoError(t, err)

	// No further ListWords expectation: the cached list must be reused.
	words, name, err := s.InitializeDeckData(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, "TOEFL", name)
	assert.Len(t, words, 1)
}

func TestDeckStore_InitializeDeckData_UnknownDeckYieldsEmptyName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, gw := newTestDeckStore(t, ctrl)
	ctx := context.Background()

	gw.EXPECT().ListOwnedWordbooks(ctx, testToken).Return([]models.Wordbook{deck("d1", "TOEFL")}, nil)
	gw.EXPECT().ListWords(ctx, "p9", testToken).Return([]models.Card{}, nil)

	_, name, err := s.InitializeDeckData(ctx, "p9")
	require.NoError(t, err)
	assert.Empty(t, name)
}

// ── Selection ────────────────────────────────────────────────────────────────

func TestDeckStore_Selection_PersistsPerDeck(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, _ := newTestDeckStore(t, ctrl)

	s.SelectDeck("d1")
	s.NavigateCard(4)
	s.SelectDeck("d2")
	s.NavigateCard(2)

	assert.Equal(t, 4, s.CardIndex("d1"))
	assert.Equal(t, 2, s.CardIndex("d2"))

	s.SelectDeck("d1")
	assert.Equal(t, 4, s.CardIndex("d1"))
}

func TestDeckStore_NavigateCard_NoopWithoutSelection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, _ := newTestDeckStore(t, ctrl)

	s.NavigateCard(3)
	assert.Zero(t, s.CardIndex("d1"))
}

// ── Reset ────────────────────────────────────────────────────────────────────

func TestDeckStore_Reset_DropsEverything(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, gw := newTestDeckStore(t, ctrl)
	ctx := context.Background()

	gw.EXPECT().ListOwnedWordbooks(ctx, testToken).Return([]models.Wordbook{deck("d1", "TOEFL")}, nil)
	gw.EXPECT().ListPublicWordbooks(ctx, testToken).Return([]models.Wordbook{publicDeck("p1", "Phrasal verbs")}, nil)
	_, _, err := s.FetchAllDecks(ctx)
	require.NoError(t, err)

	s.SelectDeck("d1")
	s.Reset()

	assert.Empty(t, s.Decks())
	assert.Empty(t, s.PublicDecks())
	assert.Empty(t, s.SelectedDeck())

	// The freshness stamp is gone too, so the next combined fetch hits
	// the network again.
	gw.EXPECT().ListOwnedWordbooks(ctx, testToken).Return([]models.Wordbook{}, nil)
	gw.EXPECT().ListPublicWordbooks(ctx, testToken).Return([]models.Wordbook{}, nil)
	_, _, err = s.FetchAllDecks(ctx)
	require.NoError(t, err)
}
