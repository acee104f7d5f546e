package store

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mkondo/go-wordbook/internal/identity"
	"github.com/mkondo/go-wordbook/internal/logger"
	"github.com/mkondo/go-wordbook/internal/mock"
	"github.com/mkondo/go-wordbook/models"
)

func newTestBookmarkStore(t *testing.T, ctrl *gomock.Controller) (*BookmarkStore, *mock.MockGateway) {
	t.Helper()
	gw := mock.NewMockGateway(ctrl)
	s := NewBookmarkStore(gw, identity.Static(testToken, "user-1"), logger.Nop())
	return s, gw
}

func bookmark(id, cardID string) models.Bookmark {
	return models.Bookmark{ID: id, CardID: cardID, UserID: "user-1"}
}

// ── Load ─────────────────────────────────────────────────────────────────────

func TestBookmarkStore_Load_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, gw := newTestBookmarkStore(t, ctrl)
	ctx := context.Background()

	gw.EXPECT().ListBookmarks(ctx, testToken).Return([]models.Bookmark{bookmark("b1", "c1"), bookmark("b2", "c2")}, nil)

	require.NoError(t, s.Load(ctx))
	assert.True(t, s.Loaded())
	assert.True(t, s.IsBookmarked("c1"))
	assert.True(t, s.IsBookmarked("c2"))
	assert.False(t, s.IsBookmarked("c3"))
	assert.Len(t, s.Bookmarks(), 2)
}

func TestBookmarkStore_Load_DedupesByCard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, gw := newTestBookmarkStore(t, ctrl)
	ctx := context.Background()

	// The remote briefly holds two records for c1; the earlier one wins.
	gw.EXPECT().ListBookmarks(ctx, testToken).Return([]models.Bookmark{
		bookmark("b1", "c1"),
		bookmark("b2", "c1"),
		bookmark("b3", "c2"),
	}, nil)

	require.NoError(t, s.Load(ctx))

	got := s.Bookmarks()
	require.Len(t, got, 2)
	assert.Equal(t, "b1", got[0].ID)
	assert.Equal(t, "b3", got[1].ID)
}

func TestBookmarkStore_Load_SecondCallIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, gw := newTestBookmarkStore(t, ctrl)
	ctx := context.Background()

	gw.EXPECT().ListBookmarks(ctx, testToken).Return([]models.Bookmark{bookmark("b1", "c1")}, nil).Times(1)

	require.NoError(t, s.Load(ctx))
	require.NoError(t, s.Load(ctx))
	assert.Len(t, s.Bookmarks(), 1)
}

func TestBookmarkStore_Load_ConcurrentCallersSingleFetch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, gw := newTestBookmarkStore(t, ctrl)
	ctx := context.Background()

	release := make(chan struct{})
	gw.EXPECT().ListBookmarks(ctx, testToken).DoAndReturn(
		func(context.Context, string) ([]models.Bookmark, error) {
			<-release
			return []models.Bookmark{bookmark("b1", "c1")}, nil
		}).Times(1)

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Load(ctx)
		}()
	}
	close(release)
	wg.Wait()

	assert.True(t, s.Loaded())
	assert.Len(t, s.Bookmarks(), 1)
}

func TestBookmarkStore_Load_NoToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gw := mock.NewMockGateway(ctrl)
	s := NewBookmarkStore(gw, identity.Static("", ""), logger.Nop())

	require.ErrorIs(t, s.Load(context.Background()), ErrAuthRequired)
	assert.False(t, s.Loaded())
}

func TestBookmarkStore_Load_GatewayErrorAllowsRetry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, gw := newTestBookmarkStore(t, ctrl)
	ctx := context.Background()

	gw.EXPECT().ListBookmarks(ctx, testToken).Return(nil, errors.New("boom"))
	require.Error(t, s.Load(ctx))
	assert.False(t, s.Loaded())
	assert.Error(t, s.Err())

	// A failed load does not latch loaded, so the next Load fetches again.
	gw.EXPECT().ListBookmarks(ctx, testToken).Return([]models.Bookmark{bookmark("b1", "c1")}, nil)
	require.NoError(t, s.Load(ctx))
	assert.True(t, s.Loaded())
}

// ── Toggle ───────────────────────────────────────────────────────────────────

func TestBookmarkStore_Toggle_AddsWhenAbsent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, gw := newTestBookmarkStore(t, ctrl)
	ctx := context.Background()

	gw.EXPECT().CreateBookmark(ctx, "c1", testToken).Return(bookmark("b1", "c1"), nil)

	require.NoError(t, s.Toggle(ctx, "c1"))
	assert.True(t, s.IsBookmarked("c1"))
	assert.Len(t, s.Bookmarks(), 1)
}

func TestBookmarkStore_Toggle_RemovesWhenPresent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, gw := newTestBookmarkStore(t, ctrl)
	ctx := context.Background()

	gw.EXPECT().ListBookmarks(ctx, testToken).Return([]models.Bookmark{bookmark("b1", "c1"), bookmark("b2", "c2")}, nil)
	require.NoError(t, s.Load(ctx))

	gw.EXPECT().DeleteBookmarkByCard(ctx, "c1", testToken).Return(nil)

	require.NoError(t, s.Toggle(ctx, "c1"))
	assert.False(t, s.IsBookmarked("c1"))
	assert.True(t, s.IsBookmarked("c2"))
	assert.Len(t, s.Bookmarks(), 1)
}

func TestBookmarkStore_Toggle_AddFailureLeavesMembership(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, gw := newTestBookmarkStore(t, ctrl)
	ctx := context.Background()

	gw.EXPECT().CreateBookmark(ctx, "c1", testToken).Return(models.Bookmark{}, errors.New("boom"))

	require.Error(t, s.Toggle(ctx, "c1"))
	assert.False(t, s.IsBookmarked("c1"))
	assert.Empty(t, s.Bookmarks())
	assert.Error(t, s.Err())
}

func TestBookmarkStore_Toggle_RemoveFailureLeavesMembership(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, gw := newTestBookmarkStore(t, ctrl)
	ctx := context.Background()

	gw.EXPECT().ListBookmarks(ctx, testToken).Return([]models.Bookmark{bookmark("b1", "c1")}, nil)
	require.NoError(t, s.Load(ctx))

	gw.EXPECT().DeleteBookmarkByCard(ctx, "c1", testToken).Return(errors.New("boom"))

	require.Error(t, s.Toggle(ctx, "c1"))
	assert.True(t, s.IsBookmarked("c1"))
	assert.Len(t, s.Bookmarks(), 1)
}

func TestBookmarkStore_Toggle_EmptyCardID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, _ := newTestBookmarkStore(t, ctrl)

	require.ErrorIs(t, s.Toggle(context.Background(), ""), ErrValidation)
}

func TestBookmarkStore_Toggle_NoToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gw := mock.NewMockGateway(ctrl)
	s := NewBookmarkStore(gw, identity.Static("", ""), logger.Nop())

	require.ErrorIs(t, s.Toggle(context.Background(), "c1"), ErrAuthRequired)
}

// ── Reset ────────────────────────────────────────────────────────────────────

func TestBookmarkStore_Reset_AllowsFreshLoad(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, gw := newTestBookmarkStore(t, ctrl)
	ctx := context.Background()

	gw.EXPECT().ListBookmarks(ctx, testToken).Return([]models.Bookmark{bookmark("b1", "c1")}, nil)
	require.NoError(t, s.Load(ctx))

	s.Reset()
	assert.False(t, s.Loaded())
	assert.False(t, s.IsBookmarked("c1"))
	assert.Empty(t, s.Bookmarks())

	gw.EXPECT().ListBookmarks(ctx, testToken).Return([]models.Bookmark{}, nil)
	require.NoError(t, s.Load(ctx))
	assert.True(t, s.Loaded())
}
