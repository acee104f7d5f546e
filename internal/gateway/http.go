package gateway

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/mkondo/go-wordbook/internal/config"
	"github.com/mkondo/go-wordbook/internal/logger"
	"github.com/mkondo/go-wordbook/models"
)

type httpGateway struct {
	client *resty.Client
	logger *logger.Logger
}

// NewHTTPGateway constructs an HTTP/REST implementation of [Gateway]. It
// normalises and validates the base URL from apiCfg.BaseURL and configures
// the underlying client with the resolved base URL and request timeout.
//
// Returns an error if apiCfg.BaseURL is empty or cannot be parsed as a valid
// URL.
func NewHTTPGateway(apiCfg config.API, log *logger.Logger) (Gateway, error) {
	baseURL, err := normalizeBaseURL(apiCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid gateway base url: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(apiCfg.RequestTimeout)

	return &httpGateway{client: client, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// request builds a request with the bearer token and a fresh trace id
// attached. An empty token produces an unauthenticated request; precondition
// checks belong to the stores, not the transport.
func (g *httpGateway) request(ctx context.Context, token string) *resty.Request {
	req := g.client.R().
		SetContext(ctx).
		SetHeader("X-Request-Id", uuid.NewString())
	if token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// ListOwnedWordbooks implements [Gateway]. GET /wordbooks.
func (g *httpGateway) ListOwnedWordbooks(ctx context.Context, token string) ([]models.Wordbook, error) {
	var items []models.Wordbook

	resp, err := g.request(ctx, token).
		SetResult(&items).
		Get("/wordbooks")
	if err != nil {
		return nil, fmt.Errorf("list owned wordbooks request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	g.logger.Debug().Int("count", len(items)).Msg("listed owned wordbooks")
	return items, nil
}

// ListPublicWordbooks implements [Gateway]. GET /wordbooks/public.
func (g *httpGateway) ListPublicWordbooks(ctx context.Context, token string) ([]models.Wordbook, error) {
	var items []models.Wordbook

	resp, err := g.request(ctx, token).
		SetResult(&items).
		Get("/wordbooks/public")
	if err != nil {
		return nil, fmt.Errorf("list public wordbooks request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	g.logger.Debug().Int("count", len(items)).Msg("listed public wordbooks")
	return items, nil
}

// GetWordbook implements [Gateway]. GET /wordbooks/{id}.
func (g *httpGateway) GetWordbook(ctx context.Context, id, token string) (models.Wordbook, error) {
	var item models.Wordbook

	resp, err := g.request(ctx, token).
		SetResult(&item).
		Get("/wordbooks/" + url.PathEscape(id))
	if err != nil {
		return models.Wordbook{}, fmt.Errorf("get wordbook request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Wordbook{}, err
	}

	return item, nil
}

// SearchWordbooks implements [Gateway]. GET /wordbooks/search with the query
// encoded as URL parameters; unset optional filters are omitted.
func (g *httpGateway) SearchWordbooks(ctx context.Context, query models.SearchQuery, token string) (models.SearchResult, error) {
	var result models.SearchResult

	resp, err := g.request(ctx, token).
		SetQueryParams(searchParams(query)).
		SetResult(&result).
		Get("/wordbooks/search")
	if err != nil {
		return models.SearchResult{}, fmt.Errorf("search wordbooks request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SearchResult{}, err
	}

	return result, nil
}

func searchParams(query models.SearchQuery) map[string]string {
	params := make(map[string]string)

	if query.Q != "" {
		params["q"] = query.Q
	}
	if query.IsPublic != nil {
		params["is_public"] = strconv.FormatBool(*query.IsPublic)
	}
	if query.IsOwned != nil {
		params["is_owned"] = strconv.FormatBool(*query.IsOwned)
	}
	if query.MinWords != nil {
		params["min_words"] = strconv.Itoa(*query.MinWords)
	}
	if query.SortBy != "" {
		params["sort_by"] = query.SortBy
	}
	if query.SortOrder != "" {
		params["sort_order"] = query.SortOrder
	}

	page := query.Page
	if page < 1 {
		page = 1
	}
	params["page"] = strconv.Itoa(page)

	limit := query.Limit
	if limit < 1 {
		limit = models.DefaultSearchLimit
	}
	params["limit"] = strconv.Itoa(limit)

	return params
}

// CreateWordbook implements [Gateway]. POST /wordbooks.
func (g *httpGateway) CreateWordbook(ctx context.Context, data models.WordbookData, token string) (models.Wordbook, error) {
	var created models.Wordbook

	resp, err := g.request(ctx, token).
		SetHeader("Content-Type", "application/json").
		SetBody(data).
		SetResult(&created).
		Post("/wordbooks")
	if err != nil {
		return models.Wordbook{}, fmt.Errorf("create wordbook request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Wordbook{}, err
	}

	g.logger.Debug().Str("wordbook_id", created.ID).Msg("created wordbook")
	return created, nil
}

// UpdateWordbook implements [Gateway]. PUT /wordbooks/{id} with a partial
// body; nil patch fields are omitted.
func (g *httpGateway) UpdateWordbook(ctx context.Context, id string, patch models.WordbookPatch, token string) (models.Wordbook, error) {
	var updated models.Wordbook

	resp, err := g.request(ctx, token).
		SetHeader("Content-Type", "application/json").
		SetBody(patch).
		SetResult(&updated).
		Put("/wordbooks/" + url.PathEscape(id))
	if err != nil {
		return models.Wordbook{}, fmt.Errorf("update wordbook request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Wordbook{}, err
	}

	return updated, nil
}

// DeleteWordbook implements [Gateway]. DELETE /wordbooks/{id}.
func (g *httpGateway) DeleteWordbook(ctx context.Context, id, token string) error {
	resp, err := g.request(ctx, token).
		Delete("/wordbooks/" + url.PathEscape(id))
	if err != nil {
		return fmt.Errorf("delete wordbook request: %w", err)
	}

	return mapHTTPError(resp)
}

// DuplicateWordbook implements [Gateway]. POST /wordbooks/{id}/duplicate.
func (g *httpGateway) DuplicateWordbook(ctx context.Context, sourceID string, data models.WordbookData, token string) (models.Wordbook, error) {
	var created models.Wordbook

	resp, err := g.request(ctx, token).
		SetHeader("Content-Type", "application/json").
		SetBody(data).
		SetResult(&created).
		Post("/wordbooks/" + url.PathEscape(sourceID) + "/duplicate")
	if err != nil {
		return models.Wordbook{}, fmt.Errorf("duplicate wordbook request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Wordbook{}, err
	}

	g.logger.Debug().
		Str("source_id", sourceID).
		Str("wordbook_id", created.ID).
		Msg("duplicated wordbook")
	return created, nil
}

// ListWords implements [Gateway]. GET /wordbooks/{id}/words. Order is
// whatever the server returns; the deck store sorts.
func (g *httpGateway) ListWords(ctx context.Context, wordbookID, token string) ([]models.Card, error) {
	var items []models.Card

	resp, err := g.request(ctx, token).
		SetResult(&items).
		Get("/wordbooks/" + url.PathEscape(wordbookID) + "/words")
	if err != nil {
		return nil, fmt.Errorf("list words request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return items, nil
}

// CreateWord implements [Gateway]. POST /words/.
func (g *httpGateway) CreateWord(ctx context.Context, card models.NewCard, token string) (models.Card, error) {
	var created models.Card

	resp, err := g.request(ctx, token).
		SetHeader("Content-Type", "application/json").
		SetBody(card).
		SetResult(&created).
		Post("/words/")
	if err != nil {
		return models.Card{}, fmt.Errorf("create word request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Card{}, err
	}

	return created, nil
}

// UpdateWord implements [Gateway]. PUT /words/{id}.
func (g *httpGateway) UpdateWord(ctx context.Context, id string, patch models.CardPatch, token string) (models.Card, error) {
	var updated models.Card

	resp, err := g.request(ctx, token).
		SetHeader("Content-Type", "application/json").
		SetBody(patch).
		SetResult(&updated).
		Put("/words/" + url.PathEscape(id))
	if err != nil {
		return models.Card{}, fmt.Errorf("update word request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Card{}, err
	}

	return updated, nil
}

// DeleteWord implements [Gateway]. DELETE /words/{id}.
func (g *httpGateway) DeleteWord(ctx context.Context, id, token string) error {
	resp, err := g.request(ctx, token).
		Delete("/words/" + url.PathEscape(id))
	if err != nil {
		return fmt.Errorf("delete word request: %w", err)
	}

	return mapHTTPError(resp)
}

// ListBookmarks implements [Gateway]. GET /bookmarks/.
func (g *httpGateway) ListBookmarks(ctx context.Context, token string) ([]models.Bookmark, error) {
	var items []models.Bookmark

	resp, err := g.request(ctx, token).
		SetResult(&items).
		Get("/bookmarks/")
	if err != nil {
		return nil, fmt.Errorf("list bookmarks request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return items, nil
}

// CreateBookmark implements [Gateway]. POST /bookmarks/.
func (g *httpGateway) CreateBookmark(ctx context.Context, cardID, token string) (models.Bookmark, error) {
	var created models.Bookmark

	resp, err := g.request(ctx, token).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"card_id": cardID}).
		SetResult(&created).
		Post("/bookmarks/")
	if err != nil {
		return models.Bookmark{}, fmt.Errorf("create bookmark request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Bookmark{}, err
	}

	return created, nil
}

// DeleteBookmark implements [Gateway]. DELETE /bookmarks/{id}/.
func (g *httpGateway) DeleteBookmark(ctx context.Context, id, token string) error {
	resp, err := g.request(ctx, token).
		Delete("/bookmarks/" + url.PathEscape(id) + "/")
	if err != nil {
		return fmt.Errorf("delete bookmark request: %w", err)
	}

	return mapHTTPError(resp)
}

// DeleteBookmarkByCard implements [Gateway]. DELETE /bookmarks/card/{cardId}/.
func (g *httpGateway) DeleteBookmarkByCard(ctx context.Context, cardID, token string) error {
	resp, err := g.request(ctx, token).
		Delete("/bookmarks/card/" + url.PathEscape(cardID) + "/")
	if err != nil {
		return fmt.Errorf("delete bookmark by card request: %w", err)
	}

	return mapHTTPError(resp)
}

// BookmarkExists implements [Gateway]. GET /bookmarks/check/{cardId}/.
func (g *httpGateway) BookmarkExists(ctx context.Context, cardID, token string) (bool, error) {
	var body struct {
		IsBookmarked bool `json:"is_bookmarked"`
	}

	resp, err := g.request(ctx, token).
		SetResult(&body).
		Get("/bookmarks/check/" + url.PathEscape(cardID) + "/")
	if err != nil {
		return false, fmt.Errorf("check bookmark request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return false, err
	}

	return body.IsBookmarked, nil
}

// GetProfile implements [Gateway]. GET /users/me/.
func (g *httpGateway) GetProfile(ctx context.Context, token string) (models.UserProfile, error) {
	var profile models.UserProfile

	resp, err := g.request(ctx, token).
		SetResult(&profile).
		Get("/users/me/")
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("get profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserProfile{}, err
	}

	return profile, nil
}

// UpdateProfile implements [Gateway]. PUT /users/me/.
func (g *httpGateway) UpdateProfile(ctx context.Context, patch models.UserProfilePatch, token string) (models.UserProfile, error) {
	var profile models.UserProfile

	resp, err := g.request(ctx, token).
		SetHeader("Content-Type", "application/json").
		SetBody(patch).
		SetResult(&profile).
		Put("/users/me/")
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("update profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserProfile{}, err
	}

	return profile, nil
}

// GetSettings implements [Gateway]. GET /user-settings/me/.
func (g *httpGateway) GetSettings(ctx context.Context, token string) (models.UserSettings, error) {
	var settings models.UserSettings

	resp, err := g.request(ctx, token).
		SetResult(&settings).
		Get("/user-settings/me/")
	if err != nil {
		return models.UserSettings{}, fmt.Errorf("get settings request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserSettings{}, err
	}

	return settings, nil
}

// UpdateSettings implements [Gateway]. PUT /user-settings/me/.
func (g *httpGateway) UpdateSettings(ctx context.Context, patch models.UserSettingsPatch, token string) (models.UserSettings, error) {
	var settings models.UserSettings

	resp, err := g.request(ctx, token).
		SetHeader("Content-Type", "application/json").
		SetBody(patch).
		SetResult(&settings).
		Put("/user-settings/me/")
	if err != nil {
		return models.UserSettings{}, fmt.Errorf("update settings request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserSettings{}, err
	}

	return settings, nil
}
