package models

// Sort keys accepted by the wordbook search endpoint.
const (
	SortByCreatedAt = "created_at"
	SortByUpdatedAt = "updated_at"
	SortByNumWords  = "num_words"

	SortOrderAsc  = "asc"
	SortOrderDesc = "desc"
)

// DefaultSearchLimit is the page size applied when SearchQuery.Limit is zero.
const DefaultSearchLimit = 20

// SearchQuery describes a wordbook search. Nil fields are omitted from the
// query string and fall back to server defaults.
type SearchQuery struct {
	// Q is the free-text query over wordbook names and descriptions.
	Q string

	// IsPublic restricts results to public (true) or private (false)
	// wordbooks when set.
	IsPublic *bool

	// IsOwned restricts results to wordbooks owned by the caller when set.
	IsOwned *bool

	// MinWords filters out wordbooks with fewer cards when set.
	MinWords *int

	// SortBy is one of the SortBy* constants; empty means created_at.
	SortBy string

	// SortOrder is asc or desc; empty means desc.
	SortOrder string

	// Page is 1-based; zero means the first page.
	Page int

	// Limit is the page size; zero means DefaultSearchLimit.
	Limit int
}

// SearchResult is the paginated envelope returned by the search endpoint.
type SearchResult struct {
	Wordbooks  []Wordbook `json:"wordbooks"`
	Total      int        `json:"total"`
	Page       int        `json:"page"`
	TotalPages int        `json:"total_pages"`
	HasNext    bool       `json:"has_next"`
	HasPrev    bool       `json:"has_prev"`
	Query      string     `json:"query"`
}
