package models

import "time"

// Wordbook is a named, ownable collection of vocabulary cards. A wordbook
// belongs to exactly one user account and may optionally be published for
// other users to browse and duplicate.
type Wordbook struct {
	// ID is the server-assigned unique identifier of the wordbook.
	ID string `json:"id"`

	// Name is the user-visible title of the wordbook.
	Name string `json:"name"`

	// Description is an optional free-text summary.
	Description string `json:"description,omitempty"`

	// IsPublic reports whether the wordbook is visible to other users.
	IsPublic bool `json:"is_public"`

	// NumWords is the server-maintained count of cards in the wordbook.
	NumWords int `json:"num_words"`

	// OwnerID identifies the owning user account. The client never
	// resolves it beyond the optional display name below.
	OwnerID string `json:"owner_id,omitempty"`

	// OwnerDisplayName is the owner's display name, present only on
	// public listings.
	OwnerDisplayName string `json:"owner_display_name,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// WordbookData is the payload for creating a wordbook. ID and timestamps are
// server-assigned and come back in the response.
type WordbookData struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	IsPublic    bool   `json:"is_public"`
	NumWords    int    `json:"num_words"`
}

// WordbookPatch is a partial update. Nil fields are omitted from the request
// body and left untouched on the server.
type WordbookPatch struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	IsPublic    *bool   `json:"is_public,omitempty"`
}
