package models

import "time"

// Bookmark is a user-specific marker on a card. The server guarantees at
// most one bookmark per (user, card) pair; the client-side bookmark store
// enforces the same rule as a set-membership invariant.
type Bookmark struct {
	ID        string    `json:"id"`
	CardID    string    `json:"card_id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
