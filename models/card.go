package models

import (
	"sort"
	"time"
)

// Definition is one sense of a word: a part of speech plus its Japanese
// translations in display order.
type Definition struct {
	PartOfSpeech string   `json:"part_of_speech"`
	Japanese     []string `json:"japanese"`
}

// ExampleSentence is an English example sentence with its Japanese
// translation.
type ExampleSentence struct {
	English  string `json:"english"`
	Japanese string `json:"japanese"`
}

// Phonetics carries optional pronunciation data for a word.
type Phonetics struct {
	Text      string `json:"text,omitempty"`
	Audio     string `json:"audio,omitempty"`
	SourceURL string `json:"sourceUrl,omitempty"`
}

// Card is a single vocabulary entry. A card belongs to exactly one wordbook.
type Card struct {
	ID               string            `json:"id"`
	English          string            `json:"english"`
	Definitions      []Definition      `json:"definitions"`
	Synonyms         []string          `json:"synonyms,omitempty"`
	ExampleSentences []ExampleSentence `json:"example_sentences,omitempty"`
	Phonetics        *Phonetics        `json:"phonetics,omitempty"`
	WordbookID       string            `json:"wordbook_id"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

// NewCard is the payload for creating a card.
type NewCard struct {
	English          string            `json:"english"`
	Definitions      []Definition      `json:"definitions"`
	Synonyms         []string          `json:"synonyms,omitempty"`
	ExampleSentences []ExampleSentence `json:"example_sentences,omitempty"`
	Phonetics        *Phonetics        `json:"phonetics,omitempty"`
	WordbookID       string            `json:"wordbook_id"`
}

// CardPatch is a partial card update. Nil fields are left untouched.
type CardPatch struct {
	English          *string            `json:"english,omitempty"`
	Definitions      *[]Definition      `json:"definitions,omitempty"`
	Synonyms         *[]string          `json:"synonyms,omitempty"`
	ExampleSentences *[]ExampleSentence `json:"example_sentences,omitempty"`
	Phonetics        *Phonetics         `json:"phonetics,omitempty"`
}

// SortCardsByCreatedAt orders cards by creation time, oldest first. The sort
// is stable so cards sharing a timestamp keep their fetch order.
func SortCardsByCreatedAt(cards []Card) {
	sort.SliceStable(cards, func(i, j int) bool {
		return cards[i].CreatedAt.Before(cards[j].CreatedAt)
	})
}
