package store

import "sync"

// SelectionState tracks at most one active deck and, per deck, the card
// index it was last viewed at, independent of any view. It is derived
// navigation state and is never persisted.
type SelectionState struct {
	mu             sync.Mutex
	selectedDeckID string
	cardIndexes    map[string]int
}

// NewSelectionState constructs an empty selection.
func NewSelectionState() *SelectionState {
	return &SelectionState{cardIndexes: make(map[string]int)}
}

// SelectDeck replaces the active deck id. Selecting does not fetch
// anything; whether the deck's cards are loaded is a separate concern.
func (s *SelectionState) SelectDeck(deckID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedDeckID = deckID
}

// SelectedDeck returns the active deck id, empty when nothing is selected.
func (s *SelectionState) SelectedDeck() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedDeckID
}

// NavigateCard stores newIndex for the active deck so the position survives
// deck switches. No-op when no deck is selected. The index is stored as
// given; bounds depend on the current card count, which only the view has.
func (s *SelectionState) NavigateCard(newIndex int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selectedDeckID == "" {
		return
	}
	s.cardIndexes[s.selectedDeckID] = newIndex
}

// CardIndex returns the remembered position for deckID, zero by default.
func (s *SelectionState) CardIndex(deckID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cardIndexes[deckID]
}

// forgetDeck drops all selection state tied to a deleted deck.
func (s *SelectionState) forgetDeck(deckID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.cardIndexes, deckID)
	if s.selectedDeckID == deckID {
		s.selectedDeckID = ""
	}
}

func (s *SelectionState) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedDeckID = ""
	s.cardIndexes = make(map[string]int)
}
