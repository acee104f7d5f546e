package tui

// NavigateTo switches the active page. Payload, when set, is delivered to the
// target page instead of its Init command.
type NavigateTo struct {
	Page    string
	Payload any
}

// SignInResult is produced by the async sign-in command.
type SignInResult struct {
	Err   error
	Email string
}

type decksLoadedMsg struct {
	err error
}

type deckOpenedMsg struct {
	deckID   string
	deckName string
	err      error
}

type deckSavedMsg struct {
	err error
}

type deckDeletedMsg struct {
	err error
}

type cardSavedMsg struct {
	err error
}

type cardDeletedMsg struct {
	err error
}

type bookmarkToggledMsg struct {
	cardID string
	err    error
}
