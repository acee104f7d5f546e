package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mkondo/go-wordbook/models"
)

// viewerState is the card-viewer overlay of the deck list screen. Cards and
// the cursor position live in the deck store; the viewer only keeps
// screen-local state.
type viewerState struct {
	open     bool
	deckID   string
	deckName string
	flipped  bool

	confirmingDelete bool

	formOpen   bool
	formEditID string
	formSaving bool
	formErr    string
	formInputs []textinput.Model
	formFocus  int
}

func (m *deckListModel) openViewer(deckID, deckName string) {
	m.viewer = viewerState{
		open:     true,
		deckID:   deckID,
		deckName: deckName,
	}
}

func (m *deckListModel) closeViewer() {
	m.viewer = viewerState{}
}

func (m deckListModel) viewerCards() []models.Card {
	cards, _ := m.stores.Decks.Words(m.viewer.deckID)
	return cards
}

func (m deckListModel) viewerCurrent() (models.Card, int, bool) {
	cards := m.viewerCards()
	idx := m.stores.Decks.CardIndex(m.viewer.deckID)
	if len(cards) == 0 || idx < 0 || idx >= len(cards) {
		return models.Card{}, 0, false
	}
	return cards[idx], idx, true
}

func (m deckListModel) updateViewerMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case cardSavedMsg:
		m.viewer.formSaving = false
		if msg.err != nil {
			m.viewer.formErr = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.resetCardForm()
		m.refreshRows()
		m.status = "Card saved"
		return m, nil
	case cardDeletedMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("delete failed: %v", msg.err)
			return m, nil
		}
		m.refreshRows()
		m.status = "Card deleted"
		m.errMsg = ""
		cards := m.viewerCards()
		if idx := m.stores.Decks.CardIndex(m.viewer.deckID); idx >= len(cards) && len(cards) > 0 {
			m.stores.Decks.NavigateCard(len(cards) - 1)
		}
		return m, nil
	case bookmarkToggledMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("bookmark failed: %v", msg.err)
			return m, nil
		}
		m.errMsg = ""
		if m.stores.Bookmarks.IsBookmarked(msg.cardID) {
			m.status = "Bookmarked"
		} else {
			m.status = "Bookmark removed"
		}
		return m, nil
	}
	return m, nil
}

func (m deckListModel) updateViewer(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.viewer.formOpen {
		return m.updateCardForm(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.viewer.confirmingDelete {
		switch {
		case key.Matches(keyMsg, keys.yes):
			m.viewer.confirmingDelete = false
			card, _, ok := m.viewerCurrent()
			if !ok {
				return m, nil
			}
			return m, m.cmdDeleteCard(m.viewer.deckID, card.ID)
		case key.Matches(keyMsg, keys.no), key.Matches(keyMsg, keys.esc):
			m.viewer.confirmingDelete = false
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.closeViewer()
		m.refreshRows()
		return m, nil
	case key.Matches(keyMsg, keys.left):
		if _, idx, ok := m.viewerCurrent(); ok && idx > 0 {
			m.stores.Decks.NavigateCard(idx - 1)
			m.viewer.flipped = false
		}
	case key.Matches(keyMsg, keys.right):
		cards := m.viewerCards()
		if _, idx, ok := m.viewerCurrent(); ok && idx < len(cards)-1 {
			m.stores.Decks.NavigateCard(idx + 1)
			m.viewer.flipped = false
		}
	case key.Matches(keyMsg, keys.flip):
		m.viewer.flipped = !m.viewer.flipped
	case key.Matches(keyMsg, keys.bookmark):
		card, _, ok := m.viewerCurrent()
		if !ok {
			return m, nil
		}
		return m, m.cmdToggleBookmark(card.ID)
	case key.Matches(keyMsg, keys.copy):
		card, _, ok := m.viewerCurrent()
		if !ok {
			return m, nil
		}
		if err := clipboard.WriteAll(card.English); err != nil {
			m.errMsg = fmt.Sprintf("copy failed: %v", err)
			return m, nil
		}
		m.status = "Copied"
	case key.Matches(keyMsg, keys.newItem):
		m.startCardForm(models.Card{}, false)
		return m, nil
	case key.Matches(keyMsg, keys.edit):
		card, _, ok := m.viewerCurrent()
		if !ok {
			m.status = "No cards"
			return m, nil
		}
		m.startCardForm(card, true)
		return m, nil
	case key.Matches(keyMsg, keys.delete):
		if _, _, ok := m.viewerCurrent(); !ok {
			m.status = "No cards"
			return m, nil
		}
		m.viewer.confirmingDelete = true
		return m, nil
	}

	return m, nil
}

func (m *deckListModel) startCardForm(card models.Card, editing bool) {
	english := textinput.New()
	english.Placeholder = "english word"
	english.Width = 40
	english.Focus()

	partOfSpeech := textinput.New()
	partOfSpeech.Placeholder = "part of speech (noun, verb, ...)"
	partOfSpeech.Width = 40

	japanese := textinput.New()
	japanese.Placeholder = "japanese meanings, comma separated"
	japanese.Width = 40

	exampleEN := textinput.New()
	exampleEN.Placeholder = "example sentence (optional)"
	exampleEN.Width = 40

	exampleJA := textinput.New()
	exampleJA.Placeholder = "example translation (optional)"
	exampleJA.Width = 40

	if editing {
		english.SetValue(card.English)
		if len(card.Definitions) > 0 {
			partOfSpeech.SetValue(card.Definitions[0].PartOfSpeech)
			japanese.SetValue(strings.Join(card.Definitions[0].Japanese, ", "))
		}
		if len(card.ExampleSentences) > 0 {
			exampleEN.SetValue(card.ExampleSentences[0].English)
			exampleJA.SetValue(card.ExampleSentences[0].Japanese)
		}
	}

	m.viewer.formInputs = []textinput.Model{english, partOfSpeech, japanese, exampleEN, exampleJA}
	m.viewer.formFocus = 0
	m.viewer.formSaving = false
	m.viewer.formErr = ""
	m.viewer.formOpen = true
	m.viewer.formEditID = ""
	if editing {
		m.viewer.formEditID = card.ID
	}
}

func (m *deckListModel) resetCardForm() {
	m.viewer.formInputs = nil
	m.viewer.formFocus = 0
	m.viewer.formSaving = false
	m.viewer.formErr = ""
	m.viewer.formOpen = false
	m.viewer.formEditID = ""
}

func (m deckListModel) updateCardForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.resetCardForm()
			return m, nil
		case "tab":
			m.viewer.formInputs[m.viewer.formFocus].Blur()
			m.viewer.formFocus = (m.viewer.formFocus + 1) % len(m.viewer.formInputs)
			m.viewer.formInputs[m.viewer.formFocus].Focus()
			return m, nil
		case "shift+tab":
			m.viewer.formInputs[m.viewer.formFocus].Blur()
			m.viewer.formFocus = (m.viewer.formFocus - 1 + len(m.viewer.formInputs)) % len(m.viewer.formInputs)
			m.viewer.formInputs[m.viewer.formFocus].Focus()
			return m, nil
		case "enter":
			if m.viewer.formSaving {
				return m, nil
			}

			english := strings.TrimSpace(m.viewer.formInputs[0].Value())
			if english == "" {
				m.viewer.formErr = "english word is required"
				return m, nil
			}

			definitions := collectDefinitions(
				m.viewer.formInputs[1].Value(),
				m.viewer.formInputs[2].Value(),
			)
			examples := collectExamples(
				m.viewer.formInputs[3].Value(),
				m.viewer.formInputs[4].Value(),
			)

			m.viewer.formErr = ""
			m.viewer.formSaving = true

			if m.viewer.formEditID != "" {
				patch := models.CardPatch{
					English:          &english,
					Definitions:      &definitions,
					ExampleSentences: &examples,
				}
				return m, m.cmdUpdateCard(m.viewer.deckID, m.viewer.formEditID, patch)
			}

			card := models.NewCard{
				English:          english,
				Definitions:      definitions,
				ExampleSentences: examples,
				WordbookID:       m.viewer.deckID,
			}
			return m, m.cmdAddCard(card)
		}
	}

	var cmd tea.Cmd
	m.viewer.formInputs[m.viewer.formFocus], cmd = m.viewer.formInputs[m.viewer.formFocus].Update(msg)
	return m, cmd
}

func collectDefinitions(partOfSpeech, japanese string) []models.Definition {
	var meanings []string
	for _, part := range strings.Split(japanese, ",") {
		if v := strings.TrimSpace(part); v != "" {
			meanings = append(meanings, v)
		}
	}
	if len(meanings) == 0 {
		return nil
	}
	return []models.Definition{{
		PartOfSpeech: strings.TrimSpace(partOfSpeech),
		Japanese:     meanings,
	}}
}

func collectExamples(english, japanese string) []models.ExampleSentence {
	en := strings.TrimSpace(english)
	ja := strings.TrimSpace(japanese)
	if en == "" && ja == "" {
		return nil
	}
	return []models.ExampleSentence{{English: en, Japanese: ja}}
}

func (m deckListModel) viewViewer() string {
	if m.viewer.formOpen {
		return m.viewCardForm()
	}

	if m.viewer.confirmingDelete {
		word := ""
		if card, _, ok := m.viewerCurrent(); ok {
			word = card.English
		}
		return overlayBoxStyle.Render("Delete \"" + word + "\"?\n\ny: yes    n: no")
	}

	cards := m.viewerCards()
	card, idx, ok := m.viewerCurrent()

	var b strings.Builder
	if m.errMsg != "" {
		b.WriteString("Error: " + m.errMsg + "\n")
	}
	if m.status != "" {
		b.WriteString("Status: " + m.status + "\n")
	}
	if b.Len() > 0 {
		b.WriteString("\n")
	}

	if !ok {
		b.WriteString("This deck has no cards yet. Press n to add one.\n")
		return renderPage("DECK: "+m.viewer.deckName, strings.TrimRight(b.String(), "\n"), cardViewerHotKeys)
	}

	b.WriteString(fmt.Sprintf("Card %d / %d", idx+1, len(cards)))
	if m.stores.Bookmarks.IsBookmarked(card.ID) {
		b.WriteString("  ★")
	}
	b.WriteString("\n\n")

	if !m.viewer.flipped {
		b.WriteString("[ FRONT ]\n")
		b.WriteString(card.English + "\n")
		if card.Phonetics != nil && card.Phonetics.Text != "" {
			b.WriteString(card.Phonetics.Text + "\n")
		}
	} else {
		b.WriteString("[ BACK ]\n")
		for _, def := range card.Definitions {
			label := def.PartOfSpeech
			if label == "" {
				label = "-"
			}
			b.WriteString(label + ": " + strings.Join(def.Japanese, "、") + "\n")
		}
		if len(card.Synonyms) > 0 {
			b.WriteString("\nSynonyms: " + strings.Join(card.Synonyms, ", ") + "\n")
		}
		for _, ex := range card.ExampleSentences {
			b.WriteString("\n" + ex.English + "\n")
			if ex.Japanese != "" {
				b.WriteString(ex.Japanese + "\n")
			}
		}
	}

	return renderPage("DECK: "+m.viewer.deckName, strings.TrimRight(b.String(), "\n"), cardViewerHotKeys)
}

const cardViewerHotKeys = "←/→: cards │ space: flip │ b: bookmark │ c: copy │ n: new │ e: edit │ ctrl+d: delete │ esc: back"

func (m deckListModel) viewCardForm() string {
	title := "NEW CARD"
	if m.viewer.formEditID != "" {
		title = "EDIT CARD"
	}

	out := "Field        │ Value\n"
	out += "─────────────┼──────────────────────────────────────────\n"
	out += "English      │ [" + m.viewer.formInputs[0].View() + "]\n"
	out += "Part of sp.  │ [" + m.viewer.formInputs[1].View() + "]\n"
	out += "Japanese     │ [" + m.viewer.formInputs[2].View() + "]\n"
	out += "Example (en) │ [" + m.viewer.formInputs[3].View() + "]\n"
	out += "Example (ja) │ [" + m.viewer.formInputs[4].View() + "]\n"
	if m.viewer.formSaving {
		out += "Action       │ [Saving...]\n"
	} else {
		out += "Action       │ [Save]\n"
	}
	if m.viewer.formErr != "" {
		out += "Error        │ " + m.viewer.formErr + "\n"
	}

	return renderPage(title, strings.TrimRight(out, "\n"), "esc: back │ tab: next field │ enter: save")
}

func (m deckListModel) cmdAddCard(card models.NewCard) tea.Cmd {
	ctx := m.ctx
	decks := m.stores.Decks

	return func() tea.Msg {
		_, err := decks.AddCard(ctx, card)
		return cardSavedMsg{err: err}
	}
}

func (m deckListModel) cmdUpdateCard(deckID, cardID string, patch models.CardPatch) tea.Cmd {
	ctx := m.ctx
	decks := m.stores.Decks

	return func() tea.Msg {
		_, err := decks.UpdateCard(ctx, deckID, cardID, patch)
		return cardSavedMsg{err: err}
	}
}

func (m deckListModel) cmdDeleteCard(deckID, cardID string) tea.Cmd {
	ctx := m.ctx
	decks := m.stores.Decks

	return func() tea.Msg {
		err := decks.DeleteCard(ctx, deckID, cardID)
		return cardDeletedMsg{err: err}
	}
}

func (m deckListModel) cmdToggleBookmark(cardID string) tea.Cmd {
	ctx := m.ctx
	bookmarks := m.stores.Bookmarks

	return func() tea.Msg {
		err := bookmarks.Toggle(ctx, cardID)
		return bookmarkToggledMsg{cardID: cardID, err: err}
	}
}
