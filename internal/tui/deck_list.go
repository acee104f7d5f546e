package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mkondo/go-wordbook/internal/store"
	"github.com/mkondo/go-wordbook/models"
)

type deckRow struct {
	deck   models.Wordbook
	public bool
}

type deckListModel struct {
	ctx    context.Context
	stores *store.Stores

	rows    []deckRow
	idx     int
	loading bool
	spinner spinner.Model
	status  string
	errMsg  string

	confirmingDelete bool

	formInputs []textinput.Model
	formFocus  int
	formSaving bool
	formEditID string
	formDupeID string
	formOpen   bool
	formErr    string

	viewer viewerState

	logout bool
}

func newDeckListModel(ctx context.Context, stores *store.Stores) deckListModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return deckListModel{
		ctx:     ctx,
		stores:  stores,
		loading: true,
		spinner: s,
	}
}

func (m deckListModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdLoadDecks())
}

func (m deckListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case decksLoadedMsg:
		m.loading = false
		m.refreshRows()
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		return m, nil
	case deckSavedMsg:
		m.formSaving = false
		if msg.err != nil {
			m.formErr = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.resetForm()
		m.refreshRows()
		m.status = "Deck saved"
		m.errMsg = ""
		return m, nil
	case deckDeletedMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("delete failed: %v", msg.err)
			return m, nil
		}
		m.refreshRows()
		m.status = "Deck deleted"
		m.errMsg = ""
		return m, nil
	case deckOpenedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.openViewer(msg.deckID, msg.deckName)
		return m, nil
	case cardSavedMsg, cardDeletedMsg, bookmarkToggledMsg:
		return m.updateViewerMsg(msg)
	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.formOpen {
			return m.updateForm(msg)
		}
		if m.viewer.open {
			return m.updateViewer(msg)
		}
		return m, nil
	}

	if key.Matches(keyMsg, keys.quit) && !m.formOpen && !m.viewer.formOpen {
		return m, tea.Quit
	}

	if m.formOpen {
		return m.updateForm(msg)
	}

	if m.viewer.open {
		return m.updateViewer(msg)
	}

	if m.confirmingDelete {
		switch {
		case key.Matches(keyMsg, keys.yes):
			m.confirmingDelete = false
			row, ok := m.current()
			if !ok || row.public {
				return m, nil
			}
			return m, m.cmdDeleteDeck(row.deck.ID)
		case key.Matches(keyMsg, keys.no), key.Matches(keyMsg, keys.esc):
			m.confirmingDelete = false
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.rows)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.refresh):
		if m.loading {
			return m, nil
		}
		m.loading = true
		m.status = ""
		m.errMsg = ""
		return m, tea.Batch(m.spinner.Tick, m.cmdLoadDecks())
	case key.Matches(keyMsg, keys.newItem):
		m.startForm("", "", "", "")
		return m, nil
	case key.Matches(keyMsg, keys.edit):
		row, ok := m.current()
		if !ok {
			m.status = "No decks"
			return m, nil
		}
		if row.public {
			m.status = "Public decks cannot be edited"
			return m, nil
		}
		m.startForm(row.deck.ID, "", row.deck.Name, row.deck.Description)
		return m, nil
	case key.Matches(keyMsg, keys.dupe):
		row, ok := m.current()
		if !ok {
			m.status = "No decks"
			return m, nil
		}
		m.startForm("", row.deck.ID, row.deck.Name, row.deck.Description)
		return m, nil
	case key.Matches(keyMsg, keys.delete):
		row, ok := m.current()
		if !ok {
			m.status = "No decks"
			return m, nil
		}
		if row.public {
			m.status = "Public decks cannot be deleted"
			return m, nil
		}
		m.confirmingDelete = true
		return m, nil
	case key.Matches(keyMsg, keys.enter):
		row, ok := m.current()
		if !ok {
			m.status = "No decks"
			return m, nil
		}
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.cmdOpenDeck(row.deck.ID))
	case key.Matches(keyMsg, keys.logout):
		m.logout = true
		return m, tea.Quit
	}

	return m, nil
}

func (m *deckListModel) refreshRows() {
	rows := make([]deckRow, 0)
	for _, d := range m.stores.Decks.Decks() {
		rows = append(rows, deckRow{deck: d})
	}
	for _, d := range m.stores.Decks.PublicDecks() {
		rows = append(rows, deckRow{deck: d, public: true})
	}

	m.rows = rows
	if m.idx >= len(m.rows) {
		m.idx = len(m.rows) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m deckListModel) current() (deckRow, bool) {
	if len(m.rows) == 0 || m.idx < 0 || m.idx >= len(m.rows) {
		return deckRow{}, false
	}
	return m.rows[m.idx], true
}

func (m *deckListModel) startForm(editID, dupeID, name, description string) {
	nameInput := textinput.New()
	nameInput.Placeholder = "name"
	nameInput.CharLimit = 100
	nameInput.Width = 40
	nameInput.SetValue(name)
	nameInput.Focus()

	descInput := textinput.New()
	descInput.Placeholder = "description (optional)"
	descInput.CharLimit = 500
	descInput.Width = 40
	descInput.SetValue(description)

	m.formInputs = []textinput.Model{nameInput, descInput}
	m.formFocus = 0
	m.formSaving = false
	m.formEditID = editID
	m.formDupeID = dupeID
	m.formOpen = true
	m.formErr = ""
}

func (m *deckListModel) resetForm() {
	m.formInputs = nil
	m.formFocus = 0
	m.formSaving = false
	m.formEditID = ""
	m.formDupeID = ""
	m.formOpen = false
	m.formErr = ""
}

func (m deckListModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.resetForm()
			return m, nil
		case "tab":
			m.formInputs[m.formFocus].Blur()
			m.formFocus = (m.formFocus + 1) % len(m.formInputs)
			m.formInputs[m.formFocus].Focus()
			return m, nil
		case "shift+tab":
			m.formInputs[m.formFocus].Blur()
			m.formFocus = (m.formFocus - 1 + len(m.formInputs)) % len(m.formInputs)
			m.formInputs[m.formFocus].Focus()
			return m, nil
		case "enter":
			if m.formSaving {
				return m, nil
			}

			name := strings.TrimSpace(m.formInputs[0].Value())
			description := strings.TrimSpace(m.formInputs[1].Value())
			if name == "" {
				m.formErr = "name is required"
				return m, nil
			}

			m.formErr = ""
			m.formSaving = true

			switch {
			case m.formEditID != "":
				return m, m.cmdUpdateDeck(m.formEditID, name, description)
			case m.formDupeID != "":
				return m, m.cmdDuplicateDeck(m.formDupeID, name, description)
			default:
				return m, m.cmdCreateDeck(name, description)
			}
		}
	}

	var cmd tea.Cmd
	m.formInputs[m.formFocus], cmd = m.formInputs[m.formFocus].Update(msg)
	return m, cmd
}

func (m deckListModel) View() string {
	if m.viewer.open {
		return m.viewViewer()
	}

	if m.formOpen {
		return m.viewForm()
	}

	if m.confirmingDelete {
		name := ""
		if row, ok := m.current(); ok {
			name = row.deck.Name
		}
		return overlayBoxStyle.Render("Delete \"" + name + "\" and all of its cards?\n\ny: yes    n: no")
	}

	out := ""

	if m.loading {
		out += m.spinner.View() + " Loading decks...\n"
		return renderPage("WORDBOOKS", strings.TrimRight(out, "\n"), deckListHotKeys)
	}

	if m.errMsg != "" {
		out += "Error: " + m.errMsg + "\n"
	}
	if m.status != "" {
		out += "Status: " + m.status + "\n"
	}

	if len(m.rows) == 0 {
		if out != "" {
			out += "\n"
		}
		out += "No decks yet. Press n to create one.\n"
	} else {
		if out != "" {
			out += "\n"
		}
		out += "     │ Name                     │ Words │ Owner\n"
		out += "─────┼──────────────────────────┼───────┼────────────────\n"
		for i, row := range m.rows {
			cursor := " "
			if i == m.idx {
				cursor = ">"
			}

			owner := "mine"
			if row.public {
				owner = orDash(row.deck.OwnerDisplayName)
			}

			out += fmt.Sprintf(
				"%s %-3d│ %-24s │ %5d │ %s\n",
				cursor,
				i+1,
				fitText(row.deck.Name, 24),
				row.deck.NumWords,
				fitText(owner, 16),
			)
		}
	}

	return renderPage("WORDBOOKS", strings.TrimRight(out, "\n"), deckListHotKeys)
}

const deckListHotKeys = "enter: open │ n: new │ e: edit │ p: duplicate │ ctrl+d: delete │ r: refresh │ ↑/↓: navigate"

func (m deckListModel) viewForm() string {
	title := "NEW DECK"
	if m.formEditID != "" {
		title = "EDIT DECK"
	} else if m.formDupeID != "" {
		title = "DUPLICATE DECK"
	}

	out := "Field        │ Value\n"
	out += "─────────────┼──────────────────────────────────────────\n"
	out += "Name         │ [" + m.formInputs[0].View() + "]\n"
	out += "Description  │ [" + m.formInputs[1].View() + "]\n"
	if m.formSaving {
		out += "Action       │ [Saving...]\n"
	} else {
		out += "Action       │ [Save]\n"
	}
	if m.formErr != "" {
		out += "Error        │ " + m.formErr + "\n"
	}

	return renderPage(title, strings.TrimRight(out, "\n"), "esc: back │ tab: next field │ enter: save")
}

func (m deckListModel) cmdLoadDecks() tea.Cmd {
	ctx := m.ctx
	decks := m.stores.Decks

	return func() tea.Msg {
		_, _, err := decks.FetchAllDecks(ctx)
		return decksLoadedMsg{err: err}
	}
}

func (m deckListModel) cmdOpenDeck(deckID string) tea.Cmd {
	ctx := m.ctx
	stores := m.stores

	return func() tea.Msg {
		_, name, err := stores.Decks.InitializeDeckData(ctx, deckID)
		if err != nil {
			return deckOpenedMsg{deckID: deckID, err: err}
		}
		if err := stores.Bookmarks.Load(ctx); err != nil {
			return deckOpenedMsg{deckID: deckID, err: err}
		}
		return deckOpenedMsg{deckID: deckID, deckName: name}
	}
}

func (m deckListModel) cmdCreateDeck(name, description string) tea.Cmd {
	ctx := m.ctx
	decks := m.stores.Decks

	return func() tea.Msg {
		_, err := decks.CreateDeck(ctx, models.WordbookData{Name: name, Description: description})
		return deckSavedMsg{err: err}
	}
}

func (m deckListModel) cmdUpdateDeck(deckID, name, description string) tea.Cmd {
	ctx := m.ctx
	decks := m.stores.Decks

	return func() tea.Msg {
		patch := models.WordbookPatch{Name: &name, Description: &description}
		_, err := decks.UpdateDeck(ctx, deckID, patch)
		return deckSavedMsg{err: err}
	}
}

func (m deckListModel) cmdDuplicateDeck(sourceID, name, description string) tea.Cmd {
	ctx := m.ctx
	decks := m.stores.Decks

	return func() tea.Msg {
		_, err := decks.DuplicateDeck(ctx, sourceID, models.WordbookData{Name: name, Description: description})
		return deckSavedMsg{err: err}
	}
}

func (m deckListModel) cmdDeleteDeck(deckID string) tea.Cmd {
	ctx := m.ctx
	decks := m.stores.Decks

	return func() tea.Msg {
		err := decks.DeleteDeck(ctx, deckID)
		return deckDeletedMsg{err: err}
	}
}
