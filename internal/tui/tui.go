package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mkondo/go-wordbook/internal/logger"
	"github.com/mkondo/go-wordbook/internal/store"
	"github.com/mkondo/go-wordbook/models"
)

var ErrUserQuit = errors.New("quit by user")

// Authenticator is the piece of the identity provider the login screens need.
type Authenticator interface {
	SignIn(ctx context.Context, email, password string) error
	SignOut()
}

type TUI struct {
	stores *store.Stores
	auth   Authenticator
}

func New(stores *store.Stores, auth Authenticator, _ *logger.Logger) (*TUI, error) {
	return &TUI{stores: stores, auth: auth}, nil
}

// LoginFlow runs the menu/sign-in screens until the user authenticates or
// quits. Returns ErrUserQuit when the user exits without signing in.
func (t *TUI) LoginFlow(ctx context.Context, buildInfo models.AppBuildInfo) error {
	pages := map[string]tea.Model{
		"menu":   NewMenuModel(),
		"signin": NewSignInModel(ctx, t.auth),
	}

	root := NewRootModel(pages, "menu", buildInfo)
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if runErr != nil {
		return runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser || !result.signedIn {
		return ErrUserQuit
	}
	return nil
}

// MainLoop runs the deck list and card viewer screens. Returns logout=true
// when the user signed out rather than quitting, so the caller can restart
// the login flow with cleared stores.
func (t *TUI) MainLoop(ctx context.Context) (logout bool, err error) {
	model := newDeckListModel(ctx, t.stores)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(deckListModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
