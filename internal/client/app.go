package client

import (
	"context"
	"errors"

	"github.com/mkondo/go-wordbook/internal/identity"
	"github.com/mkondo/go-wordbook/internal/logger"
	"github.com/mkondo/go-wordbook/internal/store"
	"github.com/mkondo/go-wordbook/internal/tui"
	"github.com/mkondo/go-wordbook/internal/workers"
	"github.com/mkondo/go-wordbook/models"
)

// App runs the sign-in flow and the main screens in a loop: signing out from
// the main screens returns to the sign-in flow with session state cleared,
// quitting exits the process.
type App struct {
	stores    *store.Stores
	ui        *tui.TUI
	auth      *identity.RESTProvider
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func NewApp(stores *store.Stores, ui *tui.TUI, auth *identity.RESTProvider, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	if stores == nil || ui == nil || auth == nil {
		return nil, errors.New("client app: missing dependencies")
	}

	return &App{
		stores:    stores,
		ui:        ui,
		auth:      auth,
		buildInfo: buildInfo,
		logger:    log,
	}, nil
}

func (a *App) Run() error {
	ctx := context.Background()

	for {
		if err := a.ui.LoginFlow(ctx, a.buildInfo); err != nil {
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			return err
		}

		keepAlive := workers.NewTokenKeepAlive(a.auth, 0, a.logger)
		workers.NewWorkers(keepAlive).Run()

		logout, err := a.ui.MainLoop(ctx)
		keepAlive.Stop()
		if err != nil {
			return err
		}
		if !logout {
			return nil
		}

		// Signed out: drop session state and return to the sign-in flow.
		a.auth.SignOut()
		a.stores.Reset()
		a.logger.Info().Msg("signed out, session state cleared")
	}
}
