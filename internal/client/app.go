package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/vault-notes/internal/logger"
	"github.com/MKhiriev/vault-notes/internal/service"
	"github.com/MKhiriev/vault-notes/internal/store"
	"github.com/MKhiriev/vault-notes/internal/tui"
	"github.com/MKhiriev/vault-notes/models"
)

// UI is the part of the terminal UI the runtime drives.
type UI interface {
	SignInFlow(ctx context.Context) (models.Session, error)
	MainLoop(ctx context.Context, session models.Session) (logout bool, err error)
}

type App struct {
	ctx      context.Context
	services *service.ClientServices
	ui       UI
	logger   *logger.Logger
}

func NewApp(ctx context.Context, services *service.ClientServices, ui UI, logger *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("client: services and ui are required")
	}
	return &App{ctx: ctx, services: services, ui: ui, logger: logger}, nil
}

// Run restores the previous session or asks the user to sign in, then runs
// the main loop. Signing out starts over from the sign-in screen.
func (a *App) Run() error {
	for {
		session, err := a.services.AuthService.RestoreSession(a.ctx)
		switch {
		case err == nil:
			a.logger.Info().Str("user_id", session.User.ID).Msg("session restored")
		case errors.Is(err, store.ErrSessionNotFound), errors.Is(err, service.ErrSessionExpired):
			session, err = a.ui.SignInFlow(a.ctx)
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			if err != nil {
				return fmt.Errorf("sign in: %w", err)
			}
		default:
			return fmt.Errorf("restore session: %w", err)
		}

		logout, err := a.ui.MainLoop(a.ctx, session)
		if err != nil {
			return err
		}
		if !logout {
			return nil
		}

		if err = a.services.AuthService.Logout(a.ctx); err != nil {
			return fmt.Errorf("logout: %w", err)
		}
	}
}
