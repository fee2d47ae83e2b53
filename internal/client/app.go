package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/NeonGeckoCom/neon-hub-config/internal/adapter"
	"github.com/NeonGeckoCom/neon-hub-config/internal/logger"
	"github.com/NeonGeckoCom/neon-hub-config/internal/service"
	"github.com/NeonGeckoCom/neon-hub-config/internal/tui"
)

type App struct {
	services *service.ClientServices
	ui       UI
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, logger *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("client app requires services and ui")
	}
	return &App{services: services, ui: ui, logger: logger}, nil
}

// Run blocks until the operator quits the dashboard or ctx is done.
func (a *App) Run(ctx context.Context) error {
	baseURL, err := a.services.Preferences.ApplyBaseURL(ctx, adapter.DefaultOrigin)
	if err != nil {
		return fmt.Errorf("resolve backend location: %w", err)
	}
	a.logger.Info().Str("base_url", baseURL).Msg("backend location resolved")

	for {
		restored, err := a.services.Auth.Restore(ctx)
		if err != nil {
			a.logger.Warn().Err(err).Msg("remembered session not restored")
		}

		if !restored {
			username, err := a.ui.LoginFlow(ctx)
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			if err != nil {
				return fmt.Errorf("login flow: %w", err)
			}
			a.logger.Info().Str("username", username).Msg("logged in")
		}

		logout, err := a.ui.MainLoop(ctx)
		if err != nil {
			return fmt.Errorf("dashboard: %w", err)
		}
		if !logout {
			return nil
		}

		if err = a.services.Auth.Logout(ctx); err != nil {
			a.logger.Err(err).Msg("logout")
		}
		if ctx.Err() != nil {
			return nil
		}
	}
}
