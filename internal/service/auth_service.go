package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/NeonGeckoCom/neon-hub-config/internal/adapter"
	"github.com/NeonGeckoCom/neon-hub-config/internal/crypto"
	"github.com/NeonGeckoCom/neon-hub-config/internal/logger"
	"github.com/NeonGeckoCom/neon-hub-config/models"
)

type authService struct {
	hub    adapter.HubAdapter
	prefs  PreferencesService
	sealer crypto.Sealer
	logger *logger.Logger

	mu       sync.RWMutex
	username string
}

// NewAuthService returns the login gate. sealer may be nil, in which case
// sessions are never remembered.
func NewAuthService(hub adapter.HubAdapter, prefs PreferencesService, sealer crypto.Sealer, logger *logger.Logger) AuthService {
	return &authService{hub: hub, prefs: prefs, sealer: sealer, logger: logger}
}

func (a *authService) Login(ctx context.Context, creds models.Credentials, remember bool) error {
	if creds.Empty() {
		return fmt.Errorf("login: %w", adapter.ErrUnauthorized)
	}

	if err := a.hub.Authenticate(ctx, creds); err != nil {
		return fmt.Errorf("login: %w", err)
	}
	a.hub.SetCredentials(creds)

	a.mu.Lock()
	a.username = creds.Username
	a.mu.Unlock()

	a.logger.Info().Str("username", creds.Username).Msg("logged in")

	if !remember {
		return nil
	}
	if err := a.remember(ctx, creds); err != nil {
		// the login itself succeeded
		a.logger.Warn().Err(err).Msg("failed to remember session")
	}
	return nil
}

func (a *authService) remember(ctx context.Context, creds models.Credentials) error {
	if a.sealer == nil {
		return ErrNoSessionStore
	}

	sealed, err := a.sealer.Seal(creds.Password)
	if err != nil {
		return fmt.Errorf("seal password: %w", err)
	}

	return a.prefs.SetSession(ctx, models.StoredSession{
		Username: creds.Username,
		Password: sealed,
		At:       time.Now().UTC(),
	})
}

func (a *authService) Restore(ctx context.Context) (bool, error) {
	if a.sealer == nil {
		return false, nil
	}

	session, ok, err := a.prefs.Session(ctx)
	if err != nil || !ok {
		return false, err
	}

	password, err := a.sealer.Open(session.Password)
	if err != nil {
		a.logger.Warn().Err(err).Msg("dropping unreadable remembered session")
		return false, a.prefs.ClearSession(ctx)
	}

	err = a.Login(ctx, models.Credentials{Username: session.Username, Password: password}, false)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, adapter.ErrUnauthorized):
		return false, a.prefs.ClearSession(ctx)
	default:
		return false, err
	}
}

func (a *authService) Logout(ctx context.Context) error {
	a.hub.SetCredentials(models.Credentials{})

	a.mu.Lock()
	username := a.username
	a.username = ""
	a.mu.Unlock()

	a.logger.Info().Str("username", username).Msg("logged out")

	if a.sealer == nil {
		return nil
	}
	return a.prefs.ClearSession(ctx)
}

func (a *authService) Username() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.username
}
