package service

import (
	"context"
	"time"

	"github.com/NeonGeckoCom/neon-hub-config/internal/adapter"
	"github.com/NeonGeckoCom/neon-hub-config/internal/crypto"
	"github.com/NeonGeckoCom/neon-hub-config/internal/logger"
	"github.com/NeonGeckoCom/neon-hub-config/internal/store"
)

// ClientServices bundles the services of one operator session.
type ClientServices struct {
	Hub         adapter.HubAdapter
	Config      ConfigService
	Raw         RawConfigService
	Preferences PreferencesService
	Auth        AuthService

	autoSaveDelay time.Duration
	logger        *logger.Logger
}

// ClientServicesParams are the dependencies of [NewClientServices].
type ClientServicesParams struct {
	Hub           adapter.HubAdapter
	Preferences   store.PreferencesRepository
	Sealer        crypto.Sealer
	Scope         string
	BaseURL       string
	AutoSaveDelay time.Duration
	Logger        *logger.Logger
}

// NewClientServices wires the services around one gateway.
func NewClientServices(p ClientServicesParams) *ClientServices {
	prefs := NewPreferencesService(p.Preferences, p.Hub, p.Scope, p.BaseURL, p.Logger)

	return &ClientServices{
		Hub:           p.Hub,
		Config:        NewConfigService(p.Hub, p.Logger),
		Raw:           NewRawConfigService(p.Hub, p.Logger),
		Preferences:   prefs,
		Auth:          NewAuthService(p.Hub, prefs, p.Sealer, p.Logger),
		autoSaveDelay: p.AutoSaveDelay,
		logger:        p.Logger,
	}
}

// NewAutoSaver starts a debounced saver over the bundle's config store.
func (s *ClientServices) NewAutoSaver(ctx context.Context, notify SaveNotifier) AutoSaver {
	return NewAutoSaver(ctx, s.Config, s.autoSaveDelay, notify, s.logger)
}
