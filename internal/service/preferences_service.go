package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/NeonGeckoCom/neon-hub-config/internal/adapter"
	"github.com/NeonGeckoCom/neon-hub-config/internal/logger"
	"github.com/NeonGeckoCom/neon-hub-config/internal/store"
	"github.com/NeonGeckoCom/neon-hub-config/models"
)

type preferencesService struct {
	repo       store.PreferencesRepository
	hub        adapter.HubAdapter
	scope      string
	configured string
	logger     *logger.Logger
}

// NewPreferencesService returns preferences stored under scope. configured is
// the backend location from the application config, used when no override is
// stored.
func NewPreferencesService(repo store.PreferencesRepository, hub adapter.HubAdapter, scope, configured string, logger *logger.Logger) PreferencesService {
	return &preferencesService{
		repo:       repo,
		hub:        hub,
		scope:      scope,
		configured: configured,
		logger:     logger,
	}
}

// get returns "" without error for missing keys.
func (p *preferencesService) get(ctx context.Context, key string) (string, error) {
	value, err := p.repo.Get(ctx, p.scope, key)
	if errors.Is(err, store.ErrPreferenceNotFound) {
		return "", nil
	}
	return value, err
}

func (p *preferencesService) StoredBaseURL(ctx context.Context) (string, error) {
	raw, err := p.get(ctx, models.PrefAPIConfig)
	if err != nil || raw == "" {
		return "", err
	}

	var apiCfg models.APIConfig
	if err = json.Unmarshal([]byte(raw), &apiCfg); err != nil {
		p.logger.Warn().Err(err).Msg("ignoring malformed apiConfig preference")
		return "", nil
	}
	return apiCfg.BaseURL, nil
}

func (p *preferencesService) ApplyBaseURL(ctx context.Context, origin string) (string, error) {
	stored, err := p.StoredBaseURL(ctx)
	if err != nil {
		return "", fmt.Errorf("read stored base URL: %w", err)
	}

	resolved, err := adapter.ResolveBaseURL(stored, p.configured, origin)
	if err != nil {
		return "", err
	}
	if err = p.hub.SetBaseURL(resolved); err != nil {
		return "", err
	}

	p.logger.Debug().Str("base_url", resolved).Msg("backend location resolved")
	return resolved, nil
}

func (p *preferencesService) SetBaseURL(ctx context.Context, raw string) (string, error) {
	if raw == "" {
		if err := p.repo.Delete(ctx, p.scope, models.PrefAPIConfig); err != nil {
			return "", fmt.Errorf("remove base URL: %w", err)
		}
		return p.ApplyBaseURL(ctx, adapter.DefaultOrigin)
	}

	normalized, err := adapter.NormalizeBaseURL(raw)
	if err != nil {
		return "", err
	}

	data, err := json.Marshal(models.APIConfig{BaseURL: normalized})
	if err != nil {
		return "", fmt.Errorf("encode apiConfig: %w", err)
	}
	if err = p.repo.Set(ctx, p.scope, models.PrefAPIConfig, string(data)); err != nil {
		return "", fmt.Errorf("store base URL: %w", err)
	}
	if err = p.hub.SetBaseURL(normalized); err != nil {
		return "", err
	}

	p.logger.Info().Str("base_url", normalized).Msg("backend location changed")
	return normalized, nil
}

func (p *preferencesService) ActiveTab(ctx context.Context) models.Tab {
	raw, err := p.get(ctx, models.PrefActiveTab)
	if err != nil {
		p.logger.Warn().Err(err).Msg("failed to read active tab")
	}

	tab := models.Tab(raw)
	if !tab.Valid() {
		return models.DefaultTab
	}
	return tab
}

func (p *preferencesService) SetActiveTab(ctx context.Context, tab models.Tab) error {
	if !tab.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidTab, tab)
	}
	return p.repo.Set(ctx, p.scope, models.PrefActiveTab, string(tab))
}

func (p *preferencesService) Theme(ctx context.Context) models.Theme {
	raw, err := p.get(ctx, models.PrefTheme)
	if err != nil {
		p.logger.Warn().Err(err).Msg("failed to read theme")
	}
	if models.Theme(raw) == models.ThemeDark {
		return models.ThemeDark
	}
	return models.ThemeLight
}

func (p *preferencesService) SetTheme(ctx context.Context, theme models.Theme) error {
	if theme != models.ThemeDark {
		theme = models.ThemeLight
	}
	return p.repo.Set(ctx, p.scope, models.PrefTheme, string(theme))
}

func (p *preferencesService) Session(ctx context.Context) (models.StoredSession, bool, error) {
	raw, err := p.get(ctx, models.PrefSession)
	if err != nil || raw == "" {
		return models.StoredSession{}, false, err
	}

	var session models.StoredSession
	if err = json.Unmarshal([]byte(raw), &session); err != nil || session.Username == "" {
		return models.StoredSession{}, false, nil
	}
	return session, true, nil
}

func (p *preferencesService) SetSession(ctx context.Context, session models.StoredSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	return p.repo.Set(ctx, p.scope, models.PrefSession, string(data))
}

func (p *preferencesService) ClearSession(ctx context.Context) error {
	return p.repo.Delete(ctx, p.scope, models.PrefSession)
}
