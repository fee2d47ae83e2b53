package http

import (
	"fmt"
	"time"

	"github.com/NeonGeckoCom/neon-hub-config/internal/logger"
	"github.com/NeonGeckoCom/neon-hub-config/internal/service"
	"github.com/NeonGeckoCom/neon-hub-config/internal/validators"
	"github.com/NeonGeckoCom/neon-hub-config/models"
)

// ServicesFactory builds the client services of a new session. username
// scopes the stored preferences.
type ServicesFactory func(username string) (*service.ClientServices, error)

// SessionSettings sign and bound the session cookie.
type SessionSettings struct {
	SignKey  string
	Issuer   string
	Duration time.Duration
}

type HandlerParams struct {
	Sessions    *SessionRegistry
	NewServices ServicesFactory
	Validator   validators.Validator
	Session     SessionSettings
	// Origin is the last-resort backend location of a new session.
	Origin    string
	BuildInfo models.AppBuildInfo
	Logger    *logger.Logger
}

type Handler struct {
	sessions    *SessionRegistry
	newServices ServicesFactory
	validator   validators.Validator
	session     SessionSettings
	origin      string
	buildInfo   models.AppBuildInfo
	views       *views

	logger *logger.Logger
}

func NewHandler(p HandlerParams) (*Handler, error) {
	if p.Sessions == nil || p.NewServices == nil || p.Validator == nil {
		return nil, ErrMissingDependency
	}

	v, err := newViews()
	if err != nil {
		return nil, fmt.Errorf("http handler: %w", err)
	}

	p.Logger.Info().Msg("http handler created")
	return &Handler{
		sessions:    p.Sessions,
		newServices: p.NewServices,
		validator:   p.Validator,
		session:     p.Session,
		origin:      p.Origin,
		buildInfo:   p.BuildInfo,
		views:       v,
		logger:      p.Logger,
	}, nil
}
