package main

import (
	"context"
	"fmt"

	"github.com/NeonGeckoCom/neon-hub-config/internal/adapter"
	"github.com/NeonGeckoCom/neon-hub-config/internal/config"
	myHTTP "github.com/NeonGeckoCom/neon-hub-config/internal/handler/http"
	"github.com/NeonGeckoCom/neon-hub-config/internal/logger"
	"github.com/NeonGeckoCom/neon-hub-config/internal/server"
	"github.com/NeonGeckoCom/neon-hub-config/internal/service"
	"github.com/NeonGeckoCom/neon-hub-config/internal/store"
	"github.com/NeonGeckoCom/neon-hub-config/internal/validators"
	"github.com/NeonGeckoCom/neon-hub-config/internal/workers"
	"github.com/NeonGeckoCom/neon-hub-config/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo.String())

	cfg, err := config.GetWebConfig()
	if err != nil {
		logger.NewLogger("web", "").Fatal().Err(err).Msg("error getting configs")
	}
	log := logger.NewLogger("web", cfg.App.LogLevel)

	storages, err := store.NewClientStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer storages.Close()

	// every browser session talks to the hub through its own gateway so
	// tokens and cached state never leak between users
	newServices := func(username string) (*service.ClientServices, error) {
		hub, err := adapter.NewHTTPHubAdapter(cfg.Adapter, adapter.DefaultOrigin, log)
		if err != nil {
			return nil, fmt.Errorf("create hub adapter: %w", err)
		}

		return service.NewClientServices(service.ClientServicesParams{
			Hub:           hub,
			Preferences:   storages.Preferences,
			Scope:         username,
			BaseURL:       cfg.Adapter.BaseURL,
			AutoSaveDelay: cfg.Workers.AutoSaveDelay,
			Logger:        log.GetChildLogger(),
		}), nil
	}

	sessions := myHTTP.NewSessionRegistry(cfg.App.SessionDuration)

	handler, err := myHTTP.NewHandler(myHTTP.HandlerParams{
		Sessions:    sessions,
		NewServices: newServices,
		Validator:   validators.NewInputValidator(),
		Session: myHTTP.SessionSettings{
			SignKey:  cfg.App.SessionSignKey,
			Issuer:   cfg.App.SessionIssuer,
			Duration: cfg.App.SessionDuration,
		},
		Origin:    adapter.DefaultOrigin,
		BuildInfo: buildInfo,
		Logger:    log,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("create http handler")
	}

	background := workers.NewWorkers(
		workers.NewSessionJanitor(sessions, workers.DefaultJanitorInterval, log),
	)

	srv, err := server.NewServer(handler.Init(), cfg.Server, background, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server")
	}

	srv.RunServer()
}
