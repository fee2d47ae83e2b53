package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/NeonGeckoCom/neon-hub-config/internal/adapter"
	"github.com/NeonGeckoCom/neon-hub-config/internal/client"
	"github.com/NeonGeckoCom/neon-hub-config/internal/config"
	"github.com/NeonGeckoCom/neon-hub-config/internal/crypto"
	"github.com/NeonGeckoCom/neon-hub-config/internal/logger"
	"github.com/NeonGeckoCom/neon-hub-config/internal/service"
	"github.com/NeonGeckoCom/neon-hub-config/internal/store"
	"github.com/NeonGeckoCom/neon-hub-config/internal/tui"
	"github.com/NeonGeckoCom/neon-hub-config/internal/validators"
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

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger("hubconfig", "").Fatal().Err(err).Msg("error getting configs")
	}
	log := logger.NewClientLogger("hubconfig", cfg.App.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	hub, err := adapter.NewHTTPHubAdapter(cfg.Adapter, adapter.DefaultOrigin, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create hub adapter")
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer storages.Close()

	var sealer crypto.Sealer
	if cfg.App.SecretKey != "" {
		if sealer, err = crypto.NewSealer(cfg.App.SecretKey); err != nil {
			log.Fatal().Err(err).Msg("create session sealer")
		}
	} else {
		log.Info().Msg("no secret key configured, remembering the session is disabled")
	}

	services := service.NewClientServices(service.ClientServicesParams{
		Hub:           hub,
		Preferences:   storages.Preferences,
		Sealer:        sealer,
		Scope:         store.LocalScope,
		BaseURL:       cfg.Adapter.BaseURL,
		AutoSaveDelay: cfg.Workers.AutoSaveDelay,
		Logger:        log,
	})

	ui, err := tui.New(services, validators.NewInputValidator(), buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("client run error")
		fmt.Println(err)
	}
}
