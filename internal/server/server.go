package server

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/NeonGeckoCom/neon-hub-config/internal/config"
	"github.com/NeonGeckoCom/neon-hub-config/internal/logger"
	"github.com/NeonGeckoCom/neon-hub-config/internal/workers"
)

type server struct {
	httpServer *httpServer
	workers    *workers.Workers
	logger     *logger.Logger
}

// NewServer wires the dashboard router and background workers into a single
// lifecycle. workers may be nil.
func NewServer(handler http.Handler, cfg config.WebServer, w *workers.Workers, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handler == nil {
		return nil, errNoHandler
	}
	if cfg.HTTPAddress == "" {
		return nil, errNoAddress
	}
	if w == nil {
		w = workers.NewWorkers()
	}

	return &server{
		httpServer: newHTTPServer(handler, cfg, logger),
		workers:    w,
		logger:     logger,
	}, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.Run(ctx); err != nil {
		s.logger.Error().Err(err).Msg("error running server")
	}
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()
}

func (s *server) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	s.workers.Run(ctx)

	listenErr := make(chan error, 1)
	go func() {
		listenErr <- s.httpServer.RunServer()
	}()

	var err error
	select {
	case <-ctx.Done():
		s.Shutdown()
		<-listenErr
	case err = <-listenErr:
		if err != nil {
			err = fmt.Errorf("http listener: %w", err)
		}
	}

	cancel()
	s.workers.Wait()
	s.logger.Info().Msg("server Shutdown gracefully")

	return err
}
