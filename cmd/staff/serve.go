package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/practicum/employee-model/internal/api"
	"github.com/practicum/employee-model/internal/api/metrics"
	"github.com/practicum/employee-model/internal/core/service"
	"github.com/practicum/employee-model/internal/infrastructure/config"
	"github.com/practicum/employee-model/internal/infrastructure/memory"
	"github.com/practicum/employee-model/internal/infrastructure/queue"
	"github.com/practicum/employee-model/internal/infrastructure/roster"
	"github.com/practicum/employee-model/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Run the staff HTTP API.

Configuration comes from the environment (and a .env file when present):
  PORT         listen port (default 8080)
  ENV          deployment environment (default development)
  LOG_LEVEL    minimum log level (default info)
  LOG_PRETTY   console logs instead of JSON (default false)
  JWT_SECRET   HS256 secret; empty serves /v1 without authentication
  ROSTER_PATH  YAML roster hired at startup`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx)
		},
	}
}

func runServe(ctx context.Context) error {
	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	logger.Reset()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.LogPretty,
		Service: "staff",
	})

	svc := service.NewStaffService(memory.NewStaffRepository(), metrics.NewRecorder(), log)

	if cfg.Roster.Path != "" {
		file, err := roster.Load(cfg.Roster.Path)
		if err != nil {
			return err
		}
		if _, err := roster.Seed(ctx, svc, file, log); err != nil {
			return err
		}
	}

	// Summons accepted before shutdown are delivered: the workers do not
	// follow the signal context and Close runs after the server has stopped.
	summons := queue.NewDispatcher(0, svc, log)
	summons.Start(context.Background())
	defer summons.Close()

	e := api.NewRouter(api.RouterConfig{
		Service:    svc,
		Logger:     log,
		JWTSecret:  cfg.JWTSecret,
		Registerer: prometheus.DefaultRegisterer,
		Summons:    summons,
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.Addr()).Str("env", cfg.Env).Msg("http server listening")
		if err := e.Start(cfg.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
