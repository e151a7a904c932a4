// Marquee - Movie Catalog Aggregation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/tomtom215/marquee/docs" // registers swagger docs

	"github.com/tomtom215/marquee/internal/api"
	"github.com/tomtom215/marquee/internal/catalog"
	"github.com/tomtom215/marquee/internal/config"
	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/supervisor"
	"github.com/tomtom215/marquee/internal/supervisor/services"
	"github.com/tomtom215/marquee/internal/tmdb"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(loggingConfig(cfg))
	defer func() {
		if err := logging.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "failed to close log file: %v\n", err)
		}
	}()

	logging.Info().
		Str("version", version).
		Str("environment", cfg.Server.Environment).
		Str("tmdb_base_url", cfg.TMDB.BaseURL).
		Bool("circuit_breaker", cfg.TMDB.CircuitBreakerEnabled).
		Msg("Starting Marquee")

	handler, err := newHTTPHandler(cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize catalog")
	}

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   5 * time.Second,
		ShutdownTimeout:  10 * time.Second,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	errCh := tree.ServeBackground(ctx)
	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("Marquee stopped")
}

func loggingConfig(cfg *config.Config) logging.Config {
	logCfg := logging.DefaultConfig()
	logCfg.Level = cfg.Logging.Level
	logCfg.Format = cfg.Logging.Format
	logCfg.Caller = cfg.Logging.Caller
	logCfg.File = logging.FileConfig{
		Path:       cfg.Logging.File,
		MaxSizeMB:  cfg.Logging.FileMaxSizeMB,
		MaxBackups: cfg.Logging.FileMaxBackups,
		MaxAgeDays: cfg.Logging.FileMaxAgeDays,
		Compress:   true,
	}
	return logCfg
}

// newHTTPHandler wires TMDB client, circuit breaker, catalog and router.
func newHTTPHandler(cfg *config.Config) (http.Handler, error) {
	client, err := tmdb.NewClient(&cfg.TMDB)
	if err != nil {
		return nil, err
	}

	var metadata tmdb.MetadataClient = client
	var breaker api.BreakerStater
	if cfg.TMDB.CircuitBreakerEnabled {
		cb := tmdb.NewCircuitBreakerClient(client, tmdb.BreakerSettings{})
		metadata = cb
		breaker = cb
	}

	handler := api.NewHandler(catalog.NewService(metadata), breaker, version)
	mw := api.NewChiMiddleware(api.ChiMiddlewareConfigFromSecurity(&cfg.Security))
	return api.NewRouter(handler, mw).SetupChi(), nil
}
