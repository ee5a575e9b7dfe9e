// DwC Validator - Darwin Core Biodiversity Record Validation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dwcvalidator

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/tomtom215/dwcvalidator/internal/api"
	"github.com/tomtom215/dwcvalidator/internal/archive"
	"github.com/tomtom215/dwcvalidator/internal/config"
	"github.com/tomtom215/dwcvalidator/internal/dwc"
	"github.com/tomtom215/dwcvalidator/internal/logging"
	"github.com/tomtom215/dwcvalidator/internal/metrics"
	"github.com/tomtom215/dwcvalidator/internal/supervisor"
	"github.com/tomtom215/dwcvalidator/internal/supervisor/services"
	"github.com/tomtom215/dwcvalidator/internal/taxonomy"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("version", version).
		Str("addr", cfg.Server.Address()).
		Bool("taxonomy_enabled", cfg.Taxonomy.Enabled).
		Str("environment", cfg.Server.Environment).
		Msg("Starting DwC validator")

	metrics.AppInfo.WithLabelValues(version, runtime.Version()).Set(1)

	names := newTaxonomyStack(&cfg.Taxonomy)
	server := newHTTPServer(cfg, names)

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  shutdownTimeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}
	tree.AddAPIService(services.NewHTTPServerService(server, shutdownTimeout))
	if names.cache != nil {
		tree.AddAPIService(services.NewSweepService("taxonomy-cache-sweeper", names.cache, cfg.Taxonomy.CacheTTL))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Received shutdown signal, waiting for services to stop")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("DwC validator stopped")
}

// taxonomyStack is the assembled name-matching chain. Every field is nil
// when name matching is disabled; cache is also nil when caching is off.
type taxonomyStack struct {
	checker dwc.TaxonomyChecker
	circuit *taxonomy.CircuitBreakerClient
	cache   *taxonomy.CachingClient
}

// newHTTPServer wires the validators, handler and router into an
// *http.Server listening on the configured address.
func newHTTPServer(cfg *config.Config, names taxonomyStack) *http.Server {
	tables := dwc.NewValidator(names.checker)
	archives := archive.NewValidator(tables, cfg.Validation.OccurrenceIDFields)

	handler := api.NewHandler(tables, archives, cfg)
	handler.SetVersion(version)
	if names.circuit != nil {
		handler.SetCircuitStater(names.circuit)
	}

	router := api.NewRouter(handler, api.NewChiMiddleware(api.NewChiMiddlewareConfig(&cfg.Security)))

	return &http.Server{
		Addr:              cfg.Server.Address(),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout + 5*time.Second,
		IdleTimeout:       60 * time.Second,
		ErrorLog:          logging.NewServerErrorLog(),
	}
}

// newTaxonomyStack builds HTTP client, circuit breaker, optional cache and
// name checker from cfg.
func newTaxonomyStack(cfg *config.TaxonomyConfig) taxonomyStack {
	if !cfg.Enabled {
		logging.Info().Msg("Taxonomy validation disabled")
		return taxonomyStack{}
	}

	stack := taxonomyStack{circuit: taxonomy.NewCircuitBreakerClient(taxonomy.NewHTTPClient(cfg))}

	var client taxonomy.Client = stack.circuit
	if cfg.CacheSize > 0 {
		stack.cache = taxonomy.NewCachingClient(stack.circuit, cfg.CacheSize, cfg.CacheTTL)
		client = stack.cache
	}
	stack.checker = taxonomy.NewValidator(client, cfg)

	logging.Info().
		Str("base_url", cfg.BaseURL).
		Str("atlas", cfg.Atlas).
		Int("cache_size", cfg.CacheSize).
		Msg("Taxonomy validation enabled")
	return stack
}
