// DwC Validator - Darwin Core Biodiversity Record Validation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dwcvalidator

package api

import (
	"context"
	"time"

	"github.com/tomtom215/dwcvalidator/internal/archive"
	"github.com/tomtom215/dwcvalidator/internal/config"
	"github.com/tomtom215/dwcvalidator/internal/models"
)

// ArchiveValidator validates a parsed archive.
type ArchiveValidator interface {
	Validate(ctx context.Context, a archive.Archive) (*models.ArchiveValidationReport, error)
}

// CircuitStater reports the state of a circuit breaker.
type CircuitStater interface {
	State() string
}

// Handler contains dependencies for API handlers
//
// Handler methods are split across files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_helpers.go: Response and parsing helpers
//   - handlers_health.go: Health endpoints
//   - handlers_validate.go: Table and archive validation endpoints
type Handler struct {
	tables    archive.TableValidator
	archives  ArchiveValidator
	circuit   CircuitStater
	config    *config.Config
	version   string
	startTime time.Time
}

// NewHandler creates a new API handler.
//
// Dependencies:
//   - tables: Occurrence and event table validation
//   - archives: Whole-archive validation
//   - cfg: Application configuration (request defaults and body limit)
//
// Example:
//
//	handler := api.NewHandler(tables, archives, cfg)
//	router := api.NewRouter(handler, api.NewChiMiddleware(api.NewChiMiddlewareConfig(&cfg.Security)))
//	http.ListenAndServe(cfg.Server.Address(), router.SetupChi())
func NewHandler(tables archive.TableValidator, archives ArchiveValidator, cfg *config.Config) *Handler {
	return &Handler{
		tables:    tables,
		archives:  archives,
		config:    cfg,
		version:   "dev",
		startTime: time.Now(),
	}
}

// SetVersion sets the version reported by the health endpoint.
func (h *Handler) SetVersion(version string) {
	h.version = version
}

// SetCircuitStater exposes the taxonomy circuit breaker state on the
// health endpoint.
func (h *Handler) SetCircuitStater(c CircuitStater) {
	h.circuit = c
}

// maxBodyBytes returns the configured request body limit.
func (h *Handler) maxBodyBytes() int64 {
	if h.config == nil || h.config.Server.MaxBodyBytes <= 0 {
		return config.DefaultMaxBodyBytes
	}
	return h.config.Server.MaxBodyBytes
}
