// DwC Validator - Darwin Core Biodiversity Record Validation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dwcvalidator

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/dwcvalidator/internal/models"
)

// Health handles liveness probes. It answers {"status":"ok"} while the
// process is serving, regardless of the name-matching service.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// HealthStatus returns version, uptime and taxonomy circuit state.
// The status is "degraded" while the circuit is open.
func (h *Handler) HealthStatus(w http.ResponseWriter, r *http.Request) {
	health := h.healthStatus()

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   health,
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// HealthReady handles readiness probes. It returns 503 while the taxonomy
// circuit is open, since occurrence validation would fail.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	health := h.healthStatus()

	statusCode := http.StatusOK
	status := "ready"
	if health.Status != "healthy" {
		statusCode = http.StatusServiceUnavailable
		status = "not_ready"
	}

	respondJSON(w, statusCode, &models.APIResponse{
		Status: status,
		Data:   health,
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

func (h *Handler) healthStatus() models.HealthStatus {
	health := models.HealthStatus{
		Status:  "healthy",
		Version: h.version,
		Uptime:  time.Since(h.startTime).Seconds(),
	}
	if h.circuit != nil {
		health.TaxonomyEnabled = true
		health.TaxonomyCircuit = h.circuit.State()
		if health.TaxonomyCircuit == "open" {
			health.Status = "degraded"
		}
	}
	return health
}
