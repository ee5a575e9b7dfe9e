// DwC Validator - Darwin Core Biodiversity Record Validation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dwcvalidator

package models

import (
	"time"
)

// APIResponse is the response wrapper used by every /api/v1 endpoint.
//
// Status field values:
//   - "success": Request completed, see Data
//   - "error": Request failed, see Error
//
// Example successful response:
//
//	{
//	  "status": "success",
//	  "data": {"record_type": "Occurrence", "record_count": 120, ...},
//	  "metadata": {
//	    "timestamp": "2026-03-02T12:00:00Z",
//	    "query_time_ms": 45
//	  }
//	}
//
// Example error response:
//
//	{
//	  "status": "error",
//	  "data": null,
//	  "error": {
//	    "code": "VALIDATION_ERROR",
//	    "message": "id_term must be a Darwin Core term name",
//	    "details": {"field": "id_term"}
//	  },
//	  "metadata": {"timestamp": "2026-03-02T12:00:00Z"}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata carries response timing.
//
// QueryTimeMS is the time spent validating the uploaded tables, including
// calls to the name-matching service.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
}

// APIError is the error payload of an APIResponse.
//
// Error codes:
//   - VALIDATION_ERROR: Invalid request parameters
//   - INVALID_CSV: The uploaded table could not be parsed
//   - INVALID_FORM: The archive upload is not a readable multipart form
//   - PAYLOAD_TOO_LARGE: The request body exceeds the configured limit
//   - UNSUPPORTED_CORE_TYPE: The archive core is neither Occurrence nor Event
//   - TAXONOMY_UNAVAILABLE: The name-matching service circuit is open
//   - TAXONOMY_ERROR: The name-matching service failed at its last tier
//   - RATE_LIMIT_EXCEEDED: Too many requests from this client
//   - INTERNAL_ERROR: Anything else
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// HealthStatus is the payload of the detailed health endpoint.
type HealthStatus struct {
	Status  string `json:"status"`
	Version string `json:"version"`

	// TaxonomyEnabled is false when scientific names are not checked
	TaxonomyEnabled bool `json:"taxonomy_enabled"`

	// TaxonomyCircuit is the circuit breaker state (closed, half-open, open),
	// empty when the taxonomy service is disabled
	TaxonomyCircuit string `json:"taxonomy_circuit,omitempty"`

	Uptime float64 `json:"uptime_seconds"`
}
