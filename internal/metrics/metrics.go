// DwC Validator - Darwin Core Biodiversity Record Validation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dwcvalidator

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics for:
// - Dataset and archive validation runs
// - Taxonomy service calls
// - Circuit breaker state
// - API endpoint latency and throughput

var (
	// Validation Metrics
	ValidationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dwc_validations_total",
			Help: "Total number of dataset validations",
		},
		[]string{"record_type", "outcome"}, // outcome: "valid", "invalid", "failed"
	)

	ValidationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dwc_validation_duration_seconds",
			Help:    "Duration of dataset validations in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 30, 120}, // Taxonomy lookups can take minutes
		},
		[]string{"record_type"},
	)

	ValidationRecords = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dwc_validation_records_total",
			Help: "Total number of records validated",
		},
		[]string{"record_type"},
	)

	ValidationErrorCodes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dwc_validation_error_codes_total",
			Help: "Total number of error codes emitted by validations",
		},
		[]string{"code"},
	)

	ValidationWarningCodes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dwc_validation_warning_codes_total",
			Help: "Total number of warning codes emitted by validations",
		},
		[]string{"code"},
	)

	ArchiveValidationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dwc_archive_validations_total",
			Help: "Total number of archive validations",
		},
		[]string{"core_type", "outcome"},
	)

	ArchiveExtensionTables = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "dwc_archive_extension_tables",
			Help:    "Number of extension tables per archive",
			Buckets: []float64{0, 1, 2, 4, 8, 16},
		},
	)

	// Taxonomy Service Metrics
	TaxonomyRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "taxonomy_requests_total",
			Help: "Total number of name-matching service requests",
		},
		[]string{"operation", "outcome"}, // outcome: "success", "error"
	)

	TaxonomyRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "taxonomy_request_duration_seconds",
			Help:    "Duration of name-matching service requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	TaxonomyRateLimitRetries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "taxonomy_rate_limit_retries_total",
			Help: "Total number of retries after HTTP 429 responses",
		},
		[]string{"operation"},
	)

	TaxonomyNamesChecked = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "taxonomy_names_checked_total",
			Help: "Total number of distinct scientific names submitted for matching",
		},
	)

	TaxonomyUnrecognisedNames = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "taxonomy_unrecognised_names_total",
			Help: "Total number of unrecognised scientific names by suggestion source",
		},
		[]string{"match_source"},
	)

	TaxonomyCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "taxonomy_cache_lookups_total",
			Help: "Total number of cached name-matching lookups by result (hit, miss)",
		},
		[]string{"operation", "result"},
	)

	TaxonomyCacheEntries = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "taxonomy_cache_entries",
			Help: "Entries held by the name-matching cache after the last sweep",
		},
		[]string{"operation"},
	)

	TaxonomyCacheEvictions = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "taxonomy_cache_expired_total",
			Help: "Total number of expired name-matching cache entries removed by sweeps",
		},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 60},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Application Info
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "dwcvalidator_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)
)

// RecordValidation records a completed dataset validation.
// A non-nil err marks the run as failed; codes are ignored in that case.
func RecordValidation(recordType string, records int, duration time.Duration, errorCodes, warningCodes []string, err error) {
	ValidationDuration.WithLabelValues(recordType).Observe(duration.Seconds())
	if err != nil {
		ValidationsTotal.WithLabelValues(recordType, "failed").Inc()
		return
	}

	ValidationRecords.WithLabelValues(recordType).Add(float64(records))
	for _, code := range errorCodes {
		ValidationErrorCodes.WithLabelValues(code).Inc()
	}
	for _, code := range warningCodes {
		ValidationWarningCodes.WithLabelValues(code).Inc()
	}

	outcome := "valid"
	if len(errorCodes) > 0 {
		outcome = "invalid"
	}
	ValidationsTotal.WithLabelValues(recordType, outcome).Inc()
}

// RecordArchiveValidation records a completed archive validation.
func RecordArchiveValidation(coreType string, extensions int, valid bool, err error) {
	outcome := "valid"
	switch {
	case err != nil:
		outcome = "failed"
	case !valid:
		outcome = "invalid"
	}
	ArchiveValidationsTotal.WithLabelValues(coreType, outcome).Inc()
	ArchiveExtensionTables.Observe(float64(extensions))
}

// RecordTaxonomyRequest records a name-matching service request
func RecordTaxonomyRequest(operation string, duration time.Duration, err error) {
	TaxonomyRequestDuration.WithLabelValues(operation).Observe(duration.Seconds())
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	TaxonomyRequests.WithLabelValues(operation, outcome).Inc()
}

// RecordTaxonomyCacheLookup records a taxonomy cache hit or miss
func RecordTaxonomyCacheLookup(operation string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	TaxonomyCacheLookups.WithLabelValues(operation, result).Inc()
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}
