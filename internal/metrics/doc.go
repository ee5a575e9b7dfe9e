// DwC Validator - Darwin Core Biodiversity Record Validation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dwcvalidator

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered with the default registry through promauto and
are safe for concurrent use.

# Metrics Endpoint

Metrics are exposed at the /metrics endpoint in Prometheus text format:

	curl http://localhost:8080/metrics

# Available Metrics

Validation Metrics:
  - dwc_validations_total: Completed validations (counter)
    Labels: record_type, outcome (valid, invalid, failed)
  - dwc_validation_duration_seconds: Validation time (histogram)
    Labels: record_type
  - dwc_validation_records_total: Records validated (counter)
  - dwc_validation_error_codes_total / dwc_validation_warning_codes_total
    Labels: code
  - dwc_archive_validations_total: Archive validations (counter)
    Labels: core_type, outcome

Taxonomy Metrics:
  - taxonomy_requests_total: Service calls (counter)
    Labels: operation (classification, autocomplete, search), outcome
  - taxonomy_request_duration_seconds: Call latency (histogram)
  - taxonomy_rate_limit_retries_total: Retries after HTTP 429 (counter)
  - taxonomy_unrecognised_names_total: Unrecognised names (counter)
    Labels: match_source

Circuit Breaker Metrics:
  - circuit_breaker_state: Current state (gauge)
    Labels: name
    Values: 0=closed, 1=half-open, 2=open
  - circuit_breaker_requests_total: Requests (counter)
    Labels: name, result (success, failure, rejected)
  - circuit_breaker_state_transitions_total: Transitions (counter)
    Labels: name, from_state, to_state

API Metrics:
  - api_requests_total: Requests (counter)
    Labels: method, endpoint, status_code
  - api_request_duration_seconds: Latency (histogram)
  - api_active_requests: In-flight requests (gauge)
  - api_rate_limit_hits_total: Rate limit rejections (counter)

# Usage Example

	start := time.Now()
	report, err := validator.ValidateOccurrence(ctx, ds, opts)
	metrics.RecordValidation("Occurrence", ds.RowCount(), time.Since(start), errs, warns, err)

# Example PromQL Queries

Share of invalid occurrence tables:

	sum(rate(dwc_validations_total{record_type="Occurrence",outcome="invalid"}[1h]))
	  / sum(rate(dwc_validations_total{record_type="Occurrence"}[1h]))

Taxonomy service p95 latency:

	histogram_quantile(0.95, sum(rate(taxonomy_request_duration_seconds_bucket[5m])) by (le, operation))
*/
package metrics
