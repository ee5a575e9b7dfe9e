// DwC Validator - Darwin Core Biodiversity Record Validation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dwcvalidator

package metrics

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

// TestRecordValidation tests validation outcome labelling
func TestRecordValidation(t *testing.T) {
	before := testutil.ToFloat64(ValidationsTotal.WithLabelValues("Occurrence", "invalid"))
	RecordValidation("Occurrence", 3, 10*time.Millisecond, []string{"MISSING_ID_FIELD"}, nil, nil)
	after := testutil.ToFloat64(ValidationsTotal.WithLabelValues("Occurrence", "invalid"))
	if after-before != 1 {
		t.Errorf("Expected invalid counter to increase by 1, got %v", after-before)
	}

	before = testutil.ToFloat64(ValidationsTotal.WithLabelValues("Event", "valid"))
	RecordValidation("Event", 10, time.Millisecond, nil, []string{"INVALID_OR_OUT_OF_RANGE_COORDINATES"}, nil)
	after = testutil.ToFloat64(ValidationsTotal.WithLabelValues("Event", "valid"))
	if after-before != 1 {
		t.Errorf("Expected valid counter to increase by 1, got %v", after-before)
	}

	warn := testutil.ToFloat64(ValidationWarningCodes.WithLabelValues("INVALID_OR_OUT_OF_RANGE_COORDINATES"))
	if warn < 1 {
		t.Errorf("Expected warning code counter >= 1, got %v", warn)
	}
}

// TestRecordValidation_Failed tests that failed runs skip record counts
func TestRecordValidation_Failed(t *testing.T) {
	records := testutil.ToFloat64(ValidationRecords.WithLabelValues("failed_test"))
	before := testutil.ToFloat64(ValidationsTotal.WithLabelValues("failed_test", "failed"))

	RecordValidation("failed_test", 50, time.Second, []string{"X"}, nil, errors.New("search failed"))

	if got := testutil.ToFloat64(ValidationsTotal.WithLabelValues("failed_test", "failed")); got-before != 1 {
		t.Errorf("Expected failed counter to increase by 1, got %v", got-before)
	}
	if got := testutil.ToFloat64(ValidationRecords.WithLabelValues("failed_test")); got != records {
		t.Errorf("Expected record counter unchanged, got %v", got)
	}
}

// TestRecordArchiveValidation tests archive outcome labelling
func TestRecordArchiveValidation(t *testing.T) {
	tests := []struct {
		name    string
		valid   bool
		err     error
		outcome string
	}{
		{"valid archive", true, nil, "valid"},
		{"invalid archive", false, nil, "invalid"},
		{"failed archive", false, errors.New("unsupported core type"), "failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := testutil.ToFloat64(ArchiveValidationsTotal.WithLabelValues("Occurrence", tt.outcome))
			RecordArchiveValidation("Occurrence", 2, tt.valid, tt.err)
			after := testutil.ToFloat64(ArchiveValidationsTotal.WithLabelValues("Occurrence", tt.outcome))
			if after-before != 1 {
				t.Errorf("Expected %s counter to increase by 1, got %v", tt.outcome, after-before)
			}
		})
	}
}

// TestRecordTaxonomyRequest tests taxonomy request outcome labelling
func TestRecordTaxonomyRequest(t *testing.T) {
	before := testutil.ToFloat64(TaxonomyRequests.WithLabelValues("search", "error"))
	RecordTaxonomyRequest("search", 200*time.Millisecond, errors.New("connection refused"))
	if got := testutil.ToFloat64(TaxonomyRequests.WithLabelValues("search", "error")); got-before != 1 {
		t.Errorf("Expected error counter to increase by 1, got %v", got-before)
	}

	before = testutil.ToFloat64(TaxonomyRequests.WithLabelValues("autocomplete", "success"))
	RecordTaxonomyRequest("autocomplete", 20*time.Millisecond, nil)
	if got := testutil.ToFloat64(TaxonomyRequests.WithLabelValues("autocomplete", "success")); got-before != 1 {
		t.Errorf("Expected success counter to increase by 1, got %v", got-before)
	}
}

func TestRecordTaxonomyCacheLookup(t *testing.T) {
	hits := TaxonomyCacheLookups.WithLabelValues("autocomplete", "hit")
	misses := TaxonomyCacheLookups.WithLabelValues("autocomplete", "miss")
	beforeHits, beforeMisses := testutil.ToFloat64(hits), testutil.ToFloat64(misses)

	RecordTaxonomyCacheLookup("autocomplete", true)
	RecordTaxonomyCacheLookup("autocomplete", false)
	RecordTaxonomyCacheLookup("autocomplete", false)

	if got := testutil.ToFloat64(hits) - beforeHits; got != 1 {
		t.Errorf("Expected 1 hit, got %v", got)
	}
	if got := testutil.ToFloat64(misses) - beforeMisses; got != 2 {
		t.Errorf("Expected 2 misses, got %v", got)
	}
}

// TestRecordAPIRequest tests API request metric recording
func TestRecordAPIRequest(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		endpoint   string
		statusCode string
		duration   time.Duration
	}{
		{"health check", "GET", "/health", "200", time.Millisecond},
		{"occurrence validation", "POST", "/api/v1/validate/occurrence", "200", 150 * time.Millisecond},
		{"bad csv", "POST", "/api/v1/validate/event", "400", 5 * time.Millisecond},
		{"rate limited", "POST", "/api/v1/validate/archive", "429", time.Millisecond},
		{"taxonomy outage", "POST", "/api/v1/validate/occurrence", "502", 30 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues(tt.method, tt.endpoint, tt.statusCode))
			RecordAPIRequest(tt.method, tt.endpoint, tt.statusCode, tt.duration)
			after := testutil.ToFloat64(APIRequestsTotal.WithLabelValues(tt.method, tt.endpoint, tt.statusCode))
			if after-before != 1 {
				t.Errorf("Expected counter to increase by 1, got %v", after-before)
			}
		})
	}
}

// TestTrackActiveRequest_RequestLifecycle tests gauge balance
func TestTrackActiveRequest_RequestLifecycle(t *testing.T) {
	start := testutil.ToFloat64(APIActiveRequests)
	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests); got != start+1 {
		t.Errorf("Expected %v active requests, got %v", start+1, got)
	}
	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != start {
		t.Errorf("Expected %v active requests, got %v", start, got)
	}
}

// TestCircuitBreakerMetrics tests circuit breaker metric recording
func TestCircuitBreakerMetrics(t *testing.T) {
	cbName := "taxonomy_test"

	// 0=closed, 1=half-open, 2=open
	CircuitBreakerState.WithLabelValues(cbName).Set(2)
	if got := testutil.ToFloat64(CircuitBreakerState.WithLabelValues(cbName)); got != 2 {
		t.Errorf("Expected state 2, got %v", got)
	}

	CircuitBreakerRequests.WithLabelValues(cbName, "rejected").Inc()
	CircuitBreakerConsecutiveFailures.WithLabelValues(cbName).Set(5)
	CircuitBreakerTransitions.WithLabelValues(cbName, "closed", "open").Inc()

	if got := testutil.ToFloat64(CircuitBreakerTransitions.WithLabelValues(cbName, "closed", "open")); got != 1 {
		t.Errorf("Expected 1 transition, got %v", got)
	}
}

// TestConcurrentMetricRecording tests concurrent access to collectors
func TestConcurrentMetricRecording(t *testing.T) {
	var wg sync.WaitGroup
	numGoroutines := 50
	operationsPerGoroutine := 20

	wg.Add(numGoroutines * 2)
	for i := 0; i < numGoroutines; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < operationsPerGoroutine; j++ {
				RecordValidation("concurrent", 1, time.Millisecond, nil, nil, nil)
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < operationsPerGoroutine; j++ {
				RecordTaxonomyRequest("concurrent", time.Millisecond, nil)
			}
		}()
	}
	wg.Wait()

	if got := testutil.ToFloat64(ValidationsTotal.WithLabelValues("concurrent", "valid")); got != float64(numGoroutines*operationsPerGoroutine) {
		t.Errorf("Expected %d validations, got %v", numGoroutines*operationsPerGoroutine, got)
	}
}
