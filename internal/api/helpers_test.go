// DwC Validator - Darwin Core Biodiversity Record Validation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dwcvalidator

package api

import (
	"context"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/dwcvalidator/internal/archive"
	"github.com/tomtom215/dwcvalidator/internal/config"
	"github.com/tomtom215/dwcvalidator/internal/dataset"
	"github.com/tomtom215/dwcvalidator/internal/dwc"
	"github.com/tomtom215/dwcvalidator/internal/models"
)

// fakeTables records table validation calls and returns canned results.
type fakeTables struct {
	mu sync.Mutex

	err         error
	occurrences []*dataset.Dataset
	events      []*dataset.Dataset
	opts        []dwc.OccurrenceOptions
}

func (f *fakeTables) ValidateOccurrence(_ context.Context, ds *dataset.Dataset, opts dwc.OccurrenceOptions) (*models.DatasetValidationReport, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.occurrences = append(f.occurrences, ds)
	f.opts = append(f.opts, opts)
	if f.err != nil {
		return nil, f.err
	}
	return &models.DatasetValidationReport{
		RecordType:  models.RecordTypeOccurrence,
		RecordCount: ds.RowCount(),
	}, nil
}

func (f *fakeTables) ValidateEvent(_ context.Context, ds *dataset.Dataset) (*models.DatasetValidationReport, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, ds)
	if f.err != nil {
		return nil, f.err
	}
	return &models.DatasetValidationReport{
		RecordType:  models.RecordTypeEvent,
		RecordCount: ds.RowCount(),
	}, nil
}

// fakeArchives records the archive it was asked to validate.
type fakeArchives struct {
	err      error
	received *archive.Archive
}

func (f *fakeArchives) Validate(_ context.Context, a archive.Archive) (*models.ArchiveValidationReport, error) {
	f.received = &a
	if f.err != nil {
		return nil, f.err
	}
	return &models.ArchiveValidationReport{Valid: true, CoreType: a.CoreType}, nil
}

// fakeCircuit reports a fixed breaker state.
type fakeCircuit string

func (c fakeCircuit) State() string { return string(c) }

// testConfig returns the default configuration with rate limiting off.
func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Timeout:      5 * time.Second,
			MaxBodyBytes: 1 << 20,
		},
		Validation: config.ValidationConfig{
			OccurrenceIDFields: []string{"occurrenceID"},
		},
		Security: config.SecurityConfig{
			RateLimitDisabled: true,
			CORSOrigins:       []string{"*"},
		},
	}
}

// testResponse is an APIResponse with the data left raw for per-test decoding.
type testResponse struct {
	Status   string           `json:"status"`
	Data     json.RawMessage  `json:"data"`
	Metadata models.Metadata  `json:"metadata"`
	Error    *models.APIError `json:"error"`
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) testResponse {
	t.Helper()
	var resp testResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response %q: %v", w.Body.String(), err)
	}
	return resp
}
