// DwC Validator - Darwin Core Biodiversity Record Validation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dwcvalidator

package taxonomy

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/tomtom215/dwcvalidator/internal/config"
	"github.com/tomtom215/dwcvalidator/internal/dataset"
)

// fakeClient serves canned responses keyed by query and records every call.
type fakeClient struct {
	mu sync.Mutex

	matches     []ClassificationMatch
	matchErr    error
	candidates  map[string][]AutocompleteCandidate
	autoErr     error
	searches    map[string]*SearchResult
	searchErr   error
	matchedWith [][]string
	autoCalls   []string
	searchCalls []string
}

func (f *fakeClient) MatchByClassification(_ context.Context, names []string) ([]ClassificationMatch, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.matchedWith = append(f.matchedWith, append([]string(nil), names...))
	return f.matches, f.matchErr
}

func (f *fakeClient) Autocomplete(_ context.Context, query string, _ int, _ bool) ([]AutocompleteCandidate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.autoCalls = append(f.autoCalls, query)
	if f.autoErr != nil {
		return nil, f.autoErr
	}
	return f.candidates[query], nil
}

func (f *fakeClient) Search(_ context.Context, query string) (*SearchResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.searchCalls = append(f.searchCalls, query)
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	if r, ok := f.searches[query]; ok {
		return r, nil
	}
	return &SearchResult{Success: false}, nil
}

func testConfig(baseURL string) *config.TaxonomyConfig {
	return &config.TaxonomyConfig{
		Enabled:         true,
		BaseURL:         baseURL,
		Timeout:         5 * time.Second,
		MaxSuggestions:  5,
		IncludeSynonyms: true,
		Atlas:           "Australia",
		MaxRetries:      3,
		RetryBaseDelay:  time.Millisecond,
	}
}

func rank(r string) *string {
	return &r
}

// textColumn builds a string column; nil entries are null cells.
func textColumn(name string, cells ...interface{}) dataset.Column {
	values := make([]dataset.Value, len(cells))
	for i, c := range cells {
		if c == nil {
			values[i] = dataset.Null()
			continue
		}
		values[i] = dataset.String(c.(string))
	}
	return dataset.Column{Name: name, Values: values}
}

func mustDataset(t *testing.T, columns ...dataset.Column) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.New(columns...)
	if err != nil {
		t.Fatalf("Failed to build dataset: %v", err)
	}
	return ds
}
