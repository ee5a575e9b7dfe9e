// DwC Validator - Darwin Core Biodiversity Record Validation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dwcvalidator

package taxonomy

import "context"

// Client defines the name-matching service operations used by Validator.
//
// Implementations:
//   - HTTPClient: talks to the service over HTTP
//   - CircuitBreakerClient: adds circuit breaker protection to another Client
//   - CachingClient: remembers per-name lookups between requests
//
// All methods must be safe for concurrent use.
type Client interface {
	// MatchByClassification matches a batch of scientific names in one request.
	// The result holds one entry per name the service could process.
	MatchByClassification(ctx context.Context, names []string) ([]ClassificationMatch, error)

	// Autocomplete returns up to max candidate names for a query.
	Autocomplete(ctx context.Context, query string, max int, includeSynonyms bool) ([]AutocompleteCandidate, error)

	// Search looks up a single name. An unknown name is not an error:
	// the result has Success set to false.
	Search(ctx context.Context, query string) (*SearchResult, error)
}

// ClassificationMatch is one entry of a batch classification response.
type ClassificationMatch struct {
	Success        bool   `json:"success"`
	ScientificName string `json:"scientificName"`
	TaxonConceptID string `json:"taxonConceptID,omitempty"`
	Rank           string `json:"rank,omitempty"`
	MatchType      string `json:"matchType,omitempty"`
}

// AutocompleteCandidate is one autocomplete suggestion.
// Rank is nil for candidates the service could not place in the backbone.
type AutocompleteCandidate struct {
	Name         string                  `json:"name"`
	Rank         *string                 `json:"rank"`
	Cl           map[string]string       `json:"cl"`
	SynonymMatch []AutocompleteCandidate `json:"synonymMatch"`
}

// Ranked reports whether the candidate has a non-empty rank.
func (c AutocompleteCandidate) Ranked() bool {
	return c.Rank != nil && *c.Rank != ""
}

// RankName returns the rank, or "" when there is none.
func (c AutocompleteCandidate) RankName() string {
	if c.Rank == nil {
		return ""
	}
	return *c.Rank
}

// SearchResult is a single-name search response.
// The service spells the class term "classs".
type SearchResult struct {
	Success        bool   `json:"success"`
	ScientificName string `json:"scientificName"`
	Rank           string `json:"rank"`
	Kingdom        string `json:"kingdom"`
	Phylum         string `json:"phylum"`
	Class          string `json:"classs"`
	Order          string `json:"order"`
	Family         string `json:"family"`
	Genus          string `json:"genus"`
	Species        string `json:"species"`
}

// Classification returns the populated rank terms keyed by Darwin Core term name.
func (r *SearchResult) Classification() map[string]string {
	terms := map[string]string{
		"kingdom": r.Kingdom,
		"phylum":  r.Phylum,
		"class":   r.Class,
		"order":   r.Order,
		"family":  r.Family,
		"genus":   r.Genus,
		"species": r.Species,
	}
	for term, value := range terms {
		if value == "" {
			delete(terms, term)
		}
	}
	return terms
}
