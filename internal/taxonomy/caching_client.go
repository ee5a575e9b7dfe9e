// DwC Validator - Darwin Core Biodiversity Record Validation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dwcvalidator

package taxonomy

import (
	"context"
	"strconv"
	"time"

	"github.com/tomtom215/dwcvalidator/internal/cache"
	"github.com/tomtom215/dwcvalidator/internal/metrics"
)

// CachingClient remembers Autocomplete and Search results between
// requests. Errors are never cached. MatchByClassification is batched per
// request and passes straight through.
type CachingClient struct {
	client      Client
	suggestions *cache.LRU[[]AutocompleteCandidate]
	searches    *cache.LRU[*SearchResult]
}

// NewCachingClient wraps client with LRU caches of the given size and TTL.
func NewCachingClient(client Client, size int, ttl time.Duration) *CachingClient {
	return &CachingClient{
		client:      client,
		suggestions: cache.NewLRU[[]AutocompleteCandidate](size, ttl),
		searches:    cache.NewLRU[*SearchResult](size, ttl),
	}
}

// MatchByClassification forwards to the wrapped client.
func (c *CachingClient) MatchByClassification(ctx context.Context, names []string) ([]ClassificationMatch, error) {
	return c.client.MatchByClassification(ctx, names)
}

// Autocomplete returns cached candidates for the same query, limit and
// synonym flag, or asks the wrapped client.
func (c *CachingClient) Autocomplete(ctx context.Context, query string, max int, includeSynonyms bool) ([]AutocompleteCandidate, error) {
	key := query + "\x00" + strconv.Itoa(max) + "\x00" + strconv.FormatBool(includeSynonyms)
	if candidates, ok := c.suggestions.Get(key); ok {
		metrics.RecordTaxonomyCacheLookup(opAutocomplete, true)
		return candidates, nil
	}
	metrics.RecordTaxonomyCacheLookup(opAutocomplete, false)

	candidates, err := c.client.Autocomplete(ctx, query, max, includeSynonyms)
	if err != nil {
		return nil, err
	}
	c.suggestions.Add(key, candidates)
	return candidates, nil
}

// Search returns a cached result for query, or asks the wrapped client.
// Unsuccessful lookups are cached too, since an unknown name stays unknown.
func (c *CachingClient) Search(ctx context.Context, query string) (*SearchResult, error) {
	if result, ok := c.searches.Get(query); ok {
		metrics.RecordTaxonomyCacheLookup(opSearch, true)
		return result, nil
	}
	metrics.RecordTaxonomyCacheLookup(opSearch, false)

	result, err := c.client.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	c.searches.Add(query, result)
	return result, nil
}

// Sweep drops expired entries from both caches and returns how many it
// removed. Get already ignores expired entries; sweeping bounds memory held
// by names that are never asked for again.
func (c *CachingClient) Sweep() int {
	removed := c.suggestions.CleanupExpired() + c.searches.CleanupExpired()

	metrics.TaxonomyCacheEvictions.Add(float64(removed))
	metrics.TaxonomyCacheEntries.WithLabelValues(opAutocomplete).Set(float64(c.suggestions.Len()))
	metrics.TaxonomyCacheEntries.WithLabelValues(opSearch).Set(float64(c.searches.Len()))
	return removed
}
