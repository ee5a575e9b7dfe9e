// DwC Validator - Darwin Core Biodiversity Record Validation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dwcvalidator

package taxonomy

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"github.com/tomtom215/dwcvalidator/internal/config"
	"github.com/tomtom215/dwcvalidator/internal/logging"
	"github.com/tomtom215/dwcvalidator/internal/metrics"
)

// Operation names used for metrics and logs
const (
	opMatchClassification = "match_classification"
	opAutocomplete        = "autocomplete"
	opSearch              = "search"
)

// maxErrorBodySize limits the maximum amount of response body read for error reporting
const maxErrorBodySize = 64 * 1024 // 64KB

// readBodyForError reads the response body for error reporting (max 64KB)
// Returns the body content or a placeholder message if reading fails
func readBodyForError(r io.Reader) []byte {
	limitedReader := io.LimitReader(r, maxErrorBodySize)
	body, err := io.ReadAll(limitedReader)
	if err != nil {
		return []byte("(failed to read response body)")
	}
	if len(body) == maxErrorBodySize {
		return append(body, []byte("\n... (truncated)")...)
	}
	return body
}

// HTTPClient talks to the name-matching service over HTTP.
//
// Features:
//   - Configurable request timeout
//   - Client-side request pacing (TAXONOMY_REQUESTS_PER_SECOND)
//   - Automatic retry on HTTP 429 with exponential backoff, honouring Retry-After
//
// Thread Safety: Safe for concurrent use. Each request creates its own HTTP request.
type HTTPClient struct {
	baseURL        string
	client         *http.Client
	limiter        *rate.Limiter // nil disables pacing
	maxRetries     int           // Maximum retries for rate limiting
	retryBaseDelay time.Duration // Base delay for exponential backoff
}

// NewHTTPClient creates a name-matching client from the taxonomy configuration.
func NewHTTPClient(cfg *config.TaxonomyConfig) *HTTPClient {
	c := &HTTPClient{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		maxRetries:     cfg.MaxRetries,
		retryBaseDelay: cfg.RetryBaseDelay,
	}
	if cfg.RequestsPerSecond > 0 {
		burst := int(cfg.RequestsPerSecond)
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst)
	}
	return c
}

// MatchByClassification posts the names to /api/searchAllByClassification.
func (c *HTTPClient) MatchByClassification(ctx context.Context, names []string) ([]ClassificationMatch, error) {
	payload := make([]map[string]string, len(names))
	for i, name := range names {
		payload[i] = map[string]string{"scientificName": name}
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s request: %w", opMatchClassification, err)
	}

	var matches []ClassificationMatch
	if err := c.makeRequest(ctx, opMatchClassification, http.MethodPost, "/api/searchAllByClassification", nil, body, &matches); err != nil {
		return nil, err
	}
	return matches, nil
}

// Autocomplete queries /api/autocomplete.
func (c *HTTPClient) Autocomplete(ctx context.Context, query string, max int, includeSynonyms bool) ([]AutocompleteCandidate, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("max", strconv.Itoa(max))
	params.Set("includeSynonyms", strconv.FormatBool(includeSynonyms))

	var candidates []AutocompleteCandidate
	if err := c.makeRequest(ctx, opAutocomplete, http.MethodGet, "/api/autocomplete", params, nil, &candidates); err != nil {
		return nil, err
	}
	return candidates, nil
}

// Search queries /api/search.
func (c *HTTPClient) Search(ctx context.Context, query string) (*SearchResult, error) {
	params := url.Values{}
	params.Set("q", query)

	var result SearchResult
	if err := c.makeRequest(ctx, opSearch, http.MethodGet, "/api/search", params, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// makeRequest performs one service call and decodes the JSON response into result.
// It records the request duration and outcome.
func (c *HTTPClient) makeRequest(ctx context.Context, op, method, path string, params url.Values, body []byte, result interface{}) (err error) {
	start := time.Now()
	defer func() {
		metrics.RecordTaxonomyRequest(op, time.Since(start), err)
	}()

	reqURL := c.baseURL + path
	if len(params) > 0 {
		// The service expects %20 rather than + between words
		reqURL += "?" + strings.ReplaceAll(params.Encode(), "+", "%20")
	}

	resp, err := c.doRequestWithRateLimit(ctx, op, method, reqURL, body)
	if err != nil {
		return fmt.Errorf("failed to make %s request: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		errBody := readBodyForError(resp.Body)
		return fmt.Errorf("%s request failed with status %d: %s", op, resp.StatusCode, string(errBody))
	}

	if err := decodeJSONResponse(resp, result); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", op, err)
	}
	return nil
}

// doRequestWithRateLimit performs an HTTP request with pacing and automatic rate limit handling.
// Implements exponential backoff for HTTP 429 responses (1s, 2s, 4s, 8s, 16s with the default base).
// The context is used for cancellation during pacing and backoff waits.
func (c *HTTPClient) doRequestWithRateLimit(ctx context.Context, op, method, reqURL string, body []byte) (*http.Response, error) {
	var lastErr error

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return nil, err
			}
		}

		var reqBody io.Reader = http.NoBody
		if body != nil {
			reqBody = bytes.NewReader(body)
		}
		req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Accept", "application/json")
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := c.client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("HTTP request failed: %w", err)
		}

		if resp.StatusCode != http.StatusTooManyRequests {
			return resp, nil
		}

		// Rate limited (HTTP 429) - close body and retry with backoff
		_ = resp.Body.Close()

		if attempt == c.maxRetries {
			lastErr = fmt.Errorf("rate limit exceeded after %d retries (HTTP 429)", c.maxRetries)
			break
		}

		delay := c.retryBaseDelay * time.Duration(1<<uint(attempt))

		// Retry-After in seconds (RFC 6585)
		if retryAfter := resp.Header.Get("Retry-After"); retryAfter != "" {
			if seconds, err := time.ParseDuration(retryAfter + "s"); err == nil {
				delay = seconds
			}
		}

		metrics.TaxonomyRateLimitRetries.WithLabelValues(op).Inc()
		logging.Ctx(ctx).Debug().
			Str("operation", op).
			Int("attempt", attempt+1).
			Dur("delay", delay).
			Msg("Name-matching service rate limited, backing off")

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	return nil, lastErr
}

// decodeJSONResponse decodes HTTP response body into the provided result
func decodeJSONResponse(resp *http.Response, result interface{}) error {
	decoder := json.NewDecoder(resp.Body)
	return decoder.Decode(result)
}
