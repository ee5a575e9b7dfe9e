// DwC Validator - Darwin Core Biodiversity Record Validation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dwcvalidator

package config

import (
	"fmt"
	"time"

	"github.com/tomtom215/dwcvalidator/internal/vocab"
)

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateTaxonomy(); err != nil {
		return err
	}

	if err := c.validateSecurity(); err != nil {
		return err
	}

	return c.validateLogging()
}

// validateServer validates HTTP server configuration
func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	if c.Server.MaxBodyBytes < 1 {
		return fmt.Errorf("MAX_UPLOAD_BYTES must be positive")
	}
	return nil
}

// IsProduction reports whether the server runs in production mode
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// Taxonomy limits
const (
	minMaxSuggestions  = 1
	maxMaxSuggestions  = 100
	maxTaxonomyRetries = 10
)

// validateTaxonomy validates name-matching service configuration (only if enabled)
func (c *Config) validateTaxonomy() error {
	if !c.Taxonomy.Enabled {
		return nil
	}

	if c.Taxonomy.BaseURL == "" {
		return fmt.Errorf("TAXONOMY_URL is required when TAXONOMY_ENABLED=true")
	}
	if err := validateHTTPURL(c.Taxonomy.BaseURL, "TAXONOMY_URL"); err != nil {
		return fmt.Errorf("TAXONOMY_URL is invalid: %w", err)
	}

	if c.Taxonomy.Timeout <= 0 {
		return fmt.Errorf("TAXONOMY_TIMEOUT must be positive")
	}

	if c.Taxonomy.MaxSuggestions < minMaxSuggestions || c.Taxonomy.MaxSuggestions > maxMaxSuggestions {
		return fmt.Errorf("TAXONOMY_MAX_SUGGESTIONS must be between %d and %d", minMaxSuggestions, maxMaxSuggestions)
	}

	if !vocab.KnownAtlas(c.Taxonomy.Atlas) {
		return fmt.Errorf("TAXONOMY_ATLAS %q has no classification term list", c.Taxonomy.Atlas)
	}

	if c.Taxonomy.RequestsPerSecond < 0 {
		return fmt.Errorf("TAXONOMY_REQUESTS_PER_SECOND must not be negative")
	}

	if c.Taxonomy.MaxRetries < 0 || c.Taxonomy.MaxRetries > maxTaxonomyRetries {
		return fmt.Errorf("TAXONOMY_MAX_RETRIES must be between 0 and %d", maxTaxonomyRetries)
	}

	if c.Taxonomy.RetryBaseDelay < 0 {
		return fmt.Errorf("TAXONOMY_RETRY_BASE_DELAY must not be negative")
	}

	if c.Taxonomy.CacheSize < 0 {
		return fmt.Errorf("TAXONOMY_CACHE_SIZE must not be negative")
	}
	if c.Taxonomy.CacheSize > 0 && c.Taxonomy.CacheTTL <= 0 {
		return fmt.Errorf("TAXONOMY_CACHE_TTL must be positive when the cache is enabled")
	}

	return nil
}

// validateSecurity validates request admission configuration
func (c *Config) validateSecurity() error {
	if len(c.Security.CORSOrigins) == 0 {
		return fmt.Errorf("CORS_ORIGINS must list at least one origin")
	}
	return c.validateRateLimits()
}

// Rate limit constants
const (
	minRateLimitRequests = 1           // Minimum 1 request allowed
	maxRateLimitRequests = 100000      // Maximum 100K requests per window
	minRateLimitWindow   = time.Second // Minimum 1 second window
	maxRateLimitWindow   = time.Hour   // Maximum 1 hour window
)

// validateRateLimits validates rate limiting configuration bounds.
func (c *Config) validateRateLimits() error {
	if c.Security.RateLimitDisabled {
		return nil
	}

	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

// validLogLevels defines the allowed log levels
var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// validLogFormats defines the allowed log formats
var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}
