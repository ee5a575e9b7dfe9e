// DwC Validator - Darwin Core Biodiversity Record Validation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dwcvalidator

package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration loaded from defaults, an
// optional config file and environment variables.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in sensible defaults for all optional settings
//  2. Config File: Optional YAML config file (config.yaml)
//  3. Environment Variables: Override any setting
//
// Example:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal("Failed to load config:", err)
//	}
//	addr := cfg.Server.Address()
//
// Thread Safety:
// Config is immutable after Load() and safe for concurrent read access.
type Config struct {
	Server     ServerConfig     `koanf:"server"`
	Taxonomy   TaxonomyConfig   `koanf:"taxonomy"`
	Validation ValidationConfig `koanf:"validation"`
	Security   SecurityConfig   `koanf:"security"`
	Logging    LoggingConfig    `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
//
// Environment Variables:
//   - HTTP_HOST: Bind address (default: 0.0.0.0)
//   - HTTP_PORT: Listen port (default: 8080)
//   - HTTP_TIMEOUT: Request timeout (default: 2m)
//   - MAX_UPLOAD_BYTES: Largest accepted request body (default: 64MB)
//   - ENVIRONMENT: development or production (default: development)
type ServerConfig struct {
	Port         int           `koanf:"port"`
	Host         string        `koanf:"host"`
	Timeout      time.Duration `koanf:"timeout"`
	MaxBodyBytes int64         `koanf:"max_body_bytes"`
	Environment  string        `koanf:"environment"`
}

// Address returns the host:port listen address.
func (s ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// TaxonomyConfig holds name-matching service settings.
// When disabled, scientific names are not checked.
//
// Environment Variables:
//   - TAXONOMY_ENABLED: Check scientific names (default: true)
//   - TAXONOMY_URL: Service base URL (default: https://api.ala.org.au/namematching)
//   - TAXONOMY_TIMEOUT: Per-request timeout (default: 30s)
//   - TAXONOMY_MAX_SUGGESTIONS: Autocomplete result limit (default: 5)
//   - TAXONOMY_INCLUDE_SYNONYMS: Ask autocomplete for synonyms (default: true)
//   - TAXONOMY_ATLAS: Classification term list (default: Australia)
//   - TAXONOMY_REQUESTS_PER_SECOND: Outbound request pacing, 0 disables (default: 10)
//   - TAXONOMY_MAX_RETRIES: Retries after HTTP 429 (default: 5)
//   - TAXONOMY_RETRY_BASE_DELAY: First backoff delay (default: 1s)
//   - TAXONOMY_CACHE_SIZE: Cached lookups kept between requests, 0 disables (default: 10000)
//   - TAXONOMY_CACHE_TTL: Lifetime of a cached lookup (default: 1h)
type TaxonomyConfig struct {
	Enabled           bool          `koanf:"enabled"`
	BaseURL           string        `koanf:"base_url"`
	Timeout           time.Duration `koanf:"timeout"`
	MaxSuggestions    int           `koanf:"max_suggestions"`
	IncludeSynonyms   bool          `koanf:"include_synonyms"`
	Atlas             string        `koanf:"atlas"`
	RequestsPerSecond float64       `koanf:"requests_per_second"`
	MaxRetries        int           `koanf:"max_retries"`
	RetryBaseDelay    time.Duration `koanf:"retry_base_delay"`
	CacheSize         int           `koanf:"cache_size"`
	CacheTTL          time.Duration `koanf:"cache_ttl"`
}

// ValidationConfig holds defaults for validation requests. Request
// parameters override them.
//
// Environment Variables:
//   - OCCURRENCE_ID_FIELDS: Comma-separated identifier candidates (default: none)
//   - OCCURRENCE_ID_TERM: Identifier term aliased to the "id" column (default: none)
type ValidationConfig struct {
	OccurrenceIDFields []string `koanf:"occurrence_id_fields"`
	OccurrenceIDTerm   string   `koanf:"occurrence_id_term"`
}

// SecurityConfig holds request admission settings.
//
// Environment Variables:
//   - RATE_LIMIT_REQUESTS: Requests per window per client (default: 100)
//   - RATE_LIMIT_WINDOW: Rate limit window (default: 1m)
//   - DISABLE_RATE_LIMIT: Turn rate limiting off (default: false)
//   - CORS_ORIGINS: Comma-separated allowed origins (default: *)
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// LoggingConfig holds logging settings.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json or console (default: json)
//   - LOG_CALLER: Include caller file and line (default: false)
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// JSON is recommended for production (structured, machine-parseable).
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	Caller bool `koanf:"caller"`
}

// Load reads configuration with the following precedence (highest to lowest):
//  1. Environment variables
//  2. Config file (config.yaml if exists, or path specified in CONFIG_PATH)
//  3. Built-in defaults
//
// See LoadWithKoanf() for the underlying implementation.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
