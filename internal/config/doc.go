// DwC Validator - Darwin Core Biodiversity Record Validation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dwcvalidator

/*
Package config provides centralized configuration management for the validator.

Configuration is layered with Koanf v2: built-in defaults, then an optional
YAML file, then environment variables. The result is validated once and is
read-only afterwards.

# Configuration Sources

  - Defaults: defaultConfig()
  - Config file: CONFIG_PATH, or the first of DefaultConfigPaths that exists
  - Environment variables: an explicit allow-list in envMappings; anything
    else in the environment is ignored

# Configuration Structure

  - ServerConfig: HTTP listener, timeouts and upload size
  - TaxonomyConfig: name-matching service URL, suggestion limits, pacing
    and retries
  - ValidationConfig: default occurrence identifier fields
  - SecurityConfig: CORS origins and API rate limiting
  - LoggingConfig: zerolog level, format and caller info

# Example config.yaml

	server:
	  port: 8080
	  max_body_bytes: 67108864
	taxonomy:
	  enabled: true
	  base_url: https://api.ala.org.au/namematching
	  max_suggestions: 5
	  include_synonyms: true
	validation:
	  occurrence_id_fields: [occurrenceID]
	logging:
	  level: debug
	  format: console

# Environment Variables

	HTTP_HOST, HTTP_PORT, HTTP_TIMEOUT, MAX_UPLOAD_BYTES, ENVIRONMENT
	TAXONOMY_ENABLED, TAXONOMY_URL, TAXONOMY_TIMEOUT, TAXONOMY_MAX_SUGGESTIONS,
	TAXONOMY_INCLUDE_SYNONYMS, TAXONOMY_ATLAS, TAXONOMY_REQUESTS_PER_SECOND,
	TAXONOMY_MAX_RETRIES, TAXONOMY_RETRY_BASE_DELAY
	OCCURRENCE_ID_FIELDS, OCCURRENCE_ID_TERM
	RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT, CORS_ORIGINS
	LOG_LEVEL, LOG_FORMAT, LOG_CALLER

Comma-separated values are accepted for OCCURRENCE_ID_FIELDS and CORS_ORIGINS.
*/
package config
