// DwC Validator - Darwin Core Biodiversity Record Validation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dwcvalidator

/*
Package main is the entry point for the DwC validator HTTP service.

The server accepts Darwin Core occurrence and event tables, and whole
archives (a core table plus extensions), and returns validation reports
covering required columns, identifiers, coordinates, controlled vocabularies
and scientific names.

# Startup

 1. Configuration: koanf v2 from defaults, config.yaml and environment
 2. Logging: zerolog, JSON or console
 3. Taxonomy: HTTP name-matching client behind a gobreaker circuit breaker
    (skipped when TAXONOMY_ENABLED=false)
 4. Validators: dwc table validator and archive validator
 5. HTTP: chi router with CORS, rate limiting and Prometheus metrics
 6. Supervisor: suture v4 tree running the HTTP server

# Process Supervision

	dwcvalidator
	└── api-layer
	    └── http-server

A listener failure restarts the HTTP server with backoff. SIGINT or SIGTERM
cancels the tree, which drains in-flight requests for up to 10 seconds.

# Configuration

Common environment variables:

	HTTP_HOST, HTTP_PORT          listen address (default 0.0.0.0:8080)
	HTTP_TIMEOUT                  per-request timeout (default 2m)
	MAX_UPLOAD_BYTES              largest accepted body (default 64MB)
	TAXONOMY_ENABLED              check scientific names (default true)
	TAXONOMY_URL                  name-matching service base URL
	OCCURRENCE_ID_FIELDS          default identifier candidates
	RATE_LIMIT_REQUESTS           requests per window per client
	LOG_LEVEL, LOG_FORMAT         logging

See the config package for the full list and config.yaml support.

# Build

	go build -ldflags "-X main.version=1.0.0" -o dwcvalidator ./cmd/server
*/
package main
