// DwC Validator - Darwin Core Biodiversity Record Validation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dwcvalidator

/*
Package api provides the HTTP interface of the validator.

Clients upload a Darwin Core table (or a core table with extensions) and get
back the validation report wrapped in the standard APIResponse envelope.

Routes:

	GET  /health                       Liveness probe, {"status":"ok"}
	GET  /metrics                      Prometheus metrics
	GET  /api/v1/health                Version, uptime, taxonomy circuit state
	GET  /api/v1/health/ready          503 while the taxonomy circuit is open
	POST /api/v1/validate/occurrence   CSV body, ?id_fields=a,b&id_term=x&delimiter=,
	POST /api/v1/validate/event        CSV body, ?delimiter=,
	POST /api/v1/validate/archive      multipart: core, core_type, id_term,
	                                   extension (repeated), extension_type (aligned)

Middleware:

  - RequestIDWithLogging: X-Request-ID plus request and correlation IDs in
    the logging context
  - RequestLogging: one zerolog line per request
  - CORS: go-chi/cors, origins from SECURITY config
  - RateLimit: go-chi/httprate per client IP on /api/v1
  - APISecurityHeaders: nosniff, frame denial, referrer policy, HSTS over TLS
  - PrometheusMetrics: request count and latency by route pattern
  - Timeout: validation routes are cancelled after the server timeout, which
    also stops outstanding name-matching calls
  - Compress: gzip or deflate for validation reports when the client asks

Error Mapping:

Data problems never fail a request; they are reported inside the report.
Request failures map to status codes as follows:

	400 VALIDATION_ERROR        bad query or form parameters
	400 INVALID_CSV             unparseable or empty table
	400 INVALID_FORM            not a multipart form, or no core file
	400 UNSUPPORTED_CORE_TYPE   core row type is neither Occurrence nor Event
	413 PAYLOAD_TOO_LARGE       body over server.max_body_bytes
	429 RATE_LIMIT_EXCEEDED     client over the rate limit
	502 TAXONOMY_ERROR          name-matching service failed at its last tier
	503 TAXONOMY_UNAVAILABLE    name-matching circuit open
	504 TIMEOUT                 request deadline reached

Example:

	curl -X POST --data-binary @occurrence.csv \
	  'http://localhost:8080/api/v1/validate/occurrence?id_fields=occurrenceID'
*/
package api
