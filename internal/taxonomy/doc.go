// DwC Validator - Darwin Core Biodiversity Record Validation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dwcvalidator

/*
Package taxonomy checks scientific names against a name-matching service.

The default service is the Atlas of Living Australia name-matching API.
Names that the batch classification match does not recognise are resolved
through three fallback tiers, each tried only when the previous one
produced nothing:

 1. Autocomplete: the first candidate if it has a rank, otherwise its first
    ranked synonym
 2. Search: a single-name lookup; an unsuccessful lookup leaves the name
    without a suggestion
 3. None: the name is reported with no proposed match

A transport failure in the classification or autocomplete tier is logged
and treated as "no match". A transport failure in the search tier fails the
whole run with ErrSearchFailed.

# Components

  - Client: the three service operations
  - HTTPClient: JSON over HTTP with request pacing and HTTP 429 backoff
  - CircuitBreakerClient: wraps any Client with sony/gobreaker
  - Validator: builds a models.TaxonReport for a dataset

# Usage

	client := taxonomy.NewCircuitBreakerClient(taxonomy.NewHTTPClient(&cfg.Taxonomy))
	validator := taxonomy.NewValidator(client, &cfg.Taxonomy)
	report, err := validator.Validate(ctx, ds)

Validator calls the service sequentially, one request per unresolved name,
and is safe for concurrent use when its Client is.
*/
package taxonomy
