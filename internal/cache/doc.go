// DwC Validator - Darwin Core Biodiversity Record Validation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dwcvalidator

// Package cache provides a bounded, TTL-based LRU cache.
//
// The taxonomy package uses it to remember name-matching lookups between
// requests, since the same scientific names recur across uploads:
//
//	suggestions := cache.NewLRU[[]taxonomy.AutocompleteCandidate](10000, time.Hour)
//	suggestions.Add(key, candidates)
//	if c, ok := suggestions.Get(key); ok {
//	    ...
//	}
package cache
