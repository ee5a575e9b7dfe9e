// DwC Validator - Darwin Core Biodiversity Record Validation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dwcvalidator

// Package dataset provides the read-only tabular model that every validator
// consumes.
//
// A Dataset is an ordered set of named columns that all share the same row
// count. Each cell is a Value holding a string, a number, or nothing (null).
// Datasets are built once by a loader (see ReadCSV) and are never mutated
// afterwards, so a single Dataset can be validated from several goroutines
// at the same time.
//
// # Building a Dataset
//
//	ds, err := dataset.FromRows(
//	    []string{"occurrenceID", "decimalLatitude"},
//	    [][]dataset.Value{
//	        {dataset.String("occ-1"), dataset.Number(-35.2)},
//	        {dataset.String("occ-2"), dataset.Null()},
//	    },
//	)
//
// # Numeric Coercion
//
// Value.Float mirrors a lenient "to numeric" conversion: numbers pass
// through, strings are trimmed and parsed, and anything else (null, NaN or
// Inf text, free text) is reported as not numeric.
//
// # Column Statistics
//
// PopulatedCount and PopulatedCounts report the number of non-null cells per
// column. They back the column_counts section of every validation report.
package dataset
