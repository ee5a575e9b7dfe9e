// DwC Validator - Darwin Core Biodiversity Record Validation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dwcvalidator

/*
Package dwc validates Darwin Core occurrence and event tables.

Each check reads a dataset.Dataset and returns a plain result; none of them
mutate their input or keep state between calls. Validator composes the checks
into a models.DatasetValidationReport.

# Checks

  - CheckIDFields: identifier presence, completeness and uniqueness. The
    candidates form a priority chain where the first failure wins.
  - CheckNumericFields: every known numeric term holds only numbers.
  - CheckRequiredColumns: required and any-of column sets.
  - CheckCoordinates: decimalLatitude in [-90, 90], decimalLongitude in
    [-180, 180], both bounds inclusive.
  - CheckVocabulary: case-insensitive membership in a controlled vocabulary.

Findings are reported as models.ErrorCode and models.WarningCode tags inside
the report. A Go error is returned only when the taxonomy service fails at
its terminal search tier.

# Usage

	v := dwc.NewValidator(taxonomyValidator)
	report, err := v.ValidateOccurrence(ctx, ds, dwc.OccurrenceOptions{
	    IDFields: []string{"occurrenceID"},
	})

Passing a nil taxonomy checker skips scientific name validation.

# Thread Safety

Validator holds no per-call state. Concurrent calls on different datasets,
or on the same dataset, are safe.
*/
package dwc
