// DwC Validator - Darwin Core Biodiversity Record Validation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dwcvalidator

/*
Package models defines the validation reports and API response types.

Reports:

  - DatasetValidationReport: result of validating one occurrence or event table
  - ArchiveValidationReport: core and extension reports plus field breakdowns
  - CoordinatesReport, VocabularyReport, TaxonReport: per-check summaries
  - UnrecognisedTaxon: a scientific name the batch match did not recognise,
    with the suggestion from the autocomplete, synonym or search tier

Codes:

  - ErrorCode: structural failures (MISSING_ID_FIELD, DUPLICATE_ID_FIELD_VALUES, ...)
  - WarningCode: data-quality findings (INVALID_OR_OUT_OF_RANGE_COORDINATES,
    NON_NUMERIC_VALUES_IN_<FIELD>)

Consumers match on the string value of a code, so the constants must not
change. Reports are built once by the dwc and archive packages and are not
modified afterwards, which makes them safe to share between goroutines.

API:

  - APIResponse: the envelope for every /api/v1 response
  - APIError: error code, message and optional details
  - HealthStatus: payload of GET /api/v1/health

All JSON field names are snake_case.
*/
package models
