// DwC Validator - Darwin Core Biodiversity Record Validation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dwcvalidator

package models

import "strings"

// RecordType is the semantic category of a validated table.
type RecordType string

const (
	// RecordTypeOccurrence is a table of occurrence records.
	RecordTypeOccurrence RecordType = "Occurrence"

	// RecordTypeEvent is a table of sampling event records.
	RecordTypeEvent RecordType = "Event"
)

// ErrorCode is a structural failure tag carried inside a report.
// Consumers match on the string value.
type ErrorCode string

const (
	// ErrMissingIDField means an identifier column is absent.
	ErrMissingIDField ErrorCode = "MISSING_ID_FIELD"

	// ErrMissingIDFieldValues means an identifier column has empty cells.
	ErrMissingIDFieldValues ErrorCode = "MISSING_ID_FIELD_VALUES"

	// ErrDuplicateIDFieldValues means a sole identifier column repeats values.
	ErrDuplicateIDFieldValues ErrorCode = "DUPLICATE_ID_FIELD_VALUES"
)

// WarningCode is a data-quality tag carried inside a report.
type WarningCode string

const (
	// WarnInvalidCoordinates means at least one coordinate is non-numeric or
	// outside its valid range.
	WarnInvalidCoordinates WarningCode = "INVALID_OR_OUT_OF_RANGE_COORDINATES"

	// nonNumericPrefix prefixes the upper-cased field name.
	nonNumericPrefix = "NON_NUMERIC_VALUES_IN_"
)

// NonNumericValuesWarning returns the warning for a numeric field holding a
// non-numeric cell, e.g. NON_NUMERIC_VALUES_IN_DECIMALLATITUDE.
func NonNumericValuesWarning(field string) WarningCode {
	return WarningCode(nonNumericPrefix + strings.ToUpper(field))
}
