// DwC Validator - Darwin Core Biodiversity Record Validation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dwcvalidator

package models

// CoordinatesReport summarises decimalLatitude/decimalLongitude validity.
// When HasCoordinatesFields is false both counts are zero.
type CoordinatesReport struct {
	// HasCoordinatesFields is true when both coordinate columns exist
	HasCoordinatesFields bool `json:"has_coordinates_fields"`

	// InvalidDecimalLatitudeCount is populated cells that are non-numeric or outside [-90, 90]
	InvalidDecimalLatitudeCount int `json:"invalid_decimal_latitude_count"`

	// InvalidDecimalLongitudeCount is populated cells that are non-numeric or outside [-180, 180]
	InvalidDecimalLongitudeCount int `json:"invalid_decimal_longitude_count"`
}

// VocabularyReport summarises controlled-vocabulary compliance for one field.
//
// When HasField is true:
//
//	RecognisedCount + UnrecognisedCount + unpopulated == record count
type VocabularyReport struct {
	Field             string   `json:"field"`
	HasField          bool     `json:"has_field"`
	RecognisedCount   int      `json:"recognised_count"`
	UnrecognisedCount int      `json:"unrecognised_count"`
	NonMatchingValues []string `json:"non_matching_values"`
}

// MatchSource records which name-matching tier produced a suggestion.
type MatchSource string

const (
	// MatchSourceAutocomplete is a ranked autocomplete candidate.
	MatchSourceAutocomplete MatchSource = "autocomplete"

	// MatchSourceSynonym is a ranked synonym of an autocomplete candidate.
	MatchSourceSynonym MatchSource = "synonym"

	// MatchSourceSearch is a successful single-name search.
	MatchSourceSearch MatchSource = "search"

	// MatchSourceNone means every tier failed to suggest a name.
	MatchSourceNone MatchSource = "none"
)

// UnrecognisedTaxon is one scientific name the classification match did not
// recognise, with the best suggestion found by the fallback tiers.
type UnrecognisedTaxon struct {
	OriginalName  string      `json:"original_name"`
	ProposedMatch string      `json:"proposed_match,omitempty"`
	ProposedRank  string      `json:"proposed_rank,omitempty"`
	MatchSource   MatchSource `json:"match_source"`

	// Classification holds the rank terms returned for the suggestion.
	// Terms the service did not return are absent.
	Classification map[string]string `json:"classification"`
}

// Resolved reports whether a suggestion was found.
func (t UnrecognisedTaxon) Resolved() bool {
	return t.MatchSource != MatchSourceNone
}

// TaxonReport summarises scientific name validation for a table.
type TaxonReport struct {
	HasInvalidTaxa   bool                `json:"has_invalid_taxa"`
	UnrecognisedTaxa []UnrecognisedTaxon `json:"unrecognised_taxa"`

	// ValidTaxonCount is the number of records with complete taxonomy,
	// or 0 when any name was unrecognised
	ValidTaxonCount int `json:"valid_taxon_count"`
}

// DatasetValidationReport is the result of validating one table.
// It is built once per validation call and not modified afterwards.
type DatasetValidationReport struct {
	RecordType       RecordType    `json:"record_type"`
	RecordCount      int           `json:"record_count"`
	RecordErrorCount int           `json:"record_error_count"`
	Errors           []ErrorCode   `json:"errors"`
	Warnings         []WarningCode `json:"warnings"`

	// ColumnCounts maps each column to its populated-row count
	ColumnCounts map[string]int `json:"column_counts"`

	CoordinatesReport        CoordinatesReport `json:"coordinates_report"`
	RecordsWithTaxonomyCount int               `json:"records_with_taxonomy_count"`

	// TaxonomyReport is nil when names were not checked
	TaxonomyReport *TaxonReport `json:"taxonomy_report"`

	VocabularyReports         []VocabularyReport `json:"vocab_reports"`
	AllRequiredColumnsPresent bool               `json:"all_required_columns_present"`
	MissingColumns            []string           `json:"missing_columns"`

	RecordsWithTemporalCount   int `json:"records_with_temporal_count"`
	RecordsWithRecordedByCount int `json:"records_with_recorded_by_count"`
}

// HasErrors reports whether any structural error was found.
func (r *DatasetValidationReport) HasErrors() bool {
	return len(r.Errors) > 0
}

// FieldBreakdown is the populated-row count of one field in one table.
type FieldBreakdown struct {
	RowType        string `json:"row_type"`
	Field          string `json:"field"`
	PopulatedCount int    `json:"populated_count"`
	RecordCount    int    `json:"record_count"`
}

// ArchiveValidationReport aggregates the reports of an archive's core and
// extension tables.
type ArchiveValidationReport struct {
	// Valid is true when no table report carries an error code
	Valid bool `json:"valid"`

	// CoreType is the row type URI of the core table
	CoreType string `json:"core_type"`

	// DatasetType is Occurrence or Event
	DatasetType RecordType `json:"dataset_type"`

	Core       *DatasetValidationReport   `json:"core"`
	Extensions []*DatasetValidationReport `json:"extensions"`
	Breakdowns []FieldBreakdown           `json:"breakdowns"`
}
