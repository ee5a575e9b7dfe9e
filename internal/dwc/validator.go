// DwC Validator - Darwin Core Biodiversity Record Validation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dwcvalidator

package dwc

import (
	"context"
	"fmt"
	"time"

	"github.com/tomtom215/dwcvalidator/internal/dataset"
	"github.com/tomtom215/dwcvalidator/internal/logging"
	"github.com/tomtom215/dwcvalidator/internal/metrics"
	"github.com/tomtom215/dwcvalidator/internal/models"
	"github.com/tomtom215/dwcvalidator/internal/vocab"
)

const (
	basisOfRecordColumn = "basisOfRecord"
	geodeticDatumColumn = "geodeticDatum"
	eventIDColumn       = "eventID"
)

// TaxonomyChecker validates the scientific names of a table.
type TaxonomyChecker interface {
	Validate(ctx context.Context, ds *dataset.Dataset) (*models.TaxonReport, error)
}

// OccurrenceOptions configures ValidateOccurrence.
type OccurrenceOptions struct {
	// IDFields are the identifier candidates, checked in order
	IDFields []string

	// IDTerm is read from the "id" column when listed in IDFields
	IDTerm string
}

// Validator composes the table checks into a DatasetValidationReport.
type Validator struct {
	taxonomy TaxonomyChecker
}

// NewValidator creates a Validator. A nil taxonomy checker disables
// scientific name validation.
func NewValidator(taxonomy TaxonomyChecker) *Validator {
	return &Validator{taxonomy: taxonomy}
}

// ValidateOccurrence validates an occurrence table.
//
// Scientific names are only checked once every taxonomy column is present;
// otherwise the report has no taxonomy section and lists the missing columns.
//
// The only error returned is a taxonomy service failure at its terminal
// search tier; all data problems are reported inside the report.
func (v *Validator) ValidateOccurrence(ctx context.Context, ds *dataset.Dataset, opts OccurrenceOptions) (*models.DatasetValidationReport, error) {
	start := time.Now()

	idCheck := CheckIDFields(ds, opts.IDFields, opts.IDTerm)
	warnings := CheckNumericFields(ds)
	required := CheckRequiredColumns(ds, OccurrenceRequiredColumns(), OccurrenceIdentifierColumns())
	coords, coordWarnings := CheckCoordinates(ds)
	warnings = append(warnings, coordWarnings...)

	var taxonReport *models.TaxonReport
	if v.taxonomy != nil && required.Satisfied[taxonomyColumnSpec] {
		var err error
		taxonReport, err = v.taxonomy.Validate(ctx, ds)
		if err != nil {
			v.record(ctx, models.RecordTypeOccurrence, ds, start, nil, err)
			return nil, fmt.Errorf("taxonomy validation: %w", err)
		}
	}

	vocabReports := []models.VocabularyReport{
		CheckVocabulary(ds, basisOfRecordColumn, vocab.BasisOfRecord()),
	}
	if ds.HasColumn(geodeticDatumColumn) {
		vocabReports = append(vocabReports, CheckVocabulary(ds, geodeticDatumColumn, vocab.GeodeticDatum()))
	}

	report := &models.DatasetValidationReport{
		RecordType:                models.RecordTypeOccurrence,
		RecordCount:               ds.RowCount(),
		RecordErrorCount:          idCheck.ErrorCount,
		Errors:                    idCheck.Errors,
		Warnings:                  warnings,
		ColumnCounts:              ds.PopulatedCounts(),
		CoordinatesReport:         coords,
		TaxonomyReport:            taxonReport,
		VocabularyReports:         vocabReports,
		AllRequiredColumnsPresent: required.AllPresent,
		MissingColumns:            required.Missing,
	}
	if taxonReport != nil {
		report.RecordsWithTaxonomyCount = taxonReport.ValidTaxonCount
	}

	v.record(ctx, models.RecordTypeOccurrence, ds, start, report, nil)
	return report, nil
}

// ValidateEvent validates an event table. Events are identified by eventID
// and are not checked against the taxonomy service. Event tables have no
// required-column check, so AllRequiredColumnsPresent is always true.
func (v *Validator) ValidateEvent(ctx context.Context, ds *dataset.Dataset) (*models.DatasetValidationReport, error) {
	start := time.Now()

	idCheck := CheckIDFields(ds, []string{eventIDColumn}, "")
	warnings := CheckNumericFields(ds)
	temporal := ds.RowsWithAnyPopulated(vocab.TemporalColumns()...)
	coords, coordWarnings := CheckCoordinates(ds)
	warnings = append(warnings, coordWarnings...)
	recordedBy := ds.RowsWithAnyPopulated(vocab.RecordedByColumns()...)

	report := &models.DatasetValidationReport{
		RecordType:       models.RecordTypeEvent,
		RecordCount:      ds.RowCount(),
		RecordErrorCount: idCheck.ErrorCount,
		Errors:           idCheck.Errors,
		Warnings:         warnings,
		ColumnCounts:     ds.PopulatedCounts(),
		VocabularyReports: []models.VocabularyReport{
			CheckVocabulary(ds, geodeticDatumColumn, vocab.GeodeticDatum()),
		},
		CoordinatesReport:          coords,
		AllRequiredColumnsPresent:  true,
		MissingColumns:             []string{},
		RecordsWithTemporalCount:   temporal,
		RecordsWithRecordedByCount: recordedBy,
	}

	v.record(ctx, models.RecordTypeEvent, ds, start, report, nil)
	return report, nil
}

// record emits metrics and a summary log line for one validation run.
func (v *Validator) record(ctx context.Context, recordType models.RecordType, ds *dataset.Dataset, start time.Time, report *models.DatasetValidationReport, err error) {
	duration := time.Since(start)

	if err != nil {
		metrics.RecordValidation(string(recordType), ds.RowCount(), duration, nil, nil, err)
		logging.Ctx(ctx).Error().Err(err).
			Str("record_type", string(recordType)).
			Int("records", ds.RowCount()).
			Dur("duration", duration).
			Msg("Dataset validation failed")
		return
	}

	errorCodes := make([]string, len(report.Errors))
	for i, code := range report.Errors {
		errorCodes[i] = string(code)
	}
	warningCodes := make([]string, len(report.Warnings))
	for i, code := range report.Warnings {
		warningCodes[i] = string(code)
	}
	metrics.RecordValidation(string(recordType), report.RecordCount, duration, errorCodes, warningCodes, nil)

	logging.Ctx(ctx).Info().
		Str("record_type", string(recordType)).
		Int("records", report.RecordCount).
		Int("record_errors", report.RecordErrorCount).
		Strs("errors", errorCodes).
		Strs("warnings", warningCodes).
		Bool("required_columns_present", report.AllRequiredColumnsPresent).
		Dur("duration", duration).
		Msg("Dataset validated")
}
