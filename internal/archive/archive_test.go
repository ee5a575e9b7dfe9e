// DwC Validator - Darwin Core Biodiversity Record Validation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dwcvalidator

package archive

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/go-test/deep"

	"github.com/tomtom215/dwcvalidator/internal/dataset"
	"github.com/tomtom215/dwcvalidator/internal/dwc"
	"github.com/tomtom215/dwcvalidator/internal/models"
)

const (
	occurrenceURI = "http://rs.tdwg.org/dwc/terms/Occurrence"
	eventURI      = "http://rs.tdwg.org/dwc/terms/Event"
	multimediaURI = "http://rs.gbif.org/terms/1.0/Multimedia"
)

// recordingTables records the calls made by the archive validator.
type recordingTables struct {
	mu          sync.Mutex
	occurrences []dwc.OccurrenceOptions
	events      int
	failOn      *dataset.Dataset
}

func (r *recordingTables) ValidateOccurrence(_ context.Context, ds *dataset.Dataset, opts dwc.OccurrenceOptions) (*models.DatasetValidationReport, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if ds == r.failOn {
		return nil, errors.New("taxonomy validation: search failed")
	}
	r.occurrences = append(r.occurrences, opts)
	return &models.DatasetValidationReport{RecordType: models.RecordTypeOccurrence, RecordCount: ds.RowCount()}, nil
}

func (r *recordingTables) ValidateEvent(_ context.Context, ds *dataset.Dataset) (*models.DatasetValidationReport, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events++
	return &models.DatasetValidationReport{RecordType: models.RecordTypeEvent, RecordCount: ds.RowCount()}, nil
}

func mustCSV(t *testing.T, text string) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.ReadCSV(strings.NewReader(text))
	if err != nil {
		t.Fatalf("Failed to read CSV: %v", err)
	}
	return ds
}

func TestValidate_UnsupportedCoreType(t *testing.T) {
	v := NewValidator(&recordingTables{}, nil)
	_, err := v.Validate(context.Background(), Archive{
		CoreType: "http://rs.tdwg.org/dwc/terms/Taxon",
		Core:     mustCSV(t, "taxonID\nt1\n"),
	})
	if !errors.Is(err, ErrUnsupportedCoreType) {
		t.Errorf("Expected ErrUnsupportedCoreType, got %v", err)
	}
}

func TestValidate_MissingCore(t *testing.T) {
	v := NewValidator(&recordingTables{}, nil)
	_, err := v.Validate(context.Background(), Archive{CoreType: occurrenceURI})
	if !errors.Is(err, ErrMissingCore) {
		t.Errorf("Expected ErrMissingCore, got %v", err)
	}
}

func TestValidate_EventCoreWithExtensions(t *testing.T) {
	tables := &recordingTables{}
	v := NewValidator(tables, []string{"occurrenceID"})

	core := mustCSV(t, "eventID,eventDate\ne1,2024-01-01\ne2,\n")
	occurrences := mustCSV(t, "id,occurrenceID,scientificName\ne1,o1,Acacia dealbata\n")
	media := mustCSV(t, "id,identifier\ne1,https://example.org/a.jpg\ne2,\n")

	report, err := v.Validate(context.Background(), Archive{
		CoreType: eventURI,
		Core:     core,
		IDTerm:   "eventID",
		Extensions: []Extension{
			{RowType: occurrenceURI, Dataset: occurrences},
			{RowType: multimediaURI, Dataset: media},
		},
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !report.Valid {
		t.Error("Expected valid archive")
	}
	if report.DatasetType != models.RecordTypeEvent {
		t.Errorf("Expected Event dataset type, got %s", report.DatasetType)
	}
	if report.Core == nil || report.Core.RecordType != models.RecordTypeEvent {
		t.Errorf("Expected event core report, got %+v", report.Core)
	}
	if len(report.Extensions) != 1 || report.Extensions[0].RecordType != models.RecordTypeOccurrence {
		t.Errorf("Expected one occurrence extension report, got %+v", report.Extensions)
	}
	if tables.events != 1 {
		t.Errorf("Expected 1 event validation, got %d", tables.events)
	}
	// Extensions do not alias the id column
	if diff := deep.Equal(tables.occurrences, []dwc.OccurrenceOptions{{IDFields: []string{"occurrenceID"}}}); diff != nil {
		t.Error(diff)
	}

	expected := []models.FieldBreakdown{
		{RowType: multimediaURI, Field: "id", PopulatedCount: 2, RecordCount: 2},
		{RowType: multimediaURI, Field: "identifier", PopulatedCount: 1, RecordCount: 2},
		{RowType: eventURI, Field: "eventDate", PopulatedCount: 1, RecordCount: 2},
		{RowType: eventURI, Field: "eventID", PopulatedCount: 2, RecordCount: 2},
		{RowType: occurrenceURI, Field: "id", PopulatedCount: 1, RecordCount: 1},
		{RowType: occurrenceURI, Field: "occurrenceID", PopulatedCount: 1, RecordCount: 1},
		{RowType: occurrenceURI, Field: "scientificName", PopulatedCount: 1, RecordCount: 1},
	}
	if diff := deep.Equal(report.Breakdowns, expected); diff != nil {
		t.Error(diff)
	}
}

func TestValidate_OccurrenceCoreUsesIDTerm(t *testing.T) {
	tables := &recordingTables{}
	v := NewValidator(tables, []string{"occurrenceID"})

	_, err := v.Validate(context.Background(), Archive{
		CoreType: "Occurrence",
		Core:     mustCSV(t, "id,scientificName\no1,Acacia dealbata\n"),
		IDTerm:   "occurrenceID",
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	expected := []dwc.OccurrenceOptions{{IDFields: []string{"occurrenceID"}, IDTerm: "occurrenceID"}}
	if diff := deep.Equal(tables.occurrences, expected); diff != nil {
		t.Error(diff)
	}
}

func TestValidate_TableErrorFailsArchive(t *testing.T) {
	occurrences := mustCSV(t, "id,scientificName\ne1,Acacia dealbta\n")
	tables := &recordingTables{failOn: occurrences}
	v := NewValidator(tables, nil)

	_, err := v.Validate(context.Background(), Archive{
		CoreType:   eventURI,
		Core:       mustCSV(t, "eventID\ne1\n"),
		Extensions: []Extension{{RowType: occurrenceURI, Dataset: occurrences}},
	})
	if err == nil || !strings.Contains(err.Error(), "extension "+occurrenceURI) {
		t.Errorf("Expected extension error, got %v", err)
	}
}

// TestValidate_InvalidWhenAnyTableHasErrors runs the real table validator
func TestValidate_InvalidWhenAnyTableHasErrors(t *testing.T) {
	v := NewValidator(dwc.NewValidator(nil), []string{"occurrenceID"})

	report, err := v.Validate(context.Background(), Archive{
		CoreType: eventURI,
		Core:     mustCSV(t, "eventID\ne1\ne2\n"),
		Extensions: []Extension{
			{RowType: occurrenceURI, Dataset: mustCSV(t, "id,occurrenceID\ne1,o1\ne2,o1\n")},
		},
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if report.Valid {
		t.Error("Expected invalid archive because of duplicate occurrenceID values")
	}
	if !report.Extensions[0].HasErrors() {
		t.Error("Expected extension report to carry an error code")
	}
	if report.Core.HasErrors() {
		t.Errorf("Expected clean core report, got %v", report.Core.Errors)
	}
}

func TestCoreTypeLabel(t *testing.T) {
	if got := coreTypeLabel(occurrenceURI); got != "Occurrence" {
		t.Errorf("Expected Occurrence, got %s", got)
	}
	if got := coreTypeLabel("http://example.org/Whatever"); got != "unsupported" {
		t.Errorf("Expected unsupported, got %s", got)
	}
}
