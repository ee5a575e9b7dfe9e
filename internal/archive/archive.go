// DwC Validator - Darwin Core Biodiversity Record Validation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dwcvalidator

package archive

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/dwcvalidator/internal/dataset"
	"github.com/tomtom215/dwcvalidator/internal/dwc"
	"github.com/tomtom215/dwcvalidator/internal/logging"
	"github.com/tomtom215/dwcvalidator/internal/metrics"
	"github.com/tomtom215/dwcvalidator/internal/models"
	"github.com/tomtom215/dwcvalidator/internal/vocab"
)

// ErrUnsupportedCoreType is returned when the core row type is neither
// Occurrence nor Event.
var ErrUnsupportedCoreType = errors.New("unsupported core type")

// ErrMissingCore is returned when the archive has no core table.
var ErrMissingCore = errors.New("archive has no core table")

// Extension is one extension table of an archive.
type Extension struct {
	RowType string
	Dataset *dataset.Dataset
}

// Archive is a parsed Darwin Core Archive.
type Archive struct {
	// CoreType is the core row type URI, e.g. http://rs.tdwg.org/dwc/terms/Occurrence
	CoreType string
	Core     *dataset.Dataset

	// IDTerm is the term the core "id" column stands for, e.g. occurrenceID
	IDTerm string

	Extensions []Extension
}

// TableValidator validates a single table.
type TableValidator interface {
	ValidateOccurrence(ctx context.Context, ds *dataset.Dataset, opts dwc.OccurrenceOptions) (*models.DatasetValidationReport, error)
	ValidateEvent(ctx context.Context, ds *dataset.Dataset) (*models.DatasetValidationReport, error)
}

// Validator validates whole archives.
type Validator struct {
	tables   TableValidator
	idFields []string
}

// NewValidator creates an archive validator. idFields are the identifier
// candidates used for occurrence tables.
func NewValidator(tables TableValidator, idFields []string) *Validator {
	return &Validator{tables: tables, idFields: idFields}
}

// Validate validates the core and every extension table. Tables are
// validated concurrently; the first table error cancels the rest.
func (v *Validator) Validate(ctx context.Context, a Archive) (*models.ArchiveValidationReport, error) {
	start := time.Now()

	report, err := v.validate(ctx, a)

	valid := report != nil && report.Valid
	metrics.RecordArchiveValidation(coreTypeLabel(a.CoreType), len(a.Extensions), valid, err)

	log := logging.Ctx(ctx)
	if err != nil {
		log.Warn().Err(err).Str("core_type", a.CoreType).Msg("Archive validation failed")
		return nil, err
	}
	log.Info().
		Str("core_type", a.CoreType).
		Int("extensions", len(a.Extensions)).
		Bool("valid", report.Valid).
		Dur("duration", time.Since(start)).
		Msg("Archive validated")

	return report, nil
}

func (v *Validator) validate(ctx context.Context, a Archive) (*models.ArchiveValidationReport, error) {
	if a.Core == nil {
		return nil, ErrMissingCore
	}
	coreType, ok := vocab.RecordTypeForRowType(a.CoreType)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedCoreType, a.CoreType)
	}

	// Slot 0 is the core; extension i is slot i+1
	reports := make([]*models.DatasetValidationReport, len(a.Extensions)+1)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		r, err := v.validateTable(gctx, coreType, a.Core, a.IDTerm)
		if err != nil {
			return fmt.Errorf("core table: %w", err)
		}
		reports[0] = r
		return nil
	})
	for i, ext := range a.Extensions {
		extType, ok := vocab.RecordTypeForRowType(ext.RowType)
		if !ok || ext.Dataset == nil {
			continue
		}
		g.Go(func() error {
			r, err := v.validateTable(gctx, extType, ext.Dataset, "")
			if err != nil {
				return fmt.Errorf("extension %s: %w", ext.RowType, err)
			}
			reports[i+1] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &models.ArchiveValidationReport{
		Valid:       true,
		CoreType:    a.CoreType,
		DatasetType: models.RecordType(coreType),
		Core:        reports[0],
		Extensions:  make([]*models.DatasetValidationReport, 0, len(a.Extensions)),
		Breakdowns:  breakdowns(a),
	}
	for _, r := range reports[1:] {
		if r != nil {
			report.Extensions = append(report.Extensions, r)
		}
	}
	for _, r := range reports {
		if r != nil && r.HasErrors() {
			report.Valid = false
		}
	}

	return report, nil
}

// coreTypeLabel keeps the metrics label set bounded.
func coreTypeLabel(rowType string) string {
	if recordType, ok := vocab.RecordTypeForRowType(rowType); ok {
		return recordType
	}
	return "unsupported"
}

func (v *Validator) validateTable(ctx context.Context, recordType string, ds *dataset.Dataset, idTerm string) (*models.DatasetValidationReport, error) {
	if recordType == string(models.RecordTypeEvent) {
		return v.tables.ValidateEvent(ctx, ds)
	}
	return v.tables.ValidateOccurrence(ctx, ds, dwc.OccurrenceOptions{
		IDFields: v.idFields,
		IDTerm:   idTerm,
	})
}

// breakdowns lists the populated count of every field of every table,
// sorted by row type then field.
func breakdowns(a Archive) []models.FieldBreakdown {
	var out []models.FieldBreakdown
	add := func(rowType string, ds *dataset.Dataset) {
		if ds == nil {
			return
		}
		for field, count := range ds.PopulatedCounts() {
			out = append(out, models.FieldBreakdown{
				RowType:        rowType,
				Field:          field,
				PopulatedCount: count,
				RecordCount:    ds.RowCount(),
			})
		}
	}

	add(a.CoreType, a.Core)
	for _, ext := range a.Extensions {
		add(ext.RowType, ext.Dataset)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].RowType != out[j].RowType {
			return out[i].RowType < out[j].RowType
		}
		return out[i].Field < out[j].Field
	})
	if out == nil {
		out = []models.FieldBreakdown{}
	}
	return out
}
