// DwC Validator - Darwin Core Biodiversity Record Validation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dwcvalidator

package dwc

import (
	"context"
	"testing"

	"github.com/tomtom215/dwcvalidator/internal/dataset"
	"github.com/tomtom215/dwcvalidator/internal/models"
	"github.com/tomtom215/dwcvalidator/internal/vocab"
)

// col builds a column from strings, numbers and nils.
func col(name string, cells ...interface{}) dataset.Column {
	values := make([]dataset.Value, len(cells))
	for i, c := range cells {
		switch v := c.(type) {
		case nil:
			values[i] = dataset.Null()
		case string:
			values[i] = dataset.String(v)
		case int:
			values[i] = dataset.Number(float64(v))
		case float64:
			values[i] = dataset.Number(v)
		default:
			panic("unsupported cell type")
		}
	}
	return dataset.Column{Name: name, Values: values}
}

func mustDataset(t *testing.T, columns ...dataset.Column) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.New(columns...)
	if err != nil {
		t.Fatalf("Failed to build dataset: %v", err)
	}
	return ds
}

// taxonomyColumns builds every taxonomy column for the given names, leaving
// out the columns listed in omit.
func taxonomyColumns(names []string, omit ...string) []dataset.Column {
	skip := make(map[string]bool, len(omit))
	for _, name := range omit {
		skip[name] = true
	}

	var columns []dataset.Column
	for _, term := range vocab.RequiredTaxonomyColumns() {
		if skip[term] {
			continue
		}
		cells := make([]interface{}, len(names))
		for i, name := range names {
			if term == "scientificName" {
				cells[i] = name
			} else {
				cells[i] = term + "-value"
			}
		}
		columns = append(columns, col(term, cells...))
	}
	return columns
}

// fakeTaxonomy returns a fixed report or error and counts calls.
type fakeTaxonomy struct {
	report *models.TaxonReport
	err    error
	calls  int
}

func (f *fakeTaxonomy) Validate(_ context.Context, _ *dataset.Dataset) (*models.TaxonReport, error) {
	f.calls++
	return f.report, f.err
}

func hasWarning(warnings []models.WarningCode, code models.WarningCode) bool {
	for _, w := range warnings {
		if w == code {
			return true
		}
	}
	return false
}

// emptyColumns builds zero-row columns with the given names.
func emptyColumns(names []string) []dataset.Column {
	columns := make([]dataset.Column, len(names))
	for i, name := range names {
		columns[i] = dataset.Column{Name: name}
	}
	return columns
}
