// DwC Validator - Darwin Core Biodiversity Record Validation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dwcvalidator

package dwc

import (
	"github.com/tomtom215/dwcvalidator/internal/dataset"
	"github.com/tomtom215/dwcvalidator/internal/vocab"
)

// RequiredColumnSpec is a set of columns that must be present once any of
// the trigger columns is present.
type RequiredColumnSpec struct {
	Name string

	// Trigger columns activate the spec. An empty Trigger always applies.
	Trigger []string

	Required []string

	// Advisory entries are appended when any Required column is missing.
	Advisory []string

	// Fallback is checked instead when the trigger does not fire.
	Fallback *RequiredColumnSpec
}

// AnyOfSpec requires at least one of Columns. Label is reported when none is
// present.
type AnyOfSpec struct {
	Columns []string
	Label   string
}

// taxonomyColumnSpec names the spec whose columns gate taxonomy validation.
const taxonomyColumnSpec = "taxonomy"

// RequiredColumnsResult is the outcome of CheckRequiredColumns.
type RequiredColumnsResult struct {
	AllPresent bool
	Missing    []string

	// Satisfied holds the names of specs whose trigger fired and whose
	// required columns are all present.
	Satisfied map[string]bool
}

// MissingColumns returns the required columns absent from present, in
// required order. allPresent is true when nothing is missing.
func MissingColumns(present, required []string) (allPresent bool, missing []string) {
	have := make(map[string]struct{}, len(present))
	for _, name := range present {
		have[name] = struct{}{}
	}

	missing = []string{}
	for _, name := range required {
		if _, ok := have[name]; !ok {
			missing = append(missing, name)
		}
	}
	return len(missing) == 0, missing
}

// CheckRequiredColumns evaluates specs and then anyOf against the dataset's
// columns. Missing entries keep first-seen order without repeats.
func CheckRequiredColumns(ds *dataset.Dataset, specs []RequiredColumnSpec, anyOf []AnyOfSpec) RequiredColumnsResult {
	present := ds.ColumnNames()
	missing := newOrderedSet()
	satisfied := make(map[string]bool, len(specs))

	for i := range specs {
		spec := activeSpec(ds, &specs[i])
		if spec == nil {
			continue
		}
		allPresent, absent := MissingColumns(present, spec.Required)
		if allPresent {
			satisfied[spec.Name] = true
			continue
		}
		missing.add(absent...)
		missing.add(spec.Advisory...)
	}

	for _, group := range anyOf {
		if !ds.HasAnyColumn(group.Columns...) {
			missing.add(group.Label)
		}
	}

	return RequiredColumnsResult{
		AllPresent: missing.len() == 0,
		Missing:    missing.items,
		Satisfied:  satisfied,
	}
}

// activeSpec walks the fallback chain until a spec's trigger fires.
func activeSpec(ds *dataset.Dataset, spec *RequiredColumnSpec) *RequiredColumnSpec {
	for spec != nil {
		if len(spec.Trigger) == 0 || ds.HasAnyColumn(spec.Trigger...) {
			return spec
		}
		spec = spec.Fallback
	}
	return nil
}

// OccurrenceRequiredColumns returns the required column specs for occurrence
// tables. Tables with spatial columns need the full spatial set; others need
// the base set plus an advisory for coordinates. Tables with any taxonomy
// column need the complete taxonomy set.
func OccurrenceRequiredColumns() []RequiredColumnSpec {
	return []RequiredColumnSpec{
		{
			Name:     "spatial",
			Trigger:  vocab.SpatialColumns(),
			Required: vocab.RequiredColumnsSpatial(),
			Fallback: &RequiredColumnSpec{
				Name:     "other",
				Required: vocab.RequiredColumnsOther(),
				Advisory: vocab.ConditionalCoordinateColumns(),
			},
		},
		{
			Name:     taxonomyColumnSpec,
			Trigger:  vocab.RequiredTaxonomyColumns(),
			Required: vocab.RequiredTaxonomyColumns(),
		},
	}
}

// OccurrenceIdentifierColumns returns the any-of identifier requirement for
// occurrence tables.
func OccurrenceIdentifierColumns() []AnyOfSpec {
	return []AnyOfSpec{{
		Columns: vocab.OccurrenceIdentifierColumns(),
		Label:   vocab.OccurrenceIdentifierLabel(),
	}}
}

type orderedSet struct {
	items []string
	seen  map[string]struct{}
}

func newOrderedSet() *orderedSet {
	return &orderedSet{items: []string{}, seen: make(map[string]struct{})}
}

func (s *orderedSet) add(values ...string) {
	for _, v := range values {
		if _, ok := s.seen[v]; ok {
			continue
		}
		s.seen[v] = struct{}{}
		s.items = append(s.items, v)
	}
}

func (s *orderedSet) len() int {
	return len(s.items)
}
