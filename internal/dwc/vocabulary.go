// DwC Validator - Darwin Core Biodiversity Record Validation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dwcvalidator

package dwc

import (
	"sort"
	"strings"

	"github.com/tomtom215/dwcvalidator/internal/dataset"
	"github.com/tomtom215/dwcvalidator/internal/models"
)

const (
	// MaxNonMatchingValues caps the diagnostic sample in a VocabularyReport.
	MaxNonMatchingValues = 10

	// nullMarker is how missing numbers appear once a column is stringified.
	nullMarker = "nan"
)

// CheckVocabulary compares a column against a controlled vocabulary,
// ignoring case. Unpopulated cells count as neither recognised nor
// unrecognised.
func CheckVocabulary(ds *dataset.Dataset, field string, vocabulary []string) models.VocabularyReport {
	report := models.VocabularyReport{
		Field:             field,
		NonMatchingValues: []string{},
	}

	col, ok := ds.Column(field)
	if !ok {
		return report
	}
	report.HasField = true

	accepted := make(map[string]struct{}, len(vocabulary))
	for _, term := range vocabulary {
		accepted[strings.ToLower(term)] = struct{}{}
	}

	matched := 0
	for _, v := range col.Values {
		if v.IsNull() {
			continue
		}
		if _, ok := accepted[strings.ToLower(v.Text())]; ok {
			matched++
		}
	}

	report.RecognisedCount = matched
	report.UnrecognisedCount = ds.RowCount() - (col.NullCount() + matched)

	report.NonMatchingValues = nonMatchingSample(col.Values, accepted)
	return report
}

// nonMatchingSample returns up to MaxNonMatchingValues distinct populated
// values missing from accepted, sorted, with their original case. Numeric
// cells are compared by their text form.
func nonMatchingSample(values []dataset.Value, accepted map[string]struct{}) []string {
	seen := make(map[string]struct{})
	for _, v := range values {
		if v.IsNull() {
			continue
		}
		text := v.Text()
		if text == nullMarker {
			continue
		}
		if _, ok := accepted[strings.ToLower(text)]; ok {
			continue
		}
		seen[text] = struct{}{}
	}

	sample := make([]string, 0, len(seen))
	for text := range seen {
		sample = append(sample, text)
	}
	sort.Strings(sample)
	if len(sample) > MaxNonMatchingValues {
		sample = sample[:MaxNonMatchingValues]
	}
	return sample
}
