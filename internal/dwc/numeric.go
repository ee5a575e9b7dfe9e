// DwC Validator - Darwin Core Biodiversity Record Validation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dwcvalidator

package dwc

import (
	"github.com/tomtom215/dwcvalidator/internal/dataset"
	"github.com/tomtom215/dwcvalidator/internal/models"
	"github.com/tomtom215/dwcvalidator/internal/vocab"
)

// CheckNumericFields returns a NON_NUMERIC_VALUES_IN_<FIELD> warning for each
// known numeric column holding a populated cell that is not a number.
// Fields are checked independently, in vocab.NumericFields order.
func CheckNumericFields(ds *dataset.Dataset) []models.WarningCode {
	warnings := []models.WarningCode{}
	for _, field := range vocab.NumericFields() {
		col, ok := ds.Column(field)
		if !ok {
			continue
		}
		if !allNumeric(col.Values) {
			warnings = append(warnings, models.NonNumericValuesWarning(field))
		}
	}
	return warnings
}

func allNumeric(values []dataset.Value) bool {
	for _, v := range values {
		if v.IsNull() {
			continue
		}
		if _, ok := v.Float(); !ok {
			return false
		}
	}
	return true
}
