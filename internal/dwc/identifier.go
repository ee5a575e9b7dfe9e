// DwC Validator - Darwin Core Biodiversity Record Validation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dwcvalidator

package dwc

import (
	"github.com/tomtom215/dwcvalidator/internal/dataset"
	"github.com/tomtom215/dwcvalidator/internal/logging"
	"github.com/tomtom215/dwcvalidator/internal/models"
)

// CoreIDColumn is the column an archive uses for the core identifier term.
const CoreIDColumn = "id"

// IDCheck is the outcome of CheckIDFields.
type IDCheck struct {
	// ErrorCount is the number of offending records for the first failure
	ErrorCount int
	Errors     []models.ErrorCode
}

// CheckIDFields checks identifier columns in priority order and stops at the
// first failure:
//
//   - absent column: MISSING_ID_FIELD, every record counts
//   - empty cells: MISSING_ID_FIELD_VALUES, empty cells count
//   - repeated values when a single candidate is given:
//     DUPLICATE_ID_FIELD_VALUES, rows beyond the first of each value count
//
// A candidate equal to idTerm is read from the "id" column. An empty
// candidate list performs no check.
func CheckIDFields(ds *dataset.Dataset, idFields []string, idTerm string) IDCheck {
	result := IDCheck{Errors: []models.ErrorCode{}}

	for _, field := range idFields {
		name := field
		if idTerm != "" && field == idTerm {
			name = CoreIDColumn
		}

		col, ok := ds.Column(name)
		if !ok {
			logging.Debug().Str("field", field).Str("column", name).Msg("Identifier column missing")
			result.Errors = append(result.Errors, models.ErrMissingIDField)
			result.ErrorCount = ds.RowCount()
			return result
		}

		if !col.AllPopulated() {
			result.Errors = append(result.Errors, models.ErrMissingIDFieldValues)
			result.ErrorCount = col.NullCount()
			return result
		}

		if len(idFields) == 1 {
			if duplicates := ds.RowCount() - col.DistinctCount(); duplicates > 0 {
				result.Errors = append(result.Errors, models.ErrDuplicateIDFieldValues)
				result.ErrorCount = duplicates
				return result
			}
		}
	}

	return result
}
