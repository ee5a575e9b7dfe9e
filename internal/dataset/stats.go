// DwC Validator - Darwin Core Biodiversity Record Validation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dwcvalidator

package dataset

// PopulatedCount returns the non-null cell count of a column, or 0 when the
// column is absent.
func (d *Dataset) PopulatedCount(name string) int {
	col, ok := d.Column(name)
	if !ok {
		return 0
	}
	return col.PopulatedCount()
}

// PopulatedCounts returns the non-null cell count for every column.
// The map is freshly allocated on each call.
func (d *Dataset) PopulatedCounts() map[string]int {
	counts := make(map[string]int, len(d.columns))
	for _, col := range d.columns {
		counts[col.Name] = col.PopulatedCount()
	}
	return counts
}

// RowsWithAnyPopulated counts the records that have at least one of the
// named columns populated. Absent columns are ignored; when none of the
// columns exist the result is 0.
func (d *Dataset) RowsWithAnyPopulated(names ...string) int {
	var present []Column
	for _, name := range names {
		if col, ok := d.Column(name); ok {
			present = append(present, col)
		}
	}
	if len(present) == 0 {
		return 0
	}

	count := 0
	for r := 0; r < d.rows; r++ {
		for _, col := range present {
			if !col.Values[r].IsNull() {
				count++
				break
			}
		}
	}
	return count
}
