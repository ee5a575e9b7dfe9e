// DwC Validator - Darwin Core Biodiversity Record Validation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dwcvalidator

package dataset

import (
	"errors"
	"fmt"
	"strings"
)

// ErrRaggedColumns is returned when columns do not share a row count.
var ErrRaggedColumns = errors.New("columns have different row counts")

// ErrDuplicateColumn is returned when two columns share a name.
var ErrDuplicateColumn = errors.New("duplicate column name")

// Column is a named, ordered sequence of cells.
type Column struct {
	Name   string
	Values []Value
}

// NullCount returns the number of absent cells.
func (c Column) NullCount() int {
	n := 0
	for _, v := range c.Values {
		if v.IsNull() {
			n++
		}
	}
	return n
}

// PopulatedCount returns the number of non-null cells.
func (c Column) PopulatedCount() int {
	return len(c.Values) - c.NullCount()
}

// AllPopulated reports whether no cell is null.
func (c Column) AllPopulated() bool {
	for _, v := range c.Values {
		if v.IsNull() {
			return false
		}
	}
	return true
}

// DistinctCount returns the number of distinct non-null values.
func (c Column) DistinctCount() int {
	seen := make(map[string]struct{}, len(c.Values))
	for _, v := range c.Values {
		if v.IsNull() {
			continue
		}
		seen[v.key()] = struct{}{}
	}
	return len(seen)
}

// Dataset is an immutable table of named columns.
type Dataset struct {
	columns []Column
	index   map[string]int
	rows    int
}

// New builds a dataset from columns. Column slices are copied so later
// changes by the caller are not observed.
func New(columns ...Column) (*Dataset, error) {
	ds := &Dataset{
		columns: make([]Column, 0, len(columns)),
		index:   make(map[string]int, len(columns)),
	}

	for i, col := range columns {
		if _, dup := ds.index[col.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateColumn, col.Name)
		}
		if i == 0 {
			ds.rows = len(col.Values)
		} else if len(col.Values) != ds.rows {
			return nil, fmt.Errorf("%w: %q has %d rows, expected %d", ErrRaggedColumns, col.Name, len(col.Values), ds.rows)
		}

		values := make([]Value, len(col.Values))
		copy(values, col.Values)
		ds.index[col.Name] = len(ds.columns)
		ds.columns = append(ds.columns, Column{Name: col.Name, Values: values})
	}

	return ds, nil
}

// FromRows builds a dataset from a header and row-major cells.
// Short rows are padded with nulls; long rows are an error.
func FromRows(header []string, rows [][]Value) (*Dataset, error) {
	columns := make([]Column, len(header))
	for i, name := range header {
		columns[i] = Column{Name: strings.TrimSpace(name), Values: make([]Value, len(rows))}
	}

	for r, row := range rows {
		if len(row) > len(header) {
			return nil, fmt.Errorf("row %d has %d cells, header has %d", r+1, len(row), len(header))
		}
		for c := range row {
			columns[c].Values[r] = row[c]
		}
	}

	return New(columns...)
}

// RowCount returns the number of records.
func (d *Dataset) RowCount() int {
	return d.rows
}

// ColumnNames returns the column names in order.
func (d *Dataset) ColumnNames() []string {
	names := make([]string, len(d.columns))
	for i, c := range d.columns {
		names[i] = c.Name
	}
	return names
}

// HasColumn reports whether the named column exists.
func (d *Dataset) HasColumn(name string) bool {
	_, ok := d.index[name]
	return ok
}

// HasAnyColumn reports whether at least one of the named columns exists.
func (d *Dataset) HasAnyColumn(names ...string) bool {
	for _, name := range names {
		if d.HasColumn(name) {
			return true
		}
	}
	return false
}

// Column returns the named column. The returned Values slice is shared with
// the dataset and must not be modified.
func (d *Dataset) Column(name string) (Column, bool) {
	i, ok := d.index[name]
	if !ok {
		return Column{}, false
	}
	return d.columns[i], true
}
