// DwC Validator - Darwin Core Biodiversity Record Validation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dwcvalidator

package dataset

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// utf8BOM is stripped from the start of the input when present.
const utf8BOM = "\ufeff"

// CSVOptions controls ReadCSV.
type CSVOptions struct {
	// Comma is the field delimiter. Default: ','
	Comma rune
}

// ReadCSV reads a delimited table whose first record is the header.
// Empty and whitespace-only cells become null, everything else is a string
// cell; numeric coercion happens later in the validators.
func ReadCSV(r io.Reader) (*Dataset, error) {
	return ReadCSVWithOptions(r, CSVOptions{})
}

// ReadCSVWithOptions is ReadCSV with a custom delimiter.
func ReadCSVWithOptions(r io.Reader, opts CSVOptions) (*Dataset, error) {
	br := bufio.NewReader(r)
	if prefix, err := br.Peek(len(utf8BOM)); err == nil && string(prefix) == utf8BOM {
		_, _ = br.Discard(len(utf8BOM))
	}

	reader := csv.NewReader(br)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	if opts.Comma != 0 {
		reader.Comma = opts.Comma
	}

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return New()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	var rows [][]Value
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record %d: %w", line, err)
		}
		if len(record) > len(header) {
			return nil, fmt.Errorf("record %d has %d fields, header has %d", line, len(record), len(header))
		}

		row := make([]Value, len(record))
		for i, cell := range record {
			if strings.TrimSpace(cell) == "" {
				row[i] = Null()
				continue
			}
			row[i] = String(cell)
		}
		rows = append(rows, row)
	}

	return FromRows(header, rows)
}
