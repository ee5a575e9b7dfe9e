// DwC Validator - Darwin Core Biodiversity Record Validation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dwcvalidator

package dataset

import (
	"math"
	"strconv"
	"strings"
)

// Kind identifies what a cell holds.
type Kind uint8

const (
	// KindNull is an absent value.
	KindNull Kind = iota
	// KindString is a textual value.
	KindString
	// KindNumber is a numeric value.
	KindNumber
)

// String returns the kind name for logging.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	default:
		return "unknown"
	}
}

// Value is a single cell. The zero Value is null.
type Value struct {
	kind Kind
	str  string
	num  float64
}

// Null returns an absent cell.
func Null() Value {
	return Value{}
}

// String returns a textual cell.
func String(s string) Value {
	return Value{kind: KindString, str: s}
}

// Number returns a numeric cell. NaN is stored as null, matching how
// tabular loaders represent missing numbers.
func Number(f float64) Value {
	if math.IsNaN(f) {
		return Null()
	}
	return Value{kind: KindNumber, num: f}
}

// Kind reports what the cell holds.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull reports whether the cell is absent.
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// Text returns the cell in textual form. Null cells return "".
func (v Value) Text() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	default:
		return ""
	}
}

// Float coerces the cell to a finite number.
// Strings are trimmed before parsing; NaN and Inf spellings are rejected.
func (v Value) Float() (float64, bool) {
	switch v.kind {
	case KindNumber:
		return v.num, true
	case KindString:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.str), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// key returns a representation suitable for distinct-value counting.
// Kinds are kept apart so the string "1" and the number 1 stay distinct.
func (v Value) key() string {
	switch v.kind {
	case KindString:
		return "s:" + v.str
	case KindNumber:
		return "n:" + strconv.FormatFloat(v.num, 'g', -1, 64)
	default:
		return "null"
	}
}
