// DwC Validator - Darwin Core Biodiversity Record Validation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dwcvalidator

package api

// OccurrenceRequest holds the query parameters of the occurrence endpoint.
type OccurrenceRequest struct {
	// IDFields are the identifier candidates, checked in order
	IDFields []string `form:"id_fields" validate:"max=20,dive,dwcterm"`

	// IDTerm is the term the "id" column stands for
	IDTerm string `form:"id_term" validate:"omitempty,dwcterm"`

	// Delimiter is the field separator; empty means comma
	Delimiter string `form:"delimiter" validate:"omitempty,len=1"`
}

// EventRequest holds the query parameters of the event endpoint.
type EventRequest struct {
	Delimiter string `form:"delimiter" validate:"omitempty,len=1"`
}

// ArchiveRequest holds the form values of the archive endpoint.
type ArchiveRequest struct {
	// CoreType is the core row type URI or term name
	CoreType string `form:"core_type" validate:"required,rowtype"`

	IDTerm    string `form:"id_term" validate:"omitempty,dwcterm"`
	Delimiter string `form:"delimiter" validate:"omitempty,len=1"`

	// ExtensionTypes is aligned with ExtensionFiles by position
	ExtensionTypes []string `form:"extension_type" validate:"max=50,dive,required"`
	ExtensionFiles []string `form:"extension" validate:"eqfield=ExtensionTypes"`
}
