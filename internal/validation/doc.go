// DwC Validator - Darwin Core Biodiversity Record Validation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dwcvalidator

// Package validation provides request parameter validation using
// go-playground/validator v10.
//
// A single validator instance is created on first use with
// WithRequiredStructEnabled and shared by all callers. Field names in
// messages come from the form or json struct tag, so a failure names the
// query parameter the client sent rather than the Go field.
//
// # Custom Tags
//
//   - dwcterm: a bare Darwin Core term name such as occurrenceID
//   - rowtype: an Occurrence or Event row type URI, or the bare term name
//
// # Usage
//
//	type OccurrenceParams struct {
//	    IDFields []string `form:"id_fields" validate:"max=10,dive,dwcterm"`
//	    IDTerm   string   `form:"id_term" validate:"omitempty,dwcterm"`
//	}
//
//	if err := validation.ValidateStruct(&params); err != nil {
//	    apiErr := err.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
//	    return
//	}
//
// Every failure is reported with the VALIDATION_ERROR code. A single failure
// carries field, tag and value details; several failures are joined into one
// message with a per-field list in the details.
package validation
