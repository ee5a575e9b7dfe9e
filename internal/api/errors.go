// DwC Validator - Darwin Core Biodiversity Record Validation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dwcvalidator

package api

import "errors"

// Upload errors
var (
	// ErrEmptyBody indicates the request carried no table
	ErrEmptyBody = errors.New("request body is empty")

	// ErrMissingCoreFile indicates an archive upload without a core part
	ErrMissingCoreFile = errors.New("multipart form has no core file")

	// ErrInvalidCSV wraps table parse failures
	ErrInvalidCSV = errors.New("invalid CSV")
)
