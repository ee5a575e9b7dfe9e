// DwC Validator - Darwin Core Biodiversity Record Validation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dwcvalidator

// Package archive validates a Darwin Core Archive: a core table plus any
// number of extension tables, each identified by its row type URI.
//
// The core must be an Occurrence or Event table. Extension tables of those
// two row types get a full table report; extensions of any other row type
// (multimedia, measurements) only contribute populated-field breakdowns.
package archive
