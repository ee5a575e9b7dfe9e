// DwC Validator - Darwin Core Biodiversity Record Validation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dwcvalidator

package dwc

import (
	"github.com/tomtom215/dwcvalidator/internal/dataset"
	"github.com/tomtom215/dwcvalidator/internal/models"
)

const (
	latitudeColumn  = "decimalLatitude"
	longitudeColumn = "decimalLongitude"

	maxLatitude  = 90.0
	maxLongitude = 180.0
)

// CheckCoordinates counts decimalLatitude and decimalLongitude cells that are
// populated but non-numeric or out of range. Bounds are inclusive.
// The warning list holds INVALID_OR_OUT_OF_RANGE_COORDINATES when any cell
// fails, and is empty otherwise.
func CheckCoordinates(ds *dataset.Dataset) (models.CoordinatesReport, []models.WarningCode) {
	warnings := []models.WarningCode{}

	lat, hasLat := ds.Column(latitudeColumn)
	lon, hasLon := ds.Column(longitudeColumn)
	if !hasLat || !hasLon {
		return models.CoordinatesReport{}, warnings
	}

	report := models.CoordinatesReport{
		HasCoordinatesFields:         true,
		InvalidDecimalLatitudeCount:  lat.PopulatedCount() - countInRange(lat.Values, maxLatitude),
		InvalidDecimalLongitudeCount: lon.PopulatedCount() - countInRange(lon.Values, maxLongitude),
	}

	if report.InvalidDecimalLatitudeCount > 0 || report.InvalidDecimalLongitudeCount > 0 {
		warnings = append(warnings, models.WarnInvalidCoordinates)
	}
	return report, warnings
}

// countInRange counts cells that coerce to a number within [-limit, limit].
func countInRange(values []dataset.Value, limit float64) int {
	n := 0
	for _, v := range values {
		f, ok := v.Float()
		if ok && f >= -limit && f <= limit {
			n++
		}
	}
	return n
}
