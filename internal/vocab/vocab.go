// DwC Validator - Darwin Core Biodiversity Record Validation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dwcvalidator

// Package vocab holds the Darwin Core term lists and controlled vocabularies
// the validators check against.
//
// Values are returned from functions rather than exported as package-level
// slices so callers always receive their own copy.
package vocab

import "strings"

// Row type URIs for archive core and extension tables.
const (
	OccurrenceRowType = "http://rs.tdwg.org/dwc/terms/Occurrence"
	EventRowType      = "http://rs.tdwg.org/dwc/terms/Event"
)

// DefaultAtlas is the taxon term list used when none is configured.
const DefaultAtlas = "Australia"

// BasisOfRecord returns the accepted basisOfRecord values.
func BasisOfRecord() []string {
	return []string{
		"PreservedSpecimen",
		"FossilSpecimen",
		"LivingSpecimen",
		"MaterialSample",
		"MaterialCitation",
		"Event",
		"HumanObservation",
		"MachineObservation",
		"Taxon",
		"Occurrence",
		"Observation",
	}
}

// GeodeticDatum returns the accepted geodeticDatum values.
func GeodeticDatum() []string {
	return []string{
		"WGS84",
		"EPSG:4326",
		"GDA2020",
		"EPSG:7844",
		"GDA94",
		"EPSG:4283",
		"AGD84",
		"EPSG:4203",
		"AGD66",
		"EPSG:4202",
	}
}

// NumericFields returns the terms whose values must be numeric.
func NumericFields() []string {
	return []string{
		"decimalLatitude",
		"decimalLongitude",
		"coordinateUncertaintyInMeters",
		"coordinatePrecision",
		"elevation",
		"depth",
		"minimumDepthInMeters",
		"maximumDepthInMeters",
		"minimumDistanceAboveSurfaceInMeters",
		"maximumDistanceAboveSurfaceInMeters",
		"individualCount",
		"organismQuantity",
		"organismSize",
		"sampleSizeValue",
		"temperatureInCelsius",
		"organismAge",
		"year",
		"month",
		"day",
		"startDayOfYear",
		"endDayOfYear",
	}
}

// SpatialColumns returns the terms whose presence marks a table as carrying
// spatial data.
func SpatialColumns() []string {
	return []string{
		"decimalLatitude",
		"decimalLongitude",
		"geodeticDatum",
		"coordinateUncertaintyInMeters",
	}
}

// RequiredColumnsOther returns the terms every occurrence table must carry.
func RequiredColumnsOther() []string {
	return []string{
		"basisOfRecord",
		"scientificName",
		"eventDate",
	}
}

// RequiredColumnsSpatial returns the terms an occurrence table carrying
// spatial data must carry.
func RequiredColumnsSpatial() []string {
	return append(RequiredColumnsOther(), SpatialColumns()...)
}

// ConditionalCoordinateColumns returns the advisory entries added when a
// table without spatial data is missing required terms.
func ConditionalCoordinateColumns() []string {
	return []string{
		"MAYBE: decimalLatitude",
		"MAYBE: decimalLongitude",
	}
}

// OccurrenceIdentifierColumns returns the terms of which at least one must
// identify an occurrence.
func OccurrenceIdentifierColumns() []string {
	return []string{"occurrenceID", "catalogNumber", "recordNumber"}
}

// OccurrenceIdentifierLabel is the missing-column entry used when none of
// OccurrenceIdentifierColumns is present.
func OccurrenceIdentifierLabel() string {
	return strings.Join(OccurrenceIdentifierColumns(), " OR ")
}

// RequiredTaxonomyColumns returns the taxonomy terms checked for
// completeness.
func RequiredTaxonomyColumns() []string {
	return []string{
		"scientificName",
		"kingdom",
		"phylum",
		"class",
		"order",
		"family",
		"genus",
		"vernacularName",
	}
}

// TaxonomyCountExcluded is left out when counting records with complete
// taxonomy.
const TaxonomyCountExcluded = "vernacularName"

// TemporalColumns returns the terms counted towards records_with_temporal_count.
func TemporalColumns() []string {
	return []string{"eventDate", "year", "month", "day"}
}

// RecordedByColumns returns the terms counted towards
// records_with_recorded_by_count.
func RecordedByColumns() []string {
	return []string{"recordedBy", "recordedByID"}
}

// taxonTerms maps an atlas name to the classification terms read from the
// name-matching service.
var taxonTerms = map[string][]string{
	"Australia": {"kingdom", "phylum", "class", "order", "family", "genus", "species"},
}

// TaxonTerms returns the classification terms for an atlas, or nil when the
// atlas is unknown.
func TaxonTerms(atlas string) []string {
	terms, ok := taxonTerms[atlas]
	if !ok {
		return nil
	}
	out := make([]string, len(terms))
	copy(out, terms)
	return out
}

// KnownAtlas reports whether TaxonTerms has a list for atlas.
func KnownAtlas(atlas string) bool {
	_, ok := taxonTerms[atlas]
	return ok
}

// RecordTypeForRowType maps a row type URI, or its bare term name, to
// "Occurrence" or "Event". The second result is false for any other type.
func RecordTypeForRowType(rowType string) (string, bool) {
	name := rowType
	if i := strings.LastIndexAny(rowType, "/#"); i >= 0 {
		name = rowType[i+1:]
	}
	switch strings.ToLower(name) {
	case "occurrence":
		return "Occurrence", true
	case "event":
		return "Event", true
	default:
		return "", false
	}
}
