// DwC Validator - Darwin Core Biodiversity Record Validation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dwcvalidator

package validation

import (
	"strings"
	"testing"
)

type occurrenceParams struct {
	IDFields []string `form:"id_fields" validate:"max=3,dive,dwcterm"`
	IDTerm   string   `form:"id_term" validate:"omitempty,dwcterm"`
}

type archiveParams struct {
	CoreType       string   `json:"core_type" validate:"required,rowtype"`
	ExtensionTypes []string `json:"extension_type" validate:"max=2,dive,required"`
	Label          string   `validate:"omitempty,oneof=a b"`
}

func TestGetValidator_Singleton(t *testing.T) {
	v1 := GetValidator()
	v2 := GetValidator()

	if v1 == nil {
		t.Fatal("GetValidator() should not return nil")
	}
	if v1 != v2 {
		t.Error("GetValidator() should return the same singleton instance")
	}
}

func TestValidateStruct_Valid(t *testing.T) {
	tests := []struct {
		name  string
		input interface{}
	}{
		{"empty occurrence params", &occurrenceParams{}},
		{"identifier fields", &occurrenceParams{IDFields: []string{"occurrenceID", "catalogNumber", "id"}, IDTerm: "occurrenceID"}},
		{"underscore term", &occurrenceParams{IDTerm: "record_number"}},
		{"occurrence URI", &archiveParams{CoreType: "http://rs.tdwg.org/dwc/terms/Occurrence"}},
		{"event term name", &archiveParams{CoreType: "Event"}},
		{"lower case term name", &archiveParams{CoreType: "occurrence", ExtensionTypes: []string{"x"}}},
		{"oneof value", &archiveParams{CoreType: "Event", Label: "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateStruct(tt.input); err != nil {
				t.Errorf("ValidateStruct() returned unexpected error: %v", err)
			}
		})
	}
}

func TestValidateStruct_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		input     interface{}
		wantField string
		wantTag   string
	}{
		{
			name:      "id term with spaces",
			input:     &occurrenceParams{IDTerm: "occurrence id"},
			wantField: "id_term",
			wantTag:   "dwcterm",
		},
		{
			name:      "id field starting with digit",
			input:     &occurrenceParams{IDFields: []string{"occurrenceID", "1abc"}},
			wantField: "id_fields[1]",
			wantTag:   "dwcterm",
		},
		{
			name:      "too many id fields",
			input:     &occurrenceParams{IDFields: []string{"a", "b", "c", "d"}},
			wantField: "id_fields",
			wantTag:   "max",
		},
		{
			name:      "missing core type",
			input:     &archiveParams{},
			wantField: "core_type",
			wantTag:   "required",
		},
		{
			name:      "unsupported core type",
			input:     &archiveParams{CoreType: "http://rs.gbif.org/terms/1.0/Multimedia"},
			wantField: "core_type",
			wantTag:   "rowtype",
		},
		{
			name:      "empty extension type",
			input:     &archiveParams{CoreType: "Event", ExtensionTypes: []string{""}},
			wantField: "extension_type[0]",
			wantTag:   "required",
		},
		{
			name:      "untagged field uses Go name",
			input:     &archiveParams{CoreType: "Event", Label: "c"},
			wantField: "Label",
			wantTag:   "oneof",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(tt.input)
			if err == nil {
				t.Fatal("Expected validation error, got nil")
			}

			found := false
			for _, e := range err.Errors() {
				if e.Field() == tt.wantField && e.Tag() == tt.wantTag {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("Expected error on field %s with tag %s, got: %v", tt.wantField, tt.wantTag, err)
			}
		})
	}
}

func TestToAPIError_SingleError(t *testing.T) {
	err := ValidateStruct(&occurrenceParams{IDTerm: "bad term"})
	if err == nil {
		t.Fatal("Expected validation error")
	}

	apiErr := err.ToAPIError()
	if apiErr.Code != ErrorCode {
		t.Errorf("Expected code %s, got %s", ErrorCode, apiErr.Code)
	}
	if apiErr.Message != "id_term must be a Darwin Core term name" {
		t.Errorf("Expected term name message, got %q", apiErr.Message)
	}
	if apiErr.Details["field"] != "id_term" {
		t.Errorf("Expected details field id_term, got %v", apiErr.Details["field"])
	}
	if apiErr.Details["value"] != "bad term" {
		t.Errorf("Expected details value 'bad term', got %v", apiErr.Details["value"])
	}
}

func TestToAPIError_MultipleErrors(t *testing.T) {
	err := ValidateStruct(&archiveParams{CoreType: "Taxon", Label: "z"})
	if err == nil {
		t.Fatal("Expected validation error")
	}
	if len(err.Errors()) != 2 {
		t.Fatalf("Expected 2 errors, got %d", len(err.Errors()))
	}

	apiErr := err.ToAPIError()
	if apiErr.Code != ErrorCode {
		t.Errorf("Expected code %s, got %s", ErrorCode, apiErr.Code)
	}
	if !strings.Contains(apiErr.Message, "core_type: ") || !strings.Contains(apiErr.Message, "Label: ") {
		t.Errorf("Expected message to list both fields, got %q", apiErr.Message)
	}

	fields, ok := apiErr.Details["fields"].([]map[string]interface{})
	if !ok {
		t.Fatalf("Expected details to contain 'fields' list, got %T", apiErr.Details["fields"])
	}
	if len(fields) != 2 {
		t.Errorf("Expected 2 field entries, got %d", len(fields))
	}
}

func TestToAPIError_Empty(t *testing.T) {
	apiErr := (&RequestValidationError{}).ToAPIError()
	if apiErr.Code != ErrorCode || apiErr.Message != "Validation failed" {
		t.Errorf("Expected generic validation error, got %+v", apiErr)
	}
	if (&RequestValidationError{}).Error() != "validation failed" {
		t.Error("Expected generic Error() text for empty error set")
	}
}

func TestValidateStruct_NonStruct(t *testing.T) {
	err := ValidateStruct("not a struct")
	if err == nil {
		t.Fatal("Expected error for non-struct input")
	}
	if err.Errors()[0].Field() != "unknown" {
		t.Errorf("Expected field 'unknown', got %s", err.Errors()[0].Field())
	}
}

func TestErrorMessages(t *testing.T) {
	type sized struct {
		Name  string   `json:"name" validate:"min=2"`
		Tags  []string `json:"tags" validate:"max=1"`
		Count int      `json:"count" validate:"gte=1"`
	}

	err := ValidateStruct(&sized{Name: "a", Tags: []string{"x", "y"}})
	if err == nil {
		t.Fatal("Expected validation error")
	}

	want := map[string]string{
		"name":  "name must be at least 2 characters",
		"tags":  "tags must be at most 1 items",
		"count": "count must be greater than or equal to 1",
	}
	for _, e := range err.Errors() {
		if msg, ok := want[e.Field()]; ok && e.Error() != msg {
			t.Errorf("Expected message %q for %s, got %q", msg, e.Field(), e.Error())
		}
		delete(want, e.Field())
	}
	if len(want) != 0 {
		t.Errorf("Expected errors for fields %v", want)
	}
}
