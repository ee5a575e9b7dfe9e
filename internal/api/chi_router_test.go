// DwC Validator - Darwin Core Biodiversity Record Validation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dwcvalidator

package api

import (
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/dwcvalidator/internal/archive"
	"github.com/tomtom215/dwcvalidator/internal/dwc"
	"github.com/tomtom215/dwcvalidator/internal/models"
)

// newTestServer wires the real table and archive validators, without a
// taxonomy service, behind the full router.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	cfg := testConfig()
	tables := dwc.NewValidator(nil)
	archives := archive.NewValidator(tables, cfg.Validation.OccurrenceIDFields)

	handler := NewHandler(tables, archives, cfg)
	router := NewRouter(handler, NewChiMiddleware(NewChiMiddlewareConfig(&cfg.Security)))

	srv := httptest.NewServer(router.SetupChi())
	t.Cleanup(srv.Close)
	return srv
}

func TestNewRouter_NilMiddleware(t *testing.T) {
	router := NewRouter(NewHandler(&fakeTables{}, &fakeArchives{}, nil), nil)
	if router.chiMiddleware == nil {
		t.Fatal("Expected default middleware factory")
	}
	if router.requestTimeout() <= 0 {
		t.Error("Expected a positive default request timeout")
	}
}

func TestRouterSetup_Health(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/health")
	if err != nil {
		t.Fatalf("GET /health: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if strings.TrimSpace(string(body)) != `{"status":"ok"}` {
		t.Errorf(`Expected {"status":"ok"}, got %s`, body)
	}
	if resp.Header.Get("X-Request-ID") == "" {
		t.Error("Expected X-Request-ID header on every response")
	}
}

func TestRouterSetup_MetricsEndpoint(t *testing.T) {
	srv := newTestServer(t)

	// Generate at least one API request sample
	if resp, err := http.Get(srv.URL + "/api/v1/health"); err == nil {
		resp.Body.Close()
	}

	resp, err := http.Get(srv.URL + "/metrics")
	if err != nil {
		t.Fatalf("GET /metrics: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "api_requests_total") {
		t.Error("Expected api_requests_total in metrics output")
	}
}

func TestRouterSetup_NotFoundAndMethodNotAllowed(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		method   string
		path     string
		wantCode int
		wantErr  string
	}{
		{http.MethodGet, "/api/v1/nope", http.StatusNotFound, "NOT_FOUND"},
		{http.MethodGet, "/api/v1/validate/occurrence", http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED"},
		{http.MethodPost, "/health", http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req, _ := http.NewRequest(tt.method, srv.URL+tt.path, nil)
			resp, err := http.DefaultClient.Do(req)
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tt.wantCode {
				t.Fatalf("Expected status %d, got %d", tt.wantCode, resp.StatusCode)
			}
			var body models.APIResponse
			if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body.Error == nil || body.Error.Code != tt.wantErr {
				t.Errorf("Expected error code %s, got %+v", tt.wantErr, body.Error)
			}
		})
	}
}

func TestRouterSetup_ValidateOccurrenceEndToEnd(t *testing.T) {
	srv := newTestServer(t)

	csv := "occurrenceID,basisOfRecord,decimalLatitude,decimalLongitude\n" +
		"occ-1,HumanObservation,-35.2,149.1\n" +
		"occ-1,PreservedSpecimen,-95,149.1\n"

	resp, err := http.Post(srv.URL+"/api/v1/validate/occurrence", "text/csv", strings.NewReader(csv))
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}
	for _, header := range []string{"X-Content-Type-Options", "ETag", "X-Request-ID"} {
		if resp.Header.Get(header) == "" {
			t.Errorf("Expected %s header", header)
		}
	}

	var body struct {
		Status string                         `json:"status"`
		Data   models.DatasetValidationReport `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}

	report := body.Data
	if report.RecordCount != 2 {
		t.Errorf("Expected 2 records, got %d", report.RecordCount)
	}
	if !containsError(report.Errors, models.ErrDuplicateIDFieldValues) {
		t.Errorf("Expected %s, got %v", models.ErrDuplicateIDFieldValues, report.Errors)
	}
	if report.CoordinatesReport.InvalidDecimalLatitudeCount != 1 {
		t.Errorf("Expected 1 invalid latitude, got %d", report.CoordinatesReport.InvalidDecimalLatitudeCount)
	}
	if report.TaxonomyReport != nil {
		t.Error("Expected no taxonomy report without a name-matching service")
	}
}

func TestRouterSetup_ValidateArchiveEndToEnd(t *testing.T) {
	srv := newTestServer(t)

	req := newArchiveRequest(t, []multipartPart{
		{field: "core_type", content: "http://rs.tdwg.org/dwc/terms/Event"},
		{field: "core", filename: "event.txt", content: "eventID,eventDate\nev-1,2020-01-01\n"},
		{field: "extension", filename: "occurrence.txt", content: "eventID,occurrenceID,basisOfRecord\nev-1,occ-1,HumanObservation\n"},
		{field: "extension_type", content: "http://rs.tdwg.org/dwc/terms/Occurrence"},
	})
	httpReq, _ := http.NewRequest(http.MethodPost, srv.URL+"/api/v1/validate/archive", req.Body)
	httpReq.Header.Set("Content-Type", req.Header.Get("Content-Type"))

	resp, err := http.DefaultClient.Do(httpReq)
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		t.Fatalf("Expected status 200, got %d: %s", resp.StatusCode, b)
	}

	var body struct {
		Data models.ArchiveValidationReport `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Data.DatasetType != models.RecordTypeEvent {
		t.Errorf("Expected dataset type Event, got %s", body.Data.DatasetType)
	}
	if len(body.Data.Extensions) != 1 {
		t.Errorf("Expected 1 extension report, got %d", len(body.Data.Extensions))
	}
}

func TestRouterSetup_ValidateCompressesReports(t *testing.T) {
	srv := newTestServer(t)

	req, _ := http.NewRequest(http.MethodPost, srv.URL+"/api/v1/validate/event",
		strings.NewReader("eventID,eventDate\nev-1,2020-01-01\n"))
	req.Header.Set("Content-Type", "text/csv")
	req.Header.Set("Accept-Encoding", "gzip")

	// A Transport with compression disabled leaves the body encoded
	client := &http.Client{Transport: &http.Transport{DisableCompression: true}}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}
	if got := resp.Header.Get("Content-Encoding"); got != "gzip" {
		t.Fatalf("Expected gzip Content-Encoding, got %q", got)
	}

	zr, err := gzip.NewReader(resp.Body)
	if err != nil {
		t.Fatalf("gzip reader: %v", err)
	}
	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(zr).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Status != "success" {
		t.Errorf("Expected status success, got %q", body.Status)
	}
}

func containsError(codes []models.ErrorCode, want models.ErrorCode) bool {
	for _, c := range codes {
		if c == want {
			return true
		}
	}
	return false
}
