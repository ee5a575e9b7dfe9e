// DwC Validator - Darwin Core Biodiversity Record Validation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dwcvalidator

package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/sony/gobreaker/v2"

	"github.com/tomtom215/dwcvalidator/internal/archive"
	"github.com/tomtom215/dwcvalidator/internal/dataset"
	"github.com/tomtom215/dwcvalidator/internal/logging"
	"github.com/tomtom215/dwcvalidator/internal/models"
	"github.com/tomtom215/dwcvalidator/internal/taxonomy"
	"github.com/tomtom215/dwcvalidator/internal/validation"
)

// sanitizeLogValue removes control characters from strings to prevent log injection attacks.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			result.WriteString(fmt.Sprintf("\\x%02x", r))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// writeJSON marshals v with go-json and writes it with an ETag.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")

	data, err := json.Marshal(v)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("ETag", generateETag(data))

	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// respondJSON sends an APIResponse.
func respondJSON(w http.ResponseWriter, status int, response *models.APIResponse) {
	writeJSON(w, status, response)
}

// respondSuccess sends a success APIResponse timed from start.
func respondSuccess(w http.ResponseWriter, data interface{}, start time.Time) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   data,
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: time.Since(start).Milliseconds(),
		},
	})
}

// generateETag creates a simple ETag from data using FNV-1a hash
func generateETag(data []byte) string {
	hash := uint32(2166136261)
	for _, b := range data {
		hash ^= uint32(b)
		hash *= 16777619
	}
	return strconv.FormatUint(uint64(hash), 16)
}

// respondError sends an error response
func respondError(w http.ResponseWriter, status int, code, message string, err error) {
	respondErrorDetails(w, status, &models.APIError{Code: code, Message: message}, err)
}

// respondErrorDetails sends an error response carrying apiErr as is.
func respondErrorDetails(w http.ResponseWriter, status int, apiErr *models.APIError, err error) {
	if err != nil {
		logging.Error().Str("code", sanitizeLogValue(apiErr.Code)).Str("error", sanitizeLogValue(err.Error())).Msg("API Error")
	}

	respondJSON(w, status, &models.APIResponse{
		Status: "error",
		Data:   nil,
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
		Error: apiErr,
	})
}

// validateRequest validates a struct using go-playground/validator.
// Returns nil if validation passes.
func validateRequest(v interface{}) *models.APIError {
	validationErr := validation.ValidateStruct(v)
	if validationErr == nil {
		return nil
	}

	apiErr := validationErr.ToAPIError()
	return &models.APIError{
		Code:    apiErr.Code,
		Message: apiErr.Message,
		Details: apiErr.Details,
	}
}

// parseCommaSeparated parses a comma-separated string into a slice
func parseCommaSeparated(value string) []string {
	if value == "" {
		return nil
	}

	var result []string
	parts := strings.Split(value, ",")
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// readTable parses a delimited table from r. An empty delimiter means comma.
func readTable(r io.Reader, delimiter string) (*dataset.Dataset, error) {
	var opts dataset.CSVOptions
	if delimiter != "" {
		opts.Comma = []rune(delimiter)[0]
	}

	ds, err := dataset.ReadCSVWithOptions(r, opts)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return nil, maxBytesErr
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidCSV, err)
	}
	return ds, nil
}

// respondValidationFailure maps an upload or validation error to a status
// code and error code.
func respondValidationFailure(w http.ResponseWriter, r *http.Request, err error) {
	var maxBytesErr *http.MaxBytesError
	switch {
	case errors.As(err, &maxBytesErr):
		respondError(w, http.StatusRequestEntityTooLarge, "PAYLOAD_TOO_LARGE",
			fmt.Sprintf("Request body exceeds %d bytes", maxBytesErr.Limit), nil)
	case errors.Is(err, ErrEmptyBody):
		respondError(w, http.StatusBadRequest, "INVALID_CSV", "Request body is empty", nil)
	case errors.Is(err, ErrInvalidCSV):
		respondError(w, http.StatusBadRequest, "INVALID_CSV", err.Error(), nil)
	case errors.Is(err, ErrMissingCoreFile):
		respondError(w, http.StatusBadRequest, "INVALID_FORM", "Archive upload needs a core file", nil)
	case errors.Is(err, archive.ErrUnsupportedCoreType), errors.Is(err, archive.ErrMissingCore):
		respondError(w, http.StatusBadRequest, "UNSUPPORTED_CORE_TYPE", err.Error(), nil)
	case errors.Is(err, context.DeadlineExceeded):
		respondError(w, http.StatusGatewayTimeout, "TIMEOUT", "Validation did not finish in time", err)
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		w.Header().Set("Retry-After", "60")
		respondError(w, http.StatusServiceUnavailable, "TAXONOMY_UNAVAILABLE",
			"Name-matching service is temporarily unavailable", err)
	case errors.Is(err, taxonomy.ErrSearchFailed):
		respondError(w, http.StatusBadGateway, "TAXONOMY_ERROR", "Name-matching service request failed", err)
	case errors.Is(err, context.Canceled):
		logging.Ctx(r.Context()).Debug().Msg("Client went away during validation")
		respondError(w, http.StatusServiceUnavailable, "REQUEST_CANCELLED", "Request was cancelled", nil)
	default:
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Validation failed", err)
	}
}
