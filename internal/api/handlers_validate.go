// DwC Validator - Darwin Core Biodiversity Record Validation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dwcvalidator

package api

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/tomtom215/dwcvalidator/internal/archive"
	"github.com/tomtom215/dwcvalidator/internal/dataset"
	"github.com/tomtom215/dwcvalidator/internal/dwc"
	"github.com/tomtom215/dwcvalidator/internal/logging"
)

// multipartMemory is the part of a multipart upload kept in memory; the rest
// spills to temporary files.
const multipartMemory = 32 << 20

// ValidateOccurrence validates an occurrence table sent as the request body.
//
// Query parameters:
//   - id_fields: Comma-separated identifier candidates (default from config)
//   - id_term: Term the "id" column stands for (default from config)
//   - delimiter: Single-character field separator (default ",")
func (h *Handler) ValidateOccurrence(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	query := r.URL.Query()

	req := OccurrenceRequest{
		IDFields:  h.defaultIDFields(),
		IDTerm:    h.defaultIDTerm(),
		Delimiter: query.Get("delimiter"),
	}
	if query.Has("id_fields") {
		req.IDFields = parseCommaSeparated(query.Get("id_fields"))
	}
	if query.Has("id_term") {
		req.IDTerm = query.Get("id_term")
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondErrorDetails(w, http.StatusBadRequest, apiErr, nil)
		return
	}

	ds, err := h.readBody(w, r, req.Delimiter)
	if err != nil {
		respondValidationFailure(w, r, err)
		return
	}

	report, err := h.tables.ValidateOccurrence(r.Context(), ds, dwc.OccurrenceOptions{
		IDFields: req.IDFields,
		IDTerm:   req.IDTerm,
	})
	if err != nil {
		respondValidationFailure(w, r, err)
		return
	}

	respondSuccess(w, report, start)
}

// ValidateEvent validates an event table sent as the request body.
//
// Query parameters:
//   - delimiter: Single-character field separator (default ",")
func (h *Handler) ValidateEvent(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req := EventRequest{Delimiter: r.URL.Query().Get("delimiter")}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondErrorDetails(w, http.StatusBadRequest, apiErr, nil)
		return
	}

	ds, err := h.readBody(w, r, req.Delimiter)
	if err != nil {
		respondValidationFailure(w, r, err)
		return
	}

	report, err := h.tables.ValidateEvent(r.Context(), ds)
	if err != nil {
		respondValidationFailure(w, r, err)
		return
	}

	respondSuccess(w, report, start)
}

// ValidateArchive validates a core table and its extensions sent as a
// multipart form.
//
// Form parts:
//   - core: Core table file (required)
//   - core_type: Core row type URI or term name (required)
//   - id_term: Term the core "id" column stands for
//   - delimiter: Single-character field separator shared by all tables
//   - extension: Extension table files, repeated
//   - extension_type: Row type of each extension, aligned with extension
func (h *Handler) ValidateArchive(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes())
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			respondValidationFailure(w, r, maxBytesErr)
			return
		}
		respondError(w, http.StatusBadRequest, "INVALID_FORM", "Request is not a valid multipart form", nil)
		return
	}
	defer func() {
		if err := r.MultipartForm.RemoveAll(); err != nil {
			logging.Ctx(r.Context()).Warn().Err(err).Msg("Failed to remove multipart temporary files")
		}
	}()

	form := r.MultipartForm
	extensionFiles := form.File["extension"]
	req := ArchiveRequest{
		CoreType:       r.FormValue("core_type"),
		IDTerm:         r.FormValue("id_term"),
		Delimiter:      r.FormValue("delimiter"),
		ExtensionTypes: form.Value["extension_type"],
		ExtensionFiles: make([]string, len(extensionFiles)),
	}
	for i, fh := range extensionFiles {
		req.ExtensionFiles[i] = fh.Filename
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondErrorDetails(w, http.StatusBadRequest, apiErr, nil)
		return
	}

	coreFiles := form.File["core"]
	if len(coreFiles) == 0 {
		respondValidationFailure(w, r, ErrMissingCoreFile)
		return
	}

	core, err := readPart(coreFiles[0], req.Delimiter)
	if err != nil {
		respondValidationFailure(w, r, fmt.Errorf("core: %w", err))
		return
	}

	a := archive.Archive{
		CoreType:   req.CoreType,
		Core:       core,
		IDTerm:     req.IDTerm,
		Extensions: make([]archive.Extension, len(extensionFiles)),
	}
	for i, fh := range extensionFiles {
		ds, err := readPart(fh, req.Delimiter)
		if err != nil {
			respondValidationFailure(w, r, fmt.Errorf("extension %s: %w", sanitizeLogValue(fh.Filename), err))
			return
		}
		a.Extensions[i] = archive.Extension{RowType: req.ExtensionTypes[i], Dataset: ds}
	}

	report, err := h.archives.Validate(r.Context(), a)
	if err != nil {
		respondValidationFailure(w, r, err)
		return
	}

	respondSuccess(w, report, start)
}

// readBody parses the request body as a table within the body limit.
func (h *Handler) readBody(w http.ResponseWriter, r *http.Request, delimiter string) (*dataset.Dataset, error) {
	body := http.MaxBytesReader(w, r.Body, h.maxBodyBytes())
	defer body.Close()

	ds, err := readTable(body, delimiter)
	if err != nil {
		return nil, err
	}
	if len(ds.ColumnNames()) == 0 {
		return nil, ErrEmptyBody
	}

	logging.Ctx(r.Context()).Debug().
		Int("records", ds.RowCount()).
		Int("columns", len(ds.ColumnNames())).
		Msg("Table received")
	return ds, nil
}

// readPart parses one uploaded file as a table.
func readPart(fh *multipart.FileHeader, delimiter string) (*dataset.Dataset, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open upload: %w", err)
	}
	defer f.Close()

	ds, err := readTable(f, delimiter)
	if err != nil {
		return nil, err
	}
	if len(ds.ColumnNames()) == 0 {
		return nil, ErrEmptyBody
	}
	return ds, nil
}

func (h *Handler) defaultIDFields() []string {
	if h.config == nil {
		return nil
	}
	return h.config.Validation.OccurrenceIDFields
}

func (h *Handler) defaultIDTerm() string {
	if h.config == nil {
		return ""
	}
	return h.config.Validation.OccurrenceIDTerm
}
