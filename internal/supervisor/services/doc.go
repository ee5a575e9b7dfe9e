// DwC Validator - Darwin Core Biodiversity Record Validation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dwcvalidator

// Package services adapts blocking components to suture's
// Serve(ctx) error contract.
//
// HTTPServerService wraps *http.Server: ListenAndServe runs in a goroutine,
// a listener error is returned so the supervisor restarts it, and context
// cancellation triggers Shutdown with a bounded timeout.
//
// SweepService runs periodic cache maintenance, such as dropping expired
// name-matching results, until the supervisor stops it.
package services
