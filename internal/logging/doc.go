// DwC Validator - Darwin Core Biodiversity Record Validation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dwcvalidator

/*
Package logging provides centralized zerolog-based logging for the validator.

A single global zerolog.Logger is configured once at startup from the
logging section of the configuration and used everywhere through
package-level helpers.

# Quick Start

	logging.Init(logging.Config{
	    Level:  cfg.Logging.Level,
	    Format: cfg.Logging.Format,
	    Caller: cfg.Logging.Caller,
	})

	logging.Info().Str("addr", addr).Msg("Server starting")
	logging.Ctx(ctx).Warn().Err(err).Msg("Autocomplete failed")

# Context Propagation

The HTTP layer stores a request ID in the request context; a validation run
adds a correlation ID. Ctx(ctx) returns a logger carrying both, so every
line written while validating one upload can be grepped together:

	{"level":"info","request_id":"6f1c...","correlation_id":"a1b2c3d4","record_type":"Occurrence","message":"Table validated"}

# Standard Library Bridge

net/http writes internal server errors through a *log.Logger.
NewServerErrorLog returns one that forwards to zerolog via an slog.Handler,
so TLS handshake and connection errors show up in the structured log.

# Best Practices

Always terminate log chains with .Msg() or .Send():

	logging.Info().Str("key", "value").Msg("message")  // Correct
	logging.Info().Str("key", "value")                 // WRONG - log not emitted
*/
package logging
