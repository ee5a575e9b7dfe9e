// DwC Validator - Darwin Core Biodiversity Record Validation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dwcvalidator

/*
Package supervisor runs the validator's long-lived services under suture v4.

	dwcvalidator
	└── api-layer
	    └── http-server (services.HTTPServerService)

A service that returns an error is restarted. After FailureThreshold
failures (decaying at FailureDecay per second) the supervisor waits
FailureBackoff before trying again. Cancelling the context passed to Serve
stops every service, each bounded by ShutdownTimeout, and
UnstoppedServiceReport lists any that did not return in time.

Supervisor events (start, stop, panic, backoff) are logged through
sutureslog, which accepts a *slog.Logger. cmd/server passes
logging.NewSlogLogger so the events land in the zerolog output.

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddAPIService(services.NewHTTPServerService(httpServer, 10*time.Second))
	return tree.Serve(ctx)
*/
package supervisor
