// DwC Validator - Darwin Core Biodiversity Record Validation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dwcvalidator

package services

import (
	"context"
	"time"

	"github.com/tomtom215/dwcvalidator/internal/logging"
)

// Sweeper drops expired cache entries and reports how many it removed.
type Sweeper interface {
	Sweep() int
}

// SweepService calls Sweep on a fixed interval until its context ends.
//
//	tree.AddAPIService(services.NewSweepService("taxonomy-cache-sweeper", cache, time.Hour))
type SweepService struct {
	name     string
	sweeper  Sweeper
	interval time.Duration
}

// NewSweepService creates a sweep service. A non-positive interval
// defaults to one minute.
func NewSweepService(name string, sweeper Sweeper, interval time.Duration) *SweepService {
	if interval <= 0 {
		interval = time.Minute
	}
	return &SweepService{name: name, sweeper: sweeper, interval: interval}
}

// Serve implements suture.Service.
func (s *SweepService) Serve(ctx context.Context) error {
	log := logging.WithComponent(s.name)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if removed := s.sweeper.Sweep(); removed > 0 {
				log.Debug().Int("removed", removed).Msg("Expired cache entries removed")
			}
		}
	}
}

// String identifies the service in supervisor events.
func (s *SweepService) String() string {
	return s.name
}
