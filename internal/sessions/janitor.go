// Sakefinder - Sake Preference Quiz and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sakefinder

package sessions

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/sakefinder/internal/logging"
	"github.com/tomtom215/sakefinder/internal/metrics"
)

// Janitor periodically drops expired sessions and publishes the live count.
// It implements suture.Service.
type Janitor struct {
	store    Store
	interval time.Duration
	logger   zerolog.Logger
}

// NewJanitor creates a janitor. A non-positive interval means one minute.
func NewJanitor(store Store, interval time.Duration) *Janitor {
	if interval <= 0 {
		interval = time.Minute
	}
	return &Janitor{store: store, interval: interval, logger: logging.WithComponent("sessions")}
}

// Serve runs until ctx is canceled.
func (j *Janitor) Serve(ctx context.Context) error {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			j.sweep(ctx)
		}
	}
}

func (j *Janitor) sweep(ctx context.Context) {
	removed, err := j.store.Cleanup(ctx)
	if err != nil {
		j.logger.Warn().Err(err).Msg("Session cleanup failed")
	}
	n, err := j.store.Len(ctx)
	if err != nil {
		j.logger.Warn().Err(err).Msg("Session count failed")
		return
	}
	metrics.DiagnosisActiveSessions.Set(float64(n))
	if removed > 0 {
		j.logger.Debug().Int("removed", removed).Int("live", n).Msg("Expired quiz sessions")
	}
}

// String names the service in supervisor logs.
func (j *Janitor) String() string {
	return "session-janitor"
}
