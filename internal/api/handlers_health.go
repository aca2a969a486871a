// Sakefinder - Sake Preference Quiz and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sakefinder

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/sakefinder/internal/models"
)

// Health reports catalog, session store and event pipeline status.
//
// Status is "healthy", "degraded" when the session store cannot be counted
// or the event breaker is open, and "unhealthy" without a catalog. Only
// "unhealthy" answers 503.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	health := models.HealthStatus{
		Status:  "healthy",
		Version: h.version,
		Uptime:  time.Since(h.startTime).Seconds(),
	}

	if c := h.catalog.Current(); c != nil && c.Len() > 0 {
		health.CatalogVersion = c.Version()
		health.CatalogEntries = c.Len()
	} else {
		health.Status = "unhealthy"
	}

	n, err := h.sessions.Store().Len(r.Context())
	if err != nil {
		health.ActiveSessions = -1
		if health.Status == "healthy" {
			health.Status = "degraded"
		}
	} else {
		health.ActiveSessions = n
	}

	if h.breaker != nil {
		health.EventBreaker = h.breaker.State()
		if health.EventBreaker == "open" && health.Status == "healthy" {
			health.Status = "degraded"
		}
	}

	status := http.StatusOK
	if health.Status == "unhealthy" {
		status = http.StatusServiceUnavailable
	}
	respondSuccess(w, r, status, health, start)
}
