// Sakefinder - Sake Preference Quiz and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sakefinder

package api

import (
	"errors"
	"time"

	"github.com/tomtom215/sakefinder/internal/purchase"
	"github.com/tomtom215/sakefinder/internal/recommend"
	"github.com/tomtom215/sakefinder/internal/sessions"
)

// BreakerState reports the state of the purchase event circuit breaker.
// *purchase.Publisher implements it.
type BreakerState interface {
	State() string
}

// Dependencies are the services the handlers call into.
type Dependencies struct {
	Engine   *recommend.Engine
	Catalog  recommend.CatalogSource
	Sessions *sessions.Manager
	Tracker  *purchase.Tracker
	Stats    purchase.StatsStore

	// Breaker is optional; health omits the field without it.
	Breaker BreakerState

	Version string
}

// Handler serves every API endpoint.
type Handler struct {
	engine    *recommend.Engine
	catalog   recommend.CatalogSource
	sessions  *sessions.Manager
	tracker   *purchase.Tracker
	stats     purchase.StatsStore
	breaker   BreakerState
	version   string
	startTime time.Time
}

// NewHandler checks deps and builds a Handler.
func NewHandler(deps Dependencies) (*Handler, error) {
	switch {
	case deps.Engine == nil:
		return nil, errors.New("recommendation engine required")
	case deps.Catalog == nil:
		return nil, errors.New("catalog required")
	case deps.Sessions == nil:
		return nil, errors.New("session manager required")
	case deps.Tracker == nil:
		return nil, errors.New("purchase tracker required")
	case deps.Stats == nil:
		return nil, errors.New("purchase stats store required")
	}

	version := deps.Version
	if version == "" {
		version = "dev"
	}

	return &Handler{
		engine:    deps.Engine,
		catalog:   deps.Catalog,
		sessions:  deps.Sessions,
		tracker:   deps.Tracker,
		stats:     deps.Stats,
		breaker:   deps.Breaker,
		version:   version,
		startTime: time.Now(),
	}, nil
}
