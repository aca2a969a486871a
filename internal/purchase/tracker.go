// Sakefinder - Sake Preference Quiz and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sakefinder

package purchase

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/sakefinder/internal/cache"
	"github.com/tomtom215/sakefinder/internal/catalog"
	"github.com/tomtom215/sakefinder/internal/logging"
	"github.com/tomtom215/sakefinder/internal/metrics"
)

// CatalogSource yields the current catalog snapshot.
type CatalogSource interface {
	Current() *catalog.Catalog
}

// Click is a request to follow a purchase link.
type Click struct {
	SakeID   string
	Referrer Referrer
	// ClientKey identifies the caller for rate limiting and duplicate
	// suppression, typically the client IP.
	ClientKey string
}

// Outcome is what the caller should do with a click.
type Outcome struct {
	// RedirectURL is the validated merchant link.
	RedirectURL string `json:"redirect_url"`
	// Event is the recorded event, or the zero value for a duplicate.
	Event Event `json:"event"`
	// Duplicate is true when the same client clicked the same sake within
	// the dedup window; the link is still returned but not counted again.
	Duplicate bool `json:"duplicate"`
}

// TrackerConfig configures a Tracker.
type TrackerConfig struct {
	AllowedDomains []string
	Limiter        LimiterConfig
	DedupWindow    time.Duration
}

// Tracker validates and records purchase clicks.
type Tracker struct {
	catalog   CatalogSource
	validator *URLValidator
	limiter   *ClickLimiter
	dedup     *cache.LRU[string, string]
	sink      Sink
	logger    zerolog.Logger
	now       func() time.Time
}

// NewTracker wires a tracker. sink receives every accepted, non-duplicate click.
func NewTracker(src CatalogSource, sink Sink, cfg TrackerConfig) (*Tracker, error) {
	if src == nil {
		return nil, errors.New("catalog source required")
	}
	if sink == nil {
		return nil, errors.New("sink required")
	}

	t := &Tracker{
		catalog:   src,
		validator: NewURLValidator(cfg.AllowedDomains),
		limiter:   NewClickLimiter(cfg.Limiter),
		sink:      sink,
		logger:    logging.WithComponent("purchase"),
		now:       time.Now,
	}
	if cfg.DedupWindow > 0 {
		t.dedup = cache.NewLRU[string, string](cfg.Limiter.MaxClients, cfg.DedupWindow)
	}
	return t, nil
}

// Validator exposes the URL allow-list.
func (t *Tracker) Validator() *URLValidator {
	return t.validator
}

// Track checks and records c.
//
//nolint:gocritic // hugeParam: c passed by value for immutability
func (t *Tracker) Track(ctx context.Context, c Click) (*Outcome, error) {
	log := logging.Ctx(ctx).With().Str("component", "purchase").Str("sake_id", c.SakeID).Logger()

	if c.Referrer == "" {
		c.Referrer = ReferrerDiagnosis
	}

	if !t.limiter.Allow(c.ClientKey) {
		metrics.RecordPurchaseRejection("rate_limited")
		return nil, ErrRateLimited
	}

	entry, err := t.catalog.Current().Get(c.SakeID)
	if err != nil {
		metrics.RecordPurchaseRejection("not_found")
		return nil, err
	}

	redirect, err := t.validator.Validate(entry.ECURL)
	if err != nil {
		metrics.RecordPurchaseRejection("invalid_url")
		log.Warn().Err(err).Str("ec_url", entry.ECURL).Msg("Refusing purchase link")
		return nil, err
	}

	if t.dedup != nil && t.dedup.IsDuplicate(c.ClientKey+"|"+c.SakeID, redirect) {
		log.Debug().Msg("Duplicate purchase click")
		return &Outcome{RedirectURL: redirect, Duplicate: true}, nil
	}

	event := NewEvent(&entry, c.Referrer, t.now())
	if err := t.sink.Record(ctx, event); err != nil {
		// the link is valid; losing the analytics event must not block the user
		log.Error().Err(err).Msg("Failed to record purchase event")
	}

	metrics.RecordPurchaseClick(string(c.Referrer))
	log.Info().Str("referrer", string(c.Referrer)).Str("event_id", event.ID).Msg("Purchase click")

	return &Outcome{RedirectURL: redirect, Event: event}, nil
}

