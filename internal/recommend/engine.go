// Sakefinder - Sake Preference Quiz and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sakefinder

package recommend

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tomtom215/sakefinder/internal/cache"
	"github.com/tomtom215/sakefinder/internal/catalog"
	"github.com/tomtom215/sakefinder/internal/diagnosis"
	"github.com/tomtom215/sakefinder/internal/metrics"
	"github.com/tomtom215/sakefinder/internal/pairing"
	"github.com/tomtom215/sakefinder/internal/sweetness"
)

// ErrNoCatalog is returned when the catalog source has nothing loaded.
var ErrNoCatalog = errors.New("no catalog loaded")

// CatalogSource yields the current catalog snapshot. *catalog.Store
// implements it.
type CatalogSource interface {
	Current() *catalog.Catalog
}

// Engine filters, scores and explains catalog entries for a diagnosis
// result. It is safe for concurrent use.
type Engine struct {
	config  *Config
	logger  zerolog.Logger
	catalog CatalogSource

	cache *cache.LRU[string, *Response]

	requestCount atomic.Int64
	cacheHits    atomic.Int64
	cacheMisses  atomic.Int64
	fallbacks    atomic.Int64
}

// NewEngine creates a recommendation engine over src.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, src CatalogSource, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if src == nil {
		return nil, ErrNoCatalog
	}

	e := &Engine{
		config:  cfg.Clone(),
		logger:  logger.With().Str("component", "recommend").Logger(),
		catalog: src,
	}
	if cfg.Cache.Enabled {
		e.cache = cache.NewLRU[string, *Response](cfg.Cache.MaxEntries, cfg.Cache.TTL)
	}
	return e, nil
}

// Config returns a copy of the active configuration.
func (e *Engine) Config() *Config {
	return e.config.Clone()
}

// Recommend ranks the catalog for req.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) Recommend(ctx context.Context, req Request) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()
	e.requestCount.Add(1)

	snapshot := e.catalog.Current()
	if snapshot == nil || snapshot.Len() == 0 {
		return nil, ErrNoCatalog
	}

	req = e.prepareRequest(req)
	logger := e.logger.With().
		Str("request_id", req.RequestID).
		Str("cuisine", string(req.Result.Cuisine)).
		Str("dish", req.Result.Dish).
		Int("count", req.Count).
		Logger()

	key := cacheKey(snapshot.Version(), req)
	if resp := e.tryGetCachedResponse(key, req, start); resp != nil {
		logger.Debug().Msg("cache hit")
		return resp, nil
	}

	sel := Select(req.Result)
	filtered := Filter(snapshot, sel)
	if filtered.FellBack {
		e.fallbacks.Add(1)
		logger.Info().Str("rule", sel.Rule.ID).Msg("rule admitted no entries; ranking whole catalog")
	}

	items := e.rank(snapshot, filtered.Indices, req, sel)

	resp := &Response{
		Items:           items,
		TotalCandidates: len(filtered.Indices),
		Metadata: ResponseMetadata{
			RequestID:          req.RequestID,
			CatalogVersion:     snapshot.Version(),
			RuleKind:           sel.Kind,
			RuleID:             sel.Rule.ID,
			FellBack:           filtered.FellBack,
			Preference:         diagnosis.PreferenceDescription(req.Result.Taste),
			CuisineDescription: pairing.CuisineDescription(req.Result.Cuisine),
			Timestamp:          time.Now(),
		},
	}
	elapsed := time.Since(start)
	resp.Metadata.LatencyMicros = elapsed.Microseconds()
	metrics.RecordRecommendation(string(req.Result.Cuisine), string(sel.Kind), elapsed, filtered.FellBack)

	if e.cache != nil {
		e.cache.Add(key, resp.clone())
	}

	logger.Debug().
		Int("candidates", len(filtered.Indices)).
		Int("returned", len(items)).
		Int64("latency_us", resp.Metadata.LatencyMicros).
		Msg("recommendation complete")

	return resp, nil
}

// prepareRequest applies count defaults and generates a request ID if needed.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) prepareRequest(req Request) Request {
	if req.RequestID == "" {
		req.RequestID = uuid.New().String()
	}
	if req.Count <= 0 {
		req.Count = e.config.Limits.DefaultCount
	}
	if req.Count > e.config.Limits.MaxCount {
		req.Count = e.config.Limits.MaxCount
	}
	return req
}

// rank scores the admitted entries, sorts them stably by descending score
// and keeps the first req.Count.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) rank(c *catalog.Catalog, indices []int, req Request, sel Selection) []Scored {
	target := req.Result.Taste

	type candidate struct {
		idx       int
		score     float64
		breakdown Breakdown
	}
	cands := make([]candidate, len(indices))
	for i, idx := range indices {
		s, b := e.config.score(c.At(idx), target, sel)
		cands[i] = candidate{idx: idx, score: s, breakdown: b}
	}

	sort.SliceStable(cands, func(i, j int) bool {
		return cands[i].score > cands[j].score
	})

	n := min(req.Count, len(cands))
	out := make([]Scored, n)
	for i := 0; i < n; i++ {
		entry := c.At(cands[i].idx)
		sake, _ := c.Get(entry.ID)
		out[i] = Scored{
			Sake:      sake,
			Score:     cands[i].score,
			Breakdown: cands[i].breakdown,
			Reasons:   Reasons(entry, target, sel, e.config.Reasons),
			Sweetness: sweetness.Classify(entry.EffectiveSakeDegree(), entry.EffectiveAcidity()),
		}
	}
	return out
}

// tryGetCachedResponse returns a copy of a cached response.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) tryGetCachedResponse(key string, req Request, start time.Time) *Response {
	if e.cache == nil {
		return nil
	}

	cached, ok := e.cache.Get(key)
	metrics.RecordRecommendationCache(ok)
	if !ok {
		e.cacheMisses.Add(1)
		return nil
	}
	e.cacheHits.Add(1)

	resp := cached.clone()
	resp.Metadata.RequestID = req.RequestID
	resp.Metadata.CacheHit = true
	resp.Metadata.LatencyMicros = time.Since(start).Microseconds()
	return resp
}

// cacheKey identifies a ranking by its inputs. The request id is excluded.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func cacheKey(version string, req Request) string {
	t := req.Result.Taste
	var b strings.Builder
	b.WriteString(version)
	for _, part := range []string{
		string(req.Result.Cuisine),
		req.Result.Dish,
		strconv.FormatFloat(t.Sweetness, 'g', -1, 64),
		strconv.FormatFloat(t.Richness, 'g', -1, 64),
		strconv.FormatFloat(t.Acidity, 'g', -1, 64),
		strconv.FormatFloat(t.Aroma, 'g', -1, 64),
		strconv.Itoa(req.Count),
	} {
		b.WriteByte('|')
		b.WriteString(part)
	}
	return b.String()
}

// Purge drops every cached ranking. Call it after a catalog reload.
func (e *Engine) Purge() {
	if e.cache != nil {
		e.cache.Clear()
	}
}

// Stats returns cumulative counters.
func (e *Engine) Stats() Stats {
	s := Stats{
		Requests:    e.requestCount.Load(),
		CacheHits:   e.cacheHits.Load(),
		CacheMisses: e.cacheMisses.Load(),
		Fallbacks:   e.fallbacks.Load(),
	}
	if e.cache != nil {
		s.CacheSize = e.cache.Len()
	}
	return s
}
