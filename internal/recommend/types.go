// Sakefinder - Sake Preference Quiz and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sakefinder

package recommend

import (
	"time"

	"github.com/tomtom215/sakefinder/internal/catalog"
	"github.com/tomtom215/sakefinder/internal/diagnosis"
	"github.com/tomtom215/sakefinder/internal/sweetness"
)

// RuleKind says which compatibility rule drove filtering and scoring.
type RuleKind string

const (
	// RuleNone means no rule applied and the whole catalog was ranked.
	RuleNone RuleKind = "none"
	// RuleDish means a specific dish rule applied.
	RuleDish RuleKind = "dish"
	// RuleCuisine means the genre-level rule applied.
	RuleCuisine RuleKind = "cuisine"
)

// Request asks for a ranked shortlist.
type Request struct {
	// Result is the folded quiz outcome used as the target.
	Result diagnosis.Result `json:"result" validate:"required"`

	// Count is the number of items wanted. Zero or less means the default;
	// values above the configured maximum are clamped.
	Count int `json:"count,omitempty"`

	// RequestID is a unique identifier for tracing.
	RequestID string `json:"request_id,omitempty"`
}

// Breakdown exposes the three score layers before weighting.
type Breakdown struct {
	Matrix     float64 `json:"matrix"`
	Preference float64 `json:"preference"`
	Affinity   float64 `json:"affinity"`
}

// Scored is one ranked catalog entry.
type Scored struct {
	// Sake is a copy of the catalog entry.
	Sake catalog.Entry `json:"sake"`

	// Score is the weighted total. Higher is better.
	Score float64 `json:"score"`

	// Breakdown shows how Score was built.
	Breakdown Breakdown `json:"breakdown"`

	// Reasons explain the match, at most Config.Reasons.Max entries.
	Reasons []string `json:"reasons"`

	// Sweetness is the acidity-adjusted sweetness label of the entry.
	Sweetness sweetness.Judgment `json:"sweetness"`
}

// Response is the ranked result.
type Response struct {
	// Items is the ordered list of recommendations.
	Items []Scored `json:"items"`

	// TotalCandidates is how many entries survived filtering.
	TotalCandidates int `json:"total_candidates"`

	// Metadata contains timing and diagnostic information.
	Metadata ResponseMetadata `json:"metadata"`
}

// ResponseMetadata contains diagnostic information about a ranking.
type ResponseMetadata struct {
	// RequestID is the unique request identifier.
	RequestID string `json:"request_id"`

	// CatalogVersion is the version of the snapshot that was ranked.
	CatalogVersion string `json:"catalog_version"`

	// RuleKind and RuleID identify the compatibility rule used, if any.
	RuleKind RuleKind `json:"rule_kind"`
	RuleID   string   `json:"rule_id,omitempty"`

	// FellBack is true when the rule admitted nothing and the whole
	// catalog was ranked instead.
	FellBack bool `json:"fell_back"`

	// Preference is a one-line description of the target taste.
	Preference string `json:"preference"`

	// CuisineDescription is the genre pitch, empty without a genre.
	CuisineDescription string `json:"cuisine_description,omitempty"`

	// LatencyMicros is the time spent serving the request.
	LatencyMicros int64 `json:"latency_us"`

	// CacheHit indicates whether the result was served from cache.
	CacheHit bool `json:"cache_hit"`

	// Timestamp is when the ranking was computed.
	Timestamp time.Time `json:"timestamp"`
}

// Stats are cumulative engine counters.
type Stats struct {
	Requests    int64 `json:"requests"`
	CacheHits   int64 `json:"cache_hits"`
	CacheMisses int64 `json:"cache_misses"`
	CacheSize   int   `json:"cache_size"`
	Fallbacks   int64 `json:"fallbacks"`
}

func (r *Response) clone() *Response {
	cp := *r
	cp.Items = make([]Scored, len(r.Items))
	for i, it := range r.Items {
		it.Reasons = append([]string(nil), it.Reasons...)
		cp.Items[i] = it
	}
	return &cp
}
