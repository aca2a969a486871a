// Sakefinder - Sake Preference Quiz and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sakefinder

// Package metrics declares the Prometheus collectors exported on /metrics.
//
// Collectors are registered on the default registry through promauto at
// package init. Record* helpers keep label spelling in one place.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Recommendation Metrics
	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_requests_total",
			Help: "Total number of recommendation requests",
		},
		[]string{"cuisine", "rule"}, // rule: "dish", "cuisine", "none"
	)

	RecommendationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommend_duration_seconds",
			Help:    "Time spent filtering and scoring the catalog",
			Buckets: []float64{0.00005, 0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01},
		},
	)

	RecommendationCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommend_cache_hits_total",
			Help: "Total number of recommendation cache hits",
		},
	)

	RecommendationCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommend_cache_misses_total",
			Help: "Total number of recommendation cache misses",
		},
	)

	RecommendationFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommend_filter_fallbacks_total",
			Help: "Times the compatibility filter admitted nothing and the whole catalog was ranked",
		},
	)

	// Diagnosis Metrics
	DiagnosisSessionsStarted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "diagnosis_sessions_started_total",
			Help: "Total number of quiz sessions started",
		},
	)

	DiagnosisSessionsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "diagnosis_sessions_completed_total",
			Help: "Total number of quiz sessions answered to the end",
		},
		[]string{"cuisine"},
	)

	DiagnosisActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "diagnosis_active_sessions",
			Help: "Quiz sessions currently held in the session store",
		},
	)

	// Purchase Metrics
	PurchaseClicks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "purchase_clicks_total",
			Help: "Total number of accepted purchase clicks",
		},
		[]string{"referrer"},
	)

	PurchaseRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "purchase_rejections_total",
			Help: "Total number of rejected purchase clicks",
		},
		[]string{"reason"}, // reason: "invalid_url", "rate_limited", "unknown_sake", "publish_failed"
	)

	PurchaseEventsForwarded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "purchase_events_forwarded_total",
			Help: "Purchase events moved from the event topic into the stats store",
		},
		[]string{"result"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// Catalog Metrics
	CatalogEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_entries",
			Help: "Number of sake entries in the active catalog snapshot",
		},
	)

	CatalogReloads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_reloads_total",
			Help: "Catalog load attempts",
		},
		[]string{"result"},
	)
)

// RecordAPIRequest records one finished request.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest moves the in-flight gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRecommendation records one uncached ranking run.
func RecordRecommendation(cuisine, rule string, duration time.Duration, fellBack bool) {
	if cuisine == "" {
		cuisine = "none"
	}
	RecommendationsTotal.WithLabelValues(cuisine, rule).Inc()
	RecommendationDuration.Observe(duration.Seconds())
	if fellBack {
		RecommendationFallbacks.Inc()
	}
}

// RecordRecommendationCache counts a cache lookup.
func RecordRecommendationCache(hit bool) {
	if hit {
		RecommendationCacheHits.Inc()
	} else {
		RecommendationCacheMisses.Inc()
	}
}

// RecordDiagnosisCompleted counts a finished quiz.
func RecordDiagnosisCompleted(cuisine string) {
	if cuisine == "" {
		cuisine = "none"
	}
	DiagnosisSessionsCompleted.WithLabelValues(cuisine).Inc()
}

// RecordPurchaseClick counts an accepted click.
func RecordPurchaseClick(referrer string) {
	PurchaseClicks.WithLabelValues(referrer).Inc()
}

// RecordPurchaseRejection counts a rejected click.
func RecordPurchaseRejection(reason string) {
	PurchaseRejections.WithLabelValues(reason).Inc()
}

// RecordCircuitBreakerTransition records a breaker state change. States use
// gobreaker's names: "closed", "half-open", "open".
func RecordCircuitBreakerTransition(name, from, to string) {
	CircuitBreakerTransitions.WithLabelValues(name, from, to).Inc()
	CircuitBreakerState.WithLabelValues(name).Set(circuitStateValue(to))
}

func circuitStateValue(state string) float64 {
	switch state {
	case "half-open":
		return 1
	case "open":
		return 2
	default:
		return 0
	}
}
