// Sakefinder - Sake Preference Quiz and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sakefinder

package purchase

import (
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/tomtom215/sakefinder/internal/cache"
)

// ClickLimiter is a token bucket per client key. Idle clients expire from an
// LRU so memory stays bounded.
type ClickLimiter struct {
	mu      sync.Mutex
	limit   rate.Limit
	burst   int
	clients *cache.LRU[string, *rate.Limiter]
}

// NewClickLimiter creates a limiter. A non-positive PerMinute disables limiting.
func NewClickLimiter(cfg LimiterConfig) *ClickLimiter {
	if cfg.PerMinute <= 0 {
		return &ClickLimiter{limit: rate.Inf}
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 1
	}
	return &ClickLimiter{
		limit:   rate.Every(time.Minute / time.Duration(cfg.PerMinute)),
		burst:   cfg.Burst,
		clients: cache.NewLRU[string, *rate.Limiter](cfg.MaxClients, cfg.IdleTTL),
	}
}

// Allow consumes one token for key.
func (l *ClickLimiter) Allow(key string) bool {
	if l.limit == rate.Inf {
		return true
	}

	l.mu.Lock()
	lim, ok := l.clients.Get(key)
	if !ok {
		lim = rate.NewLimiter(l.limit, l.burst)
		l.clients.Add(key, lim)
	}
	l.mu.Unlock()

	return lim.Allow()
}

// Clients is the number of tracked clients.
func (l *ClickLimiter) Clients() int {
	if l.clients == nil {
		return 0
	}
	return l.clients.Len()
}
