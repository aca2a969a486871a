// Sakefinder - Sake Preference Quiz and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sakefinder

package config

import (
	"github.com/tomtom215/sakefinder/internal/logging"
	"github.com/tomtom215/sakefinder/internal/purchase"
	"github.com/tomtom215/sakefinder/internal/sessions"
)

// LimiterConfig converts the purchase rate settings for the tracker.
func (p PurchaseConfig) LimiterConfig() purchase.LimiterConfig {
	cfg := purchase.DefaultLimiterConfig()
	cfg.PerMinute = p.RatePerMinute
	cfg.Burst = p.RateBurst
	cfg.MaxClients = p.MaxClients
	return cfg
}

// BreakerConfig converts the breaker settings for the publisher.
func (p PurchaseConfig) BreakerConfig() purchase.BreakerConfig {
	return purchase.BreakerConfig{
		MaxRequests:      p.Breaker.MaxRequests,
		Interval:         p.Breaker.Interval,
		Timeout:          p.Breaker.Timeout,
		FailureThreshold: p.Breaker.FailureThreshold,
	}
}

// StoreConfig converts the session settings for the store factory.
func (s SessionsConfig) StoreConfig() sessions.Config {
	return sessions.Config{
		Backend:     sessions.Backend(s.Store),
		Path:        s.Path,
		TTL:         s.TTL,
		MaxSessions: s.MaxSessions,
	}
}

// PurchaseNATS converts the NATS settings for the purchase transport.
func (n NATSConfig) PurchaseNATS() purchase.NATSConfig {
	return purchase.NATSConfig{
		URL:           n.URL,
		DurableName:   n.DurableName,
		MaxReconnects: n.MaxReconnects,
		ReconnectWait: n.ReconnectWait,
	}
}

// InitConfig converts the logging settings for logging.Init.
func (l LoggingConfig) InitConfig() logging.Config {
	cfg := logging.DefaultConfig()
	cfg.Level = l.Level
	cfg.Format = l.Format
	cfg.Caller = l.Caller
	return cfg
}
