// Sakefinder - Sake Preference Quiz and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sakefinder

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/tomtom215/sakefinder/internal/logging"
	"github.com/tomtom215/sakefinder/internal/purchase"
	"github.com/tomtom215/sakefinder/internal/sessions"
)

const (
	minRateLimitWindow = time.Second
	maxRateLimitWindow = time.Hour
)

// Validate checks the configuration for errors
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateSecurity(); err != nil {
		return err
	}

	if err := c.validateLogging(); err != nil {
		return err
	}

	if err := c.Recommend.Validate(); err != nil {
		return fmt.Errorf("recommend: %w", err)
	}

	if err := c.validateSessions(); err != nil {
		return err
	}

	if err := c.validatePurchase(); err != nil {
		return err
	}

	return c.validateNATS()
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.ReadTimeout <= 0 || c.Server.WriteTimeout <= 0 {
		return fmt.Errorf("HTTP_READ_TIMEOUT and HTTP_WRITE_TIMEOUT must be positive")
	}
	switch strings.ToLower(c.Server.Environment) {
	case "development", "staging", "production":
		return nil
	default:
		return fmt.Errorf("ENVIRONMENT must be development, staging or production, got %q", c.Server.Environment)
	}
}

func (c *Config) validateSecurity() error {
	if err := c.validateCORS(); err != nil {
		return err
	}
	if c.Security.RateLimitDisabled {
		return nil
	}
	return c.validateRateLimits()
}

func (c *Config) validateCORS() error {
	if len(c.Security.CORSOrigins) == 0 {
		return fmt.Errorf("CORS_ORIGINS must name at least one origin")
	}
	if c.hasWildcardCORS() && c.IsProduction() {
		return fmt.Errorf("CORS_ORIGINS=* (wildcard) is not allowed in production; " +
			"set specific origins, e.g. CORS_ORIGINS=https://sake.example.com")
	}
	return nil
}

func (c *Config) hasWildcardCORS() bool {
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}

func (c *Config) validateRateLimits() error {
	if c.Security.RateLimitReqs < 1 {
		return fmt.Errorf("RATE_LIMIT_REQS must be positive")
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

func (c *Config) validateLogging() error {
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("LOG_LEVEL %q is not a valid level", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "json", "console":
		return nil
	default:
		return fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.Logging.Format)
	}
}

func (c *Config) validateSessions() error {
	switch sessions.Backend(c.Sessions.Store) {
	case sessions.BackendMemory, sessions.BackendBadger:
	default:
		return fmt.Errorf("SESSION_STORE must be memory or badger, got %q", c.Sessions.Store)
	}
	if c.Sessions.TTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}
	if c.Sessions.MaxSessions < 1 {
		return fmt.Errorf("SESSION_MAX must be positive")
	}
	if c.Sessions.CleanupInterval <= 0 {
		return fmt.Errorf("SESSION_CLEANUP_INTERVAL must be positive")
	}
	return nil
}

func (c *Config) validatePurchase() error {
	if len(c.Purchase.AllowedDomains) == 0 {
		return fmt.Errorf("PURCHASE_ALLOWED_DOMAINS must name at least one domain")
	}
	if c.Purchase.Topic == "" {
		return fmt.Errorf("PURCHASE_TOPIC is required")
	}
	switch c.Purchase.StatsBackend {
	case "memory", "duckdb":
	default:
		return fmt.Errorf("PURCHASE_STATS_BACKEND must be memory or duckdb, got %q", c.Purchase.StatsBackend)
	}
	if c.Purchase.RatePerMinute < 0 || c.Purchase.RateBurst < 0 {
		return fmt.Errorf("PURCHASE_RATE_PER_MINUTE and PURCHASE_RATE_BURST must not be negative")
	}
	if c.Purchase.MaxClients < 1 {
		return fmt.Errorf("PURCHASE_MAX_CLIENTS must be positive")
	}
	if c.Purchase.DedupWindow < 0 {
		return fmt.Errorf("PURCHASE_DEDUP_WINDOW must not be negative")
	}
	if c.Purchase.Breaker.FailureThreshold < 1 {
		return fmt.Errorf("PURCHASE_BREAKER_FAILURES must be positive")
	}
	return nil
}

func (c *Config) validateNATS() error {
	if !c.NATS.Enabled {
		return nil
	}
	if !purchase.NATSEnabled {
		return fmt.Errorf("NATS_ENABLED=true but this binary was built without the nats tag")
	}
	if !strings.HasPrefix(c.NATS.URL, "nats://") && !strings.HasPrefix(c.NATS.URL, "tls://") {
		return fmt.Errorf("NATS_URL must start with nats:// or tls://, got %q", c.NATS.URL)
	}
	if c.NATS.DurableName == "" {
		return fmt.Errorf("NATS_DURABLE_NAME is required when NATS is enabled")
	}
	return nil
}
