// Sakefinder - Sake Preference Quiz and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sakefinder

package config

import (
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/tomtom215/sakefinder/internal/recommend"
)

// Config holds all application configuration
type Config struct {
	Server     ServerConfig     `koanf:"server"`
	Security   SecurityConfig   `koanf:"security"`
	Logging    LoggingConfig    `koanf:"logging"`
	Catalog    CatalogConfig    `koanf:"catalog"`
	Recommend  recommend.Config `koanf:"recommend"`
	Sessions   SessionsConfig   `koanf:"sessions"`
	Purchase   PurchaseConfig   `koanf:"purchase"`
	NATS       NATSConfig       `koanf:"nats"`
	Supervisor SupervisorConfig `koanf:"supervisor"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"` // development, staging, production (default: development)
}

// SecurityConfig holds CORS and request rate limiting settings
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
	TrustedProxies    []string      `koanf:"trusted_proxies"`
}

// LoggingConfig holds logging configuration.
//
// Environment Variables:
//   - LOG_LEVEL: Minimum log level (trace, debug, info, warn, error)
//   - LOG_FORMAT: Output format (json, console)
//   - LOG_CALLER: Include caller information (true, false)
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	// Default: false
	Caller bool `koanf:"caller"`
}

// CatalogConfig says where the product catalog is read from.
type CatalogConfig struct {
	// Path is a YAML catalog on disk. Empty uses the catalog built into the binary.
	Path string `koanf:"path"`

	// IncludeMatrix appends the products described only by matrix measurements.
	IncludeMatrix bool `koanf:"include_matrix"`

	// Watch reloads Path whenever the file changes. Ignored without Path.
	Watch bool `koanf:"watch"`
}

// SessionsConfig holds quiz session storage settings.
//
// Environment Variables:
//   - SESSION_STORE: memory or badger (default: memory)
//   - SESSION_STORE_PATH: BadgerDB directory (empty keeps badger in memory)
//   - SESSION_TTL: Idle lifetime of a quiz session (default: 30m)
type SessionsConfig struct {
	Store           string        `koanf:"store"`
	Path            string        `koanf:"path"`
	TTL             time.Duration `koanf:"ttl"`
	MaxSessions     int           `koanf:"max_sessions"`
	CleanupInterval time.Duration `koanf:"cleanup_interval"`
}

// PurchaseConfig holds purchase click tracking settings
type PurchaseConfig struct {
	// AllowedDomains are the shop hosts a purchase link may redirect to.
	// Subdomains of an entry are allowed too.
	AllowedDomains []string `koanf:"allowed_domains"`

	// Topic is the event topic clicks are published on.
	Topic string `koanf:"topic"`

	// StatsBackend aggregates clicks in "memory" or "duckdb".
	StatsBackend string `koanf:"stats_backend"`

	// StatsPath is the DuckDB file. Empty keeps the database in memory.
	StatsPath string `koanf:"stats_path"`

	// RatePerMinute and RateBurst bound clicks per client. Zero disables the limit.
	RatePerMinute int `koanf:"rate_per_minute"`
	RateBurst     int `koanf:"rate_burst"`

	// MaxClients bounds the per-client limiter and dedup tables.
	MaxClients int `koanf:"max_clients"`

	// DedupWindow suppresses repeat clicks on the same sake by the same client.
	DedupWindow time.Duration `koanf:"dedup_window"`

	Breaker BreakerConfig `koanf:"breaker"`
}

// BreakerConfig tunes the circuit breaker in front of the event broker
type BreakerConfig struct {
	MaxRequests      uint32        `koanf:"max_requests"`
	Interval         time.Duration `koanf:"interval"`
	Timeout          time.Duration `koanf:"timeout"`
	FailureThreshold uint32        `koanf:"failure_threshold"`
}

// NATSConfig holds the optional NATS JetStream transport for purchase events.
// The transport is only available in binaries built with the nats tag.
type NATSConfig struct {
	Enabled       bool          `koanf:"enabled"`
	URL           string        `koanf:"url"`
	DurableName   string        `koanf:"durable_name"`
	MaxReconnects int           `koanf:"max_reconnects"`
	ReconnectWait time.Duration `koanf:"reconnect_wait"`
}

// SupervisorConfig tunes the suture supervisor tree.
type SupervisorConfig struct {
	FailureThreshold float64       `koanf:"failure_threshold"`
	FailureDecay     float64       `koanf:"failure_decay"`
	FailureBackoff   time.Duration `koanf:"failure_backoff"`
	ShutdownTimeout  time.Duration `koanf:"shutdown_timeout"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Server.Environment, "production")
}
