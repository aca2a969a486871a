// Sakefinder - Sake Preference Quiz and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sakefinder

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/tomtom215/sakefinder/internal/purchase"
	"github.com/tomtom215/sakefinder/internal/recommend"
	"github.com/tomtom215/sakefinder/internal/sessions"
)

// DefaultConfigPaths are the locations searched for a config file, in order.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/sakefinder/config.yaml",
	"/etc/sakefinder/config.yml",
}

// ConfigPathEnvVar names the environment variable that overrides the search.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns a Config with all default values
func defaultConfig() *Config {
	limiter := purchase.DefaultLimiterConfig()
	breaker := purchase.DefaultBreakerConfig()
	sess := sessions.DefaultConfig()

	return &Config{
		Server: ServerConfig{
			Port:            8080,
			Host:            "0.0.0.0",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			IdleTimeout:     120 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			Environment:     "development",
		},
		Security: SecurityConfig{
			RateLimitReqs:   120,
			RateLimitWindow: time.Minute,
			CORSOrigins:     []string{"*"},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Catalog: CatalogConfig{
			IncludeMatrix: false,
			Watch:         true,
		},
		Recommend: *recommend.DefaultConfig(),
		Sessions: SessionsConfig{
			Store:           string(sess.Backend),
			TTL:             sess.TTL,
			MaxSessions:     sess.MaxSessions,
			CleanupInterval: 5 * time.Minute,
		},
		Purchase: PurchaseConfig{
			AllowedDomains: append([]string(nil), purchase.DefaultAllowedDomains...),
			Topic:          purchase.DefaultTopic,
			StatsBackend:   "memory",
			RatePerMinute:  limiter.PerMinute,
			RateBurst:      limiter.Burst,
			MaxClients:     limiter.MaxClients,
			DedupWindow:    10 * time.Second,
			Breaker: BreakerConfig{
				MaxRequests:      breaker.MaxRequests,
				Interval:         breaker.Interval,
				Timeout:          breaker.Timeout,
				FailureThreshold: breaker.FailureThreshold,
			},
		},
		NATS: NATSConfig{
			Enabled:       false,
			URL:           "nats://127.0.0.1:4222",
			DurableName:   "sakefinder-purchases",
			MaxReconnects: -1,
			ReconnectWait: 2 * time.Second,
		},
		Supervisor: SupervisorConfig{
			FailureThreshold: 5,
			FailureDecay:     30,
			FailureBackoff:   15 * time.Second,
			ShutdownTimeout:  10 * time.Second,
		},
	}
}

// LoadWithKoanf loads configuration in layers, later layers winning:
//
//  1. built-in defaults
//  2. YAML config file (CONFIG_PATH or the first of DefaultConfigPaths)
//  3. environment variables
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	// Layer 1: Load defaults from struct
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: Load config file (optional)
	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: Load environment variables (highest priority)
	// HTTP_PORT -> server.port
	// PURCHASE_ALLOWED_DOMAINS -> purchase.allowed_domains
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// ConfigFile returns the config file LoadWithKoanf reads, or "" when none exists.
func ConfigFile() string {
	return findConfigFile()
}

// findConfigFile returns the config file to load, or "" when none exists.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths may arrive from the environment as comma-separated strings.
var sliceConfigPaths = []string{
	"security.cors_origins",
	"security.trusted_proxies",
	"purchase.allowed_domains",
}

func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) == 0 {
			continue
		}
		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// envMappings maps environment variable names (lowercased) to koanf paths.
var envMappings = map[string]string{
	// Server
	"http_host":             "server.host",
	"http_port":             "server.port",
	"http_read_timeout":     "server.read_timeout",
	"http_write_timeout":    "server.write_timeout",
	"http_idle_timeout":     "server.idle_timeout",
	"http_shutdown_timeout": "server.shutdown_timeout",
	"environment":           "server.environment",

	// Security
	"rate_limit_reqs":    "security.rate_limit_reqs",
	"rate_limit_window":  "security.rate_limit_window",
	"disable_rate_limit": "security.rate_limit_disabled",
	"cors_origins":       "security.cors_origins",
	"trusted_proxies":    "security.trusted_proxies",

	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",

	// Catalog
	"catalog_path":           "catalog.path",
	"catalog_include_matrix": "catalog.include_matrix",
	"catalog_watch":          "catalog.watch",

	// Recommendation engine
	"recommend_default_count":   "recommend.limits.default_count",
	"recommend_max_count":       "recommend.limits.max_count",
	"recommend_cache_enabled":   "recommend.cache.enabled",
	"recommend_cache_ttl":       "recommend.cache.ttl",
	"recommend_cache_max":       "recommend.cache.max_entries",
	"recommend_matrix_weight":   "recommend.weights.matrix",
	"recommend_affinity_weight": "recommend.weights.affinity",

	// Sessions
	"session_store":            "sessions.store",
	"session_store_path":       "sessions.path",
	"session_ttl":              "sessions.ttl",
	"session_max":              "sessions.max_sessions",
	"session_cleanup_interval": "sessions.cleanup_interval",

	// Purchase tracking
	"purchase_allowed_domains":  "purchase.allowed_domains",
	"purchase_topic":            "purchase.topic",
	"purchase_stats_backend":    "purchase.stats_backend",
	"purchase_stats_path":       "purchase.stats_path",
	"purchase_rate_per_minute":  "purchase.rate_per_minute",
	"purchase_rate_burst":       "purchase.rate_burst",
	"purchase_max_clients":      "purchase.max_clients",
	"purchase_dedup_window":     "purchase.dedup_window",
	"purchase_breaker_timeout":  "purchase.breaker.timeout",
	"purchase_breaker_failures": "purchase.breaker.failure_threshold",

	// NATS
	"nats_enabled":        "nats.enabled",
	"nats_url":            "nats.url",
	"nats_durable_name":   "nats.durable_name",
	"nats_max_reconnects": "nats.max_reconnects",
	"nats_reconnect_wait": "nats.reconnect_wait",

	// Supervisor
	"supervisor_failure_threshold": "supervisor.failure_threshold",
	"supervisor_failure_decay":     "supervisor.failure_decay",
	"supervisor_failure_backoff":   "supervisor.failure_backoff",
	"supervisor_shutdown_timeout":  "supervisor.shutdown_timeout",
}

// envTransformFunc maps an environment variable to its koanf path. Unknown
// variables return "" and are ignored, so the rest of the environment never
// leaks into the config tree.
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}

// WatchConfigFile calls callback each time the file at path changes.
func WatchConfigFile(path string, callback func()) error {
	provider := file.Provider(path)
	return provider.Watch(func(_ interface{}, err error) {
		if err != nil {
			return
		}
		callback()
	})
}
