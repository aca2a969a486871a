// Sakefinder - Sake Preference Quiz and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sakefinder

/*
Package config provides centralized configuration management for Sakefinder.

Configuration is loaded by LoadWithKoanf in three layers, each overriding the
one before it:

 1. Built-in defaults (defaultConfig)
 2. An optional YAML file: CONFIG_PATH, else config.yaml, config.yml,
    /etc/sakefinder/config.yaml or /etc/sakefinder/config.yml
 3. Environment variables

Only the environment variables listed in the mapping table are read; anything
else in the environment is ignored. Slice settings (CORS_ORIGINS,
TRUSTED_PROXIES, PURCHASE_ALLOWED_DOMAINS) accept comma-separated values.

# Configuration Structure

  - ServerConfig: HTTP listener and timeouts
  - SecurityConfig: CORS origins and per-IP rate limiting
  - LoggingConfig: zerolog level, format and caller
  - CatalogConfig: catalog file, matrix products and hot reload
  - recommend.Config: score weights, reason thresholds, limits and cache
  - SessionsConfig: quiz session backend (memory or badger) and TTL
  - PurchaseConfig: shop allow-list, click limits, stats backend, breaker
  - NATSConfig: optional JetStream transport for purchase events
  - SupervisorConfig: suture restart policy

# Environment Variables

Server:
  - HTTP_HOST, HTTP_PORT (default: 0.0.0.0:8080)
  - HTTP_READ_TIMEOUT, HTTP_WRITE_TIMEOUT, HTTP_IDLE_TIMEOUT, HTTP_SHUTDOWN_TIMEOUT
  - ENVIRONMENT: development, staging or production

Security:
  - CORS_ORIGINS (default: *; wildcard rejected in production)
  - RATE_LIMIT_REQS, RATE_LIMIT_WINDOW (default: 120 per 1m)
  - DISABLE_RATE_LIMIT

Catalog:
  - CATALOG_PATH: YAML catalog (default: built-in catalog)
  - CATALOG_INCLUDE_MATRIX, CATALOG_WATCH

Sessions:
  - SESSION_STORE: memory or badger
  - SESSION_STORE_PATH, SESSION_TTL, SESSION_MAX, SESSION_CLEANUP_INTERVAL

Purchase tracking:
  - PURCHASE_ALLOWED_DOMAINS, PURCHASE_TOPIC
  - PURCHASE_STATS_BACKEND: memory or duckdb, PURCHASE_STATS_PATH
  - PURCHASE_RATE_PER_MINUTE, PURCHASE_RATE_BURST, PURCHASE_MAX_CLIENTS
  - PURCHASE_DEDUP_WINDOW, PURCHASE_BREAKER_TIMEOUT, PURCHASE_BREAKER_FAILURES

NATS (binaries built with -tags nats):
  - NATS_ENABLED, NATS_URL, NATS_DURABLE_NAME, NATS_MAX_RECONNECTS, NATS_RECONNECT_WAIT

# Usage Example

	cfg, err := config.LoadWithKoanf()
	if err != nil {
	    log.Fatal(err)
	}
	logging.Init(cfg.Logging.InitConfig())
	fmt.Println(cfg.Server.Addr())

# Thread Safety

A loaded Config is read-only after LoadWithKoanf returns and is safe to share.
*/
package config
