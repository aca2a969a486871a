// Sakefinder - Sake Preference Quiz and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sakefinder

/*
Package main is the Sakefinder server.

Sakefinder walks a visitor through a short taste quiz (cuisine, dish,
sweet or dry, adventurousness), turns the answers into a four-axis taste
vector and ranks the sake catalog against it. Purchase links are validated
against an allow-list and counted before the visitor is redirected.

# Startup order

 1. Configuration: koanf layers (defaults, config.yaml, environment)
 2. Logging: zerolog, JSON or console
 3. Catalog: embedded or CATALOG_PATH, optionally watched for changes
 4. Recommendation engine with its result cache
 5. Quiz sessions: memory or BadgerDB
 6. Purchase tracking: watermill publisher behind a circuit breaker,
    forwarder into memory or DuckDB statistics
 7. HTTP API: chi router, CORS, rate limiting, Prometheus metrics
 8. Supervisor tree (suture v4) running everything above

# Build tags

	go build ./cmd/server               # in-process event bus
	go build -tags nats ./cmd/server    # NATS JetStream event bus

# Signals

SIGINT and SIGTERM cancel the supervisor tree. The HTTP server drains for
HTTP_SHUTDOWN_TIMEOUT, then the session store, statistics database and
event bus are closed in reverse order of creation.
*/
package main
