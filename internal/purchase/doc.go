// Sakefinder - Sake Preference Quiz and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sakefinder

// Package purchase handles outbound clicks to merchant pages.
//
// A click flows through the Tracker: per-client rate limiting, catalog
// lookup, URL validation against the merchant allow-list (https only, listed
// domains and their subdomains), duplicate suppression, then recording.
// Recording goes to an injected Sink. The production wiring publishes events
// to a watermill topic through a circuit breaker; a Forwarder subscribes to
// the topic and writes each event into a StatsStore (in memory or DuckDB).
//
// Build with -tags nats to publish to NATS JetStream instead of the
// in-process channel.
package purchase
