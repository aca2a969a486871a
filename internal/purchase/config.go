// Sakefinder - Sake Preference Quiz and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sakefinder

package purchase

import "time"

// NATSConfig points the event transport at a NATS JetStream server.
type NATSConfig struct {
	URL           string
	DurableName   string
	MaxReconnects int
	ReconnectWait time.Duration
}

// LimiterConfig bounds clicks per client.
type LimiterConfig struct {
	// PerMinute is the sustained click rate.
	PerMinute int
	// Burst is how many clicks may arrive at once.
	Burst int
	// MaxClients bounds the number of tracked clients.
	MaxClients int
	// IdleTTL forgets clients that stop clicking.
	IdleTTL time.Duration
}

// DefaultLimiterConfig returns production defaults.
func DefaultLimiterConfig() LimiterConfig {
	return LimiterConfig{
		PerMinute:  30,
		Burst:      10,
		MaxClients: 10000,
		IdleTTL:    10 * time.Minute,
	}
}
