// Sakefinder - Sake Preference Quiz and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sakefinder

package sessions

import (
	"fmt"
	"time"
)

// Backend names a Store implementation.
type Backend string

const (
	// BackendMemory keeps sessions in process memory (default).
	BackendMemory Backend = "memory"
	// BackendBadger keeps sessions in BadgerDB.
	BackendBadger Backend = "badger"
)

// Config selects and sizes the session store.
type Config struct {
	Backend     Backend
	Path        string
	TTL         time.Duration
	MaxSessions int
}

// DefaultConfig returns production defaults.
func DefaultConfig() Config {
	return Config{
		Backend:     BackendMemory,
		TTL:         30 * time.Minute,
		MaxSessions: 10000,
	}
}

// NewStore builds the configured store.
func NewStore(cfg Config) (Store, error) {
	switch cfg.Backend {
	case BackendMemory, "":
		return NewMemoryStore(cfg.MaxSessions, cfg.TTL), nil
	case BackendBadger:
		return OpenBadgerStore(cfg.Path, cfg.TTL)
	default:
		return nil, fmt.Errorf("unknown session backend %q", cfg.Backend)
	}
}
