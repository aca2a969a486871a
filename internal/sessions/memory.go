// Sakefinder - Sake Preference Quiz and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sakefinder

package sessions

import (
	"context"
	"time"

	"github.com/tomtom215/sakefinder/internal/cache"
)

// MemoryStore keeps sessions in an expiring LRU. The oldest idle session is
// evicted when the store is full.
type MemoryStore struct {
	lru *cache.LRU[string, *Record]
}

// NewMemoryStore creates a store holding up to maxSessions for ttl each.
func NewMemoryStore(maxSessions int, ttl time.Duration) *MemoryStore {
	return &MemoryStore{lru: cache.NewLRU[string, *Record](maxSessions, ttl)}
}

// Get returns a copy of the record.
func (m *MemoryStore) Get(_ context.Context, id string) (*Record, error) {
	rec, ok := m.lru.Get(id)
	if !ok {
		return nil, ErrSessionNotFound
	}
	return rec.clone(), nil
}

// Put stores a copy of rec.
func (m *MemoryStore) Put(_ context.Context, rec *Record) error {
	m.lru.Add(rec.ID, rec.clone())
	return nil
}

// Delete removes id. Unknown ids are not an error.
func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.lru.Remove(id)
	return nil
}

// Len counts stored sessions, including ones that expired since the last Cleanup.
func (m *MemoryStore) Len(_ context.Context) (int, error) {
	return m.lru.Len(), nil
}

// Cleanup drops expired sessions.
func (m *MemoryStore) Cleanup(_ context.Context) (int, error) {
	return m.lru.CleanupExpired(), nil
}

// Close is a no-op.
func (m *MemoryStore) Close() error {
	return nil
}
