// Sakefinder - Sake Preference Quiz and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sakefinder

package purchase

import (
	"context"
	"sort"
	"sync"
)

// TopSakesLimit is how many sakes Stats.PopularSakes holds.
const TopSakesLimit = 5

// Sink receives recorded click events.
type Sink interface {
	Record(ctx context.Context, e Event) error
}

// StatsStore is a Sink that can also summarize what it has seen.
type StatsStore interface {
	Sink
	Stats(ctx context.Context) (Stats, error)
	Clear(ctx context.Context) error
	Close() error
}

// SakeClicks is one row of the popularity table.
type SakeClicks struct {
	SakeID   string `json:"sake_id"`
	SakeName string `json:"sake_name"`
	Clicks   int64  `json:"clicks"`
}

// Stats summarizes recorded clicks.
type Stats struct {
	TotalClicks  int64              `json:"total_clicks"`
	PopularSakes []SakeClicks       `json:"popular_sakes"`
	ByReferrer   map[Referrer]int64 `json:"referrer_stats"`
}

// MemoryStats keeps click counts in process memory.
type MemoryStats struct {
	mu         sync.RWMutex
	total      int64
	bySake     map[string]*SakeClicks
	order      []string
	byReferrer map[Referrer]int64
}

// NewMemoryStats creates an empty store.
func NewMemoryStats() *MemoryStats {
	return &MemoryStats{
		bySake:     make(map[string]*SakeClicks),
		byReferrer: make(map[Referrer]int64),
	}
}

// Record counts e.
func (m *MemoryStats) Record(_ context.Context, e Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.total++
	m.byReferrer[e.Referrer]++

	row, ok := m.bySake[e.SakeID]
	if !ok {
		row = &SakeClicks{SakeID: e.SakeID}
		m.bySake[e.SakeID] = row
		m.order = append(m.order, e.SakeID)
	}
	row.SakeName = e.SakeName
	row.Clicks++
	return nil
}

// Stats returns totals, the five most clicked sakes (first clicked wins a
// tie) and per-referrer counts.
func (m *MemoryStats) Stats(_ context.Context) (Stats, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rows := make([]SakeClicks, 0, len(m.order))
	for _, id := range m.order {
		rows = append(rows, *m.bySake[id])
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Clicks > rows[j].Clicks
	})
	if len(rows) > TopSakesLimit {
		rows = rows[:TopSakesLimit]
	}

	refs := make(map[Referrer]int64, len(m.byReferrer))
	for k, v := range m.byReferrer {
		refs[k] = v
	}
	return Stats{TotalClicks: m.total, PopularSakes: rows, ByReferrer: refs}, nil
}

// Clear forgets every recorded click.
func (m *MemoryStats) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.total = 0
	m.bySake = make(map[string]*SakeClicks)
	m.order = nil
	m.byReferrer = make(map[Referrer]int64)
	return nil
}

// Close is a no-op.
func (m *MemoryStats) Close() error {
	return nil
}
