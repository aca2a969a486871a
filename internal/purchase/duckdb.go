// Sakefinder - Sake Preference Quiz and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sakefinder

package purchase

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"

	_ "github.com/duckdb/duckdb-go/v2"
)

// inMemoryDSN keeps the analytics database in process memory.
const inMemoryDSN = ":memory:?autoinstall_known_extensions=false&autoload_known_extensions=false"

// DuckDBStats stores click events in a DuckDB table and aggregates with SQL.
type DuckDBStats struct {
	db *sql.DB
	mu sync.RWMutex
}

// OpenDuckDBStats opens path (empty means in memory) and creates the schema.
func OpenDuckDBStats(ctx context.Context, path string) (*DuckDBStats, error) {
	dsn := inMemoryDSN
	if path != "" {
		dsn = path
	}
	db, err := sql.Open("duckdb", dsn)
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}
	// a single connection keeps an in-memory database shared across queries
	db.SetMaxOpenConns(1)

	s := &DuckDBStats{db: db}
	if err := s.createTable(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *DuckDBStats) createTable(ctx context.Context) error {
	schema := `
		CREATE TABLE IF NOT EXISTS purchase_events (
			id TEXT PRIMARY KEY,
			sake_id TEXT NOT NULL,
			sake_name TEXT NOT NULL,
			price INTEGER NOT NULL,
			referrer TEXT NOT NULL,
			ts TIMESTAMP NOT NULL,
			seq BIGINT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_purchase_sake ON purchase_events(sake_id);
		CREATE SEQUENCE IF NOT EXISTS purchase_seq START 1
	`
	for _, stmt := range strings.Split(schema, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to execute schema statement: %w", err)
		}
	}
	return nil
}

// Record inserts e. Replays of the same event id are ignored.
func (s *DuckDBStats) Record(ctx context.Context, e Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO purchase_events (id, sake_id, sake_name, price, referrer, ts, seq)
		VALUES (?, ?, ?, ?, ?, ?, nextval('purchase_seq'))
		ON CONFLICT DO NOTHING`,
		e.ID, e.SakeID, e.SakeName, e.Price, string(e.Referrer), e.Timestamp)
	if err != nil {
		return fmt.Errorf("insert purchase event: %w", err)
	}
	return nil
}

// Stats aggregates the table. Ties in popularity go to the sake clicked first.
func (s *DuckDBStats) Stats(ctx context.Context) (Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := Stats{ByReferrer: make(map[Referrer]int64)}

	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM purchase_events").Scan(&out.TotalClicks); err != nil {
		return Stats{}, fmt.Errorf("count purchase events: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, fmt.Sprintf(`
		SELECT sake_id, arg_max(sake_name, seq), COUNT(*) AS clicks
		FROM purchase_events
		GROUP BY sake_id
		ORDER BY clicks DESC, MIN(seq) ASC
		LIMIT %d`, TopSakesLimit))
	if err != nil {
		return Stats{}, fmt.Errorf("query popular sakes: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var r SakeClicks
		if err := rows.Scan(&r.SakeID, &r.SakeName, &r.Clicks); err != nil {
			return Stats{}, fmt.Errorf("scan popular sake: %w", err)
		}
		out.PopularSakes = append(out.PopularSakes, r)
	}
	if err := rows.Err(); err != nil {
		return Stats{}, fmt.Errorf("error iterating popular sakes: %w", err)
	}

	refs, err := s.db.QueryContext(ctx, "SELECT referrer, COUNT(*) FROM purchase_events GROUP BY referrer")
	if err != nil {
		return Stats{}, fmt.Errorf("query referrer counts: %w", err)
	}
	defer refs.Close()
	for refs.Next() {
		var ref string
		var n int64
		if err := refs.Scan(&ref, &n); err != nil {
			return Stats{}, fmt.Errorf("scan referrer count: %w", err)
		}
		out.ByReferrer[Referrer(ref)] = n
	}
	if err := refs.Err(); err != nil {
		return Stats{}, fmt.Errorf("error iterating referrer counts: %w", err)
	}

	if out.PopularSakes == nil {
		out.PopularSakes = []SakeClicks{}
	}
	return out, nil
}

// Clear deletes every event.
func (s *DuckDBStats) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.db.ExecContext(ctx, "DELETE FROM purchase_events"); err != nil {
		return fmt.Errorf("clear purchase events: %w", err)
	}
	return nil
}

// Close releases the database.
func (s *DuckDBStats) Close() error {
	return s.db.Close()
}
