// Sakefinder - Sake Preference Quiz and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sakefinder

package sessions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
)

const sessionKeyPrefix = "quiz_session:"

// BadgerStore keeps sessions in BadgerDB. Expiry is left to badger's entry TTL.
type BadgerStore struct {
	db  *badger.DB
	ttl time.Duration
}

// OpenBadgerStore opens a database at path, or in memory when path is empty.
func OpenBadgerStore(path string, ttl time.Duration) (*BadgerStore, error) {
	opts := badger.DefaultOptions(path)
	if path == "" {
		opts = opts.WithInMemory(true)
	}
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger db for sessions: %w", err)
	}
	return NewBadgerStoreFromDB(db, ttl), nil
}

// NewBadgerStoreFromDB uses an already open database.
func NewBadgerStoreFromDB(db *badger.DB, ttl time.Duration) *BadgerStore {
	return &BadgerStore{db: db, ttl: ttl}
}

func sessionKey(id string) []byte {
	return []byte(sessionKeyPrefix + id)
}

// Get loads a record.
func (s *BadgerStore) Get(ctx context.Context, id string) (*Record, error) {
	var rec Record

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(sessionKey(id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrSessionNotFound
		}
		if err != nil {
			return fmt.Errorf("get session: %w", err)
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &rec)
		})
	})
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// Put writes rec with a fresh TTL.
func (s *BadgerStore) Put(ctx context.Context, rec *Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		e := badger.NewEntry(sessionKey(rec.ID), data)
		if s.ttl > 0 {
			e = e.WithTTL(s.ttl)
		}
		if err := txn.SetEntry(e); err != nil {
			return fmt.Errorf("set session: %w", err)
		}
		return nil
	})
}

// Delete removes id.
func (s *BadgerStore) Delete(ctx context.Context, id string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Delete(sessionKey(id)); err != nil && !errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("delete session: %w", err)
		}
		return nil
	})
}

// Len counts live sessions. Expired entries are invisible to iterators.
func (s *BadgerStore) Len(ctx context.Context) (int, error) {
	n := 0
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(sessionKeyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			n++
		}
		return nil
	})
	return n, err
}

// Cleanup reclaims value log space. Badger expires keys on its own, so the
// removed count is always zero.
func (s *BadgerStore) Cleanup(ctx context.Context) (int, error) {
	if s.db.Opts().InMemory {
		return 0, nil
	}
	if err := s.db.RunValueLogGC(0.5); err != nil && !errors.Is(err, badger.ErrNoRewrite) {
		return 0, fmt.Errorf("value log gc: %w", err)
	}
	return 0, nil
}

// Close closes the database.
func (s *BadgerStore) Close() error {
	return s.db.Close()
}
