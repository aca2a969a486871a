// Sakefinder - Sake Preference Quiz and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sakefinder

package catalog

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/knadh/koanf/providers/file"
	"github.com/rs/zerolog"

	"github.com/tomtom215/sakefinder/internal/logging"
	"github.com/tomtom215/sakefinder/internal/metrics"
)

// ErrNotWatchable is returned by Serve when the store reads the embedded
// catalog, which cannot change at runtime.
var ErrNotWatchable = errors.New("catalog source is embedded and cannot be watched")

// Store serves the current catalog snapshot and swaps it atomically on
// reload. Readers never block and always see a complete catalog.
type Store struct {
	src     Source
	current atomic.Pointer[Catalog]
	logger  zerolog.Logger

	mu        sync.Mutex
	listeners []func(*Catalog)
}

// NewStore loads src once and fails if the first load fails.
func NewStore(src Source) (*Store, error) {
	s := &Store{
		src:    src,
		logger: logging.WithComponent("catalog"),
	}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// NewStaticStore wraps an already built catalog. Reload is a no-op.
func NewStaticStore(c *Catalog) *Store {
	s := &Store{logger: logging.WithComponent("catalog")}
	s.current.Store(c)
	metrics.CatalogEntries.Set(float64(c.Len()))
	return s
}

// Current returns the active snapshot.
func (s *Store) Current() *Catalog {
	return s.current.Load()
}

// OnReload registers fn to run after every successful reload.
func (s *Store) OnReload(fn func(*Catalog)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Reload re-reads the source. On error the previous snapshot stays active.
// The embedded catalog is read only once.
func (s *Store) Reload() error {
	if s.src.Path == "" && s.current.Load() != nil {
		return nil
	}

	c, err := Load(s.src)
	if err != nil {
		metrics.CatalogReloads.WithLabelValues("error").Inc()
		return fmt.Errorf("reload catalog: %w", err)
	}

	s.current.Store(c)
	metrics.CatalogReloads.WithLabelValues("success").Inc()
	metrics.CatalogEntries.Set(float64(c.Len()))

	s.logger.Info().
		Str("version", c.Version()).
		Int("entries", c.Len()).
		Str("path", s.src.Path).
		Msg("Catalog loaded")

	s.mu.Lock()
	listeners := append([]func(*Catalog){}, s.listeners...)
	s.mu.Unlock()
	for _, fn := range listeners {
		fn(c)
	}
	return nil
}

// Serve watches the catalog file and reloads on change until ctx is done.
// It implements suture.Service.
func (s *Store) Serve(ctx context.Context) error {
	if s.src.Path == "" {
		return ErrNotWatchable
	}

	provider := file.Provider(s.src.Path)
	err := provider.Watch(func(_ interface{}, err error) {
		if err != nil {
			s.logger.Warn().Err(err).Msg("Catalog watch error")
			return
		}
		if err := s.Reload(); err != nil {
			s.logger.Error().Err(err).Msg("Catalog reload failed; keeping previous snapshot")
		}
	})
	if err != nil {
		return fmt.Errorf("watch catalog %s: %w", s.src.Path, err)
	}
	s.logger.Info().Str("path", s.src.Path).Msg("Watching catalog file")

	<-ctx.Done()
	if err := provider.Unwatch(); err != nil {
		s.logger.Warn().Err(err).Msg("Catalog unwatch failed")
	}
	return ctx.Err()
}

// String names the service in supervisor logs.
func (s *Store) String() string {
	return "catalog-watcher"
}
