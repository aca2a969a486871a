// Sakefinder - Sake Preference Quiz and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sakefinder

package sessions

import (
	"context"
	"fmt"
	"hash/fnv"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tomtom215/sakefinder/internal/diagnosis"
	"github.com/tomtom215/sakefinder/internal/logging"
	"github.com/tomtom215/sakefinder/internal/metrics"
)

// State is a loaded session.
type State struct {
	ID        string
	Session   *diagnosis.Session
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Manager runs quiz sessions on top of a Store.
type Manager struct {
	store Store
	graph *diagnosis.Graph
	now   func() time.Time

	// striped locks serialize read-modify-write cycles per session
	locks [lockStripes]sync.Mutex
}

const lockStripes = 64

// NewManager creates a manager. A nil graph means diagnosis.DefaultGraph.
func NewManager(store Store, graph *diagnosis.Graph) *Manager {
	if graph == nil {
		graph = diagnosis.DefaultGraph()
	}
	return &Manager{store: store, graph: graph, now: time.Now}
}

// Graph returns the question graph sessions are replayed against.
func (m *Manager) Graph() *diagnosis.Graph {
	return m.graph
}

// Store returns the underlying store.
func (m *Manager) Store() Store {
	return m.store
}

func (m *Manager) lock(id string) func() {
	h := fnv.New32a()
	_, _ = h.Write([]byte(id))
	mu := &m.locks[h.Sum32()%lockStripes]
	mu.Lock()
	return mu.Unlock
}

// Start creates an empty session.
func (m *Manager) Start(ctx context.Context) (*State, error) {
	now := m.now().UTC()
	rec := &Record{ID: uuid.New().String(), CreatedAt: now, UpdatedAt: now}
	if err := m.store.Put(ctx, rec); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	metrics.DiagnosisSessionsStarted.Inc()
	logging.Ctx(ctx).Debug().Str("session_id", rec.ID).Msg("Quiz session started")

	return &State{ID: rec.ID, Session: diagnosis.NewSession(m.graph), CreatedAt: now, UpdatedAt: now}, nil
}

// Get loads and replays a session.
func (m *Manager) Get(ctx context.Context, id string) (*State, error) {
	rec, err := m.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return m.restore(rec)
}

func (m *Manager) restore(rec *Record) (*State, error) {
	s, err := diagnosis.Restore(m.graph, rec.Answers)
	if err != nil {
		return nil, fmt.Errorf("session %s: %w", rec.ID, err)
	}
	return &State{ID: rec.ID, Session: s, CreatedAt: rec.CreatedAt, UpdatedAt: rec.UpdatedAt}, nil
}

// Answer records a for the session's current question.
func (m *Manager) Answer(ctx context.Context, id string, a diagnosis.Answer) (*State, error) {
	unlock := m.lock(id)
	defer unlock()

	st, err := m.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := st.Session.Answer(a); err != nil {
		return nil, err
	}
	if err := m.save(ctx, st); err != nil {
		return nil, err
	}

	if st.Session.Complete() {
		res, _ := st.Session.Result()
		metrics.RecordDiagnosisCompleted(string(res.Cuisine))
		logging.Ctx(ctx).Info().
			Str("session_id", id).
			Str("cuisine", string(res.Cuisine)).
			Str("dish", res.Dish).
			Msg("Quiz completed")
	}
	return st, nil
}

// Back undoes the last answer and returns it so a client can pre-fill the form.
func (m *Manager) Back(ctx context.Context, id string) (*State, diagnosis.Answer, error) {
	unlock := m.lock(id)
	defer unlock()

	st, err := m.Get(ctx, id)
	if err != nil {
		return nil, diagnosis.Answer{}, err
	}
	prev, err := st.Session.Back()
	if err != nil {
		return nil, diagnosis.Answer{}, err
	}
	if err := m.save(ctx, st); err != nil {
		return nil, diagnosis.Answer{}, err
	}
	return st, prev, nil
}

// Delete ends a session.
func (m *Manager) Delete(ctx context.Context, id string) error {
	return m.store.Delete(ctx, id)
}

func (m *Manager) save(ctx context.Context, st *State) error {
	st.UpdatedAt = m.now().UTC()
	rec := &Record{
		ID:        st.ID,
		Answers:   st.Session.Answers(),
		CreatedAt: st.CreatedAt,
		UpdatedAt: st.UpdatedAt,
	}
	if err := m.store.Put(ctx, rec); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}
