// Sakefinder - Sake Preference Quiz and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sakefinder

// Package sessions keeps in-progress quiz sessions between HTTP requests.
//
// A session is stored as its answer path only; the quiz state is rebuilt
// with diagnosis.Restore on every load, so a stored session can never
// disagree with the question graph it is replayed against.
package sessions

import (
	"context"
	"errors"
	"time"

	"github.com/tomtom215/sakefinder/internal/diagnosis"
)

// ErrSessionNotFound is returned for unknown or expired sessions.
var ErrSessionNotFound = errors.New("session not found")

// Record is the stored form of a quiz session.
type Record struct {
	ID        string             `json:"id"`
	Answers   []diagnosis.Answer `json:"answers"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

func (r *Record) clone() *Record {
	cp := *r
	cp.Answers = make([]diagnosis.Answer, len(r.Answers))
	for i, a := range r.Answers {
		a.Options = append([]string(nil), a.Options...)
		if a.Scale != nil {
			v := *a.Scale
			a.Scale = &v
		}
		cp.Answers[i] = a
	}
	return &cp
}

// Store persists session records. Every write refreshes the record's TTL.
type Store interface {
	Get(ctx context.Context, id string) (*Record, error)
	Put(ctx context.Context, rec *Record) error
	Delete(ctx context.Context, id string) error
	// Len counts live sessions.
	Len(ctx context.Context) (int, error)
	// Cleanup drops expired sessions and returns how many went.
	Cleanup(ctx context.Context) (int, error)
	Close() error
}
