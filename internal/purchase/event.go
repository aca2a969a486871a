// Sakefinder - Sake Preference Quiz and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sakefinder

package purchase

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tomtom215/sakefinder/internal/catalog"
)

// Sentinel errors.
var (
	ErrInvalidURL      = errors.New("merchant url not allowed")
	ErrRateLimited     = errors.New("too many purchase clicks")
	ErrInvalidReferrer = errors.New("invalid referrer")
)

// Referrer is the page a click came from.
type Referrer string

const (
	ReferrerDiagnosis      Referrer = "diagnosis"
	ReferrerBrowse         Referrer = "browse"
	ReferrerRecommendation Referrer = "recommendation"
)

// Referrers lists the accepted values.
var Referrers = [...]Referrer{ReferrerDiagnosis, ReferrerBrowse, ReferrerRecommendation}

// ParseReferrer validates s. The empty string means diagnosis.
func ParseReferrer(s string) (Referrer, error) {
	if s == "" {
		return ReferrerDiagnosis, nil
	}
	for _, r := range Referrers {
		if string(r) == s {
			return r, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidReferrer, s)
}

// Event records one click through to a merchant.
type Event struct {
	ID        string    `json:"id"`
	SakeID    string    `json:"sake_id"`
	SakeName  string    `json:"sake_name"`
	Price     int       `json:"price"`
	Timestamp time.Time `json:"timestamp"`
	Referrer  Referrer  `json:"referrer"`
}

// NewEvent builds an event for entry.
func NewEvent(entry *catalog.Entry, referrer Referrer, at time.Time) Event {
	return Event{
		ID:        uuid.New().String(),
		SakeID:    entry.ID,
		SakeName:  entry.Name,
		Price:     entry.Price,
		Timestamp: at.UTC(),
		Referrer:  referrer,
	}
}
