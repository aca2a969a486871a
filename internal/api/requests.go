// Sakefinder - Sake Preference Quiz and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sakefinder

package api

import (
	"github.com/tomtom215/sakefinder/internal/diagnosis"
)

// RecommendRequest asks for a ranking from an explicit quiz result, for
// clients that run the quiz themselves.
type RecommendRequest struct {
	Result diagnosis.Result `json:"result"`
	// Count of zero means the configured default.
	Count int `json:"count" validate:"omitempty,min=1,max=1000"`
}

// ListSakesRequest is the query of GET /sakes.
type ListSakesRequest struct {
	Limit  int    `json:"limit" validate:"min=1,max=100"`
	Offset int    `json:"offset" validate:"min=0,max=1000000"`
	Class  string `json:"class" validate:"omitempty,max=32"`
	Style  string `json:"style" validate:"omitempty,max=32"`
}

// DishesRequest is the query of GET /dishes.
type DishesRequest struct {
	Cuisine string `json:"cuisine" validate:"cuisine"`
}

// SweetnessRequest is the query of GET /sweetness.
type SweetnessRequest struct {
	Degree  float64  `json:"degree" validate:"min=-30,max=30"`
	Acidity *float64 `json:"acidity" validate:"omitempty,min=0,max=10"`
}

// PurchaseRequest is the body of POST /purchases.
type PurchaseRequest struct {
	SakeID   string `json:"sake_id" validate:"required,max=64"`
	Referrer string `json:"referrer" validate:"omitempty,referrer"`
}

// SessionRecommendationsRequest is the query of the per-session ranking.
type SessionRecommendationsRequest struct {
	Count int `json:"count" validate:"omitempty,min=1,max=1000"`
}
