// Sakefinder - Sake Preference Quiz and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sakefinder

package models

import (
	"time"

	"github.com/tomtom215/sakefinder/internal/catalog"
	"github.com/tomtom215/sakefinder/internal/diagnosis"
	"github.com/tomtom215/sakefinder/internal/pairing"
)

// Envelope status values.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// APIResponse represents a standardized API response wrapper used by all HTTP endpoints.
//
// Example successful response:
//
//	{
//	  "status": "success",
//	  "data": {"items": [...]},
//	  "metadata": {"timestamp": "2026-03-01T12:00:00Z", "query_time_ms": 2, "request_id": "..."}
//	}
//
// Example error response:
//
//	{
//	  "status": "error",
//	  "data": null,
//	  "error": {"code": "NOT_FOUND", "message": "session not found"},
//	  "metadata": {"timestamp": "2026-03-01T12:00:00Z"}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata contains response metadata.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
	Cached      bool      `json:"cached,omitempty"`
	RequestID   string    `json:"request_id,omitempty"`
}

// APIError represents an error response with structured error details.
//
// Common error codes:
//   - VALIDATION_ERROR: request body or query failed validation
//   - INVALID_ANSWER: the answer does not fit the current question
//   - NOT_FOUND: unknown session or sake
//   - CONFLICT: the quiz is not in a state that allows the operation
//   - RATE_LIMIT_EXCEEDED: too many requests or clicks
//   - INTERNAL_ERROR: anything else
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// SessionView is a quiz session as returned to the client. Question is nil
// once the quiz is complete, and Result is only set then.
type SessionView struct {
	ID       string              `json:"id"`
	Complete bool                `json:"complete"`
	Progress diagnosis.Progress  `json:"progress"`
	Question *diagnosis.Question `json:"question,omitempty"`
	Answers  []diagnosis.Answer  `json:"answers"`
	Result   *diagnosis.Result   `json:"result,omitempty"`

	// Undone is the answer removed by a back step.
	Undone *diagnosis.Answer `json:"undone,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// QuestionList is the whole quiz graph in display form.
type QuestionList struct {
	Start     string               `json:"start"`
	Questions []diagnosis.Question `json:"questions"`
}

// SakeList is one page of the catalog.
type SakeList struct {
	Version string          `json:"version"`
	Total   int             `json:"total"`
	Limit   int             `json:"limit"`
	Offset  int             `json:"offset"`
	HasMore bool            `json:"has_more"`
	Items   []catalog.Entry `json:"items"`
}

// SakeDetail is one catalog entry with its derived labels.
type SakeDetail struct {
	catalog.Entry
	ClassDescription string `json:"class_description"`
	SweetnessLabel   string `json:"sweetness_label"`
	StyleName        string `json:"style_name,omitempty"`
}

// DishList is the dish rules available for a cuisine.
type DishList struct {
	Cuisine     pairing.Cuisine `json:"cuisine,omitempty"`
	CuisineName string          `json:"cuisine_name,omitempty"`
	Description string          `json:"description,omitempty"`
	Dishes      []pairing.Rule  `json:"dishes"`
}

// PurchaseRedirect is the validated shop link for a click.
type PurchaseRedirect struct {
	EventID     string `json:"event_id"`
	SakeID      string `json:"sake_id"`
	RedirectURL string `json:"redirect_url"`
	Duplicate   bool   `json:"duplicate"`
}

// HealthStatus is the liveness payload.
type HealthStatus struct {
	Status         string  `json:"status"`
	Version        string  `json:"version"`
	CatalogVersion string  `json:"catalog_version"`
	CatalogEntries int     `json:"catalog_entries"`
	ActiveSessions int     `json:"active_sessions"`
	EventBreaker   string  `json:"event_breaker,omitempty"`
	Uptime         float64 `json:"uptime_seconds"`
}
