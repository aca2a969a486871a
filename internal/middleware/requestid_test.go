// Sakefinder - Sake Preference Quiz and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sakefinder

package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/tomtom215/sakefinder/internal/logging"
)

func TestRequestID_GeneratesNewID(t *testing.T) {
	t.Parallel()

	var capturedID, correlationID string
	handler := RequestID(func(w http.ResponseWriter, r *http.Request) {
		capturedID = logging.RequestIDFromContext(r.Context())
		correlationID = logging.CorrelationIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	responseID := rec.Header().Get(RequestIDHeader)
	if _, err := uuid.Parse(responseID); err != nil {
		t.Errorf("response %s is not a UUID: %v", RequestIDHeader, err)
	}
	if capturedID != responseID {
		t.Errorf("context id %q != header id %q", capturedID, responseID)
	}
	if correlationID == "" {
		t.Error("expected a correlation id in context")
	}
}

func TestRequestID_IncomingHeader(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{"uuid", "6f1c2b9e-1d2a-4c7b-9a51-3c1b7e4d2f10", true},
		{"short token", "req_42.a", true},
		{"newline injection", "abc\nlevel=error", false},
		{"spaces", "abc def", false},
		{"too long", strings.Repeat("a", maxRequestIDLength+1), false},
		{"max length", strings.Repeat("a", maxRequestIDLength), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var captured string
			handler := RequestID(func(w http.ResponseWriter, r *http.Request) {
				captured = logging.RequestIDFromContext(r.Context())
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set(RequestIDHeader, tt.incoming)
			rec := httptest.NewRecorder()
			handler(rec, req)

			if got := captured == tt.incoming; got != tt.keep {
				t.Errorf("kept incoming id = %v, want %v (captured %q)", got, tt.keep, captured)
			}
			if rec.Header().Get(RequestIDHeader) != captured {
				t.Errorf("header %q != context %q", rec.Header().Get(RequestIDHeader), captured)
			}
		})
	}
}
