// Sakefinder - Sake Preference Quiz and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sakefinder

package api

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/tomtom215/sakefinder/internal/catalog"
	"github.com/tomtom215/sakefinder/internal/diagnosis"
	"github.com/tomtom215/sakefinder/internal/purchase"
	"github.com/tomtom215/sakefinder/internal/recommend"
	"github.com/tomtom215/sakefinder/internal/sessions"
)

func TestRealIP_OnlyFromTrustedProxies(t *testing.T) {
	t.Parallel()

	echo := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(clientKey(r)))
	})

	tests := []struct {
		name    string
		proxies []string
		remote  string
		want    string
	}{
		{"no proxies configured", nil, "10.0.0.5:4000", "10.0.0.5"},
		{"trusted cidr", []string{"10.0.0.0/8"}, "10.0.0.5:4000", "203.0.113.7"},
		{"trusted single address", []string{"10.0.0.5"}, "10.0.0.5:4000", "203.0.113.7"},
		{"untrusted peer", []string{"10.0.0.0/8"}, "198.51.100.2:4000", "198.51.100.2"},
		{"garbage entries ignored", []string{"not-an-ip", " "}, "10.0.0.5:4000", "10.0.0.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mw := NewChiMiddleware(&ChiMiddlewareConfig{TrustedProxies: tt.proxies, RateLimitDisabled: true})
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			req.Header.Set("X-Forwarded-For", "203.0.113.7")
			w := httptest.NewRecorder()

			mw.RealIP()(echo).ServeHTTP(w, req)

			if got := w.Body.String(); got != tt.want {
				t.Errorf("client = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRateLimit_RespondsWithEnvelope(t *testing.T) {
	t.Parallel()

	cfg := DefaultChiMiddlewareConfig()
	cfg.CORSAllowedOrigins = []string{"*"}
	cfg.RateLimitRequests = 2
	cfg.RateLimitWindow = time.Minute
	env := newTestEnv(t, envOptions{middleware: cfg})

	for i := 0; i < 2; i++ {
		w, _ := env.do(t, http.MethodGet, "/api/v1/health", nil)
		expectStatus(t, w, http.StatusOK)
	}
	w, resp := env.do(t, http.MethodGet, "/api/v1/health", nil)
	expectStatus(t, w, http.StatusTooManyRequests)
	if resp.Error == nil || resp.Error.Code != ErrCodeRateLimited {
		t.Errorf("error = %+v, want %s", resp.Error, ErrCodeRateLimited)
	}

	// metrics live outside the rate limited tree
	w, _ = env.do(t, http.MethodGet, "/metrics", nil)
	expectStatus(t, w, http.StatusOK)
}

func TestRateLimit_DisabledIsPassThrough(t *testing.T) {
	t.Parallel()

	mw := NewChiMiddleware(&ChiMiddlewareConfig{RateLimitDisabled: true, RateLimitRequests: 1, RateLimitWindow: time.Minute})
	h := mw.RateLimit()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		if w.Code != http.StatusNoContent {
			t.Fatalf("request %d: status = %d", i, w.Code)
		}
	}
}

func TestAPISecurityHeaders(t *testing.T) {
	t.Parallel()

	h := APISecurityHeaders()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	plain := httptest.NewRecorder()
	h.ServeHTTP(plain, httptest.NewRequest(http.MethodGet, "/", nil))
	for header, want := range map[string]string{
		"X-Content-Type-Options": "nosniff",
		"X-Frame-Options":        "DENY",
		"Referrer-Policy":        "strict-origin-when-cross-origin",
	} {
		if got := plain.Header().Get(header); got != want {
			t.Errorf("%s = %q, want %q", header, got, want)
		}
	}
	if plain.Header().Get("Strict-Transport-Security") != "" {
		t.Error("HSTS should not be sent over plain HTTP")
	}

	proxied := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-Proto", "https")
	h.ServeHTTP(proxied, req)
	if proxied.Header().Get("Strict-Transport-Security") == "" {
		t.Error("HSTS expected behind a TLS proxy")
	}

	direct := httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.TLS = &tls.ConnectionState{}
	h.ServeHTTP(direct, req)
	if direct.Header().Get("Strict-Transport-Security") == "" {
		t.Error("HSTS expected over TLS")
	}
}

func TestCORS_Preflight(t *testing.T) {
	t.Parallel()

	cfg := DefaultChiMiddlewareConfig()
	cfg.CORSAllowedOrigins = []string{"https://sake.example"}
	cfg.RateLimitDisabled = true
	env := newTestEnv(t, envOptions{middleware: cfg})

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/recommendations", nil)
	req.Header.Set("Origin", "https://sake.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	env.handler.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://sake.example" {
		t.Errorf("Access-Control-Allow-Origin = %q", got)
	}
}

func TestMapError(t *testing.T) {
	t.Parallel()

	wrap := func(err error) error { return fmt.Errorf("context: %w", err) }

	tests := []struct {
		err    error
		status int
		code   string
	}{
		{wrap(sessions.ErrSessionNotFound), http.StatusNotFound, ErrCodeNotFound},
		{wrap(catalog.ErrEntryNotFound), http.StatusNotFound, ErrCodeNotFound},
		{wrap(diagnosis.ErrUnknownQuestion), http.StatusBadRequest, ErrCodeInvalidAnswer},
		{wrap(diagnosis.ErrInvalidOption), http.StatusBadRequest, ErrCodeInvalidAnswer},
		{wrap(diagnosis.ErrScaleOutOfRange), http.StatusBadRequest, ErrCodeInvalidAnswer},
		{wrap(diagnosis.ErrUnexpectedQuestion), http.StatusConflict, ErrCodeConflict},
		{diagnosis.ErrAlreadyComplete, http.StatusConflict, ErrCodeConflict},
		{diagnosis.ErrNotComplete, http.StatusConflict, ErrCodeConflict},
		{diagnosis.ErrNothingToUndo, http.StatusConflict, ErrCodeConflict},
		{wrap(purchase.ErrInvalidReferrer), http.StatusBadRequest, ErrCodeValidation},
		{purchase.ErrRateLimited, http.StatusTooManyRequests, ErrCodeRateLimited},
		{wrap(purchase.ErrInvalidURL), http.StatusBadGateway, ErrCodeInvalidLink},
		{recommend.ErrNoCatalog, http.StatusServiceUnavailable, ErrCodeUnavailable},
		{context.DeadlineExceeded, http.StatusServiceUnavailable, ErrCodeUnavailable},
		{errors.New("disk on fire"), http.StatusInternalServerError, ErrCodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			t.Parallel()
			f := mapError(tt.err)
			if f.status != tt.status || f.code != tt.code {
				t.Errorf("mapError(%v) = %d %s, want %d %s", tt.err, f.status, f.code, tt.status, tt.code)
			}
		})
	}

	if f := mapError(errors.New("secret path /var/lib/x")); f.message != "Internal server error" {
		t.Errorf("unknown errors must not leak: %q", f.message)
	}
}

func TestSanitizeLogValue(t *testing.T) {
	t.Parallel()

	tests := []struct{ in, want string }{
		{"plain", "plain"},
		{"line\nbreak", "line\\x0abreak"},
		{"tab\there", "tab\\x09here"},
		{"日本酒", "日本酒"},
	}
	for _, tt := range tests {
		if got := sanitizeLogValue(tt.in); got != tt.want {
			t.Errorf("sanitizeLogValue(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGetIntParam(t *testing.T) {
	t.Parallel()

	tests := []struct {
		query string
		want  int
	}{
		{"", 7},
		{"?n=3", 3},
		{"?n=-2", -2},
		{"?n=abc", 7},
		{"?n=1.5", 7},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/"+tt.query, nil)
		if got := getIntParam(req, "n", 7); got != tt.want {
			t.Errorf("getIntParam(%q) = %d, want %d", tt.query, got, tt.want)
		}
	}
}
