// Sakefinder - Sake Preference Quiz and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sakefinder

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/sakefinder/internal/middleware"
)

// chiMiddleware adapts http.HandlerFunc middleware to Chi's func(http.Handler) http.Handler.
func chiMiddleware(mw func(http.HandlerFunc) http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return mw(next.ServeHTTP)
	}
}

// Router wires handlers and middleware into a chi tree.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware

	// adminRoutes exposes destructive maintenance endpoints such as
	// clearing purchase stats. Off in production.
	adminRoutes bool
}

// NewRouter creates a router. mw may be nil for defaults.
func NewRouter(handler *Handler, mw *ChiMiddleware, adminRoutes bool) *Router {
	if mw == nil {
		mw = NewChiMiddleware(nil)
	}
	return &Router{handler: handler, chiMiddleware: mw, adminRoutes: adminRoutes}
}

// SetupChi configures all HTTP routes.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// ========================
	// Global Middleware Stack
	// ========================
	r.Use(chiMiddleware(middleware.RequestID)) // X-Request-ID and logging context
	r.Use(router.chiMiddleware.RealIP())       // forwarded headers from trusted proxies only
	r.Use(AccessLog())
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS()) // global so OPTIONS preflight is answered

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		respondError(w, req, http.StatusNotFound, ErrCodeNotFound, "Route not found", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		respondError(w, req, http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed, "Method not allowed", nil)
	})

	r.Handle("/metrics", promhttp.Handler())

	h := router.handler
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())
		r.Use(chiMiddleware(middleware.PrometheusMetrics))

		r.Get("/health", h.Health)

		r.Route("/diagnosis", func(r chi.Router) {
			r.Get("/questions", h.DiagnosisQuestions)
			r.Post("/sessions", h.StartSession)
			r.Route("/sessions/{id}", func(r chi.Router) {
				r.Get("/", h.GetSession)
				r.Delete("/", h.DeleteSession)
				r.Post("/answers", h.AnswerSession)
				r.Post("/back", h.BackSession)
				r.Get("/recommendations", h.SessionRecommendations)
			})
		})

		r.Post("/recommendations", h.Recommend)

		r.Get("/sakes", h.ListSakes)
		r.Get("/sakes/{id}", h.GetSake)
		r.Get("/sakes/{id}/buy", h.BuySake)
		r.Get("/dishes", h.ListDishes)
		r.Get("/sweetness", h.Sweetness)

		r.Post("/purchases", h.Purchase)
		r.Get("/purchases/stats", h.PurchaseStats)
		if router.adminRoutes {
			r.Delete("/purchases/stats", h.ClearPurchaseStats)
		}
	})

	return r
}
