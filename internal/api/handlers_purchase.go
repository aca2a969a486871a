// Sakefinder - Sake Preference Quiz and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sakefinder

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/sakefinder/internal/models"
	"github.com/tomtom215/sakefinder/internal/purchase"
)

// Purchase records a click on a shop link and returns the validated URL.
func (h *Handler) Purchase(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req PurchaseRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	out, err := h.track(r, req)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondSuccess(w, r, http.StatusOK, models.PurchaseRedirect{
		EventID:     out.Event.ID,
		SakeID:      req.SakeID,
		RedirectURL: out.RedirectURL,
		Duplicate:   out.Duplicate,
	}, start)
}

// BuySake is the link form of Purchase: it records the click and answers
// with a 302 to the shop, for plain anchors in the browse pages.
func (h *Handler) BuySake(w http.ResponseWriter, r *http.Request) {
	req := PurchaseRequest{
		SakeID:   chi.URLParam(r, "id"),
		Referrer: r.URL.Query().Get("referrer"),
	}
	if req.Referrer == "" {
		req.Referrer = string(purchase.ReferrerBrowse)
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, r, http.StatusBadRequest, apiErr)
		return
	}

	out, err := h.track(r, req)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	http.Redirect(w, r, out.RedirectURL, http.StatusFound)
}

func (h *Handler) track(r *http.Request, req PurchaseRequest) (*purchase.Outcome, error) {
	return h.tracker.Track(r.Context(), purchase.Click{
		SakeID:    req.SakeID,
		Referrer:  purchase.Referrer(req.Referrer),
		ClientKey: clientKey(r),
	})
}

// PurchaseStats returns click totals, the most clicked sakes and the
// per-referrer breakdown.
func (h *Handler) PurchaseStats(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	stats, err := h.stats.Stats(r.Context())
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondSuccess(w, r, http.StatusOK, stats, start)
}

// ClearPurchaseStats drops every recorded click.
func (h *Handler) ClearPurchaseStats(w http.ResponseWriter, r *http.Request) {
	if err := h.stats.Clear(r.Context()); err != nil {
		respondDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
