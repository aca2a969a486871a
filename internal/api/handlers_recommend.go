// Sakefinder - Sake Preference Quiz and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sakefinder

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/sakefinder/internal/logging"
	"github.com/tomtom215/sakefinder/internal/recommend"
	"github.com/tomtom215/sakefinder/internal/taste"
)

// Recommend ranks the catalog for an explicit quiz result.
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req RecommendRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	// callers may send raw scores; the engine expects the 1-10 scale
	t := req.Result.Taste
	req.Result.Taste = taste.New(t.Sweetness, t.Richness, t.Acidity, t.Aroma)

	resp, err := h.engine.Recommend(r.Context(), recommend.Request{
		Result:    req.Result,
		Count:     req.Count,
		RequestID: logging.RequestIDFromContext(r.Context()),
	})
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondSuccess(w, r, http.StatusOK, resp, start)
}
