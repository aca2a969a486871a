// Sakefinder - Sake Preference Quiz and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sakefinder

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/sakefinder/internal/catalog"
	"github.com/tomtom215/sakefinder/internal/models"
	"github.com/tomtom215/sakefinder/internal/pairing"
	"github.com/tomtom215/sakefinder/internal/recommend"
	"github.com/tomtom215/sakefinder/internal/sweetness"
)

// ListSakes pages through the catalog in catalog order, optionally filtered
// by grade (class) and style. style accepts the Japanese label or its
// English name.
func (h *Handler) ListSakes(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	q := r.URL.Query()

	req := ListSakesRequest{
		Limit:  getIntParam(r, "limit", 20),
		Offset: getIntParam(r, "offset", 0),
		Class:  q.Get("class"),
		Style:  q.Get("style"),
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, r, http.StatusBadRequest, apiErr)
		return
	}

	var class catalog.SakeClass
	if req.Class != "" {
		c, err := catalog.ParseSakeClass(req.Class)
		if err != nil {
			respondError(w, r, http.StatusBadRequest, ErrCodeValidation, err.Error(), nil)
			return
		}
		class = c
	}
	var style pairing.Style
	if req.Style != "" {
		s, err := parseStyleParam(req.Style)
		if err != nil {
			respondError(w, r, http.StatusBadRequest, ErrCodeValidation, err.Error(), nil)
			return
		}
		style = s
	}

	c := h.catalog.Current()
	if c == nil {
		respondDomainError(w, r, recommend.ErrNoCatalog)
		return
	}

	matched := make([]catalog.Entry, 0, c.Len())
	for _, e := range c.All() {
		if class != "" && e.Class != class {
			continue
		}
		if style != "" && e.Style != style {
			continue
		}
		matched = append(matched, e)
	}

	list := models.SakeList{
		Version: c.Version(),
		Total:   len(matched),
		Limit:   req.Limit,
		Offset:  req.Offset,
		Items:   []catalog.Entry{},
	}
	if req.Offset < len(matched) {
		end := min(req.Offset+req.Limit, len(matched))
		list.Items = matched[req.Offset:end]
		list.HasMore = end < len(matched)
	}

	respondSuccess(w, r, http.StatusOK, list, start)
}

func parseStyleParam(s string) (pairing.Style, error) {
	if style, err := pairing.ParseStyle(s); err == nil {
		return style, nil
	}
	for _, tc := range pairing.TypeClasses {
		if tc.Style().English() == s {
			return tc.Style(), nil
		}
	}
	return "", errors.New("style must be one of: aromatic, light, rich, aged")
}

// GetSake returns one catalog entry with its derived labels.
func (h *Handler) GetSake(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	c := h.catalog.Current()
	if c == nil {
		respondDomainError(w, r, recommend.ErrNoCatalog)
		return
	}
	e, err := c.Get(chi.URLParam(r, "id"))
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	detail := models.SakeDetail{
		Entry:            e,
		ClassDescription: e.Class.Description(),
		SweetnessLabel:   sweetness.Classify(e.EffectiveSakeDegree(), e.EffectiveAcidity()).Level,
	}
	if e.Style != "" {
		detail.StyleName = e.Style.English()
	}
	respondSuccess(w, r, http.StatusOK, detail, start)
}

// ListDishes returns the dish rules of a cuisine, or all dishes when no
// cuisine is given. "various" has no dishes.
func (h *Handler) ListDishes(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req := DishesRequest{Cuisine: r.URL.Query().Get("cuisine")}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, r, http.StatusBadRequest, apiErr)
		return
	}

	cuisine := pairing.Cuisine(req.Cuisine)
	list := models.DishList{Dishes: []pairing.Rule{}}
	if cuisine == "" {
		list.Dishes = pairing.AllDishes()
	} else {
		list.Cuisine = cuisine
		list.CuisineName = pairing.CuisineName(cuisine)
		list.Description = pairing.CuisineDescription(cuisine)
		if dishes := pairing.Dishes(cuisine); dishes != nil {
			list.Dishes = dishes
		}
	}
	respondSuccess(w, r, http.StatusOK, list, start)
}

// SweetnessAnalysis is the payload of GET /sweetness.
type SweetnessAnalysis struct {
	SakeDegree float64             `json:"sake_degree"`
	Acidity    *float64            `json:"acidity,omitempty"`
	Judgment   sweetness.Judgment  `json:"judgment"`
	Analysis   *sweetness.Analysis `json:"analysis,omitempty"`
	Patterns   []sweetness.Pattern `json:"typical_patterns"`
}

// Sweetness classifies a sake-degree, adjusted by acidity when given.
func (h *Handler) Sweetness(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	degree, ok, err := getFloatParam(r, "degree")
	if err != nil || !ok {
		msg := "degree is required"
		if err != nil {
			msg = err.Error()
		}
		respondError(w, r, http.StatusBadRequest, ErrCodeValidation, msg, nil)
		return
	}
	req := SweetnessRequest{Degree: degree}

	acidity, ok, err := getFloatParam(r, "acidity")
	if err != nil {
		respondError(w, r, http.StatusBadRequest, ErrCodeValidation, err.Error(), nil)
		return
	}
	if ok {
		req.Acidity = &acidity
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, r, http.StatusBadRequest, apiErr)
		return
	}

	out := SweetnessAnalysis{
		SakeDegree: req.Degree,
		Acidity:    req.Acidity,
		Patterns:   sweetness.TypicalPatterns,
	}
	if req.Acidity != nil {
		a := sweetness.Analyze(req.Degree, *req.Acidity)
		out.Judgment = a.Adjusted
		out.Analysis = &a
	} else {
		out.Judgment = sweetness.ClassifyDegree(req.Degree)
	}
	respondSuccess(w, r, http.StatusOK, out, start)
}
