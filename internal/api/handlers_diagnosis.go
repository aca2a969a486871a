// Sakefinder - Sake Preference Quiz and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sakefinder

package api

import (
	"net/http"
	"sort"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/sakefinder/internal/diagnosis"
	"github.com/tomtom215/sakefinder/internal/logging"
	"github.com/tomtom215/sakefinder/internal/models"
	"github.com/tomtom215/sakefinder/internal/recommend"
	"github.com/tomtom215/sakefinder/internal/sessions"
)

// DiagnosisQuestions returns every question of the quiz, start question first.
func (h *Handler) DiagnosisQuestions(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	g := h.sessions.Graph()

	ids := make([]string, 0, len(g.Questions))
	for id := range g.Questions {
		if id != g.Start {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	list := models.QuestionList{Start: g.Start, Questions: make([]diagnosis.Question, 0, len(g.Questions))}
	if q, ok := g.Question(g.Start); ok {
		list.Questions = append(list.Questions, q)
	}
	for _, id := range ids {
		list.Questions = append(list.Questions, g.Questions[id])
	}

	respondSuccess(w, r, http.StatusOK, list, start)
}

// StartSession opens a new quiz session.
func (h *Handler) StartSession(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	st, err := h.sessions.Start(r.Context())
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	w.Header().Set("Location", "/api/v1/diagnosis/sessions/"+st.ID)
	respondSuccess(w, r, http.StatusCreated, sessionView(st, nil), start)
}

// GetSession returns the current question and progress of a session.
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	st, err := h.sessions.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondSuccess(w, r, http.StatusOK, sessionView(st, nil), start)
}

// DeleteSession discards a session. Unknown ids succeed too.
func (h *Handler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AnswerSession records the answer to the current question.
func (h *Handler) AnswerSession(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	id := chi.URLParam(r, "id")
	ctx := logging.ContextWithSessionID(r.Context(), id)

	var answer diagnosis.Answer
	if !decodeAndValidate(w, r, &answer) {
		return
	}

	st, err := h.sessions.Answer(ctx, id, answer)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondSuccess(w, r, http.StatusOK, sessionView(st, nil), start)
}

// BackSession undoes the last answer. The removed answer is returned so the
// client can pre-fill the question again.
func (h *Handler) BackSession(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	id := chi.URLParam(r, "id")

	st, undone, err := h.sessions.Back(logging.ContextWithSessionID(r.Context(), id), id)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondSuccess(w, r, http.StatusOK, sessionView(st, &undone), start)
}

// SessionRecommendations ranks the catalog for a completed session.
func (h *Handler) SessionRecommendations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	id := chi.URLParam(r, "id")

	req := SessionRecommendationsRequest{Count: getIntParam(r, "count", 0)}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, r, http.StatusBadRequest, apiErr)
		return
	}

	ctx := logging.ContextWithSessionID(r.Context(), id)
	st, err := h.sessions.Get(ctx, id)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	result, err := st.Session.Result()
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	resp, err := h.engine.Recommend(ctx, recommend.Request{
		Result:    result,
		Count:     req.Count,
		RequestID: logging.RequestIDFromContext(ctx),
	})
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondSuccess(w, r, http.StatusOK, resp, start)
}

func sessionView(st *sessions.State, undone *diagnosis.Answer) models.SessionView {
	view := models.SessionView{
		ID:        st.ID,
		Complete:  st.Session.Complete(),
		Progress:  st.Session.Progress(),
		Answers:   st.Session.Answers(),
		Undone:    undone,
		CreatedAt: st.CreatedAt,
		UpdatedAt: st.UpdatedAt,
	}
	if q, ok := st.Session.Current(); ok {
		view.Question = &q
	}
	if res, err := st.Session.Result(); err == nil {
		view.Result = &res
	}
	return view
}
