// Sakefinder - Sake Preference Quiz and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sakefinder

package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/tomtom215/sakefinder/internal/catalog"
	"github.com/tomtom215/sakefinder/internal/diagnosis"
	"github.com/tomtom215/sakefinder/internal/purchase"
	"github.com/tomtom215/sakefinder/internal/recommend"
	"github.com/tomtom215/sakefinder/internal/sessions"
)

// Error codes used in APIError.Code.
const (
	ErrCodeValidation       = "VALIDATION_ERROR"
	ErrCodeInvalidBody      = "INVALID_BODY"
	ErrCodeInvalidAnswer    = "INVALID_ANSWER"
	ErrCodeNotFound         = "NOT_FOUND"
	ErrCodeConflict         = "CONFLICT"
	ErrCodeRateLimited      = "RATE_LIMIT_EXCEEDED"
	ErrCodeInvalidLink      = "INVALID_PURCHASE_LINK"
	ErrCodeUnavailable      = "SERVICE_UNAVAILABLE"
	ErrCodeInternal         = "INTERNAL_ERROR"
	ErrCodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
)

// apiFailure is how a domain error is presented to the client.
type apiFailure struct {
	status  int
	code    string
	message string
}

// mapError translates a domain error into a status, code and client-safe
// message. Messages of known errors are passed through; unknown errors get
// a generic message so internals never leak.
func mapError(err error) apiFailure {
	switch {
	case errors.Is(err, sessions.ErrSessionNotFound),
		errors.Is(err, catalog.ErrEntryNotFound):
		return apiFailure{http.StatusNotFound, ErrCodeNotFound, err.Error()}

	case errors.Is(err, diagnosis.ErrUnknownQuestion),
		errors.Is(err, diagnosis.ErrInvalidOption),
		errors.Is(err, diagnosis.ErrScaleOutOfRange):
		return apiFailure{http.StatusBadRequest, ErrCodeInvalidAnswer, err.Error()}

	case errors.Is(err, diagnosis.ErrUnexpectedQuestion),
		errors.Is(err, diagnosis.ErrAlreadyComplete),
		errors.Is(err, diagnosis.ErrNotComplete),
		errors.Is(err, diagnosis.ErrNothingToUndo):
		return apiFailure{http.StatusConflict, ErrCodeConflict, err.Error()}

	case errors.Is(err, purchase.ErrInvalidReferrer):
		return apiFailure{http.StatusBadRequest, ErrCodeValidation, err.Error()}

	case errors.Is(err, purchase.ErrRateLimited):
		return apiFailure{http.StatusTooManyRequests, ErrCodeRateLimited, err.Error()}

	// the catalog carries a link outside the allow-list; not the client's fault
	case errors.Is(err, purchase.ErrInvalidURL):
		return apiFailure{http.StatusBadGateway, ErrCodeInvalidLink, "Purchase link for this sake is unavailable"}

	case errors.Is(err, recommend.ErrNoCatalog),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled):
		return apiFailure{http.StatusServiceUnavailable, ErrCodeUnavailable, "Service temporarily unavailable"}

	default:
		return apiFailure{http.StatusInternalServerError, ErrCodeInternal, "Internal server error"}
	}
}

// respondDomainError writes err through mapError.
func respondDomainError(w http.ResponseWriter, r *http.Request, err error) {
	f := mapError(err)
	respondError(w, r, f.status, f.code, f.message, err)
}
