// Marquee - Movie Catalog Aggregation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"errors"
	"net/http"

	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/tmdb"
)

// statusForError maps a catalog error to an HTTP status and error code.
//
//	validation      400 VALIDATION_ERROR
//	not found       404 NOT_FOUND
//	circuit open    503 SERVICE_UNAVAILABLE
//	upstream        502 UPSTREAM_UNAVAILABLE
//	anything else   500 INTERNAL_ERROR
func statusForError(err error) (int, string) {
	if tmdb.IsCircuitOpen(err) {
		return http.StatusServiceUnavailable, ErrCodeServiceUnavailable
	}
	switch tmdb.KindOf(err) {
	case tmdb.KindValidation:
		return http.StatusBadRequest, ErrCodeValidation
	case tmdb.KindNotFound:
		return http.StatusNotFound, ErrCodeNotFound
	case tmdb.KindUpstreamUnavailable:
		return http.StatusBadGateway, ErrCodeUpstreamUnavailable
	default:
		return http.StatusInternalServerError, ErrCodeInternal
	}
}

// respondCatalogError writes the envelope for an error returned by the catalog.
func respondCatalogError(w http.ResponseWriter, r *http.Request, op string, err error) {
	status, code := statusForError(err)

	message := "Internal server error"
	var details map[string]interface{}
	var tmdbErr *tmdb.Error
	if errors.As(err, &tmdbErr) && status != http.StatusInternalServerError {
		message = tmdbErr.Message
		if tmdbErr.Field != "" {
			details = map[string]interface{}{"field": tmdbErr.Field}
		}
	}

	logger := logging.Ctx(r.Context())
	switch {
	case r.Context().Err() != nil:
		logger.Debug().Str("operation", op).Msg("Request canceled by client")
	case status >= http.StatusInternalServerError:
		event := logger.Error().Err(err).Str("operation", op).Str("code", code)
		if tmdbErr != nil && tmdbErr.Err != nil {
			event = event.AnErr("cause", tmdbErr.Err)
		}
		event.Msg("Catalog request failed")
	default:
		logger.Debug().Err(err).Str("operation", op).Str("code", code).Msg("Catalog request rejected")
	}

	respondError(w, r, status, code, message, details)
}
