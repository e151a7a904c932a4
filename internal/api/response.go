// Marquee - Movie Catalog Aggregation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"context"
	"fmt"
	"hash/fnv"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/models"
)

// Error codes written in the envelope's error.code field.
const (
	ErrCodeValidation          = "VALIDATION_ERROR"
	ErrCodeNotFound            = "NOT_FOUND"
	ErrCodeUpstreamUnavailable = "UPSTREAM_UNAVAILABLE"
	ErrCodeServiceUnavailable  = "SERVICE_UNAVAILABLE"
	ErrCodeRateLimited         = "RATE_LIMIT_EXCEEDED"
	ErrCodeMethodNotAllowed    = "METHOD_NOT_ALLOWED"
	ErrCodeInternal            = "INTERNAL_ERROR"
)

// successCacheControl makes clients revalidate with If-None-Match on every use.
// Shared caches may store the body but never serve it without asking.
const successCacheControl = "no-cache"

// bareResponseKey marks requests served on the unversioned web-client mount.
type bareResponseKey struct{}

// bareResponses writes success bodies without the envelope for routes mounted
// for the original web client. Error responses keep the envelope.
func bareResponses(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), bareResponseKey{}, true)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func isBareResponse(r *http.Request) bool {
	bare, _ := r.Context().Value(bareResponseKey{}).(bool)
	return bare
}

// sanitizeLogValue escapes control characters so client input cannot forge log lines.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			fmt.Fprintf(&result, "\\x%02x", r)
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

func newMetadata(r *http.Request, start time.Time) models.Metadata {
	return models.Metadata{
		Timestamp:   time.Now().UTC(),
		RequestID:   logging.RequestIDFromContext(r.Context()),
		QueryTimeMS: time.Since(start).Milliseconds(),
	}
}

// respondSuccess writes data in a success envelope. The ETag covers data only,
// so a matching If-None-Match yields 304 even though the envelope timestamp changes.
func respondSuccess(w http.ResponseWriter, r *http.Request, start time.Time, data interface{}) {
	payload, err := json.Marshal(data)
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to marshal response data")
		respondError(w, r, http.StatusInternalServerError, ErrCodeInternal, "Internal server error", nil)
		return
	}

	etag := generateETag(payload)
	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", successCacheControl)
	w.Header().Set("Vary", "Accept-Encoding")

	if match := r.Header.Get("If-None-Match"); match != "" && match == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	if isBareResponse(r) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(payload); err != nil {
			logging.Ctx(r.Context()).Debug().Err(err).Msg("Failed to write JSON response")
		}
		return
	}

	writeEnvelope(w, r, http.StatusOK, &models.APIResponse{
		Status:   "success",
		Data:     json.RawMessage(payload),
		Metadata: newMetadata(r, start),
	})
}

// respondError writes an error envelope. Messages are client-safe; provider
// detail is logged where the failure happened.
func respondError(w http.ResponseWriter, r *http.Request, status int, code, message string, details map[string]interface{}) {
	w.Header().Set("Cache-Control", "no-store")
	writeEnvelope(w, r, status, &models.APIResponse{
		Status:   "error",
		Data:     nil,
		Metadata: newMetadata(r, time.Now()),
		Error: &models.APIError{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

func writeEnvelope(w http.ResponseWriter, r *http.Request, status int, response *models.APIResponse) {
	body, err := json.Marshal(response)
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		logging.Ctx(r.Context()).Debug().Err(err).Msg("Failed to write JSON response")
	}
}

// generateETag returns a quoted FNV-1a hash of data.
func generateETag(data []byte) string {
	h := fnv.New64a()
	_, _ = h.Write(data)
	return fmt.Sprintf(`"%x"`, h.Sum64())
}
