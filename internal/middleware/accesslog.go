// Marquee - Movie Catalog Aggregation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package middleware

import (
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/tomtom215/marquee/internal/logging"
)

// DefaultSlowRequestThreshold is the latency above which a request is logged at warn.
const DefaultSlowRequestThreshold = 2 * time.Second

// AccessLog logs one line per completed request with the request ID attached.
// Server errors log at error, requests slower than slow at warn, the rest at debug.
func AccessLog(slow time.Duration) func(http.HandlerFunc) http.HandlerFunc {
	if slow <= 0 {
		slow = DefaultSlowRequestThreshold
	}
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next(ww, r)

			duration := time.Since(start)
			status := statusOf(ww)

			logger := logging.Ctx(r.Context())
			var event *zerolog.Event
			switch {
			case status >= http.StatusInternalServerError:
				event = logger.Error()
			case duration > slow:
				event = logger.Warn()
			default:
				event = logger.Debug()
			}

			event.
				Str("component", "http").
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Str("route", routePattern(r)).
				Int("status", status).
				Int("bytes", ww.BytesWritten()).
				Dur("duration", duration).
				Msg("Request completed")
		}
	}
}
