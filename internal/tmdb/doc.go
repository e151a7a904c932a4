// Marquee - Movie Catalog Aggregation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package tmdb is the client for The Movie Database API.
//
// Client issues the HTTP requests; CircuitBreakerClient wraps any
// MetadataClient with a sony/gobreaker circuit breaker. Both return
// untransformed payloads and classified *Error values: transport failures,
// timeouts, redirect overflow, non-2xx responses and malformed JSON all become
// KindUpstreamUnavailable, while a 404 on a movie lookup becomes KindNotFound.
//
// Requests are never retried and responses are never cached.
package tmdb
