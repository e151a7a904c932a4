// Marquee - Movie Catalog Aggregation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package models defines the movie catalog entities and the HTTP response envelope.
//
// Movie types mirror TMDB's JSON field names so the same structs decode provider
// payloads and encode API responses. Values are built per request and are never
// shared between requests; transformations copy rather than mutate.
package models
