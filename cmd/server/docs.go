// Marquee - Movie Catalog Aggregation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package main is the entry point for the Marquee server, which aggregates
// movie catalog data from The Movie Database (TMDB) for a streaming-style frontend.
//
// Startup order:
//
//  1. Configuration: optional .env, then defaults, config file and environment (Koanf v2)
//  2. Logging: zerolog, optionally teed into a rotated file
//  3. TMDB client, wrapped in a circuit breaker unless disabled
//  4. Catalog service and HTTP router
//  5. Supervisor tree running the HTTP server
//
// SIGINT and SIGTERM cancel the root context; the HTTP server then drains
// in-flight requests before the process exits.
//
// # Example Usage
//
//	export TMDB_API_KEY=...
//	./marquee
//	curl http://localhost:3001/api/v1/movies/homepage
//
// @title Marquee API
// @version 1.0
// @description Movie catalog aggregation API backed by The Movie Database (TMDB).
// @description
// @description ## Images
// @description
// @description Poster, backdrop and logo paths are absolute CDN URLs. Posters and logos use
// @description the w500 size, backdrops w1280. A movie without an image has a null path.
// @description
// @description ## Web Client Mount
// @description
// @description Every /movies route is also served under /api/movies with the bare payload
// @description (no envelope) for the original web client. Errors keep the envelope.
// @description
// @description ## Rate Limiting
// @description
// @description Default rate limit: 100 requests per minute per IP address.
// @description
// @description ## Error Responses
// @description
// @description All error responses follow this format:
// @description ```json
// @description {
// @description   "status": "error",
// @description   "data": null,
// @description   "error": {
// @description     "code": "UPSTREAM_UNAVAILABLE",
// @description     "message": "movie data provider is unavailable"
// @description   },
// @description   "metadata": {
// @description     "timestamp": "2026-03-01T12:34:56Z",
// @description     "request_id": "..."
// @description   }
// @description }
// @description ```
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/marquee/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:3001
// @BasePath /api/v1
// @schemes http https
//
// @tag.name Movies
// @tag.description Movie lists, search, genres and details
//
// @tag.name Health
// @tag.description Kubernetes liveness and readiness probes
package main
