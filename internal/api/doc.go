// Marquee - Movie Catalog Aggregation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package api provides the HTTP REST API layer for Marquee.

It exposes the catalog service as read-only JSON endpoints consumed by the
streaming frontend.

Key Components:

  - Router: chi route configuration and middleware stack
  - Handler: request handlers for the movie and health endpoints
  - Response formatting: standardized JSON envelope with metadata and ETags
  - Error handling: catalog error kinds mapped to HTTP status codes
  - Rate limiting: per-IP limits via go-chi/httprate
  - CORS: go-chi/cors with explicitly configured origins

Endpoints (/api/v1/):

  - health/live, health/ready
  - movies/homepage
  - movies/popular, movies/top-rated, movies/now-playing, movies/upcoming (?page=)
  - movies/trending (?timeWindow=day|week)
  - movies/search (?query=&page=)
  - movies/genres, movies/genre/{genreId} (?page=)
  - movies/{id}

The movie routes are mounted a second time under /api/movies for the web
client; there success bodies are written without the envelope.

Outside the API prefix the router serves /metrics (Prometheus) and
/swagger/* (OpenAPI UI).

Response Format:

All responses share the envelope:

	{
	  "status": "success" | "error",
	  "data": { ... },
	  "metadata": {"timestamp": "...", "request_id": "...", "query_time_ms": 12},
	  "error": {"code": "...", "message": "...", "details": { ... }}
	}

Error codes: VALIDATION_ERROR (400), NOT_FOUND (404), METHOD_NOT_ALLOWED (405),
RATE_LIMIT_EXCEEDED (429), INTERNAL_ERROR (500), UPSTREAM_UNAVAILABLE (502),
SERVICE_UNAVAILABLE (503, circuit breaker open).

Usage Example:

	svc := catalog.NewService(client)
	handler := api.NewHandler(svc, breaker, version)
	mw := api.NewChiMiddleware(api.ChiMiddlewareConfigFromSecurity(&cfg.Security))
	http.ListenAndServe(":3001", api.NewRouter(handler, mw).SetupChi())
*/
package api
