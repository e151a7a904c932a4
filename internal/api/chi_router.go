// Marquee - Movie Catalog Aggregation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/tomtom215/marquee/internal/middleware"
)

// Router wires handlers and middleware into a chi router.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
	slowRequest   time.Duration
}

// NewRouter creates a router. A nil mw uses DefaultChiMiddlewareConfig.
func NewRouter(handler *Handler, mw *ChiMiddleware) *Router {
	if mw == nil {
		mw = NewChiMiddleware(nil)
	}
	return &Router{
		handler:       handler,
		chiMiddleware: mw,
		slowRequest:   middleware.DefaultSlowRequestThreshold,
	}
}

// chiMiddleware adapts http.HandlerFunc middleware to Chi's func(http.Handler) http.Handler.
func chiMiddleware(mw func(http.HandlerFunc) http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return mw(next.ServeHTTP)
	}
}

// SetupChi configures all HTTP routes.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// ========================
	// Global Middleware Stack
	// ========================
	r.Use(chiMiddleware(middleware.RequestID))
	r.Use(chimiddleware.RealIP)
	r.Use(chiMiddleware(middleware.AccessLog(router.slowRequest)))
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS()) // global so OPTIONS preflight is answered

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, r, http.StatusNotFound, ErrCodeNotFound, "Route not found", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, r, http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed, "Method not allowed", nil)
	})

	// ========================
	// Health Endpoints
	// ========================
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitHealth())
		r.Use(APISecurityHeaders())
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
	})

	// ========================
	// Movie Catalog
	// ========================
	// Both mounts share one limiter so a client cannot double its quota.
	movieLimit := router.chiMiddleware.RateLimit()
	r.Route("/api/v1/movies", func(r chi.Router) {
		router.movieRoutes(r, movieLimit)
	})

	// Unversioned mount used by the web client: same handlers, success
	// bodies without the envelope.
	r.Route("/api/movies", func(r chi.Router) {
		r.Use(bareResponses)
		router.movieRoutes(r, movieLimit)
	})

	// ========================
	// Observability
	// ========================
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))
	r.Get("/api/docs", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/swagger/index.html", http.StatusMovedPermanently)
	})

	return r
}

// movieRoutes registers the catalog endpoints on r.
func (router *Router) movieRoutes(r chi.Router, limit func(http.Handler) http.Handler) {
	r.Use(limit)
	r.Use(APISecurityHeaders())
	r.Use(chiMiddleware(middleware.PrometheusMetrics))
	r.Use(chimiddleware.Compress(5, "application/json"))

	r.Get("/homepage", router.handler.HomePage)
	r.Get("/popular", router.handler.Popular)
	r.Get("/trending", router.handler.Trending)
	r.Get("/top-rated", router.handler.TopRated)
	r.Get("/now-playing", router.handler.NowPlaying)
	r.Get("/upcoming", router.handler.Upcoming)
	r.Get("/search", router.handler.Search)
	r.Get("/genres", router.handler.Genres)
	r.Get("/genre/{genreId}", router.handler.ByGenre)
	r.Get("/{id}", router.handler.Details)
}
