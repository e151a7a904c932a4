// Marquee - Movie Catalog Aggregation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"context"
	"time"

	"github.com/tomtom215/marquee/internal/models"
	"github.com/tomtom215/marquee/internal/tmdb"
)

// CatalogService is the catalog surface the handlers call.
// catalog.Service satisfies it.
type CatalogService interface {
	GetPopular(ctx context.Context, page int) (*models.MoviePage, error)
	GetTrending(ctx context.Context, window tmdb.TimeWindow) (*models.MoviePage, error)
	GetTopRated(ctx context.Context, page int) (*models.MoviePage, error)
	GetNowPlaying(ctx context.Context, page int) (*models.MoviePage, error)
	GetUpcoming(ctx context.Context, page int) (*models.MoviePage, error)
	SearchMovies(ctx context.Context, query string, page int) (*models.MoviePage, error)
	GetMoviesByGenre(ctx context.Context, genreID, page int) (*models.MoviePage, error)
	GetMovieDetails(ctx context.Context, id int) (*models.MovieDetails, error)
	GetGenres(ctx context.Context) ([]models.Genre, error)
	GetHomePageData(ctx context.Context) (*models.HomePage, error)
}

// BreakerStater reports the TMDB circuit breaker state.
// tmdb.CircuitBreakerClient satisfies it.
type BreakerStater interface {
	State() string
}

// Handler serves the catalog and health endpoints.
type Handler struct {
	catalog   CatalogService
	breaker   BreakerStater // nil when the breaker is disabled
	version   string
	startTime time.Time
}

// NewHandler creates a handler over catalog. breaker may be nil.
func NewHandler(catalog CatalogService, breaker BreakerStater, version string) *Handler {
	return &Handler{
		catalog:   catalog,
		breaker:   breaker,
		version:   version,
		startTime: time.Now(),
	}
}
