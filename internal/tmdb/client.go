// Marquee - Movie Catalog Aggregation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
client.go - TMDB REST API Client

This file implements the client for The Movie Database v3 API. It is the only
code that talks to the provider: it injects the api_key credential, maps
catalog operations onto TMDB endpoints, and classifies every failure into the
ErrorKind taxonomy before returning.

API Reference: https://developer.themoviedb.org/reference/intro/getting-started
*/

package tmdb

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/tomtom215/marquee/internal/config"
	"github.com/tomtom215/marquee/internal/models"
)

// MetadataClient defines the TMDB operations the catalog depends on.
// Both Client and CircuitBreakerClient implement this interface.
//
// Returned payloads are untransformed: image fields hold TMDB's relative paths.
type MetadataClient interface {
	GetByCategory(ctx context.Context, category Category, page int) (*models.MoviePage, error)
	GetTrending(ctx context.Context, window TimeWindow) (*models.MoviePage, error)
	GetMovieDetails(ctx context.Context, id int) (*models.MovieDetails, error)
	Search(ctx context.Context, query string, page int) (*models.MoviePage, error)
	GetByGenre(ctx context.Context, genreID, page int) (*models.MoviePage, error)
	GetGenres(ctx context.Context) ([]models.Genre, error)
	BuildImageURL(path *string, size ImageSize) *string
}

// Ensure Client implements MetadataClient
var _ MetadataClient = (*Client)(nil)

// Category is a paginated TMDB movie list.
type Category string

const (
	CategoryPopular    Category = "popular"
	CategoryTopRated   Category = "top-rated"
	CategoryNowPlaying Category = "now-playing"
	CategoryUpcoming   Category = "upcoming"
)

// categoryRoutes maps categories to TMDB endpoints.
var categoryRoutes = map[Category]string{
	CategoryPopular:    "/movie/popular",
	CategoryTopRated:   "/movie/top_rated",
	CategoryNowPlaying: "/movie/now_playing",
	CategoryUpcoming:   "/movie/upcoming",
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	_, ok := categoryRoutes[c]
	return ok
}

// TimeWindow selects the trending period.
type TimeWindow string

const (
	TimeWindowDay  TimeWindow = "day"
	TimeWindowWeek TimeWindow = "week"
)

// ParseTimeWindow parses a trending window. The empty string selects week.
func ParseTimeWindow(s string) (TimeWindow, error) {
	switch TimeWindow(strings.ToLower(strings.TrimSpace(s))) {
	case "", TimeWindowWeek:
		return TimeWindowWeek, nil
	case TimeWindowDay:
		return TimeWindowDay, nil
	default:
		return "", NewValidationError("GetTrending", "timeWindow", "timeWindow must be one of: day, week")
	}
}

// Client provides access to the TMDB v3 API.
// It is safe for concurrent use; all fields are read-only after construction.
type Client struct {
	baseURL      string
	imageBaseURL string
	apiKey       string
	httpClient   *http.Client
}

// NewClient creates a TMDB client from configuration.
//
// The credential is resolved once here. A missing API key or malformed base
// URL returns a KindConfiguration error and the client must not be used.
func NewClient(cfg *config.TMDBConfig) (*Client, error) {
	if cfg == nil || strings.TrimSpace(cfg.APIKey) == "" {
		return nil, newConfigurationError("TMDB_API_KEY is required")
	}

	baseURL := strings.TrimSuffix(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = config.DefaultTMDBBaseURL
	}
	if u, err := url.Parse(baseURL); err != nil || u.Host == "" {
		return nil, newConfigurationError(fmt.Sprintf("TMDB_BASE_URL is invalid: %q", cfg.BaseURL))
	}

	imageBaseURL := strings.TrimSuffix(cfg.ImageBaseURL, "/")
	if imageBaseURL == "" {
		imageBaseURL = config.DefaultTMDBImageBaseURL
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		return nil, newConfigurationError("TMDB_TIMEOUT must be positive")
	}

	return &Client{
		baseURL:      baseURL,
		imageBaseURL: imageBaseURL,
		apiKey:       cfg.APIKey,
		httpClient: &http.Client{
			Timeout:       timeout,
			CheckRedirect: redirectPolicy(cfg.MaxRedirects),
		},
	}, nil
}

// GetByCategory retrieves one page of a category list.
func (c *Client) GetByCategory(ctx context.Context, category Category, page int) (*models.MoviePage, error) {
	if !category.Valid() {
		return nil, NewValidationError("GetByCategory", "category", fmt.Sprintf("unknown category %q", category))
	}
	req := newAPIRequest("GetByCategory", categoryRoutes[category]).addPage(page)
	return getJSON[models.MoviePage](ctx, c, req)
}

// GetTrending retrieves trending movies for the window. TMDB does not
// paginate this call from the catalog's point of view; no page is sent.
func (c *Client) GetTrending(ctx context.Context, window TimeWindow) (*models.MoviePage, error) {
	if window == "" {
		window = TimeWindowWeek
	}
	if window != TimeWindowDay && window != TimeWindowWeek {
		return nil, NewValidationError("GetTrending", "timeWindow", "timeWindow must be one of: day, week")
	}
	req := newAPIRequest("GetTrending", "/trending/movie/{window}").
		withPath("/trending/movie/" + string(window))
	return getJSON[models.MoviePage](ctx, c, req)
}

// GetMovieDetails retrieves the full record for a movie.
// A TMDB 404 is returned as KindNotFound.
func (c *Client) GetMovieDetails(ctx context.Context, id int) (*models.MovieDetails, error) {
	if id < 1 {
		return nil, NewValidationError("GetMovieDetails", "id", "id must be a positive integer")
	}
	req := newAPIRequest("GetMovieDetails", "/movie/{id}").
		withPath("/movie/" + strconv.Itoa(id)).
		asLookup()
	return getJSON[models.MovieDetails](ctx, c, req)
}

// Search searches movies by title. The query is forwarded verbatim.
func (c *Client) Search(ctx context.Context, query string, page int) (*models.MoviePage, error) {
	if query == "" {
		return nil, NewValidationError("Search", "query", "query is required")
	}
	req := newAPIRequest("Search", "/search/movie").
		addParam("query", query).
		addPage(page)
	return getJSON[models.MoviePage](ctx, c, req)
}

// GetByGenre lists movies in a genre through the discover endpoint.
func (c *Client) GetByGenre(ctx context.Context, genreID, page int) (*models.MoviePage, error) {
	if genreID < 1 {
		return nil, NewValidationError("GetByGenre", "genreId", "genreId must be a positive integer")
	}
	req := newAPIRequest("GetByGenre", "/discover/movie").
		addParam("with_genres", strconv.Itoa(genreID)).
		addPage(page)
	return getJSON[models.MoviePage](ctx, c, req)
}

// GetGenres retrieves the movie genre list.
func (c *Client) GetGenres(ctx context.Context) ([]models.Genre, error) {
	list, err := getJSON[models.GenreList](ctx, c, newAPIRequest("GetGenres", "/genre/movie/list"))
	if err != nil {
		return nil, err
	}
	if list.Genres == nil {
		return []models.Genre{}, nil
	}
	return list.Genres, nil
}

// BuildImageURL builds an absolute image URL on the configured CDN origin.
func (c *Client) BuildImageURL(path *string, size ImageSize) *string {
	return BuildImageURL(c.imageBaseURL, path, size)
}
