// Marquee - Movie Catalog Aggregation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/marquee/internal/models"
	"github.com/tomtom215/marquee/internal/tmdb"
)

// HomePage returns the landing page aggregate
//
// @Summary Get homepage data
// @Description Returns a hero movie and up to 20 movies each of trending (week), popular, top-rated and now-playing. All four lists are fetched concurrently; if any fetch fails the whole request fails.
// @Tags Movies
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.HomePage} "Homepage data"
// @Failure 502 {object} models.APIResponse "TMDB unavailable"
// @Failure 503 {object} models.APIResponse "TMDB circuit breaker open"
// @Router /movies/homepage [get]
func (h *Handler) HomePage(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	home, err := h.catalog.GetHomePageData(r.Context())
	if err != nil {
		respondCatalogError(w, r, "GetHomePageData", err)
		return
	}
	respondSuccess(w, r, start, home)
}

// Popular returns a page of popular movies
//
// @Summary Get popular movies
// @Tags Movies
// @Produce json
// @Param page query int false "Page number (default 1)" minimum(1)
// @Success 200 {object} models.APIResponse{data=models.MoviePage} "Popular movies"
// @Failure 400 {object} models.APIResponse "Invalid page"
// @Failure 502 {object} models.APIResponse "TMDB unavailable"
// @Router /movies/popular [get]
func (h *Handler) Popular(w http.ResponseWriter, r *http.Request) {
	h.servePage(w, r, "GetPopular", h.catalog.GetPopular)
}

// TopRated returns a page of top-rated movies
//
// @Summary Get top-rated movies
// @Tags Movies
// @Produce json
// @Param page query int false "Page number (default 1)" minimum(1)
// @Success 200 {object} models.APIResponse{data=models.MoviePage} "Top-rated movies"
// @Failure 400 {object} models.APIResponse "Invalid page"
// @Failure 502 {object} models.APIResponse "TMDB unavailable"
// @Router /movies/top-rated [get]
func (h *Handler) TopRated(w http.ResponseWriter, r *http.Request) {
	h.servePage(w, r, "GetTopRated", h.catalog.GetTopRated)
}

// NowPlaying returns a page of movies currently in theaters
//
// @Summary Get now-playing movies
// @Tags Movies
// @Produce json
// @Param page query int false "Page number (default 1)" minimum(1)
// @Success 200 {object} models.APIResponse{data=models.MoviePage} "Now-playing movies"
// @Failure 400 {object} models.APIResponse "Invalid page"
// @Failure 502 {object} models.APIResponse "TMDB unavailable"
// @Router /movies/now-playing [get]
func (h *Handler) NowPlaying(w http.ResponseWriter, r *http.Request) {
	h.servePage(w, r, "GetNowPlaying", h.catalog.GetNowPlaying)
}

// Upcoming returns a page of upcoming movies
//
// @Summary Get upcoming movies
// @Tags Movies
// @Produce json
// @Param page query int false "Page number (default 1)" minimum(1)
// @Success 200 {object} models.APIResponse{data=models.MoviePage} "Upcoming movies"
// @Failure 400 {object} models.APIResponse "Invalid page"
// @Failure 502 {object} models.APIResponse "TMDB unavailable"
// @Router /movies/upcoming [get]
func (h *Handler) Upcoming(w http.ResponseWriter, r *http.Request) {
	h.servePage(w, r, "GetUpcoming", h.catalog.GetUpcoming)
}

func (h *Handler) servePage(w http.ResponseWriter, r *http.Request, op string,
	fetch func(ctx context.Context, page int) (*models.MoviePage, error)) {
	start := time.Now()

	page, apiErr := queryInt(r, "page", defaultPage)
	if apiErr != nil {
		respondValidationError(w, r, apiErr)
		return
	}
	req := PageRequest{Page: page}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidationError(w, r, apiErr)
		return
	}

	result, err := fetch(r.Context(), req.Page)
	if err != nil {
		respondCatalogError(w, r, op, err)
		return
	}
	respondSuccess(w, r, start, result)
}

// Trending returns trending movies
//
// @Summary Get trending movies
// @Tags Movies
// @Produce json
// @Param timeWindow query string false "Trending window" Enums(day, week) default(week)
// @Success 200 {object} models.APIResponse{data=models.MoviePage} "Trending movies"
// @Failure 400 {object} models.APIResponse "Invalid time window"
// @Failure 502 {object} models.APIResponse "TMDB unavailable"
// @Router /movies/trending [get]
func (h *Handler) Trending(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req := TrendingRequest{TimeWindow: r.URL.Query().Get("timeWindow")}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidationError(w, r, apiErr)
		return
	}

	result, err := h.catalog.GetTrending(r.Context(), tmdb.TimeWindow(req.TimeWindow))
	if err != nil {
		respondCatalogError(w, r, "GetTrending", err)
		return
	}
	respondSuccess(w, r, start, result)
}

// Search searches movies by title
//
// @Summary Search movies
// @Tags Movies
// @Produce json
// @Param query query string true "Search text"
// @Param page query int false "Page number (default 1)" minimum(1)
// @Success 200 {object} models.APIResponse{data=models.MoviePage} "Matching movies"
// @Failure 400 {object} models.APIResponse "Missing query or invalid page"
// @Failure 502 {object} models.APIResponse "TMDB unavailable"
// @Router /movies/search [get]
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	page, apiErr := queryInt(r, "page", defaultPage)
	if apiErr != nil {
		respondValidationError(w, r, apiErr)
		return
	}
	req := SearchRequest{Query: r.URL.Query().Get("query"), Page: page}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidationError(w, r, apiErr)
		return
	}

	result, err := h.catalog.SearchMovies(r.Context(), req.Query, req.Page)
	if err != nil {
		respondCatalogError(w, r, "SearchMovies", err)
		return
	}
	respondSuccess(w, r, start, result)
}

// ByGenre returns movies tagged with a genre
//
// @Summary Get movies by genre
// @Tags Movies
// @Produce json
// @Param genreId path int true "TMDB genre ID"
// @Param page query int false "Page number (default 1)" minimum(1)
// @Success 200 {object} models.APIResponse{data=models.MoviePage} "Movies in genre"
// @Failure 400 {object} models.APIResponse "Invalid genre ID or page"
// @Failure 502 {object} models.APIResponse "TMDB unavailable"
// @Router /movies/genre/{genreId} [get]
func (h *Handler) ByGenre(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	genreID, apiErr := pathInt(r, "genreId")
	if apiErr != nil {
		respondValidationError(w, r, apiErr)
		return
	}
	page, apiErr := queryInt(r, "page", defaultPage)
	if apiErr != nil {
		respondValidationError(w, r, apiErr)
		return
	}
	req := GenreRequest{GenreID: genreID, Page: page}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidationError(w, r, apiErr)
		return
	}

	result, err := h.catalog.GetMoviesByGenre(r.Context(), req.GenreID, req.Page)
	if err != nil {
		respondCatalogError(w, r, "GetMoviesByGenre", err)
		return
	}
	respondSuccess(w, r, start, result)
}

// Genres returns the movie genre list
//
// @Summary List movie genres
// @Tags Movies
// @Produce json
// @Success 200 {object} models.APIResponse{data=[]models.Genre} "Genres"
// @Failure 502 {object} models.APIResponse "TMDB unavailable"
// @Router /movies/genres [get]
func (h *Handler) Genres(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	genres, err := h.catalog.GetGenres(r.Context())
	if err != nil {
		respondCatalogError(w, r, "GetGenres", err)
		return
	}
	respondSuccess(w, r, start, genres)
}

// Details returns one movie
//
// @Summary Get movie details
// @Tags Movies
// @Produce json
// @Param id path int true "TMDB movie ID"
// @Success 200 {object} models.APIResponse{data=models.MovieDetails} "Movie details"
// @Failure 400 {object} models.APIResponse "Invalid movie ID"
// @Failure 404 {object} models.APIResponse "Movie not found"
// @Failure 502 {object} models.APIResponse "TMDB unavailable"
// @Router /movies/{id} [get]
func (h *Handler) Details(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	id, apiErr := pathInt(r, "id")
	if apiErr != nil {
		respondValidationError(w, r, apiErr)
		return
	}
	req := MovieRequest{ID: id}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidationError(w, r, apiErr)
		return
	}

	details, err := h.catalog.GetMovieDetails(r.Context(), req.ID)
	if err != nil {
		respondCatalogError(w, r, "GetMovieDetails", err)
		return
	}
	respondSuccess(w, r, start, details)
}
