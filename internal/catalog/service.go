// Marquee - Movie Catalog Aggregation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package catalog is the movie catalog service the HTTP layer calls into.
//
// Every operation validates its parameters, calls the TMDB client, and
// rewrites relative image paths into absolute CDN URLs. GetHomePageData fans
// out four category fetches concurrently and is all-or-nothing: one failed
// fetch fails the whole aggregate.
//
// The service holds no mutable state; it is safe for concurrent use and
// identical calls against an unchanged provider return identical results.
package catalog

import (
	"context"
	"strings"

	"github.com/sourcegraph/conc/pool"

	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/metrics"
	"github.com/tomtom215/marquee/internal/models"
	"github.com/tomtom215/marquee/internal/tmdb"
)

// Service exposes the catalog operations.
type Service struct {
	client tmdb.MetadataClient
}

// NewService creates a catalog service over client.
func NewService(client tmdb.MetadataClient) *Service {
	return &Service{client: client}
}

// GetPopular returns a page of popular movies.
func (s *Service) GetPopular(ctx context.Context, page int) (*models.MoviePage, error) {
	return s.getCategory(ctx, "GetPopular", tmdb.CategoryPopular, page)
}

// GetTopRated returns a page of top-rated movies.
func (s *Service) GetTopRated(ctx context.Context, page int) (*models.MoviePage, error) {
	return s.getCategory(ctx, "GetTopRated", tmdb.CategoryTopRated, page)
}

// GetNowPlaying returns a page of movies in theaters.
func (s *Service) GetNowPlaying(ctx context.Context, page int) (*models.MoviePage, error) {
	return s.getCategory(ctx, "GetNowPlaying", tmdb.CategoryNowPlaying, page)
}

// GetUpcoming returns a page of upcoming movies.
func (s *Service) GetUpcoming(ctx context.Context, page int) (*models.MoviePage, error) {
	return s.getCategory(ctx, "GetUpcoming", tmdb.CategoryUpcoming, page)
}

func (s *Service) getCategory(ctx context.Context, op string, category tmdb.Category, page int) (*models.MoviePage, error) {
	if err := validatePage(op, page); err != nil {
		return nil, err
	}
	result, err := s.client.GetByCategory(ctx, category, page)
	if err != nil {
		return nil, err
	}
	return s.transformPage(result), nil
}

// GetTrending returns trending movies for the window ("" selects week).
func (s *Service) GetTrending(ctx context.Context, window tmdb.TimeWindow) (*models.MoviePage, error) {
	window, err := tmdb.ParseTimeWindow(string(window))
	if err != nil {
		return nil, err
	}
	result, err := s.client.GetTrending(ctx, window)
	if err != nil {
		return nil, err
	}
	return s.transformPage(result), nil
}

// SearchMovies searches by title. query must contain a non-space character
// and is forwarded to TMDB unchanged.
func (s *Service) SearchMovies(ctx context.Context, query string, page int) (*models.MoviePage, error) {
	if strings.TrimSpace(query) == "" {
		return nil, tmdb.NewValidationError("SearchMovies", "query", "query is required")
	}
	if err := validatePage("SearchMovies", page); err != nil {
		return nil, err
	}
	result, err := s.client.Search(ctx, query, page)
	if err != nil {
		return nil, err
	}
	return s.transformPage(result), nil
}

// GetMoviesByGenre returns a page of movies tagged with genreID.
func (s *Service) GetMoviesByGenre(ctx context.Context, genreID, page int) (*models.MoviePage, error) {
	if err := validateID("GetMoviesByGenre", "genreId", genreID); err != nil {
		return nil, err
	}
	if err := validatePage("GetMoviesByGenre", page); err != nil {
		return nil, err
	}
	result, err := s.client.GetByGenre(ctx, genreID, page)
	if err != nil {
		return nil, err
	}
	return s.transformPage(result), nil
}

// GetMovieDetails returns one movie with its production companies.
// A movie TMDB does not know is reported as tmdb.ErrNotFound.
func (s *Service) GetMovieDetails(ctx context.Context, id int) (*models.MovieDetails, error) {
	if err := validateID("GetMovieDetails", "id", id); err != nil {
		return nil, err
	}
	result, err := s.client.GetMovieDetails(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.transformDetails(result), nil
}

// GetGenres returns the genre list unmodified.
func (s *Service) GetGenres(ctx context.Context) ([]models.Genre, error) {
	return s.client.GetGenres(ctx)
}

// GetHomePageData builds the landing page aggregate from four concurrent
// fetches: trending (week), popular, top-rated and now-playing (page 1 each).
//
// All four fetches run to completion. If any fails, the first failure is
// returned and the other results are discarded. On success each row is capped
// at models.HomePageRowLimit and the hero is chosen by pickHero.
func (s *Service) GetHomePageData(ctx context.Context) (*models.HomePage, error) {
	var trending, popular, topRated, nowPlaying *models.MoviePage

	p := pool.New().WithErrors().WithFirstError()
	p.Go(func() (err error) {
		trending, err = s.client.GetTrending(ctx, tmdb.TimeWindowWeek)
		return err
	})
	p.Go(func() (err error) {
		popular, err = s.client.GetByCategory(ctx, tmdb.CategoryPopular, 1)
		return err
	})
	p.Go(func() (err error) {
		topRated, err = s.client.GetByCategory(ctx, tmdb.CategoryTopRated, 1)
		return err
	})
	p.Go(func() (err error) {
		nowPlaying, err = s.client.GetByCategory(ctx, tmdb.CategoryNowPlaying, 1)
		return err
	})

	err := p.Wait()
	metrics.RecordHomePageBuild(err)
	if err != nil {
		logging.Ctx(ctx).Warn().
			Str("component", "catalog").
			Str("kind", tmdb.KindOf(err).String()).
			Msg("Homepage fan-out failed; discarding partial results")
		return nil, err
	}

	home := &models.HomePage{
		Trending:   s.transformRow(trending),
		Popular:    s.transformRow(popular),
		TopRated:   s.transformRow(topRated),
		NowPlaying: s.transformRow(nowPlaying),
	}

	hero, ok := pickHero(home)
	if !ok {
		return nil, tmdb.NewNotFoundError("GetHomePageData", "no movie available for the homepage hero")
	}
	home.Hero = hero

	return home, nil
}

// pickHero returns the first trending movie, falling back to the first
// popular movie when trending is empty.
func pickHero(home *models.HomePage) (models.MovieSummary, bool) {
	if len(home.Trending) > 0 {
		return home.Trending[0], true
	}
	if len(home.Popular) > 0 {
		return home.Popular[0], true
	}
	return models.MovieSummary{}, false
}

func validatePage(op string, page int) error {
	if page < 1 {
		return tmdb.NewValidationError(op, "page", "page must be a positive integer")
	}
	return nil
}

func validateID(op, field string, id int) error {
	if id < 1 {
		return tmdb.NewValidationError(op, field, field+" must be a positive integer")
	}
	return nil
}
