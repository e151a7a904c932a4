// Marquee - Movie Catalog Aggregation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package catalog

import (
	"github.com/tomtom215/marquee/internal/models"
	"github.com/tomtom215/marquee/internal/tmdb"
)

// The transforms below build new values and never write through their
// arguments; provider payloads stay untouched.

func (s *Service) transformMovie(m models.MovieSummary) models.MovieSummary {
	out := m
	out.PosterPath = s.client.BuildImageURL(m.PosterPath, tmdb.ImageSizeDefault)
	out.BackdropPath = s.client.BuildImageURL(m.BackdropPath, tmdb.ImageSizeBackdrop)
	out.GenreIDs = cloneInts(m.GenreIDs)
	return out
}

func (s *Service) transformMovies(movies []models.MovieSummary) []models.MovieSummary {
	out := make([]models.MovieSummary, len(movies))
	for i := range movies {
		out[i] = s.transformMovie(movies[i])
	}
	return out
}

func (s *Service) transformPage(page *models.MoviePage) *models.MoviePage {
	return &models.MoviePage{
		Page:         page.Page,
		Results:      s.transformMovies(page.Results),
		TotalPages:   page.TotalPages,
		TotalResults: page.TotalResults,
	}
}

// transformRow transforms at most models.HomePageRowLimit movies of page.
func (s *Service) transformRow(page *models.MoviePage) []models.MovieSummary {
	movies := page.Results
	if len(movies) > models.HomePageRowLimit {
		movies = movies[:models.HomePageRowLimit]
	}
	return s.transformMovies(movies)
}

func (s *Service) transformDetails(d *models.MovieDetails) *models.MovieDetails {
	out := *d
	out.MovieSummary = s.transformMovie(d.MovieSummary)

	out.Genres = append([]models.Genre(nil), d.Genres...)
	if len(out.GenreIDs) == 0 && len(d.Genres) > 0 {
		out.GenreIDs = make([]int, len(d.Genres))
		for i, g := range d.Genres {
			out.GenreIDs[i] = g.ID
		}
	}

	out.ProductionCompanies = make([]models.ProductionCompany, len(d.ProductionCompanies))
	for i, company := range d.ProductionCompanies {
		company.LogoPath = s.client.BuildImageURL(company.LogoPath, tmdb.ImageSizeDefault)
		out.ProductionCompanies[i] = company
	}
	return &out
}

func cloneInts(in []int) []int {
	if in == nil {
		return nil
	}
	out := make([]int, len(in))
	copy(out, in)
	return out
}
