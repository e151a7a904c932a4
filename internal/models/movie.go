// Marquee - Movie Catalog Aggregation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package models

// MovieSummary is a movie as it appears in TMDB list endpoints (popular,
// trending, search, discover).
//
// PosterPath and BackdropPath hold the provider's relative path on the way in
// and an absolute image URL once the catalog has transformed the value. A nil
// pointer serializes as JSON null and means the provider has no image.
type MovieSummary struct {
	ID               int     `json:"id"`
	Title            string  `json:"title"`
	Overview         string  `json:"overview"`
	PosterPath       *string `json:"poster_path"`
	BackdropPath     *string `json:"backdrop_path"`
	ReleaseDate      string  `json:"release_date"`
	VoteAverage      float64 `json:"vote_average"`
	VoteCount        int     `json:"vote_count"`
	GenreIDs         []int   `json:"genre_ids"`
	Popularity       float64 `json:"popularity"`
	Adult            bool    `json:"adult"`
	Video            bool    `json:"video"`
	OriginalLanguage string  `json:"original_language"`
	OriginalTitle    string  `json:"original_title"`
}

// MovieDetails is the full record returned by the movie details endpoint.
type MovieDetails struct {
	MovieSummary

	Genres              []Genre             `json:"genres"`
	ProductionCompanies []ProductionCompany `json:"production_companies"`
	Runtime             *int                `json:"runtime"`
	Budget              int64               `json:"budget"`
	Revenue             int64               `json:"revenue"`
	Status              string              `json:"status"`
	Tagline             string              `json:"tagline"`
	Homepage            string              `json:"homepage"`
	IMDbID              *string             `json:"imdb_id"`
}

// ProductionCompany is a studio credited on a movie. LogoPath follows the same
// relative-then-absolute convention as MovieSummary.PosterPath.
type ProductionCompany struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	LogoPath      *string `json:"logo_path"`
	OriginCountry string  `json:"origin_country"`
}

// Genre is TMDB genre reference data.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// GenreList is the wrapper object returned by the genre list endpoint.
type GenreList struct {
	Genres []Genre `json:"genres"`
}

// PaginatedResult is one page of a TMDB list endpoint.
type PaginatedResult[T any] struct {
	Page         int `json:"page"`
	Results      []T `json:"results"`
	TotalPages   int `json:"total_pages"`
	TotalResults int `json:"total_results"`
}

// MoviePage is the paginated movie list shared by every category endpoint.
type MoviePage = PaginatedResult[MovieSummary]

// HomePage is the aggregate served to the landing page: a hero movie plus
// four category rows, each capped at HomePageRowLimit entries.
type HomePage struct {
	Hero       MovieSummary   `json:"hero"`
	Trending   []MovieSummary `json:"trending"`
	Popular    []MovieSummary `json:"popular"`
	TopRated   []MovieSummary `json:"topRated"`
	NowPlaying []MovieSummary `json:"nowPlaying"`
}

// HomePageRowLimit caps the length of every HomePage row.
const HomePageRowLimit = 20
