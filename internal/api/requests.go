// Marquee - Movie Catalog Aggregation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/marquee/internal/models"
	"github.com/tomtom215/marquee/internal/validation"
)

// defaultPage is used when the page query parameter is omitted.
const defaultPage = 1

// PageRequest holds the parameters of the paginated category endpoints.
type PageRequest struct {
	Page int `query:"page" validate:"min=1"`
}

// TrendingRequest holds the trending endpoint parameters.
type TrendingRequest struct {
	TimeWindow string `query:"timeWindow" validate:"omitempty,oneof=day week"`
}

// SearchRequest holds the search endpoint parameters. Query is forwarded to
// TMDB unchanged once it passes validation.
type SearchRequest struct {
	Query string `query:"query" validate:"nonblank,max=500"`
	Page  int    `query:"page" validate:"min=1"`
}

// GenreRequest holds the discover-by-genre parameters.
type GenreRequest struct {
	GenreID int `path:"genreId" validate:"gt=0"`
	Page    int `query:"page" validate:"min=1"`
}

// MovieRequest identifies one movie.
type MovieRequest struct {
	ID int `path:"id" validate:"gt=0"`
}

// validateRequest validates v and converts failures to the API error shape.
func validateRequest(v interface{}) *models.APIError {
	validationErr := validation.ValidateStruct(v)
	if validationErr == nil {
		return nil
	}

	apiErr := validationErr.ToAPIError()
	return &models.APIError{
		Code:    apiErr.Code,
		Message: apiErr.Message,
		Details: apiErr.Details,
	}
}

// queryInt parses an integer query parameter. An absent or empty parameter
// yields defaultValue; anything strconv.Atoi rejects is a validation error.
func queryInt(r *http.Request, key string, defaultValue int) (int, *models.APIError) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return defaultValue, nil
	}
	return parseIntParam(key, raw)
}

// pathInt parses an integer chi URL parameter.
func pathInt(r *http.Request, key string) (int, *models.APIError) {
	return parseIntParam(key, chi.URLParam(r, key))
}

func parseIntParam(key, raw string) (int, *models.APIError) {
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &models.APIError{
			Code:    validation.ErrorCode,
			Message: key + " must be an integer",
			Details: map[string]interface{}{"field": key, "tag": "integer"},
		}
	}
	return value, nil
}

// respondValidationError writes a 400 for a parameter error.
func respondValidationError(w http.ResponseWriter, r *http.Request, apiErr *models.APIError) {
	respondError(w, r, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details)
}
