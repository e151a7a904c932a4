// Marquee - Movie Catalog Aggregation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/marquee/internal/models"
	"github.com/tomtom215/marquee/internal/tmdb"
)

// catalogCall records one call made through fakeCatalog.
type catalogCall struct {
	op   string
	args []interface{}
}

// fakeCatalog is a CatalogService returning canned data or err.
type fakeCatalog struct {
	mu    sync.Mutex
	calls []catalogCall
	err   error
}

func (f *fakeCatalog) record(op string, args ...interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, catalogCall{op: op, args: args})
	return f.err
}

func (f *fakeCatalog) lastCall(t *testing.T) catalogCall {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.calls) == 0 {
		t.Fatal("catalog was not called")
	}
	return f.calls[len(f.calls)-1]
}

func (f *fakeCatalog) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func samplePage(page int) *models.MoviePage {
	poster := "https://image.tmdb.org/t/p/w500/poster.jpg"
	return &models.MoviePage{
		Page:         page,
		Results:      []models.MovieSummary{{ID: 550, Title: "Fight Club", PosterPath: &poster}},
		TotalPages:   3,
		TotalResults: 60,
	}
}

func (f *fakeCatalog) GetPopular(_ context.Context, page int) (*models.MoviePage, error) {
	if err := f.record("GetPopular", page); err != nil {
		return nil, err
	}
	return samplePage(page), nil
}

func (f *fakeCatalog) GetTrending(_ context.Context, window tmdb.TimeWindow) (*models.MoviePage, error) {
	if err := f.record("GetTrending", window); err != nil {
		return nil, err
	}
	return samplePage(1), nil
}

func (f *fakeCatalog) GetTopRated(_ context.Context, page int) (*models.MoviePage, error) {
	if err := f.record("GetTopRated", page); err != nil {
		return nil, err
	}
	return samplePage(page), nil
}

func (f *fakeCatalog) GetNowPlaying(_ context.Context, page int) (*models.MoviePage, error) {
	if err := f.record("GetNowPlaying", page); err != nil {
		return nil, err
	}
	return samplePage(page), nil
}

func (f *fakeCatalog) GetUpcoming(_ context.Context, page int) (*models.MoviePage, error) {
	if err := f.record("GetUpcoming", page); err != nil {
		return nil, err
	}
	return samplePage(page), nil
}

func (f *fakeCatalog) SearchMovies(_ context.Context, query string, page int) (*models.MoviePage, error) {
	if err := f.record("SearchMovies", query, page); err != nil {
		return nil, err
	}
	return samplePage(page), nil
}

func (f *fakeCatalog) GetMoviesByGenre(_ context.Context, genreID, page int) (*models.MoviePage, error) {
	if err := f.record("GetMoviesByGenre", genreID, page); err != nil {
		return nil, err
	}
	return samplePage(page), nil
}

func (f *fakeCatalog) GetMovieDetails(_ context.Context, id int) (*models.MovieDetails, error) {
	if err := f.record("GetMovieDetails", id); err != nil {
		return nil, err
	}
	return &models.MovieDetails{
		MovieSummary: models.MovieSummary{ID: id, Title: "Fight Club"},
		Genres:       []models.Genre{{ID: 18, Name: "Drama"}},
	}, nil
}

func (f *fakeCatalog) GetGenres(_ context.Context) ([]models.Genre, error) {
	if err := f.record("GetGenres"); err != nil {
		return nil, err
	}
	return []models.Genre{{ID: 28, Name: "Action"}}, nil
}

func (f *fakeCatalog) GetHomePageData(_ context.Context) (*models.HomePage, error) {
	if err := f.record("GetHomePageData"); err != nil {
		return nil, err
	}
	movies := samplePage(1).Results
	return &models.HomePage{
		Hero:       movies[0],
		Trending:   movies,
		Popular:    movies,
		TopRated:   movies,
		NowPlaying: movies,
	}, nil
}

// fixedBreaker reports a constant circuit breaker state.
type fixedBreaker string

func (b fixedBreaker) State() string { return string(b) }

// envelope decodes models.APIResponse with raw data.
type envelope struct {
	Status   string          `json:"status"`
	Data     json.RawMessage `json:"data"`
	Metadata struct {
		Timestamp time.Time `json:"timestamp"`
		RequestID string    `json:"request_id"`
	} `json:"metadata"`
	Error *models.APIError `json:"error"`
}

func testMiddlewareConfig() *ChiMiddlewareConfig {
	cfg := DefaultChiMiddlewareConfig()
	cfg.CORSAllowedOrigins = []string{"http://localhost:3000"}
	cfg.RateLimitDisabled = true
	return cfg
}

func newTestRouter(catalog CatalogService, breaker BreakerStater) http.Handler {
	handler := NewHandler(catalog, breaker, "test")
	return NewRouter(handler, NewChiMiddleware(testMiddlewareConfig())).SetupChi()
}

func doRequest(t *testing.T, h http.Handler, method, target string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("failed to decode envelope %q: %v", rec.Body.String(), err)
	}
	return env
}
