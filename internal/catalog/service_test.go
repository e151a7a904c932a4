// Marquee - Movie Catalog Aggregation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package catalog

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sync"
	"testing"

	"github.com/tomtom215/marquee/internal/models"
	"github.com/tomtom215/marquee/internal/tmdb"
)

const testImageBase = "https://image.tmdb.org"

// fakeClient is a programmable tmdb.MetadataClient that records calls.
type fakeClient struct {
	mu    sync.Mutex
	calls []string

	pages    map[string]*models.MoviePage
	errs     map[string]error
	details  *models.MovieDetails
	genres   []models.Genre
	lastArgs []interface{}
}

func newFakeClient() *fakeClient {
	return &fakeClient{
		pages: make(map[string]*models.MoviePage),
		errs:  make(map[string]error),
	}
}

func (f *fakeClient) record(name string, args ...interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, name)
	f.lastArgs = args
	return f.errs[name]
}

func (f *fakeClient) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func (f *fakeClient) page(name string) *models.MoviePage {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p, ok := f.pages[name]; ok {
		return p
	}
	return &models.MoviePage{Page: 1, Results: []models.MovieSummary{}}
}

func (f *fakeClient) GetByCategory(_ context.Context, category tmdb.Category, page int) (*models.MoviePage, error) {
	name := string(category)
	if err := f.record(name, page); err != nil {
		return nil, err
	}
	return f.page(name), nil
}

func (f *fakeClient) GetTrending(_ context.Context, window tmdb.TimeWindow) (*models.MoviePage, error) {
	if err := f.record("trending", window); err != nil {
		return nil, err
	}
	return f.page("trending"), nil
}

func (f *fakeClient) GetMovieDetails(_ context.Context, id int) (*models.MovieDetails, error) {
	if err := f.record("details", id); err != nil {
		return nil, err
	}
	return f.details, nil
}

func (f *fakeClient) Search(_ context.Context, query string, page int) (*models.MoviePage, error) {
	if err := f.record("search", query, page); err != nil {
		return nil, err
	}
	return f.page("search"), nil
}

func (f *fakeClient) GetByGenre(_ context.Context, genreID, page int) (*models.MoviePage, error) {
	if err := f.record("genre", genreID, page); err != nil {
		return nil, err
	}
	return f.page("genre"), nil
}

func (f *fakeClient) GetGenres(_ context.Context) ([]models.Genre, error) {
	if err := f.record("genres"); err != nil {
		return nil, err
	}
	return f.genres, nil
}

func (f *fakeClient) BuildImageURL(path *string, size tmdb.ImageSize) *string {
	return tmdb.BuildImageURL(testImageBase, path, size)
}

func strPtr(s string) *string { return &s }

func movie(id int) models.MovieSummary {
	return models.MovieSummary{
		ID:           id,
		Title:        fmt.Sprintf("Movie %d", id),
		PosterPath:   strPtr(fmt.Sprintf("/poster%d.jpg", id)),
		BackdropPath: strPtr(fmt.Sprintf("/backdrop%d.jpg", id)),
		GenreIDs:     []int{28, 12},
	}
}

func moviePage(ids ...int) *models.MoviePage {
	results := make([]models.MovieSummary, len(ids))
	for i, id := range ids {
		results[i] = movie(id)
	}
	return &models.MoviePage{Page: 1, Results: results, TotalPages: 10, TotalResults: 200}
}

func idRange(start, n int) []int {
	ids := make([]int, n)
	for i := range ids {
		ids[i] = start + i
	}
	return ids
}

func TestCategoryOperations(t *testing.T) {
	ops := []struct {
		name     string
		category tmdb.Category
		call     func(*Service, context.Context, int) (*models.MoviePage, error)
	}{
		{"popular", tmdb.CategoryPopular, (*Service).GetPopular},
		{"top rated", tmdb.CategoryTopRated, (*Service).GetTopRated},
		{"now playing", tmdb.CategoryNowPlaying, (*Service).GetNowPlaying},
		{"upcoming", tmdb.CategoryUpcoming, (*Service).GetUpcoming},
	}

	for _, op := range ops {
		t.Run(op.name, func(t *testing.T) {
			fake := newFakeClient()
			fake.pages[string(op.category)] = moviePage(1, 2)
			svc := NewService(fake)

			page, err := op.call(svc, context.Background(), 3)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := fake.lastArgs[0]; got != 3 {
				t.Errorf("page forwarded = %v, want 3", got)
			}
			if len(page.Results) != 2 {
				t.Fatalf("results = %d, want 2", len(page.Results))
			}
			if page.TotalPages != 10 || page.TotalResults != 200 {
				t.Errorf("pagination not preserved: %+v", page)
			}
			want := "https://image.tmdb.org/t/p/w500/poster1.jpg"
			if got := page.Results[0].PosterPath; got == nil || *got != want {
				t.Errorf("poster = %v, want %s", got, want)
			}
			want = "https://image.tmdb.org/t/p/w1280/backdrop1.jpg"
			if got := page.Results[0].BackdropPath; got == nil || *got != want {
				t.Errorf("backdrop = %v, want %s", got, want)
			}
		})
	}
}

func TestCategoryOperations_RejectInvalidPage(t *testing.T) {
	for _, page := range []int{0, -1} {
		fake := newFakeClient()
		svc := NewService(fake)

		_, err := svc.GetPopular(context.Background(), page)
		if !errors.Is(err, tmdb.ErrValidation) {
			t.Errorf("page %d: expected validation error, got %v", page, err)
		}
		if fake.callCount() != 0 {
			t.Errorf("page %d: upstream was called", page)
		}
	}
}

func TestGetTrending(t *testing.T) {
	tests := []struct {
		window tmdb.TimeWindow
		want   tmdb.TimeWindow
	}{
		{"", tmdb.TimeWindowWeek},
		{tmdb.TimeWindowDay, tmdb.TimeWindowDay},
		{tmdb.TimeWindowWeek, tmdb.TimeWindowWeek},
	}
	for _, tt := range tests {
		fake := newFakeClient()
		fake.pages["trending"] = moviePage(7)
		svc := NewService(fake)

		page, err := svc.GetTrending(context.Background(), tt.window)
		if err != nil {
			t.Fatalf("window %q: unexpected error: %v", tt.window, err)
		}
		if got := fake.lastArgs[0]; got != tt.want {
			t.Errorf("window %q forwarded as %v, want %v", tt.window, got, tt.want)
		}
		if page.Results[0].ID != 7 {
			t.Errorf("unexpected results: %+v", page.Results)
		}
	}

	fake := newFakeClient()
	_, err := NewService(fake).GetTrending(context.Background(), "month")
	if !errors.Is(err, tmdb.ErrValidation) {
		t.Errorf("expected validation error for invalid window, got %v", err)
	}
	if fake.callCount() != 0 {
		t.Error("upstream was called for invalid window")
	}
}

func TestSearchMovies(t *testing.T) {
	fake := newFakeClient()
	fake.pages["search"] = moviePage(603)
	svc := NewService(fake)

	page, err := svc.SearchMovies(context.Background(), "  the matrix ", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := fake.lastArgs[0]; got != "  the matrix " {
		t.Errorf("query forwarded as %q, want it unchanged", got)
	}
	if got := fake.lastArgs[1]; got != 2 {
		t.Errorf("page forwarded = %v, want 2", got)
	}
	if page.Results[0].ID != 603 {
		t.Errorf("unexpected results: %+v", page.Results)
	}
}

func TestSearchMovies_Validation(t *testing.T) {
	tests := []struct {
		name  string
		query string
		page  int
		field string
	}{
		{"empty query", "", 1, "query"},
		{"whitespace query", "   \t", 1, "query"},
		{"zero page", "matrix", 0, "page"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := newFakeClient()
			_, err := NewService(fake).SearchMovies(context.Background(), tt.query, tt.page)

			var tmdbErr *tmdb.Error
			if !errors.As(err, &tmdbErr) || tmdbErr.Kind != tmdb.KindValidation {
				t.Fatalf("expected validation error, got %v", err)
			}
			if tmdbErr.Field != tt.field {
				t.Errorf("field = %q, want %q", tmdbErr.Field, tt.field)
			}
			if fake.callCount() != 0 {
				t.Error("upstream was called")
			}
		})
	}
}

func TestGetMoviesByGenre(t *testing.T) {
	fake := newFakeClient()
	fake.pages["genre"] = moviePage(1, 2, 3)
	svc := NewService(fake)

	page, err := svc.GetMoviesByGenre(context.Background(), 28, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(fake.lastArgs, []interface{}{28, 1}) {
		t.Errorf("forwarded args = %v, want [28 1]", fake.lastArgs)
	}
	if len(page.Results) != 3 {
		t.Errorf("results = %d, want 3", len(page.Results))
	}

	for _, args := range [][2]int{{0, 1}, {-5, 1}, {28, 0}} {
		fake := newFakeClient()
		_, err := NewService(fake).GetMoviesByGenre(context.Background(), args[0], args[1])
		if !errors.Is(err, tmdb.ErrValidation) {
			t.Errorf("args %v: expected validation error, got %v", args, err)
		}
		if fake.callCount() != 0 {
			t.Errorf("args %v: upstream was called", args)
		}
	}
}

func TestGetMovieDetails(t *testing.T) {
	fake := newFakeClient()
	runtime := 139
	fake.details = &models.MovieDetails{
		MovieSummary: models.MovieSummary{
			ID:         550,
			Title:      "Fight Club",
			PosterPath: strPtr("/fc.jpg"),
		},
		Genres: []models.Genre{{ID: 18, Name: "Drama"}, {ID: 53, Name: "Thriller"}},
		ProductionCompanies: []models.ProductionCompany{
			{ID: 508, Name: "Regency Enterprises", LogoPath: strPtr("/regency.png")},
			{ID: 711, Name: "Fox 2000 Pictures", LogoPath: nil},
			{ID: 4700, Name: "The Linson Company", LogoPath: strPtr("")},
		},
		Runtime: &runtime,
	}
	svc := NewService(fake)

	details, err := svc.GetMovieDetails(context.Background(), 550)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := fake.lastArgs[0]; got != 550 {
		t.Errorf("id forwarded = %v, want 550", got)
	}

	if got := details.PosterPath; got == nil || *got != "https://image.tmdb.org/t/p/w500/fc.jpg" {
		t.Errorf("poster = %v", got)
	}
	if details.BackdropPath != nil {
		t.Errorf("missing backdrop should stay nil, got %q", *details.BackdropPath)
	}

	logos := details.ProductionCompanies
	if got := logos[0].LogoPath; got == nil || *got != "https://image.tmdb.org/t/p/w500/regency.png" {
		t.Errorf("logo = %v", got)
	}
	if logos[1].LogoPath != nil || logos[2].LogoPath != nil {
		t.Error("missing logos should stay nil")
	}

	if !reflect.DeepEqual(details.GenreIDs, []int{18, 53}) {
		t.Errorf("genre ids = %v, want [18 53]", details.GenreIDs)
	}
	if details.Runtime == nil || *details.Runtime != 139 {
		t.Errorf("runtime not preserved: %v", details.Runtime)
	}
}

func TestGetMovieDetails_Errors(t *testing.T) {
	fake := newFakeClient()
	_, err := NewService(fake).GetMovieDetails(context.Background(), 0)
	if !errors.Is(err, tmdb.ErrValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
	if fake.callCount() != 0 {
		t.Error("upstream was called for invalid id")
	}

	fake = newFakeClient()
	fake.errs["details"] = tmdb.NewNotFoundError("GetMovieDetails", "movie not found")
	_, err = NewService(fake).GetMovieDetails(context.Background(), 999999999)
	if !errors.Is(err, tmdb.ErrNotFound) {
		t.Errorf("expected not-found error, got %v", err)
	}
}

func TestGetGenres(t *testing.T) {
	fake := newFakeClient()
	fake.genres = []models.Genre{{ID: 28, Name: "Action"}, {ID: 12, Name: "Adventure"}}

	genres, err := NewService(fake).GetGenres(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(genres, fake.genres) {
		t.Errorf("genres = %v, want %v", genres, fake.genres)
	}
}

func TestTransform_DoesNotMutateInput(t *testing.T) {
	fake := newFakeClient()
	original := moviePage(1, 2)
	fake.pages["popular"] = original
	svc := NewService(fake)

	if _, err := svc.GetPopular(context.Background(), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := *original.Results[0].PosterPath; got != "/poster1.jpg" {
		t.Errorf("input poster mutated to %q", got)
	}
	if got := *original.Results[1].BackdropPath; got != "/backdrop2.jpg" {
		t.Errorf("input backdrop mutated to %q", got)
	}
}

func TestTransform_Idempotent(t *testing.T) {
	fake := newFakeClient()
	fake.pages["upcoming"] = moviePage(4, 5, 6)
	svc := NewService(fake)

	first, err := svc.GetUpcoming(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.GetUpcoming(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("identical calls returned different results")
	}
}
