// Marquee - Movie Catalog Aggregation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package tmdb

import (
	"context"
	"errors"
	"fmt"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/metrics"
	"github.com/tomtom215/marquee/internal/models"
)

// CircuitBreakerName is the breaker name used in metrics and logs.
const CircuitBreakerName = "tmdb-api"

// Ensure CircuitBreakerClient implements MetadataClient
var _ MetadataClient = (*CircuitBreakerClient)(nil)

// CircuitBreakerClient wraps a MetadataClient with the circuit breaker pattern.
// While open, calls fail immediately with ErrCircuitOpen instead of waiting on
// the provider's timeout. The breaker never retries.
//
// Only upstream failures count against the breaker; not-found lookups and
// rejected parameters are successful exchanges with a healthy provider.
type CircuitBreakerClient struct {
	client MetadataClient
	cb     *gobreaker.CircuitBreaker[interface{}]
	name   string
}

// BreakerSettings tunes the breaker. Zero values select the defaults.
type BreakerSettings struct {
	MaxRequests  uint32        // requests allowed in half-open state (default 3)
	Interval     time.Duration // closed-state count reset period (default 1m)
	Timeout      time.Duration // open-state duration before half-open (default 2m)
	MinRequests  uint32        // requests before the failure ratio is considered (default 10)
	FailureRatio float64       // ratio that trips the breaker (default 0.6)
}

func (s BreakerSettings) withDefaults() BreakerSettings {
	if s.MaxRequests == 0 {
		s.MaxRequests = 3
	}
	if s.Interval == 0 {
		s.Interval = time.Minute
	}
	if s.Timeout == 0 {
		s.Timeout = 2 * time.Minute
	}
	if s.MinRequests == 0 {
		s.MinRequests = 10
	}
	if s.FailureRatio == 0 {
		s.FailureRatio = 0.6
	}
	return s
}

// NewCircuitBreakerClient wraps client with a breaker.
// Default configuration:
//   - Max 3 concurrent requests in half-open state
//   - 1 minute measurement window
//   - 2 minute timeout before attempting recovery
//   - Opens after 60% failure rate with minimum 10 requests
func NewCircuitBreakerClient(client MetadataClient, settings BreakerSettings) *CircuitBreakerClient {
	s := settings.withDefaults()
	name := CircuitBreakerName

	metrics.CircuitBreakerState.WithLabelValues(name).Set(0)
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)

	cb := gobreaker.NewCircuitBreaker[interface{}](gobreaker.Settings{
		Name:        name,
		MaxRequests: s.MaxRequests,
		Interval:    s.Interval,
		Timeout:     s.Timeout,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < s.MinRequests {
				return false
			}

			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			shouldTrip := failureRatio >= s.FailureRatio
			if shouldTrip {
				logging.Warn().
					Str("breaker", name).
					Uint32("failures", counts.TotalFailures).
					Float64("failure_rate", failureRatio*100).
					Msg("[CIRCUIT BREAKER] Opening circuit")
			}
			return shouldTrip
		},

		// Only provider failures count against the breaker. Unknown IDs, bad
		// parameters and callers that hang up leave TMDB's health unchanged.
		IsSuccessful: func(err error) bool {
			if err == nil || IsCanceled(err) {
				return true
			}
			kind := KindOf(err)
			return kind == KindNotFound || kind == KindValidation
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr, toStr := stateToString(from), stateToString(to)
			logging.Info().Str("breaker", name).Str("from", fromStr).Str("to", toStr).Msg("[CIRCUIT BREAKER] State transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
			if to == gobreaker.StateClosed {
				metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
			}
		},
	})

	return &CircuitBreakerClient{
		client: client,
		cb:     cb,
		name:   name,
	}
}

// State returns the breaker state: "closed", "half-open" or "open".
func (cbc *CircuitBreakerClient) State() string {
	return stateToString(cbc.cb.State())
}

// execute wraps a TMDB call with circuit breaker protection.
func (cbc *CircuitBreakerClient) execute(op string, fn func() (interface{}, error)) (interface{}, error) {
	result, err := cbc.cb.Execute(fn)
	if err == nil {
		metrics.CircuitBreakerRequests.WithLabelValues(cbc.name, "success").Inc()
		metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(cbc.name).Set(0)
		return result, nil
	}

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		metrics.CircuitBreakerRequests.WithLabelValues(cbc.name, "rejected").Inc()
		logging.Warn().Str("breaker", cbc.name).Str("op", op).Msg("[CIRCUIT BREAKER] Request rejected")
		return nil, newCircuitOpenError(op)
	}

	switch {
	case IsCanceled(err):
		metrics.CircuitBreakerRequests.WithLabelValues(cbc.name, "canceled").Inc()
	case KindOf(err) == KindUpstreamUnavailable:
		metrics.CircuitBreakerRequests.WithLabelValues(cbc.name, "failure").Inc()
		metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(cbc.name).Set(float64(cbc.cb.Counts().ConsecutiveFailures))
	default:
		metrics.CircuitBreakerRequests.WithLabelValues(cbc.name, "success").Inc()
	}
	return nil, err
}

// castResult type-casts the circuit breaker result.
func castResult[T any](result interface{}, err error) (*T, error) {
	if err != nil {
		return nil, err
	}
	typed, ok := result.(*T)
	if !ok {
		return nil, fmt.Errorf("circuit breaker: unexpected result type %T", result)
	}
	return typed, nil
}

// stateToFloat converts circuit breaker state to numeric value for metrics
func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

// stateToString converts circuit breaker state to string for logging
func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}

// GetByCategory retrieves a category page with circuit breaker protection
func (cbc *CircuitBreakerClient) GetByCategory(ctx context.Context, category Category, page int) (*models.MoviePage, error) {
	return castResult[models.MoviePage](cbc.execute("GetByCategory", func() (interface{}, error) {
		return cbc.client.GetByCategory(ctx, category, page)
	}))
}

// GetTrending retrieves trending movies with circuit breaker protection
func (cbc *CircuitBreakerClient) GetTrending(ctx context.Context, window TimeWindow) (*models.MoviePage, error) {
	return castResult[models.MoviePage](cbc.execute("GetTrending", func() (interface{}, error) {
		return cbc.client.GetTrending(ctx, window)
	}))
}

// GetMovieDetails retrieves movie details with circuit breaker protection
func (cbc *CircuitBreakerClient) GetMovieDetails(ctx context.Context, id int) (*models.MovieDetails, error) {
	return castResult[models.MovieDetails](cbc.execute("GetMovieDetails", func() (interface{}, error) {
		return cbc.client.GetMovieDetails(ctx, id)
	}))
}

// Search searches movies with circuit breaker protection
func (cbc *CircuitBreakerClient) Search(ctx context.Context, query string, page int) (*models.MoviePage, error) {
	return castResult[models.MoviePage](cbc.execute("Search", func() (interface{}, error) {
		return cbc.client.Search(ctx, query, page)
	}))
}

// GetByGenre lists movies by genre with circuit breaker protection
func (cbc *CircuitBreakerClient) GetByGenre(ctx context.Context, genreID, page int) (*models.MoviePage, error) {
	return castResult[models.MoviePage](cbc.execute("GetByGenre", func() (interface{}, error) {
		return cbc.client.GetByGenre(ctx, genreID, page)
	}))
}

// GetGenres retrieves the genre list with circuit breaker protection
func (cbc *CircuitBreakerClient) GetGenres(ctx context.Context) ([]models.Genre, error) {
	result, err := cbc.execute("GetGenres", func() (interface{}, error) {
		return cbc.client.GetGenres(ctx)
	})
	if err != nil {
		return nil, err
	}
	genres, ok := result.([]models.Genre)
	if !ok {
		return nil, fmt.Errorf("circuit breaker: unexpected result type %T", result)
	}
	return genres, nil
}

// BuildImageURL is pure and bypasses the breaker.
func (cbc *CircuitBreakerClient) BuildImageURL(path *string, size ImageSize) *string {
	return cbc.client.BuildImageURL(path, size)
}
