// Marquee - Movie Catalog Aggregation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package tmdb

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/metrics"
)

// maxErrorBodySize bounds how much of a failed response is read for logging.
const maxErrorBodySize = 64 * 1024

// Upstream outcome labels for metrics.
const (
	outcomeSuccess  = "success"
	outcomeNotFound = "not_found"
	outcomeError    = "error"
	outcomeCanceled = "canceled"
)

// redacted replaces credential values in logged URLs.
const redacted = "REDACTED"

// errTooManyRedirects is returned by the redirect policy once the limit is hit.
var errTooManyRedirects = errors.New("tmdb: redirect limit exceeded")

// apiRequest holds parameters for a TMDB API request
type apiRequest struct {
	op     string     // catalog operation, used in errors and logs
	route  string     // route template for metrics, e.g. "/movie/{id}"
	path   string     // concrete path appended to the base URL
	params url.Values // query parameters excluding the credential

	// lookup marks identifier lookups where a provider 404 means the
	// resource does not exist rather than a broken upstream.
	lookup bool
}

// newAPIRequest creates a request whose path equals its route template.
func newAPIRequest(op, route string) *apiRequest {
	return &apiRequest{
		op:     op,
		route:  route,
		path:   route,
		params: url.Values{},
	}
}

// withPath sets a concrete path for templated routes.
func (r *apiRequest) withPath(path string) *apiRequest {
	r.path = path
	return r
}

// asLookup treats a 404 as ErrNotFound.
func (r *apiRequest) asLookup() *apiRequest {
	r.lookup = true
	return r
}

// addParam adds a parameter verbatim (only if non-empty).
func (r *apiRequest) addParam(key, value string) *apiRequest {
	if value != "" {
		r.params.Set(key, value)
	}
	return r
}

// addPage adds the page parameter. Values below 1 become 1.
func (r *apiRequest) addPage(page int) *apiRequest {
	if page < 1 {
		page = 1
	}
	r.params.Set("page", strconv.Itoa(page))
	return r
}

// buildURL constructs the full URL with the credential appended.
func (r *apiRequest) buildURL(baseURL, apiKey string) string {
	params := make(url.Values, len(r.params)+1)
	for key, values := range r.params {
		params[key] = values
	}
	params.Set("api_key", apiKey)

	return baseURL + r.path + "?" + params.Encode()
}

// readBodyForError reads a bounded prefix of a response body for logging.
func readBodyForError(body io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(body, maxErrorBodySize))
	if err != nil {
		return ""
	}
	return string(data)
}

// getJSON executes a TMDB GET request and decodes the JSON body into T.
// Every failure is logged with full detail and returned as a classified *Error.
func getJSON[T any](ctx context.Context, c *Client, req *apiRequest) (*T, error) {
	start := time.Now()
	logger := logging.Ctx(ctx).With().
		Str("component", "tmdb").
		Str("op", req.op).
		Str("endpoint", req.route).
		Logger()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, req.buildURL(c.baseURL, c.apiKey), http.NoBody)
	if err != nil {
		err = redactError(err)
		logger.Error().Err(err).Msg("Failed to build TMDB request")
		metrics.RecordUpstreamRequest(req.route, outcomeError, time.Since(start))
		return nil, newUpstreamError(req.op, err)
	}
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, upstreamFailure(ctx, logger, req, start, redactError(err))
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound && req.lookup {
		logger.Debug().Str("path", req.path).Msg("TMDB resource not found")
		metrics.RecordUpstreamRequest(req.route, outcomeNotFound, time.Since(start))
		return nil, NewNotFoundError(req.op, "movie not found")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.Warn().
			Int("status", resp.StatusCode).
			Str("body", readBodyForError(resp.Body)).
			Msg("TMDB returned non-success status")
		metrics.RecordUpstreamRequest(req.route, outcomeError, time.Since(start))
		return nil, newUpstreamError(req.op, fmt.Errorf("tmdb: unexpected status %d", resp.StatusCode))
	}

	var result T
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, upstreamFailure(ctx, logger, req, start, fmt.Errorf("tmdb: decode response: %w", err))
	}

	metrics.RecordUpstreamRequest(req.route, outcomeSuccess, time.Since(start))
	logger.Debug().Dur("duration", time.Since(start)).Msg("TMDB request completed")
	return &result, nil
}

// isTimeout reports whether err is a client or context timeout.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr interface{ Timeout() bool }
	return errors.As(err, &netErr) && netErr.Timeout()
}

// upstreamFailure logs and classifies a transport or body failure. When the
// caller's context is done the context error is joined into the cause, so
// cancellations stay recognizable however the transport reported them.
func upstreamFailure(ctx context.Context, logger zerolog.Logger, req *apiRequest, start time.Time, cause error) *Error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		if !errors.Is(cause, ctxErr) {
			cause = fmt.Errorf("%w: %w", ctxErr, cause)
		}
		if errors.Is(ctxErr, context.Canceled) {
			logger.Debug().Err(cause).Msg("TMDB request canceled by caller")
			metrics.RecordUpstreamRequest(req.route, outcomeCanceled, time.Since(start))
			return newUpstreamError(req.op, cause)
		}
	}

	logger.Warn().
		Err(cause).
		Bool("timeout", isTimeout(cause)).
		Bool("redirect_limit", errors.Is(cause, errTooManyRedirects)).
		Msg("TMDB request failed")
	metrics.RecordUpstreamRequest(req.route, outcomeError, time.Since(start))
	return newUpstreamError(req.op, cause)
}

// redactError masks the api_key query value in the URL of a *url.Error.
// Other errors are returned unchanged.
func redactError(err error) error {
	var urlErr *url.Error
	if !errors.As(err, &urlErr) {
		return err
	}
	return &url.Error{Op: urlErr.Op, URL: redactURL(urlErr.URL), Err: urlErr.Err}
}

// redactURL replaces the api_key query value. Unparseable input is replaced
// wholesale.
func redactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "[unparseable URL]"
	}
	q := u.Query()
	if q.Has("api_key") {
		q.Set("api_key", redacted)
		u.RawQuery = q.Encode()
	}
	return u.String()
}

// redirectPolicy returns a CheckRedirect func allowing at most limit redirects.
func redirectPolicy(limit int) func(*http.Request, []*http.Request) error {
	return func(_ *http.Request, via []*http.Request) error {
		if len(via) > limit {
			return errTooManyRedirects
		}
		return nil
	}
}
