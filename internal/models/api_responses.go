// Marquee - Movie Catalog Aggregation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package models

import (
	"time"
)

// APIResponse is the envelope written by every HTTP endpoint.
//
// Status field values:
//   - "success": Request completed successfully, see Data field
//   - "error": Request failed, see Error field for details
//
// Example error response:
//
//	{
//	  "status": "error",
//	  "data": null,
//	  "metadata": {"timestamp": "2026-03-01T12:00:00Z", "request_id": "..."},
//	  "error": {"code": "UPSTREAM_UNAVAILABLE", "message": "Movie data provider is unavailable"}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata contains response metadata.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	RequestID   string    `json:"request_id,omitempty"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
}

// APIError represents an error response with structured error details.
//
// Common error codes:
//   - VALIDATION_ERROR: Invalid input parameters
//   - NOT_FOUND: Resource doesn't exist at the provider
//   - UPSTREAM_UNAVAILABLE: TMDB request failed
//   - SERVICE_UNAVAILABLE: TMDB circuit breaker is open
//   - RATE_LIMIT_EXCEEDED: Too many requests
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// HealthStatus is the payload of the readiness endpoint.
type HealthStatus struct {
	Status         string  `json:"status"`
	Version        string  `json:"version"`
	UptimeSeconds  float64 `json:"uptime_seconds"`
	CircuitBreaker string  `json:"circuit_breaker"`
}
