// Marquee - Movie Catalog Aggregation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/marquee/internal/models"
)

// breakerDisabled is reported when the circuit breaker is not configured.
const breakerDisabled = "disabled"

// HealthLive handles liveness probe requests (Kubernetes-style)
// Returns 200 OK if the process is alive, regardless of TMDB
//
// @Summary Kubernetes liveness probe
// @Tags Health
// @Produce json
// @Success 200 {object} models.APIResponse "Service is alive"
// @Router /health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	writeEnvelope(w, r, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: map[string]interface{}{
			"alive":          true,
			"uptime_seconds": time.Since(h.startTime).Seconds(),
		},
		Metadata: newMetadata(r, time.Now()),
	})
}

// HealthReady handles readiness probe requests (Kubernetes-style)
// Returns 503 while the TMDB circuit breaker is open
//
// @Summary Kubernetes readiness probe
// @Description Returns 200 unless the TMDB circuit breaker is open, in which case requests would fail fast and the instance reports 503.
// @Tags Health
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.HealthStatus} "Service is ready"
// @Failure 503 {object} models.APIResponse{data=models.HealthStatus} "TMDB circuit breaker open"
// @Router /health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	breakerState := breakerDisabled
	if h.breaker != nil {
		breakerState = h.breaker.State()
	}

	statusCode := http.StatusOK
	health := models.HealthStatus{
		Status:         "ready",
		Version:        h.version,
		UptimeSeconds:  time.Since(h.startTime).Seconds(),
		CircuitBreaker: breakerState,
	}
	if breakerState == "open" {
		statusCode = http.StatusServiceUnavailable
		health.Status = "not_ready"
	}

	w.Header().Set("Cache-Control", "no-store")
	writeEnvelope(w, r, statusCode, &models.APIResponse{
		Status:   health.Status,
		Data:     health,
		Metadata: newMetadata(r, time.Now()),
	})
}
