// Marquee - Movie Catalog Aggregation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrMissingAPIKey is returned when no TMDB credential is configured.
// The service cannot start without it.
var ErrMissingAPIKey = errors.New("TMDB_API_KEY is required")

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateTMDB(); err != nil {
		return err
	}

	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateSecurity(); err != nil {
		return err
	}

	return c.validateLogging()
}

// TMDB request bounds
const (
	minTMDBTimeout   = time.Second
	maxTMDBTimeout   = 2 * time.Minute
	maxTMDBRedirects = 20
)

// validateTMDB validates the TMDB connection settings
func (c *Config) validateTMDB() error {
	if strings.TrimSpace(c.TMDB.APIKey) == "" {
		return ErrMissingAPIKey
	}
	if err := validateAPIBaseURL(c.TMDB.BaseURL, "TMDB_BASE_URL"); err != nil {
		return fmt.Errorf("TMDB_BASE_URL is invalid: %w", err)
	}
	if err := validateHTTPURL(c.TMDB.ImageBaseURL, "TMDB_IMAGE_BASE_URL"); err != nil {
		return fmt.Errorf("TMDB_IMAGE_BASE_URL is invalid: %w", err)
	}
	if c.TMDB.Timeout < minTMDBTimeout || c.TMDB.Timeout > maxTMDBTimeout {
		return fmt.Errorf("TMDB_TIMEOUT must be between %v and %v", minTMDBTimeout, maxTMDBTimeout)
	}
	if c.TMDB.MaxRedirects < 0 || c.TMDB.MaxRedirects > maxTMDBRedirects {
		return fmt.Errorf("TMDB_MAX_REDIRECTS must be between 0 and %d", maxTMDBRedirects)
	}
	return nil
}

// validateServer validates server configuration
func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	return nil
}

// validateSecurity validates security configuration
func (c *Config) validateSecurity() error {
	if err := c.validateCORS(); err != nil {
		return err
	}
	return c.validateRateLimits()
}

// validateCORS rejects wildcard origins in production.
func (c *Config) validateCORS() error {
	if c.hasWildcardCORS() && c.IsProduction() {
		return fmt.Errorf("CORS_ORIGINS=* (wildcard) is not allowed in production. " +
			"Set specific origins: CORS_ORIGINS=https://yourdomain.com,https://app.yourdomain.com " +
			"or use ENVIRONMENT=development for testing purposes")
	}
	return nil
}

// hasWildcardCORS checks if CORS is configured with wildcard origins
func (c *Config) hasWildcardCORS() bool {
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}

// Rate limit constants
const (
	minRateLimitRequests = 1           // Minimum 1 request allowed
	maxRateLimitRequests = 100000      // Maximum 100K requests per window
	minRateLimitWindow   = time.Second // Minimum 1 second window
	maxRateLimitWindow   = time.Hour   // Maximum 1 hour window
)

// validateRateLimits validates rate limiting configuration bounds.
func (c *Config) validateRateLimits() error {
	if c.Security.RateLimitDisabled {
		return nil
	}

	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

// IsProduction returns true if the application is running in production mode.
func (c *Config) IsProduction() bool {
	env := strings.ToLower(c.Server.Environment)
	return env == "production" || env == "prod"
}

// IsDevelopment returns true if the application is running in development mode.
func (c *Config) IsDevelopment() bool {
	env := strings.ToLower(c.Server.Environment)
	return env == "" || env == "development" || env == "dev"
}

// validLogLevels defines the allowed log levels
var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// validLogFormats defines the allowed log formats
var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	if c.Logging.File != "" && c.Logging.FileMaxSizeMB < 1 {
		return fmt.Errorf("LOG_FILE_MAX_SIZE_MB must be at least 1 when LOG_FILE is set")
	}
	return nil
}
