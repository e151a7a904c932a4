// Marquee - Movie Catalog Aggregation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package config loads Marquee's configuration with Koanf v2.
//
// Configuration Loading Order (later layers win):
//  1. Defaults: Built-in defaults for every optional setting
//  2. Config File: Optional YAML file (config.yaml, or CONFIG_PATH)
//  3. Environment Variables: Explicitly mapped names (see envTransformFunc)
//
// A .env file in the working directory (or DOTENV_PATH) is read into the
// process environment first; variables already set are never overridden.
//
// Config is immutable after Load() and safe for concurrent read access.
package config

import (
	"time"
)

// Config holds all application configuration.
//
// Example:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    logging.Fatal().Err(err).Msg("Failed to load configuration")
//	}
//	client, err := tmdb.NewClient(&cfg.TMDB)
type Config struct {
	TMDB     TMDBConfig     `koanf:"tmdb"`
	Server   ServerConfig   `koanf:"server"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// TMDBConfig holds the connection settings for The Movie Database API.
//
// Environment Variables:
//   - TMDB_API_KEY: API key (v3 auth), sent as the api_key query parameter (required)
//   - TMDB_BASE_URL: API base URL (default: https://api.themoviedb.org/3)
//   - TMDB_IMAGE_BASE_URL: Image CDN origin (default: https://image.tmdb.org)
//   - TMDB_TIMEOUT: Per-request timeout (default: 10s)
//   - TMDB_MAX_REDIRECTS: Redirects followed before a request fails (default: 5)
//   - TMDB_CIRCUIT_BREAKER_ENABLED: Wrap the client in a circuit breaker (default: true)
type TMDBConfig struct {
	APIKey                string        `koanf:"api_key"`
	BaseURL               string        `koanf:"base_url"`
	ImageBaseURL          string        `koanf:"image_base_url"`
	Timeout               time.Duration `koanf:"timeout"`
	MaxRedirects          int           `koanf:"max_redirects"`
	CircuitBreakerEnabled bool          `koanf:"circuit_breaker_enabled"`
}

// ServerConfig holds HTTP listener settings.
//
// Environment Variables:
//   - PORT or HTTP_PORT: Listen port (default: 3001)
//   - HTTP_HOST: Listen address (default: 0.0.0.0)
//   - HTTP_TIMEOUT: Read/write timeout (default: 30s)
//   - ENVIRONMENT: development or production (default: development)
type ServerConfig struct {
	Port        int           `koanf:"port"`
	Host        string        `koanf:"host"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"`
}

// SecurityConfig holds inbound request protection settings.
//
// Environment Variables:
//   - CORS_ORIGINS: Comma-separated allowed origins
//   - RATE_LIMIT_REQUESTS: Requests allowed per window per client IP (default: 100)
//   - RATE_LIMIT_WINDOW: Rate limit window (default: 1m)
//   - DISABLE_RATE_LIMIT: Disable inbound rate limiting (default: false)
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	// Default: false
	Caller bool `koanf:"caller"`

	// File, when non-empty, also writes logs to this path with size-based rotation.
	File           string `koanf:"file"`
	FileMaxSizeMB  int    `koanf:"file_max_size_mb"`
	FileMaxBackups int    `koanf:"file_max_backups"`
	FileMaxAgeDays int    `koanf:"file_max_age_days"`
}

// Load reads configuration from (in order of increasing priority):
//
//  1. Built-in defaults
//  2. Config file (config.yaml if exists, or path specified in CONFIG_PATH env var)
//  3. Environment variables (after merging an optional .env file)
//
// See LoadWithKoanf() for the underlying implementation.
func Load() (*Config, error) {
	if err := loadDotEnv(); err != nil {
		return nil, err
	}
	return LoadWithKoanf()
}
