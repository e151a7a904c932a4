// Marquee - Movie Catalog Aggregation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package logging

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	if cfg.Level != "info" {
		t.Errorf("expected default level 'info', got '%s'", cfg.Level)
	}
	if cfg.Format != "json" {
		t.Errorf("expected default format 'json', got '%s'", cfg.Format)
	}
	if cfg.Caller {
		t.Error("expected default caller to be false")
	}
	if !cfg.Timestamp {
		t.Error("expected default timestamp to be true")
	}
	if cfg.File.Path != "" {
		t.Errorf("expected no log file by default, got %q", cfg.File.Path)
	}
}

func TestInit(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "debug", Format: "json", Timestamp: true, Output: &buf})
	t.Cleanup(func() { Init(DefaultConfig()) })

	Info().Msg("test message")

	output := buf.String()
	if !strings.Contains(output, "test message") {
		t.Errorf("expected output to contain 'test message', got: %s", output)
	}
	if !strings.Contains(output, `"level":"info"`) {
		t.Errorf("expected output to contain level, got: %s", output)
	}
}

func TestInit_FileOutput(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "marquee.log")
	Init(Config{Level: "info", Output: &buf, File: FileConfig{Path: path, MaxSizeMB: 1}})
	t.Cleanup(func() {
		_ = Close()
		Init(DefaultConfig())
	})

	Info().Str("component", "test").Msg("written twice")
	if err := Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), "written twice") {
		t.Errorf("log file = %q, want message", string(data))
	}
	if !strings.Contains(buf.String(), "written twice") {
		t.Errorf("primary output = %q, want message", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"INFO", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"disabled", zerolog.Disabled},
		{"bogus", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			if got := parseLevel(tt.input); got != tt.expected {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestCtx_AddsRequestFields(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(NewTestLogger(&buf))
	t.Cleanup(func() { Init(DefaultConfig()) })

	ctx := ContextWithRequestID(context.Background(), "req-123")
	ctx = ContextWithCorrelationID(ctx, "corr-456")
	Ctx(ctx).Info().Msg("handled")

	output := buf.String()
	if !strings.Contains(output, `"request_id":"req-123"`) {
		t.Errorf("expected request_id in output, got: %s", output)
	}
	if !strings.Contains(output, `"correlation_id":"corr-456"`) {
		t.Errorf("expected correlation_id in output, got: %s", output)
	}
}

func TestGenerateIDs(t *testing.T) {
	t.Parallel()

	if got := len(GenerateCorrelationID()); got != 8 {
		t.Errorf("len(GenerateCorrelationID()) = %d, want 8", got)
	}
	a, b := GenerateRequestID(), GenerateRequestID()
	if a == b {
		t.Errorf("GenerateRequestID() returned duplicate %q", a)
	}
	if RequestIDFromContext(context.Background()) != "" {
		t.Error("expected empty request ID from bare context")
	}
}

func TestSlogHandler(t *testing.T) {
	var buf bytes.Buffer
	zl := NewTestLogger(&buf)

	logger := slog.New(NewSlogHandler(zl)).WithGroup("event").With("service", "http")
	logger.Warn("service restarted", "attempt", 3, "healthy", false)

	output := buf.String()
	for _, want := range []string{
		`"level":"warn"`,
		`"message":"service restarted"`,
		`"event.service":"http"`,
		`"event.attempt":3`,
		`"event.healthy":false`,
	} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %s: %s", want, output)
		}
	}
}

func TestSlogToZerologLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   slog.Level
		want zerolog.Level
	}{
		{slog.LevelDebug, zerolog.DebugLevel},
		{slog.LevelInfo, zerolog.InfoLevel},
		{slog.LevelWarn, zerolog.WarnLevel},
		{slog.LevelError, zerolog.ErrorLevel},
	}
	for _, tt := range tests {
		if got := slogToZerologLevel(tt.in); got != tt.want {
			t.Errorf("slogToZerologLevel(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
