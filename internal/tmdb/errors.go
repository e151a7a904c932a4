// Marquee - Movie Catalog Aggregation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package tmdb

import (
	"context"
	"errors"
)

// ErrorKind classifies catalog failures. Every error returned by this package
// and by the catalog service carries exactly one kind.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindConfiguration
	KindValidation
	KindUpstreamUnavailable
	KindNotFound
)

// String returns the kind name used in logs.
func (k ErrorKind) String() string {
	switch k {
	case KindConfiguration:
		return "configuration"
	case KindValidation:
		return "validation"
	case KindUpstreamUnavailable:
		return "upstream_unavailable"
	case KindNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

// Error is a classified catalog error. Message is safe to show to API callers.
// Err keeps the underlying cause for errors.Is/As and logs; it never appears in
// Error() output. Causes carrying request URLs have the credential redacted.
type Error struct {
	Kind    ErrorKind
	Op      string // operation, e.g. "GetMovieDetails"
	Field   string // offending parameter for KindValidation
	Message string
	Err     error

	circuitOpen bool
}

func (e *Error) Error() string {
	if e.Op == "" {
		return e.Message
	}
	return e.Op + ": " + e.Message
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches on kind, so errors.Is(err, ErrNotFound) holds for any not-found
// error. ErrCircuitOpen only matches errors produced by an open breaker.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.circuitOpen && !e.circuitOpen {
		return false
	}
	return t.Kind == e.Kind
}

// Sentinels for errors.Is.
var (
	ErrConfiguration       = &Error{Kind: KindConfiguration, Message: "invalid configuration"}
	ErrValidation          = &Error{Kind: KindValidation, Message: "invalid request parameter"}
	ErrUpstreamUnavailable = &Error{Kind: KindUpstreamUnavailable, Message: "movie data provider is unavailable"}
	ErrNotFound            = &Error{Kind: KindNotFound, Message: "resource not found"}
	ErrCircuitOpen         = &Error{Kind: KindUpstreamUnavailable, Message: "movie data provider is temporarily unavailable", circuitOpen: true}
)

// KindOf returns the kind of err, or KindUnknown if err is not an *Error.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// IsCircuitOpen reports whether err was produced by an open circuit breaker.
func IsCircuitOpen(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.circuitOpen
}

// NewValidationError reports a caller-supplied parameter that breaks its contract.
func NewValidationError(op, field, message string) *Error {
	return &Error{Kind: KindValidation, Op: op, Field: field, Message: message}
}

// NewNotFoundError reports a lookup the provider has no resource for.
func NewNotFoundError(op, message string) *Error {
	return &Error{Kind: KindNotFound, Op: op, Message: message}
}

func newConfigurationError(message string) *Error {
	return &Error{Kind: KindConfiguration, Op: "NewClient", Message: message}
}

func newUpstreamError(op string, cause error) *Error {
	return &Error{Kind: KindUpstreamUnavailable, Op: op, Message: ErrUpstreamUnavailable.Message, Err: cause}
}

// IsCanceled reports whether err stems from the caller abandoning the request.
// Canceled calls say nothing about provider health.
func IsCanceled(err error) bool {
	return errors.Is(err, context.Canceled)
}

func newCircuitOpenError(op string) *Error {
	return &Error{Kind: KindUpstreamUnavailable, Op: op, Message: ErrCircuitOpen.Message, circuitOpen: true}
}
