// Marquee - Movie Catalog Aggregation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package services

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/thejerf/suture/v4"
)

var _ suture.Service = (*HTTPServerService)(nil)

// fakeHTTPServer blocks in ListenAndServe until Shutdown unless listenErr is set.
type fakeHTTPServer struct {
	listenErr   error
	shutdownErr error

	listenCalls   atomic.Int32
	shutdownCalls atomic.Int32
	started       chan struct{}
	stopped       chan struct{}
	stopOnce      sync.Once
}

func newFakeHTTPServer() *fakeHTTPServer {
	return &fakeHTTPServer{
		started: make(chan struct{}, 1),
		stopped: make(chan struct{}),
	}
}

func (f *fakeHTTPServer) ListenAndServe() error {
	f.listenCalls.Add(1)
	select {
	case f.started <- struct{}{}:
	default:
	}
	if f.listenErr != nil {
		return f.listenErr
	}
	<-f.stopped
	return http.ErrServerClosed
}

func (f *fakeHTTPServer) Shutdown(context.Context) error {
	f.shutdownCalls.Add(1)
	f.stopOnce.Do(func() { close(f.stopped) })
	return f.shutdownErr
}

func waitStarted(t *testing.T, f *fakeHTTPServer) {
	t.Helper()
	select {
	case <-f.started:
	case <-time.After(time.Second):
		t.Fatal("server did not start")
	}
}

func TestNewHTTPServerService_Timeout(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want time.Duration
	}{
		{0, DefaultShutdownTimeout},
		{-5 * time.Second, DefaultShutdownTimeout},
		{3 * time.Second, 3 * time.Second},
	}
	for _, tt := range tests {
		svc := NewHTTPServerService(newFakeHTTPServer(), tt.in)
		if svc.shutdownTimeout != tt.want {
			t.Errorf("timeout %v: got %v, want %v", tt.in, svc.shutdownTimeout, tt.want)
		}
	}
	if got := NewHTTPServerService(newFakeHTTPServer(), 0).String(); got != "http-server" {
		t.Errorf("String() = %q, want http-server", got)
	}
}

func TestHTTPServerService_GracefulShutdown(t *testing.T) {
	server := newFakeHTTPServer()
	svc := NewHTTPServerService(server, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- svc.Serve(ctx) }()

	waitStarted(t, server)
	cancel()

	select {
	case err := <-errCh:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Serve() = %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Serve did not return after cancellation")
	}

	if n := server.listenCalls.Load(); n != 1 {
		t.Errorf("ListenAndServe calls = %d, want 1", n)
	}
	if n := server.shutdownCalls.Load(); n != 1 {
		t.Errorf("Shutdown calls = %d, want 1", n)
	}
}

func TestHTTPServerService_StartupFailure(t *testing.T) {
	bindErr := errors.New("bind: address already in use")
	server := newFakeHTTPServer()
	server.listenErr = bindErr

	err := NewHTTPServerService(server, time.Second).Serve(context.Background())
	if !errors.Is(err, bindErr) {
		t.Errorf("Serve() = %v, want wrapped bind error", err)
	}
	if n := server.shutdownCalls.Load(); n != 0 {
		t.Errorf("Shutdown calls = %d, want 0", n)
	}
}

func TestHTTPServerService_ShutdownFailure(t *testing.T) {
	shutdownErr := errors.New("shutdown deadline exceeded")
	server := newFakeHTTPServer()
	server.shutdownErr = shutdownErr
	svc := NewHTTPServerService(server, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- svc.Serve(ctx) }()

	waitStarted(t, server)
	cancel()

	select {
	case err := <-errCh:
		if !errors.Is(err, shutdownErr) {
			t.Errorf("Serve() = %v, want shutdown error", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Serve did not return")
	}
}

func TestHTTPServerService_RealServer(t *testing.T) {
	server := &http.Server{
		Addr:              "127.0.0.1:0",
		Handler:           http.NotFoundHandler(),
		ReadHeaderTimeout: time.Second,
	}
	svc := NewHTTPServerService(server, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- svc.Serve(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Serve() = %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Serve did not return")
	}
}

func TestHTTPServerService_WithSupervisor(t *testing.T) {
	server := newFakeHTTPServer()
	sup := suture.New("test-sup", suture.Spec{
		FailureThreshold: 3,
		FailureBackoff:   10 * time.Millisecond,
		Timeout:          2 * time.Second,
	})
	sup.Add(NewHTTPServerService(server, time.Second))

	ctx, cancel := context.WithCancel(context.Background())
	errCh := sup.ServeBackground(ctx)

	waitStarted(t, server)
	cancel()
	<-errCh

	if server.shutdownCalls.Load() < 1 {
		t.Error("server Shutdown was not called")
	}
}
