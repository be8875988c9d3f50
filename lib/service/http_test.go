// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/rollcall-project/rollcall/lib/testutil"
)

func TestHTTPServerServesRequests(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "ok")
	})

	server := NewHTTPServer(HTTPServerConfig{
		Address: "127.0.0.1:0",
		Handler: mux,
		Logger:  testLogger(),
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- server.Serve(ctx)
	}()

	testutil.RequireClosed(t, server.Ready(), 5*time.Second, "server ready")

	resp, err := http.Get("http://" + server.Addr().String() + "/health")
	if err != nil {
		t.Fatalf("GET /health: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if string(body) != "ok" {
		t.Fatalf("body = %q, want ok", body)
	}

	cancel()
	if err := testutil.RequireReceive(t, done, 5*time.Second, "server shutdown"); err != nil {
		t.Fatalf("Serve returned error: %v", err)
	}
}

func TestHTTPServerGracefulShutdown(t *testing.T) {
	release := make(chan struct{})
	mux := http.NewServeMux()
	mux.HandleFunc("/slow", func(w http.ResponseWriter, r *http.Request) {
		<-release
		fmt.Fprint(w, "done")
	})

	server := NewHTTPServer(HTTPServerConfig{
		Address:         "127.0.0.1:0",
		Handler:         mux,
		Logger:          testLogger(),
		ShutdownTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- server.Serve(ctx)
	}()
	testutil.RequireClosed(t, server.Ready(), 5*time.Second, "server ready")

	// Start an in-flight request, then cancel the server context.
	type result struct {
		body string
		err  error
	}
	results := make(chan result, 1)
	go func() {
		resp, err := http.Get("http://" + server.Addr().String() + "/slow")
		if err != nil {
			results <- result{err: err}
			return
		}
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		results <- result{body: string(body)}
	}()

	// Give the request time to reach the handler before shutdown.
	time.Sleep(50 * time.Millisecond)
	cancel()
	close(release)

	got := testutil.RequireReceive(t, results, 5*time.Second, "in-flight request")
	if got.err != nil {
		t.Fatalf("in-flight request failed: %v", got.err)
	}
	if got.body != "done" {
		t.Fatalf("in-flight body = %q, want done", got.body)
	}

	if err := testutil.RequireReceive(t, done, 5*time.Second, "server shutdown"); err != nil {
		t.Fatalf("Serve returned error: %v", err)
	}
}

func TestHTTPServerRequiresConfig(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("NewHTTPServer accepted empty address")
		}
	}()
	NewHTTPServer(HTTPServerConfig{Handler: http.NewServeMux(), Logger: testLogger()})
}
