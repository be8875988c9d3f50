// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/rollcall-project/rollcall/lib/codec"
	"github.com/rollcall-project/rollcall/lib/testutil"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// startServer runs a SocketServer in a goroutine and waits for the
// socket file to appear. Returns the socket path and a cancel func
// that shuts the server down and waits for Serve to return.
func startServer(t *testing.T, configure func(*SocketServer)) (string, func()) {
	t.Helper()

	socketPath := filepath.Join(testutil.SocketDir(t), "admin.sock")
	server := NewSocketServer(socketPath, testLogger())
	configure(server)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- server.Serve(ctx)
	}()

	// Wait for the listener to come up by polling with the client.
	deadline := time.Now().Add(5 * time.Second)
	for {
		client := NewClient(socketPath)
		err := client.Call(context.Background(), "__probe__", nil, nil)
		var callErr *CallError
		if errors.As(err, &callErr) {
			// Server answered (with "unknown action") — it's up.
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("server did not start: %v", err)
		}
		time.Sleep(10 * time.Millisecond)
	}

	return socketPath, func() {
		cancel()
		if err := testutil.RequireReceive(t, done, 5*time.Second, "server shutdown"); err != nil {
			t.Fatalf("Serve returned error: %v", err)
		}
	}
}

func TestSocketRoundTrip(t *testing.T) {
	type echoRequest struct {
		Message string `cbor:"message"`
	}
	type echoResponse struct {
		Message string `json:"message"`
	}

	socketPath, shutdown := startServer(t, func(s *SocketServer) {
		s.Handle("echo", func(ctx context.Context, raw []byte) (any, error) {
			var req echoRequest
			if err := codec.Unmarshal(raw, &req); err != nil {
				return nil, err
			}
			return echoResponse{Message: req.Message}, nil
		})
	})
	defer shutdown()

	client := NewClient(socketPath)
	var got echoResponse
	err := client.Call(context.Background(), "echo", map[string]any{"message": "hello"}, &got)
	if err != nil {
		t.Fatalf("Call: %v", err)
	}
	if got.Message != "hello" {
		t.Fatalf("echoed message = %q, want %q", got.Message, "hello")
	}
}

func TestSocketUnknownAction(t *testing.T) {
	socketPath, shutdown := startServer(t, func(s *SocketServer) {})
	defer shutdown()

	client := NewClient(socketPath)
	err := client.Call(context.Background(), "nonsense", nil, nil)

	var callErr *CallError
	if !errors.As(err, &callErr) {
		t.Fatalf("error = %v, want *CallError", err)
	}
	if callErr.Action != "nonsense" {
		t.Fatalf("CallError.Action = %q, want %q", callErr.Action, "nonsense")
	}
}

func TestSocketHandlerError(t *testing.T) {
	socketPath, shutdown := startServer(t, func(s *SocketServer) {
		s.Handle("fail", func(ctx context.Context, raw []byte) (any, error) {
			return nil, errors.New("event 42 not found")
		})
	})
	defer shutdown()

	client := NewClient(socketPath)
	err := client.Call(context.Background(), "fail", nil, nil)

	var callErr *CallError
	if !errors.As(err, &callErr) {
		t.Fatalf("error = %v, want *CallError", err)
	}
	if callErr.Message != "event 42 not found" {
		t.Fatalf("CallError.Message = %q", callErr.Message)
	}
}

func TestSocketNilResultResponse(t *testing.T) {
	socketPath, shutdown := startServer(t, func(s *SocketServer) {
		s.Handle("ack", func(ctx context.Context, raw []byte) (any, error) {
			return nil, nil
		})
	})
	defer shutdown()

	client := NewClient(socketPath)
	if err := client.Call(context.Background(), "ack", nil, nil); err != nil {
		t.Fatalf("Call: %v", err)
	}
}

func TestSocketDuplicateHandlerPanics(t *testing.T) {
	server := NewSocketServer("/tmp/unused.sock", testLogger())
	server.Handle("status", func(ctx context.Context, raw []byte) (any, error) { return nil, nil })

	defer func() {
		if recover() == nil {
			t.Fatal("duplicate Handle did not panic")
		}
	}()
	server.Handle("status", func(ctx context.Context, raw []byte) (any, error) { return nil, nil })
}
