// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

// Package service provides the process-level plumbing shared by
// Rollcall binaries: a CBOR request-response protocol over a Unix
// socket, the matching client, and a graceful-lifecycle HTTP server.
//
// [SocketServer] serves the admin protocol: each connection handles
// exactly one request-response cycle. The client writes a single CBOR
// map containing an "action" field plus action-specific parameters;
// the server routes to the registered [ActionFunc] and replies with a
// [Response] envelope. CBOR is self-delimiting, so no framing protocol
// is needed.
//
// [Client] is the other end of the socket, used by rollcall-admin.
// Each Call opens a fresh connection, matching the server's
// one-request-per-connection model.
//
// [HTTPServer] wraps net/http with the same Serve(ctx) lifecycle as
// SocketServer: it blocks until the context is cancelled, then drains
// in-flight requests. The liveness endpoint runs on it.
package service
