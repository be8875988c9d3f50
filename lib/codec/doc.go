// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides Rollcall's standard CBOR encoding configuration.
//
// Rollcall uses two serialization formats with a clear boundary:
//
//   - JSON for external interfaces: the Discord API (handled by
//     discordgo), the liveness HTTP endpoint, and CLI output.
//   - CBOR for the internal admin socket protocol between
//     rollcall-bot and rollcall-admin.
//
// This package provides the shared CBOR encoding and decoding modes so
// that both ends of the socket encode identically without duplicating
// configuration. The encoder uses Core Deterministic Encoding (RFC 8949
// §4.2): sorted map keys, smallest integer encoding, no
// indefinite-length items. Same logical data always produces identical
// bytes.
//
// For buffer-oriented operations:
//
//	data, err := codec.Marshal(value)
//	err = codec.Unmarshal(data, &value)
//
// For stream-oriented operations (the socket connection):
//
//	encoder := codec.NewEncoder(conn)
//	decoder := codec.NewDecoder(conn)
//
// Socket protocol types carry `json` struct tags: fxamacker/cbor v2
// reads `json` tags as fallback when `cbor` tags are absent, so a
// single tag controls field naming and omitempty for both the socket
// wire format and the CLI's --json output.
package codec
