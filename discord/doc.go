// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

// Package discord connects the roster registry to Discord. It owns the
// gateway session, registers the slash commands, drives the
// interactive event-setup flow, renders per-event sign-up messages
// with role select menus, and delivers start-time reminders to an
// event's origin channel.
//
// All rendering is derived from roster.EventView snapshots, so the
// embed and component builders are pure functions testable without a
// connection.
package discord
