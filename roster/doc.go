// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

// Package roster implements the event roster engine: a registry of
// group sign-up events with role-capacity bookkeeping and reminder
// eligibility.
//
// [Registry] owns the set of events. Every mutating operation runs
// under one mutex, so no interleaved partial update is ever
// observable; read operations return deep snapshots, so rendering and
// notification happen outside the critical section. The registry is
// an ordinary injectable value — there is no package-level state —
// which keeps tests isolated and leaves room for a persistence
// swap-in later.
//
// An [Event] offers a fixed set of core roles (every participant
// holds exactly one) and special roles (optional, gated on holding a
// core role first). Capacities are declared per role; occupancy never
// exceeds a role's limit except that a participant re-selecting the
// role they already hold is never blocked by its own occupancy.
//
// [Registry.ScanReminders] computes which events have newly crossed a
// reminder threshold (one hour and thirty minutes before start) and
// flips each event's per-threshold flag exactly once. The scan is
// idempotent after the flags are set, so the caller may invoke it as
// often as it likes; cadence only affects reminder latency.
//
// [BuildView] converts an event snapshot into a render-ready
// view-model (rosters and selectable role options with availability),
// decoupled from any UI toolkit. The Discord layer consumes it; tests
// exercise it directly.
package roster
