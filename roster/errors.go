// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

package roster

import "errors"

// The engine's error taxonomy. All are local, user-correctable
// conditions; the gateway maps each onto an ephemeral reply. Callers
// test with errors.Is — operations wrap these sentinels with context
// (role names, event IDs) via fmt.Errorf and %w.
var (
	// ErrInvalidEventType is returned by CreateEvent when the event
	// type is not in the fixed enumeration.
	ErrInvalidEventType = errors.New("invalid event type")

	// ErrInvalidTimeFormat is returned when a start time cannot be
	// parsed from the YYYY-MM-DD HH:MM literal format.
	ErrInvalidTimeFormat = errors.New("invalid time format")

	// ErrNoCapacity is returned by CreateEvent when the core role
	// limits sum to zero. An event must offer at least one slot.
	ErrNoCapacity = errors.New("event offers no core role slots")

	// ErrEventNotFound is returned when an event ID is unknown.
	ErrEventNotFound = errors.New("event not found")

	// ErrUnknownRole is returned when a role is not configured for
	// the event (not in the catalog, or with no slots declared).
	ErrUnknownRole = errors.New("unknown role")

	// ErrRoleFull is returned when a role's occupancy has reached its
	// limit and the requesting user does not already hold it.
	ErrRoleFull = errors.New("role is full")

	// ErrNoCoreRoleYet is returned by JoinSpecial when the user has
	// no participant record. A core role is the prerequisite gate.
	ErrNoCoreRoleYet = errors.New("no core role selected yet")

	// ErrNotParticipant is returned by Leave when the user is not in
	// the event. Non-fatal; surfaced to the user as-is.
	ErrNotParticipant = errors.New("not a participant of this event")
)
