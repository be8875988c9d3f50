// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

package roster

import (
	"fmt"
	"time"
)

// StartTimeLayout is the literal format users type for an event's
// start time. Interpreted in the bot's local timezone.
const StartTimeLayout = "2006-01-02 15:04"

// ParseStartTime parses the YYYY-MM-DD HH:MM literal format. The
// returned error wraps ErrInvalidTimeFormat.
func ParseStartTime(value string) (time.Time, error) {
	parsed, err := time.ParseInLocation(StartTimeLayout, value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q (want YYYY-MM-DD HH:MM)", ErrInvalidTimeFormat, value)
	}
	return parsed, nil
}

// Participant is one user's sign-up within an event. A participant
// cannot exist without a core role; the special role is optional
// (empty string means none).
type Participant struct {
	DisplayName string
	CoreRole    string
	SpecialRole string
}

// Event is a single sign-up event. Values returned by Registry
// methods are deep snapshots: mutating them has no effect on the
// registry's state.
type Event struct {
	// ID is assigned sequentially starting at 1, immutable.
	ID int

	Name        string
	Description string
	Type        EventType

	// StartTime is fixed at creation.
	StartTime time.Time

	// CoreLimits and SpecialLimits map every catalog role name to its
	// declared capacity. Roles the creator did not configure are
	// present with limit 0.
	CoreLimits    map[string]int
	SpecialLimits map[string]int

	// Participants is keyed by user ID.
	Participants map[string]Participant

	// RemindedOneHour and RemindedThirtyMin each flip from false to
	// true exactly once and never reset.
	RemindedOneHour   bool
	RemindedThirtyMin bool

	// OriginChannel and OriginMessage are opaque references the chat
	// gateway uses to locate the rendered sign-up message. The engine
	// stores them passthrough.
	OriginChannel string
	OriginMessage string
}

// clone returns a deep copy of the event.
func (e *Event) clone() Event {
	copied := *e
	copied.CoreLimits = make(map[string]int, len(e.CoreLimits))
	for role, limit := range e.CoreLimits {
		copied.CoreLimits[role] = limit
	}
	copied.SpecialLimits = make(map[string]int, len(e.SpecialLimits))
	for role, limit := range e.SpecialLimits {
		copied.SpecialLimits[role] = limit
	}
	copied.Participants = make(map[string]Participant, len(e.Participants))
	for userID, participant := range e.Participants {
		copied.Participants[userID] = participant
	}
	return copied
}

// occupancy counts participants currently holding the given role.
func (e *Event) occupancy(role string, kind RoleKind) int {
	count := 0
	for _, participant := range e.Participants {
		switch kind {
		case KindCore:
			if participant.CoreRole == role {
				count++
			}
		case KindSpecial:
			if participant.SpecialRole == role {
				count++
			}
		}
	}
	return count
}

// TotalCoreSlots sums the core role capacities. The listing view
// shows participants against this total.
func (e *Event) TotalCoreSlots() int {
	total := 0
	for _, limit := range e.CoreLimits {
		total += limit
	}
	return total
}
