// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

package roster

import (
	"fmt"
	"sort"
	"sync"
	"time"
)

// Registry owns the set of events for the lifetime of the process.
// All operations are serialized by one mutex; the call volume is
// community-sized, so coarse locking is the simplest correct model.
// There is no persistence — a restart discards all events.
type Registry struct {
	mu     sync.Mutex
	events map[int]*Event
	nextID int
}

// NewRegistry returns an empty registry. IDs start at 1.
func NewRegistry() *Registry {
	return &Registry{
		events: make(map[int]*Event),
		nextID: 1,
	}
}

// CreateEventInput carries the fields of a create operation. Role
// names must come from the fixed catalogs; roles absent from the
// limit maps default to capacity 0.
type CreateEventInput struct {
	Name        string
	Description string
	Type        EventType

	// StartTime is the literal YYYY-MM-DD HH:MM string as typed by
	// the user.
	StartTime string

	CoreLimits    map[string]int
	SpecialLimits map[string]int

	// OriginChannel is the chat channel the sign-up message will be
	// posted to. Stored passthrough.
	OriginChannel string
}

// CreateEvent validates the input, allocates the next sequential ID,
// and stores the event with an empty participant set and cleared
// reminder flags. Returns the new event's ID.
//
// Errors: ErrInvalidEventType, ErrInvalidTimeFormat, ErrUnknownRole
// for a limit key outside the catalogs, ErrNoCapacity when the core
// limits sum to zero.
func (r *Registry) CreateEvent(input CreateEventInput) (int, error) {
	if !input.Type.Valid() {
		return 0, fmt.Errorf("%w: %q", ErrInvalidEventType, input.Type)
	}

	startTime, err := ParseStartTime(input.StartTime)
	if err != nil {
		return 0, err
	}

	coreLimits, err := buildLimits(coreRoles, input.CoreLimits, IsCoreRole)
	if err != nil {
		return 0, err
	}
	specialLimits, err := buildLimits(specialRoles, input.SpecialLimits, IsSpecialRole)
	if err != nil {
		return 0, err
	}

	totalCore := 0
	for _, limit := range coreLimits {
		totalCore += limit
	}
	if totalCore == 0 {
		return 0, ErrNoCapacity
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.nextID
	r.nextID++

	r.events[id] = &Event{
		ID:            id,
		Name:          input.Name,
		Description:   input.Description,
		Type:          input.Type,
		StartTime:     startTime,
		CoreLimits:    coreLimits,
		SpecialLimits: specialLimits,
		Participants:  make(map[string]Participant),
		OriginChannel: input.OriginChannel,
	}
	return id, nil
}

// buildLimits materializes a full limit map: every catalog role with
// capacity 0, overlaid with the caller's declared capacities.
func buildLimits(catalog []RoleSpec, declared map[string]int, inCatalog func(string) bool) (map[string]int, error) {
	limits := make(map[string]int, len(catalog))
	for _, spec := range catalog {
		limits[spec.Name] = 0
	}
	for role, limit := range declared {
		if !inCatalog(role) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownRole, role)
		}
		if limit < 0 {
			return nil, fmt.Errorf("role %q: negative limit %d", role, limit)
		}
		limits[role] = limit
	}
	return limits, nil
}

// SetSpecialCapacity overwrites the named special-role capacities
// with the supplied values ("declare current total", not a top-up).
// Entries absent from limits are left unchanged.
//
// Errors: ErrEventNotFound, ErrUnknownRole for a name outside the
// special-role catalog. On error no entry is modified.
func (r *Registry) SetSpecialCapacity(eventID int, limits map[string]int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	event, exists := r.events[eventID]
	if !exists {
		return fmt.Errorf("event %d: %w", eventID, ErrEventNotFound)
	}

	// Validate everything before touching the event so a partial
	// update is never observable.
	for role, limit := range limits {
		if !IsSpecialRole(role) {
			return fmt.Errorf("%w: %q", ErrUnknownRole, role)
		}
		if limit < 0 {
			return fmt.Errorf("role %q: negative limit %d", role, limit)
		}
	}
	for role, limit := range limits {
		event.SpecialLimits[role] = limit
	}
	return nil
}

// SetOrigin records the chat message reference for the event's
// rendered sign-up message. Passthrough data for the gateway.
func (r *Registry) SetOrigin(eventID int, channelID, messageID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	event, exists := r.events[eventID]
	if !exists {
		return fmt.Errorf("event %d: %w", eventID, ErrEventNotFound)
	}
	event.OriginChannel = channelID
	event.OriginMessage = messageID
	return nil
}

// JoinCore assigns a core role to the user, creating their
// participant record if this is their first join. Re-selecting the
// role the user already holds is idempotent and never blocked by its
// own occupancy. A core-role change leaves any existing special role
// untouched.
//
// Errors: ErrEventNotFound, ErrUnknownRole when the role has no
// declared slots on this event, ErrRoleFull.
func (r *Registry) JoinCore(eventID int, userID, displayName, role string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	event, exists := r.events[eventID]
	if !exists {
		return fmt.Errorf("event %d: %w", eventID, ErrEventNotFound)
	}

	limit := event.CoreLimits[role]
	if !IsCoreRole(role) || limit == 0 {
		return fmt.Errorf("%w: %q is not a configured core role", ErrUnknownRole, role)
	}

	participant, joined := event.Participants[userID]
	alreadyHolds := joined && participant.CoreRole == role
	if !alreadyHolds && event.occupancy(role, KindCore) >= limit {
		return fmt.Errorf("%w: %s", ErrRoleFull, role)
	}

	if !joined {
		event.Participants[userID] = Participant{
			DisplayName: displayName,
			CoreRole:    role,
		}
		return nil
	}

	participant.DisplayName = displayName
	participant.CoreRole = role
	event.Participants[userID] = participant
	return nil
}

// JoinSpecial assigns (or, with an empty role, clears) the user's
// special role. The user must already hold a core role. The same
// self-reassignment exception as JoinCore applies.
//
// Errors: ErrEventNotFound, ErrNoCoreRoleYet, ErrUnknownRole when the
// role has no declared slots on this event, ErrRoleFull.
func (r *Registry) JoinSpecial(eventID int, userID, role string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	event, exists := r.events[eventID]
	if !exists {
		return fmt.Errorf("event %d: %w", eventID, ErrEventNotFound)
	}

	participant, joined := event.Participants[userID]
	if !joined {
		return ErrNoCoreRoleYet
	}

	if role == "" {
		participant.SpecialRole = ""
		event.Participants[userID] = participant
		return nil
	}

	limit := event.SpecialLimits[role]
	if !IsSpecialRole(role) || limit == 0 {
		return fmt.Errorf("%w: %q is not a configured special role", ErrUnknownRole, role)
	}

	if participant.SpecialRole != role && event.occupancy(role, KindSpecial) >= limit {
		return fmt.Errorf("%w: %s", ErrRoleFull, role)
	}

	participant.SpecialRole = role
	event.Participants[userID] = participant
	return nil
}

// Leave removes the user's participant record entirely, freeing their
// core and special slots simultaneously.
//
// Errors: ErrEventNotFound, ErrNotParticipant.
func (r *Registry) Leave(eventID int, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	event, exists := r.events[eventID]
	if !exists {
		return fmt.Errorf("event %d: %w", eventID, ErrEventNotFound)
	}
	if _, joined := event.Participants[userID]; !joined {
		return ErrNotParticipant
	}
	delete(event.Participants, userID)
	return nil
}

// Occupancy returns the current occupancy and configured limit for a
// role. Pure read.
//
// Errors: ErrEventNotFound, ErrUnknownRole for a role outside the
// kind's catalog.
func (r *Registry) Occupancy(eventID int, role string, kind RoleKind) (current, limit int, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	event, exists := r.events[eventID]
	if !exists {
		return 0, 0, fmt.Errorf("event %d: %w", eventID, ErrEventNotFound)
	}

	var limits map[string]int
	switch kind {
	case KindCore:
		if !IsCoreRole(role) {
			return 0, 0, fmt.Errorf("%w: %q", ErrUnknownRole, role)
		}
		limits = event.CoreLimits
	case KindSpecial:
		if !IsSpecialRole(role) {
			return 0, 0, fmt.Errorf("%w: %q", ErrUnknownRole, role)
		}
		limits = event.SpecialLimits
	default:
		return 0, 0, fmt.Errorf("unknown role kind %q", kind)
	}

	return event.occupancy(role, kind), limits[role], nil
}

// Snapshot returns a deep copy of the event, or false if the ID is
// unknown.
func (r *Registry) Snapshot(eventID int) (Event, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	event, exists := r.events[eventID]
	if !exists {
		return Event{}, false
	}
	return event.clone(), true
}

// EventSummary is one row of the listing view.
type EventSummary struct {
	ID               int       `json:"id"`
	Name             string    `json:"name"`
	Type             EventType `json:"type"`
	StartTime        time.Time `json:"start_time"`
	ParticipantCount int       `json:"participant_count"`
	TotalCoreSlots   int       `json:"total_core_slots"`
}

// Events returns a summary of every event, ordered by ID.
func (r *Registry) Events() []EventSummary {
	r.mu.Lock()
	defer r.mu.Unlock()

	summaries := make([]EventSummary, 0, len(r.events))
	for _, event := range r.events {
		summaries = append(summaries, EventSummary{
			ID:               event.ID,
			Name:             event.Name,
			Type:             event.Type,
			StartTime:        event.StartTime,
			ParticipantCount: len(event.Participants),
			TotalCoreSlots:   event.TotalCoreSlots(),
		})
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].ID < summaries[j].ID
	})
	return summaries
}

// Len returns the number of events in the registry.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}
