// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

package roster

import (
	"sort"
	"time"
)

// Reminder labels, as rendered in the notification message.
const (
	ReminderOneHour       = "1 hour"
	ReminderThirtyMinutes = "30 minutes"
)

// Reminder lead times before an event's start.
const (
	oneHourLead       = time.Hour
	thirtyMinutesLead = 30 * time.Minute
)

// Reminder is one due notification, captured as a consistent snapshot
// while the registry lock is held. Delivery needs no second read.
type Reminder struct {
	EventID   int
	Label     string
	EventName string
	StartTime time.Time

	// OriginChannel is where the notification is posted.
	OriginChannel string

	// ParticipantIDs are the user IDs to mention, sorted for
	// deterministic output.
	ParticipantIDs []string
}

// ScanReminders checks every event against the reminder thresholds
// and returns the newly due notifications, flipping each event's
// per-threshold flag so the same reminder is never emitted twice.
// Both thresholds fire in the same scan when both are newly crossed.
// Safe to call repeatedly and frequently: once an event's flags are
// set the scan emits nothing for it.
//
// Delivery is the caller's concern and is fire-and-forget: a failed
// notification does not revert the flag.
func (r *Registry) ScanReminders(now time.Time) []Reminder {
	r.mu.Lock()
	defer r.mu.Unlock()

	var due []Reminder
	for _, event := range r.events {
		if !event.RemindedOneHour && !now.Before(event.StartTime.Add(-oneHourLead)) {
			event.RemindedOneHour = true
			due = append(due, reminderFor(event, ReminderOneHour))
		}
		if !event.RemindedThirtyMin && !now.Before(event.StartTime.Add(-thirtyMinutesLead)) {
			event.RemindedThirtyMin = true
			due = append(due, reminderFor(event, ReminderThirtyMinutes))
		}
	}

	// Map iteration order is random; order by event then by lead
	// time (1 hour before 30 minutes) so callers and tests see a
	// stable sequence.
	sort.Slice(due, func(i, j int) bool {
		if due[i].EventID != due[j].EventID {
			return due[i].EventID < due[j].EventID
		}
		return due[i].Label == ReminderOneHour && due[j].Label == ReminderThirtyMinutes
	})
	return due
}

// reminderFor snapshots the notification payload for one threshold.
func reminderFor(event *Event, label string) Reminder {
	participantIDs := make([]string, 0, len(event.Participants))
	for userID := range event.Participants {
		participantIDs = append(participantIDs, userID)
	}
	sort.Strings(participantIDs)

	return Reminder{
		EventID:        event.ID,
		Label:          label,
		EventName:      event.Name,
		StartTime:      event.StartTime,
		OriginChannel:  event.OriginChannel,
		ParticipantIDs: participantIDs,
	}
}
