// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

package roster

import (
	"testing"
	"time"
)

// createAt creates an event starting at the given time and returns its ID.
func createAt(t *testing.T, registry *Registry, start time.Time) int {
	t.Helper()
	input := makeInput()
	input.StartTime = start.Format(StartTimeLayout)
	return mustCreate(t, registry, input)
}

func TestScanRemindersThresholds(t *testing.T) {
	registry := NewRegistry()
	start := time.Date(2026, 9, 1, 20, 0, 0, 0, time.Local)
	id := createAt(t, registry, start)

	if err := registry.JoinCore(id, "user2", "Joko", "Tank"); err != nil {
		t.Fatalf("JoinCore: %v", err)
	}
	if err := registry.JoinCore(id, "user1", "Aurene", "Heal"); err != nil {
		t.Fatalf("JoinCore: %v", err)
	}

	// T-90m: outside both thresholds.
	if due := registry.ScanReminders(start.Add(-90 * time.Minute)); len(due) != 0 {
		t.Fatalf("T-90m emitted %v, want nothing", due)
	}

	// T-45m: the one-hour reminder, exactly once.
	due := registry.ScanReminders(start.Add(-45 * time.Minute))
	if len(due) != 1 {
		t.Fatalf("T-45m emitted %d reminders, want 1", len(due))
	}
	reminder := due[0]
	if reminder.EventID != id || reminder.Label != ReminderOneHour {
		t.Fatalf("T-45m reminder = %+v, want event %d label %q", reminder, id, ReminderOneHour)
	}
	if reminder.EventName != "Weekly Raid" || !reminder.StartTime.Equal(start) {
		t.Fatalf("reminder payload = %+v", reminder)
	}
	want := []string{"user1", "user2"}
	if len(reminder.ParticipantIDs) != 2 || reminder.ParticipantIDs[0] != want[0] || reminder.ParticipantIDs[1] != want[1] {
		t.Fatalf("ParticipantIDs = %v, want %v", reminder.ParticipantIDs, want)
	}

	// T-10m: the thirty-minute reminder, exactly once.
	due = registry.ScanReminders(start.Add(-10 * time.Minute))
	if len(due) != 1 || due[0].Label != ReminderThirtyMinutes {
		t.Fatalf("T-10m emitted %v, want one %q reminder", due, ReminderThirtyMinutes)
	}

	// T-10m again: both flags already set, nothing due.
	if due := registry.ScanReminders(start.Add(-10 * time.Minute)); len(due) != 0 {
		t.Fatalf("repeat scan emitted %v, want nothing", due)
	}
}

func TestScanRemindersBothThresholdsInOneScan(t *testing.T) {
	registry := NewRegistry()
	start := time.Date(2026, 9, 1, 20, 0, 0, 0, time.Local)
	id := createAt(t, registry, start)

	// First scan lands inside both windows: both reminders emitted,
	// one hour first.
	due := registry.ScanReminders(start.Add(-5 * time.Minute))
	if len(due) != 2 {
		t.Fatalf("emitted %d reminders, want 2", len(due))
	}
	if due[0].Label != ReminderOneHour || due[1].Label != ReminderThirtyMinutes {
		t.Fatalf("order = %q, %q, want one hour then thirty minutes", due[0].Label, due[1].Label)
	}
	if due[0].EventID != id || due[1].EventID != id {
		t.Fatalf("event IDs = %d, %d, want %d", due[0].EventID, due[1].EventID, id)
	}

	if due := registry.ScanReminders(start); len(due) != 0 {
		t.Fatalf("repeat scan emitted %v, want nothing", due)
	}
}

func TestScanRemindersExactBoundary(t *testing.T) {
	registry := NewRegistry()
	start := time.Date(2026, 9, 1, 20, 0, 0, 0, time.Local)
	createAt(t, registry, start)

	// now == start - 1h is inside the window (>= threshold).
	due := registry.ScanReminders(start.Add(-time.Hour))
	if len(due) != 1 || due[0].Label != ReminderOneHour {
		t.Fatalf("boundary scan emitted %v, want one %q reminder", due, ReminderOneHour)
	}
}

func TestScanRemindersMultipleEventsOrdered(t *testing.T) {
	registry := NewRegistry()
	start := time.Date(2026, 9, 1, 20, 0, 0, 0, time.Local)
	first := createAt(t, registry, start)
	second := createAt(t, registry, start.Add(10*time.Minute))

	due := registry.ScanReminders(start.Add(-30 * time.Minute))
	if len(due) != 3 {
		t.Fatalf("emitted %d reminders, want 3", len(due))
	}
	// Event 1 crossed both thresholds, event 2 only the one-hour one.
	if due[0].EventID != first || due[0].Label != ReminderOneHour {
		t.Fatalf("due[0] = %+v", due[0])
	}
	if due[1].EventID != first || due[1].Label != ReminderThirtyMinutes {
		t.Fatalf("due[1] = %+v", due[1])
	}
	if due[2].EventID != second || due[2].Label != ReminderOneHour {
		t.Fatalf("due[2] = %+v", due[2])
	}
}

func TestScanRemindersFiresForPastEvents(t *testing.T) {
	registry := NewRegistry()
	start := time.Date(2026, 9, 1, 20, 0, 0, 0, time.Local)
	createAt(t, registry, start)

	// An event already underway still gets both reminders once. The
	// gateway decides whether a late reminder is worth posting.
	due := registry.ScanReminders(start.Add(2 * time.Hour))
	if len(due) != 2 {
		t.Fatalf("emitted %d reminders, want 2", len(due))
	}
}
