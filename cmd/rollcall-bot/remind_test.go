// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/rollcall-project/rollcall/lib/clock"
	"github.com/rollcall-project/rollcall/lib/testutil"
	"github.com/rollcall-project/rollcall/roster"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// recordingNotifier captures delivered reminders on a channel and can
// be told to fail every delivery.
type recordingNotifier struct {
	delivered chan roster.Reminder
	failWith  error
}

func newRecordingNotifier() *recordingNotifier {
	return &recordingNotifier{delivered: make(chan roster.Reminder, 16)}
}

func (n *recordingNotifier) DeliverReminder(reminder roster.Reminder) error {
	n.delivered <- reminder
	return n.failWith
}

// startLoop runs the reminder loop against a fake clock and returns
// once its ticker is registered, so Advance calls land deterministically.
func startLoop(t *testing.T, registry *roster.Registry, notifier reminderNotifier, clk *clock.FakeClock, interval time.Duration) func() {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		runReminderLoop(ctx, registry, notifier, clk, interval, testLogger())
	}()
	clk.WaitForTimers(1)

	return func() {
		cancel()
		testutil.RequireClosed(t, done, 5*time.Second, "reminder loop shutdown")
	}
}

func TestReminderLoopThresholds(t *testing.T) {
	registry := roster.NewRegistry()
	start := time.Date(2026, 9, 1, 20, 0, 0, 0, time.Local)
	eventID, err := registry.CreateEvent(roster.CreateEventInput{
		Name:          "Weekly Raid",
		Type:          roster.EventRaid,
		StartTime:     start.Format(roster.StartTimeLayout),
		CoreLimits:    map[string]int{"Tank": 1},
		OriginChannel: "channel-1",
	})
	if err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}
	if err := registry.JoinCore(eventID, "user1", "Aurene", "Tank"); err != nil {
		t.Fatalf("JoinCore: %v", err)
	}

	clk := clock.Fake(start.Add(-90 * time.Minute))
	notifier := newRecordingNotifier()
	stop := startLoop(t, registry, notifier, clk, 15*time.Minute)
	defer stop()

	// T-75m: neither threshold crossed.
	clk.Advance(15 * time.Minute)
	testutil.RequireNoReceive(t, notifier.delivered, 50*time.Millisecond, "no reminder at T-75m")

	// T-60m: one-hour reminder.
	clk.Advance(15 * time.Minute)
	reminder := testutil.RequireReceive(t, notifier.delivered, 5*time.Second, "one-hour reminder")
	if reminder.EventID != eventID || reminder.Label != roster.ReminderOneHour {
		t.Fatalf("reminder = %+v", reminder)
	}
	if reminder.OriginChannel != "channel-1" || len(reminder.ParticipantIDs) != 1 {
		t.Fatalf("reminder payload = %+v", reminder)
	}

	// T-45m: nothing new.
	clk.Advance(15 * time.Minute)
	testutil.RequireNoReceive(t, notifier.delivered, 50*time.Millisecond, "no reminder at T-45m")

	// T-30m: thirty-minute reminder.
	clk.Advance(15 * time.Minute)
	reminder = testutil.RequireReceive(t, notifier.delivered, 5*time.Second, "thirty-minute reminder")
	if reminder.Label != roster.ReminderThirtyMinutes {
		t.Fatalf("reminder label = %q", reminder.Label)
	}

	// T-15m: both flags set, loop stays quiet.
	clk.Advance(15 * time.Minute)
	testutil.RequireNoReceive(t, notifier.delivered, 50*time.Millisecond, "no reminder after both fired")
}

func TestReminderLoopFailedDeliveryNotRetried(t *testing.T) {
	registry := roster.NewRegistry()
	start := time.Date(2026, 9, 1, 20, 0, 0, 0, time.Local)
	if _, err := registry.CreateEvent(roster.CreateEventInput{
		Name:       "Weekly Raid",
		Type:       roster.EventRaid,
		StartTime:  start.Format(roster.StartTimeLayout),
		CoreLimits: map[string]int{"Tank": 1},
	}); err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}

	clk := clock.Fake(start.Add(-61 * time.Minute))
	notifier := newRecordingNotifier()
	notifier.failWith = errors.New("channel gone")
	stop := startLoop(t, registry, notifier, clk, time.Minute)
	defer stop()

	// Cross the one-hour threshold: delivery is attempted and fails.
	clk.Advance(time.Minute)
	testutil.RequireReceive(t, notifier.delivered, 5*time.Second, "failed delivery attempt")

	// The flag stayed set despite the failure: no retry next tick.
	clk.Advance(time.Minute)
	testutil.RequireNoReceive(t, notifier.delivered, 50*time.Millisecond, "no retry after failed delivery")
}

func TestReminderLoopStopsOnCancel(t *testing.T) {
	registry := roster.NewRegistry()
	clk := clock.Fake(time.Date(2026, 9, 1, 12, 0, 0, 0, time.Local))
	notifier := newRecordingNotifier()

	stop := startLoop(t, registry, notifier, clk, time.Minute)
	stop()
}
