// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/rollcall-project/rollcall/lib/clock"
	"github.com/rollcall-project/rollcall/roster"
)

// reminderNotifier delivers one due reminder. The Discord gateway
// implements it; tests use a recording stub.
type reminderNotifier interface {
	DeliverReminder(roster.Reminder) error
}

// runReminderLoop scans the registry on every tick and delivers
// whatever came due. Delivery is at-most-once: the scan flips the
// per-event flags before handing reminders out, so a failed send is
// logged and never retried. Returns when the context is cancelled.
func runReminderLoop(ctx context.Context, registry *roster.Registry, notifier reminderNotifier, clk clock.Clock, interval time.Duration, logger *slog.Logger) {
	ticker := clk.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			for _, reminder := range registry.ScanReminders(now) {
				if err := notifier.DeliverReminder(reminder); err != nil {
					logger.Error("reminder delivery failed",
						"event_id", reminder.EventID,
						"label", reminder.Label,
						"error", err,
					)
					continue
				}
				logger.Info("reminder delivered",
					"event_id", reminder.EventID,
					"label", reminder.Label,
					"participants", len(reminder.ParticipantIDs),
				)
			}
		}
	}
}
