// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

// rollcall-bot is the event sign-up daemon. It connects to Discord,
// registers the /create_event and /list_events commands, serves the
// per-event sign-up messages, scans for due start-time reminders once
// a minute, exposes a liveness HTTP endpoint, and answers read-only
// queries (status, list, show) on a local admin socket.
//
// Configuration comes from a yaml file named by --config or
// ROLLCALL_CONFIG; the bot token comes from ROLLCALL_BOT_TOKEN. All
// state is in memory — a restart discards every event.
package main
