// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"log/slog"
	"time"

	"github.com/rollcall-project/rollcall/lib/clock"
	"github.com/rollcall-project/rollcall/roster"
)

// gatewayStatus is the slice of the Discord gateway the observability
// surfaces need. Tests substitute a stub.
type gatewayStatus interface {
	Connected() bool
}

// botService bundles the daemon's observability state: the registry,
// the gateway's connection flag, and the start time for uptime
// reporting. The health handler and the admin socket actions hang off
// it.
type botService struct {
	registry  *roster.Registry
	gateway   gatewayStatus
	clock     clock.Clock
	startedAt time.Time
	logger    *slog.Logger
}
