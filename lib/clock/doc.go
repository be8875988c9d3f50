// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock provides an injectable time abstraction for testability.
//
// Production code accepts a Clock interface parameter instead of
// calling time.Now, time.After, or time.NewTicker directly. In
// production, Real() provides the standard library behavior. In tests,
// Fake() provides a deterministic clock that advances only when
// Advance is called.
//
// # Wiring Pattern
//
// Add a Clock field to structs that use time:
//
//	type Loop struct {
//	    clock clock.Clock
//	    // ...
//	}
//
// In production:
//
//	l := &Loop{clock: clock.Real()}
//
// In tests:
//
//	c := clock.Fake(time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC))
//	l := &Loop{clock: c}
//	// ... start goroutines ...
//	c.WaitForTimers(1) // wait for the loop to register its ticker
//	c.Advance(time.Minute) // fire the ticker deterministically
//
// # FakeClock Synchronization
//
// When a goroutine calls After or NewTicker on a FakeClock, it
// registers a pending waiter. Use WaitForTimers to block until a
// specific number of waiters are registered before calling Advance.
// This eliminates the race between timer registration and time
// advancement that plagues tests using time.Sleep for synchronization.
package clock
