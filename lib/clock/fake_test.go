// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

package clock

import (
	"testing"
	"time"
)

var testEpoch = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

func TestFakeNow(t *testing.T) {
	c := Fake(testEpoch)
	if got := c.Now(); !got.Equal(testEpoch) {
		t.Fatalf("Now() = %v, want %v", got, testEpoch)
	}

	c.Advance(90 * time.Second)
	want := testEpoch.Add(90 * time.Second)
	if got := c.Now(); !got.Equal(want) {
		t.Fatalf("Now() after Advance = %v, want %v", got, want)
	}
}

func TestFakeAfterFiresOnAdvance(t *testing.T) {
	c := Fake(testEpoch)
	ch := c.After(time.Minute)

	select {
	case <-ch:
		t.Fatal("After channel fired before Advance")
	default:
	}

	c.Advance(time.Minute)
	select {
	case fired := <-ch:
		if !fired.Equal(testEpoch.Add(time.Minute)) {
			t.Fatalf("fire time = %v, want %v", fired, testEpoch.Add(time.Minute))
		}
	default:
		t.Fatal("After channel did not fire after Advance")
	}
}

func TestFakeAfterNonPositiveFiresImmediately(t *testing.T) {
	c := Fake(testEpoch)
	select {
	case <-c.After(0):
	default:
		t.Fatal("After(0) did not fire immediately")
	}
}

func TestFakeTickerFiresPerInterval(t *testing.T) {
	c := Fake(testEpoch)
	ticker := c.NewTicker(time.Minute)
	defer ticker.Stop()

	c.Advance(time.Minute)
	select {
	case <-ticker.C:
	default:
		t.Fatal("ticker did not fire after one interval")
	}

	// A multi-interval advance delivers at most the channel capacity
	// (1), matching time.Ticker's drop behavior.
	c.Advance(3 * time.Minute)
	select {
	case <-ticker.C:
	default:
		t.Fatal("ticker did not fire after multi-interval advance")
	}
}

func TestFakeTickerStop(t *testing.T) {
	c := Fake(testEpoch)
	ticker := c.NewTicker(time.Minute)
	ticker.Stop()

	c.Advance(5 * time.Minute)
	select {
	case <-ticker.C:
		t.Fatal("stopped ticker fired")
	default:
	}
}

func TestFakeWaitForTimers(t *testing.T) {
	c := Fake(testEpoch)

	done := make(chan struct{})
	go func() {
		c.WaitForTimers(1)
		close(done)
	}()

	select {
	case <-done:
		t.Fatal("WaitForTimers returned before any timer was registered")
	case <-time.After(10 * time.Millisecond):
	}

	ticker := c.NewTicker(time.Minute)
	defer ticker.Stop()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("WaitForTimers did not return after ticker registration")
	}
}

func TestFakeNewTickerPanicsOnNonPositiveInterval(t *testing.T) {
	c := Fake(testEpoch)
	defer func() {
		if recover() == nil {
			t.Fatal("NewTicker(0) did not panic")
		}
	}()
	c.NewTicker(0)
}
