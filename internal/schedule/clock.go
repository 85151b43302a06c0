// Package schedule drives the once-per-second countdown beat. A fixed anchor
// deadline advances by exactly one step per tick, so paint cost and late
// wakeups are absorbed instead of accumulating drift.
package schedule

import (
	"context"
	"time"
)

// Clock abstracts time so the loop can run against a fake in tests.
type Clock interface {
	// Now returns the current instant with the monotonic reading intact.
	Now() time.Time
	// SleepUntil blocks until the instant arrives or ctx is cancelled,
	// returning the context error in the latter case.
	SleepUntil(ctx context.Context, t time.Time) error
}

// SystemClock is the Clock used outside tests.
var SystemClock Clock = systemClock{}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

func (systemClock) SleepUntil(ctx context.Context, t time.Time) error {
	d := time.Until(t)
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
