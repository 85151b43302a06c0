package domain

import "time"

// Target is the resolved end of a countdown. It is computed exactly once per
// run; the countdown loop measures against End rather than re-deriving it.
type Target struct {
	End              time.Time // wall clock, monotonic reading stripped
	RolledToTomorrow bool      // time-of-day target moved to the next day
	IgnoredDuration  string    // duration token overridden by an until target
}

// Remaining returns the whole seconds left until End, never negative.
// Sub-second remainders round up, so the countdown reaches zero at the
// target instant rather than one second early.
func (t Target) Remaining(now time.Time) int64 {
	d := t.End.Sub(now)
	if d <= 0 {
		return 0
	}
	secs := int64(d / time.Second)
	if d%time.Second != 0 {
		secs++
	}
	return secs
}
