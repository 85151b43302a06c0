package display

import "time"

// Semantic diagnostic lines. Wording lives here so the engine reads as
// logic, not copy.

// Resync reports frames skipped after a suspend or stalled paint.
func (d *Diag) Resync(skipped int64) {
	d.Noticef("resynced with the clock: %d frame(s) skipped", skipped)
}

// ThrottleClamped reports a per-line delay cut down to the frame budget.
func (d *Diag) ThrottleClamped(asked, clamped time.Duration) {
	d.Warnf("per-line delay %v would outlast a frame; using %v", asked, clamped)
}

// IgnoredDuration reports a duration token discarded in favor of an until
// target.
func (d *Diag) IgnoredDuration(token string) {
	d.Noticef("target time given; ignoring duration %q", token)
}

// Interrupted reports a cancelled countdown.
func (d *Diag) Interrupted() {
	d.Noticef("countdown interrupted")
}
