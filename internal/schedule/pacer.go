package schedule

import (
	"context"
	"time"
)

// Pacer spaces work on a fixed step. Each Wait moves an anchor deadline
// forward by exactly one step and sleeps until it, so time spent between
// waits is absorbed rather than added to the cadence.
type Pacer struct {
	clock Clock
	step  time.Duration
	next  time.Time
}

// NewPacer returns a pacer anchored at the clock's current reading. The
// first Wait completes one step after that reading.
func NewPacer(clock Clock, step time.Duration) *Pacer {
	return &Pacer{clock: clock, step: step, next: clock.Now()}
}

// Wait advances the anchor one step and blocks until it arrives. When the
// anchor has fallen more than a full step behind (suspend, very slow paint),
// it realigns to one step from now instead of replaying the missed beats.
func (p *Pacer) Wait(ctx context.Context) error {
	p.next = p.next.Add(p.step)
	if now := p.clock.Now(); now.Sub(p.next) > p.step {
		p.next = now.Add(p.step)
	}
	return p.clock.SleepUntil(ctx, p.next)
}
