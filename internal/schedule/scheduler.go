package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/LucaBoschetto/countdown.sh/internal/domain"
	"github.com/LucaBoschetto/countdown.sh/internal/logger"
)

// Tick is one scheduler beat.
type Tick struct {
	Remaining int64 // whole seconds left, never negative
	Skipped   int64 // values jumped over since the previous beat, >0 on a resync
}

// EmitFunc consumes one deduplicated tick. Returning an error stops the run.
type EmitFunc func(Tick) error

// Option configures the scheduler.
type Option func(*Scheduler)

// WithClock swaps the time source, for tests.
func WithClock(c Clock) Option {
	return func(s *Scheduler) {
		s.clock = c
	}
}

// WithStep changes the beat length from the default one second.
func WithStep(d time.Duration) Option {
	return func(s *Scheduler) {
		s.step = d
	}
}

// Scheduler emits one beat per second of remaining time until a target is
// exhausted. Cancellation is observed between beats, never mid-beat.
type Scheduler struct {
	log   *logger.Logger
	clock Clock
	step  time.Duration
}

// New creates a scheduler with the given options.
func New(log *logger.Logger, opts ...Option) *Scheduler {
	if log == nil {
		log = logger.Discard()
	}
	s := &Scheduler{log: log, clock: SystemClock, step: time.Second}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run beats until the target is exhausted or ctx is cancelled. A beat whose
// remaining value equals the previously emitted one (spurious wakeup) is
// suppressed. A drop of more than one between emitted values is reported
// through Tick.Skipped so the caller can surface the resync. The beat that
// reaches zero is emitted before Run returns.
func (s *Scheduler) Run(ctx context.Context, target domain.Target, emit EmitFunc) error {
	pacer := NewPacer(s.clock, s.step)
	prev := int64(-1)

	for {
		if ctx.Err() != nil {
			return fmt.Errorf("countdown stopped: %w", domain.ErrInterrupted)
		}

		remaining := target.Remaining(s.clock.Now())
		switch {
		case remaining == prev:
			s.log.Debug("spurious wake at %d, frame suppressed", remaining)
		default:
			tick := Tick{Remaining: remaining}
			if prev >= 0 && prev-remaining > 1 {
				tick.Skipped = prev - remaining - 1
				s.log.Debug("resync: remaining fell %d -> %d", prev, remaining)
			}
			if err := emit(tick); err != nil {
				return err
			}
			prev = remaining
		}

		if remaining == 0 {
			return nil
		}
		if err := pacer.Wait(ctx); err != nil {
			return fmt.Errorf("countdown stopped: %w", domain.ErrInterrupted)
		}
	}
}
