// Package engine runs one countdown end to end: resolve the target instant,
// beat out the remaining seconds, paint each frame, and fire the completion
// sequence when the count reaches zero.
package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/LucaBoschetto/countdown.sh/internal/colorize"
	"github.com/LucaBoschetto/countdown.sh/internal/display"
	"github.com/LucaBoschetto/countdown.sh/internal/domain"
	"github.com/LucaBoschetto/countdown.sh/internal/glyph"
	"github.com/LucaBoschetto/countdown.sh/internal/logger"
	"github.com/LucaBoschetto/countdown.sh/internal/schedule"
	"github.com/LucaBoschetto/countdown.sh/internal/sound"
	"github.com/LucaBoschetto/countdown.sh/internal/terminal"
	"github.com/LucaBoschetto/countdown.sh/internal/timespec"
)

// Option configures the engine.
type Option func(*Engine)

// WithClock swaps the time source, for tests.
func WithClock(c schedule.Clock) Option {
	return func(e *Engine) {
		e.clock = c
	}
}

// WithArtist swaps the glyph artist, for tests.
func WithArtist(a domain.GlyphArtist) Option {
	return func(e *Engine) {
		e.artist = a
	}
}

// WithCuePlayer injects the completion cue player, overriding detection.
func WithCuePlayer(p domain.CuePlayer) Option {
	return func(e *Engine) {
		e.cue = p
	}
}

// WithColorizer injects a prepared colorizer pipe, overriding the one built
// from the settings.
func WithColorizer(p *colorize.Pipe) Option {
	return func(e *Engine) {
		e.colorizer = p
	}
}

// WithDiag redirects user-facing diagnostics.
func WithDiag(d *display.Diag) Option {
	return func(e *Engine) {
		e.diag = d
	}
}

// WithOutput redirects the frame stream, for tests.
func WithOutput(w io.Writer) Option {
	return func(e *Engine) {
		e.out = w
	}
}

// WithTitleOutput redirects the terminal title sequences.
func WithTitleOutput(w io.Writer) Option {
	return func(e *Engine) {
		e.titleOut = w
	}
}

// WithConfirmInput redirects the confirmation answer source.
func WithConfirmInput(r io.Reader) Option {
	return func(e *Engine) {
		e.confirmIn = r
	}
}

// WithResizeEvents hooks up the terminal resize watcher.
func WithResizeEvents(ch <-chan terminal.Event) Option {
	return func(e *Engine) {
		e.resize = ch
	}
}

// WithLocation pins the location time-of-day targets resolve in.
func WithLocation(loc *time.Location) Option {
	return func(e *Engine) {
		e.loc = loc
	}
}

// Engine owns one countdown run. It wires the resolver, scheduler, renderer,
// and completion helpers together; frames leave through the frame stream,
// everything else through the diagnostic writer.
type Engine struct {
	settings domain.Settings
	log      *logger.Logger

	clock     schedule.Clock
	artist    domain.GlyphArtist
	cue       domain.CuePlayer
	colorizer *colorize.Pipe
	diag      *display.Diag
	out       io.Writer // frame stream when color is off
	frameOut  io.Writer // live frame stream for the run, set in prepare
	titleOut  io.Writer
	confirmIn io.Reader
	resize    <-chan terminal.Event
	loc       *time.Location
}

// New assembles an engine around validated settings. Options mostly serve
// tests; the gaps are filled with the real clock, artist, colorizer, and cue
// player.
func New(settings domain.Settings, log *logger.Logger, opts ...Option) *Engine {
	if log == nil {
		log = logger.Discard()
	}
	e := &Engine{
		settings:  settings,
		log:       log,
		clock:     schedule.SystemClock,
		out:       os.Stdout,
		titleOut:  os.Stderr,
		confirmIn: os.Stdin,
		loc:       time.Local,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.artist == nil {
		e.artist = glyph.NewArtist(log)
	}
	if e.diag == nil {
		e.diag = display.NewDiag(log, os.Stderr)
	}
	if e.cue == nil && settings.Sound {
		e.cue = sound.Select(log, os.Stderr)
	}
	if e.colorizer == nil && settings.Color {
		e.colorizer = colorize.New(log, settings.Spread, settings.Freq)
	}
	e.frameOut = e.out
	return e
}

// Run executes the countdown and returns when it completes, is declined, or
// is interrupted. The sentinel errors in the domain package classify the
// failure for exit-code mapping; a finish command's own failure is returned
// as is.
func (e *Engine) Run(ctx context.Context) error {
	target, err := e.resolveTarget()
	if err != nil {
		return err
	}

	r, cleanup, err := e.prepare(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	r.HideCursor()
	defer r.ShowCursor()

	if err := e.countdown(ctx, r, target); err != nil {
		return e.handleInterrupt(r, err)
	}
	if err := e.complete(ctx, r); err != nil {
		return e.handleInterrupt(r, err)
	}
	return nil
}

// resolveTarget turns the raw duration/until settings into the end instant
// and applies the long-roll confirmation.
func (e *Engine) resolveTarget() (domain.Target, error) {
	now := e.clock.Now()

	resolver := timespec.NewResolver(e.log, e.loc)
	target, err := resolver.Resolve(e.settings.Duration, e.settings.Until, now)
	if err != nil {
		return domain.Target{}, err
	}
	if target.IgnoredDuration != "" {
		e.diag.IgnoredDuration(target.IgnoredDuration)
	}

	policy := timespec.ConfirmPolicy{
		AssumeYes:   e.settings.AssumeYes,
		Interactive: e.settings.Interactive,
		In:          e.confirmIn,
		Prompt:      e.diag.Promptf,
		Notice:      e.diag.Noticef,
	}
	if err := timespec.ConfirmRoll(target, now, policy); err != nil {
		return domain.Target{}, err
	}
	return target, nil
}

// prepare checks the external render chain, probes one frame to validate the
// font and size the throttle, and starts the colorizer. The returned cleanup
// joins the colorizer and is safe to call when color is off.
func (e *Engine) prepare(ctx context.Context) (*display.Renderer, func(), error) {
	if err := e.artist.Check(); err != nil {
		return nil, nil, err
	}
	if e.colorizer != nil {
		if err := e.colorizer.Check(); err != nil {
			return nil, nil, err
		}
	}

	// The probe fails before anything is painted, so an unknown font is an
	// upfront error rather than a mid-run surprise. Its height also sizes
	// the per-line throttle: art rows plus the separator row.
	probe, err := e.artist.Render(ctx, e.settings.Font, display.FormatRemaining(0))
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", domain.ErrRenderDepMissing, err)
	}

	throttle := e.settings.Throttle
	if clamped, cut := display.ClampThrottle(throttle, len(probe)+1); cut {
		e.diag.ThrottleClamped(throttle, clamped)
		throttle = clamped
	}

	cleanup := func() {}
	if e.colorizer != nil {
		if err := e.colorizer.Start(); err != nil {
			return nil, nil, err
		}
		e.frameOut = e.colorizer
		cleanup = func() {
			if err := e.colorizer.Close(); err != nil {
				e.log.Warn("colorizer shutdown: %v", err)
			}
		}
	}

	opts := []display.Option{display.WithThrottle(throttle)}
	if e.settings.LeftAlign {
		opts = append(opts, display.WithLeftAlign())
	}
	r := display.NewRenderer(e.log, e.artist, e.frameOut, e.settings.Mode, opts...)
	return r, cleanup, nil
}

// countdown paints one frame per remaining second until the target is
// exhausted.
func (e *Engine) countdown(ctx context.Context, r *display.Renderer, target domain.Target) error {
	scheduler := schedule.New(e.log, schedule.WithClock(e.clock))
	return scheduler.Run(ctx, target, func(tick schedule.Tick) error {
		if tick.Skipped > 0 {
			e.diag.Resync(tick.Skipped)
		}
		e.drainResize(r)

		text := display.FormatRemaining(tick.Remaining)
		if err := r.Paint(ctx, text, e.settings.Font); err != nil {
			return err
		}
		if e.settings.Title {
			display.SetTitle(e.titleOut, text)
		}
		return nil
	})
}

// drainResize consumes a pending resize event, if any, and drops the
// renderer's width memory so the next frame recomputes its geometry.
func (e *Engine) drainResize(r *display.Renderer) {
	if e.resize == nil {
		return
	}
	select {
	case ev := <-e.resize:
		e.log.Debug("terminal resized to %dx%d", ev.Width, ev.Height)
		r.InvalidateWidth()
	default:
	}
}

// handleInterrupt erases the live frame block and prints the interruption
// notice, so Ctrl-C leaves the scrollback tidy. Other errors pass through
// untouched.
func (e *Engine) handleInterrupt(r *display.Renderer, err error) error {
	if errors.Is(err, domain.ErrInterrupted) {
		if eraseErr := r.EraseBlock(); eraseErr != nil {
			e.log.Warn("erasing frame block: %v", eraseErr)
		}
		e.diag.Interrupted()
	}
	return err
}
