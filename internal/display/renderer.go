package display

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/LucaBoschetto/countdown.sh/internal/domain"
	"github.com/LucaBoschetto/countdown.sh/internal/logger"
	"github.com/LucaBoschetto/countdown.sh/internal/terminal"
)

// FrameBudget caps the total per-frame throttle so painting never outlasts
// the one-second scheduler step.
const FrameBudget = 900 * time.Millisecond

// ClampThrottle caps a per-line delay so lines*delay stays inside
// FrameBudget, reporting whether it had to cut the value down.
func ClampThrottle(delay time.Duration, lines int) (time.Duration, bool) {
	if delay <= 0 || lines <= 0 {
		return delay, false
	}
	max := FrameBudget / time.Duration(lines)
	if delay > max {
		return max, true
	}
	return delay, false
}

// Cursor visibility and home sequences, written on the frame stream so they
// stay ordered with the frames they bracket.
const (
	hideCursor = "\x1b[?25l"
	showCursor = "\x1b[?25h"
	cursorHome = "\x1b[H"
)

// Option configures the renderer.
type Option func(*Renderer)

// WithLeftAlign disables centering.
func WithLeftAlign() Option {
	return func(r *Renderer) {
		r.leftAlign = true
	}
}

// WithThrottle sets the per-line paint delay. Pass the already clamped
// value; the renderer applies it as given.
func WithThrottle(d time.Duration) Option {
	return func(r *Renderer) {
		r.throttle = d
	}
}

// WithWidthFunc swaps the terminal width source, for tests.
func WithWidthFunc(f func() int) Option {
	return func(r *Renderer) {
		r.widthFn = f
	}
}

// Renderer paints countdown frames: glyph expansion, alignment, and one of
// the three screen-update modes. It owns the geometry needed to overwrite
// the previous block cleanly and is not safe for concurrent use; the single
// countdown loop is its only caller.
type Renderer struct {
	log       *logger.Logger
	artist    domain.GlyphArtist
	out       io.Writer
	mode      domain.RenderMode
	leftAlign bool
	throttle  time.Duration
	widthFn   func() int

	prevHeight int // rows of the last painted block, overwrite mode
	maxWidth   int // widest line painted so far in the run
}

// NewRenderer creates a renderer painting to out in the given mode.
func NewRenderer(log *logger.Logger, artist domain.GlyphArtist, out io.Writer, mode domain.RenderMode, opts ...Option) *Renderer {
	if log == nil {
		log = logger.Discard()
	}
	r := &Renderer{
		log:     log,
		artist:  artist,
		out:     out,
		mode:    mode,
		widthFn: terminal.Width,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Paint expands text with the first font that renders and paints the block.
// Extra fonts are fallbacks, used for the completion message.
func (r *Renderer) Paint(ctx context.Context, text string, fonts ...string) error {
	lines, err := r.expand(ctx, text, fonts)
	if err != nil {
		return err
	}
	switch r.mode {
	case domain.ModeClear:
		return r.paintClear(lines)
	case domain.ModeOverwrite:
		return r.paintOverwrite(lines)
	default:
		return r.paintScroll(lines)
	}
}

func (r *Renderer) expand(ctx context.Context, text string, fonts []string) ([]string, error) {
	var lastErr error
	for _, font := range fonts {
		lines, err := r.artist.Render(ctx, font, text)
		if err == nil {
			return lines, nil
		}
		lastErr = err
		r.log.Warn("font %q failed, trying next: %v", font, err)
	}
	return nil, lastErr
}

// paintScroll appends the frame after a separating blank line.
func (r *Renderer) paintScroll(lines []string) error {
	if err := r.write("\n"); err != nil {
		return err
	}
	for _, line := range lines {
		if err := r.write(r.align(line) + "\n"); err != nil {
			return err
		}
		r.pause()
	}
	return nil
}

// paintClear wipes the screen and draws the frame from the top.
func (r *Renderer) paintClear(lines []string) error {
	if err := r.write(ansi.EraseDisplay(2) + cursorHome); err != nil {
		return err
	}
	for _, line := range lines {
		if err := r.write(r.align(line) + "\n"); err != nil {
			return err
		}
		r.pause()
	}
	return nil
}

// paintOverwrite repaints the previous block in place. A leading blank row
// inside the block keeps the redraw slot stable, every row is padded to the
// widest row painted so far, and rows left over from a taller previous
// block are erased.
func (r *Renderer) paintOverwrite(lines []string) error {
	block := append([]string{""}, lines...)

	if r.prevHeight > 0 {
		if err := r.write(ansi.CursorUp(r.prevHeight)); err != nil {
			return err
		}
	}
	for _, line := range block {
		padded := r.pad(r.align(line))
		if err := r.write(padded + "\n"); err != nil {
			return err
		}
		r.pause()
	}
	if len(block) < r.prevHeight {
		if err := r.write(ansi.EraseDisplay(0)); err != nil {
			return err
		}
	}
	r.prevHeight = len(block)
	return nil
}

// EraseBlock removes the previously painted overwrite block, leaving the
// cursor where the block began. Other modes have nothing to erase.
func (r *Renderer) EraseBlock() error {
	if r.mode != domain.ModeOverwrite || r.prevHeight == 0 {
		return nil
	}
	if err := r.write(ansi.CursorUp(r.prevHeight) + ansi.EraseDisplay(0)); err != nil {
		return err
	}
	r.prevHeight = 0
	return nil
}

// InvalidateWidth forgets the widest row painted so far, so the next frame
// recomputes padding against the resized terminal.
func (r *Renderer) InvalidateWidth() {
	r.maxWidth = 0
}

// HideCursor hides the cursor for the duration of the run. Best effort.
func (r *Renderer) HideCursor() {
	r.write(hideCursor)
}

// ShowCursor restores the cursor. Best effort.
func (r *Renderer) ShowCursor() {
	r.write(showCursor)
}

// align centers a line against the current terminal width, re-read for
// every line so a resize lands mid-frame at worst.
func (r *Renderer) align(line string) string {
	if r.leftAlign || line == "" {
		return line
	}
	width := r.widthFn()
	if pad := (width - len(line)) / 2; pad > 0 {
		return strings.Repeat(" ", pad) + line
	}
	return line
}

// pad right-pads a row to the widest row painted so far, so a shorter new
// row fully overwrites a longer old one.
func (r *Renderer) pad(line string) string {
	if len(line) > r.maxWidth {
		r.maxWidth = len(line)
	}
	if n := r.maxWidth - len(line); n > 0 {
		return line + strings.Repeat(" ", n)
	}
	return line
}

func (r *Renderer) write(s string) error {
	_, err := io.WriteString(r.out, s)
	return err
}

// pause applies the per-line throttle. Cancellation is only observed
// between frames, so a plain sleep is fine here.
func (r *Renderer) pause() {
	if r.throttle > 0 {
		time.Sleep(r.throttle)
	}
}

// SetTitle writes the terminal title sequence to w. The caller picks a
// stream the colorizer does not own.
func SetTitle(w io.Writer, title string) {
	io.WriteString(w, ansi.SetWindowTitle(title))
}
