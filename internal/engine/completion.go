package engine

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/LucaBoschetto/countdown.sh/internal/display"
	"github.com/LucaBoschetto/countdown.sh/internal/domain"
	"github.com/LucaBoschetto/countdown.sh/internal/glyph"
	"github.com/LucaBoschetto/countdown.sh/internal/schedule"
	"github.com/LucaBoschetto/countdown.sh/internal/sound"
)

// complete runs the zero-cross sequence: paint the completion message, play
// the cues, then hand off to the finish command. An interrupt that lands
// between the zero frame and this point skips the whole sequence.
func (e *Engine) complete(ctx context.Context, r *display.Renderer) error {
	if ctx.Err() != nil {
		return fmt.Errorf("completion skipped: %w", domain.ErrInterrupted)
	}

	// The wide font is the fallback when the configured font cannot render
	// the message text.
	if err := r.Paint(ctx, e.settings.Message, e.settings.Font, glyph.WideFont); err != nil {
		return err
	}
	if e.settings.Title {
		display.SetTitle(e.titleOut, e.settings.Message)
	}

	if err := e.playCues(ctx); err != nil {
		return err
	}
	return e.runCommand(ctx)
}

// playCues emits the completion cues on a fixed cadence. A failed cue is a
// warning, not a run failure; the finish command still gets its turn.
func (e *Engine) playCues(ctx context.Context) error {
	if e.cue == nil {
		return nil
	}
	pacer := schedule.NewPacer(e.clock, sound.CueInterval)
	for i := 0; i < sound.CueCount; i++ {
		if i > 0 {
			if err := pacer.Wait(ctx); err != nil {
				return fmt.Errorf("completion cues stopped: %w", domain.ErrInterrupted)
			}
		}
		if err := e.cue.Play(ctx); err != nil {
			e.log.Warn("cue %d/%d failed: %v", i+1, sound.CueCount, err)
		}
	}
	return nil
}

// runCommand executes the configured finish command through the shell. Its
// output joins the frame stream so it lands after the completion message
// even when the colorizer pipe is still draining, and its exit status is
// returned as is for the caller to forward.
func (e *Engine) runCommand(ctx context.Context) error {
	if e.settings.Command == "" {
		return nil
	}
	e.log.Debug("running finish command: %s", e.settings.Command)

	cmd := exec.CommandContext(ctx, "sh", "-c", e.settings.Command)
	cmd.Stdin = os.Stdin
	cmd.Stdout = e.frameOut
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
