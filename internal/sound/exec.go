package sound

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/LucaBoschetto/countdown.sh/internal/domain"
	"github.com/LucaBoschetto/countdown.sh/internal/logger"
)

// Compile-time interface check.
var _ domain.CuePlayer = (*ExecPlayer)(nil)

// ExecPlayer plays the cue through an external player process. Playback is
// fire-and-forget: Play returns once the process is running, and the
// process is reaped in the background. These helpers are deliberately
// outside the shutdown contract; nothing waits on them at exit.
type ExecPlayer struct {
	log    *logger.Logger
	config *PlayerConfig
	pcm    []byte
}

// NewExecPlayer creates a player around a detected backend. The cue is
// synthesized once and reused for every Play.
func NewExecPlayer(log *logger.Logger, config *PlayerConfig) *ExecPlayer {
	if log == nil {
		log = logger.Discard()
	}
	return &ExecPlayer{log: log, config: config, pcm: Cue()}
}

// Play starts the player and hands it the cue PCM. It does not wait for
// playback to finish.
func (p *ExecPlayer) Play(ctx context.Context) error {
	cmd := exec.CommandContext(ctx, p.config.Path, p.config.Args...)
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("open %s stdin: %w", p.config.Name, err)
	}
	if err := cmd.Start(); err != nil {
		stdin.Close()
		return fmt.Errorf("start %s: %w", p.config.Name, err)
	}

	go func() {
		stdin.Write(p.pcm)
		stdin.Close()
		if err := cmd.Wait(); err != nil {
			p.log.Debug("%s exited: %v", p.config.Name, err)
		}
	}()
	return nil
}
