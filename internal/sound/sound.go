// Package sound emits the audible completion cues. Player selection is an
// explicit ordered fallback: an external player found on PATH, then direct
// playback through the system audio device, then the terminal bell.
package sound

import (
	"io"

	"github.com/LucaBoschetto/countdown.sh/internal/domain"
	"github.com/LucaBoschetto/countdown.sh/internal/logger"
)

// Select returns the best available cue player. It never fails: the bell
// needs nothing but a writable diagnostic stream.
func Select(log *logger.Logger, bellOut io.Writer) domain.CuePlayer {
	if log == nil {
		log = logger.Discard()
	}

	if config, err := DetectPlayer(); err == nil {
		log.Debug("cue player: %s", config.Path)
		return NewExecPlayer(log, config)
	}

	player, err := NewOtoPlayer(log)
	if err == nil {
		log.Debug("cue player: system audio device")
		return player
	}
	log.Debug("audio device unavailable, falling back to the bell: %v", err)
	return NewBellPlayer(bellOut)
}
