package sound

import (
	"bytes"
	"context"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/LucaBoschetto/countdown.sh/internal/domain"
	"github.com/LucaBoschetto/countdown.sh/internal/logger"
)

// Compile-time interface check.
var _ domain.CuePlayer = (*OtoPlayer)(nil)

// OtoPlayer plays the cue through the system audio device when no external
// player is installed. One audio context is initialized up front and reused
// for every cue.
type OtoPlayer struct {
	ctx *oto.Context
	log *logger.Logger
	pcm []byte
}

// NewOtoPlayer initializes the audio device. Returns an error when no
// device is available.
func NewOtoPlayer(log *logger.Logger) (*OtoPlayer, error) {
	if log == nil {
		log = logger.Discard()
	}

	op := &oto.NewContextOptions{
		SampleRate:   SampleRate,
		ChannelCount: ChannelCount,
		Format:       oto.FormatSignedInt16LE,
	}
	ctx, readyChan, err := oto.NewContext(op)
	if err != nil {
		return nil, err
	}
	<-readyChan

	log.Debug("audio context ready (rate=%d, channels=%d)", SampleRate, ChannelCount)
	return &OtoPlayer{ctx: ctx, log: log, pcm: Cue()}, nil
}

// Play plays one cue synchronously. The tone is far shorter than the cue
// interval, so blocking here never pushes the next cue late.
func (p *OtoPlayer) Play(ctx context.Context) error {
	player := p.ctx.NewPlayer(bytes.NewReader(p.pcm))
	player.Play()

	for player.IsPlaying() {
		if ctx.Err() != nil {
			player.Pause()
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	return player.Close()
}
