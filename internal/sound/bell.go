package sound

import (
	"context"
	"io"
	"os"

	"github.com/LucaBoschetto/countdown.sh/internal/domain"
)

// Compile-time interface check.
var _ domain.CuePlayer = (*BellPlayer)(nil)

// BellPlayer is the last-resort cue: the terminal alert character, written
// on the diagnostic stream so the colorizer never sees it.
type BellPlayer struct {
	out io.Writer
}

// NewBellPlayer creates a bell player. A nil out means os.Stderr.
func NewBellPlayer(out io.Writer) *BellPlayer {
	if out == nil {
		out = os.Stderr
	}
	return &BellPlayer{out: out}
}

// Play rings the terminal bell.
func (p *BellPlayer) Play(context.Context) error {
	_, err := p.out.Write([]byte{'\a'})
	return err
}
