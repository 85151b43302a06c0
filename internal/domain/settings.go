package domain

import (
	"fmt"
	"time"
)

// Default tunables. Settings fields override them per run.
const (
	// DefaultFont is the glyph-artist font used for countdown frames.
	DefaultFont = "standard"
	// DefaultMessage is shown when the countdown reaches zero.
	DefaultMessage = "Time's up!"
	// DefaultSpread is the colorizer gradient spread.
	DefaultSpread = 3.0
	// DefaultFreq is the colorizer gradient frequency.
	DefaultFreq = 0.1
)

// RenderMode selects how each frame reaches the screen.
type RenderMode int

const (
	// ModeScroll appends every frame, preserving scrollback.
	ModeScroll RenderMode = iota
	// ModeClear wipes the whole screen before each frame.
	ModeClear
	// ModeOverwrite repaints the previous frame block in place.
	ModeOverwrite
)

// String returns the mode name as accepted by ParseRenderMode.
func (m RenderMode) String() string {
	switch m {
	case ModeScroll:
		return "scroll"
	case ModeClear:
		return "clear"
	case ModeOverwrite:
		return "overwrite"
	default:
		return "unknown"
	}
}

// ParseRenderMode maps a mode name to its RenderMode.
func ParseRenderMode(name string) (RenderMode, error) {
	switch name {
	case "scroll":
		return ModeScroll, nil
	case "clear":
		return ModeClear, nil
	case "overwrite", "":
		return ModeOverwrite, nil
	default:
		return ModeOverwrite, fmt.Errorf("unknown render mode %q (want scroll, clear, or overwrite)", name)
	}
}

// Settings is the fully resolved run configuration handed to the engine.
// The cmd layer assembles it from flags and environment defaults.
type Settings struct {
	Duration    string        // raw duration token ("90", "1:30", "2h45m", "PT10S")
	Until       string        // raw target spec ("18:30", "2026-01-02 15:04")
	Font        string        // glyph-artist font for countdown frames
	Mode        RenderMode    // frame redraw style
	LeftAlign   bool          // left-align frames instead of centering
	Throttle    time.Duration // per-line paint delay, 0 disables
	Color       bool          // pipe output through the gradient colorizer
	Spread      float64       // colorizer gradient spread
	Freq        float64       // colorizer gradient frequency
	Sound       bool          // audible cues on completion
	Title       bool          // mirror remaining time into the terminal title
	Message     string        // completion message
	Command     string        // command run after completion, via the shell
	AssumeYes   bool          // skip interactive confirmations
	Interactive bool          // stdin is attached to a terminal
}

// Validate fills zero values with defaults and rejects settings the engine
// cannot run with.
func (s *Settings) Validate() error {
	if s.Duration == "" && s.Until == "" {
		return fmt.Errorf("%w: no duration or target time given", ErrParse)
	}
	if s.Throttle < 0 {
		return fmt.Errorf("negative throttle %v", s.Throttle)
	}
	if s.Font == "" {
		s.Font = DefaultFont
	}
	if s.Message == "" {
		s.Message = DefaultMessage
	}
	if s.Spread <= 0 {
		s.Spread = DefaultSpread
	}
	if s.Freq <= 0 {
		s.Freq = DefaultFreq
	}
	return nil
}
