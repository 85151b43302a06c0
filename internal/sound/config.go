package sound

import "time"

// Audio parameters for the synthesized cue. External players are invoked
// with matching format arguments.
const (
	SampleRate   = 44100
	ChannelCount = 1
	BitDepth     = 16
)

// Completion cue shape: three short bell-like beeps half a second apart.
const (
	// CueCount is how many cues one completion emits.
	CueCount = 3
	// CueInterval spaces the cues. They are paced with the same
	// drift-free anchor technique as the countdown frames.
	CueInterval = 500 * time.Millisecond
	// CueFrequency is the cue pitch (A5).
	CueFrequency = 880.0
	// CueDuration keeps the tone well inside one CueInterval, so even
	// blocking playback never pushes the next cue late.
	CueDuration = 180 * time.Millisecond
	// CueAttack and CueRelease ramp the volume at the tone's edges so it
	// does not click.
	CueAttack  = 10 * time.Millisecond
	CueRelease = 120 * time.Millisecond
	// CueAmplitude scales the tone against the full int16 range.
	CueAmplitude = 0.6
)
