package domain

import "context"

// GlyphArtist expands short text into multi-line display art. The production
// implementation shells out to an external renderer; tests use fakes.
type GlyphArtist interface {
	// Render expands text in the given font. Returned lines carry no
	// trailing newline; trailing blank lines are trimmed.
	Render(ctx context.Context, font, text string) ([]string, error)
	// Check reports whether the artist can run at all. It is called once
	// before the countdown starts so a missing renderer fails fast.
	Check() error
}

// CuePlayer emits one audible completion cue. Implementations range from
// external player processes to synthesized playback to the terminal bell.
type CuePlayer interface {
	Play(ctx context.Context) error
}
