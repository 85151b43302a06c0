// Package terminal reports the size and interactivity of the controlling
// terminal and watches for window resizes.
package terminal

import (
	"os"

	"github.com/charmbracelet/x/term"
)

// FallbackWidth is assumed when no attached terminal reports a size.
const FallbackWidth = 80

// Event carries the terminal size after a resize.
type Event struct {
	Width  int
	Height int
}

// Width returns the current terminal width in cells. When stdout is
// redirected it falls back to stderr, which usually stays attached to the
// terminal, then to FallbackWidth.
func Width() int {
	for _, f := range []*os.File{os.Stdout, os.Stderr} {
		if w, _, err := term.GetSize(f.Fd()); err == nil && w > 0 {
			return w
		}
	}
	return FallbackWidth
}

// IsInteractive reports whether stdin can answer prompts.
func IsInteractive() bool {
	return term.IsTerminal(os.Stdin.Fd())
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	return term.IsTerminal(f.Fd())
}
