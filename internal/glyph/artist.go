// Package glyph renders short text as large multi-line art through an
// external figlet-compatible renderer.
package glyph

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/LucaBoschetto/countdown.sh/internal/domain"
	"github.com/LucaBoschetto/countdown.sh/internal/logger"
)

// Compile-time interface check.
var _ domain.GlyphArtist = (*Artist)(nil)

const (
	// DefaultBinary is the renderer searched for on PATH.
	DefaultBinary = "figlet"
	// WideFont is the completion-message fallback when the configured
	// font cannot render.
	WideFont = "big"
)

// Option configures the artist.
type Option func(*Artist)

// WithBinary points the artist at a different renderer binary.
func WithBinary(name string) Option {
	return func(a *Artist) {
		a.binary = name
	}
}

// Artist shells out to the renderer binary. It keeps no state between
// calls; every frame is a fresh invocation.
type Artist struct {
	log    *logger.Logger
	binary string
}

// NewArtist creates an artist rendering through the default binary.
func NewArtist(log *logger.Logger, opts ...Option) *Artist {
	if log == nil {
		log = logger.Discard()
	}
	a := &Artist{log: log, binary: DefaultBinary}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Check reports whether the renderer binary is on PATH.
func (a *Artist) Check() error {
	if _, err := exec.LookPath(a.binary); err != nil {
		return fmt.Errorf("%w: %s not found in PATH", domain.ErrRenderDepMissing, a.binary)
	}
	return nil
}

// Render expands text in the given font. A renderer failure reports the
// renderer's own stderr, so an unknown font names itself in the error.
func (a *Artist) Render(ctx context.Context, font, text string) ([]string, error) {
	cmd := exec.CommandContext(ctx, a.binary, "-f", font, text)
	var out, errBuf bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errBuf

	if err := cmd.Run(); err != nil {
		detail := strings.TrimSpace(errBuf.String())
		if detail == "" {
			detail = err.Error()
		}
		return nil, fmt.Errorf("%s -f %s: %s", a.binary, font, detail)
	}

	a.log.Debug("rendered %q in font %s", text, font)
	return splitLines(out.String()), nil
}

// splitLines splits renderer output into lines, dropping the final newline
// and any all-blank tail rows so block height matches the visible art.
func splitLines(s string) []string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
