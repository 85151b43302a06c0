// Package colorize pipes countdown output through an external gradient
// colorizer for the lifetime of a run.
package colorize

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"

	"github.com/LucaBoschetto/countdown.sh/internal/domain"
	"github.com/LucaBoschetto/countdown.sh/internal/logger"
)

// DefaultBinary is the gradient colorizer searched for on PATH.
const DefaultBinary = "lolcat"

// Option configures the pipe.
type Option func(*Pipe)

// WithBinary points the pipe at a different colorizer binary.
func WithBinary(name string) Option {
	return func(p *Pipe) {
		p.binary = name
	}
}

// WithStdout redirects the colorizer's output, for tests.
func WithStdout(w io.Writer) Option {
	return func(p *Pipe) {
		p.stdout = w
	}
}

// WithArgs replaces the gradient flags, for colorizer binaries that spell
// their options differently. With no arguments the colorizer runs bare.
func WithArgs(args ...string) Option {
	return func(p *Pipe) {
		p.args = args
	}
}

// Pipe is the write end of one long-lived colorizer process. Everything
// written becomes process output after gradient coloring. Close flushes the
// stream and joins the process; the fire-and-forget exemption that covers
// audio helpers does not apply here.
type Pipe struct {
	log    *logger.Logger
	binary string
	spread float64
	freq   float64
	args   []string
	stdout io.Writer

	cmd   *exec.Cmd
	stdin io.WriteCloser
}

// New prepares a colorizer pipe with the given gradient tuning. The process
// starts on Start, not here.
func New(log *logger.Logger, spread, freq float64, opts ...Option) *Pipe {
	if log == nil {
		log = logger.Discard()
	}
	p := &Pipe{
		log:    log,
		binary: DefaultBinary,
		spread: spread,
		freq:   freq,
		stdout: os.Stdout,
		args: []string{
			"--force",
			"--spread", strconv.FormatFloat(spread, 'f', -1, 64),
			"--freq", strconv.FormatFloat(freq, 'f', -1, 64),
		},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Check reports whether the colorizer binary is on PATH.
func (p *Pipe) Check() error {
	if _, err := exec.LookPath(p.binary); err != nil {
		return fmt.Errorf("%w: %s not found in PATH", domain.ErrRenderDepMissing, p.binary)
	}
	return nil
}

// Start launches the colorizer in forced-color mode and opens its stdin.
func (p *Pipe) Start() error {
	cmd := exec.Command(p.binary, p.args...)
	cmd.Stdout = p.stdout
	cmd.Stderr = os.Stderr
	// A Ctrl-C aimed at the countdown must not take the colorizer with it:
	// the interrupt path still erases the last frame through this pipe.
	detach(cmd)

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("open %s stdin: %w", p.binary, err)
	}
	if err := cmd.Start(); err != nil {
		stdin.Close()
		return fmt.Errorf("start %s: %w", p.binary, err)
	}

	p.cmd = cmd
	p.stdin = stdin
	p.log.Debug("colorizer %s started (spread=%g freq=%g)", p.binary, p.spread, p.freq)
	return nil
}

// Write forwards bytes into the colorizer.
func (p *Pipe) Write(b []byte) (int, error) {
	return p.stdin.Write(b)
}

// Close closes the stream and waits for the colorizer to drain and exit.
func (p *Pipe) Close() error {
	if p.cmd == nil {
		return nil
	}
	if err := p.stdin.Close(); err != nil {
		p.cmd.Wait()
		return err
	}
	return p.cmd.Wait()
}
