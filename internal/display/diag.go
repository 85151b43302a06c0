// Package display formats remaining time, paints countdown frames, and
// writes styled diagnostics on the stream frames never touch.
package display

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/LucaBoschetto/countdown.sh/internal/logger"
)

// ── Diagnostic styles ────────────────────────────────────────────

var (
	// Notices: muted slate, easy to ignore.
	noticeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94a3b8"))

	// Warnings: soft amber.
	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fde68a"))

	// Errors: soft coral, bold.
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fca5a5")).
			Bold(true)

	// Prompts: soft sky blue.
	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bae6fd"))
)

// ── Diagnostic writer ────────────────────────────────────────────

// Diag writes user-facing notices to the diagnostic stream, keeping the
// frame stream clean for the colorizer.
type Diag struct {
	log *logger.Logger
	out io.Writer
}

// NewDiag creates a diagnostic writer. A nil out means os.Stderr.
func NewDiag(log *logger.Logger, out io.Writer) *Diag {
	if log == nil {
		log = logger.Discard()
	}
	if out == nil {
		out = os.Stderr
	}
	return &Diag{log: log, out: out}
}

// Noticef prints an informational line.
func (d *Diag) Noticef(format string, args ...any) {
	d.log.Debug("notice: "+format, args...)
	fmt.Fprintln(d.out, noticeStyle.Render(fmt.Sprintf(format, args...)))
}

// Warnf prints a warning line.
func (d *Diag) Warnf(format string, args ...any) {
	d.log.Debug("warning: "+format, args...)
	fmt.Fprintln(d.out, warnStyle.Render("warning: "+fmt.Sprintf(format, args...)))
}

// Errorf prints an error line.
func (d *Diag) Errorf(format string, args ...any) {
	d.log.Debug("error: "+format, args...)
	fmt.Fprintln(d.out, errorStyle.Render("error: "+fmt.Sprintf(format, args...)))
}

// Promptf prints a question and leaves the cursor on the same line for the
// answer.
func (d *Diag) Promptf(format string, args ...any) {
	fmt.Fprint(d.out, promptStyle.Render(fmt.Sprintf(format, args...)))
}
