package timespec

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/LucaBoschetto/countdown.sh/internal/domain"
)

// LongRollThreshold is how far away a rolled-to-tomorrow target must be
// before ConfirmRoll asks instead of proceeding.
const LongRollThreshold = 21 * time.Hour

// PrintFunc emits one user-facing diagnostic line.
type PrintFunc func(format string, args ...any)

// ConfirmPolicy controls how a long roll to tomorrow is handled.
type ConfirmPolicy struct {
	AssumeYes   bool
	Interactive bool
	Threshold   time.Duration // zero means LongRollThreshold
	In          io.Reader     // answer source, usually os.Stdin
	Prompt      PrintFunc     // question writer, diagnostic stream
	Notice      PrintFunc     // informational writer, diagnostic stream
}

// ConfirmRoll applies the long-roll rule to a resolved target: waits at or
// under the threshold proceed silently; longer ones proceed when AssumeYes
// is set, ask on the interactive path, and otherwise emit a notice. A
// negative or closed answer yields domain.ErrConfirmationDeclined.
func ConfirmRoll(t domain.Target, now time.Time, p ConfirmPolicy) error {
	if !t.RolledToTomorrow {
		return nil
	}
	threshold := p.Threshold
	if threshold == 0 {
		threshold = LongRollThreshold
	}
	wait := t.End.Sub(now)
	if wait <= threshold {
		return nil
	}

	switch {
	case p.AssumeYes:
		return nil
	case p.Interactive:
		if p.Prompt != nil {
			p.Prompt("%s already passed today; count down %s until tomorrow? [y/N] ",
				t.End.Format("15:04"), formatWait(wait))
		}
		answer, err := readLine(p.In)
		if err != nil || !isYes(answer) {
			return domain.ErrConfirmationDeclined
		}
		return nil
	default:
		if p.Notice != nil {
			p.Notice("%s already passed today; counting down %s until tomorrow",
				t.End.Format("15:04"), formatWait(wait))
		}
		return nil
	}
}

func readLine(r io.Reader) (string, error) {
	if r == nil {
		return "", io.EOF
	}
	line, err := bufio.NewReader(r).ReadString('\n')
	if line == "" && err != nil {
		return "", err
	}
	return line, nil
}

func isYes(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes":
		return true
	}
	return false
}

func formatWait(d time.Duration) string {
	d = d.Round(time.Minute)
	return fmt.Sprintf("%dh%02dm", int(d.Hours()), int(d.Minutes())%60)
}
