package timespec

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/LucaBoschetto/countdown.sh/internal/domain"
)

func rolledTarget(now time.Time, wait time.Duration) domain.Target {
	return domain.Target{End: now.Add(wait), RolledToTomorrow: true}
}

func TestConfirmRoll(t *testing.T) {
	now := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		target      domain.Target
		policy      ConfirmPolicy
		answer      string
		wantErr     error
		wantNotices int
		wantPrompts int
	}{
		{
			name:   "no roll asks nothing",
			target: domain.Target{End: now.Add(30 * time.Hour)},
		},
		{
			name:   "short roll proceeds silently",
			target: rolledTarget(now, 2*time.Hour),
			policy: ConfirmPolicy{Interactive: true},
		},
		{
			name:   "long roll with assume-yes proceeds silently",
			target: rolledTarget(now, 22*time.Hour),
			policy: ConfirmPolicy{AssumeYes: true, Interactive: true},
		},
		{
			name:        "long roll interactive yes",
			target:      rolledTarget(now, 22*time.Hour),
			policy:      ConfirmPolicy{Interactive: true},
			answer:      "y\n",
			wantPrompts: 1,
		},
		{
			name:        "long roll interactive yes word",
			target:      rolledTarget(now, 22*time.Hour),
			policy:      ConfirmPolicy{Interactive: true},
			answer:      "YES\n",
			wantPrompts: 1,
		},
		{
			name:        "long roll interactive no",
			target:      rolledTarget(now, 22*time.Hour),
			policy:      ConfirmPolicy{Interactive: true},
			answer:      "n\n",
			wantErr:     domain.ErrConfirmationDeclined,
			wantPrompts: 1,
		},
		{
			name:        "long roll interactive closed stdin",
			target:      rolledTarget(now, 22*time.Hour),
			policy:      ConfirmPolicy{Interactive: true},
			answer:      "",
			wantErr:     domain.ErrConfirmationDeclined,
			wantPrompts: 1,
		},
		{
			name:        "long roll non-interactive notices and proceeds",
			target:      rolledTarget(now, 22*time.Hour),
			policy:      ConfirmPolicy{},
			wantNotices: 1,
		},
		{
			name:        "custom threshold",
			target:      rolledTarget(now, 3*time.Hour),
			policy:      ConfirmPolicy{Threshold: 2 * time.Hour},
			wantNotices: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var notices, prompts []string
			p := tt.policy
			p.In = strings.NewReader(tt.answer)
			p.Notice = func(format string, args ...any) {
				notices = append(notices, fmt.Sprintf(format, args...))
			}
			p.Prompt = func(format string, args ...any) {
				prompts = append(prompts, fmt.Sprintf(format, args...))
			}

			err := ConfirmRoll(tt.target, now, p)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ConfirmRoll() error = %v, want %v", err, tt.wantErr)
			}
			if len(notices) != tt.wantNotices {
				t.Errorf("notices = %d (%q), want %d", len(notices), notices, tt.wantNotices)
			}
			if len(prompts) != tt.wantPrompts {
				t.Errorf("prompts = %d (%q), want %d", len(prompts), prompts, tt.wantPrompts)
			}
		})
	}
}
