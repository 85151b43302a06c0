package timespec

import (
	"errors"
	"testing"
	"time"

	"github.com/LucaBoschetto/countdown.sh/internal/domain"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		input   string
		want    int64
		wantErr bool
	}{
		// The same two seconds, five ways.
		{"2", 2, false},
		{"2s", 2, false},
		{"0:02", 2, false},
		{"0:0:2", 2, false},
		{"PT2S", 2, false},

		{"90", 90, false},
		{"1:30", 90, false},
		{"10:00", 600, false},
		{"1:00:00", 3600, false},
		{"2:15:05", 8105, false},
		{"2h", 7200, false},
		{"45m", 2700, false},
		{"45M", 2700, false},
		{"1h30m", 5400, false},
		{"30m1h", 5400, false},
		{"2h45m10s", 9910, false},
		{"10s2h45m", 9910, false},
		{"PT90S", 90, false},
		{"PT1H2M3S", 3723, false},
		{"pt1h2m3s", 3723, false},
		{"PT2H45M", 9900, false},
		{"  90 ", 90, false},
		{"0", 0, false},

		{"", 0, true},
		{"soon", 0, true},
		{"-5", 0, true},
		{"1.5h", 0, true},
		{"1h1h", 0, true},
		{"1x", 0, true},
		{"1:2:3:4", 0, true},
		{"1:234", 0, true},
		{"PT", 0, true},
		{"P1D", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDuration(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseDuration(%q) = %d, want error", tt.input, got)
				}
				if !errors.Is(err, domain.ErrParse) {
					t.Errorf("ParseDuration(%q) error = %v, want ErrParse", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDuration(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseDuration(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestResolveDuration(t *testing.T) {
	now := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	r := NewResolver(nil, time.UTC)

	target, err := r.Resolve("90", "", now)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	want := now.Add(90 * time.Second)
	if !target.End.Equal(want) {
		t.Errorf("End = %s, want %s", target.End, want)
	}
	if target.RolledToTomorrow {
		t.Error("RolledToTomorrow = true for a plain duration")
	}
	if target.IgnoredDuration != "" {
		t.Errorf("IgnoredDuration = %q, want empty", target.IgnoredDuration)
	}
}

func TestResolveUntil(t *testing.T) {
	now := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	r := NewResolver(nil, time.UTC)

	tests := []struct {
		name       string
		until      string
		wantEnd    time.Time
		wantRolled bool
		wantErr    bool
	}{
		{
			name:    "later today",
			until:   "16:30",
			wantEnd: time.Date(2026, 3, 10, 16, 30, 0, 0, time.UTC),
		},
		{
			name:       "earlier today rolls",
			until:      "12:00",
			wantEnd:    time.Date(2026, 3, 11, 12, 0, 0, 0, time.UTC),
			wantRolled: true,
		},
		{
			name:       "exactly now rolls",
			until:      "14:00",
			wantEnd:    time.Date(2026, 3, 11, 14, 0, 0, 0, time.UTC),
			wantRolled: true,
		},
		{
			name:    "one second ahead stays today",
			until:   "14:00:01",
			wantEnd: time.Date(2026, 3, 10, 14, 0, 1, 0, time.UTC),
		},
		{
			name:    "date and time",
			until:   "2026-03-11 09:00",
			wantEnd: time.Date(2026, 3, 11, 9, 0, 0, 0, time.UTC),
		},
		{
			name:    "date T time with seconds",
			until:   "2026-03-11T09:00:30",
			wantEnd: time.Date(2026, 3, 11, 9, 0, 30, 0, time.UTC),
		},
		{
			name:    "past date stays past",
			until:   "2026-03-09 09:00",
			wantEnd: time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC),
		},
		{name: "hour out of range", until: "25:00", wantErr: true},
		{name: "minute out of range", until: "10:61", wantErr: true},
		{name: "garbage", until: "noonish", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target, err := r.Resolve("", tt.until, now)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Resolve(%q) succeeded, want error", tt.until)
				}
				if !errors.Is(err, domain.ErrParse) {
					t.Errorf("Resolve(%q) error = %v, want ErrParse", tt.until, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Resolve(%q): %v", tt.until, err)
			}
			if !target.End.Equal(tt.wantEnd) {
				t.Errorf("End = %s, want %s", target.End, tt.wantEnd)
			}
			if target.RolledToTomorrow != tt.wantRolled {
				t.Errorf("RolledToTomorrow = %v, want %v", target.RolledToTomorrow, tt.wantRolled)
			}
		})
	}
}

func TestResolveUntilWinsOverDuration(t *testing.T) {
	now := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	r := NewResolver(nil, time.UTC)

	target, err := r.Resolve("10", "16:30", now)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if target.IgnoredDuration != "10" {
		t.Errorf("IgnoredDuration = %q, want %q", target.IgnoredDuration, "10")
	}
	want := time.Date(2026, 3, 10, 16, 30, 0, 0, time.UTC)
	if !target.End.Equal(want) {
		t.Errorf("End = %s, want %s (until must win)", target.End, want)
	}
}
