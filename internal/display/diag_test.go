package display

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestDiagLines(t *testing.T) {
	tests := []struct {
		name  string
		write func(d *Diag)
		want  string
	}{
		{"notice", func(d *Diag) { d.Noticef("starting at %s", "12:00") }, "starting at 12:00"},
		{"warning prefix", func(d *Diag) { d.Warnf("slow paint") }, "warning: slow paint"},
		{"error prefix", func(d *Diag) { d.Errorf("no renderer") }, "error: no renderer"},
		{"resync", func(d *Diag) { d.Resync(3) }, "resynced with the clock: 3 frame(s) skipped"},
		{"throttle clamp", func(d *Diag) { d.ThrottleClamped(time.Second, 150*time.Millisecond) }, "per-line delay 1s would outlast a frame; using 150ms"},
		{"ignored duration", func(d *Diag) { d.IgnoredDuration("45") }, `target time given; ignoring duration "45"`},
		{"interrupted", func(d *Diag) { d.Interrupted() }, "countdown interrupted"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.write(NewDiag(nil, &buf))
			got := buf.String()
			if !strings.Contains(got, tt.want) {
				t.Errorf("wrote %q, want it to contain %q", got, tt.want)
			}
			if !strings.HasSuffix(got, "\n") {
				t.Errorf("diagnostic line %q does not end the line", got)
			}
		})
	}
}

func TestPromptStaysOnLine(t *testing.T) {
	var buf bytes.Buffer
	NewDiag(nil, &buf).Promptf("continue? [y/N] ")
	if strings.HasSuffix(buf.String(), "\n") {
		t.Errorf("prompt %q moved off the answer line", buf.String())
	}
}
