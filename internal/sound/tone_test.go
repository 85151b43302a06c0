package sound

import (
	"encoding/binary"
	"math"
	"testing"
)

func cueSamples(t *testing.T) []int16 {
	t.Helper()
	pcm := Cue()
	if len(pcm)%2 != 0 {
		t.Fatalf("PCM length %d is not sample aligned", len(pcm))
	}
	samples := make([]int16, len(pcm)/2)
	for i := range samples {
		samples[i] = int16(binary.LittleEndian.Uint16(pcm[i*2:]))
	}
	return samples
}

func TestCueLength(t *testing.T) {
	want := int(CueDuration.Seconds()*SampleRate) * 2
	if got := len(Cue()); got != want {
		t.Errorf("Cue() = %d bytes, want %d", got, want)
	}
}

func TestCueStaysInsideAmplitude(t *testing.T) {
	limit := int16(math.Trunc(CueAmplitude * math.MaxInt16))
	for i, s := range cueSamples(t) {
		if s > limit || s < -limit {
			t.Fatalf("sample %d = %d, outside ±%d", i, s, limit)
		}
	}
}

func TestCueEnvelope(t *testing.T) {
	samples := cueSamples(t)

	if samples[0] != 0 {
		t.Errorf("first sample = %d, want 0 (attack starts silent)", samples[0])
	}
	if last := samples[len(samples)-1]; last > 40 || last < -40 {
		t.Errorf("last sample = %d, want near 0 (release ends silent)", last)
	}

	// The sustain between the ramps should reach close to full gain.
	var peak int16
	for _, s := range samples {
		if s > peak {
			peak = s
		}
	}
	if want := int16(math.Trunc(0.9 * CueAmplitude * math.MaxInt16)); peak < want {
		t.Errorf("peak = %d, want at least %d", peak, want)
	}
}

func TestToPCMClipsOutOfRange(t *testing.T) {
	pcm := toPCM([]float64{2.0, -2.0}, 1.0)
	hi := int16(binary.LittleEndian.Uint16(pcm[0:]))
	lo := int16(binary.LittleEndian.Uint16(pcm[2:]))
	if hi != math.MaxInt16 {
		t.Errorf("overdriven sample = %d, want %d", hi, math.MaxInt16)
	}
	if lo != math.MinInt16 {
		t.Errorf("underdriven sample = %d, want %d", lo, math.MinInt16)
	}
}
