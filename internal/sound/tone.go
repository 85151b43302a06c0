package sound

import (
	"encoding/binary"
	"math"
)

// Cue synthesizes the completion beep as raw signed 16-bit little-endian
// mono PCM at SampleRate.
func Cue() []byte {
	samples := int(CueDuration.Seconds() * SampleRate)
	buf := sineWave(CueFrequency, samples)
	applyEnvelope(buf, CueAttack.Seconds(), CueRelease.Seconds())
	return toPCM(buf, CueAmplitude)
}

// sineWave generates unity-gain sine samples at the given frequency.
func sineWave(freq float64, samples int) []float64 {
	buf := make([]float64, samples)
	phase := 0.0
	inc := freq / SampleRate
	for i := range buf {
		buf[i] = math.Sin(2 * math.Pi * phase)
		phase += inc
		if phase >= 1 {
			phase--
		}
	}
	return buf
}

// applyEnvelope shapes attack and release ramps in place so the tone
// starts and ends silent.
func applyEnvelope(buf []float64, attackSec, releaseSec float64) {
	total := len(buf)
	attack := int(attackSec * SampleRate)
	release := int(releaseSec * SampleRate)

	releaseStart := total - release
	if releaseStart < attack {
		releaseStart = attack
	}

	for i := range buf {
		vol := 1.0
		if i < attack && attack > 0 {
			vol = float64(i) / float64(attack)
		} else if i >= releaseStart && release > 0 {
			vol = float64(total-i) / float64(release)
		}
		buf[i] *= vol
	}
}

// toPCM converts unity-gain samples to s16le bytes at the given gain,
// clipping anything that still lands outside the int16 range.
func toPCM(buf []float64, gain float64) []byte {
	out := make([]byte, len(buf)*2)
	for i, s := range buf {
		v := s * gain * math.MaxInt16
		if v > math.MaxInt16 {
			v = math.MaxInt16
		} else if v < math.MinInt16 {
			v = math.MinInt16
		}
		binary.LittleEndian.PutUint16(out[i*2:], uint16(int16(v)))
	}
	return out
}
