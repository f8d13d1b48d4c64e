// internal/audio/effects_test.go
package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

const testRate = beep.SampleRate(48000)

// drain pulls a streamer to exhaustion and returns the total sample count
// and the peak absolute amplitude.
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	peak := 0.0
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			if a := math.Abs(buf[i][0]); a > peak {
				peak = a
			}
			if a := math.Abs(buf[i][1]); a > peak {
				peak = a
			}
		}
		total += n
		if !ok {
			return total, peak
		}
		if total > int(testRate)*5 {
			t.Fatal("streamer never finished")
		}
	}
}

func TestOscillatorDuration(t *testing.T) {
	const dur = 100 * time.Millisecond
	osc := newOscillator(440, dur, waveSine, testRate)

	n, peak := drain(t, osc)
	if want := testRate.N(dur); n != want {
		t.Errorf("samples = %d, want %d", n, want)
	}
	if peak > 1.0 {
		t.Errorf("peak amplitude = %v, want <= 1", peak)
	}
	if peak < 0.5 {
		t.Errorf("peak amplitude = %v, suspiciously quiet for a raw sine", peak)
	}
}

func TestNoiseOscillatorStaysInRange(t *testing.T) {
	osc := newOscillator(0, 50*time.Millisecond, waveNoise, testRate)
	_, peak := drain(t, osc)
	if peak > 1.0 {
		t.Errorf("noise peak = %v, want <= 1", peak)
	}
}

func TestEnvelopeStartsAndEndsQuiet(t *testing.T) {
	const dur = 100 * time.Millisecond
	osc := newOscillator(440, dur, waveSine, testRate)
	env := newEnvelope(osc, dur, 20*time.Millisecond, 20*time.Millisecond, testRate)

	total := testRate.N(dur)
	buf := make([][2]float64, total)
	n, _ := env.Stream(buf)
	if n != total {
		t.Fatalf("samples = %d, want %d", n, total)
	}

	// The linear attack pins the very first sample to zero and the release
	// ramps the tail down toward zero.
	if buf[0][0] != 0 {
		t.Errorf("first sample = %v, want 0 (attack starts silent)", buf[0][0])
	}
	if tail := math.Abs(buf[n-1][0]); tail > 0.05 {
		t.Errorf("last sample = %v, want near 0 (release)", tail)
	}
}

func TestVolumeZeroIsSilent(t *testing.T) {
	osc := newOscillator(440, 50*time.Millisecond, waveSine, testRate)
	_, peak := drain(t, newVolume(osc, 0))
	if peak != 0 {
		t.Errorf("peak = %v with zero volume, want exact silence", peak)
	}
}

func TestVolumeScalesAmplitude(t *testing.T) {
	osc := newOscillator(440, 50*time.Millisecond, waveSine, testRate)
	_, peak := drain(t, newVolume(osc, 0.1))
	if peak > 0.15 {
		t.Errorf("peak = %v at volume 0.1, want well under the raw amplitude", peak)
	}
	if peak == 0 {
		t.Error("peak = 0, volume 0.1 should not be silent")
	}
}

func TestEffectStreamersFinish(t *testing.T) {
	tests := []struct {
		name string
		s    beep.Streamer
	}{
		{"splash", splashSound(testRate)},
		{"plip", plipSound(testRate)},
		{"bloop", bloopSound(testRate)},
		{"chime", chimeSound(testRate)},
	}
	for _, tt := range tests {
		n, peak := drain(t, tt.s)
		if n == 0 {
			t.Errorf("%s produced no samples", tt.name)
		}
		if peak > 1.0 {
			t.Errorf("%s peak = %v, clipping", tt.name, peak)
		}
		if peak == 0 {
			t.Errorf("%s is silent", tt.name)
		}
	}
}
