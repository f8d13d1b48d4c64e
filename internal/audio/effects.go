// internal/audio/effects.go
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// waveShape selects the oscillator waveform.
type waveShape int

const (
	waveSine waveShape = iota
	waveNoise
)

// oscillator is a finite beep.Streamer producing a raw wave.
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	shape    waveShape
	rate     beep.SampleRate
}

func newOscillator(freq float64, duration time.Duration, shape waveShape, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		shape:    shape,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
		}

		var val float64
		switch o.shape {
		case waveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case waveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope shapes a stream with a linear attack and release.
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

func newEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}
	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, false
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = float64(remaining) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream. math.Log2(0) is -Inf, so zero volume is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// splashSound is a soft noise burst for rain hitting the pond.
func splashSound(rate beep.SampleRate) beep.Streamer {
	const dur = 120 * time.Millisecond
	noise := newOscillator(0, dur, waveNoise, rate)
	shaped := newEnvelope(noise, dur, 10*time.Millisecond, 90*time.Millisecond, rate)
	return newVolume(shaped, 0.08)
}

// plipSound is a short sine ding for a launched water drop.
func plipSound(rate beep.SampleRate) beep.Streamer {
	const dur = 90 * time.Millisecond
	osc := newOscillator(880, dur, waveSine, rate)
	shaped := newEnvelope(osc, dur, 5*time.Millisecond, 70*time.Millisecond, rate)
	return newVolume(shaped, 0.12)
}

// bloopSound is a lower, rounder tone for a jumping fish.
func bloopSound(rate beep.SampleRate) beep.Streamer {
	const dur = 160 * time.Millisecond
	osc := newOscillator(330, dur, waveSine, rate)
	shaped := newEnvelope(osc, dur, 15*time.Millisecond, 120*time.Millisecond, rate)
	return newVolume(shaped, 0.15)
}

// chimeSound is a two-note chime for the run-time milestone.
func chimeSound(rate beep.SampleRate) beep.Streamer {
	const noteDur = 250 * time.Millisecond
	n1 := newEnvelope(newOscillator(660, noteDur, waveSine, rate), noteDur, 10*time.Millisecond, 180*time.Millisecond, rate)
	n2 := newEnvelope(newOscillator(990, noteDur, waveSine, rate), noteDur, 10*time.Millisecond, 180*time.Millisecond, rate)
	return newVolume(beep.Seq(n1, n2), 0.2)
}
