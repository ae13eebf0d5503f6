// Package audio synthesises the game's sound cues and plays them through
// the system speaker.
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// Cue timings
const (
	collectDuration   = 90 * time.Millisecond
	collectAttack     = 5 * time.Millisecond
	collectRelease    = 60 * time.Millisecond
	waveNoteDuration  = 110 * time.Millisecond
	waveNoteRelease   = 70 * time.Millisecond
	hitDuration       = 400 * time.Millisecond
	hitAttack         = 5 * time.Millisecond
	hitRelease        = 300 * time.Millisecond
	defaultSampleRate = 44100
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates an oscillator that stops after duration
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream
type envelope struct {
	streamer     beep.Streamer
	position     int
	attack       int
	release      int
	releaseStart int
	total        int
}

// NewEnvelope wraps s with an attack/release envelope over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	start := total - rel
	if start < att {
		start = att
	}
	return &envelope{
		streamer:     s,
		attack:       att,
		release:      rel,
		releaseStart: start,
		total:        total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}

		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if e.release > 0 && e.position >= e.releaseStart {
			vol = math.Max(0, float64(e.total-e.position)/float64(e.release))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly. Log2(0) is -Inf, so zero volume is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// CreateCollectSound generates a short high blip for a collected star
func CreateCollectSound(rate beep.SampleRate, volume float64) beep.Streamer {
	fund := NewEnvelope(NewOscillator(1318.51, collectDuration, WaveSine, rate), collectDuration, collectAttack, collectRelease, rate)
	over := NewEnvelope(NewOscillator(2637.02, collectDuration, WaveSine, rate), collectDuration, collectAttack, collectRelease/2, rate)
	return newVolume(beep.Mix(newVolume(fund, 0.7), newVolume(over, 0.3)), volume)
}

// CreateWaveClearSound generates a rising three-note arpeggio for a cleared wave
func CreateWaveClearSound(rate beep.SampleRate, volume float64) beep.Streamer {
	var notes []beep.Streamer
	for _, freq := range []float64{523.25, 659.25, 783.99} {
		osc := NewOscillator(freq, waveNoteDuration, WaveSquare, rate)
		notes = append(notes, NewEnvelope(osc, waveNoteDuration, collectAttack, waveNoteRelease, rate))
	}
	return newVolume(beep.Seq(notes...), volume*0.5)
}

// CreateHitSound generates a falling noisy crunch for a bomb hit
func CreateHitSound(rate beep.SampleRate, volume float64) beep.Streamer {
	saw := NewEnvelope(NewOscillator(90, hitDuration, WaveSaw, rate), hitDuration, hitAttack, hitRelease, rate)
	noise := NewEnvelope(NewOscillator(0, hitDuration, WaveNoise, rate), hitDuration, hitAttack, hitRelease/2, rate)
	return newVolume(beep.Mix(newVolume(saw, 0.6), newVolume(noise, 0.4)), volume)
}
