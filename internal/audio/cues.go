// Package audio synthesizes the game's sound cues with beep and plays them
// through the system speaker. Every cue is generated procedurally; there are
// no sample files.
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// SampleRate is the output rate of every cue.
const SampleRate = beep.SampleRate(44100)

// Cue identifies a sound effect.
type Cue int

const (
	CueFlap  Cue = iota // Short upward chirp
	CueScore            // Two-note chime
	CueCrash            // Low buzz with a noise burst
)

// String returns the cue name used in logs.
func (c Cue) String() string {
	switch c {
	case CueFlap:
		return "flap"
	case CueScore:
		return "score"
	case CueCrash:
		return "crash"
	default:
		return "unknown"
	}
}

// Cue timings
const (
	flapDuration = 70 * time.Millisecond
	flapAttack   = 5 * time.Millisecond
	flapRelease  = 40 * time.Millisecond

	scoreNote1Duration = 70 * time.Millisecond
	scoreNote2Duration = 140 * time.Millisecond
	scoreAttack        = 3 * time.Millisecond
	scoreNote1Release  = 20 * time.Millisecond
	scoreNote2Release  = 100 * time.Millisecond

	crashDuration = 320 * time.Millisecond
	crashAttack   = 5 * time.Millisecond
	crashRelease  = 250 * time.Millisecond
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a raw wave, optionally sliding linearly from freq to
// endFreq over its duration.
type oscillator struct {
	freq     float64
	endFreq  float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewOscillator creates a fixed-pitch oscillator.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator that glides from freq to endFreq.
func NewSweep(freq, endFreq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		endFreq:  endFreq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewSource(1)),
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
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		freq := o.freq + (o.endFreq-o.freq)*float64(o.position)/float64(o.duration)
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream.
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope shapes s with an attack ramp and a release fade.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := max(e.totalSamples-e.releaseSamples, e.attackSamples)
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		} else if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly; zero or less is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

func flapSound(rate beep.SampleRate) beep.Streamer {
	osc := NewSweep(520, 880, flapDuration, WaveSquare, rate)
	return newVolume(NewEnvelope(osc, flapDuration, flapAttack, flapRelease, rate), 0.35)
}

func scoreSound(rate beep.SampleRate) beep.Streamer {
	// B5 then E6
	n1 := NewOscillator(987.77, scoreNote1Duration, WaveSquare, rate)
	n1Shaped := NewEnvelope(n1, scoreNote1Duration, scoreAttack, scoreNote1Release, rate)

	n2 := NewOscillator(1318.51, scoreNote2Duration, WaveSquare, rate)
	n2Shaped := NewEnvelope(n2, scoreNote2Duration, scoreAttack, scoreNote2Release, rate)

	return newVolume(beep.Seq(n1Shaped, n2Shaped), 0.3)
}

func crashSound(rate beep.SampleRate) beep.Streamer {
	buzz := NewSweep(180, 60, crashDuration, WaveSaw, rate)
	buzzShaped := NewEnvelope(buzz, crashDuration, crashAttack, crashRelease, rate)

	noise := NewOscillator(0, crashDuration/2, WaveNoise, rate)
	noiseShaped := NewEnvelope(noise, crashDuration/2, crashAttack, crashRelease/2, rate)

	return newVolume(beep.Mix(
		newVolume(buzzShaped, 0.7),
		newVolume(noiseShaped, 0.3),
	), 0.5)
}

// Stream returns a fresh streamer for c, or nil for an unknown cue.
func Stream(c Cue, rate beep.SampleRate) beep.Streamer {
	switch c {
	case CueFlap:
		return flapSound(rate)
	case CueScore:
		return scoreSound(rate)
	case CueCrash:
		return crashSound(rate)
	default:
		return nil
	}
}
