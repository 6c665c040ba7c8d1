package audio

import (
	"errors"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain streams s to the end and returns the sample count and peak level.
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	peak := 0.0

	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for j := 0; j < n; j++ {
			peak = max(peak, buf[j][0], -buf[j][0])
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("streamer never drained")
	return 0, 0
}

func TestOscillatorLengthAndRange(t *testing.T) {
	rate := beep.SampleRate(44100)
	waves := []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise}

	for _, w := range waves {
		osc := NewOscillator(440, 50*time.Millisecond, w, rate)
		n, peak := drain(t, osc)
		if n != rate.N(50*time.Millisecond) {
			t.Errorf("wave %d: streamed %d samples, expected %d", w, n, rate.N(50*time.Millisecond))
		}
		if peak > 1.0 {
			t.Errorf("wave %d: peak %v out of range", w, peak)
		}
		if osc.Err() != nil {
			t.Errorf("wave %d: Err() = %v, expected nil", w, osc.Err())
		}
	}
}

func TestEnvelopeStartsSilent(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(0, 20*time.Millisecond, WaveSquare, rate) // constant +1
	env := NewEnvelope(osc, 20*time.Millisecond, 10*time.Millisecond, 5*time.Millisecond, rate)

	buf := make([][2]float64, 4)
	n, ok := env.Stream(buf)
	if !ok || n != 4 {
		t.Fatalf("Stream() = %d, %v, expected 4, true", n, ok)
	}
	if buf[0][0] != 0 {
		t.Errorf("first sample = %v, expected 0 at the start of the attack", buf[0][0])
	}
	if buf[3][0] <= buf[1][0] {
		t.Errorf("attack should ramp up, got %v then %v", buf[1][0], buf[3][0])
	}
}

func TestCueStreams(t *testing.T) {
	tests := []struct {
		cue     Cue
		minimum time.Duration
	}{
		{CueFlap, flapDuration},
		{CueScore, scoreNote1Duration + scoreNote2Duration},
		{CueCrash, crashDuration},
	}

	for _, tc := range tests {
		s := Stream(tc.cue, SampleRate)
		if s == nil {
			t.Fatalf("Stream(%v) = nil", tc.cue)
		}
		n, peak := drain(t, s)
		if n < SampleRate.N(tc.minimum) {
			t.Errorf("%v: %d samples, expected at least %d", tc.cue, n, SampleRate.N(tc.minimum))
		}
		if peak == 0 || peak > 1.0 {
			t.Errorf("%v: peak %v, expected audible and unclipped", tc.cue, peak)
		}
	}

	if Stream(Cue(42), SampleRate) != nil {
		t.Error("unknown cue should have no stream")
	}
}

func TestMutedPlayerIsSilent(t *testing.T) {
	p := NewPlayer(true, nil)
	p.init = func() error {
		t.Error("muted player must not open the speaker")
		return nil
	}

	p.Play(CueFlap)
	if p.Enabled() {
		t.Error("muted player should not be enabled")
	}
	p.Close()
}

func TestPlayerDegradesOnInitFailure(t *testing.T) {
	p := NewPlayer(false, nil)
	calls := 0
	p.init = func() error {
		calls++
		return errors.New("no audio device")
	}

	if !p.Enabled() {
		t.Fatal("player should start enabled")
	}
	p.Play(CueFlap)
	p.Play(CueScore)

	if calls != 1 {
		t.Errorf("init calls = %d, expected a single attempt", calls)
	}
	if p.Enabled() {
		t.Error("player should disable itself after init fails")
	}
}

func TestNilPlayer(t *testing.T) {
	var p *Player
	p.Play(CueCrash)
	p.Close()
	if p.Enabled() {
		t.Error("nil player should not be enabled")
	}
}

func TestCueString(t *testing.T) {
	tests := []struct {
		cue      Cue
		expected string
	}{
		{CueFlap, "flap"},
		{CueScore, "score"},
		{CueCrash, "crash"},
		{Cue(9), "unknown"},
	}

	for _, tc := range tests {
		if got := tc.cue.String(); got != tc.expected {
			t.Errorf("Cue(%d).String() = %q, expected %q", int(tc.cue), got, tc.expected)
		}
	}
}
