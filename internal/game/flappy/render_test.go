package flappy

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

func TestRenderIdleScreen(t *testing.T) {
	s := newTestSession(t)
	dst := core.NewScreen(80, 24)

	s.Render(dst)
	out := dst.String()

	for _, want := range []string{ScoreText(0), IdleTitle, IdleSubtitle} {
		if !strings.Contains(out, want) {
			t.Errorf("idle screen is missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, GameOverTitle) {
		t.Error("idle screen should not show the game over prompt")
	}
	if !strings.ContainsRune(dst.Row(23), GroundFillChar) {
		t.Errorf("bottom row = %q, expected ground", dst.Row(23))
	}
}

func TestRenderPlayingHidesPrompt(t *testing.T) {
	s := newTestSession(t)
	s.Start()
	s.Zones()[0].body.SetCenter(s.Bird().X(), 300)
	s.Step(nil, tick)

	dst := core.NewScreen(80, 24)
	s.Render(dst)
	out := dst.String()

	if strings.Contains(out, IdleTitle) || strings.Contains(out, GameOverTitle) {
		t.Errorf("playing screen should have no prompt:\n%s", out)
	}
	if !strings.Contains(out, ScoreText(1)) {
		t.Errorf("playing screen is missing %q:\n%s", ScoreText(1), out)
	}
}

func TestRenderPipesAndGameOver(t *testing.T) {
	s := newTestSession(t)
	s.Start()

	// Bring the first pair on screen before crashing.
	for _, p := range s.Pipes() {
		_, cy := p.body.Center()
		p.body.SetCenter(600, cy)
	}
	s.endGame("test")

	dst := core.NewScreen(80, 24)
	s.Render(dst)
	out := dst.String()

	if !strings.Contains(out, GameOverTitle) || !strings.Contains(out, GameOverSubtitle) {
		t.Errorf("game over screen is missing its prompt:\n%s", out)
	}
	if !strings.ContainsRune(out, PipeChar) {
		t.Errorf("expected pipes on screen:\n%s", out)
	}

	tinted := false
	for y := 0; y < dst.Height(); y++ {
		for x := 0; x < dst.Width(); x++ {
			cell := dst.GetCell(x, y)
			if cell.Rune == BirdBodyChar && cell.Color == core.ColorBrightRed {
				tinted = true
			}
		}
	}
	if !tinted {
		t.Error("crashed bird should be drawn red")
	}
}

func TestRenderEmptyScreen(t *testing.T) {
	s := newTestSession(t)
	dst := core.NewScreen(0, 0)
	s.Render(dst) // must not panic
}

func TestBirdHead(t *testing.T) {
	tests := []struct {
		angle    float64
		expected rune
	}{
		{-25, BirdRiseChar},
		{-10, BirdLevelChar},
		{0, BirdLevelChar},
		{10, BirdLevelChar},
		{50, BirdFallChar},
	}

	for _, tc := range tests {
		if got := birdHead(tc.angle); got != tc.expected {
			t.Errorf("birdHead(%v) = %q, expected %q", tc.angle, got, tc.expected)
		}
	}
}

func TestBobStaysWithinAmplitude(t *testing.T) {
	b := newBob(6, 1400*time.Millisecond)

	peak := 0.0
	for i := 0; i < 500; i++ {
		v := b.update(0.016)
		if v > 6+1e-4 || v < -6-1e-4 {
			t.Fatalf("offset = %v at step %d, expected within ±6", v, i)
		}
		if v > peak {
			peak = v
		}
	}
	if peak < 5.9 {
		t.Errorf("peak offset = %v, expected the bob to reach the amplitude", peak)
	}

	still := newBob(0, 1400*time.Millisecond)
	if v := still.update(0.5); v != 0 {
		t.Errorf("zero amplitude offset = %v, expected 0", v)
	}
}
