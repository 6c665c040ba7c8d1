package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/game/flappy"
)

func newTestModel(t *testing.T) (Model, *flappy.Session) {
	t.Helper()
	s, err := flappy.NewSession(config.DefaultFlappyConfig(), flappy.WithSeed(3))
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 50}
	return NewModel(s, nil, cfg, nil), s
}

// send feeds msg through Update and returns the updated model.
func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, expected Model", next)
	}
	return nm, cmd
}

func TestNewModelDefaults(t *testing.T) {
	m, _ := newTestModel(t)

	if m.interval != 20*time.Millisecond {
		t.Errorf("interval = %v, expected 20ms", m.interval)
	}
	if m.screen.Width() != 80 || m.screen.Height() != 24 {
		t.Errorf("playfield = %dx%d, expected 80x24", m.screen.Width(), m.screen.Height())
	}
	if m.Init() == nil {
		t.Error("Init() should start the tick loop")
	}

	s, _ := flappy.NewSession(config.DefaultFlappyConfig())
	z := NewModel(s, nil, core.RuntimeConfig{ScreenW: 10, ScreenH: 5}, nil)
	if z.interval != time.Second/60 {
		t.Errorf("zero tick rate interval = %v, expected 1/60s", z.interval)
	}
}

func TestKeyIsAppliedOnNextTick(t *testing.T) {
	m, s := newTestModel(t)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if s.Phase() != flappy.PhaseIdle {
		t.Fatalf("Phase() = %v before the tick, expected idle", s.Phase())
	}
	if m.queue.Len() != 1 {
		t.Errorf("queue length = %d, expected 1", m.queue.Len())
	}

	m, cmd := send(t, m, TickMsg(time.Now()))
	if s.Phase() != flappy.PhasePlaying {
		t.Errorf("Phase() = %v after the tick, expected playing", s.Phase())
	}
	if m.queue.Len() != 0 {
		t.Errorf("queue length = %d after the tick, expected 0", m.queue.Len())
	}
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
}

func TestRepeatedKeysCollapseWithinTick(t *testing.T) {
	m, s := newTestModel(t)
	s.Start()

	for i := 0; i < 5; i++ {
		m, _ = send(t, m, tea.KeyMsg{Type: tea.KeySpace})
	}
	if m.queue.Len() != 1 {
		t.Errorf("queue length = %d, expected 1 after repeated presses", m.queue.Len())
	}
}

func TestHeldKeyRepeatsAreDropped(t *testing.T) {
	m, s := newTestModel(t)
	clock := time.Unix(0, 0)
	m.now = func() time.Time { return clock }
	space := tea.KeyMsg{Type: tea.KeySpace}

	m, _ = send(t, m, space)
	m, _ = send(t, m, TickMsg(clock))
	if s.Phase() != flappy.PhasePlaying {
		t.Fatalf("Phase() = %v, expected playing", s.Phase())
	}

	tests := []struct {
		after  time.Duration
		queued int
	}{
		{30 * time.Millisecond, 0},
		{40 * time.Millisecond, 0},
		{200 * time.Millisecond, 1},
	}
	for _, tt := range tests {
		clock = clock.Add(tt.after)
		m, _ = send(t, m, space)
		if got := m.queue.Len(); got != tt.queued {
			t.Errorf("queue length = %d for a press %v after the last, expected %d", got, tt.after, tt.queued)
		}
		m, _ = send(t, m, TickMsg(clock))
	}

	press := tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	m, _ = send(t, m, space)
	m, _ = send(t, m, press)
	if got := m.queue.Len(); got != 1 {
		t.Errorf("queue length = %d, expected the click queued despite the repeated key", got)
	}
}

func TestMousePressStartsButNeverFlaps(t *testing.T) {
	m, s := newTestModel(t)
	press := tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}

	m, _ = send(t, m, press)
	m, _ = send(t, m, TickMsg(time.Now()))
	if s.Phase() != flappy.PhasePlaying {
		t.Fatalf("Phase() = %v, expected playing", s.Phase())
	}

	_, before := s.Bird().Velocity()
	m, _ = send(t, m, press)
	send(t, m, TickMsg(time.Now()))
	if _, vy := s.Bird().Velocity(); vy < before {
		t.Errorf("vertical velocity = %v after a click, expected no upward impulse", vy)
	}
}

func TestQuitKey(t *testing.T) {
	m, _ := newTestModel(t)

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("quit key should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit key should produce tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestResizeKeepsRun(t *testing.T) {
	m, s := newTestModel(t)
	s.Start()

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.screen.Width() != 120 || m.screen.Height() != 39 {
		t.Errorf("playfield = %dx%d, expected 120x39", m.screen.Width(), m.screen.Height())
	}
	if s.Phase() != flappy.PhasePlaying {
		t.Errorf("Phase() = %v after resize, expected playing", s.Phase())
	}
}

func TestViewShowsPlayfieldAndHelp(t *testing.T) {
	m, _ := newTestModel(t)

	out := m.View()
	for _, want := range []string{flappy.ScoreText(0), flappy.IdleTitle, "flap", "quit"} {
		if !strings.Contains(out, want) {
			t.Errorf("View() is missing %q", want)
		}
	}
	if lines := strings.Count(out, "\n") + 1; lines != 25 {
		t.Errorf("View() has %d lines, expected 25", lines)
	}
}

func TestRenderScreenGroupsColors(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.SetColored(0, 0, 'a', core.ColorRed)
	s.SetColored(1, 0, 'b', core.ColorRed)
	s.SetColored(2, 1, 'c', core.ColorDefault)

	out := RenderScreen(s)
	if !strings.Contains(out, "ab") {
		t.Errorf("RenderScreen() = %q, expected the red run to stay together", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("RenderScreen() = %q, expected two rows", out)
	}
}
