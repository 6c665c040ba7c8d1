package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/audio"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/game/flappy"
)

// helpHeight is the number of rows reserved below the playfield.
const helpHeight = 1

// keyRepeatWindow is the shortest gap between two flap keys that still counts
// as two presses. Terminals send no key release, so closer flaps are repeats.
const keyRepeatWindow = 60 * time.Millisecond

// Model is the Bubble Tea model for one flappy session.
type Model struct {
	session  *flappy.Session
	queue    *core.InputQueue
	screen   *core.Screen
	player   *audio.Player
	keys     KeyMap
	help     help.Model
	config   core.RuntimeConfig
	interval time.Duration
	log      *log.Logger
	quitting bool

	now      func() time.Time
	lastFlap time.Time
}

// NewModel creates a model that drives session at cfg.TickRate.
// A nil player is silent and a nil logger discards everything.
func NewModel(session *flappy.Session, player *audio.Player, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		session:  session,
		queue:    core.NewInputQueue(),
		screen:   core.NewScreen(cfg.ScreenW, playfieldHeight(cfg.ScreenH)),
		player:   player,
		keys:     DefaultKeyMap(),
		help:     h,
		config:   cfg,
		interval: time.Second / time.Duration(cfg.TickRate),
		log:      logger,
		now:      time.Now,
	}
}

func playfieldHeight(h int) int {
	if h <= helpHeight {
		return h
	}
	return h - helpHeight
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.interval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.queue.Push(MapMouse(msg))
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues the action bound to msg. Quit and screenshot act at once.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		if err := m.saveScreenshot(); err != nil {
			m.log.Warn("screenshot failed", "err", err)
		}
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if action == core.ActionFlap && m.isRepeat() {
		return m, nil
	}
	m.queue.Push(action)
	return m, nil
}

// isRepeat records a flap key and reports whether it follows the previous one
// too closely to be a separate press.
func (m *Model) isRepeat() bool {
	t := m.now()
	repeat := !m.lastFlap.IsZero() && t.Sub(m.lastFlap) < keyRepeatWindow
	m.lastFlap = t
	return repeat
}

// handleResize rescales the playfield. The world keeps its size, so a
// resize never resets the run.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playfieldHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick drains the input queue into one simulation step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	res := m.session.Step(m.queue.Drain(), m.interval)

	for _, e := range res.Events {
		switch e {
		case flappy.EventFlapped:
			m.player.Play(audio.CueFlap)
		case flappy.EventScored:
			m.player.Play(audio.CueScore)
		case flappy.EventCrashed:
			m.player.Play(audio.CueCrash)
			m.log.Info("game over", "score", res.Score)
		}
	}

	return m, tickCmd(m.interval)
}

// saveScreenshot writes the current playfield as plain text.
func (m Model) saveScreenshot() error {
	m.session.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("cannot get home directory: %w", err)
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("cannot create screenshot directory: %w", err)
	}

	name := fmt.Sprintf("flappy_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return fmt.Errorf("cannot write screenshot: %w", err)
	}
	m.log.Info("screenshot saved", "path", path)
	return nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.session.Render(m.screen)
	out := RenderScreen(m.screen)
	if m.config.ScreenH > helpHeight {
		out += "\n" + helpStyle.Render(m.help.View(m.keys))
	}
	return out
}

// Run starts a local Bubble Tea program for session and blocks until the
// player quits.
func Run(session *flappy.Session, player *audio.Player, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(session, player, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
