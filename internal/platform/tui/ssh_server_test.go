package tui

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

func TestSSHServerConfigFromSettings(t *testing.T) {
	s := config.DefaultSettings()
	s.Seed = 77
	s.FPS = 30

	cfg := SSHServerConfigFromSettings(s, config.DefaultFlappyConfig())
	if cfg.Seed != 77 {
		t.Errorf("Seed = %d, expected 77", cfg.Seed)
	}
	if cfg.TickRate != 30 {
		t.Errorf("TickRate = %d, expected 30", cfg.TickRate)
	}
	if cfg.Address != s.SSHAddr {
		t.Errorf("Address = %q, expected %q", cfg.Address, s.SSHAddr)
	}
}

func TestSSHSessionsShareSeed(t *testing.T) {
	logger := log.New(io.Discard)
	srv := &SSHServer{
		config: SSHServerConfig{Seed: 11, Game: config.DefaultFlappyConfig()},
		logger: logger,
	}

	a, err := srv.newSession(logger)
	if err != nil {
		t.Fatalf("newSession() error = %v", err)
	}
	b, err := srv.newSession(logger)
	if err != nil {
		t.Fatalf("newSession() error = %v", err)
	}
	a.Start()
	b.Start()

	pa, pb := a.Pipes(), b.Pipes()
	if len(pa) == 0 || len(pa) != len(pb) {
		t.Fatalf("pipes = %d and %d, expected the same non-zero count", len(pa), len(pb))
	}
	for i := range pa {
		if pa[i].Edge() != pb[i].Edge() {
			t.Errorf("pipe %d edge = %v and %v, expected equal for a shared seed", i, pa[i].Edge(), pb[i].Edge())
		}
	}
}
