package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/audio"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/game/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game in this terminal.

Controls:
  Space/Up/W    - Start, flap, restart after game over
  Click/Enter   - Start, restart after game over (never flaps)
  R             - Restart after game over
  Ctrl+S        - Save a text screenshot to ~/.arcade/screenshots
  Q/Ctrl+C      - Quit

Game constants are read from --config, then ~/.arcade/configs/flappy.yaml,
then ./configs/flappy.yaml, then the built-in defaults.

Examples:
  flappy play
  flappy play --seed 7
  flappy play --config ./my-flappy.yaml --log-file flappy.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	settings, game, err := loadSettings(v)
	if err != nil {
		return err
	}

	// The alternate screen owns stdout, so logs only go to a file.
	logger, closeLog, err := newLogger(settings, io.Discard, "flappy")
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	session, err := flappy.NewSession(game,
		flappy.WithLogger(logger),
		flappy.WithSeed(settings.Seed),
	)
	if err != nil {
		return fmt.Errorf("cannot create session: %w", err)
	}

	player := audio.NewPlayer(settings.Mute, logger)
	defer player.Close()

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: settings.FPS,
	}
	logger.Debug("starting game", "width", width, "height", height, "tick", settings.TickInterval(), "seed", settings.Seed)

	return tui.Run(session, player, cfg, logger)
}
