// flappy is a Flappy Bird-style game for the terminal.
//
// Usage:
//
//	flappy play      - Play in this terminal
//	flappy serve     - Start an SSH server, one game per connection
//	flappy config    - Print the effective game constants as YAML
//
// Global flags:
//
//	--fps <rate>        - Simulation ticks per second (default: 60)
//	--seed <value>      - RNG seed for reproducible pipe gaps
//	--config <path>     - Game constants file
//	--mute              - Disable sound
//	--log-level <lvl>   - debug, info, warn or error
//	--log-file <path>   - Write logs to a file
//
// Every flag can also be set through the environment, e.g. FLAPPY_FPS=30.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// v holds the resolved settings of the running command.
var v = config.NewViper()

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy - flap between the pipes in your terminal",
	Long: `Flappy is a terminal remake of the one-button pipe dodging game.

Available commands:
  play     - Play a game in this terminal
  serve    - Start SSH server for remote play
  config   - Print the effective game constants

Examples:
  flappy play
  flappy play --seed 42 --mute
  flappy serve --ssh :2222
  FLAPPY_FPS=30 flappy play`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return config.BindFlags(v, cmd.Flags())
	},
}

func init() {
	config.RegisterPlayFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// loadSettings resolves the settings and game constants of a command.
func loadSettings(v *viper.Viper) (config.Settings, config.FlappyConfig, error) {
	s, err := config.LoadSettings(v)
	if err != nil {
		return s, config.FlappyConfig{}, err
	}
	game, err := config.LoadFlappy(s.ConfigPath)
	if err != nil {
		return s, game, err
	}
	return s, game, nil
}

// newLogger builds the command logger. Logs go to --log-file when set and to
// fallback otherwise. The returned close func is always safe to call.
func newLogger(s config.Settings, fallback io.Writer, prefix string) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(s.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level: %w", err)
	}

	w := fallback
	closeFn := func() {}
	if s.LogFile != "" {
		f, err := os.OpenFile(s.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closeFn, nil
}
