package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the flappy SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own independent game. Sound is disabled for
remote players.

Host key handling:
  - The key at --host-key is used, or generated there on first start

Examples:
  flappy serve                           # Listen on :23234
  flappy serve --ssh :2222               # Listen on port 2222
  flappy serve --host-key ./my_host_key  # Use specific host key
  flappy serve --max-timeout 30m         # Cap session length

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	config.RegisterServeFlags(serveCmd.Flags())
}

func runServe(_ *cobra.Command, _ []string) error {
	settings, game, err := loadSettings(v)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(settings, os.Stderr, "flappy-ssh")
	if err != nil {
		return err
	}
	defer closeLog()

	server, err := tui.NewSSHServer(tui.SSHServerConfigFromSettings(settings, game), logger)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	fmt.Printf("Starting flappy SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
