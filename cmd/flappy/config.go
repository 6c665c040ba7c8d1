package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game constants",
	Long: `Print the game constants a new game would use, as YAML.

The output is a complete flappy.yaml and can be saved to
~/.arcade/configs/flappy.yaml as a starting point.

Examples:
  flappy config
  flappy config --defaults > ~/.arcade/configs/flappy.yaml
  flappy config --config ./my-flappy.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults instead")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagDefaults {
		_, err := os.Stdout.Write(config.DefaultFlappyYAML())
		return err
	}

	_, game, err := loadSettings(v)
	if err != nil {
		return err
	}
	out, err := game.Marshal()
	if err != nil {
		return err
	}
	fmt.Print(string(out))
	return nil
}
