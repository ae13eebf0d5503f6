// starfall is a single-screen platformer: walk and jump across four
// platforms, collect falling stars, and dodge the bombs every cleared wave
// adds.
//
// Usage:
//
//	starfall                       - Play (same as "starfall play")
//	starfall play                  - Play the game
//	starfall placeholders [dir]    - Write placeholder art for every asset
//
// Global flags:
//
//	--config <path>     - Config YAML (default: ~/.starfall/starfall.yaml, ./configs/starfall.yaml, built-in)
//	--log-level <lvl>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagLogLevel string

	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		if logger != nil {
			logger.Error("starfall failed", "error", err)
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "starfall",
	Short: "Starfall - collect the stars, dodge the bombs",
	Long: `Starfall is a small platformer. Arrow keys walk and jump; every star
is worth points, and clearing all of them drops them again along with a
new bomb. Touching a bomb ends the game; press any key to start over.

Available commands:
  play          - Play the game (default)
  placeholders  - Generate stand-in images for every asset

Examples:
  starfall
  starfall play --seed 42 --mute
  starfall placeholders ./assets`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogger,
	RunE:              runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	addPlayFlags(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(placeholdersCmd)
}

func setupLogger(cmd *cobra.Command, args []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "starfall",
		Level:           level,
	})
	return nil
}
