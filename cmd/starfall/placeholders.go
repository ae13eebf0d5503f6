package main

import (
	"github.com/spf13/cobra"

	"chosenoffset.com/starfall/internal/config"
	"chosenoffset.com/starfall/internal/placeholders"
)

var placeholdersCmd = &cobra.Command{
	Use:   "placeholders [dir]",
	Short: "Generate placeholder art",
	Long: `Write a stand-in PNG for every image in the asset manifest, sized as the
manifest says, so the game runs without the original art.

The directory defaults to the configured asset directory.

Examples:
  starfall placeholders
  starfall placeholders ./assets`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlaceholders,
}

func runPlaceholders(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	dir := cfg.Assets.Dir
	if len(args) == 1 {
		dir = args[0]
	}

	written, err := placeholders.WriteAll(dir, cfg.Assets.Images)
	for _, path := range written {
		logger.Info("Wrote placeholder", "path", path)
	}
	if err != nil {
		return err
	}
	logger.Info("Placeholders ready", "dir", dir, "count", len(written))
	return nil
}
