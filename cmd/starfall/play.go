package main

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"chosenoffset.com/starfall/internal/assets"
	"chosenoffset.com/starfall/internal/audio"
	"chosenoffset.com/starfall/internal/config"
	"chosenoffset.com/starfall/internal/game"
	ebitenrender "chosenoffset.com/starfall/internal/render/ebiten"
)

var (
	flagAssets string
	flagSeed   int64
	flagMute   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Open the game window and play.

Controls:
  Left/Right  - Walk
  Up          - Jump (only while standing on a platform)
  Esc         - Quit
  Any key     - Restart after a game over

Examples:
  starfall play
  starfall play --assets ./art --seed 7
  starfall play --config ./configs/hard.yaml --mute`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagAssets, "assets", "", "Asset directory (overrides config)")
	cmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = config seed, or time-based)")
	cmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagAssets != "" {
		cfg.Assets.Dir = flagAssets
	}
	if flagSeed != 0 {
		cfg.Seed = flagSeed
	}
	if flagMute {
		cfg.Audio.Enabled = false
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info("Starting", "title", cfg.Window.Title, "seed", seed, "assets", cfg.Assets.Dir)

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	loader := ebitenrender.NewResourceLoader()
	engine := ebitenrender.NewEngine()

	lib, err := assets.Load(loader, cfg.Assets.Dir, cfg.Assets.Images)
	if err != nil {
		return fmt.Errorf("%w (run 'starfall placeholders %s' to generate stand-in art)", err, cfg.Assets.Dir)
	}
	logger.Debug("Assets loaded", "count", len(cfg.Assets.Images))

	var sounds game.SoundPlayer = game.Silent{}
	if cfg.Audio.Enabled {
		sm := audio.NewSoundManager(cfg.Audio.Volume)
		if err := sm.Initialize(); err != nil {
			logger.Warn("Audio unavailable, playing silently", "error", err)
		} else {
			defer sm.Cleanup()
			sounds = sm
		}
	}

	scene, err := game.NewScene(cfg, rand.New(rand.NewSource(seed)), logger, sounds)
	if err != nil {
		return fmt.Errorf("failed to create scene: %w", err)
	}
	manager := game.NewManager(scene, renderer, inputMgr, lib, logger)

	// Set up the window
	engine.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	engine.SetWindowTitle(cfg.Window.Title)
	engine.SetWindowResizable(true)
	engine.SetTPS(cfg.Window.TPS)

	if err := engine.RunGame(manager); err != nil && !errors.Is(err, game.ErrQuit) {
		return fmt.Errorf("game loop failed: %w", err)
	}
	logger.Info("Bye", "score", scene.Score(), "waves", scene.Wave())
	return nil
}
