package config

import (
	_ "embed"

	"chosenoffset.com/starfall/internal/assets"
)

//go:embed defaults/starfall.yaml
var defaultYAML []byte

// DefaultConfig returns the original tutorial layout and tuning
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  800,
			Height: 600,
			Title:  "Starfall",
			TPS:    60,
		},
		Physics: PhysicsConfig{
			Gravity:  300,
			CellSize: 32,
		},
		Player: PlayerConfig{
			StartX:    100,
			StartY:    450,
			Bounce:    0.2,
			Speed:     160,
			JumpSpeed: 330,
		},
		Platforms: []PlatformConfig{
			{X: 400, Y: 568, Scale: 2},
			{X: 600, Y: 400, Scale: 1},
			{X: 50, Y: 250, Scale: 1},
			{X: 750, Y: 220, Scale: 1},
		},
		Stars: StarConfig{
			Count:     12,
			StartX:    12,
			StartY:    0,
			StepX:     70,
			BounceMin: 0.4,
			BounceMax: 0.8,
			Points:    10,
		},
		Bombs: BombConfig{
			SpawnY:    16,
			Bounce:    1,
			MaxSpeedX: 200,
			FallSpeed: 20,
		},
		HUD: HUDConfig{
			X:        16,
			Y:        16,
			FontSize: 32,
			Color:    "#000",
		},
		Assets: AssetConfig{
			Dir: "assets",
			Images: []assets.Spec{
				{Key: assets.Sky, File: "sky.png", Width: 800, Height: 600},
				{Key: assets.Platform, File: "platform.png", Width: 400, Height: 32},
				{Key: assets.Star, File: "star.png", Width: 24, Height: 22},
				{Key: assets.Bomb, File: "bomb.png", Width: 14, Height: 14},
				{Key: assets.Dude, File: "dude.png", Width: 288, Height: 48, FrameWidth: 32, FrameHeight: 48},
			},
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.5,
		},
		Seed: 0,
	}
}
