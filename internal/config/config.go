// Package config provides the tunable rules of the game: window, physics,
// player movement, star waves, bombs, HUD, assets and audio.
// Values come from YAML so a level can be re-tuned without rebuilding.
package config

import (
	"chosenoffset.com/starfall/internal/assets"
)

// Config holds every setting for one run of the game
type Config struct {
	Window    WindowConfig     `yaml:"window"`
	Physics   PhysicsConfig    `yaml:"physics"`
	Player    PlayerConfig     `yaml:"player"`
	Platforms []PlatformConfig `yaml:"platforms"`
	Stars     StarConfig       `yaml:"stars"`
	Bombs     BombConfig       `yaml:"bombs"`
	HUD       HUDConfig        `yaml:"hud"`
	Assets    AssetConfig      `yaml:"assets"`
	Audio     AudioConfig      `yaml:"audio"`

	// Seed for the spawn RNG. 0 picks one from the clock.
	Seed int64 `yaml:"seed"`
}

// WindowConfig defines the play field and its window
type WindowConfig struct {
	Width  int    `yaml:"width"`  // Logical width in pixels, also the world width
	Height int    `yaml:"height"` // Logical height in pixels, also the world height
	Title  string `yaml:"title"`
	TPS    int    `yaml:"tps"` // Updates per second
}

// PhysicsConfig defines the arcade world
type PhysicsConfig struct {
	Gravity  float64 `yaml:"gravity"`   // Downward acceleration, px/s²
	CellSize int     `yaml:"cell_size"` // Broad-phase cell size in pixels
}

// PlayerConfig defines the actor's spawn and movement
type PlayerConfig struct {
	StartX    float64 `yaml:"start_x"`
	StartY    float64 `yaml:"start_y"`
	Bounce    float64 `yaml:"bounce"`
	Speed     float64 `yaml:"speed"`      // Horizontal speed while walking, px/s
	JumpSpeed float64 `yaml:"jump_speed"` // Upward speed of a jump, px/s
}

// PlatformConfig places one static platform by its centre
type PlatformConfig struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Scale float64 `yaml:"scale"`
}

// StarConfig defines one wave of collectibles
type StarConfig struct {
	Count     int     `yaml:"count"`
	StartX    float64 `yaml:"start_x"`
	StartY    float64 `yaml:"start_y"`
	StepX     float64 `yaml:"step_x"`     // Horizontal distance between stars
	BounceMin float64 `yaml:"bounce_min"` // Vertical bounce is drawn from [min, max)
	BounceMax float64 `yaml:"bounce_max"`
	Points    int     `yaml:"points"` // Score per star
}

// BombConfig defines the hazard spawned after each cleared wave
type BombConfig struct {
	SpawnY    float64 `yaml:"spawn_y"`
	Bounce    float64 `yaml:"bounce"`
	MaxSpeedX int     `yaml:"max_speed_x"` // Horizontal speed is drawn from [-max, max)
	FallSpeed float64 `yaml:"fall_speed"`  // Initial downward speed
}

// HUDConfig defines the score label
type HUDConfig struct {
	X        int    `yaml:"x"`
	Y        int    `yaml:"y"`
	FontSize int    `yaml:"font_size"` // Pixel height of the label
	Color    string `yaml:"color"`     // Hex colour, "#rgb" or "#rrggbb"
}

// AssetConfig lists the image files and where to find them
type AssetConfig struct {
	Dir    string        `yaml:"dir"`
	Images []assets.Spec `yaml:"images"`
}

// Lookup returns the spec registered for a key.
func (a AssetConfig) Lookup(key string) (assets.Spec, bool) {
	for _, spec := range a.Images {
		if spec.Key == key {
			return spec, true
		}
	}
	return assets.Spec{}, false
}

// CellSize returns the drawable size of an asset, or 0x0 if unknown.
func (a AssetConfig) CellSize(key string) (w, h float64) {
	spec, ok := a.Lookup(key)
	if !ok {
		return 0, 0
	}
	cw, ch := spec.CellSize()
	return float64(cw), float64(ch)
}

// AudioConfig defines the sound cues
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0..1
}

// FieldMidpoint returns the x that splits the play field into halves.
func (c *Config) FieldMidpoint() float64 {
	return float64(c.Window.Width) / 2
}
