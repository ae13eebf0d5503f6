package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"chosenoffset.com/starfall/internal/assets"
)

// Load loads the game configuration.
// Search order: customPath -> ~/.starfall/starfall.yaml -> ./configs/starfall.yaml -> embedded default.
// Files are applied on top of DefaultConfig, so they only need the keys they change.
func Load(customPath string) (*Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("starfall.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "starfall.yaml")); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultYAML)
	if err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the defaults.
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".starfall", filename)
}

// Validate checks every field and reports all problems at once.
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Window.Width > 0 && c.Window.Height > 0, "window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	check(c.Window.TPS > 0, "window.tps must be positive, got %d", c.Window.TPS)
	check(c.Physics.Gravity >= 0, "physics.gravity must not be negative, got %g", c.Physics.Gravity)
	check(c.Player.Speed >= 0, "player.speed must not be negative, got %g", c.Player.Speed)
	check(c.Player.JumpSpeed >= 0, "player.jump_speed must not be negative, got %g", c.Player.JumpSpeed)
	check(len(c.Platforms) > 0, "at least one platform is required")
	for i, p := range c.Platforms {
		check(p.Scale > 0, "platforms[%d].scale must be positive, got %g", i, p.Scale)
	}
	check(c.Stars.Count > 0, "stars.count must be positive, got %d", c.Stars.Count)
	check(c.Stars.Points >= 0, "stars.points must not be negative, got %d", c.Stars.Points)
	check(c.Stars.BounceMin <= c.Stars.BounceMax, "stars.bounce_min %g exceeds bounce_max %g", c.Stars.BounceMin, c.Stars.BounceMax)
	check(c.Bombs.MaxSpeedX > 0, "bombs.max_speed_x must be positive, got %d", c.Bombs.MaxSpeedX)
	check(c.HUD.FontSize > 0, "hud.font_size must be positive, got %d", c.HUD.FontSize)
	if _, err := ParseHexColor(c.HUD.Color); err != nil {
		errs = append(errs, fmt.Errorf("hud.color: %w", err))
	}
	check(c.Audio.Volume >= 0 && c.Audio.Volume <= 1, "audio.volume must be within [0, 1], got %g", c.Audio.Volume)

	for _, key := range assets.Required {
		spec, ok := c.Assets.Lookup(key)
		if !ok {
			errs = append(errs, fmt.Errorf("assets: missing image %q", key))
			continue
		}
		check(spec.File != "", "assets %q: file is required", key)
		check(spec.Width > 0 && spec.Height > 0, "assets %q: size must be positive, got %dx%d", key, spec.Width, spec.Height)
	}
	if dude, ok := c.Assets.Lookup(assets.Dude); ok {
		check(dude.IsSheet(), "assets %q: frame_width and frame_height are required", assets.Dude)
		check(dude.Frames() >= 9, "assets %q: need 9 frames, sheet holds %d", assets.Dude, dude.Frames())
	}

	return errors.Join(errs...)
}

// ParseHexColor parses "#rgb" or "#rrggbb" into an opaque colour.
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid colour %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
