package config

import (
	"image/color"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"chosenoffset.com/starfall/internal/assets"
)

func TestEmbeddedDefaultsMatchDefaultConfig(t *testing.T) {
	cfg, err := Parse(defaultYAML)
	if err != nil {
		t.Fatalf("Failed to parse embedded defaults: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Errorf("Embedded YAML and DefaultConfig disagree:\nyaml: %+v\ncode: %+v", cfg, DefaultConfig())
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("Expected default config to be valid, got: %v", err)
	}
}

func TestParseOverridesOnlyGivenKeys(t *testing.T) {
	cfg, err := Parse([]byte(`
player:
  speed: 200
stars:
  count: 6
`))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if cfg.Player.Speed != 200 {
		t.Errorf("Expected speed 200, got %g", cfg.Player.Speed)
	}
	if cfg.Stars.Count != 6 {
		t.Errorf("Expected 6 stars, got %d", cfg.Stars.Count)
	}
	if cfg.Player.JumpSpeed != 330 {
		t.Errorf("Expected default jump speed 330 to survive, got %g", cfg.Player.JumpSpeed)
	}
	if len(cfg.Platforms) != 4 {
		t.Errorf("Expected default platforms to survive, got %d", len(cfg.Platforms))
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("window:\n  title: Custom\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.Window.Title != "Custom" {
		t.Errorf("Expected title 'Custom', got '%s'", cfg.Window.Title)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected error for missing custom config")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	os.WriteFile(path, []byte("stars: [not, a, map"), 0o644)
	if _, err := Load(path); err == nil {
		t.Error("Expected error for malformed custom config")
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Stars.Count = 0
	cfg.Window.TPS = 0
	cfg.HUD.Color = "black"
	cfg.Assets.Images = cfg.Assets.Images[:4] // drop the sprite sheet

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Expected validation error")
	}
	for _, want := range []string{"stars.count", "window.tps", "hud.color", `"dude"`} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Expected error to mention %s, got: %v", want, err)
		}
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{"#000", color.RGBA{0, 0, 0, 255}, false},
		{"#ff0000", color.RGBA{255, 0, 0, 255}, false},
		{"#fa0", color.RGBA{255, 170, 0, 255}, false},
		{"0f0f0f", color.RGBA{15, 15, 15, 255}, false},
		{"#12", color.RGBA{}, true},
		{"#gggggg", color.RGBA{}, true},
	}

	for _, tt := range tests {
		got, err := ParseHexColor(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseHexColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHexColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestAssetCellSize(t *testing.T) {
	cfg := DefaultConfig()

	w, h := cfg.Assets.CellSize(assets.Dude)
	if w != 32 || h != 48 {
		t.Errorf("Expected dude cell 32x48, got %gx%g", w, h)
	}
	w, h = cfg.Assets.CellSize(assets.Platform)
	if w != 400 || h != 32 {
		t.Errorf("Expected platform 400x32, got %gx%g", w, h)
	}
	if w, h := cfg.Assets.CellSize("missing"); w != 0 || h != 0 {
		t.Errorf("Expected 0x0 for unknown key, got %gx%g", w, h)
	}
}

func TestFieldMidpoint(t *testing.T) {
	if got := DefaultConfig().FieldMidpoint(); got != 400 {
		t.Errorf("Expected midpoint 400, got %g", got)
	}
}
