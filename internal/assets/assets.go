// Package assets loads the game's images and sprite sheets by logical name.
package assets

import (
	"fmt"
	"image"
	"path/filepath"

	"chosenoffset.com/starfall/internal/render"
)

// Logical names of the assets the scene draws.
const (
	Sky      = "sky"
	Platform = "platform"
	Star     = "star"
	Bomb     = "bomb"
	Dude     = "dude"
)

// Required lists every asset the game cannot start without.
var Required = []string{Sky, Platform, Star, Bomb, Dude}

// Spec describes one image file. A spec with a frame size is a sprite sheet
// cut into equal cells, left to right, top to bottom.
type Spec struct {
	Key         string `yaml:"key"`
	File        string `yaml:"file"`
	Width       int    `yaml:"width"`
	Height      int    `yaml:"height"`
	FrameWidth  int    `yaml:"frame_width,omitempty"`
	FrameHeight int    `yaml:"frame_height,omitempty"`
}

// IsSheet reports whether the spec is a sprite sheet.
func (s Spec) IsSheet() bool {
	return s.FrameWidth > 0 && s.FrameHeight > 0
}

// CellSize returns the size of one drawable cell: the frame for a sheet,
// the whole image otherwise.
func (s Spec) CellSize() (w, h int) {
	if s.IsSheet() {
		return s.FrameWidth, s.FrameHeight
	}
	return s.Width, s.Height
}

// Frames returns how many cells a sheet holds.
func (s Spec) Frames() int {
	if !s.IsSheet() {
		return 1
	}
	return (s.Width / s.FrameWidth) * (s.Height / s.FrameHeight)
}

// Sheet is a loaded sprite sheet.
type Sheet struct {
	Image       render.Image
	FrameWidth  int
	FrameHeight int
	columns     int
	frames      int
}

// Frame returns the sub-image for a cell index.
func (s *Sheet) Frame(index int) (render.Image, error) {
	if index < 0 || index >= s.frames {
		return nil, fmt.Errorf("frame %d out of range [0, %d)", index, s.frames)
	}
	x := (index % s.columns) * s.FrameWidth
	y := (index / s.columns) * s.FrameHeight
	rect := image.Rect(x, y, x+s.FrameWidth, y+s.FrameHeight)
	return s.Image.SubImage(rect), nil
}

// Len returns the number of frames in the sheet.
func (s *Sheet) Len() int {
	return s.frames
}

// Library holds every loaded asset.
type Library struct {
	images map[string]render.Image
	sheets map[string]*Sheet
}

// NewLibrary creates an empty library.
func NewLibrary() *Library {
	return &Library{
		images: make(map[string]render.Image),
		sheets: make(map[string]*Sheet),
	}
}

// Load reads every spec from dir through the loader.
func Load(loader render.ResourceLoader, dir string, specs []Spec) (*Library, error) {
	lib := NewLibrary()
	for _, spec := range specs {
		path := filepath.Join(dir, spec.File)
		img, err := loader.LoadImage(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load asset %s from %s: %w", spec.Key, path, err)
		}
		if err := lib.Add(spec, img); err != nil {
			return nil, err
		}
	}
	return lib, nil
}

// Add registers a loaded image under its spec.
func (l *Library) Add(spec Spec, img render.Image) error {
	if !spec.IsSheet() {
		l.images[spec.Key] = img
		return nil
	}

	w, h := img.Size()
	columns := w / spec.FrameWidth
	rows := h / spec.FrameHeight
	if columns == 0 || rows == 0 {
		return fmt.Errorf("sprite sheet %s is %dx%d, smaller than one %dx%d frame",
			spec.Key, w, h, spec.FrameWidth, spec.FrameHeight)
	}
	l.images[spec.Key] = img
	l.sheets[spec.Key] = &Sheet{
		Image:       img,
		FrameWidth:  spec.FrameWidth,
		FrameHeight: spec.FrameHeight,
		columns:     columns,
		frames:      columns * rows,
	}
	return nil
}

// Image returns a whole image by key.
func (l *Library) Image(key string) (render.Image, bool) {
	img, ok := l.images[key]
	return img, ok
}

// Sheet returns a sprite sheet by key.
func (l *Library) Sheet(key string) (*Sheet, bool) {
	s, ok := l.sheets[key]
	return s, ok
}

// Frame returns one cell of a sprite sheet by key and index.
func (l *Library) Frame(key string, index int) (render.Image, error) {
	s, ok := l.sheets[key]
	if !ok {
		return nil, fmt.Errorf("sprite sheet not found: %s", key)
	}
	return s.Frame(index)
}
