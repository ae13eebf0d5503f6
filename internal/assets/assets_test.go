package assets

import (
	"errors"
	"image"
	"path/filepath"
	"testing"

	"chosenoffset.com/starfall/internal/render"
)

type fakeImage struct {
	rect image.Rectangle
}

func (f *fakeImage) Bounds() image.Rectangle { return f.rect }
func (f *fakeImage) Size() (int, int)        { return f.rect.Dx(), f.rect.Dy() }
func (f *fakeImage) SubImage(r image.Rectangle) render.Image {
	return &fakeImage{rect: r.Intersect(f.rect)}
}
func (f *fakeImage) DrawImage(render.Image, *render.DrawImageOptions) {}

type fakeLoader struct {
	sizes map[string]image.Point
	paths []string
}

func (l *fakeLoader) LoadImage(path string) (render.Image, error) {
	l.paths = append(l.paths, path)
	size, ok := l.sizes[path]
	if !ok {
		return nil, errors.New("file does not exist")
	}
	return &fakeImage{rect: image.Rect(0, 0, size.X, size.Y)}, nil
}

func testSpecs() []Spec {
	return []Spec{
		{Key: Sky, File: "sky.png", Width: 800, Height: 600},
		{Key: Dude, File: "dude.png", Width: 288, Height: 48, FrameWidth: 32, FrameHeight: 48},
	}
}

func TestSpecCellSize(t *testing.T) {
	specs := testSpecs()

	w, h := specs[0].CellSize()
	if w != 800 || h != 600 {
		t.Errorf("Expected image cell 800x600, got %dx%d", w, h)
	}
	if specs[0].Frames() != 1 {
		t.Errorf("Expected a plain image to have 1 frame, got %d", specs[0].Frames())
	}

	w, h = specs[1].CellSize()
	if w != 32 || h != 48 {
		t.Errorf("Expected sheet cell 32x48, got %dx%d", w, h)
	}
	if specs[1].Frames() != 9 {
		t.Errorf("Expected 9 frames, got %d", specs[1].Frames())
	}
}

func TestLoadLibrary(t *testing.T) {
	loader := &fakeLoader{sizes: map[string]image.Point{
		filepath.Join("assets", "sky.png"):  {800, 600},
		filepath.Join("assets", "dude.png"): {288, 48},
	}}

	lib, err := Load(loader, "assets", testSpecs())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(loader.paths) != 2 {
		t.Errorf("Expected 2 loads, got %d", len(loader.paths))
	}

	if _, ok := lib.Image(Sky); !ok {
		t.Error("Expected sky image to be loaded")
	}
	sheet, ok := lib.Sheet(Dude)
	if !ok {
		t.Fatal("Expected dude sheet to be loaded")
	}
	if sheet.Len() != 9 {
		t.Errorf("Expected 9 frames, got %d", sheet.Len())
	}

	frame, err := lib.Frame(Dude, 5)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got := frame.Bounds(); got != image.Rect(160, 0, 192, 48) {
		t.Errorf("Expected frame 5 at (160,0)-(192,48), got %v", got)
	}

	if _, err := lib.Frame(Dude, 9); err == nil {
		t.Error("Expected error for frame out of range")
	}
	if _, err := lib.Frame(Sky, 0); err == nil {
		t.Error("Expected error for frame of a plain image")
	}
}

func TestLoadMissingAsset(t *testing.T) {
	loader := &fakeLoader{sizes: map[string]image.Point{
		filepath.Join("assets", "sky.png"): {800, 600},
	}}

	if _, err := Load(loader, "assets", testSpecs()); err == nil {
		t.Fatal("Expected error for missing dude.png")
	}
}

func TestAddRejectsUndersizedSheet(t *testing.T) {
	lib := NewLibrary()
	spec := Spec{Key: Dude, File: "dude.png", FrameWidth: 32, FrameHeight: 48}

	err := lib.Add(spec, &fakeImage{rect: image.Rect(0, 0, 16, 48)})
	if err == nil {
		t.Error("Expected error for sheet narrower than one frame")
	}
}
