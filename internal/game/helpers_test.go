package game

import (
	"image"
	"image/color"
	"io"
	"math/rand"
	"testing"

	"github.com/charmbracelet/log"

	"chosenoffset.com/starfall/internal/config"
	"chosenoffset.com/starfall/internal/render"
)

const tick = 1.0 / 60

// fakeInput is a scripted keyboard.
type fakeInput struct {
	held map[render.Key]bool
	just map[render.Key]bool
	any  bool
}

func newFakeInput() *fakeInput {
	return &fakeInput{held: map[render.Key]bool{}, just: map[render.Key]bool{}}
}

func (f *fakeInput) IsKeyPressed(k render.Key) bool     { return f.held[k] }
func (f *fakeInput) IsKeyJustPressed(k render.Key) bool { return f.just[k] }
func (f *fakeInput) IsAnyKeyJustPressed() bool          { return f.any || len(f.just) > 0 }

// press makes k go down this tick and stay held.
func (f *fakeInput) press(k render.Key) {
	f.held[k] = true
	f.just[k] = true
}

// endTick clears the just-pressed state.
func (f *fakeInput) endTick() {
	f.just = map[render.Key]bool{}
	f.any = false
}

func (f *fakeInput) release(k render.Key) {
	delete(f.held, k)
}

type countingSounds struct {
	collects, waves, hits int
}

func (c *countingSounds) PlayCollect()   { c.collects++ }
func (c *countingSounds) PlayWaveClear() { c.waves++ }
func (c *countingSounds) PlayHit()       { c.hits++ }

func newTestScene(t *testing.T, seed int64) (*Scene, *countingSounds) {
	t.Helper()
	sounds := &countingSounds{}
	s, err := NewScene(config.DefaultConfig(), rand.New(rand.NewSource(seed)), log.New(io.Discard), sounds)
	if err != nil {
		t.Fatalf("NewScene failed: %v", err)
	}
	return s, sounds
}

// run advances the scene n ticks with the given input.
func run(t *testing.T, s *Scene, in *fakeInput, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		if err := s.Update(in, tick); err != nil {
			t.Fatalf("Update failed on tick %d: %v", i, err)
		}
		in.endTick()
	}
}

// settle lets the player fall onto the ground and stop bouncing.
func settle(t *testing.T, s *Scene) {
	t.Helper()
	in := newFakeInput()
	resting := 0
	for i := 0; i < 600 && resting < 10; i++ {
		run(t, s, in, 1)
		if s.Player().Grounded() {
			resting++
		} else {
			resting = 0
		}
	}
	if resting < 10 {
		t.Fatal("Player never came to rest")
	}
}

// fakeGeoM records the transform as scale then translate.
type fakeGeoM struct {
	sx, sy, tx, ty float64
}

func newFakeGeoM() render.GeoM { return &fakeGeoM{sx: 1, sy: 1} }

func (g *fakeGeoM) Translate(tx, ty float64) {
	g.tx += tx
	g.ty += ty
}

func (g *fakeGeoM) Scale(sx, sy float64) {
	g.sx *= sx
	g.sy *= sy
	g.tx *= sx
	g.ty *= sy
}

type drawCall struct {
	src  *fakeImage
	geom fakeGeoM
	tint color.Color
}

// fakeImage is a headless render.Image that records draws onto it.
type fakeImage struct {
	name   string
	bounds image.Rectangle
	draws  []drawCall
}

func newFakeImage(name string, w, h int) *fakeImage {
	return &fakeImage{name: name, bounds: image.Rect(0, 0, w, h)}
}

func (i *fakeImage) Bounds() image.Rectangle { return i.bounds }
func (i *fakeImage) Size() (int, int)        { return i.bounds.Dx(), i.bounds.Dy() }
func (i *fakeImage) SubImage(r image.Rectangle) render.Image {
	return &fakeImage{name: i.name, bounds: r.Intersect(i.bounds)}
}
func (i *fakeImage) DrawImage(src render.Image, opts *render.DrawImageOptions) {
	call := drawCall{src: src.(*fakeImage)}
	if opts != nil {
		if g, ok := opts.GeoM.(*fakeGeoM); ok {
			call.geom = *g
		}
		call.tint = opts.Tint
	}
	i.draws = append(i.draws, call)
}

type textCall struct {
	text  string
	x, y  int
	clr   color.Color
	scale float64
}

type fakeRenderer struct {
	texts []textCall
}

func (r *fakeRenderer) DrawText(_ render.Image, text string, x, y int, clr color.Color, scale float64) {
	r.texts = append(r.texts, textCall{text: text, x: x, y: y, clr: clr, scale: scale})
}
func (r *fakeRenderer) MeasureText(text string, scale float64) (int, int) {
	return int(float64(len(text)*7) * scale), int(13 * scale)
}
