package ebiten

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"chosenoffset.com/starfall/internal/render"
)

// labelFace is the bitmap face used for every text label. Larger sizes are
// produced by scaling.
var labelFace = text.NewGoXFace(basicfont.Face7x13)

// EbitenRenderer draws labels with the basicfont face.
type EbitenRenderer struct{}

// init installs the ebiten GeoM constructor.
func init() {
	render.NewGeoM = func() render.GeoM {
		return NewGeoM()
	}
}

// NewRenderer returns the ebiten label renderer.
func NewRenderer() render.Renderer {
	return &EbitenRenderer{}
}

// DrawText draws text with its top-left corner at (x, y).
func (r *EbitenRenderer) DrawText(dst render.Image, str string, x, y int, clr color.Color, scale float64) {
	ebitenImg := dst.(*EbitenImage).img

	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(x), float64(y))
	if clr != nil {
		op.ColorScale.ScaleWithColor(clr)
	}
	text.Draw(ebitenImg, str, labelFace, op)
}

// MeasureText returns the pixel size of str drawn at scale.
func (r *EbitenRenderer) MeasureText(str string, scale float64) (width, height int) {
	m := labelFace.Metrics()
	w, h := text.Measure(str, labelFace, m.HAscent+m.HDescent+m.HLineGap)
	return int(w * scale), int(h * scale)
}

// EbitenImage is a render.Image backed by an ebiten.Image.
type EbitenImage struct {
	img *ebiten.Image
}

func (i *EbitenImage) Bounds() image.Rectangle {
	return i.img.Bounds()
}

func (i *EbitenImage) Size() (width, height int) {
	return i.img.Bounds().Dx(), i.img.Bounds().Dy()
}

// SubImage cuts a frame out of a sheet.
func (i *EbitenImage) SubImage(r image.Rectangle) render.Image {
	return &EbitenImage{img: i.img.SubImage(r).(*ebiten.Image)}
}

// DrawImage draws src with the transform and tint in opts.
func (i *EbitenImage) DrawImage(src render.Image, opts *render.DrawImageOptions) {
	srcImg := src.(*EbitenImage).img

	if opts == nil {
		i.img.DrawImage(srcImg, nil)
		return
	}

	ebitenOpts := &ebiten.DrawImageOptions{}
	if opts.GeoM != nil {
		ebitenGeoM := opts.GeoM.(*EbitenGeoM)
		ebitenOpts.GeoM = ebitenGeoM.geoM
	}
	if opts.Tint != nil {
		ebitenOpts.ColorScale.ScaleWithColor(opts.Tint)
	}

	i.img.DrawImage(srcImg, ebitenOpts)
}

// EbitenGeoM is a render.GeoM over ebiten.GeoM.
type EbitenGeoM struct {
	geoM ebiten.GeoM
}

func NewGeoM() render.GeoM {
	return &EbitenGeoM{geoM: ebiten.GeoM{}}
}

func (g *EbitenGeoM) Translate(tx, ty float64) {
	g.geoM.Translate(tx, ty)
}

func (g *EbitenGeoM) Scale(sx, sy float64) {
	g.geoM.Scale(sx, sy)
}

// EbitenInputManager polls the keyboard through ebiten and inpututil.
type EbitenInputManager struct {
	justPressed []ebiten.Key
}

// NewInputManager returns a keyboard poller.
func NewInputManager() render.InputManager {
	return &EbitenInputManager{}
}

// IsKeyPressed reports whether key is held.
func (m *EbitenInputManager) IsKeyPressed(key render.Key) bool {
	return ebiten.IsKeyPressed(keyToEbitenKey(key))
}

// IsKeyJustPressed reports whether key went down this tick.
func (m *EbitenInputManager) IsKeyJustPressed(key render.Key) bool {
	return inpututil.IsKeyJustPressed(keyToEbitenKey(key))
}

// IsAnyKeyJustPressed reports whether any key went down this tick.
func (m *EbitenInputManager) IsAnyKeyJustPressed() bool {
	m.justPressed = inpututil.AppendJustPressedKeys(m.justPressed[:0])
	return len(m.justPressed) > 0
}

// keyToEbitenKey maps the game keys onto the arrow keys and Esc.
func keyToEbitenKey(key render.Key) ebiten.Key {
	switch key {
	case render.KeyUp:
		return ebiten.KeyArrowUp
	case render.KeyLeft:
		return ebiten.KeyArrowLeft
	case render.KeyRight:
		return ebiten.KeyArrowRight
	case render.KeyEscape:
		return ebiten.KeyEscape
	default:
		return 0
	}
}

// EbitenResourceLoader decodes image files into textures.
type EbitenResourceLoader struct{}

// NewResourceLoader returns a file-backed texture loader.
func NewResourceLoader() render.ResourceLoader {
	return &EbitenResourceLoader{}
}

func (l *EbitenResourceLoader) LoadImage(path string) (render.Image, error) {
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, err
	}
	return &EbitenImage{img: img}, nil
}

// EbitenEngine runs the window and tick loop.
type EbitenEngine struct{}

// NewEngine returns the ebiten engine.
func NewEngine() render.Engine {
	return &EbitenEngine{}
}

func (e *EbitenEngine) SetWindowSize(width, height int) {
	ebiten.SetWindowSize(width, height)
}

func (e *EbitenEngine) SetWindowTitle(title string) {
	ebiten.SetWindowTitle(title)
}

// SetWindowResizable enables or disables window resizing.
func (e *EbitenEngine) SetWindowResizable(resizable bool) {
	if resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	} else {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	}
}

// SetTPS sets the fixed update rate.
func (e *EbitenEngine) SetTPS(tps int) {
	ebiten.SetTPS(tps)
}

// RunGame blocks until the window closes or Update fails.
func (e *EbitenEngine) RunGame(game render.Game) error {
	return ebiten.RunGame(&gameAdapter{game: game})
}

// gameAdapter presents a render.Game to ebiten.
type gameAdapter struct {
	game render.Game
}

func (a *gameAdapter) Update() error {
	return a.game.Update()
}

func (a *gameAdapter) Draw(screen *ebiten.Image) {
	a.game.Draw(&EbitenImage{img: screen})
}

func (a *gameAdapter) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.game.Layout(outsideWidth, outsideHeight)
}
