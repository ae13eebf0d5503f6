// Package placeholders draws stand-in art for every image the game loads,
// so the game runs without the original tutorial assets.
package placeholders

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"
	"path/filepath"

	"golang.org/x/image/vector"

	"chosenoffset.com/starfall/internal/assets"
)

// ColorPalette defines the colours of the placeholder art
var ColorPalette = struct {
	SkyTop       color.RGBA
	SkyBottom    color.RGBA
	Grass        color.RGBA
	Soil         color.RGBA
	Star         color.RGBA
	StarOutline  color.RGBA
	Bomb         color.RGBA
	Fuse         color.RGBA
	Dude         color.RGBA
	DudeShirt    color.RGBA
	Eye          color.RGBA
	Transparent  color.RGBA
	Unrecognised color.RGBA
}{
	SkyTop:       color.RGBA{40, 110, 200, 255},
	SkyBottom:    color.RGBA{170, 215, 250, 255},
	Grass:        color.RGBA{60, 170, 60, 255},
	Soil:         color.RGBA{120, 85, 50, 255},
	Star:         color.RGBA{255, 215, 0, 255},
	StarOutline:  color.RGBA{200, 140, 0, 255},
	Bomb:         color.RGBA{40, 40, 45, 255},
	Fuse:         color.RGBA{255, 120, 30, 255},
	Dude:         color.RGBA{150, 90, 200, 255},
	DudeShirt:    color.RGBA{90, 50, 140, 255},
	Eye:          color.RGBA{255, 255, 255, 255},
	Transparent:  color.RGBA{0, 0, 0, 0},
	Unrecognised: color.RGBA{255, 0, 255, 255},
}

// Generate draws the placeholder for one asset spec.
func Generate(spec assets.Spec) (*image.RGBA, error) {
	if spec.Width <= 0 || spec.Height <= 0 {
		return nil, fmt.Errorf("placeholder %s: size must be positive, got %dx%d", spec.Key, spec.Width, spec.Height)
	}

	switch spec.Key {
	case assets.Sky:
		return CreateGradient(spec.Width, spec.Height, ColorPalette.SkyTop, ColorPalette.SkyBottom), nil
	case assets.Platform:
		return CreatePlatform(spec.Width, spec.Height), nil
	case assets.Star:
		return CreateStar(spec.Width, spec.Height, ColorPalette.Star, ColorPalette.StarOutline), nil
	case assets.Bomb:
		return CreateCircle(spec.Width, spec.Height, ColorPalette.Bomb, ColorPalette.Fuse), nil
	case assets.Dude:
		if !spec.IsSheet() {
			return nil, fmt.Errorf("placeholder %s: frame size is required", spec.Key)
		}
		return CreateDudeSheet(spec), nil
	default:
		return CreateSolid(spec.Width, spec.Height, ColorPalette.Unrecognised), nil
	}
}

// WriteAll generates every spec into dir as PNG files.
func WriteAll(dir string, specs []assets.Spec) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", dir, err)
	}

	var written []string
	for _, spec := range specs {
		img, err := Generate(spec)
		if err != nil {
			return written, err
		}
		path := filepath.Join(dir, spec.File)
		if err := SavePNG(img, path); err != nil {
			return written, fmt.Errorf("failed to save %s: %w", path, err)
		}
		written = append(written, path)
	}
	return written, nil
}

// CreateSolid creates a solid-coloured image
func CreateSolid(w, h int, col color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{col}, image.Point{}, draw.Src)
	return img
}

// CreateGradient creates a vertical gradient from top to bottom
func CreateGradient(w, h int, top, bottom color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		t := 0.0
		if h > 1 {
			t = float64(y) / float64(h-1)
		}
		row := image.Rect(0, y, w, y+1)
		draw.Draw(img, row, &image.Uniform{Mix(top, bottom, t)}, image.Point{}, draw.Src)
	}
	return img
}

// CreatePlatform creates a soil slab with a grass top and a dark border
func CreatePlatform(w, h int) *image.RGBA {
	img := CreateSolid(w, h, ColorPalette.Soil)

	grass := h / 3
	if grass < 1 {
		grass = 1
	}
	draw.Draw(img, image.Rect(0, 0, w, grass), &image.Uniform{ColorPalette.Grass}, image.Point{}, draw.Src)

	border := Darken(ColorPalette.Soil, 0.6)
	for x := 0; x < w; x++ {
		img.Set(x, h-1, border)
	}
	for y := 0; y < h; y++ {
		img.Set(0, y, border)
		img.Set(w-1, y, border)
	}

	// Speckle the soil
	speck := Lighten(ColorPalette.Soil, 0.25)
	for y := grass + 2; y < h-2; y += 5 {
		for x := (y * 7) % 11; x < w-1; x += 11 {
			img.Set(x, y, speck)
		}
	}
	return img
}

// CreateStar creates a five-pointed star on a transparent background
func CreateStar(w, h int, fill, outline color.RGBA) *image.RGBA {
	img := CreateSolid(w, h, ColorPalette.Transparent)

	cx, cy := float64(w)/2, float64(h)/2
	outer := math.Min(cx, cy)
	inner := outer * 0.45

	drawStar := func(col color.RGBA, ro, ri float64) {
		z := vector.NewRasterizer(w, h)
		for i := 0; i < 10; i++ {
			r := ro
			if i%2 == 1 {
				r = ri
			}
			a := -math.Pi/2 + float64(i)*math.Pi/5
			x, y := float32(cx+r*math.Cos(a)), float32(cy+r*math.Sin(a))
			if i == 0 {
				z.MoveTo(x, y)
			} else {
				z.LineTo(x, y)
			}
		}
		z.ClosePath()
		z.Draw(img, img.Bounds(), &image.Uniform{col}, image.Point{})
	}

	drawStar(outline, outer, inner)
	drawStar(fill, outer-1.5, inner-0.75)
	return img
}

// CreateCircle creates a round bomb with a lit fuse
func CreateCircle(w, h int, fillColor, fuseColor color.RGBA) *image.RGBA {
	img := CreateSolid(w, h, ColorPalette.Transparent)

	centerX, centerY := w/2, h/2+1
	radius := w
	if h < radius {
		radius = h
	}
	radius = radius/2 - 1

	outline := Darken(fillColor, 0.5)
	shine := Lighten(fillColor, 0.5)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dx := x - centerX
			dy := y - centerY
			distSq := dx*dx + dy*dy

			if distSq <= radius*radius {
				img.Set(x, y, fillColor)
			} else if distSq <= (radius+1)*(radius+1) {
				img.Set(x, y, outline)
			}
		}
	}

	img.Set(centerX-radius/2, centerY-radius/2, shine)
	img.Set(centerX+1, 0, fuseColor)
	img.Set(centerX+2, 0, fuseColor)
	img.Set(centerX+1, 1, fuseColor)
	return img
}

// CreateDudeSheet creates the player sheet. The first four frames face left,
// the middle frame faces the camera, the last four face right. Frames within
// a facing shift the legs to read as a walk cycle.
func CreateDudeSheet(spec assets.Spec) *image.RGBA {
	sheet := CreateSolid(spec.Width, spec.Height, ColorPalette.Transparent)

	frames := spec.Frames()
	columns := spec.Width / spec.FrameWidth
	turn := frames / 2

	for i := 0; i < frames; i++ {
		x := (i % columns) * spec.FrameWidth
		y := (i / columns) * spec.FrameHeight
		facing := 0
		switch {
		case i < turn:
			facing = -1
		case i > turn:
			facing = 1
		}
		frame := createDudeFrame(spec.FrameWidth, spec.FrameHeight, facing, i%4)
		draw.Draw(sheet, image.Rect(x, y, x+spec.FrameWidth, y+spec.FrameHeight), frame, image.Point{}, draw.Src)
	}
	return sheet
}

// createDudeFrame draws one figure. facing is -1, 0 or 1, step picks the leg pose.
func createDudeFrame(w, h, facing, step int) *image.RGBA {
	img := CreateSolid(w, h, ColorPalette.Transparent)

	fill := func(r image.Rectangle, col color.RGBA) {
		draw.Draw(img, r.Intersect(img.Bounds()), &image.Uniform{col}, image.Point{}, draw.Src)
	}

	mid := w / 2
	head := h / 4
	bodyTop := head + 2
	legTop := h * 2 / 3

	fill(image.Rect(mid-head/2, 2, mid+head/2, 2+head), ColorPalette.Dude)
	fill(image.Rect(mid-w/4, bodyTop, mid+w/4, legTop), ColorPalette.DudeShirt)

	// Eyes show the facing
	eyeY := 2 + head/3
	switch facing {
	case -1:
		fill(image.Rect(mid-head/2+1, eyeY, mid-head/2+3, eyeY+2), ColorPalette.Eye)
	case 1:
		fill(image.Rect(mid+head/2-3, eyeY, mid+head/2-1, eyeY+2), ColorPalette.Eye)
	default:
		fill(image.Rect(mid-3, eyeY, mid-1, eyeY+2), ColorPalette.Eye)
		fill(image.Rect(mid+1, eyeY, mid+3, eyeY+2), ColorPalette.Eye)
	}

	stride := 0
	if facing != 0 {
		stride = []int{-3, -1, 3, 1}[step] * facing
	}
	legW := w / 8
	if legW < 1 {
		legW = 1
	}
	fill(image.Rect(mid-w/8-legW+stride, legTop, mid-w/8+stride, h), ColorPalette.Dude)
	fill(image.Rect(mid+w/8-stride, legTop, mid+w/8+legW-stride, h), ColorPalette.Dude)
	return img
}

// SavePNG saves an image to a PNG file
func SavePNG(img image.Image, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return png.Encode(file, img)
}

// Mix blends two colours, t=0 gives a and t=1 gives b
func Mix(a, b color.RGBA, t float64) color.RGBA {
	lerp := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{R: lerp(a.R, b.R), G: lerp(a.G, b.G), B: lerp(a.B, b.B), A: lerp(a.A, b.A)}
}

// Darken returns a darker version of a color
func Darken(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}

// Lighten returns a lighter version of a color
func Lighten(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) + (255-float64(c.R))*factor),
		G: uint8(float64(c.G) + (255-float64(c.G))*factor),
		B: uint8(float64(c.B) + (255-float64(c.B))*factor),
		A: c.A,
	}
}
