// Package render declares the engine surface the game is written against.
// The game package never imports a backend; cmd/starfall wires one in.
package render

import (
	"image"
	"image/color"
)

// Renderer draws text labels onto an image.
type Renderer interface {
	// DrawText draws str with its top-left corner at (x, y). Scale 1 is the
	// backend's native glyph size.
	DrawText(dst Image, str string, x, y int, clr color.Color, scale float64)
	MeasureText(str string, scale float64) (width, height int)
}

// Image is a texture or a render target.
type Image interface {
	Bounds() image.Rectangle
	Size() (width, height int)
	// SubImage shares pixels with the parent. Sprite sheet frames are cut this way.
	SubImage(r image.Rectangle) Image
	DrawImage(src Image, opts *DrawImageOptions)
}

// DrawImageOptions positions a draw.
type DrawImageOptions struct {
	GeoM GeoM
	// Tint multiplies the source colour. Nil draws the image unchanged.
	Tint color.Color
}

// GeoM is an affine transform. Operations apply in call order.
type GeoM interface {
	Translate(tx, ty float64)
	Scale(sx, sy float64)
}

// NewGeoM is set by the backend on import.
var NewGeoM func() GeoM

// InputManager reports keyboard state for the current tick.
type InputManager interface {
	IsKeyPressed(key Key) bool
	IsKeyJustPressed(key Key) bool
	// IsAnyKeyJustPressed reports whether any key went down this tick.
	IsAnyKeyJustPressed() bool
}

// Key is a keyboard key the game reads.
type Key int

const (
	KeyUp Key = iota
	KeyLeft
	KeyRight
	KeyEscape
)

// ResourceLoader reads image files.
type ResourceLoader interface {
	LoadImage(path string) (Image, error)
}

// Game is driven by the engine: Update once per tick, Draw once per frame.
type Game interface {
	Update() error
	Draw(screen Image)
	// Layout maps the window size to the logical screen size.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine owns the window and the loop.
type Engine interface {
	SetWindowSize(width, height int)
	SetWindowTitle(title string)
	SetWindowResizable(resizable bool)
	// SetTPS sets the number of Update calls per second.
	SetTPS(tps int)
	// RunGame blocks until the window closes or Update returns an error.
	RunGame(game Game) error
}
