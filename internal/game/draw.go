package game

import (
	"chosenoffset.com/starfall/internal/arcade"
	"chosenoffset.com/starfall/internal/assets"
	"chosenoffset.com/starfall/internal/render"
)

// hudGlyphHeight is the pixel height of the renderer's font at scale 1.
const hudGlyphHeight = 13

const restartHint = "Game over - press any key"

// Draw renders the scene: backdrop, platforms, player, stars, bombs and
// finally the score label, plus the restart hint after a game over.
// Missing textures are skipped.
func (s *Scene) Draw(screen render.Image, r render.Renderer, lib *assets.Library) {
	if sky, ok := lib.Image(assets.Sky); ok {
		w, h := sky.Size()
		op := &render.DrawImageOptions{GeoM: render.NewGeoM()}
		op.GeoM.Translate(float64(s.cfg.Window.Width-w)/2, float64(s.cfg.Window.Height-h)/2)
		screen.DrawImage(sky, op)
	}

	if img, ok := lib.Image(assets.Platform); ok {
		for _, p := range s.platforms.Children() {
			drawBody(screen, img, p)
		}
	}

	s.drawPlayer(screen, lib)

	if img, ok := lib.Image(assets.Star); ok {
		for _, star := range s.stars.Children() {
			drawBody(screen, img, star)
		}
	}
	if img, ok := lib.Image(assets.Bomb); ok {
		for _, bomb := range s.bombs.Children() {
			drawBody(screen, img, bomb)
		}
	}

	scale := float64(s.cfg.HUD.FontSize) / hudGlyphHeight
	r.DrawText(screen, s.scoreText, s.cfg.HUD.X, s.cfg.HUD.Y, s.hudColor, scale)

	if s.awaitingRestart {
		w, h := r.MeasureText(restartHint, scale)
		x := (s.cfg.Window.Width - w) / 2
		y := (s.cfg.Window.Height - h) / 2
		r.DrawText(screen, restartHint, x, y, s.hudColor, scale)
	}
}

func (s *Scene) drawPlayer(screen render.Image, lib *assets.Library) {
	frame, ok := s.player.Sprite().Frame()
	if !ok {
		return
	}
	img, err := lib.Frame(frame.Texture, frame.Index)
	if err != nil {
		return
	}
	drawBody(screen, img, s.player.Body())
}

// drawBody draws img scaled to the body and centred on its position.
func drawBody(screen, img render.Image, b *arcade.Body) {
	if !b.Visible() {
		return
	}
	w, h := b.Size()
	op := &render.DrawImageOptions{GeoM: render.NewGeoM(), Tint: b.Tint}
	op.GeoM.Scale(b.Scale, b.Scale)
	op.GeoM.Translate(b.Position.X-w/2, b.Position.Y-h/2)
	screen.DrawImage(img, op)
}
