package game

import (
	"fmt"

	"chosenoffset.com/starfall/internal/anim"
	"chosenoffset.com/starfall/internal/arcade"
	"chosenoffset.com/starfall/internal/assets"
	"chosenoffset.com/starfall/internal/config"
)

// Animation keys of the player sheet.
const (
	AnimLeft  = "dudeAnimLeft"
	AnimTurn  = "dudeAnimTurn"
	AnimRight = "dudeAnimRight"
)

// Player is the actor steered with the arrow keys.
type Player struct {
	cfg    config.PlayerConfig
	body   *arcade.Body
	sprite *anim.Sprite
}

// NewPlayer creates a player that is not yet in a world.
func NewPlayer(cfg config.PlayerConfig) *Player {
	return &Player{cfg: cfg}
}

// Create adds the player's body to the world at its start position and
// registers its walk and turn clips.
func (p *Player) Create(world *arcade.World, anims *anim.Manager, size arcade.Vec) error {
	p.body = world.AddSprite(p.cfg.StartX, p.cfg.StartY, assets.Dude, size)
	p.body.SetBounce(p.cfg.Bounce, p.cfg.Bounce).SetCollideWorldBounds(true)

	clips := []anim.Clip{
		{Key: AnimLeft, Frames: anim.GenerateFrameNumbers(assets.Dude, 0, 3), FrameRate: 10, Repeat: anim.RepeatForever},
		{Key: AnimTurn, Frames: []anim.Frame{{Texture: assets.Dude, Index: 4}}, FrameRate: 20},
		{Key: AnimRight, Frames: anim.GenerateFrameNumbers(assets.Dude, 5, 8), FrameRate: 10, Repeat: anim.RepeatForever},
	}
	for _, c := range clips {
		if err := anims.Create(c); err != nil {
			return fmt.Errorf("failed to register player animation: %w", err)
		}
	}

	p.sprite = anim.NewSprite(anims)
	p.sprite.Play(AnimTurn, false)
	return nil
}

// Tick applies one frame of input. Horizontal input picks exactly one of
// walk left, walk right or stand; the jump check is independent of it.
func (p *Player) Tick(c Controls, grounded bool) {
	switch {
	case c.Left:
		p.body.SetVelocityX(-p.cfg.Speed)
		p.sprite.Play(AnimLeft, true)
	case c.Right:
		p.body.SetVelocityX(p.cfg.Speed)
		p.sprite.Play(AnimRight, true)
	default:
		p.body.SetVelocityX(0)
		p.sprite.Play(AnimTurn, false)
	}

	if c.Up && grounded {
		p.body.SetVelocityY(-p.cfg.JumpSpeed)
	}
}

// Update ticks with the ground contact from the last physics step.
func (p *Player) Update(c Controls) {
	p.Tick(c, p.Grounded())
}

// Grounded reports whether the player rests on a body.
func (p *Player) Grounded() bool {
	return p.body.Touching.Down
}

// Animate advances the current clip.
func (p *Player) Animate(dt float64) {
	p.sprite.Update(dt)
}

// Die shows the standing frame. Velocity is left to the paused world.
func (p *Player) Die() {
	p.sprite.Play(AnimTurn, false)
}

// Body returns the player's physics body.
func (p *Player) Body() *arcade.Body {
	return p.body
}

// Sprite returns the player's animation state.
func (p *Player) Sprite() *anim.Sprite {
	return p.sprite
}
