package arcade

import (
	"image/color"

	"github.com/solarlune/resolv"
)

// Vec is a 2D vector in world pixels.
type Vec struct {
	X, Y float64
}

// Touching records which faces of a body are in contact this step.
type Touching struct {
	Up, Down, Left, Right bool
}

// Any reports whether any face is in contact.
func (t Touching) Any() bool {
	return t.Up || t.Down || t.Left || t.Right
}

// Body is a rectangular sprite in the world. Position is the centre of the
// body, matching how sprites are placed on screen.
type Body struct {
	world *World
	obj   *resolv.Object
	// own is the tag unique to this body; group is the tag of its group.
	own   string
	group string

	// Key names the texture drawn for the body.
	Key string

	Position Vec
	Velocity Vec
	Bounce   Vec

	// Width and Height are the unscaled texture size.
	Width, Height float64
	Scale         float64

	Static             bool
	AllowGravity       bool
	CollideWorldBounds bool

	// Touching is set by body-to-body collisions during the last step.
	Touching Touching
	// Blocked is set by the world bounds during the last step.
	Blocked Touching

	Tint color.Color

	active  bool
	visible bool
}

// Size returns the scaled width and height.
func (b *Body) Size() (w, h float64) {
	return b.Width * b.Scale, b.Height * b.Scale
}

// Bounds returns the left, top, right and bottom edges.
func (b *Body) Bounds() (left, top, right, bottom float64) {
	w, h := b.Size()
	left = b.Position.X - w/2
	top = b.Position.Y - h/2
	return left, top, left + w, top + h
}

// Active reports whether the body takes part in the simulation.
func (b *Body) Active() bool {
	return b.active
}

// Visible reports whether the body should be drawn.
func (b *Body) Visible() bool {
	return b.visible
}

// SetVelocity sets both velocity components.
func (b *Body) SetVelocity(x, y float64) *Body {
	b.Velocity = Vec{X: x, Y: y}
	return b
}

// SetVelocityX sets the horizontal velocity.
func (b *Body) SetVelocityX(x float64) *Body {
	b.Velocity.X = x
	return b
}

// SetVelocityY sets the vertical velocity.
func (b *Body) SetVelocityY(y float64) *Body {
	b.Velocity.Y = y
	return b
}

// SetBounce sets the restitution applied on contact, per axis.
func (b *Body) SetBounce(x, y float64) *Body {
	b.Bounce = Vec{X: x, Y: y}
	return b
}

// SetBounceY sets the vertical restitution.
func (b *Body) SetBounceY(y float64) *Body {
	b.Bounce.Y = y
	return b
}

// SetCollideWorldBounds keeps the body inside the world bounds.
func (b *Body) SetCollideWorldBounds(collide bool) *Body {
	b.CollideWorldBounds = collide
	return b
}

// SetTint multiplies the body's texture colour when drawn.
func (b *Body) SetTint(c color.Color) *Body {
	b.Tint = c
	return b
}

// ClearTint removes the tint.
func (b *Body) ClearTint() *Body {
	b.Tint = nil
	return b
}

// SetVisible shows or hides the body without changing the simulation.
func (b *Body) SetVisible(visible bool) *Body {
	b.visible = visible
	return b
}

// SetScale scales the body and refreshes its collision shape.
func (b *Body) SetScale(s float64) *Body {
	b.Scale = s
	b.sync()
	return b
}

// Disable removes the body from the simulation, optionally hiding it.
func (b *Body) Disable(hide bool) {
	if b.active {
		b.world.space.Remove(b.obj)
	}
	b.active = false
	b.Velocity = Vec{}
	b.Touching = Touching{}
	b.Blocked = Touching{}
	if hide {
		b.visible = false
	}
}

// Enable puts the body back into the simulation at (x, y) with zero
// velocity, optionally showing it.
func (b *Body) Enable(x, y float64, show bool) {
	b.Position = Vec{X: x, Y: y}
	b.Velocity = Vec{}
	if !b.active {
		b.world.space.Add(b.obj)
	}
	b.active = true
	if show {
		b.visible = true
	}
	b.sync()
}

// sync moves the resolv object to the body's current bounds.
func (b *Body) sync() {
	left, top, _, _ := b.Bounds()
	w, h := b.Size()
	b.obj.X = left
	b.obj.Y = top
	b.obj.W = w
	b.obj.H = h
	if b.active {
		b.obj.Update()
	}
}

// overlaps reports whether two bodies intersect with positive area.
func (b *Body) overlaps(o *Body) bool {
	l1, t1, r1, b1 := b.Bounds()
	l2, t2, r2, b2 := o.Bounds()
	return l1 < r2 && r1 > l2 && t1 < b2 && b1 > t2
}
