// Package arcade is a small axis-aligned rigid-body world in the style of
// an arcade physics engine: gravity, velocity integration, world bounds and
// pairwise collide/overlap checks. Broad phase uses a resolv spatial hash.
package arcade

import (
	"fmt"
	"math"

	"github.com/solarlune/resolv"
)

// Config holds the world's fixed properties.
type Config struct {
	Width, Height float64
	Gravity       Vec
	// CellSize is the side of a broad-phase cell in pixels.
	CellSize int
}

// PairID identifies a registered collision pair.
type PairID int

type pairKind int

const (
	kindCollide pairKind = iota
	kindOverlap
)

type pair struct {
	id   PairID
	kind pairKind
	a, b Collidable
}

// Contact is one body-to-body contact found by Step for a registered pair.
// A belongs to the pair's first collidable and B to its second.
type Contact struct {
	Pair PairID
	A, B *Body
}

// World owns every body and the pairs checked between them.
type World struct {
	cfg    Config
	space  *resolv.Space
	bodies []*Body
	groups int
	pairs  []pair
	paused bool

	contacts []Contact
	seen     map[*Body]struct{}
}

// NewWorld creates an empty world.
func NewWorld(cfg Config) *World {
	if cfg.CellSize <= 0 {
		cfg.CellSize = 32
	}
	return &World{
		cfg:   cfg,
		space: resolv.NewSpace(int(math.Ceil(cfg.Width)), int(math.Ceil(cfg.Height)), cfg.CellSize, cfg.CellSize),
		seen:  make(map[*Body]struct{}),
	}
}

// Config returns the world's configuration.
func (w *World) Config() Config {
	return w.cfg
}

// AddSprite adds a single dynamic body centred at (x, y).
func (w *World) AddSprite(x, y float64, key string, size Vec) *Body {
	return w.newBody(x, y, key, size, false, "")
}

// AddGroup creates a group of dynamic bodies.
func (w *World) AddGroup() *Group {
	return w.addGroup(false)
}

// AddStaticGroup creates a group of immovable bodies.
func (w *World) AddStaticGroup() *Group {
	return w.addGroup(true)
}

func (w *World) addGroup(static bool) *Group {
	w.groups++
	return &Group{world: w, name: fmt.Sprintf("group-%d", w.groups), static: static}
}

func (w *World) newBody(x, y float64, key string, size Vec, static bool, group string) *Body {
	b := &Body{
		world:        w,
		own:          fmt.Sprintf("body-%d", len(w.bodies)+1),
		group:        group,
		Key:          key,
		Position:     Vec{X: x, Y: y},
		Width:        size.X,
		Height:       size.Y,
		Scale:        1,
		Static:       static,
		AllowGravity: !static,
		active:       true,
		visible:      true,
	}
	tags := []string{b.own}
	if group != "" {
		tags = append(tags, group)
	}
	left, top, _, _ := b.Bounds()
	b.obj = resolv.NewObject(left, top, size.X, size.Y, tags...)
	b.obj.Data = b
	w.space.Add(b.obj)
	w.bodies = append(w.bodies, b)
	return b
}

// Collider registers a solid pair: overlapping bodies are pushed apart.
func (w *World) Collider(a, b Collidable) PairID {
	return w.addPair(kindCollide, a, b)
}

// Overlap registers a sensor pair: overlapping bodies are reported only.
func (w *World) Overlap(a, b Collidable) PairID {
	return w.addPair(kindOverlap, a, b)
}

func (w *World) addPair(kind pairKind, a, b Collidable) PairID {
	id := PairID(len(w.pairs) + 1)
	w.pairs = append(w.pairs, pair{id: id, kind: kind, a: a, b: b})
	return id
}

// Pause stops the simulation; Step becomes a no-op.
func (w *World) Pause() {
	w.paused = true
}

// Resume restarts a paused simulation.
func (w *World) Resume() {
	w.paused = false
}

// Paused reports whether the simulation is paused.
func (w *World) Paused() bool {
	return w.paused
}

// Step advances the simulation by dt seconds and returns the contacts found
// for registered pairs, in pair registration order. The returned slice is
// reused by the next call.
func (w *World) Step(dt float64) []Contact {
	w.contacts = w.contacts[:0]
	if w.paused {
		return w.contacts
	}

	for _, b := range w.bodies {
		if !b.active {
			continue
		}
		b.Touching = Touching{}
		b.Blocked = Touching{}
		if b.Static {
			continue
		}
		w.integrate(b, dt)
		b.sync()
	}

	for i := range w.pairs {
		w.checkPair(&w.pairs[i])
	}
	return w.contacts
}

func (w *World) integrate(b *Body, dt float64) {
	if b.AllowGravity {
		b.Velocity.X += w.cfg.Gravity.X * dt
		b.Velocity.Y += w.cfg.Gravity.Y * dt
	}
	b.Position.X += b.Velocity.X * dt
	b.Position.Y += b.Velocity.Y * dt

	if b.CollideWorldBounds {
		w.clampToBounds(b)
	}
}

func (w *World) clampToBounds(b *Body) {
	bw, bh := b.Size()
	switch {
	case b.Position.X-bw/2 < 0:
		b.Position.X = bw / 2
		b.Velocity.X = -b.Velocity.X * b.Bounce.X
		b.Blocked.Left = true
	case b.Position.X+bw/2 > w.cfg.Width:
		b.Position.X = w.cfg.Width - bw/2
		b.Velocity.X = -b.Velocity.X * b.Bounce.X
		b.Blocked.Right = true
	}
	switch {
	case b.Position.Y-bh/2 < 0:
		b.Position.Y = bh / 2
		b.Velocity.Y = -b.Velocity.Y * b.Bounce.Y
		b.Blocked.Up = true
	case b.Position.Y+bh/2 > w.cfg.Height:
		b.Position.Y = w.cfg.Height - bh/2
		b.Velocity.Y = -b.Velocity.Y * b.Bounce.Y
		b.Blocked.Down = true
	}
}

func (w *World) checkPair(p *pair) {
	otherTag := p.b.tag()
	for _, a := range p.a.members() {
		if !a.active {
			continue
		}
		collision := a.obj.Check(0, 0, otherTag)
		if collision == nil {
			continue
		}
		clear(w.seen)
		for _, o := range collision.Objects {
			b, ok := o.Data.(*Body)
			if !ok || b == a || !b.active {
				continue
			}
			if _, dup := w.seen[b]; dup {
				continue
			}
			w.seen[b] = struct{}{}
			if !a.overlaps(b) {
				continue
			}
			if p.kind == kindCollide && !separate(a, b) {
				continue
			}
			w.contacts = append(w.contacts, Contact{Pair: p.id, A: a, B: b})
		}
	}
}
