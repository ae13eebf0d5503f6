package arcade

import "math"

// separate pushes two overlapping bodies apart along the axis of least
// penetration and applies each body's bounce on that axis. Static bodies
// never move. It returns false when neither body can move.
func separate(a, b *Body) bool {
	if a.Static && b.Static {
		return false
	}

	l1, t1, r1, b1 := a.Bounds()
	l2, t2, r2, b2 := b.Bounds()
	overlapX := math.Min(r1, r2) - math.Max(l1, l2)
	overlapY := math.Min(b1, b2) - math.Max(t1, t2)

	if overlapY <= overlapX {
		separateY(a, b, overlapY)
	} else {
		separateX(a, b, overlapX)
	}
	a.sync()
	b.sync()
	return true
}

func separateY(a, b *Body, overlap float64) {
	// sign is -1 when a sits above b.
	sign := 1.0
	if a.Position.Y < b.Position.Y {
		sign = -1
		a.Touching.Down = true
		b.Touching.Up = true
	} else {
		a.Touching.Up = true
		b.Touching.Down = true
	}

	switch {
	case b.Static:
		a.Position.Y += sign * overlap
		a.Velocity.Y = reflect(a.Velocity.Y, sign, a.Bounce.Y)
	case a.Static:
		b.Position.Y -= sign * overlap
		b.Velocity.Y = reflect(b.Velocity.Y, -sign, b.Bounce.Y)
	default:
		a.Position.Y += sign * overlap / 2
		b.Position.Y -= sign * overlap / 2
		va, vb := a.Velocity.Y, b.Velocity.Y
		a.Velocity.Y = vb * a.Bounce.Y
		b.Velocity.Y = va * b.Bounce.Y
	}
}

func separateX(a, b *Body, overlap float64) {
	// sign is -1 when a is left of b.
	sign := 1.0
	if a.Position.X < b.Position.X {
		sign = -1
		a.Touching.Right = true
		b.Touching.Left = true
	} else {
		a.Touching.Left = true
		b.Touching.Right = true
	}

	switch {
	case b.Static:
		a.Position.X += sign * overlap
		a.Velocity.X = reflect(a.Velocity.X, sign, a.Bounce.X)
	case a.Static:
		b.Position.X -= sign * overlap
		b.Velocity.X = reflect(b.Velocity.X, -sign, b.Bounce.X)
	default:
		a.Position.X += sign * overlap / 2
		b.Position.X -= sign * overlap / 2
		va, vb := a.Velocity.X, b.Velocity.X
		a.Velocity.X = vb * a.Bounce.X
		b.Velocity.X = va * b.Bounce.X
	}
}

// reflect bounces a velocity component moving against the push direction.
// A body already moving away from the contact keeps its velocity.
func reflect(v, push, bounce float64) float64 {
	if v*push >= 0 {
		return v
	}
	return -v * bounce
}
