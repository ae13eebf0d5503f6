package arcade

// Collidable is anything that can be registered in a collision pair: a
// single body or a group of bodies.
type Collidable interface {
	members() []*Body
	tag() string
}

func (b *Body) members() []*Body { return []*Body{b} }
func (b *Body) tag() string      { return b.own }

// Group is a collection of bodies sharing a collision tag.
type Group struct {
	world    *World
	name     string
	static   bool
	children []*Body
}

// Create adds a body to the group centred at (x, y).
func (g *Group) Create(x, y float64, key string, size Vec) *Body {
	b := g.world.newBody(x, y, key, size, g.static, g.name)
	g.children = append(g.children, b)
	return b
}

// Children returns the group's bodies in creation order.
func (g *Group) Children() []*Body {
	return g.children
}

// Len returns the number of bodies in the group.
func (g *Group) Len() int {
	return len(g.children)
}

// CountActive returns the number of bodies still in the simulation.
func (g *Group) CountActive() int {
	n := 0
	for _, b := range g.children {
		if b.active {
			n++
		}
	}
	return n
}

func (g *Group) members() []*Body { return g.children }
func (g *Group) tag() string      { return g.name }
