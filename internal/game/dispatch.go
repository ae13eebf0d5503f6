package game

import "chosenoffset.com/starfall/internal/arcade"

// contactHandler reacts to one contact of a registered pair. a belongs to
// the pair's first collidable, b to its second.
type contactHandler func(a, b *arcade.Body)

// dispatch runs the handler of each contact in the order the world found
// them. Contacts whose bodies were disabled by an earlier handler are
// dropped, and nothing runs once the game is over.
func (s *Scene) dispatch(contacts []arcade.Contact) {
	for _, c := range contacts {
		if s.gameOver {
			return
		}
		h, ok := s.handlers[c.Pair]
		if !ok {
			continue
		}
		if !c.A.Active() || !c.B.Active() {
			continue
		}
		h(c.A, c.B)
	}
}
