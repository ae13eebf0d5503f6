package game

import (
	"errors"
	"testing"

	"chosenoffset.com/starfall/internal/render"
)

func TestManagerLayout(t *testing.T) {
	s, _ := newTestScene(t, 1)
	m := NewManager(s, &fakeRenderer{}, newFakeInput(), nil, nil)

	w, h := m.Layout(1920, 1080)
	if w != 800 || h != 600 {
		t.Errorf("Expected logical 800x600, got %dx%d", w, h)
	}
}

func TestManagerStepsScene(t *testing.T) {
	s, _ := newTestScene(t, 1)
	in := newFakeInput()
	m := NewManager(s, &fakeRenderer{}, in, nil, nil)

	for i := 0; i < 10; i++ {
		if err := m.Update(); err != nil {
			t.Fatalf("Update failed: %v", err)
		}
	}

	// Ten ticks at 60 TPS under 300 px/s² from rest
	if vy := s.Player().Body().Velocity.Y; vy < 49.9 || vy > 50.1 {
		t.Errorf("Expected vy of 50 px/s after 10 ticks, got %g", vy)
	}
}

func TestManagerEscape(t *testing.T) {
	s, _ := newTestScene(t, 1)
	in := newFakeInput()
	m := NewManager(s, &fakeRenderer{}, in, nil, nil)

	in.press(render.KeyEscape)
	if err := m.Update(); !errors.Is(err, ErrQuit) {
		t.Errorf("Expected ErrQuit while running, got %v", err)
	}

	// After a game over Escape is just another key
	s.HitBomb()
	if err := m.Update(); err != nil {
		t.Errorf("Expected restart, got %v", err)
	}
	if s.GameOver() {
		t.Error("Expected Escape to restart after game over")
	}
}
