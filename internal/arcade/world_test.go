package arcade

import (
	"math"
	"testing"
)

const step = 1.0 / 60

func newTestWorld() *World {
	return NewWorld(Config{Width: 800, Height: 600, Gravity: Vec{Y: 300}})
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 0.01
}

func TestGravityIntegration(t *testing.T) {
	w := newTestWorld()
	b := w.AddSprite(100, 100, "dude", Vec{X: 32, Y: 48})

	w.Step(step)

	if !near(b.Velocity.Y, 300*step) {
		t.Errorf("Expected vy %f after one step, got %f", 300*step, b.Velocity.Y)
	}
	if b.Position.Y <= 100 {
		t.Errorf("Gravity should pull body down, y is still %f", b.Position.Y)
	}
}

func TestBodyLandsOnStaticPlatform(t *testing.T) {
	w := newTestWorld()
	ground := w.AddStaticGroup()
	ground.Create(400, 568, "platform", Vec{X: 400, Y: 32}).SetScale(2)

	player := w.AddSprite(100, 450, "dude", Vec{X: 32, Y: 48})
	player.SetBounce(0.2, 0.2)
	pairID := w.Collider(player, ground)

	var contacts []Contact
	for i := 0; i < 180; i++ {
		contacts = w.Step(step)
	}

	if !player.Touching.Down {
		t.Error("Expected player to be touching down on the platform")
	}
	_, _, _, bottom := player.Bounds()
	if !near(bottom, 536) {
		t.Errorf("Expected player bottom to rest at 536, got %f", bottom)
	}
	if len(contacts) != 1 || contacts[0].Pair != pairID || contacts[0].A != player {
		t.Errorf("Expected one contact for the player/ground pair, got %+v", contacts)
	}
	if ground.Children()[0].Position.Y != 568 {
		t.Error("Static body must not move")
	}
}

func TestWalkIntoWallStopsHorizontally(t *testing.T) {
	w := NewWorld(Config{Width: 800, Height: 600})
	walls := w.AddStaticGroup()
	walls.Create(300, 300, "wall", Vec{X: 20, Y: 200})

	b := w.AddSprite(200, 300, "dude", Vec{X: 32, Y: 48})
	w.Collider(b, walls)

	for i := 0; i < 120; i++ {
		b.SetVelocityX(160)
		w.Step(step)
	}

	_, _, right, _ := b.Bounds()
	if right > 290.01 {
		t.Errorf("Body should stop at the wall face 290, right edge is %f", right)
	}
	if !b.Touching.Right {
		t.Error("Expected Touching.Right against the wall")
	}
	if b.Touching.Down {
		t.Error("Side contact must not report Touching.Down")
	}
}

func TestWorldBoundsBounce(t *testing.T) {
	w := NewWorld(Config{Width: 800, Height: 600})
	b := w.AddSprite(10, 300, "bomb", Vec{X: 14, Y: 14})
	b.SetBounce(1, 1).SetCollideWorldBounds(true).SetVelocity(-200, 0)

	for i := 0; i < 5; i++ {
		w.Step(step)
	}

	left, _, _, _ := b.Bounds()
	if left < 0 {
		t.Errorf("Body left the world: left edge %f", left)
	}
	if b.Velocity.X != 200 {
		t.Errorf("Expected full elastic bounce to vx 200, got %f", b.Velocity.X)
	}
}

func TestWorldBoundsDoNotSetTouching(t *testing.T) {
	w := newTestWorld()
	b := w.AddSprite(100, 590, "dude", Vec{X: 32, Y: 48})
	b.SetCollideWorldBounds(true)

	w.Step(step)

	if !b.Blocked.Down {
		t.Error("Expected Blocked.Down at the bottom of the world")
	}
	if b.Touching.Down {
		t.Error("World bounds must not set Touching.Down")
	}
}

func TestOverlapReportsWithoutSeparating(t *testing.T) {
	w := NewWorld(Config{Width: 800, Height: 600})
	player := w.AddSprite(100, 100, "dude", Vec{X: 32, Y: 48})
	stars := w.AddGroup()
	star := stars.Create(110, 100, "star", Vec{X: 24, Y: 22})
	far := stars.Create(700, 100, "star", Vec{X: 24, Y: 22})
	id := w.Overlap(player, stars)

	contacts := w.Step(step)

	if len(contacts) != 1 {
		t.Fatalf("Expected 1 contact, got %d", len(contacts))
	}
	c := contacts[0]
	if c.Pair != id || c.A != player || c.B != star {
		t.Errorf("Unexpected contact %+v", c)
	}
	if c.B == far {
		t.Error("Distant star must not be reported")
	}
	if player.Position.X != 100 || star.Position.X != 110 {
		t.Error("Overlap pairs must not move bodies")
	}
}

func TestDisabledBodiesAreSkipped(t *testing.T) {
	w := NewWorld(Config{Width: 800, Height: 600})
	player := w.AddSprite(100, 100, "dude", Vec{X: 32, Y: 48})
	stars := w.AddGroup()
	star := stars.Create(100, 100, "star", Vec{X: 24, Y: 22})
	w.Overlap(player, stars)

	star.Disable(true)
	if star.Active() || star.Visible() {
		t.Fatal("Disabled star should be inactive and hidden")
	}
	if stars.CountActive() != 0 {
		t.Errorf("Expected 0 active, got %d", stars.CountActive())
	}
	if contacts := w.Step(step); len(contacts) != 0 {
		t.Errorf("Disabled body reported %d contacts", len(contacts))
	}

	star.Enable(100, 100, true)
	if !star.Active() || !star.Visible() {
		t.Fatal("Enabled star should be active and visible")
	}
	if contacts := w.Step(step); len(contacts) != 1 {
		t.Errorf("Expected re-enabled star to overlap, got %d contacts", len(contacts))
	}
}

func TestEnableResetsPositionAndVelocity(t *testing.T) {
	w := newTestWorld()
	stars := w.AddGroup()
	star := stars.Create(82, 0, "star", Vec{X: 24, Y: 22})
	for i := 0; i < 30; i++ {
		w.Step(step)
	}
	star.Disable(true)

	star.Enable(star.Position.X, 0, true)

	if star.Position.X != 82 || star.Position.Y != 0 {
		t.Errorf("Expected star back at (82, 0), got (%f, %f)", star.Position.X, star.Position.Y)
	}
	if star.Velocity != (Vec{}) {
		t.Errorf("Expected zero velocity, got %+v", star.Velocity)
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	w := newTestWorld()
	b := w.AddSprite(100, 100, "dude", Vec{X: 32, Y: 48})
	b.SetVelocity(50, 0)

	w.Pause()
	if !w.Paused() {
		t.Fatal("Expected world to report paused")
	}
	w.Step(step)
	if b.Position.X != 100 || b.Position.Y != 100 {
		t.Errorf("Paused world moved body to (%f, %f)", b.Position.X, b.Position.Y)
	}

	w.Resume()
	w.Step(step)
	if b.Position.X == 100 {
		t.Error("Resumed world should move body")
	}
}

func TestDynamicPairSplitsSeparation(t *testing.T) {
	w := NewWorld(Config{Width: 800, Height: 600})
	a := w.AddSprite(100, 100, "a", Vec{X: 20, Y: 20})
	b := w.AddSprite(110, 100, "b", Vec{X: 20, Y: 20})
	w.Collider(a, b)

	contacts := w.Step(step)

	if len(contacts) != 1 {
		t.Fatalf("Expected 1 contact, got %d", len(contacts))
	}
	if !near(a.Position.X, 95) || !near(b.Position.X, 115) {
		t.Errorf("Expected bodies pushed to 95 and 115, got %f and %f", a.Position.X, b.Position.X)
	}
	if !a.Touching.Right || !b.Touching.Left {
		t.Error("Expected side contact flags on both bodies")
	}
}
