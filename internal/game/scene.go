package game

import (
	"fmt"
	"image/color"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"chosenoffset.com/starfall/internal/anim"
	"chosenoffset.com/starfall/internal/arcade"
	"chosenoffset.com/starfall/internal/assets"
	"chosenoffset.com/starfall/internal/config"
	"chosenoffset.com/starfall/internal/render"
)

// HitTint is applied to the player when a bomb ends the game.
var HitTint = color.RGBA{R: 0xff, A: 0xff}

// Scene owns the whole game state: the world, its bodies, score and the
// game-over lifecycle. It is driven one tick at a time by Update.
type Scene struct {
	cfg    *config.Config
	rng    *rand.Rand
	logger *log.Logger
	sounds SoundPlayer

	hudColor color.RGBA

	world     *arcade.World
	anims     *anim.Manager
	player    *Player
	platforms *arcade.Group
	stars     *arcade.Group
	bombs     *arcade.Group
	starHomeX []float64

	handlers    map[arcade.PairID]contactHandler
	collectPair arcade.PairID
	hitPair     arcade.PairID

	score           int
	wave            int
	scoreText       string
	gameOver        bool
	awaitingRestart bool
}

// NewScene validates the config and builds the initial scene.
func NewScene(cfg *config.Config, rng *rand.Rand, logger *log.Logger, sounds SoundPlayer) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	hud, err := config.ParseHexColor(cfg.HUD.Color)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if sounds == nil {
		sounds = Silent{}
	}

	s := &Scene{
		cfg:      cfg,
		rng:      rng,
		logger:   logger,
		sounds:   sounds,
		hudColor: hud,
	}
	if err := s.Setup(); err != nil {
		return nil, err
	}
	return s, nil
}

// Setup discards the current world and rebuilds the initial layout with
// score 0 and the game running.
func (s *Scene) Setup() error {
	cfg := s.cfg
	s.score = 0
	s.wave = 0
	s.scoreText = scoreLabel(0)
	s.gameOver = false
	s.awaitingRestart = false

	s.world = arcade.NewWorld(arcade.Config{
		Width:    float64(cfg.Window.Width),
		Height:   float64(cfg.Window.Height),
		Gravity:  arcade.Vec{Y: cfg.Physics.Gravity},
		CellSize: cfg.Physics.CellSize,
	})
	s.anims = anim.NewManager()

	s.platforms = s.world.AddStaticGroup()
	platformSize := s.assetSize(assets.Platform)
	for _, p := range cfg.Platforms {
		s.platforms.Create(p.X, p.Y, assets.Platform, platformSize).SetScale(p.Scale)
	}

	s.player = NewPlayer(cfg.Player)
	if err := s.player.Create(s.world, s.anims, s.assetSize(assets.Dude)); err != nil {
		return fmt.Errorf("failed to create player: %w", err)
	}

	s.stars = s.world.AddGroup()
	s.starHomeX = s.starHomeX[:0]
	starSize := s.assetSize(assets.Star)
	for i := 0; i < cfg.Stars.Count; i++ {
		x := cfg.Stars.StartX + float64(i)*cfg.Stars.StepX
		star := s.stars.Create(x, cfg.Stars.StartY, assets.Star, starSize)
		star.SetBounceY(s.between(cfg.Stars.BounceMin, cfg.Stars.BounceMax))
		s.starHomeX = append(s.starHomeX, x)
	}

	s.bombs = s.world.AddGroup()

	s.handlers = make(map[arcade.PairID]contactHandler)
	s.world.Collider(s.player.Body(), s.platforms)
	s.world.Collider(s.stars, s.platforms)
	s.world.Collider(s.bombs, s.platforms)
	s.collectPair = s.world.Overlap(s.player.Body(), s.stars)
	s.hitPair = s.world.Collider(s.player.Body(), s.bombs)
	s.handlers[s.collectPair] = s.onCollect
	s.handlers[s.hitPair] = s.onHit

	return nil
}

// Update runs one tick. While the game is over it only waits for a key
// press, which restarts the scene.
func (s *Scene) Update(in render.InputManager, dt float64) error {
	if s.awaitingRestart {
		if in.IsAnyKeyJustPressed() {
			s.logger.Info("Restarting")
			return s.Setup()
		}
		return nil
	}
	if s.gameOver {
		return nil
	}

	s.player.Update(ReadControls(in))
	s.dispatch(s.world.Step(dt))
	s.player.Animate(dt)
	return nil
}

// CollectStar removes a star and scores it. Clearing the last star of a
// wave starts the next one.
func (s *Scene) CollectStar(star *arcade.Body) {
	star.Disable(true)

	s.score += s.cfg.Stars.Points
	s.scoreText = scoreLabel(s.score)
	s.logger.Debug("Star collected", "score", s.score, "left", s.stars.CountActive())
	s.sounds.PlayCollect()

	if s.stars.CountActive() == 0 {
		s.nextWave()
	}
}

// nextWave drops every star again from its home column and adds one bomb
// in the half of the field the player is not in.
func (s *Scene) nextWave() {
	for i, star := range s.stars.Children() {
		star.Enable(s.starHomeX[i], s.cfg.Stars.StartY, true)
	}

	mid := s.cfg.FieldMidpoint()
	width := float64(s.cfg.Window.Width)
	var x float64
	if s.player.Body().Position.X < mid {
		x = mid + float64(s.rng.Intn(int(width-mid)))
	} else {
		x = float64(s.rng.Intn(int(mid)))
	}

	b := s.cfg.Bombs
	vx := float64(s.rng.Intn(2*b.MaxSpeedX) - b.MaxSpeedX)
	s.bombs.Create(x, b.SpawnY, assets.Bomb, s.assetSize(assets.Bomb)).
		SetBounce(b.Bounce, b.Bounce).
		SetCollideWorldBounds(true).
		SetVelocity(vx, b.FallSpeed)

	s.wave++
	s.logger.Info("Wave cleared", "wave", s.wave, "score", s.score, "bomb_x", x, "bombs", s.bombs.Len())
	s.sounds.PlayWaveClear()
}

// HitBomb freezes the world and ends the game until the next key press.
func (s *Scene) HitBomb() {
	s.world.Pause()
	s.player.Body().SetTint(HitTint)
	s.gameOver = true
	s.player.Die()
	s.awaitingRestart = true

	s.logger.Info("Game over", "score", s.score, "waves", s.wave)
	s.sounds.PlayHit()
}

func (s *Scene) onCollect(_, star *arcade.Body) {
	s.CollectStar(star)
}

func (s *Scene) onHit(_, _ *arcade.Body) {
	s.HitBomb()
}

func (s *Scene) assetSize(key string) arcade.Vec {
	w, h := s.cfg.Assets.CellSize(key)
	return arcade.Vec{X: w, Y: h}
}

// between draws from [lo, hi).
func (s *Scene) between(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

func scoreLabel(score int) string {
	return fmt.Sprintf("Score: %d", score)
}

// Score returns the current score.
func (s *Scene) Score() int { return s.score }

// ScoreText returns the HUD label.
func (s *Scene) ScoreText() string { return s.scoreText }

// GameOver reports whether a bomb has hit the player.
func (s *Scene) GameOver() bool { return s.gameOver }

// AwaitingRestart reports whether the next key press restarts the scene.
func (s *Scene) AwaitingRestart() bool { return s.awaitingRestart }

// Wave returns the number of cleared waves.
func (s *Scene) Wave() int { return s.wave }

// Phase returns the lifecycle state.
func (s *Scene) Phase() Phase {
	if s.gameOver {
		return PhaseGameOver
	}
	return PhaseRunning
}

// Player returns the actor.
func (s *Scene) Player() *Player          { return s.player }
func (s *Scene) World() *arcade.World     { return s.world }
func (s *Scene) Stars() *arcade.Group     { return s.stars }
func (s *Scene) Bombs() *arcade.Group     { return s.bombs }
func (s *Scene) Platforms() *arcade.Group { return s.platforms }
func (s *Scene) Config() *config.Config   { return s.cfg }
