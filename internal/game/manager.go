package game

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"chosenoffset.com/starfall/internal/assets"
	"chosenoffset.com/starfall/internal/render"
)

// ErrQuit is returned from Update when the player asks to leave.
var ErrQuit = errors.New("quit")

// Manager connects a Scene to the engine loop.
type Manager struct {
	ScreenWidth  int
	ScreenHeight int
	Scene        *Scene
	Renderer     render.Renderer
	InputMgr     render.InputManager
	Library      *assets.Library

	logger *log.Logger
	dt     float64
}

// NewManager creates a manager that steps the scene at the configured TPS.
func NewManager(scene *Scene, r render.Renderer, input render.InputManager, lib *assets.Library, logger *log.Logger) *Manager {
	cfg := scene.Config()
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Manager{
		ScreenWidth:  cfg.Window.Width,
		ScreenHeight: cfg.Window.Height,
		Scene:        scene,
		Renderer:     r,
		InputMgr:     input,
		Library:      lib,
		logger:       logger,
		dt:           1 / float64(cfg.Window.TPS),
	}
}

// Update steps the scene by one tick. Escape quits while the game runs;
// after a game over every key, Escape included, restarts.
func (m *Manager) Update() error {
	if m.Scene.Phase() == PhaseRunning && m.InputMgr.IsKeyJustPressed(render.KeyEscape) {
		m.logger.Info("Quit", "score", m.Scene.Score())
		return ErrQuit
	}
	return m.Scene.Update(m.InputMgr, m.dt)
}

// Draw draws the scene.
func (m *Manager) Draw(screen render.Image) {
	m.Scene.Draw(screen, m.Renderer, m.Library)
}

// Layout keeps the logical screen at the play field size.
func (m *Manager) Layout(outsideWidth, outsideHeight int) (int, int) {
	return m.ScreenWidth, m.ScreenHeight
}
