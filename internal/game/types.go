package game

import (
	"chosenoffset.com/starfall/internal/render"
)

// Controls is the input the player reads each tick.
type Controls struct {
	Left, Right, Up bool
}

// ReadControls polls the arrow keys.
func ReadControls(in render.InputManager) Controls {
	return Controls{
		Left:  in.IsKeyPressed(render.KeyLeft),
		Right: in.IsKeyPressed(render.KeyRight),
		Up:    in.IsKeyPressed(render.KeyUp),
	}
}

// Phase is the scene's lifecycle state.
type Phase int

const (
	PhaseRunning Phase = iota
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// SoundPlayer plays the scene's cues. Implementations must not block.
type SoundPlayer interface {
	PlayCollect()
	PlayWaveClear()
	PlayHit()
}

// Silent is a SoundPlayer that plays nothing.
type Silent struct{}

func (Silent) PlayCollect()   {}
func (Silent) PlayWaveClear() {}
func (Silent) PlayHit()       {}
