// Package anim provides frame-based sprite animation: a registry of named
// clips cut from sprite sheets and a per-sprite player that advances them.
package anim

import (
	"errors"
	"fmt"
)

// DefaultFrameRate is used when a clip is registered without a frame rate.
const DefaultFrameRate = 24

// RepeatForever makes a clip loop until another clip is played.
const RepeatForever = -1

// Frame identifies one cell of a sprite sheet.
type Frame struct {
	Texture string
	Index   int
}

// Clip is a named sequence of frames.
type Clip struct {
	Key       string
	Frames    []Frame
	FrameRate float64 // frames per second
	// Repeat is the number of extra plays after the first one.
	// RepeatForever loops.
	Repeat int
}

// Duration returns the time one pass of the clip takes, in seconds.
func (c *Clip) Duration() float64 {
	return float64(len(c.Frames)) / c.FrameRate
}

// GenerateFrameNumbers returns the frames start..end (inclusive) of a sheet.
func GenerateFrameNumbers(texture string, start, end int) []Frame {
	if end < start {
		return nil
	}
	frames := make([]Frame, 0, end-start+1)
	for i := start; i <= end; i++ {
		frames = append(frames, Frame{Texture: texture, Index: i})
	}
	return frames
}

// Manager is a registry of clips shared by the sprites of one scene.
type Manager struct {
	clips map[string]*Clip
}

// NewManager creates an empty clip registry.
func NewManager() *Manager {
	return &Manager{clips: make(map[string]*Clip)}
}

// Create registers a clip.
func (m *Manager) Create(c Clip) error {
	if c.Key == "" {
		return errors.New("animation key is required")
	}
	if len(c.Frames) == 0 {
		return fmt.Errorf("animation %q has no frames", c.Key)
	}
	if _, exists := m.clips[c.Key]; exists {
		return fmt.Errorf("animation %q already exists", c.Key)
	}
	if c.FrameRate <= 0 {
		c.FrameRate = DefaultFrameRate
	}
	if c.Repeat < RepeatForever {
		c.Repeat = RepeatForever
	}
	m.clips[c.Key] = &c
	return nil
}

// Get returns a registered clip by key.
func (m *Manager) Get(key string) (*Clip, bool) {
	c, ok := m.clips[key]
	return c, ok
}

// Len returns the number of registered clips.
func (m *Manager) Len() int {
	return len(m.clips)
}
