package anim

// Sprite plays clips from a Manager and tracks the frame to draw.
type Sprite struct {
	clips     *Manager
	current   *Clip
	index     int
	elapsed   float64
	playsLeft int
	playing   bool
}

// NewSprite creates a sprite with no clip selected.
func NewSprite(clips *Manager) *Sprite {
	return &Sprite{clips: clips}
}

// Play starts the clip registered under key from its first frame. With
// ignoreIfPlaying set, a clip that is already running is left alone so loops
// are not restarted every tick. Play reports whether the key was known.
func (s *Sprite) Play(key string, ignoreIfPlaying bool) bool {
	clip, ok := s.clips.Get(key)
	if !ok {
		return false
	}
	if ignoreIfPlaying && s.playing && s.current == clip {
		return true
	}
	s.current = clip
	s.index = 0
	s.elapsed = 0
	s.playsLeft = clip.Repeat
	s.playing = true
	return true
}

// Stop freezes the sprite on its current frame.
func (s *Sprite) Stop() {
	s.playing = false
}

// Update advances the running clip by dt seconds.
func (s *Sprite) Update(dt float64) {
	if !s.playing || s.current == nil {
		return
	}
	frameTime := 1 / s.current.FrameRate
	s.elapsed += dt
	for s.playing && s.elapsed >= frameTime {
		s.elapsed -= frameTime
		s.advance()
	}
}

func (s *Sprite) advance() {
	s.index++
	if s.index < len(s.current.Frames) {
		return
	}
	if s.playsLeft == 0 {
		s.index = len(s.current.Frames) - 1
		s.playing = false
		return
	}
	if s.playsLeft > 0 {
		s.playsLeft--
	}
	s.index = 0
}

// CurrentKey returns the key of the selected clip, or "" if none.
func (s *Sprite) CurrentKey() string {
	if s.current == nil {
		return ""
	}
	return s.current.Key
}

// IsPlaying reports whether the selected clip is still advancing.
func (s *Sprite) IsPlaying() bool {
	return s.playing
}

// Frame returns the frame to draw.
func (s *Sprite) Frame() (Frame, bool) {
	if s.current == nil {
		return Frame{}, false
	}
	return s.current.Frames[s.index], true
}
