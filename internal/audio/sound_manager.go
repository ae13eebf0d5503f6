package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// SoundManager plays the game's cues through one shared mixer
type SoundManager struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	volume      float64
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a sound manager at the given volume (0..1)
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		rate:   beep.SampleRate(defaultSampleRate),
		volume: volume,
		mixer:  &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sm.rate, sm.rate.N(100*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// SetVolume changes the volume of cues played from now on
func (sm *SoundManager) SetVolume(volume float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.volume = volume
}

// PlayCollect plays the star pickup blip
func (sm *SoundManager) PlayCollect() {
	sm.play(CreateCollectSound)
}

// PlayWaveClear plays the arpeggio for a cleared wave
func (sm *SoundManager) PlayWaveClear() {
	sm.play(CreateWaveClearSound)
}

// PlayHit plays the bomb crunch
func (sm *SoundManager) PlayHit() {
	sm.play(CreateHitSound)
}

func (sm *SoundManager) play(create func(beep.SampleRate, float64) beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	s := create(sm.rate, sm.volume)
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}
