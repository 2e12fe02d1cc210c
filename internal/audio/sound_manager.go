package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// SoundManager owns the speaker and mixes cues onto it.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewSoundManager returns a manager playing at the given volume.
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{mixer: &beep.Mixer{}, volume: volume}
}

// Initialize opens the speaker. Calling it again is a no-op.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Play queues a cue. It does nothing before Initialize succeeds.
func (sm *SoundManager) Play(s Sound) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return nil
	}
	streamer, err := Effect(s, sm.volume)
	if err != nil {
		return err
	}
	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
	return nil
}

// Close drops pending cues and releases the speaker.
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}
