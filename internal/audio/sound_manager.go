// internal/audio/sound_manager.go
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"go-pond-pet/internal/event"
)

const sampleRate = beep.SampleRate(48000)

// SoundManager plays procedural pond sounds in response to simulation
// events. If the audio device cannot be opened the manager stays silent;
// the scene runs without sound rather than failing.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a sound manager; call Initialize before use.
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return fmt.Errorf("open speaker: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences everything. beep has no speaker Close; clearing the
// mixer is enough to stop audio artifacts.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	sm.mixer.Clear()
	sm.initialized = false
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// OnEvent implements event.Listener: each simulation event maps to a sound.
func (sm *SoundManager) OnEvent(e event.Event) {
	switch e.Type {
	case event.RainSplash:
		sm.play(splashSound(sampleRate))
	case event.DropSpawned:
		sm.play(plipSound(sampleRate))
	case event.FishJumped:
		sm.play(bloopSound(sampleRate))
	case event.MilestoneReached:
		sm.play(chimeSound(sampleRate))
	}
}

// Attach subscribes the manager to the events it can voice.
func (sm *SoundManager) Attach(d *event.Dispatcher) {
	d.Subscribe(event.RainSplash, sm)
	d.Subscribe(event.DropSpawned, sm)
	d.Subscribe(event.FishJumped, sm)
	d.Subscribe(event.MilestoneReached, sm)
}
