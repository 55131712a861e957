// Package audio provides the hour chime.
package audio

import (
	"fmt"
	gomath "math"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/generators"
	"github.com/gopxl/beep/v2/speaker"
)

// DefaultSampleRate is the default sample rate for audio playback.
const DefaultSampleRate = beep.SampleRate(44100)

// Chime tone parameters.
const (
	chimeFreq     = 880
	chimeDuration = 300 * time.Millisecond
	chimeGap      = 150 * time.Millisecond
)

// Manager owns the speaker and plays the hour chime.
type Manager struct {
	mu sync.RWMutex

	initialized bool
	sampleRate  beep.SampleRate
	volume      float64

	mixer *beep.Mixer
}

// New creates a new audio manager.
func New() *Manager {
	return &Manager{
		volume: 0.6,
		mixer:  &beep.Mixer{},
	}
}

// Init initializes the audio system.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	m.sampleRate = DefaultSampleRate
	if err := speaker.Init(m.sampleRate, m.sampleRate.N(time.Second/30)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(m.mixer)

	m.initialized = true
	return nil
}

// Close shuts down the audio system.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Clear()
	m.initialized = false
}

// IsInitialized returns whether the audio system is initialized.
func (m *Manager) IsInitialized() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.initialized
}

// SetVolume sets the chime volume (0.0 to 1.0).
func (m *Manager) SetVolume(vol float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.volume = clamp(vol, 0, 1)
}

// Volume returns the chime volume.
func (m *Manager) Volume() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.volume
}

// Chime plays the hour signal: one short tone, then a higher echo.
func (m *Manager) Chime() error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.initialized {
		return fmt.Errorf("audio not initialized")
	}

	first, err := generators.SineTone(m.sampleRate, chimeFreq)
	if err != nil {
		return fmt.Errorf("generate tone: %w", err)
	}
	second, err := generators.SineTone(m.sampleRate, chimeFreq*3/2)
	if err != nil {
		return fmt.Errorf("generate tone: %w", err)
	}

	seq := beep.Seq(
		beep.Take(m.sampleRate.N(chimeDuration), first),
		beep.Silence(m.sampleRate.N(chimeGap)),
		beep.Take(m.sampleRate.N(chimeDuration), second),
	)
	vol := &effects.Volume{
		Streamer: seq,
		Base:     2,
		Volume:   volumeExponent(m.volume),
		Silent:   m.volume <= 0,
	}

	speaker.Lock()
	m.mixer.Add(vol)
	speaker.Unlock()
	return nil
}

// volumeExponent converts a 0-1 volume to the effects.Volume exponent
// scale.
func volumeExponent(vol float64) float64 {
	if vol <= 0 {
		return -100 // Effectively silent
	}
	return gomath.Log2(vol) * 2
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
