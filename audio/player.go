package audio

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/slapper/constants"
	"github.com/lixenwraith/slapper/core"
)

// Sentinel errors
var (
	ErrNotInitialized = errors.New("audio output not initialized")
	ErrUnknownCue     = errors.New("unknown sound cue")
)

// Player plays synthesized cues through the system speaker.
// Every cue is fire-and-forget: it is queued on a shared mixer and Play returns immediately.
type Player struct {
	mu          sync.Mutex
	config      *AudioConfig
	mixer       *beep.Mixer
	initialized bool
	muted       bool

	// Swappable for tests
	initSpeaker  func(sr beep.SampleRate, bufferSize int) error
	playSpeaker  func(s ...beep.Streamer)
	closeSpeaker func()
}

// NewPlayer creates an uninitialized player, nil cfg uses defaults
func NewPlayer(cfg *AudioConfig) *Player {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	cfg.Clamp()

	return &Player{
		config:       cfg,
		mixer:        &beep.Mixer{},
		muted:        !cfg.Enabled,
		initSpeaker:  speaker.Init,
		playSpeaker:  speaker.Play,
		closeSpeaker: speaker.Close,
	}
}

// Initialize opens the speaker and starts the mixer, a second call is a no-op
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	rate := beep.SampleRate(p.config.SampleRate)
	if err := p.initSpeaker(rate, rate.N(constants.AudioBufferDuration)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}

	p.playSpeaker(p.mixer)
	p.initialized = true
	return nil
}

// Play queues cue on the mixer. Muted players accept and drop the cue.
func (p *Player) Play(cue core.SoundType) error {
	if !cue.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownCue, cue)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.muted {
		return nil
	}
	if !p.initialized {
		return ErrNotInitialized
	}

	streamer := GetSoundEffect(cue, p.config)
	if streamer == nil {
		return fmt.Errorf("%w: %s", ErrUnknownCue, cue)
	}

	// Mixer is read by the speaker goroutine
	speaker.Lock()
	p.mixer.Add(streamer)
	speaker.Unlock()
	return nil
}

// ToggleMute flips mute, returns true if sound is now on
func (p *Player) ToggleMute() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = !p.muted
	return !p.muted
}

// IsMuted returns current mute state
func (p *Player) IsMuted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// IsInitialized reports whether the speaker is open
func (p *Player) IsInitialized() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// Cleanup stops all sounds and closes the speaker
func (p *Player) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()

	p.closeSpeaker()
	p.initialized = false
}
