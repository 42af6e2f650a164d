package engine

import (
	"log/slog"
	"sync"
	"time"

	"github.com/lixenwraith/slapper/catalog"
	"github.com/lixenwraith/slapper/constants"
	"github.com/lixenwraith/slapper/core"
)

// CounterStore persists the lifetime counter, both calls are synchronous
type CounterStore interface {
	// Read returns the stored value, ok=false when absent or unparsable
	Read() (value int64, ok bool, err error)
	Write(value int64) error
}

// SoundCue plays a named audio cue, errors are diagnostics only
type SoundCue interface {
	Play(cue core.SoundType) error
}

// ComboState is the time-windowed combo score
type ComboState struct {
	Count      int
	LastAction time.Time
}

// Snapshot is the read-only engine state handed to the renderer
type Snapshot struct {
	AnimationActive bool
	ComboCount      int
	BestCombo       int
	LifetimeCount   int64
}

// Deps are the collaborators of a SlapEngine
type Deps struct {
	Store     CounterStore // nil keeps the counter in memory only
	Sound     SoundCue     // nil plays nothing
	Scheduler Scheduler    // nil runs callbacks on runtime timers
	Clock     TimeProvider
	Logger    *slog.Logger
}

// SlapEngine turns action events into an animation pulse, a combo score, a sound cue and a persisted lifetime count
type SlapEngine struct {
	mu sync.Mutex

	store  CounterStore
	sound  SoundCue
	logger *slog.Logger

	animTimer  *ComboTimer
	decayTimer *ComboTimer

	animating bool
	combo     ComboState
	acted     bool // First action always starts a fresh combo
	best      int
	lifetime  int64
}

// NewSlapEngine creates an engine in Idle state, call Load to pick up the persisted counter
func NewSlapEngine(deps Deps) *SlapEngine {
	clock := deps.Clock
	if clock == nil {
		clock = NewMonotonicTimeProvider()
	}
	sched := deps.Scheduler
	if sched == nil {
		sched = TimerScheduler{}
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &SlapEngine{
		store:      deps.Store,
		sound:      deps.Sound,
		logger:     logger,
		animTimer:  NewComboTimer(sched),
		decayTimer: NewComboTimer(sched),
		combo:      ComboState{LastAction: clock.Now()},
	}
}

// Load reads the persisted counter; absent, corrupt or negative values start at zero
func (e *SlapEngine) Load() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.lifetime = 0
	if e.store == nil {
		return e.snapshotLocked()
	}

	value, ok, err := e.store.Read()
	switch {
	case err != nil:
		e.logger.Warn("lifetime counter read failed, starting at zero", "error", err)
	case !ok:
		e.logger.Debug("no lifetime counter stored, starting at zero")
	case value < 0:
		e.logger.Warn("negative lifetime counter stored, starting at zero", "value", value)
	default:
		e.lifetime = value
	}

	return e.snapshotLocked()
}

// HandleAction applies one action under mode at instant now.
// Effects run in order: animation pulse, combo, counter write, sound.
func (e *SlapEngine) HandleAction(mode catalog.Mode, now time.Time) Snapshot {
	e.mu.Lock()

	// Animation pulse, a newer action supersedes the pending reset
	e.animating = true
	e.animTimer.Arm(mode.AnimationDuration, e.endAnimation)

	// Combo
	delta := now.Sub(e.combo.LastAction)
	if e.acted && delta < constants.ComboWindow {
		e.combo.Count++
	} else {
		e.combo.Count = 1
	}
	e.acted = true
	e.combo.LastAction = now
	e.decayTimer.Arm(constants.ComboWindow, e.decayCombo)
	if e.combo.Count > e.best {
		e.best = e.combo.Count
	}

	// Counter, written before the caller observes the snapshot
	e.lifetime++
	if e.store != nil {
		if err := e.store.Write(e.lifetime); err != nil {
			e.logger.Warn("lifetime counter write failed", "value", e.lifetime, "error", err)
		}
	}

	snap := e.snapshotLocked()
	sound := e.sound
	e.mu.Unlock()

	// Sound, outside the lock so a slow backend never stalls timer callbacks
	if sound != nil {
		if err := sound.Play(mode.SoundCue); err != nil {
			e.logger.Warn("sound cue failed", "cue", mode.SoundCue.String(), "error", err)
		}
	}

	return snap
}

// Snapshot returns the current state
func (e *SlapEngine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked()
}

// Close cancels pending animation and decay callbacks
func (e *SlapEngine) Close() {
	e.animTimer.Cancel()
	e.decayTimer.Cancel()
}

func (e *SlapEngine) endAnimation() {
	e.mu.Lock()
	e.animating = false
	e.mu.Unlock()
}

func (e *SlapEngine) decayCombo() {
	e.mu.Lock()
	e.combo.Count = 0
	e.mu.Unlock()
}

func (e *SlapEngine) snapshotLocked() Snapshot {
	return Snapshot{
		AnimationActive: e.animating,
		ComboCount:      e.combo.Count,
		BestCombo:       e.best,
		LifetimeCount:   e.lifetime,
	}
}
