// Package game is the action boundary between input and the slap engine.
// It owns the current mode and character selection and produces the rendering snapshot.
package game

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/lixenwraith/slapper/catalog"
	"github.com/lixenwraith/slapper/core"
	"github.com/lixenwraith/slapper/engine"
)

// Snapshot is everything the renderer needs after an action or on load
type Snapshot struct {
	AnimationActive bool
	ComboCount      int
	BestCombo       int
	LifetimeCount   int64
	Mode            catalog.Mode
	Character       catalog.Character
}

// Deps are the collaborators of a Session
type Deps struct {
	Store     engine.CounterStore
	Sound     engine.SoundCue
	Scheduler engine.Scheduler
	Clock     engine.TimeProvider
	Logger    *slog.Logger
}

// Session is one play session: a slap engine plus the current selection
type Session struct {
	ID string

	engine *engine.SlapEngine
	clock  engine.TimeProvider
	sound  engine.SoundCue
	logger *slog.Logger

	mu        sync.Mutex
	mode      catalog.Mode
	character catalog.Character
}

// NewSession creates a session with the default selection and loads the persisted counter
func NewSession(deps Deps) *Session {
	clock := deps.Clock
	if clock == nil {
		clock = engine.NewMonotonicTimeProvider()
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	id := uuid.NewString()
	logger = logger.With("session_id", id)

	s := &Session{
		ID:        id,
		clock:     clock,
		sound:     deps.Sound,
		logger:    logger,
		mode:      catalog.DefaultMode(),
		character: catalog.DefaultCharacter(),
		engine: engine.NewSlapEngine(engine.Deps{
			Store:     deps.Store,
			Sound:     deps.Sound,
			Scheduler: deps.Scheduler,
			Clock:     clock,
			Logger:    logger,
		}),
	}

	snap := s.engine.Load()
	logger.Info("session started", "lifetime", snap.LifetimeCount)
	return s
}

// PerformAction triggers one slap with the current mode at the current time
func (s *Session) PerformAction() Snapshot {
	s.mu.Lock()
	mode, character := s.mode, s.character
	s.mu.Unlock()

	snap := s.engine.HandleAction(mode, s.clock.Now())
	if snap.ComboCount > 1 {
		s.logger.Debug("combo", "count", snap.ComboCount, "mode", mode.Name)
	}
	return compose(snap, mode, character)
}

// SelectMode changes the mode used by the next action; unknown ids fall back to the first mode
func (s *Session) SelectMode(id catalog.ModeID) catalog.Mode {
	m, ok := catalog.ModeByID(id)
	if !ok {
		s.logger.Debug("unknown mode, using default", "id", int(id))
	}

	s.mu.Lock()
	s.mode = m
	s.mu.Unlock()
	return m
}

// CycleMode selects the next mode in catalog order
func (s *Session) CycleMode() catalog.Mode {
	s.mu.Lock()
	current := s.mode.ID
	s.mu.Unlock()
	return s.SelectMode(catalog.NextMode(current).ID)
}

// SelectCharacter changes the slapped character; unknown ids fall back to the first character.
// Selection plays the love cue and never touches combo or counter state.
func (s *Session) SelectCharacter(id int) catalog.Character {
	c, ok := catalog.CharacterByID(id)
	if !ok {
		s.logger.Debug("unknown character, using default", "id", id)
	}

	s.mu.Lock()
	changed := s.character.ID != c.ID
	s.character = c
	s.mu.Unlock()

	if changed && s.sound != nil {
		if err := s.sound.Play(core.SoundLove); err != nil {
			s.logger.Warn("sound cue failed", "cue", core.SoundLove.String(), "error", err)
		}
	}
	return c
}

// Snapshot returns the current rendering snapshot
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	mode, character := s.mode, s.character
	s.mu.Unlock()
	return compose(s.engine.Snapshot(), mode, character)
}

// Close cancels pending engine timers
func (s *Session) Close() {
	s.engine.Close()
	s.logger.Info("session ended", "lifetime", s.engine.Snapshot().LifetimeCount)
}

func compose(snap engine.Snapshot, mode catalog.Mode, character catalog.Character) Snapshot {
	return Snapshot{
		AnimationActive: snap.AnimationActive,
		ComboCount:      snap.ComboCount,
		BestCombo:       snap.BestCombo,
		LifetimeCount:   snap.LifetimeCount,
		Mode:            mode,
		Character:       character,
	}
}
