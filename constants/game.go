package constants

import "time"

// Host Loop Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~30 FPS, animation pulses are coarse)
	FrameUpdateInterval = 33 * time.Millisecond

	// CountdownTickInterval is the cooperative tick driving the countdown banner
	CountdownTickInterval = 1 * time.Second

	// LoopQueueSize is the capacity of the scheduler callback channel drained by the host loop
	LoopQueueSize = 64

	// EventQueueSize is the capacity of the terminal event channel
	EventQueueSize = 256
)

// Combo Timing
const (
	// ComboWindow is the inactivity threshold after which a combo decays to zero.
	// An action strictly inside the window extends the combo.
	ComboWindow = 2000 * time.Millisecond
)

// Mode Animation Durations
const (
	SlapAnimationDuration  = 300 * time.Millisecond
	BiteAnimationDuration  = 400 * time.Millisecond
	SplatAnimationDuration = 500 * time.Millisecond
)

// Mode Particle Counts
const (
	SlapParticleCount  = 6
	BiteParticleCount  = 10
	SplatParticleCount = 18
)

// Persistence
const (
	// CounterKey is the fixed key of the lifetime counter in the local store
	CounterKey = "slapCount"

	// DefaultDataDir is where file and sqlite stores keep their data
	DefaultDataDir = "data"

	// SQLiteFileName is the database file name inside the data dir
	SQLiteFileName = "slapper.db"
)

// Countdown
const (
	// DefaultCountdownTarget is the annual date the banner counts down to
	DefaultCountdownTarget = "2024-10-31T00:00:00Z"
)
