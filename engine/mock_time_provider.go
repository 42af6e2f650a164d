package engine

import (
	"sync"
	"time"
)

// MockTimeProvider is a hand-driven clock. Advance runs registered hooks before
// landing on the target, so a ManualScheduler sharing the clock fires due callbacks.
type MockTimeProvider struct {
	advanceMu sync.Mutex // serializes Advance, hooks included
	mu        sync.RWMutex
	now       time.Time
	hooks     []func(target time.Time)
}

// NewMockTimeProvider creates a clock stopped at start
func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{now: start}
}

// Now returns the current mocked time
func (m *MockTimeProvider) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.now
}

// SetTime jumps the clock without running hooks
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = t
}

// OnAdvance registers fn to run on every Advance with the target instant.
// Hooks may move the clock forward up to the target.
func (m *MockTimeProvider) OnAdvance(fn func(target time.Time)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hooks = append(m.hooks, fn)
}

// Advance moves the clock forward by d. Hooks must not call Advance.
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.advanceMu.Lock()
	defer m.advanceMu.Unlock()

	m.mu.RLock()
	target := m.now.Add(d)
	hooks := m.hooks
	m.mu.RUnlock()

	for _, fn := range hooks {
		fn(target)
	}
	m.SetTime(target)
}
