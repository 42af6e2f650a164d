package engine

import (
	"sync"
	"time"
)

// ComboTimer is a single-slot delayed callback: arming again cancels the previous callback.
// A generation counter guards delivery, so a callback whose timer already expired and sits
// in the host loop queue is dropped once a newer arm or a cancel happened.
type ComboTimer struct {
	sched Scheduler

	mu    sync.Mutex
	gen   uint64
	timer Timer
}

// NewComboTimer creates an unarmed timer backed by sched
func NewComboTimer(sched Scheduler) *ComboTimer {
	return &ComboTimer{sched: sched}
}

// Arm schedules onFire after delay, superseding any pending callback (last-arm-wins)
func (t *ComboTimer) Arm(delay time.Duration, onFire func()) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.stopLocked()
	gen := t.gen

	t.timer = t.sched.AfterFunc(delay, func() {
		t.mu.Lock()
		if t.gen != gen {
			t.mu.Unlock()
			return
		}
		t.timer = nil
		t.gen++
		t.mu.Unlock()

		onFire()
	})
}

// Cancel drops the pending callback, if any
func (t *ComboTimer) Cancel() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopLocked()
}

// Pending reports whether a callback is armed and not yet delivered
func (t *ComboTimer) Pending() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.timer != nil
}

func (t *ComboTimer) stopLocked() {
	t.gen++
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}
