package engine

import (
	"sort"
	"sync"
	"time"
)

// Timer is a pending scheduled callback
type Timer interface {
	// Stop prevents the callback from being delivered, returns false if it already was
	Stop() bool
}

// Scheduler hands out delayed callbacks.
// Implementations deliver every callback on the host loop's single logical thread.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

// TimerScheduler runs callbacks directly on runtime timer goroutines.
// Only for callers that lock their own state; the host loop uses LoopScheduler.
type TimerScheduler struct{}

// AfterFunc arms a runtime timer running fn once d elapses
func (TimerScheduler) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}

// LoopScheduler posts expired callbacks to a channel drained by the host event loop.
// The loop owns all engine mutation; timer goroutines never touch engine state directly.
type LoopScheduler struct {
	queue    chan func()
	stopChan chan struct{}
	stopOnce sync.Once
}

// NewLoopScheduler creates a scheduler whose callback queue holds size entries
func NewLoopScheduler(size int) *LoopScheduler {
	if size < 1 {
		size = 1
	}
	return &LoopScheduler{
		queue:    make(chan func(), size),
		stopChan: make(chan struct{}),
	}
}

// AfterFunc arms a runtime timer that enqueues fn for the loop once d elapses
func (s *LoopScheduler) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, func() {
		select {
		case s.queue <- fn:
		case <-s.stopChan:
		}
	})
}

// C returns the callback channel, the host loop must run every received func
func (s *LoopScheduler) C() <-chan func() {
	return s.queue
}

// Stop releases timer goroutines blocked on a full queue; queued callbacks are abandoned
func (s *LoopScheduler) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopChan)
	})
}

// ManualScheduler fires callbacks when its mock clock is advanced, for deterministic tests
type ManualScheduler struct {
	mu      sync.Mutex
	clock   *MockTimeProvider
	seq     uint64
	pending []*manualTimer
}

type manualTimer struct {
	sched   *ManualScheduler
	at      time.Time
	seq     uint64
	fn      func()
	stopped bool
}

// NewManualScheduler creates a scheduler driven by clock; advancing either one fires due callbacks
func NewManualScheduler(clock *MockTimeProvider) *ManualScheduler {
	s := &ManualScheduler{clock: clock}
	clock.OnAdvance(s.fireUntil)
	return s
}

// AfterFunc registers fn to run once the clock reaches now+d
func (s *ManualScheduler) AfterFunc(d time.Duration, fn func()) Timer {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	t := &manualTimer{
		sched: s,
		at:    s.clock.Now().Add(d),
		seq:   s.seq,
		fn:    fn,
	}
	s.pending = append(s.pending, t)
	return t
}

// Stop removes the timer, returns false if it already fired or was stopped
func (t *manualTimer) Stop() bool {
	s := t.sched
	s.mu.Lock()
	defer s.mu.Unlock()

	if t.stopped {
		return false
	}
	for i, p := range s.pending {
		if p == t {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			t.stopped = true
			return true
		}
	}
	return false
}

// Advance moves the shared clock forward by d, firing due callbacks in deadline order
func (s *ManualScheduler) Advance(d time.Duration) {
	s.clock.Advance(d)
}

// fireUntil runs callbacks due by target. The clock reads each callback's deadline
// while it runs, so timers armed from a callback are based on the fire time.
func (s *ManualScheduler) fireUntil(target time.Time) {
	for {
		s.mu.Lock()
		sort.SliceStable(s.pending, func(i, j int) bool {
			if s.pending[i].at.Equal(s.pending[j].at) {
				return s.pending[i].seq < s.pending[j].seq
			}
			return s.pending[i].at.Before(s.pending[j].at)
		})

		if len(s.pending) == 0 || s.pending[0].at.After(target) {
			s.mu.Unlock()
			return
		}

		next := s.pending[0]
		s.pending = s.pending[1:]
		next.stopped = true
		s.mu.Unlock()

		if next.at.After(s.clock.Now()) {
			s.clock.SetTime(next.at)
		}
		next.fn()
	}
}

// Pending returns the number of armed callbacks
func (s *ManualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}
