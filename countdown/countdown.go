// Package countdown tracks the time left until a recurring annual date.
package countdown

import (
	"fmt"
	"sync"
	"time"
)

// Remaining is the display decomposition of the time left, sub-minute precision is dropped
type Remaining struct {
	Days    int
	Hours   int // 0-23
	Minutes int // 0-59
}

// Timer counts down to a target instant and rolls the target forward one calendar year once it passes.
// It shares no state with the slap engine.
type Timer struct {
	mu      sync.Mutex
	target  time.Time
	display Remaining
}

// New creates a timer for target
func New(target time.Time) *Timer {
	return &Timer{target: target}
}

// Parse creates a timer from an RFC3339 target
func Parse(target string) (*Timer, error) {
	t, err := time.Parse(time.RFC3339, target)
	if err != nil {
		return nil, fmt.Errorf("parse countdown target: %w", err)
	}
	return New(t), nil
}

// Tick recomputes the display for now.
// When now is past the target, the target advances by one year and the previous display is
// kept with rolled=true; the next tick shows the new distance. One year is added per tick.
func (t *Timer) Tick(now time.Time) (r Remaining, rolled bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	diff := t.target.Sub(now)
	if diff < 0 {
		// Same month, day and time of day; Feb 29 normalizes to Mar 1 in non-leap years
		t.target = t.target.AddDate(1, 0, 0)
		return t.display, true
	}

	t.display = Decompose(diff)
	return t.display, false
}

// Target returns the current target instant
func (t *Timer) Target() time.Time {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.target
}

// Display returns the last computed remaining time
func (t *Timer) Display() Remaining {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.display
}

// Decompose floors d into whole days, hours and minutes
func Decompose(d time.Duration) Remaining {
	if d < 0 {
		return Remaining{}
	}
	day := 24 * time.Hour
	return Remaining{
		Days:    int(d / day),
		Hours:   int(d % day / time.Hour),
		Minutes: int(d % time.Hour / time.Minute),
	}
}

// Format renders the banner text
func Format(r Remaining) string {
	return fmt.Sprintf("%d gün : %d saat : %d dakika", r.Days, r.Hours, r.Minutes)
}
