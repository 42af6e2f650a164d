package engine

import (
	"testing"
	"time"
)

func TestManualScheduler_FiresInDeadlineOrder(t *testing.T) {
	clock := NewMockTimeProvider(testEpoch)
	sched := NewManualScheduler(clock)

	var order []string
	var fireTimes []time.Time
	record := func(name string) func() {
		return func() {
			order = append(order, name)
			fireTimes = append(fireTimes, clock.Now())
		}
	}

	sched.AfterFunc(300*time.Millisecond, record("late"))
	sched.AfterFunc(100*time.Millisecond, record("early"))
	sched.AfterFunc(100*time.Millisecond, record("early-second"))

	sched.Advance(50 * time.Millisecond)
	if len(order) != 0 {
		t.Fatalf("Expected nothing to fire after 50ms, got %v", order)
	}

	sched.Advance(time.Second)
	want := []string{"early", "early-second", "late"}
	if len(order) != len(want) {
		t.Fatalf("Expected %v, got %v", want, order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("Fire %d: expected %s, got %s", i, want[i], order[i])
		}
	}

	if !fireTimes[0].Equal(testEpoch.Add(100 * time.Millisecond)) {
		t.Errorf("Expected clock at deadline during callback, got %v", fireTimes[0])
	}
	if !clock.Now().Equal(testEpoch.Add(1050 * time.Millisecond)) {
		t.Errorf("Expected clock at advance target, got %v", clock.Now())
	}
}

func TestManualScheduler_Stop(t *testing.T) {
	clock := NewMockTimeProvider(testEpoch)
	sched := NewManualScheduler(clock)

	fired := false
	timer := sched.AfterFunc(time.Second, func() { fired = true })

	if !timer.Stop() {
		t.Error("Expected first Stop to report removal")
	}
	if timer.Stop() {
		t.Error("Expected second Stop to report false")
	}

	sched.Advance(2 * time.Second)
	if fired {
		t.Error("Stopped timer fired")
	}
	if sched.Pending() != 0 {
		t.Errorf("Expected no pending timers, got %d", sched.Pending())
	}
}

func TestManualScheduler_CallbackArmsRelativeToFireTime(t *testing.T) {
	clock := NewMockTimeProvider(testEpoch)
	sched := NewManualScheduler(clock)

	var second time.Time
	sched.AfterFunc(100*time.Millisecond, func() {
		sched.AfterFunc(100*time.Millisecond, func() { second = clock.Now() })
	})

	sched.Advance(time.Second)
	if !second.Equal(testEpoch.Add(200 * time.Millisecond)) {
		t.Errorf("Expected nested timer at +200ms, got %v", second.Sub(testEpoch))
	}
}

func TestLoopScheduler_DeliversOnChannel(t *testing.T) {
	sched := NewLoopScheduler(4)
	defer sched.Stop()

	ran := false
	sched.AfterFunc(5*time.Millisecond, func() { ran = true })

	select {
	case fn := <-sched.C():
		fn()
	case <-time.After(time.Second):
		t.Fatal("Expected callback to be queued for the loop")
	}
	if !ran {
		t.Error("Expected queued callback to run when invoked by the loop")
	}
}

func TestLoopScheduler_StoppedTimerNeverQueues(t *testing.T) {
	sched := NewLoopScheduler(4)
	defer sched.Stop()

	timer := sched.AfterFunc(20*time.Millisecond, func() {})
	timer.Stop()

	select {
	case <-sched.C():
		t.Error("Stopped timer delivered a callback")
	case <-time.After(60 * time.Millisecond):
	}
}

func TestLoopScheduler_StopReleasesBlockedTimers(t *testing.T) {
	sched := NewLoopScheduler(1)

	sched.AfterFunc(time.Millisecond, func() {})
	sched.AfterFunc(time.Millisecond, func() {})
	time.Sleep(20 * time.Millisecond)

	// Second timer goroutine is blocked on the full queue until Stop
	sched.Stop()
	sched.Stop()
}

func TestTimerScheduler_Fires(t *testing.T) {
	done := make(chan struct{})
	TimerScheduler{}.AfterFunc(time.Millisecond, func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("TimerScheduler callback never ran")
	}

	stopped := TimerScheduler{}.AfterFunc(time.Hour, func() { t.Error("stopped timer fired") })
	if !stopped.Stop() {
		t.Error("Expected Stop to cancel a pending timer")
	}
}
