package game

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/slapper/catalog"
	"github.com/lixenwraith/slapper/constants"
	"github.com/lixenwraith/slapper/core"
	"github.com/lixenwraith/slapper/engine"
	"github.com/lixenwraith/slapper/storage"
)

type recordingSound struct {
	played []core.SoundType
}

func (r *recordingSound) Play(cue core.SoundType) error {
	r.played = append(r.played, cue)
	return nil
}

type sessionFixture struct {
	clock   *engine.MockTimeProvider
	sched   *engine.ManualScheduler
	kv      *storage.Memory
	sound   *recordingSound
	session *Session
}

func newSessionFixture(t *testing.T, kv *storage.Memory) *sessionFixture {
	t.Helper()
	if kv == nil {
		kv = storage.NewMemory()
	}
	clock := engine.NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	sched := engine.NewManualScheduler(clock)
	sound := &recordingSound{}

	s := NewSession(Deps{
		Store:     storage.NewCounter(kv, constants.CounterKey),
		Sound:     sound,
		Scheduler: sched,
		Clock:     clock,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	t.Cleanup(s.Close)

	return &sessionFixture{clock: clock, sched: sched, kv: kv, sound: sound, session: s}
}

func TestSession_DefaultSelection(t *testing.T) {
	f := newSessionFixture(t, nil)
	snap := f.session.Snapshot()

	if snap.Mode.ID != catalog.ModeSlap || snap.Character.ID != 1 {
		t.Errorf("Expected default selection, got mode=%s character=%d", snap.Mode.Name, snap.Character.ID)
	}
	if _, err := uuid.Parse(f.session.ID); err != nil {
		t.Errorf("Expected uuid session id, got %q", f.session.ID)
	}
}

func TestSession_PerformActionPersistsAndPlaysModeCue(t *testing.T) {
	f := newSessionFixture(t, nil)

	f.session.SelectMode(catalog.ModeBite)
	snap := f.session.PerformAction()

	if snap.LifetimeCount != 1 || snap.ComboCount != 1 || !snap.AnimationActive {
		t.Errorf("Unexpected snapshot %+v", snap)
	}
	if snap.Mode.ID != catalog.ModeBite {
		t.Errorf("Expected Bite mode in snapshot, got %s", snap.Mode.Name)
	}
	if raw, _, _ := f.kv.Get(constants.CounterKey); raw != "1" {
		t.Errorf("Expected persisted %q, got %q", "1", raw)
	}
	if len(f.sound.played) != 1 || f.sound.played[0] != core.SoundBite {
		t.Errorf("Expected bite cue, got %v", f.sound.played)
	}
}

func TestSession_SelectionNeverTouchesCombo(t *testing.T) {
	f := newSessionFixture(t, nil)

	f.session.PerformAction()
	f.sched.Advance(300 * time.Millisecond)
	f.session.PerformAction()

	before := f.session.Snapshot()
	f.session.SelectCharacter(3)
	f.session.SelectMode(catalog.ModeSplat)
	f.session.CycleMode()
	after := f.session.Snapshot()

	if before.ComboCount != after.ComboCount || before.LifetimeCount != after.LifetimeCount {
		t.Errorf("Selection changed state: before=%+v after=%+v", before, after)
	}
	if after.Character.TargetName != "Mert" {
		t.Errorf("Expected Mert selected, got %s", after.Character.TargetName)
	}
	if after.Mode.ID != catalog.ModeSlap {
		t.Errorf("Expected CycleMode to wrap Splat -> Slap, got %s", after.Mode.Name)
	}

	// Next action uses the new selection and continues the combo
	f.sched.Advance(300 * time.Millisecond)
	snap := f.session.PerformAction()
	if snap.ComboCount != 3 {
		t.Errorf("Expected combo 3, got %d", snap.ComboCount)
	}
}

func TestSession_StaleSelectionFallsBack(t *testing.T) {
	f := newSessionFixture(t, nil)

	f.session.SelectCharacter(2)
	if c := f.session.SelectCharacter(77); c.ID != 1 {
		t.Errorf("Expected fallback to first character, got %d", c.ID)
	}
	if m := f.session.SelectMode(catalog.ModeID(-3)); m.ID != catalog.ModeSlap {
		t.Errorf("Expected fallback to first mode, got %s", m.Name)
	}
}

func TestSession_LoveCueOnlyOnChange(t *testing.T) {
	f := newSessionFixture(t, nil)

	f.session.SelectCharacter(1) // already selected
	f.session.SelectCharacter(2)
	f.session.SelectCharacter(2)

	if len(f.sound.played) != 1 || f.sound.played[0] != core.SoundLove {
		t.Errorf("Expected a single love cue, got %v", f.sound.played)
	}
}

func TestSession_ReloadKeepsLifetime(t *testing.T) {
	kv := storage.NewMemory()
	first := newSessionFixture(t, kv)
	for i := 0; i < 5; i++ {
		first.session.PerformAction()
		first.sched.Advance(time.Second)
	}
	first.session.Close()

	second := newSessionFixture(t, kv)
	if got := second.session.Snapshot().LifetimeCount; got != 5 {
		t.Errorf("Expected reloaded lifetime 5, got %d", got)
	}
	if got := second.session.PerformAction().LifetimeCount; got != 6 {
		t.Errorf("Expected 6 after one more action, got %d", got)
	}
}

func TestSession_CorruptStoredValueLoadsZero(t *testing.T) {
	kv := storage.NewMemory()
	kv.Set(constants.CounterKey, "NaN")

	f := newSessionFixture(t, kv)
	if got := f.session.Snapshot().LifetimeCount; got != 0 {
		t.Fatalf("Expected 0 from corrupt value, got %d", got)
	}
	if got := f.session.PerformAction().LifetimeCount; got != 1 {
		t.Errorf("Expected 1 after first action, got %d", got)
	}
}
