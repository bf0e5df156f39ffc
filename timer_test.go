package flow

import (
	"testing"
	"time"
)

func TestTimer_CompletesAndFiresElapsedOnceIntervalCrossed(t *testing.T) {
	k := NewKernel()
	f := k.Factory()

	timer := f.NewTimer(100*time.Millisecond, "")
	var elapsed int
	timer.OnElapsed(func() { elapsed++ })
	k.Root().Add(timer)

	for i := 0; i < 9; i++ { // 90ms total
		k.Update(10 * time.Millisecond)
	}
	if !timer.Active() {
		t.Fatal("expected timer still active before interval elapses")
	}
	if elapsed != 0 {
		t.Fatalf("expected no elapsed fire yet, got %d", elapsed)
	}

	k.Update(10 * time.Millisecond) // 100ms total
	if timer.Active() {
		t.Fatal("expected timer to complete once interval elapses")
	}
	if elapsed != 1 {
		t.Fatalf("expected elapsed to fire exactly once, got %d", elapsed)
	}
}

// TestPeriodic_TicksRepeatedlyAndStaysActive is spec scenario 4.
func TestPeriodic_TicksRepeatedlyAndStaysActive(t *testing.T) {
	k := NewKernel()
	f := k.Factory()

	p := f.NewPeriodic(100*time.Millisecond, "")
	k.Root().Add(p)

	for i := 0; i < 10; i++ {
		k.Update(100 * time.Millisecond)
	}

	if p.TickCount() < 3 {
		t.Fatalf("expected tick_count >= 3, got %d", p.TickCount())
	}
	if !p.Active() {
		t.Fatal("expected periodic to remain active")
	}
}

func TestPeriodic_OnTickFiresEveryCrossing(t *testing.T) {
	k := NewKernel()
	f := k.Factory()

	p := f.NewPeriodic(50*time.Millisecond, "")
	var ticks int
	p.OnTick(func() { ticks++ })
	k.Root().Add(p)

	for i := 0; i < 6; i++ {
		k.Update(50 * time.Millisecond)
	}
	if ticks != p.TickCount() {
		t.Fatalf("expected OnTick calls to match TickCount, got %d vs %d", ticks, p.TickCount())
	}
	if ticks != 6 {
		t.Fatalf("expected 6 ticks over 6 period-length updates, got %d", ticks)
	}
}

func TestPeriodic_LargeDeltaFiresOnlyOneTickPerStep(t *testing.T) {
	k := NewKernel()
	f := k.Factory()

	p := f.NewPeriodic(10*time.Millisecond, "")
	k.Root().Add(p)

	// A single update crossing many periods still only advances one tick
	// and one period, per the documented tie-break (no catch-up burst).
	k.Update(1 * time.Second)
	if p.TickCount() != 1 {
		t.Fatalf("expected exactly one tick fired from a single oversized update, got %d", p.TickCount())
	}

	// The remaining backlog catches up one tick per subsequent Step call,
	// even with a zero delta, since kernel time already exceeds `next`.
	k.Update(0)
	if p.TickCount() != 2 {
		t.Fatalf("expected the backlog to catch up by exactly one more tick, got %d", p.TickCount())
	}
}
