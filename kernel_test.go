package flow

import (
	"testing"
	"time"
)

func TestKernel_UpdateAdvancesTimeMonotonically(t *testing.T) {
	k := NewKernel()

	if k.Time() != 0 {
		t.Fatalf("expected initial time 0, got %v", k.Time())
	}

	deltas := []time.Duration{
		10 * time.Millisecond,
		0,
		5 * time.Millisecond,
		100 * time.Millisecond,
	}
	var want time.Duration
	for _, d := range deltas {
		want += d
		k.Update(d)
		if k.Time() != want {
			t.Fatalf("after Update(%v): want time %v, got %v", d, want, k.Time())
		}
	}
}

func TestKernel_StepNumberIncrementsOncePerTick(t *testing.T) {
	k := NewKernel()
	for i := 1; i <= 5; i++ {
		k.Update(time.Millisecond)
		if k.StepNumber() != i {
			t.Fatalf("expected step number %d, got %d", i, k.StepNumber())
		}
	}
}

func TestKernel_BreakFlowStopsStepping(t *testing.T) {
	k := NewKernel()
	k.Update(time.Millisecond)
	if k.StepNumber() != 1 {
		t.Fatalf("expected one step, got %d", k.StepNumber())
	}

	k.BreakFlow()
	if !k.BreakFlag() {
		t.Fatal("expected break flag set")
	}

	for i := 0; i < 3; i++ {
		k.Update(time.Millisecond)
	}
	if k.StepNumber() != 1 {
		t.Fatalf("expected step number to stay at 1 once broken, got %d", k.StepNumber())
	}
}

func TestKernel_WaitPausesSteppingUntilDeadline(t *testing.T) {
	k := NewKernel()
	k.Wait(50 * time.Millisecond)

	k.Update(10 * time.Millisecond) // time=10ms, still waiting
	if k.StepNumber() != 0 {
		t.Fatalf("expected no step while waiting, got %d", k.StepNumber())
	}

	k.Update(10 * time.Millisecond) // time=20ms, still waiting
	if k.StepNumber() != 0 {
		t.Fatalf("expected no step while waiting, got %d", k.StepNumber())
	}

	k.Update(40 * time.Millisecond) // time=60ms, deadline passed
	if k.StepNumber() != 1 {
		t.Fatalf("expected one step once the deadline passed, got %d", k.StepNumber())
	}

	// deadline has cleared itself; subsequent updates step normally.
	k.Update(time.Millisecond)
	if k.StepNumber() != 2 {
		t.Fatalf("expected stepping to resume normally, got %d", k.StepNumber())
	}
}

func TestKernel_RootStepsChildrenInInsertionOrder(t *testing.T) {
	k := NewKernel()
	f := k.Factory()

	var order []string
	for _, name := range []string{"a", "b", "c"} {
		name := name
		sub := NewSubroutine[int](f, func(self *Subroutine[int]) (int, error) {
			order = append(order, name)
			return 0, nil
		}, name)
		k.Root().Add(sub)
	}

	k.Update(0)

	want := []string{"a", "b", "c"}
	if len(order) != len(want) {
		t.Fatalf("expected %v, got %v", want, order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, order)
		}
	}
}

func TestKernel_SnapshotsChildrenBeforeIteration(t *testing.T) {
	k := NewKernel()
	f := k.Factory()

	root := k.Root()
	var ranFirst, ranSecond bool

	first := NewSubroutine[int](f, func(self *Subroutine[int]) (int, error) {
		ranFirst = true
		// added mid-iteration: must not run this same tick.
		second := NewSubroutine[int](f, func(self *Subroutine[int]) (int, error) {
			ranSecond = true
			return 0, nil
		}, "second")
		root.Add(second)
		return 0, nil
	}, "first")
	root.Add(first)

	k.Update(0)
	if !ranFirst {
		t.Fatal("expected first to run")
	}
	if ranSecond {
		t.Fatal("expected second (added mid-iteration) to be deferred to the next step")
	}

	k.Update(0)
	if !ranSecond {
		t.Fatal("expected second to run on the following step")
	}
}
