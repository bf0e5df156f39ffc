package flow

import "testing"

func TestGenerator_StepNoOpWhenInactiveOrSuspended(t *testing.T) {
	k := NewKernel()
	f := k.Factory()

	t.Run("suspended", func(t *testing.T) {
		sub := NewCoroutine[int](f, func(self *Coroutine[int]) (LazySeq[int], error) {
			return FromSteps(CoroutineStep[int]{Value: 1}), nil
		}, "")
		sub.Suspend()
		before := sub.StepNumber()
		sub.Step()
		if sub.StepNumber() != before {
			t.Fatalf("expected no step increment while suspended, got %d -> %d", before, sub.StepNumber())
		}
	})

	t.Run("completed", func(t *testing.T) {
		sub := NewSubroutine[int](f, func(self *Subroutine[int]) (int, error) { return 1, nil }, "")
		sub.Step() // completes it
		before := sub.StepNumber()
		sub.Step()
		if sub.StepNumber() != before {
			t.Fatalf("expected no step increment once completed, got %d -> %d", before, sub.StepNumber())
		}
	})
}

func TestGenerator_SuspendResumeIdempotent(t *testing.T) {
	k := NewKernel()
	f := k.Factory()
	node := f.NewNode("")

	node.Suspend()
	node.Suspend()
	if node.Running() {
		t.Fatal("expected node suspended")
	}

	node.Resume()
	node.Resume()
	if !node.Running() {
		t.Fatal("expected node running")
	}
}

func TestGenerator_ResumeAfterAlreadyInactiveResumesImmediately(t *testing.T) {
	k := NewKernel()
	f := k.Factory()

	other := f.NewGroup("")
	other.Complete()

	node := f.NewNode("")
	node.Suspend()
	node.ResumeAfter(other)

	if !node.Running() {
		t.Fatal("expected ResumeAfter(already-inactive) to resume immediately")
	}
}

func TestGenerator_ResumeAfterWaitsForOther(t *testing.T) {
	k := NewKernel()
	f := k.Factory()

	other := f.NewGroup("")
	node := f.NewNode("")
	node.ResumeAfter(other)

	if node.Running() {
		t.Fatal("expected node suspended until other completes")
	}

	other.Complete()
	if !node.Running() {
		t.Fatal("expected node resumed once other completes")
	}
}

func TestGenerator_ResumeAfterNilDoesNotResume(t *testing.T) {
	k := NewKernel()
	f := k.Factory()

	node := f.NewNode("")
	node.Suspend()
	node.ResumeAfter(nil)

	if node.Running() {
		t.Fatal("expected ResumeAfter(nil) to be a dropped no-op, not an immediate resume")
	}
}

func TestGenerator_SuspendAfterNilDoesNotSuspend(t *testing.T) {
	k := NewKernel()
	f := k.Factory()

	node := f.NewNode("")
	node.SuspendAfter(nil)

	if !node.Running() {
		t.Fatal("expected SuspendAfter(nil) to be a dropped no-op, not an immediate suspend")
	}
}

func TestGenerator_StateReflectsLifecycle(t *testing.T) {
	k := NewKernel()
	f := k.Factory()
	node := f.NewNode("")

	if node.State() != StateActive {
		t.Fatalf("expected StateActive, got %v", node.State())
	}
	node.Suspend()
	if node.State() != StateSuspended {
		t.Fatalf("expected StateSuspended, got %v", node.State())
	}
	node.Resume()
	node.Complete()
	if node.State() != StateCompleted {
		t.Fatalf("expected StateCompleted, got %v", node.State())
	}
}
