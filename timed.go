package flow

import "time"

// TimedBarrier behaves as Barrier, but races it against a one-shot timer.
// It completes normally when every member has completed, or force-completes
// the wrapped barrier and fires TimedOut if the timeout elapses first.
type TimedBarrier struct {
	generatorBase
	barrier  *Barrier
	timer    *Timer
	timedOut bool
	timedOutListeners []func()
}

func newTimedBarrier(f *Factory, timeout time.Duration, name string) *TimedBarrier {
	tb := &TimedBarrier{generatorBase: newGeneratorBase(f.kernel, name)}
	tb.barrier = f.NewBarrier("")
	tb.timer = f.NewTimer(timeout, "")

	tb.barrier.Then(func() {
		if !tb.active {
			return
		}
		// Complete tb first: the timer's own OnElapsed guard reads tb.active,
		// so it must already be false before cancelling the timer triggers it.
		tb.Complete()
		tb.timer.Complete()
	})
	tb.timer.OnElapsed(func() {
		if !tb.active {
			return
		}
		tb.timedOut = true
		for _, fn := range tb.timedOutListeners {
			tb.invokeListener(fn)
		}
		tb.barrier.forceComplete()
		tb.Complete()
	})
	return tb
}

// Add registers a member on the wrapped barrier.
func (tb *TimedBarrier) Add(child Transient) { tb.barrier.Add(child) }

// Remaining returns the wrapped barrier's remaining member count.
func (tb *TimedBarrier) Remaining() int { return tb.barrier.Remaining() }

// TimedOut reports whether the timeout leg won the race.
func (tb *TimedBarrier) TimedOut() bool { return tb.timedOut }

// OnTimedOut registers a one-shot handler invoked iff the timeout fires
// before every member completes.
func (tb *TimedBarrier) OnTimedOut(fn func()) {
	if fn == nil {
		return
	}
	tb.timedOutListeners = append(tb.timedOutListeners, fn)
}

// Step drives the internal timer; the wrapped barrier has no step behavior
// of its own.
func (tb *TimedBarrier) Step() {
	if !tb.canStep() {
		return
	}
	tb.didStep()
	tb.timer.Step()
}

var _ Generator = (*TimedBarrier)(nil)

// TimedTrigger behaves as Trigger, racing it against a one-shot timer.
type TimedTrigger struct {
	generatorBase
	trigger  *Trigger
	timer    *Timer
	timedOut bool
	timedOutListeners []func()
}

func newTimedTrigger(f *Factory, timeout time.Duration, name string) *TimedTrigger {
	tt := &TimedTrigger{generatorBase: newGeneratorBase(f.kernel, name)}
	tt.trigger = f.NewTrigger("")
	tt.timer = f.NewTimer(timeout, "")

	tt.trigger.Then(func() {
		if !tt.active {
			return
		}
		// Complete tt first: see the matching comment in newTimedBarrier.
		tt.Complete()
		tt.timer.Complete()
	})
	tt.timer.OnElapsed(func() {
		if !tt.active {
			return
		}
		tt.timedOut = true
		for _, fn := range tt.timedOutListeners {
			tt.invokeListener(fn)
		}
		tt.trigger.forceComplete()
		tt.Complete()
	})
	return tt
}

// Add registers a member on the wrapped trigger.
func (tt *TimedTrigger) Add(child Transient) { tt.trigger.Add(child) }

// Remaining returns the wrapped trigger's remaining member count.
func (tt *TimedTrigger) Remaining() int { return tt.trigger.Remaining() }

// TimedOut reports whether the timeout leg won the race.
func (tt *TimedTrigger) TimedOut() bool { return tt.timedOut }

// OnTimedOut registers a one-shot handler invoked iff the timeout fires
// before any member completes.
func (tt *TimedTrigger) OnTimedOut(fn func()) {
	if fn == nil {
		return
	}
	tt.timedOutListeners = append(tt.timedOutListeners, fn)
}

// Step drives the internal timer.
func (tt *TimedTrigger) Step() {
	if !tt.canStep() {
		return
	}
	tt.didStep()
	tt.timer.Step()
}

var _ Generator = (*TimedTrigger)(nil)

// TimedFuture behaves as Future[T], racing it against a one-shot timer. If
// the timeout wins, the future is force-completed and its value slot is
// left at the zero value of T.
type TimedFuture[T any] struct {
	generatorBase
	future   *Future[T]
	timer    *Timer
	timedOut bool
	timedOutListeners []func()
}

// NewTimedFuture constructs a TimedFuture[T]. Like NewFuture, this is a
// package-level function rather than a Factory method.
func NewTimedFuture[T any](f *Factory, timeout time.Duration, name string) *TimedFuture[T] {
	tfu := &TimedFuture[T]{generatorBase: newGeneratorBase(f.kernel, f.resolveName(name, "timedfuture"))}
	tfu.future = NewFuture[T](f, "")
	tfu.timer = f.NewTimer(timeout, "")

	tfu.future.Then(func() {
		if !tfu.active {
			return
		}
		// Complete tfu first: see the matching comment in newTimedBarrier.
		tfu.Complete()
		tfu.timer.Complete()
	})
	tfu.timer.OnElapsed(func() {
		if !tfu.active {
			return
		}
		tfu.timedOut = true
		for _, fn := range tfu.timedOutListeners {
			tfu.invokeListener(fn)
		}
		tfu.future.Complete()
		tfu.Complete()
	})
	return tfu
}

// Set assigns the wrapped future's value.
func (tfu *TimedFuture[T]) Set(v T) error { return tfu.future.Set(v) }

// Value returns the wrapped future's value (the zero value of T if never
// assigned, including when the timeout won the race).
func (tfu *TimedFuture[T]) Value() T { return tfu.future.Value() }

// Available reports whether Set was called before the timeout.
func (tfu *TimedFuture[T]) Available() bool { return tfu.future.Available() }

// TimedOut reports whether the timeout leg won the race.
func (tfu *TimedFuture[T]) TimedOut() bool { return tfu.timedOut }

// OnTimedOut registers a one-shot handler invoked iff the timeout fires
// before the value is assigned.
func (tfu *TimedFuture[T]) OnTimedOut(fn func()) {
	if fn == nil {
		return
	}
	tfu.timedOutListeners = append(tfu.timedOutListeners, fn)
}

// Step drives the internal timer.
func (tfu *TimedFuture[T]) Step() {
	if !tfu.canStep() {
		return
	}
	tfu.didStep()
	tfu.timer.Step()
}

var _ Generator = (*TimedFuture[int])(nil)
