package flow

import "time"

// Timer is a one-shot, wall-clock-driven transient. It records the kernel's
// time at activation and completes, firing Elapsed, once that much time has
// accumulated.
type Timer struct {
	generatorBase
	interval time.Duration
	start    time.Duration
}

func newTimer(k *Kernel, interval time.Duration, name string) *Timer {
	return &Timer{
		generatorBase: newGeneratorBase(k, name),
		interval:      interval,
		start:         k.Time(),
	}
}

// Interval returns the timer's configured duration.
func (t *Timer) Interval() time.Duration { return t.interval }

// Remaining returns the time left before the timer elapses, clamped to zero.
func (t *Timer) Remaining() time.Duration {
	elapsed := t.kernel.Time() - t.start
	if elapsed >= t.interval {
		return 0
	}
	return t.interval - elapsed
}

// OnElapsed registers a one-shot handler for the timer's completion. Sugar
// over Then, named to match the spec's "elapsed" event vocabulary.
func (t *Timer) OnElapsed(fn func()) { t.Then(fn) }

// Step checks whether the interval has elapsed; if so it completes (firing
// Elapsed via OnElapsed/Then handlers).
func (t *Timer) Step() {
	if !t.canStep() {
		return
	}
	t.didStep()
	if t.kernel.Time()-t.start >= t.interval {
		t.Complete()
	}
}

var _ Generator = (*Timer)(nil)

// Periodic is a wall-clock-driven transient that never self-completes. It
// fires Tick every time its period elapses, advancing its next deadline by
// exactly one period per crossing.
//
// Tie-break for large deltas: if a single Step observes time having crossed
// more than one period boundary, Periodic still fires Tick once and advances
// next by a single period only — the remaining periods are caught up on
// subsequent ticks, matching the canonical implementation's default. See
// DESIGN.md for the rejected multi-fire-catch-up alternative.
type Periodic struct {
	generatorBase
	period        time.Duration
	next          time.Duration
	tickCount     int
	tickListeners []func()
}

func newPeriodic(k *Kernel, period time.Duration, name string) *Periodic {
	return &Periodic{
		generatorBase: newGeneratorBase(k, name),
		period:        period,
		next:          k.Time() + period,
	}
}

// Period returns the configured period.
func (p *Periodic) Period() time.Duration { return p.period }

// TickCount returns the number of times Tick has fired so far.
func (p *Periodic) TickCount() int { return p.tickCount }

// OnTick registers a handler invoked every time the period elapses. Unlike
// Then, OnTick handlers are not one-shot: Periodic never completes, so they
// fire repeatedly for the lifetime of the timer.
func (p *Periodic) OnTick(fn func()) {
	if fn == nil {
		return
	}
	p.tickListeners = append(p.tickListeners, fn)
}

// Step checks whether the next deadline has passed; if so, fires Tick,
// increments TickCount, and advances the deadline by one period.
func (p *Periodic) Step() {
	if !p.canStep() {
		return
	}
	p.didStep()
	if p.kernel.Time() >= p.next {
		p.tickCount++
		p.next += p.period
		for _, fn := range p.tickListeners {
			p.invokeListener(fn)
		}
	}
}

var _ Generator = (*Periodic)(nil)
