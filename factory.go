package flow

import "time"

// Factory is the single entry point for flow-object construction: every
// New* function stamps the owning kernel onto the transient it creates and
// normalizes its initial running state, so no flow object is ever assembled
// without those invariants holding from birth.
type Factory struct {
	kernel *Kernel
}

// NewFactory constructs a Factory with no kernel bound yet. NewKernel binds
// it automatically; applications never call bind themselves.
func NewFactory() *Factory {
	return &Factory{}
}

func (f *Factory) bind(k *Kernel) {
	f.kernel = k
}

func (f *Factory) resolveName(explicit, kind string) string {
	if explicit != "" {
		return explicit
	}
	return autoName(kind)
}

// namedSetter is implemented by every concrete transient, via the embedded
// transientBase. It backs Named, the generic rename decorator.
type namedSetter interface {
	setName(string)
}

func (t *transientBase) setName(name string) { t.name = name }

// Named decorates any transient with a human name, applicable after
// construction. Returns t unchanged (for chaining) if t is nil.
func (f *Factory) Named(t Transient, name string) Transient {
	if t == nil {
		return t
	}
	if ns, ok := t.(namedSetter); ok {
		ns.setName(name)
	}
	return t
}

// NewNode constructs a Node.
func (f *Factory) NewNode(name string) *Node {
	return newNode(f.kernel, f.resolveName(name, "node"))
}

// NewGroup constructs a Group.
func (f *Factory) NewGroup(name string) *Group {
	return newGroup(f.kernel, f.resolveName(name, "group"))
}

// NewSequence constructs a Sequence.
func (f *Factory) NewSequence(name string) *Sequence {
	return newSequence(f.kernel, f.resolveName(name, "sequence"))
}

// NewBarrier constructs a Barrier.
func (f *Factory) NewBarrier(name string) *Barrier {
	return newBarrier(f.kernel, f.resolveName(name, "barrier"))
}

// NewTrigger constructs a Trigger.
func (f *Factory) NewTrigger(name string) *Trigger {
	return newTrigger(f.kernel, f.resolveName(name, "trigger"))
}

// NewTimer constructs a one-shot Timer.
func (f *Factory) NewTimer(interval time.Duration, name string) *Timer {
	return newTimer(f.kernel, interval, f.resolveName(name, "timer"))
}

// NewPeriodic constructs a Periodic.
func (f *Factory) NewPeriodic(period time.Duration, name string) *Periodic {
	return newPeriodic(f.kernel, period, f.resolveName(name, "periodic"))
}

// NewTimedBarrier constructs a Barrier raced against a timeout.
func (f *Factory) NewTimedBarrier(timeout time.Duration, name string) *TimedBarrier {
	return newTimedBarrier(f, timeout, f.resolveName(name, "timed-barrier"))
}

// NewTimedTrigger constructs a Trigger raced against a timeout.
func (f *Factory) NewTimedTrigger(timeout time.Duration, name string) *TimedTrigger {
	return newTimedTrigger(f, timeout, f.resolveName(name, "timed-trigger"))
}

// NewFuture, NewTimedFuture, NewCoroutine, and NewSubroutine are
// package-level functions (defined alongside their types in future.go,
// timed.go, and coroutine.go) rather than Factory methods: Go methods
// cannot introduce type parameters beyond the receiver's own.
