package flow

import "time"

// Kernel owns a root Node, a monotonic time model, and the step driver.
// Applications call Update (or Step, if they manage delta accumulation
// themselves) once per tick; the kernel never reads a wall clock directly.
type Kernel struct {
	name string
	log  Logger

	factory *Factory
	root    *Node

	time       time.Duration
	lastDelta  time.Duration
	stepNumber int

	breakFlag bool
	waitUntil *time.Duration
}

// NewKernel constructs a Kernel ready to step. With no options, it logs
// nowhere and owns a fresh Factory.
func NewKernel(opts ...KernelOption) *Kernel {
	cfg := resolveKernelOptions(opts)

	k := &Kernel{
		name: cfg.name,
		log:  cfg.logger,
	}

	if cfg.factory != nil {
		k.factory = cfg.factory
	} else {
		k.factory = NewFactory()
	}
	k.factory.bind(k)

	k.root = newNode(k, "root")
	return k
}

// Name returns the kernel's optional human-readable name, used only for log
// correlation across multi-kernel applications.
func (k *Kernel) Name() string { return k.name }

// Log returns the kernel's configured log sink.
func (k *Kernel) Log() Logger { return k.log }

// Factory returns the kernel's flow-object constructor.
func (k *Kernel) Factory() *Factory { return k.factory }

// Root returns the kernel-owned root Node. Applications add their top-level
// flow objects to it.
func (k *Kernel) Root() *Node { return k.root }

// Time returns the kernel's monotonic accumulated time, the authoritative
// clock for every Timer and Periodic in the tree.
func (k *Kernel) Time() time.Duration { return k.time }

// LastDelta returns the delta passed to the most recent Update call.
func (k *Kernel) LastDelta() time.Duration { return k.lastDelta }

// StepNumber returns the number of ticks the kernel has actually stepped
// (i.e. not blocked by BreakFlow or Wait).
func (k *Kernel) StepNumber() int { return k.stepNumber }

// BreakFlag reports whether BreakFlow has been called. While set, Step is a
// no-op.
func (k *Kernel) BreakFlag() bool { return k.breakFlag }

// Update advances the kernel's clock by delta and performs one step.
func (k *Kernel) Update(delta time.Duration) {
	k.lastDelta = delta
	k.time += delta
	k.Step()
}

// Step performs at most one tick of the root (and transitively, of every
// active descendant), unless the kernel is broken or waiting.
func (k *Kernel) Step() {
	if k.breakFlag {
		k.log.Verbose(1, "flow: step skipped", "err", ErrKernelBroken)
		return
	}
	if k.waitUntil != nil {
		if k.time < *k.waitUntil {
			return
		}
		k.waitUntil = nil
	}
	k.stepNumber++
	k.root.Step()
}

// Wait pauses stepping until the kernel's accumulated time reaches
// Time()+duration. Stepping is a no-op until the deadline; once it passes,
// the deadline clears itself and stepping resumes on the next call.
func (k *Kernel) Wait(duration time.Duration) {
	deadline := k.time + duration
	k.waitUntil = &deadline
}

// BreakFlow sets the break flag. Future Step/Update calls become no-ops
// until a new Kernel is created; the break is terminal per call-site, as in
// the reference implementation, though BreakFlag remains publicly readable.
func (k *Kernel) BreakFlow() {
	k.breakFlag = true
}
