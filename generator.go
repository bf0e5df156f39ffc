package flow

// Generator is a Transient that can be stepped by its parent once per
// kernel tick. It adds a running/suspended flag and a monotonic step
// counter to the base lifecycle.
type Generator interface {
	Transient

	// Running reports whether the generator will perform work on Step.
	Running() bool

	// StepNumber is the count of steps that actually performed work (no-op
	// steps, while suspended or inactive, never increment it).
	StepNumber() int

	// State summarizes Active/Running into one of StateActive,
	// StateSuspended, StateCompleted.
	State() GeneratorState

	// Step performs one unit of work if Active() && Running(); otherwise a
	// no-op.
	Step()

	// Suspend flips Running to false. Idempotent.
	Suspend()

	// Resume flips Running to true, unless the generator has completed.
	// Idempotent.
	Resume()

	// ResumeAfter atomically suspends, then arranges to resume once other
	// completes (or immediately, if other is already inactive). A nil other
	// is dropped and logged, same as a nil child passed to Add.
	ResumeAfter(other Transient)

	// SuspendAfter is the dual of ResumeAfter.
	SuspendAfter(other Transient)
}

// generatorBase is embedded by every concrete steppable flow object.
type generatorBase struct {
	transientBase
	running    bool
	stepNumber int
}

func newGeneratorBase(k *Kernel, name string) generatorBase {
	return generatorBase{
		transientBase: newTransientBase(k, name),
		running:       true,
	}
}

func (g *generatorBase) Running() bool       { return g.running }
func (g *generatorBase) StepNumber() int     { return g.stepNumber }

func (g *generatorBase) State() GeneratorState {
	switch {
	case !g.active:
		return StateCompleted
	case !g.running:
		return StateSuspended
	default:
		return StateActive
	}
}

func (g *generatorBase) Suspend() {
	g.running = false
}

func (g *generatorBase) Resume() {
	if !g.active {
		return
	}
	g.running = true
}

func (g *generatorBase) ResumeAfter(other Transient) {
	if other == nil {
		g.log().Warn("ResumeAfter: nil other dropped")
		return
	}
	g.Suspend()
	if !other.Active() {
		g.Resume()
		return
	}
	other.addCompletionListener(g.Resume)
}

func (g *generatorBase) SuspendAfter(other Transient) {
	if other == nil {
		g.log().Warn("SuspendAfter: nil other dropped")
		return
	}
	if !other.Active() {
		g.Suspend()
		return
	}
	other.addCompletionListener(g.Suspend)
}

// canStep reports whether a concrete Step() implementation should perform
// work this tick.
func (g *generatorBase) canStep() bool {
	return g.active && g.running
}

// didStep increments the step counter. Concrete Step() implementations call
// it exactly when they performed real work, never on a no-op path.
func (g *generatorBase) didStep() {
	g.stepNumber++
}
