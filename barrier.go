package flow

// Barrier completes when every transient added to it has completed. It has
// no stepping behavior of its own: completion is driven entirely by
// membership maintenance on each member's completion signal.
//
// A Barrier created empty, with nothing ever added, never self-completes —
// this is the deliberate choice for spec's "empty barrier at creation"
// open question (see DESIGN.md). Only a removal triggered by a member
// completing can drive the emptiness check that completes the barrier.
type Barrier struct {
	generatorBase
	members []Transient
}

func newBarrier(k *Kernel, name string) *Barrier {
	return &Barrier{generatorBase: newGeneratorBase(k, name)}
}

// Add registers a member. A nil child is dropped and logged; a child that
// is already inactive is not added at all (it contributes nothing to the
// all-of condition).
func (b *Barrier) Add(child Transient) {
	if child == nil {
		b.log().Warn("Barrier.Add: nil child dropped")
		return
	}
	if !child.Active() {
		return
	}
	b.members = append(b.members, child)
	child.Then(func() {
		b.remove(child)
		if len(b.members) == 0 {
			b.Complete()
		}
	})
}

func (b *Barrier) remove(child Transient) {
	for i, m := range b.members {
		if m == child {
			b.members = append(b.members[:i], b.members[i+1:]...)
			return
		}
	}
}

// Remaining returns the number of members that have not yet completed.
func (b *Barrier) Remaining() int { return len(b.members) }

// forceComplete completes the barrier immediately regardless of outstanding
// members, used by TimedBarrier when the timeout leg wins the race: the
// wrapped barrier is done either way, so its membership bookkeeping is
// dropped along with it.
func (b *Barrier) forceComplete() {
	b.members = nil
	b.Complete()
}

// Step is a no-op: Barrier does nothing on its own tick.
func (b *Barrier) Step() {}

var _ Generator = (*Barrier)(nil)
