package flow

// Trigger completes the first time any one of its members completes. The
// dual of Barrier: remaining members are not force-completed, they continue
// to live independently. Membership additions after the trigger has
// completed are no-ops.
type Trigger struct {
	generatorBase
	members []Transient
}

func newTrigger(k *Kernel, name string) *Trigger {
	tr := &Trigger{generatorBase: newGeneratorBase(k, name)}
	tr.Then(func() { tr.members = nil })
	return tr
}

// Add registers a member. A nil child is dropped and logged. Adding after
// the trigger has already completed is a no-op.
func (tr *Trigger) Add(child Transient) {
	if child == nil {
		tr.log().Warn("Trigger.Add: nil child dropped")
		return
	}
	if !tr.active {
		return
	}
	if !child.Active() {
		tr.Complete()
		return
	}
	tr.members = append(tr.members, child)
	child.Then(func() {
		tr.remove(child)
		tr.Complete()
	})
}

func (tr *Trigger) remove(child Transient) {
	for i, m := range tr.members {
		if m == child {
			tr.members = append(tr.members[:i], tr.members[i+1:]...)
			return
		}
	}
}

// Remaining returns the number of members still being watched (zero once
// the trigger has completed).
func (tr *Trigger) Remaining() int { return len(tr.members) }

// forceComplete completes the trigger immediately regardless of outstanding
// members, used by TimedTrigger when the timeout leg wins the race.
func (tr *Trigger) forceComplete() {
	tr.members = nil
	tr.Complete()
}

// Step is a no-op: Trigger does nothing on its own tick.
func (tr *Trigger) Step() {}

var _ Generator = (*Trigger)(nil)
