package flow

// Group is a non-stepping container used solely for lifetime bundling.
// Completing the group does NOT force-complete its members; membership
// exists for iteration and inspection only.
type Group struct {
	transientBase
	members []Transient
}

func newGroup(k *Kernel, name string) *Group {
	return &Group{transientBase: newTransientBase(k, name)}
}

// Add appends a transient to the group. A nil member is dropped and logged.
func (g *Group) Add(t Transient) {
	if t == nil {
		g.log().Warn("Group.Add: nil member dropped")
		return
	}
	g.members = append(g.members, t)
	t.Then(func() { g.remove(t) })
}

func (g *Group) remove(t Transient) {
	for i, m := range g.members {
		if m == t {
			g.members = append(g.members[:i], g.members[i+1:]...)
			return
		}
	}
}

// Transients returns a snapshot of the current member list.
func (g *Group) Transients() []Transient {
	out := make([]Transient, len(g.members))
	copy(out, g.members)
	return out
}

var _ Transient = (*Group)(nil)
