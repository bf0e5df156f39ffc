package flow

// Node is an unordered bag of child generators, stepped once per tick in
// insertion order. Node never self-completes; it is completed explicitly.
//
// Children are removed from Node the moment they complete, per the
// ownership rule shared by every composite: membership is the only strong
// reference keeping a child schedulable.
type Node struct {
	generatorBase
	children []Generator
}

func newNode(k *Kernel, name string) *Node {
	return &Node{generatorBase: newGeneratorBase(k, name)}
}

// Add appends a child generator. A nil child is dropped and logged; an
// already-inactive child is added and immediately removed (its completion
// listener fires synchronously), matching Transient.CompleteAfter's
// already-inactive behavior.
func (n *Node) Add(child Generator) {
	if child == nil {
		n.log().Warn("Node.Add: nil child dropped")
		return
	}
	n.children = append(n.children, child)
	child.Then(func() { n.remove(child) })
}

func (n *Node) remove(child Generator) {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			return
		}
	}
}

// Children returns a snapshot of the current child list.
func (n *Node) Children() []Generator {
	out := make([]Generator, len(n.children))
	copy(out, n.children)
	return out
}

// Step snapshots the active-children collection, then steps each child that
// is still active at the moment of iteration. The snapshot means completion-
// driven removal mid-iteration never invalidates the traversal, and children
// added during iteration are deferred to the next Step.
func (n *Node) Step() {
	if !n.canStep() {
		return
	}
	snapshot := make([]Generator, len(n.children))
	copy(snapshot, n.children)
	for _, c := range snapshot {
		if c.Active() {
			c.Step()
		}
	}
	n.didStep()
}

var _ Generator = (*Node)(nil)
