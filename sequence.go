package flow

// Sequence steps one child generator at a time, in the order they were
// added, completing once its queue drains. Children added mid-run are
// appended to the tail.
type Sequence struct {
	generatorBase
	queue []Generator
}

func newSequence(k *Kernel, name string) *Sequence {
	return &Sequence{generatorBase: newGeneratorBase(k, name)}
}

// Add appends a generator to the sequence's queue. A nil child is dropped
// and logged.
func (s *Sequence) Add(child Generator) {
	if child == nil {
		s.log().Warn("Sequence.Add: nil child dropped")
		return
	}
	s.queue = append(s.queue, child)
}

// Len returns the number of generators remaining in the queue, including
// the current head.
func (s *Sequence) Len() int { return len(s.queue) }

// Current returns the generator currently being stepped, or nil if the
// queue is empty.
func (s *Sequence) Current() Generator {
	if len(s.queue) == 0 {
		return nil
	}
	return s.queue[0]
}

// Step advances the sequence by one unit of work: it steps the head of the
// queue if still active, or pops completed heads and re-enters until it
// finds an active head or the queue drains. The pop-and-re-enter loop is an
// explicit for loop, not recursion, so a run of many completed heads in a
// row (a deep synchronous completion cascade) never grows the call stack.
func (s *Sequence) Step() {
	if !s.canStep() {
		return
	}
	for {
		if len(s.queue) == 0 {
			s.Complete()
			return
		}
		head := s.queue[0]
		if head.Active() {
			head.Step()
			s.didStep()
			return
		}
		s.queue = s.queue[1:]
	}
}

var _ Generator = (*Sequence)(nil)
