package flow

// SubroutineFunc produces a single value for a Subroutine. It receives the
// subroutine itself so the body can read its own name/kernel if needed.
//
// A panic inside the function is recovered and reported as a fault; it is
// never treated as done-with-value.
type SubroutineFunc[T any] func(self *Subroutine[T]) (T, error)

// Subroutine wraps a single producer function with no suspension points.
// Its first Step invokes the function, stores the result as Value, and
// completes — whether the function succeeded or faulted.
type Subroutine[T any] struct {
	generatorBase
	fn    SubroutineFunc[T]
	value T
}

// NewSubroutine constructs a Subroutine[T] from a producer function.
func NewSubroutine[T any](f *Factory, fn SubroutineFunc[T], name string) *Subroutine[T] {
	return &Subroutine[T]{
		generatorBase: newGeneratorBase(f.kernel, f.resolveName(name, "subroutine")),
		fn:            fn,
	}
}

// Value returns the result of the producer function, or the zero value of T
// if it has not run yet or it faulted.
func (s *Subroutine[T]) Value() T { return s.value }

// Step invokes the producer function exactly once and completes.
func (s *Subroutine[T]) Step() {
	if !s.canStep() {
		return
	}
	s.didStep()
	v, err := s.safeCall()
	if err != nil {
		s.log().Error("subroutine fault", err)
	} else {
		s.value = v
	}
	s.Complete()
}

func (s *Subroutine[T]) safeCall() (v T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &FaultError{Component: "subroutine", Cause: wrapFault(r)}
		}
	}()
	return s.fn(s)
}

var _ Generator = (*Subroutine[int])(nil)

// LazySeq is a lazily-advanced sequence of step results, the contract a
// Coroutine's producer returns. Next is called once per Step once the
// sequence has been instantiated:
//
//   - done == true means the sequence is exhausted; the coroutine completes
//     with the returned value as its final Value.
//   - yielded != nil means this element is a dependency: the coroutine
//     suspends and resumes once yielded completes.
//   - yielded == nil and done == false means "yield this tick with no
//     dependency": one step is consumed, the coroutine stays running, and
//     resumes on the next tick.
//   - a non-nil error aborts the coroutine as a fault, same as a panic.
type LazySeq[T any] interface {
	Next() (value T, yielded Transient, done bool, err error)
}

// LazySeqFunc adapts an ordinary function to LazySeq.
type LazySeqFunc[T any] func() (T, Transient, bool, error)

func (f LazySeqFunc[T]) Next() (T, Transient, bool, error) { return f() }

// CoroutineStep is one element of a fixed, pre-built step sequence, for the
// common case where the steps are known up front rather than generated
// on the fly. See FromSteps.
type CoroutineStep[T any] struct {
	Value T
	Yield Transient // nil for a dependency-free yield
}

// FromSteps builds a LazySeq that walks a fixed slice of steps in order,
// then reports done on the element after the last one.
func FromSteps[T any](steps ...CoroutineStep[T]) LazySeq[T] {
	i := 0
	return LazySeqFunc[T](func() (T, Transient, bool, error) {
		if i >= len(steps) {
			var zero T
			return zero, nil, true, nil
		}
		step := steps[i]
		i++
		return step.Value, step.Yield, false, nil
	})
}

// CoroutineFunc instantiates the lazy sequence a Coroutine drives. It is
// called exactly once, on the coroutine's first Step.
type CoroutineFunc[T any] func(self *Coroutine[T]) (LazySeq[T], error)

// Coroutine adapts a user-supplied lazy sequence of step values into a
// schedulable generator, including the suspend-on-yielded-transient
// protocol described in spec's coroutine contract.
type Coroutine[T any] struct {
	generatorBase
	producer  CoroutineFunc[T]
	seq       LazySeq[T]
	value     T
	waitingOn Transient
}

// NewCoroutine constructs a Coroutine[T] from a producer function.
func NewCoroutine[T any](f *Factory, producer CoroutineFunc[T], name string) *Coroutine[T] {
	return &Coroutine[T]{
		generatorBase: newGeneratorBase(f.kernel, f.resolveName(name, "coroutine")),
		producer:      producer,
	}
}

// Value returns the most recently produced value.
func (c *Coroutine[T]) Value() T { return c.value }

// WaitingOn returns the transient the coroutine is currently suspended on,
// or nil if it is not suspended on a yielded dependency.
func (c *Coroutine[T]) WaitingOn() Transient { return c.waitingOn }

// Step instantiates the lazy sequence on first call, then advances it by
// one element per call. A producer/Next fault — panic or returned error —
// is caught, logged, and completes the coroutine; it never propagates.
func (c *Coroutine[T]) Step() {
	if !c.canStep() {
		return
	}
	c.didStep()

	if c.seq == nil {
		seq, err := c.safeProduce()
		if err != nil {
			c.log().Error("coroutine producer fault", err)
			c.Complete()
			return
		}
		c.seq = seq
	}

	value, yielded, done, err := c.safeNext()
	if err != nil {
		c.log().Error("coroutine step fault", err)
		c.Complete()
		return
	}
	c.value = value

	if done {
		c.waitingOn = nil
		c.Complete()
		return
	}

	if yielded == nil {
		c.waitingOn = nil
		return
	}

	if !yielded.Active() {
		c.waitingOn = nil
		return
	}

	c.waitingOn = yielded
	c.Suspend()
	yielded.Then(func() {
		c.waitingOn = nil
		c.Resume()
	})
}

func (c *Coroutine[T]) safeProduce() (seq LazySeq[T], err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &FaultError{Component: "coroutine", Cause: wrapFault(r)}
		}
	}()
	return c.producer(c)
}

func (c *Coroutine[T]) safeNext() (value T, yielded Transient, done bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &FaultError{Component: "coroutine", Cause: wrapFault(r)}
		}
	}()
	return c.seq.Next()
}

var _ Generator = (*Coroutine[int])(nil)
