package flow

// Future is a transient with a single value slot. Assigning the value,
// exactly once, marks it available and completes the future. Reading before
// a value has been assigned returns the zero value of T; Future never
// blocks a reader — this is a cooperative system, not a channel.
type Future[T any] struct {
	generatorBase
	value     T
	available bool
}

// NewFuture constructs a Future[T]. It is a package-level function, not a
// Factory method, because Go methods cannot introduce their own type
// parameters independent of the receiver.
func NewFuture[T any](f *Factory, name string) *Future[T] {
	return &Future[T]{generatorBase: newGeneratorBase(f.kernel, f.resolveName(name, "future"))}
}

// Set assigns the future's value. Returns ErrAlreadyAssigned if the slot was
// already set or the future has already completed; such calls never change
// the value or fire Complete again.
func (fu *Future[T]) Set(v T) error {
	if fu.available || !fu.active {
		return ErrAlreadyAssigned
	}
	fu.value = v
	fu.available = true
	fu.Complete()
	return nil
}

// Value returns the assigned value, or the zero value of T if none has been
// assigned yet.
func (fu *Future[T]) Value() T { return fu.value }

// Available reports whether Set has been called.
func (fu *Future[T]) Available() bool { return fu.available }

// Step is a no-op: a Future completes only via Set, never by stepping.
func (fu *Future[T]) Step() {}

var _ Generator = (*Future[int])(nil)
