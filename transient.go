package flow

// Transient is the lifetime primitive shared by every flow object: active
// from creation until it completes, firing its completion signal exactly
// once. The addCompletionListener method is unexported, which seals the
// interface to types declared in this package — every Transient is born
// through a Factory constructor, never assembled ad hoc by a caller.
type Transient interface {
	// Active reports whether the transient has not yet completed.
	Active() bool

	// Name returns the transient's human-readable name, set via
	// Factory.Named or auto-generated at construction.
	Name() string

	// Kernel returns the owning scheduler.
	Kernel() *Kernel

	// Complete transitions the transient to inactive and fires every
	// registered completion handler, in registration order. Idempotent:
	// calls after the first are no-ops.
	Complete()

	// CompleteAfter arranges for Complete to be invoked once other
	// completes, or immediately if other is already inactive. A nil other
	// is dropped and logged, same as a nil child passed to Add.
	CompleteAfter(other Transient)

	// Then registers a one-shot handler invoked at completion.
	Then(action func())

	addCompletionListener(fn func())
}

// transientBase is the shared implementation embedded by every concrete flow
// object. It is never used directly by application code.
type transientBase struct {
	name      string
	kernel    *Kernel
	active    bool
	listeners []func()
}

func newTransientBase(k *Kernel, name string) transientBase {
	return transientBase{
		name:   name,
		kernel: k,
		active: true,
	}
}

func (t *transientBase) Active() bool   { return t.active }
func (t *transientBase) Name() string   { return t.name }
func (t *transientBase) Kernel() *Kernel { return t.kernel }

func (t *transientBase) Complete() {
	if !t.active {
		return
	}
	t.active = false
	listeners := t.listeners
	t.listeners = nil
	for _, fn := range listeners {
		t.invokeListener(fn)
	}
}

// invokeListener recovers a panicking handler so one faulty listener never
// prevents its siblings from running, and never poisons the kernel.
func (t *transientBase) invokeListener(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			t.log().Error("completion handler fault", &FaultError{Component: "listener", Cause: wrapFault(r)})
		}
	}()
	fn()
}

func (t *transientBase) log() Logger {
	if t.kernel == nil {
		return NoopLogger{}
	}
	return t.kernel.Log()
}

func (t *transientBase) addCompletionListener(fn func()) {
	if !t.active {
		fn()
		return
	}
	t.listeners = append(t.listeners, fn)
}

func (t *transientBase) CompleteAfter(other Transient) {
	if other == nil {
		t.log().Warn("CompleteAfter: nil other dropped")
		return
	}
	if !other.Active() {
		t.Complete()
		return
	}
	other.addCompletionListener(t.Complete)
}

func (t *transientBase) Then(action func()) {
	if action == nil {
		return
	}
	t.addCompletionListener(action)
}
