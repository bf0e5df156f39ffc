package flow

// kernelOptions holds configuration resolved at Kernel construction time.
type kernelOptions struct {
	logger  Logger
	factory *Factory
	name    string
}

// KernelOption configures a Kernel at construction time, in the
// functional-options shape used throughout this package.
type KernelOption interface {
	applyKernel(*kernelOptions)
}

type kernelOptionFunc func(*kernelOptions)

func (f kernelOptionFunc) applyKernel(o *kernelOptions) { f(o) }

// WithLogger sets the Kernel's log sink. Default: NoopLogger.
func WithLogger(l Logger) KernelOption {
	return kernelOptionFunc(func(o *kernelOptions) {
		if l != nil {
			o.logger = l
		}
	})
}

// WithFactory sets the Kernel's Factory. Default: a Factory with no special
// configuration, naming transients via auto-generated UUIDs.
func WithFactory(f *Factory) KernelOption {
	return kernelOptionFunc(func(o *kernelOptions) {
		if f != nil {
			o.factory = f
		}
	})
}

// WithName sets a human-readable name for the kernel itself, used only in
// log correlation for applications running more than one kernel.
func WithName(name string) KernelOption {
	return kernelOptionFunc(func(o *kernelOptions) {
		o.name = name
	})
}

func resolveKernelOptions(opts []KernelOption) *kernelOptions {
	cfg := &kernelOptions{
		logger: NoopLogger{},
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt.applyKernel(cfg)
	}
	return cfg
}
