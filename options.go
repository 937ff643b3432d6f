package blockvec

type options struct {
	arena   *Arena
	logger  *Logger
	metrics MetricsCollector
}

// Option configures block and owning-vector allocation.
type Option func(*options)

// WithArena allocates storage from a instead of DefaultArena.
//
// If nil is passed, DefaultArena is used.
func WithArena(a *Arena) Option {
	return func(o *options) {
		if a == nil {
			a = defaultArena
		}
		o.arena = a
	}
}

// WithLogger configures the logger for allocation and release events.
// Events are logged at debug level; failures at error level.
//
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = noopLogger
		}
		o.logger = l
	}
}

// WithMetricsCollector configures a metrics collector for allocations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &blockvec.BasicMetricsCollector{}
//	v, _ := blockvec.Alloc[float64](1024, blockvec.WithMetricsCollector(metrics))
//	defer v.Release()
//	stats := metrics.GetStats()
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metrics = mc
	}
}

func applyOptions(opts []Option) options {
	o := options{
		arena:   defaultArena,
		logger:  noopLogger,
		metrics: NoopMetricsCollector{},
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
