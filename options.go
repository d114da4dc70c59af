package bcf

import "runtime"

type options struct {
	concurrency int
	skipInvalid bool
	logger      *Logger
	metrics     MetricsCollector
}

func defaultOptions() options {
	return options{
		concurrency: runtime.GOMAXPROCS(0),
		logger:      NoopLogger(),
		metrics:     NoopMetricsCollector{},
	}
}

// Option configures batch projection behavior.
type Option func(*options)

// WithConcurrency configures the number of records projected in
// parallel. Values below 1 fall back to 1.
func WithConcurrency(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = 1
		}
		o.concurrency = n
	}
}

// WithSkipInvalid configures the batch to skip records that fail to
// project instead of aborting. Skipped positions are nil in the result.
//
// Skips are logged at warn level when a logger is configured.
func WithSkipInvalid() Option {
	return func(o *options) {
		o.skipInvalid = true
	}
}

// WithLogger configures the logger used by the batch layer. The codec
// itself never logs.
//
// If nil is passed, logging is disabled.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithMetrics configures a metrics collector for the batch layer.
//
// If nil is passed, metrics collection is disabled.
func WithMetrics(collector MetricsCollector) Option {
	return func(o *options) {
		if collector == nil {
			collector = NoopMetricsCollector{}
		}
		o.metrics = collector
	}
}
