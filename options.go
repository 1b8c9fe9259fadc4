package statlearn

import (
	"log/slog"

	"github.com/zibellina/statlearn/perceptron"
)

type options struct {
	metricsCollector MetricsCollector
	logger           *Logger
	learningRate     float64
	maxEpochs        int
}

// Option configures constructor and training behavior.
type Option func(*options)

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &statlearn.BasicMetricsCollector{}
//	idx, _ := statlearn.NewIndex(points, statlearn.WithMetricsCollector(metrics))
//	// ... use idx ...
//	stats := metrics.GetStats()
//	fmt.Printf("Searches: %d, Avg visited: %d\n", stats.SearchCount, stats.SearchAvgVisited)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := statlearn.NewJSONLogger(slog.LevelInfo)
//	idx, _ := statlearn.NewIndex(points, statlearn.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithLearningRate sets the perceptron step size eta (default 1).
func WithLearningRate(eta float64) Option {
	return func(o *options) {
		o.learningRate = eta
	}
}

// WithMaxEpochs bounds perceptron training (default 1000).
// Zero or negative lets training run until it converges, which never
// happens on data that is not linearly separable.
func WithMaxEpochs(n int) Option {
	return func(o *options) {
		o.maxEpochs = n
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
		learningRate:     perceptron.DefaultOptions.LearningRate,
		maxEpochs:        perceptron.DefaultOptions.MaxEpochs,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
