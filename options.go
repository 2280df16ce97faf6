package dbscango

import (
	"log/slog"

	"github.com/hupe1980/dbscango/distance"
)

type options struct {
	metric           distance.Metric
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures a Clusterer.
type Option func(*options)

// WithMetric configures the distance metric of the scan index that
// ClusterPoints builds internally. Defaults to Euclidean.
//
// ClusterIndex ignores it: a pre-built index fixes its own metric.
func WithMetric(m distance.Metric) Option {
	return func(o *options) {
		o.metric = m
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// clustering runs.
//
// Example with BasicMetricsCollector:
//
//	metrics := &dbscango.BasicMetricsCollector{}
//	clusterer, err := dbscango.New[index.Coordinate](0.5, 4,
//	    dbscango.WithMetricsCollector(metrics),
//	)
//	// ... cluster ...
//	stats := metrics.GetStats()
//	fmt.Printf("Runs: %d, Avg latency: %dns\n", stats.RunCount, stats.RunAvgNanos)
func WithMetricsCollector(collector MetricsCollector) Option {
	return func(o *options) {
		if collector == nil {
			collector = NoopMetricsCollector{}
		}
		o.metricsCollector = collector
	}
}

// WithLogger configures structured logging for clustering runs.
//
// Example with JSON logging:
//
//	logger := dbscango.NewJSONLogger(slog.LevelDebug)
//	clusterer, err := dbscango.New[City](200, 3, dbscango.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel configures a text logger to stderr with the given level.
// Convenience shorthand for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	opts := options{
		metric:           distance.MetricEuclidean,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}

	for _, fn := range optFns {
		if fn != nil {
			fn(&opts)
		}
	}

	return opts
}
