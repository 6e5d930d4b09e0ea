package telemetry

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// ErrInvalidConfig is returned when the metrics configuration is invalid.
	ErrInvalidConfig = errors.New("telemetry: invalid metrics configuration")

	// ErrRegistrationFailed is returned when metric registration fails.
	ErrRegistrationFailed = errors.New("telemetry: metric registration failed")
)

// MetricsConfig configures NewMetrics.
type MetricsConfig struct {
	// Namespace prefixes every metric name. Required.
	Namespace string

	// Registry is the Prometheus registry to use.
	// If nil, uses prometheus.DefaultRegisterer.
	Registry prometheus.Registerer

	// ExpansionBuckets bounds the expansions and path length histograms.
	// If nil, uses default buckets.
	ExpansionBuckets []float64

	// DurationBuckets bounds the duration histogram (seconds).
	// If nil, uses default buckets.
	DurationBuckets []float64
}

// DefaultMetricsConfig returns the configuration used by the CLI.
func DefaultMetricsConfig() *MetricsConfig {
	return &MetricsConfig{
		Namespace:        "tilesolve",
		ExpansionBuckets: prometheus.ExponentialBuckets(1, 4, 12),
		DurationBuckets:  []float64{0.0001, 0.001, 0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30},
	}
}

// Validate checks required fields.
func (c *MetricsConfig) Validate() error {
	if c.Namespace == "" {
		return errors.New("namespace is required")
	}
	return nil
}

// Metrics holds the search collectors.
type Metrics struct {
	searches   *prometheus.CounterVec
	expansions *prometheus.HistogramVec
	pathLength *prometheus.HistogramVec
	duration   *prometheus.HistogramVec
}

// NewMetrics creates and registers the search collectors.
func NewMetrics(config *MetricsConfig) (*Metrics, error) {
	if config == nil {
		return nil, ErrInvalidConfig
	}
	if err := config.Validate(); err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}

	cfg := *config // Copy to avoid mutating input
	if cfg.ExpansionBuckets == nil {
		cfg.ExpansionBuckets = DefaultMetricsConfig().ExpansionBuckets
	}
	if cfg.DurationBuckets == nil {
		cfg.DurationBuckets = DefaultMetricsConfig().DurationBuckets
	}
	registry := cfg.Registry
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		searches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Name:      "searches_total",
				Help:      "Total searches by domain and result",
			},
			[]string{"domain", "result"},
		),
		expansions: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Name:      "search_expansions",
				Help:      "States moved to the interior list per search",
				Buckets:   cfg.ExpansionBuckets,
			},
			[]string{"domain"},
		),
		pathLength: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Name:      "search_path_length",
				Help:      "Number of actions in found solutions",
				Buckets:   cfg.ExpansionBuckets,
			},
			[]string{"domain"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Name:      "search_duration_seconds",
				Help:      "Wall-clock duration of searches in seconds",
				Buckets:   cfg.DurationBuckets,
			},
			[]string{"domain", "result"},
		),
	}

	for _, c := range []prometheus.Collector{m.searches, m.expansions, m.pathLength, m.duration} {
		if err := registry.Register(c); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrRegistrationFailed, err)
		}
	}

	return m, nil
}

// Observe records one finished search.
func (m *Metrics) Observe(o Outcome) {
	result := o.Result()
	m.searches.WithLabelValues(o.Domain, result).Inc()
	m.expansions.WithLabelValues(o.Domain).Observe(float64(o.Expanded))
	m.duration.WithLabelValues(o.Domain, result).Observe(o.Duration.Seconds())
	if o.Found {
		m.pathLength.WithLabelValues(o.Domain).Observe(float64(o.PathLength))
	}
}
