package metrics

import "github.com/prometheus/client_golang/prometheus"

const namespace = "hopfield"

// Prometheus holds the collectors of the associative memory.
type Prometheus struct {
	Patterns    prometheus.Counter
	Trainings   prometheus.Counter
	Training    prometheus.Histogram
	Corruptions *prometheus.CounterVec
	Pixels      *prometheus.CounterVec
	Errors      *prometheus.CounterVec
}

// NewPrometheusMetrics creates unregistered collectors.
func NewPrometheusMetrics() Prometheus {
	return Prometheus{
		Patterns: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "patterns_loaded_total",
			Help:      "patterns decoded from the dataset",
		}),
		Trainings: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "trainings_total",
			Help:      "weight matrices built",
		}),
		Training: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "training_duration_seconds",
			Help:      "time to build a weight matrix",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 8),
		}),
		Corruptions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "corruptions_total",
			Help:      "probes generated",
		}, []string{"method"}),
		Pixels: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "corrupted_pixels_total",
			Help:      "pixels changed by corruption",
		}, []string{"method"}),
		Errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "failed operations",
		}, []string{"op"}),
	}
}

// Collectors lists all collectors for registration.
func (p Prometheus) Collectors() []prometheus.Collector {
	return []prometheus.Collector{p.Patterns, p.Trainings, p.Training, p.Corruptions, p.Pixels, p.Errors}
}
