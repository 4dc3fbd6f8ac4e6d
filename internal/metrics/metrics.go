package metrics

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/drakos74/hopfield/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

// Observer is the process wide metrics instance.
var Observer = NewMetrics()

func init() {
	Observer.MustRegister(prometheus.DefaultRegisterer)
}

// Metrics records the memory operations.
type Metrics struct {
	prometheus Prometheus
}

// NewMetrics creates a new unregistered metrics instance.
func NewMetrics() *Metrics {
	return &Metrics{prometheus: NewPrometheusMetrics()}
}

// MustRegister registers all collectors, it panics on duplicate registration.
func (m *Metrics) MustRegister(reg prometheus.Registerer) {
	reg.MustRegister(m.prometheus.Collectors()...)
}

// Loaded records decoded patterns.
func (m *Metrics) Loaded(n int) {
	m.prometheus.Patterns.Add(float64(n))
}

// Trained records a training of the given duration.
func (m *Metrics) Trained(d time.Duration) {
	m.prometheus.Trainings.Inc()
	m.prometheus.Training.Observe(d.Seconds())
}

// Corrupted records a probe and the number of pixels that changed.
func (m *Metrics) Corrupted(method model.Method, changed int) {
	m.prometheus.Corruptions.WithLabelValues(string(method)).Inc()
	m.prometheus.Pixels.WithLabelValues(string(method)).Add(float64(changed))
}

// Failed records a failed operation.
func (m *Metrics) Failed(op string) {
	m.prometheus.Errors.WithLabelValues(op).Inc()
}

// Serve exposes the default registry on addr under /metrics until the context is done.
func Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux}

	go func() {
		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdown); err != nil {
			log.Error().Err(err).Str("addr", addr).Msg("could not stop metrics server")
		}
	}()

	log.Info().Str("addr", addr).Msg("starting metrics server")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("could not start metrics server: %w", err)
	}
	return nil
}
