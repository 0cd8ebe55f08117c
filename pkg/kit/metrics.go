package kit

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics counts endpoint calls and their latency, labelled by endpoint,
// transport and outcome. Each Metrics owns its registry so tests and
// multiple servers in one process do not collide.
type Metrics struct {
	Registry *prometheus.Registry
	calls    *prometheus.CounterVec
	latency  *prometheus.HistogramVec
}

// NewMetrics creates the endpoint collectors under the given namespace.
func NewMetrics(namespace string) *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		calls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "endpoint_calls_total",
			Help:      "Endpoint calls by endpoint, transport and outcome.",
		}, []string{"endpoint", "transport", "outcome"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "endpoint_duration_seconds",
			Help:      "Endpoint latency.",
			Buckets:   prometheus.ExponentialBuckets(0.00005, 4, 8),
		}, []string{"endpoint", "transport"}),
	}
	m.Registry.MustRegister(m.calls, m.latency)
	return m
}

// GaugeFunc registers a gauge whose value is read from f at scrape time.
func (m *Metrics) GaugeFunc(namespace, name, help string, f func() float64) {
	m.Registry.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      name,
		Help:      help,
	}, f))
}

// Middleware records every call of the named endpoint. A nil Metrics
// records nothing.
func (m *Metrics) Middleware(name string) Middleware {
	return func(next Endpoint) Endpoint {
		if m == nil {
			return next
		}
		return func(ctx context.Context, request any) (any, error) {
			start := time.Now()
			resp, err := next(ctx, request)
			transport := GetTransport(ctx)
			outcome := "ok"
			if err != nil {
				outcome = "error"
			}
			m.calls.WithLabelValues(name, transport, outcome).Inc()
			m.latency.WithLabelValues(name, transport).Observe(time.Since(start).Seconds())
			return resp, err
		}
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{Registry: m.Registry})
}
