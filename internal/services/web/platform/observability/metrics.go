package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/louisbranch/buildspace/internal/services/web/platform/httpx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HTTPMetrics holds the Prometheus collectors for served requests.
type HTTPMetrics struct {
	registry *prometheus.Registry

	RequestsTotal   *prometheus.CounterVec   // buildspace_web_requests_total{route,status}
	RequestDuration *prometheus.HistogramVec // buildspace_web_request_duration_seconds{route}
	InFlight        prometheus.Gauge         // buildspace_web_requests_in_flight
}

// NewHTTPMetrics registers request collectors on registry. A nil registry gets
// a fresh one so tests and multiple handlers never collide.
func NewHTTPMetrics(registry *prometheus.Registry) *HTTPMetrics {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	factory := promauto.With(registry)
	return &HTTPMetrics{
		registry: registry,
		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "buildspace_web_requests_total",
			Help: "Total HTTP requests by matched route and status code",
		}, []string{"route", "status"}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "buildspace_web_request_duration_seconds",
			Help:    "HTTP request duration in seconds by matched route",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		InFlight: factory.NewGauge(prometheus.GaugeOpts{
			Name: "buildspace_web_requests_in_flight",
			Help: "HTTP requests currently being served",
		}),
	}
}

// Registry returns the registry the collectors are registered on.
func (m *HTTPMetrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in Prometheus exposition format.
func (m *HTTPMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// RecordRequest records one completed request.
func (m *HTTPMetrics) RecordRequest(route string, status int, elapsed time.Duration) {
	m.RequestsTotal.WithLabelValues(route, strconv.Itoa(status)).Inc()
	m.RequestDuration.WithLabelValues(route).Observe(elapsed.Seconds())
}

// Middleware records every request. It must sit directly around the mux so
// the matched pattern is visible after dispatch.
func (m *HTTPMetrics) Middleware() httpx.Middleware {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			started := time.Now()
			m.InFlight.Inc()
			defer m.InFlight.Dec()
			rec := newStatusRecorder(w)
			next.ServeHTTP(rec, r)
			m.RecordRequest(routeLabel(r), rec.Status(), time.Since(started))
		})
	}
}
