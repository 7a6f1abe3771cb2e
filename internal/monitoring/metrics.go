// Package monitoring exposes Prometheus metrics for package registration
// and the host HTTP surface.
package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the host.
type Metrics struct {
	// HTTP metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	// Registration metrics
	PackagesRegistered prometheus.Gauge
	ResourcesWired     *prometheus.CounterVec
	ServicesResolved   *prometheus.CounterVec

	startTime time.Time
}

// New creates a metrics collector on its own registry so repeated host
// construction in tests does not collide on the default registerer.
func New(reg *prometheus.Registry) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		startTime: time.Now(),

		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "host_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "host_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
			},
			[]string{"method", "path"},
		),
		PackagesRegistered: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "host_packages_registered",
				Help: "Number of plugin packages registered with the host",
			},
		),
		ResourcesWired: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "host_resources_wired_total",
				Help: "Resources wired into the host, by kind",
			},
			[]string{"kind"},
		),
		ServicesResolved: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "host_services_resolved_total",
				Help: "Container service resolutions, by service name",
			},
			[]string{"service"},
		),
	}
}

// RecordHTTPRequest records one completed HTTP request.
func (m *Metrics) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	m.RequestsTotal.WithLabelValues(method, path, status).Inc()
	m.RequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordServiceResolution counts one container resolution of the named
// service.
func (m *Metrics) RecordServiceResolution(name string) {
	m.ServicesResolved.WithLabelValues(name).Inc()
}

// RecordResource counts one wired resource of the given kind.
func (m *Metrics) RecordResource(kind string) {
	m.ResourcesWired.WithLabelValues(kind).Inc()
}

// Uptime returns time since the collector was created.
func (m *Metrics) Uptime() time.Duration {
	return time.Since(m.startTime)
}
