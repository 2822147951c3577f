package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds Prometheus counters for the ingestion and query pipelines.
type Metrics struct {
	registry      *prometheus.Registry
	requestsTotal prometheus.Counter
	errorsTotal   prometheus.Counter
	uploadsTotal  prometheus.Counter
	queriesTotal  prometheus.Counter
}

// New creates and registers Prometheus metrics for the service.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	requestsTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "hackrice_requests_total",
		Help: "Total number of HTTP requests received",
	})
	errorsTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "hackrice_errors_total",
		Help: "Total number of HTTP responses with error status (4xx or 5xx)",
	})
	uploadsTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "hackrice_uploads_total",
		Help: "Total number of videos ingested successfully",
	})
	queriesTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "hackrice_queries_total",
		Help: "Total number of clip queries answered successfully",
	})

	registry.MustRegister(
		requestsTotal,
		errorsTotal,
		uploadsTotal,
		queriesTotal,
	)

	return &Metrics{
		registry:      registry,
		requestsTotal: requestsTotal,
		errorsTotal:   errorsTotal,
		uploadsTotal:  uploadsTotal,
		queriesTotal:  queriesTotal,
	}
}

// IncRequests increments the total request counter.
func (m *Metrics) IncRequests() {
	m.requestsTotal.Inc()
}

// IncErrors increments the errors counter.
func (m *Metrics) IncErrors() {
	m.errorsTotal.Inc()
}

// IncUploads increments the successful ingestion counter.
func (m *Metrics) IncUploads() {
	m.uploadsTotal.Inc()
}

// IncQueries increments the answered-query counter.
func (m *Metrics) IncQueries() {
	m.queriesTotal.Inc()
}

// Handler returns an http.Handler that serves Prometheus metrics.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
