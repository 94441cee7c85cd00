// Package metrics provides Prometheus metrics for the portfolio server.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector holds Prometheus metrics for folio.
type Collector struct {
	requestsTotal      *prometheus.CounterVec
	requestDuration    *prometheus.HistogramVec
	chatRequests       *prometheus.CounterVec
	contactSubmissions *prometheus.CounterVec

	registry *prometheus.Registry
}

// NewCollector creates a collector registered on its own registry, alongside
// the Go runtime and process collectors.
func NewCollector() *Collector {
	c := &Collector{
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "folio_http_requests_total",
				Help: "Total HTTP requests by route pattern",
			},
			[]string{"route", "method", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "folio_http_request_duration_seconds",
				Help:    "HTTP request duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route", "method"},
		),
		chatRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "folio_chat_requests_total",
				Help: "Chat requests by outcome",
			},
			[]string{"outcome"},
		),
		contactSubmissions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "folio_contact_submissions_total",
				Help: "Contact form submissions by outcome",
			},
			[]string{"outcome"},
		),
		registry: prometheus.NewRegistry(),
	}

	c.registry.MustRegister(
		c,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return c
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	c.requestsTotal.Describe(ch)
	c.requestDuration.Describe(ch)
	c.chatRequests.Describe(ch)
	c.contactSubmissions.Describe(ch)
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.requestsTotal.Collect(ch)
	c.requestDuration.Collect(ch)
	c.chatRequests.Collect(ch)
	c.contactSubmissions.Collect(ch)
}

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// RecordRequest records one served HTTP request.
func (c *Collector) RecordRequest(route, method string, status int, d time.Duration) {
	c.requestsTotal.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	c.requestDuration.WithLabelValues(route, method).Observe(d.Seconds())
}

// Chat outcomes.
const (
	ChatOK          = "ok"
	ChatUnavailable = "unavailable"
	ChatInvalid     = "invalid"
	ChatUpstream    = "upstream_error"
)

// RecordChat records a chat request outcome.
func (c *Collector) RecordChat(outcome string) {
	c.chatRequests.WithLabelValues(outcome).Inc()
}

// Contact outcomes.
const (
	ContactAccepted = "accepted"
	ContactRejected = "rejected"
)

// RecordContact records a contact submission outcome.
func (c *Collector) RecordContact(outcome string) {
	c.contactSubmissions.WithLabelValues(outcome).Inc()
}
