package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Action names used as metric labels
const (
	ActionBid     = "bid"
	ActionRestart = "restart"
)

// Recorder collects submission metrics
type Recorder interface {
	RecordSubmission(action, outcome string, duration time.Duration)
	RecordHTTPRequest(method, route string, status int, duration time.Duration)
}

// NoOp is a Recorder for when metrics aren't needed
type NoOp struct{}

func (NoOp) RecordSubmission(action, outcome string, duration time.Duration)            {}
func (NoOp) RecordHTTPRequest(method, route string, status int, duration time.Duration) {}

// Prometheus implements Recorder on its own registry
type Prometheus struct {
	registry *prometheus.Registry

	submissionsTotal   *prometheus.CounterVec
	submissionDuration *prometheus.HistogramVec
	httpRequestsTotal  *prometheus.CounterVec
	httpDuration       *prometheus.HistogramVec
}

func NewPrometheus() *Prometheus {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Prometheus{
		registry: reg,
		submissionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "auctions",
				Subsystem: "client",
				Name:      "submissions_total",
				Help:      "Bid and restart submissions by outcome",
			},
			[]string{"action", "outcome"},
		),
		submissionDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "auctions",
				Subsystem: "client",
				Name:      "submission_duration_seconds",
				Help:      "Backend round trip for submissions",
				Buckets:   prometheus.ExponentialBuckets(0.005, 2, 14), // 5ms to ~41s
			},
			[]string{"action"},
		),
		httpRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "auctions",
				Subsystem: "api",
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		httpDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "auctions",
				Subsystem: "api",
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.001, 2, 15),
			},
			[]string{"method", "route"},
		),
	}
}

func (p *Prometheus) RecordSubmission(action, outcome string, duration time.Duration) {
	p.submissionsTotal.WithLabelValues(action, outcome).Inc()
	p.submissionDuration.WithLabelValues(action).Observe(duration.Seconds())
}

func (p *Prometheus) RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	p.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	p.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// Registry exposes the underlying registry, mainly for tests
func (p *Prometheus) Registry() *prometheus.Registry {
	return p.registry
}

// Handler serves the registry in the Prometheus exposition format
func (p *Prometheus) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{})
}
