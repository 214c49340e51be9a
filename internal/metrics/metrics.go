package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Notification outcomes.
const (
	ResultSent    = "sent"
	ResultFailed  = "failed"
	ResultSkipped = "skipped"
)

// Recorder owns the application's Prometheus registry and collectors.
type Recorder struct {
	registry         *prometheus.Registry
	notifications    *prometheus.CounterVec
	schedulerRunning prometheus.Gauge
	httpRequests     *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
}

// New creates a Recorder backed by a fresh registry.
func New() *Recorder {
	reg := prometheus.NewRegistry()
	r := &Recorder{
		registry: reg,
		notifications: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "goldsignal_notifications_total",
				Help: "Signal notifications by outcome",
			},
			[]string{"result"},
		),
		schedulerRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "goldsignal_scheduler_running",
			Help: "1 while the periodic scheduler is running",
		}),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"route", "method", "status"},
		),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
			},
			[]string{"route", "method"},
		),
	}
	reg.MustRegister(
		r.notifications,
		r.schedulerRunning,
		r.httpRequests,
		r.httpDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

// RecordNotification counts one notifier invocation by result.
func (r *Recorder) RecordNotification(result string) {
	r.notifications.WithLabelValues(result).Inc()
}

// SetSchedulerRunning mirrors the scheduler state.
func (r *Recorder) SetSchedulerRunning(running bool) {
	if running {
		r.schedulerRunning.Set(1)
	} else {
		r.schedulerRunning.Set(0)
	}
}

// ObserveHTTP records a finished HTTP request.
func (r *Recorder) ObserveHTTP(route, method, status string, seconds float64) {
	r.httpRequests.WithLabelValues(route, method, status).Inc()
	r.httpDuration.WithLabelValues(route, method).Observe(seconds)
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
