package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the dashboard service.
type Metrics struct {
	LoginsTotal  prometheus.Counter
	AuthFailures prometheus.Counter

	SearchesTotal    *prometheus.CounterVec
	SubmissionsTotal *prometheus.CounterVec

	BackendErrors  *prometheus.CounterVec
	BackendLatency *prometheus.HistogramVec
}

// New creates and registers all Prometheus metrics on the default registerer.
func New() *Metrics {
	return &Metrics{
		LoginsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "remessa_logins_total",
			Help: "Total number of successful directory logins",
		}),
		AuthFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "remessa_auth_failures_total",
			Help: "Total number of failed login attempts",
		}),
		SearchesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "remessa_searches_total",
			Help: "Total number of searches by route and outcome",
		}, []string{"rota", "resultado"}),
		SubmissionsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "remessa_submissions_total",
			Help: "Total number of record submissions by outcome",
		}, []string{"resultado"}),
		BackendErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "remessa_backend_errors_total",
			Help: "Total number of backend transport failures by kind",
		}, []string{"kind"}),
		BackendLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "remessa_backend_latency_seconds",
			Help:    "Latency of backend requests in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"operacao"}),
	}
}
