package app

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type metrics struct {
	registry    *prometheus.Registry
	requests    *prometheus.CounterVec
	latency     *prometheus.HistogramVec
	mutations   *prometheus.CounterVec
	rateLimited prometheus.Counter
}

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "taskboard_http_requests_total",
				Help: "HTTP requests by route and status code",
			},
			[]string{"route", "status"},
		),
		latency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "taskboard_http_request_duration_seconds",
				Help:    "HTTP request latency by route",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route"},
		),
		mutations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "taskboard_task_mutations_total",
				Help: "Task repository mutations by operation",
			},
			[]string{"op"},
		),
		rateLimited: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "taskboard_rate_limited_total",
			Help: "Requests rejected by the per-client rate limiter",
		}),
	}
	m.registry.MustRegister(m.requests, m.latency, m.mutations, m.rateLimited)
	return m
}

// trackTasks exports the current task counts, read at scrape time.
func (m *metrics) trackTasks(stats func() (int, int)) {
	m.registry.MustRegister(
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "taskboard_tasks",
			Help: "Tasks currently on the board",
		}, func() float64 {
			total, _ := stats()
			return float64(total)
		}),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "taskboard_tasks_completed",
			Help: "Tasks currently in the done lane",
		}, func() float64 {
			_, completed := stats()
			return float64(completed)
		}),
	)
}

func (m *metrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
