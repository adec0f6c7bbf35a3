package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "overstay"

type Metrics struct {
	registry       *prometheus.Registry
	events         *prometheus.CounterVec
	setups         *prometheus.CounterVec
	stayMinutes    prometheus.Histogram
	requestCount   *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// New registers every collector on its own registry so tests can build
// as many instances as they need.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: reg,
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "webhook",
			Name:      "events_total",
			Help:      "Visitor events by outcome.",
		}, []string{"outcome"}),
		setups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "duration",
			Name:      "setups_total",
			Help:      "Allowed-minutes submissions by result.",
		}, []string{"result"}),
		stayMinutes: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "webhook",
			Name:      "stay_duration_minutes",
			Help:      "Evaluated visitor stay durations.",
			Buckets:   []float64{5, 10, 15, 30, 45, 60, 90, 120, 180, 240},
		}),
		requestCount: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_count",
			Help:      "Number of requests received.",
		}, []string{"route", "status"}),
		requestLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_latency_seconds",
			Help:      "Request latency in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
	}

	reg.MustRegister(m.events, m.setups, m.stayMinutes, m.requestCount, m.requestLatency)
	return m
}

func (m *Metrics) ObserveEvent(outcome string) {
	m.events.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveStay(minutes int) {
	m.stayMinutes.Observe(float64(minutes))
}

func (m *Metrics) ObserveSetup(result string) {
	m.setups.WithLabelValues(result).Inc()
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Middleware counts requests by chi route pattern and response status.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		begin := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		m.requestCount.WithLabelValues(route, strconv.Itoa(status)).Inc()
		m.requestLatency.WithLabelValues(route).Observe(time.Since(begin).Seconds())
	})
}
