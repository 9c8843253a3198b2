package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Report metrics
	ReportsTotal          *prometheus.CounterVec
	ReportDuration        *prometheus.HistogramVec
	UpstreamFailuresTotal *prometheus.CounterVec
	OrdersScannedTotal    *prometheus.CounterVec
	SynthesizedDaysTotal  prometheus.Counter
}

// NewMetrics creates and registers all Prometheus metrics
func NewMetrics(registry prometheus.Registerer) *Metrics {
	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "music_metrics_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "music_metrics_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),

		ReportsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "music_metrics_reports_total",
				Help: "Total number of generated reports",
			},
			[]string{"report", "code"},
		),
		ReportDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "music_metrics_report_duration_seconds",
				Help:    "Report generation duration in seconds",
				Buckets: []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"report"},
		),
		UpstreamFailuresTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "music_metrics_upstream_failures_total",
				Help: "Total number of failed collaborator calls",
			},
			[]string{"upstream"},
		),
		OrdersScannedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "music_metrics_orders_scanned_total",
				Help: "Total number of orders folded into sales figures",
			},
			[]string{"result"},
		),
		SynthesizedDaysTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "music_metrics_synthesized_days_total",
				Help: "Total number of synthesized daily metrics",
			},
		),
	}

	registry.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.ReportsTotal,
		m.ReportDuration,
		m.UpstreamFailuresTotal,
		m.OrdersScannedTotal,
		m.SynthesizedDaysTotal,
	)

	return m
}

// HTTPMetricsMiddleware instruments HTTP requests. The route label is the chi route
// pattern, so path parameters do not create new series.
func HTTPMetricsMiddleware(metrics *Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			route := "unmatched"
			if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
				route = rctx.RoutePattern()
			}
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			metrics.HTTPRequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
			metrics.HTTPRequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
		})
	}
}

// Handler exposes the metrics of gatherer.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
