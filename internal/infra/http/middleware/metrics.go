package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	activeConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_connections",
			Help: "Number of active HTTP connections",
		},
	)

	leadsCaptured = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "leads_captured_total",
			Help: "Total number of leads captured",
		},
		[]string{"service"},
	)

	leadStatusUpdates = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lead_status_updates_total",
			Help: "Total number of lead status transitions",
		},
		[]string{"status"},
	)

	activitiesPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "activities_published_total",
			Help: "Total number of activity events published to the queue",
		},
		[]string{"type"},
	)

	activitiesDropped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "activities_dropped_total",
			Help: "Total number of activity events dropped on publish failure",
		},
		[]string{"type"},
	)
)

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		activeConnections.Inc()
		defer activeConnections.Dec()

		rw := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(rw.statusCode)

		httpRequestsTotal.WithLabelValues(r.Method, r.URL.Path, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, r.URL.Path).Observe(duration)
	})
}

func RecordLeadCaptured(serviceID string) {
	leadsCaptured.WithLabelValues(serviceID).Inc()
}

func RecordLeadStatusUpdate(status string) {
	leadStatusUpdates.WithLabelValues(status).Inc()
}

func RecordActivityPublished(activityType string) {
	activitiesPublished.WithLabelValues(activityType).Inc()
}

func RecordActivityDropped(activityType string) {
	activitiesDropped.WithLabelValues(activityType).Inc()
}
