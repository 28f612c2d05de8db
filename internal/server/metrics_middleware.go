package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/brk3/weekly-habits/pkg/habit"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "habits_http_requests_total",
			Help: "Total number of HTTP requests by endpoint, method, and status",
		},
		[]string{"endpoint", "method", "status_code"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "habits_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint", "method", "status_code"},
	)

	habitsTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "habits_total",
			Help: "Number of tracked habits",
		},
	)

	sectionsTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "habits_sections_total",
			Help: "Number of sections",
		},
	)

	habitsGoalMet = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "habits_goal_met",
			Help: "Number of habits that met their weekly goal this week",
		},
	)

	weeklyAverageProgress = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "habits_weekly_average_progress",
			Help: "Completed over possible completions this week, in percent",
		},
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

func metricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(wrapped, r)

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(wrapped.statusCode)
		endpoint := r.URL.Path
		// the route pattern keeps habit and section ids out of the label set
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			endpoint = rctx.RoutePattern()
		}

		httpRequestsTotal.WithLabelValues(endpoint, r.Method, statusCode).Inc()
		httpRequestDuration.WithLabelValues(endpoint, r.Method, statusCode).Observe(duration)
	})
}

func UpdateTotals(sections int, sum habit.WeeklySummary) {
	sectionsTotal.Set(float64(sections))
	habitsTotal.Set(float64(sum.TotalHabits))
	habitsGoalMet.Set(float64(sum.HabitsAchievedGoal))
	weeklyAverageProgress.Set(float64(sum.AverageProgress))
}
