// Package metrics exposes the Prometheus collectors of the portfolio server.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request duration in seconds
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "path", "status"},
	)

	ActiveViews = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "portfolio_active_views",
			Help: "Number of open page views held in memory",
		},
	)

	FilterSelections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portfolio_filter_selections_total",
			Help: "Project gallery filter selections",
		},
		[]string{"filter"}, // declared filter id or "unknown"
	)

	ThemeToggles = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portfolio_theme_toggles_total",
			Help: "Theme toggles by resulting preference",
		},
		[]string{"theme"},
	)

	ContactSubmissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portfolio_contact_submissions_total",
			Help: "Contact form submissions by outcome",
		},
		[]string{"outcome"}, // succeeded, failed
	)
)

// RecordHTTPRequestDuration observes one handled request.
func RecordHTTPRequestDuration(method, path, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// SetActiveViews updates the open view gauge.
func SetActiveViews(n int) {
	ActiveViews.Set(float64(n))
}

// IncrementFilterSelection counts a gallery filter click.
func IncrementFilterSelection(filter string) {
	FilterSelections.WithLabelValues(filter).Inc()
}

// IncrementThemeToggle counts a theme toggle.
func IncrementThemeToggle(theme string) {
	ThemeToggles.WithLabelValues(theme).Inc()
}

// IncrementContactSubmission counts a settled submission.
func IncrementContactSubmission(outcome string) {
	ContactSubmissions.WithLabelValues(outcome).Inc()
}
