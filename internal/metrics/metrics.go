// Package metrics provides Prometheus observability for the resolution
// pipeline.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application. A nil *Metrics
// is valid and records nothing, so tests can skip registration entirely.
type Metrics struct {
	// Resolutions counts resolution attempts by outcome.
	Resolutions *prometheus.CounterVec

	// GeocodeCalls counts geocoding lookups by outcome.
	GeocodeCalls *prometheus.CounterVec

	// GeocodeLatency tracks provider call duration, timeouts included.
	GeocodeLatency prometheus.Histogram

	// AccountsRegistered counts successful registrations.
	AccountsRegistered prometheus.Counter
}

// New creates and registers all metrics on the default registry. Call once
// at startup.
func New() *Metrics {
	return &Metrics{
		Resolutions: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "phonetrace_resolutions_total",
			Help: "Total phone resolution attempts by outcome",
		}, []string{"outcome"}), // outcome: "resolved", "invalid_number", "failed"

		GeocodeCalls: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "phonetrace_geocode_calls_total",
			Help: "Total geocoding provider calls by outcome",
		}, []string{"outcome"}), // outcome: "match", "no_match", "error"

		GeocodeLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "phonetrace_geocode_duration_seconds",
			Help:    "Duration of geocoding provider calls",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),

		AccountsRegistered: promauto.NewCounter(prometheus.CounterOpts{
			Name: "phonetrace_accounts_registered_total",
			Help: "Total accounts registered",
		}),
	}
}

// ObserveResolution records one resolution attempt.
func (m *Metrics) ObserveResolution(outcome string) {
	if m != nil {
		m.Resolutions.WithLabelValues(outcome).Inc()
	}
}

// ObserveGeocode records one geocoding call and its duration.
func (m *Metrics) ObserveGeocode(outcome string, d time.Duration) {
	if m != nil {
		m.GeocodeCalls.WithLabelValues(outcome).Inc()
		m.GeocodeLatency.Observe(d.Seconds())
	}
}

// IncrementAccountsRegistered increments the registration counter by 1.
func (m *Metrics) IncrementAccountsRegistered() {
	if m != nil {
		m.AccountsRegistered.Inc()
	}
}
