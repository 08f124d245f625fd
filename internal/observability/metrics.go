package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CommandsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: "uber_slack", Name: "commands_total", Help: "Slash commands handled, by command name"},
		[]string{"command"},
	)
	BookingsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: "uber_slack", Name: "bookings_total", Help: "Ride requests placed with the provider, by booking mode"},
		[]string{"mode"},
	)
	ProviderRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "uber_slack",
			Name:      "provider_request_duration_seconds",
			Help:      "Ride provider API latency distribution",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"path"},
	)
	GeocodeRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: "uber_slack", Name: "geocode_requests_total", Help: "Geocoder lookups, by outcome"},
		[]string{"outcome"},
	)
)
