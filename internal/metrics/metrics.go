// Package metrics exposes Prometheus collectors for the recommender.
//
// Available metrics:
//   - outfit_recommendations_total{outcome}: success, no_match, provider_error
//   - outfit_matched_items: items returned by the catalog matcher (histogram)
//   - weather_provider_requests_total{provider,result}: success, rejected, unavailable
//   - store_errors_total{operation}: failed store reads and writes
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	Recommendations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "outfit_recommendations_total",
			Help: "Total number of recommendation requests by outcome",
		},
		[]string{"outcome"},
	)

	MatchedItems = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "outfit_matched_items",
			Help:    "Number of catalog items matched per recommendation",
			Buckets: []float64{0, 1, 2, 3, 5, 8, 10},
		},
	)

	ProviderRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "weather_provider_requests_total",
			Help: "Total number of weather provider requests by provider and result",
		},
		[]string{"provider", "result"},
	)

	StoreErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_errors_total",
			Help: "Total number of failed document store operations",
		},
		[]string{"operation"},
	)
)
