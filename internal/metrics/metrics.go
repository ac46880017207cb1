// Package metrics holds the Prometheus collectors for the service. They are
// registered on the default registry and scraped from /metrics.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recipe_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "route", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recipe_api_request_duration_seconds",
			Help:    "API request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "recipe_api_active_requests",
			Help: "Requests currently being served",
		},
	)

	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recipe_db_query_duration_seconds",
			Help:    "Duration of PostgreSQL queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recipe_db_query_errors_total",
			Help: "Total number of failed PostgreSQL queries",
		},
		[]string{"operation"},
	)

	SuggestionStoreOps = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recipe_suggestion_store_operations_total",
			Help: "Suggestion set reads and writes against Redis by result",
		},
		[]string{"operation", "result"}, // get|set, hit|miss|error|ok
	)

	SuggestionMatches = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recipe_suggestion_matches",
			Help:    "Number of recipes returned per ingredient suggestion",
			Buckets: []float64{0, 1, 2, 5, 10, 20, 50},
		},
	)
)

func RecordAPIRequest(method, route string, status int, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	APIRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func RecordDBQuery(operation string, duration time.Duration, err error) {
	DBQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
	if err != nil {
		DBQueryErrors.WithLabelValues(operation).Inc()
	}
}

func RecordSuggestionStore(operation, result string) {
	SuggestionStoreOps.WithLabelValues(operation, result).Inc()
}

func RecordSuggestionMatches(n int) {
	SuggestionMatches.Observe(float64(n))
}
