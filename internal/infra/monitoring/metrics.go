package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method", "status_code"},
	)

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"route", "method", "status_code"},
	)
)

var (
	SaleMutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sale_mutations_total",
			Help: "Sale save and delete attempts by outcome",
		},
		[]string{"operation", "outcome"},
	)

	SaleMatchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "sale_match_duration_seconds",
			Help:    "Time spent selecting matching sales for one purchasable",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
	)

	SalesMatched = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "sales_matched_per_purchasable",
			Help:    "Number of enabled sales that matched a purchasable",
			Buckets: []float64{0, 1, 2, 3, 5, 8, 13},
		},
	)

	MatchHookVetoesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sale_match_hook_vetoes_total",
			Help: "Matches rejected by a configured hook",
		},
		[]string{"hook"},
	)

	SaleCacheLoadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sale_cache_loads_total",
			Help: "Sale cache population attempts by cache and outcome",
		},
		[]string{"cache", "outcome"},
	)

	SaleEventsPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sale_events_published_total",
			Help: "Sale change events handed to the broker",
		},
		[]string{"type", "outcome"},
	)
)

var (
	DBConnectionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "db_connections_active",
			Help: "Number of acquired database connections",
		},
	)

	DBConnectionsIdle = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "db_connections_idle",
			Help: "Number of idle database connections",
		},
	)
)

const (
	OutcomeSuccess  = "success"
	OutcomeInvalid  = "invalid"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

func RecordSaleMutation(operation, outcome string) {
	SaleMutationsTotal.WithLabelValues(operation, outcome).Inc()
}

func RecordSaleMatch(start time.Time, matched int) {
	SaleMatchDuration.Observe(time.Since(start).Seconds())
	SalesMatched.Observe(float64(matched))
}

func RecordHookVeto(hook string) {
	MatchHookVetoesTotal.WithLabelValues(hook).Inc()
}

func RecordCacheLoad(cache string, err error) {
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeError
	}
	SaleCacheLoadsTotal.WithLabelValues(cache, outcome).Inc()
}

func RecordEventPublished(eventType string, err error) {
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeError
	}
	SaleEventsPublishedTotal.WithLabelValues(eventType, outcome).Inc()
}
