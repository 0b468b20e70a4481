package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomePriced    = "priced"
	OutcomePriceless = "priceless"
	OutcomeInvalid   = "invalid"
	OutcomeMalformed = "malformed"
)

var (
	ValuationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dowry_valuations_total",
			Help: "Total number of valuation requests by outcome",
		},
		[]string{"outcome"},
	)

	ValidationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dowry_validation_failures_total",
			Help: "Per-field validation failures",
		},
		[]string{"field", "code"},
	)

	ValuationAmount = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "dowry_valuation_amount_rupees",
			Help:    "Distribution of non-zero valuation amounts",
			Buckets: []float64{50000, 200000, 500000, 1000000, 2500000, 5000000, 10000000},
		},
	)

	FeedbackTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dowry_feedback_total",
			Help: "Feedback messages by delivery status",
		},
		[]string{"status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
)
