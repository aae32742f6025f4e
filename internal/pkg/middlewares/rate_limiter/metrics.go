package rate_limiter

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RateLimitExceededTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_rate_limited_total",
			Help: "Requests rejected by the process-wide token bucket",
		},
		[]string{"method", "route"},
	)

	RateLimitRetryAfter = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "http_rate_limit_retry_after_seconds",
			Help:    "Retry-After value sent with rejected requests",
			Buckets: []float64{1, 2, 5, 10, 30, 60},
		},
	)
)
