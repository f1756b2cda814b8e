package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	AssistantReplies = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agrivision_assistant_replies_total",
			Help: "Total number of assistant replies by answering strategy",
		},
		[]string{"strategy"},
	)

	AssistantStrategyFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agrivision_assistant_strategy_failures_total",
			Help: "Total number of strategy attempts that fell through with an error",
		},
		[]string{"strategy"},
	)

	AssistantStrategyDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "agrivision_assistant_strategy_duration_seconds",
			Help:    "Duration of a single strategy attempt in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"strategy"},
	)

	RankedShops = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "agrivision_ranked_shops",
			Help:    "Number of shops returned by a nearby search",
			Buckets: []float64{0, 1, 3, 5, 10, 20, 50},
		},
		[]string{"source"},
	)

	ShopSourceFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "agrivision_shop_source_fallbacks_total",
			Help: "Total number of nearby searches that fell back from the places provider to the directory",
		},
	)
)
