package assist

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	opDraftReply = "draft_reply"
	opSentiment  = "sentiment"
	opCategorize = "categorize"

	outcomeOK       = "ok"
	outcomeFallback = "fallback"
	outcomeSkipped  = "skipped"
)

var (
	assistCalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "support_desk_assist_calls_total",
			Help: "AI assist operations by outcome.",
		},
		[]string{"operation", "outcome"},
	)
	assistDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "support_desk_assist_duration_seconds",
			Help:    "Latency of AI assist model calls.",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20, 30},
		},
		[]string{"operation"},
	)
)

func init() {
	prometheus.MustRegister(assistCalls, assistDuration)
}

func observe(operation, outcome string, start time.Time) {
	assistCalls.WithLabelValues(operation, outcome).Inc()
	if outcome != outcomeSkipped {
		assistDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	}
}
