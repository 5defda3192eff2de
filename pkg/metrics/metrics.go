package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Chat turn outcomes
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

var (
	// ChatTurns counts chat turns by outcome
	ChatTurns = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mindspace",
		Subsystem: "chat",
		Name:      "turns_total",
		Help:      "Number of chat turns handled, by outcome.",
	}, []string{"outcome"})

	// CompletionLatency observes completion service round trips
	CompletionLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "mindspace",
		Subsystem: "chat",
		Name:      "completion_duration_seconds",
		Help:      "Latency of completion service calls.",
		Buckets:   prometheus.DefBuckets,
	})

	// ConversationEntries tracks live conversation entries
	ConversationEntries = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "mindspace",
		Subsystem: "chat",
		Name:      "conversation_entries",
		Help:      "Number of conversations held in memory.",
	})

	// SweepEvictions counts entries removed by the idle sweep
	SweepEvictions = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "mindspace",
		Subsystem: "chat",
		Name:      "sweep_evictions_total",
		Help:      "Number of idle conversations evicted.",
	})

	// GifFallbacks counts post images that fell back to the default image
	GifFallbacks = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "mindspace",
		Subsystem: "post",
		Name:      "gif_fallbacks_total",
		Help:      "Number of GIF lookups replaced by the fallback image.",
	})
)
