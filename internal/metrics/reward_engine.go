package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	rewardEngineComputeTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "reward_engine",
		Name:      "computations_total",
		Help:      "Count of round reward computations.",
	}, []string{"network", "status"})
	rewardEngineComputeDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "reward_engine",
		Name:      "computation_duration_seconds",
		Help:      "Duration of round reward computations.",
		Buckets:   []float64{.1, .5, 1, 2.5, 5, 10, 30, 60, 120, 300},
	}, []string{"network", "status"})
	rewardEngineMismatchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "reward_engine",
		Name:      "reconciliation_mismatches_total",
		Help:      "Count of credited amounts that differ from the computed reward.",
	}, []string{"network", "kind"})
)

type RewardEngine struct {
	network string
}

func NewRewardEngine(network string) *RewardEngine {
	return &RewardEngine{network: labelOrUnknown(network)}
}

func (m RewardEngine) ObserveCompute(err error, started time.Time) {
	status := statusOf(err)
	rewardEngineComputeTotal.WithLabelValues(m.network, status).Inc()
	rewardEngineComputeDuration.WithLabelValues(m.network, status).Observe(time.Since(started).Seconds())
}

// ObserveMismatch counts a reconciliation mismatch of the given account kind.
func (m RewardEngine) ObserveMismatch(kind string) {
	rewardEngineMismatchesTotal.WithLabelValues(m.network, kind).Inc()
}
