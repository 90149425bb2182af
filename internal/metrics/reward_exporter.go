package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	rewardExporterBatchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "reward_exporter",
		Name:      "batches_total",
		Help:      "Count of exported round batches.",
	}, []string{"network", "status"})
	rewardExporterRoundsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "reward_exporter",
		Name:      "rounds_total",
		Help:      "Count of rounds in exported batches.",
	}, []string{"network", "status"})
	rewardExporterBatchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "reward_exporter",
		Name:      "batch_duration_seconds",
		Help:      "Duration of exported round batches.",
		Buckets:   []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
	}, []string{"network", "status"})
)

type RewardExporter struct {
	network string
}

func NewRewardExporter(network string) *RewardExporter {
	return &RewardExporter{network: labelOrUnknown(network)}
}

func (m RewardExporter) ObserveExport(err error, rounds int, started time.Time) {
	status := statusOf(err)
	rewardExporterBatchesTotal.WithLabelValues(m.network, status).Inc()
	rewardExporterRoundsTotal.WithLabelValues(m.network, status).Add(float64(rounds))
	rewardExporterBatchDuration.WithLabelValues(m.network, status).Observe(time.Since(started).Seconds())
}
