package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	taskMonitorStuckTasks = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "task_monitor",
		Name:      "stuck_tasks",
		Help:      "Unfinished tasks older than the monitor threshold, capped by the scan limit.",
	}, []string{"network", "entity"})
	taskMonitorMissingRounds = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "task_monitor",
		Name:      "missing_rounds",
		Help:      "Scheduled round ids without a stored round, capped by the scan limit.",
	}, []string{"network"})
	taskMonitorChecksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "task_monitor",
		Name:      "checks_total",
		Help:      "Count of task monitor scans.",
	}, []string{"network", "status"})
)

type TaskMonitor struct {
	network string
}

func NewTaskMonitor(network string) *TaskMonitor {
	return &TaskMonitor{network: labelOrUnknown(network)}
}

func (m TaskMonitor) SetStuckTasks(entity string, count int) {
	taskMonitorStuckTasks.WithLabelValues(m.network, entity).Set(float64(count))
}

func (m TaskMonitor) SetMissingRounds(count int) {
	taskMonitorMissingRounds.WithLabelValues(m.network).Set(float64(count))
}

func (m TaskMonitor) ObserveCheck(err error, _ time.Time) {
	taskMonitorChecksTotal.WithLabelValues(m.network, statusOf(err)).Inc()
}
