package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	queueBridgeMessagesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "queue_bridge",
		Name:      "messages_total",
		Help:      "Count of handled job messages by outcome.",
	}, []string{"queue", "outcome"})
	queueBridgeMessageDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "queue_bridge",
		Name:      "message_duration_seconds",
		Help:      "Duration of job message handling.",
		Buckets:   []float64{.01, .05, .1, .5, 1, 2.5, 5, 10, 30, 60, 120, 300},
	}, []string{"queue", "outcome"})
)

// QueueBridge tracks job message outcomes of one queue.
type QueueBridge struct {
	queue string
}

func NewQueueBridge(queue string) *QueueBridge {
	return &QueueBridge{queue: labelOrUnknown(queue)}
}

func (m QueueBridge) ObserveMessage(outcome string, started time.Time) {
	queueBridgeMessagesTotal.WithLabelValues(m.queue, outcome).Inc()
	queueBridgeMessageDuration.WithLabelValues(m.queue, outcome).Observe(time.Since(started).Seconds())
}
