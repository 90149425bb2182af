// Package metrics holds the Prometheus collectors of the indexer components.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "parastake"

var operationLabels = []string{"operation", "network", "status"}

var (
	postgresRepositoryOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "postgres_repository",
		Name:      "operations_total",
		Help:      "Count of Postgres repository operations.",
	}, operationLabels)
	postgresRepositoryOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "postgres_repository",
		Name:      "operation_duration_seconds",
		Help:      "Duration of Postgres repository operations.",
		Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
	}, operationLabels)

	clickhouseRepositoryOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "clickhouse_repository",
		Name:      "operations_total",
		Help:      "Count of ClickHouse repository operations.",
	}, operationLabels)
	clickhouseRepositoryOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "clickhouse_repository",
		Name:      "operation_duration_seconds",
		Help:      "Duration of ClickHouse repository operations.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 15, 20, 30},
	}, operationLabels)

	chainClientOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "chain_client",
		Name:      "operations_total",
		Help:      "Count of node RPC and Sidecar reads.",
	}, operationLabels)
	chainClientOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "chain_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of node RPC and Sidecar reads.",
		Buckets:   prometheus.DefBuckets,
	}, operationLabels)
)

// operations records outcome and duration of named operations against one network.
type operations struct {
	network  string
	total    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func (m operations) Observe(operation string, err error, started time.Time) {
	status := statusOf(err)
	m.total.WithLabelValues(operation, m.network, status).Inc()
	m.duration.WithLabelValues(operation, m.network, status).Observe(time.Since(started).Seconds())
}

// PostgresRepository tracks task store and staking repository operations.
type PostgresRepository struct{ operations }

func NewPostgresRepository(network string) *PostgresRepository {
	return &PostgresRepository{operations{
		network:  labelOrUnknown(network),
		total:    postgresRepositoryOperationsTotal,
		duration: postgresRepositoryOperationDuration,
	}}
}

// ClickhouseRepository tracks analytics mirror writes.
type ClickhouseRepository struct{ operations }

func NewClickhouseRepository(network string) *ClickhouseRepository {
	return &ClickhouseRepository{operations{
		network:  labelOrUnknown(network),
		total:    clickhouseRepositoryOperationsTotal,
		duration: clickhouseRepositoryOperationDuration,
	}}
}

// ChainClient tracks chain state reads.
type ChainClient struct{ operations }

func NewChainClient(network string) *ChainClient {
	return &ChainClient{operations{
		network:  labelOrUnknown(network),
		total:    chainClientOperationsTotal,
		duration: chainClientOperationDuration,
	}}
}

func statusOf(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

func labelOrUnknown(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
