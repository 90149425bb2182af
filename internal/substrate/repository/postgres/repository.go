package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/goodnatureofminers/parastake-indexer/internal/substrate/model"
	"github.com/goodnatureofminers/parastake-indexer/internal/substrate/storage"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const defaultBatchSize = 1000

// Pool is the part of pgxpool.Pool the repository depends on.
type Pool interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Close()
}

// Repository stores processing tasks and staking results of one network.
type Repository struct {
	pool      Pool
	metrics   Metrics
	network   model.Network
	batchSize int
	logger    *zap.Logger
}

// NewRepository connects to Postgres and verifies the connection.
func NewRepository(ctx context.Context, dsn string, network model.Network, batchSize int, metrics Metrics, logger *zap.Logger) (*Repository, error) {
	if dsn == "" {
		return nil, errors.New("postgres dsn is required")
	}

	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse postgres dsn: %w", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("open postgres pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return newRepository(pool, network, batchSize, metrics, logger), nil
}

func newRepository(pool Pool, network model.Network, batchSize int, metrics Metrics, logger *zap.Logger) *Repository {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	return &Repository{
		pool:      pool,
		metrics:   metrics,
		network:   network,
		batchSize: batchSize,
		logger:    logger.Named("postgresRepository"),
	}
}

// Begin opens a transaction for one job.
func (r *Repository) Begin(ctx context.Context) (storage.Tx, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	return tx, nil
}

// Close releases the pool.
func (r *Repository) Close() {
	r.pool.Close()
}

const taskColumns = `row_id, entity, entity_id, network_id, status, collect_uid, attempts, start_timestamp, finish_timestamp, data`

type scanner interface {
	Scan(dest ...any) error
}

func scanTask(row scanner) (model.ProcessingTask, error) {
	var (
		task   model.ProcessingTask
		entity string
		status string
		data   []byte
	)
	if err := row.Scan(
		&task.RowID,
		&entity,
		&task.EntityID,
		&task.NetworkID,
		&status,
		&task.CollectUID,
		&task.Attempts,
		&task.StartTimestamp,
		&task.FinishTimestamp,
		&data,
	); err != nil {
		return task, err
	}
	task.Entity = model.Entity(entity)
	task.Status = model.TaskStatus(status)
	task.Data = data
	return task, nil
}

func collectTasks(rows pgx.Rows) ([]model.ProcessingTask, error) {
	defer rows.Close()

	var tasks []model.ProcessingTask
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tasks: %w", err)
	}
	return tasks, nil
}
