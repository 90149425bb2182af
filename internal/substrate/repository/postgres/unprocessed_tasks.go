package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/parastake-indexer/internal/substrate/model"
	"github.com/jackc/pgx/v5"
)

// GetUnprocessedTasks returns up to one batch of not processed tasks with entity_id greater than afterID.
func (r *Repository) GetUnprocessedTasks(ctx context.Context, entity model.Entity, afterID int64) ([]model.ProcessingTask, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("get_unprocessed_tasks", err, start)
	}()

	query := `
SELECT ` + taskColumns + `
FROM processing_tasks
WHERE entity = $1
  AND network_id = $2
  AND status = $3
  AND entity_id > $4
ORDER BY entity_id
LIMIT $5`

	rows, err := r.pool.Query(ctx, query, string(entity), r.network.ID, string(model.TaskNotProcessed), afterID, r.batchSize)
	if err != nil {
		return nil, fmt.Errorf("query unprocessed tasks: %w", err)
	}
	tasks, err := collectTasks(rows)
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// GetUnprocessedTask returns the not processed task of the key, or nil.
func (r *Repository) GetUnprocessedTask(ctx context.Context, entity model.Entity, entityID int64) (*model.ProcessingTask, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("get_unprocessed_task", err, start)
	}()

	query := `
SELECT ` + taskColumns + `
FROM processing_tasks
WHERE entity = $1
  AND network_id = $2
  AND status = $3
  AND entity_id = $4
ORDER BY row_id DESC
LIMIT 1`

	task, err := scanTask(r.pool.QueryRow(ctx, query, string(entity), r.network.ID, string(model.TaskNotProcessed), entityID))
	if errors.Is(err, pgx.ErrNoRows) {
		err = nil
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query unprocessed task: %w", err)
	}
	return &task, nil
}
