package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/parastake-indexer/internal/substrate/model"
	"github.com/jackc/pgx/v5"
)

// AddProcessingTask schedules a task. It returns true when the task is queued, either by this call or
// by an earlier not processed row, and false when a row in another status already exists.
func (r *Repository) AddProcessingTask(ctx context.Context, task model.ProcessingTask) (added bool, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("add_processing_task", err, start)
	}()

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	const selectQuery = `
SELECT status
FROM processing_tasks
WHERE entity = $1
  AND entity_id = $2
  AND network_id = $3
ORDER BY row_id DESC
LIMIT 1
FOR UPDATE`

	var status string
	err = tx.QueryRow(ctx, selectQuery, string(task.Entity), task.EntityID, r.network.ID).Scan(&status)
	switch {
	case err == nil:
		if err = tx.Commit(ctx); err != nil {
			return false, fmt.Errorf("commit: %w", err)
		}
		return model.TaskStatus(status) == model.TaskNotProcessed, nil
	case !errors.Is(err, pgx.ErrNoRows):
		return false, fmt.Errorf("query existing task: %w", err)
	}

	const insertQuery = `
INSERT INTO processing_tasks (
	entity,
	entity_id,
	network_id,
	status,
	collect_uid,
	attempts,
	start_timestamp,
	data
) VALUES ($1, $2, $3, $4, $5, 0, now(), $6)`

	data := []byte(task.Data)
	if len(data) == 0 {
		data = []byte("{}")
	}
	if _, err = tx.Exec(ctx, insertQuery,
		string(task.Entity),
		task.EntityID,
		r.network.ID,
		string(model.TaskNotProcessed),
		task.CollectUID,
		data,
	); err != nil {
		return false, fmt.Errorf("insert task: %w", err)
	}
	if err = tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("commit: %w", err)
	}
	return true, nil
}
