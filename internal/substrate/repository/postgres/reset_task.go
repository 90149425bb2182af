package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/parastake-indexer/internal/substrate/model"
	"github.com/jackc/pgx/v5"
)

// ResetTask makes a task schedulable again under a new collect uid. For rounds the stored staking rows
// are removed in the same transaction so the replay can insert them again. It returns nil when the task
// does not exist.
func (r *Repository) ResetTask(ctx context.Context, entity model.Entity, entityID int64, collectUID string) (_ *model.ProcessingTask, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("reset_task", err, start)
	}()

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	query := `
SELECT ` + taskColumns + `
FROM processing_tasks
WHERE entity = $1
  AND entity_id = $2
  AND network_id = $3
ORDER BY row_id DESC
LIMIT 1
FOR UPDATE`

	task, err := scanTask(tx.QueryRow(ctx, query, string(entity), entityID, r.network.ID))
	if errors.Is(err, pgx.ErrNoRows) {
		err = tx.Rollback(ctx)
		if err != nil {
			return nil, fmt.Errorf("rollback: %w", err)
		}
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("lock task: %w", err)
	}

	if entity == model.EntityRound {
		for _, table := range []string{"delegators", "collators", "rounds"} {
			if _, err = tx.Exec(ctx, `DELETE FROM `+table+` WHERE round_id = $1 AND network_id = $2`, entityID, r.network.ID); err != nil {
				return nil, fmt.Errorf("delete %s of round %d: %w", table, entityID, err)
			}
		}
	}

	const update = `
UPDATE processing_tasks
SET status = $1,
    collect_uid = $2,
    finish_timestamp = NULL,
    start_timestamp = now()
WHERE row_id = $3
RETURNING start_timestamp`

	if err = tx.QueryRow(ctx, update, string(model.TaskNotProcessed), collectUID, task.RowID).Scan(&task.StartTimestamp); err != nil {
		return nil, fmt.Errorf("reset task: %w", err)
	}
	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	task.Status = model.TaskNotProcessed
	task.CollectUID = collectUID
	task.FinishTimestamp = nil
	return &task, nil
}
