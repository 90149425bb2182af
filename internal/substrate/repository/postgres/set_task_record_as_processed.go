package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/parastake-indexer/internal/substrate/model"
	"github.com/goodnatureofminers/parastake-indexer/internal/substrate/storage"
)

// SetTaskRecordAsProcessed marks the task processed inside tx.
func (r *Repository) SetTaskRecordAsProcessed(ctx context.Context, tx storage.Tx, task model.ProcessingTask) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("set_task_record_as_processed", err, start)
	}()

	const query = `
UPDATE processing_tasks
SET status = $1,
    finish_timestamp = now()
WHERE row_id = $2`

	tag, err := tx.Exec(ctx, query, string(model.TaskProcessed), task.RowID)
	if err != nil {
		return fmt.Errorf("set task processed: %w", err)
	}
	if tag.RowsAffected() != 1 {
		err = fmt.Errorf("set task processed: row %d not updated", task.RowID)
		return err
	}
	return nil
}
