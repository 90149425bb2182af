package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/parastake-indexer/internal/substrate/model"
	"github.com/goodnatureofminers/parastake-indexer/internal/substrate/storage"
	"go.uber.org/zap"
)

// ReadTaskAndLockRow locks the task rows of the key inside tx. It returns nil without error when no row,
// more than one row, or a row with another collect uid matches.
func (r *Repository) ReadTaskAndLockRow(
	ctx context.Context,
	tx storage.Tx,
	entity model.Entity,
	entityID int64,
	collectUID string,
) (*model.ProcessingTask, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("read_task_and_lock_row", err, start)
	}()

	query := `
SELECT ` + taskColumns + `
FROM processing_tasks
WHERE entity = $1
  AND entity_id = $2
  AND network_id = $3
ORDER BY row_id DESC
FOR UPDATE`

	rows, err := tx.Query(ctx, query, string(entity), entityID, r.network.ID)
	if err != nil {
		return nil, fmt.Errorf("lock task rows: %w", err)
	}
	tasks, err := collectTasks(rows)
	if err != nil {
		return nil, err
	}

	logger := r.logger.With(
		zap.String("entity", string(entity)),
		zap.Int64("entity_id", entityID),
		zap.String("collect_uid", collectUID),
	)
	switch {
	case len(tasks) == 0:
		logger.Warn("processing task not found")
		return nil, nil
	case len(tasks) > 1:
		logger.Warn("found more than one processing task for key", zap.Int("rows", len(tasks)))
		return nil, nil
	case tasks[0].CollectUID != collectUID:
		logger.Warn("processing task collect uid mismatch", zap.String("stored_collect_uid", tasks[0].CollectUID))
		return nil, nil
	}

	return &tasks[0], nil
}
