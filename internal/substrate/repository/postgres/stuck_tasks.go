package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/parastake-indexer/internal/substrate/model"
)

// StuckTasks returns not processed tasks scheduled before now minus olderThan, oldest first.
func (r *Repository) StuckTasks(ctx context.Context, entity model.Entity, olderThan time.Duration, limit int) ([]model.ProcessingTask, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("stuck_tasks", err, start)
	}()

	query := `
SELECT ` + taskColumns + `
FROM processing_tasks
WHERE entity = $1
  AND network_id = $2
  AND status = $3
  AND finish_timestamp IS NULL
  AND start_timestamp < $4
ORDER BY start_timestamp
LIMIT $5`

	cutoff := start.Add(-olderThan)
	rows, err := r.pool.Query(ctx, query, string(entity), r.network.ID, string(model.TaskNotProcessed), cutoff, limit)
	if err != nil {
		return nil, fmt.Errorf("query stuck tasks: %w", err)
	}
	tasks, err := collectTasks(rows)
	if err != nil {
		return nil, err
	}
	return tasks, nil
}
