package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/parastake-indexer/internal/substrate/model"
)

// IncreaseAttempts counts one delivery of a task message.
func (r *Repository) IncreaseAttempts(ctx context.Context, entity model.Entity, entityID int64, collectUID string) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("increase_attempts", err, start)
	}()

	const query = `
UPDATE processing_tasks
SET attempts = attempts + 1
WHERE entity = $1
  AND entity_id = $2
  AND collect_uid = $3
  AND network_id = $4`

	if _, err = r.pool.Exec(ctx, query, string(entity), entityID, collectUID, r.network.ID); err != nil {
		return fmt.Errorf("increase attempts: %w", err)
	}
	return nil
}
