package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/parastake-indexer/internal/substrate/model"
	"github.com/jackc/pgx/v5"
)

// FindLastEntityID returns the entity id of the newest task of the kind, or -1 when there is none.
func (r *Repository) FindLastEntityID(ctx context.Context, entity model.Entity) (int64, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("find_last_entity_id", err, start)
	}()

	const query = `
SELECT entity_id
FROM processing_tasks
WHERE entity = $1
  AND network_id = $2
ORDER BY row_id DESC
LIMIT 1`

	var id int64
	err = r.pool.QueryRow(ctx, query, string(entity), r.network.ID).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		err = nil
		return -1, nil
	}
	if err != nil {
		return 0, fmt.Errorf("query last entity id: %w", err)
	}
	return id, nil
}
