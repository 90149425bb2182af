package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/parastake-indexer/internal/substrate/model"
	"github.com/jackc/pgx/v5"
)

const (
	// firstCheckedRound is the first round a network can pay out.
	firstCheckedRound = 3
	// missingRoundsLag leaves the newest scheduled rounds to the processor.
	missingRoundsLag = 3
)

// MissingRounds returns up to limit round ids, lowest first, between the first payable round and
// the newest scheduled round task (minus a lag) that have no stored round.
func (r *Repository) MissingRounds(ctx context.Context, limit int) ([]int64, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("missing_rounds", err, start)
	}()

	const query = `
SELECT missing_round
FROM generate_series(
	$1::BIGINT,
	(SELECT COALESCE(MAX(entity_id), 0) FROM processing_tasks WHERE entity = $2 AND network_id = $3) - $4::BIGINT
) AS missing_round
EXCEPT
SELECT round_id
FROM rounds
WHERE network_id = $3
ORDER BY missing_round
LIMIT $5`

	rows, err := r.pool.Query(ctx, query, int64(firstCheckedRound), string(model.EntityRound), r.network.ID, int64(missingRoundsLag), limit)
	if err != nil {
		return nil, fmt.Errorf("query missing rounds: %w", err)
	}
	missing, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, fmt.Errorf("collect missing rounds: %w", err)
	}
	return missing, nil
}
