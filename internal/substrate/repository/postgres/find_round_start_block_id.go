package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/parastake-indexer/internal/substrate/storage"
	"github.com/goodnatureofminers/parastake-indexer/pkg/safe"
	"github.com/jackc/pgx/v5"
)

// FindRoundStartBlockID returns the payout block of the round before roundID, or 0 when that round
// is not stored.
func (r *Repository) FindRoundStartBlockID(ctx context.Context, tx storage.Tx, roundID uint32) (uint64, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("find_round_start_block_id", err, start)
	}()

	if roundID == 0 {
		return 0, nil
	}

	const query = `
SELECT payout_block_id
FROM rounds
WHERE round_id = $1
  AND network_id = $2
ORDER BY payout_block_id DESC
LIMIT 1`

	var id int64
	err = tx.QueryRow(ctx, query, int64(roundID-1), r.network.ID).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		err = nil
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("query start block of round %d: %w", roundID, err)
	}

	block, err := safe.Uint64(id)
	if err != nil {
		return 0, fmt.Errorf("start block of round %d: %w", roundID, err)
	}
	return block, nil
}
