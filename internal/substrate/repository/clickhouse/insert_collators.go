package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/parastake-indexer/internal/substrate/model"
)

// InsertCollators stores collator rows.
func (r *Repository) InsertCollators(ctx context.Context, collators []model.Collator) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("insert_collators", err, start)
	}()

	if len(collators) == 0 {
		return nil
	}

	const query = `
INSERT INTO staking_collators (
	network_id,
	round_id,
	account_id,
	own_stake,
	total_stake,
	delegators_count,
	total_reward_points,
	total_reward,
	collator_reward,
	payout_block_id
) VALUES`

	rows, err := mapRows(collators, collatorRow)
	if err != nil {
		return fmt.Errorf("map collators: %w", err)
	}
	if err = r.insert(ctx, query, rows); err != nil {
		return fmt.Errorf("insert collators: %w", err)
	}
	return nil
}
