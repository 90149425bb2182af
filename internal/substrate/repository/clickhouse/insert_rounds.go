package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/parastake-indexer/internal/substrate/model"
)

// InsertRounds stores round rows. Re-inserted rounds replace older versions on merge.
func (r *Repository) InsertRounds(ctx context.Context, rounds []model.Round) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("insert_rounds", err, start)
	}()

	if len(rounds) == 0 {
		return nil
	}

	const query = `
INSERT INTO staking_rounds (
	network_id,
	round_id,
	payout_block_id,
	payout_block_time,
	start_block_id,
	start_block_time,
	total_reward,
	total_stake,
	total_reward_points,
	collators_count,
	runtime,
	reconciliation_mismatches
) VALUES`

	rows, err := mapRows(rounds, roundRow)
	if err != nil {
		return fmt.Errorf("map rounds: %w", err)
	}
	if err = r.insert(ctx, query, rows); err != nil {
		return fmt.Errorf("insert rounds: %w", err)
	}
	return nil
}
