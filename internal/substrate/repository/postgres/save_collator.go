package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/parastake-indexer/internal/substrate/model"
	"github.com/goodnatureofminers/parastake-indexer/internal/substrate/storage"
)

// SaveCollator inserts one collator row inside tx.
func (r *Repository) SaveCollator(ctx context.Context, tx storage.Tx, collator model.Collator) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("save_collator", err, start)
	}()

	payoutBlockID, err := optionalBlockID(collator.PayoutBlockID)
	if err != nil {
		return fmt.Errorf("collator %s payout block: %w", collator.AccountID, err)
	}

	const query = `
INSERT INTO collators (
	round_id,
	network_id,
	account_id,
	own_stake,
	total_stake,
	delegators_count,
	total_reward_points,
	total_reward,
	collator_reward,
	payout_block_id,
	payout_block_time
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	if _, err = tx.Exec(ctx, query,
		int64(collator.RoundID),
		collator.NetworkID,
		collator.AccountID,
		numeric(collator.OwnStake),
		numeric(collator.TotalStake),
		collator.DelegatorsCount,
		int64(collator.TotalRewardPoints),
		numeric(collator.TotalReward),
		numeric(collator.CollatorReward),
		payoutBlockID,
		collator.PayoutBlockTime,
	); err != nil {
		return fmt.Errorf("insert collator %s of round %d: %w", collator.AccountID, collator.RoundID, err)
	}
	return nil
}
