package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/parastake-indexer/internal/substrate/model"
	"github.com/goodnatureofminers/parastake-indexer/internal/substrate/storage"
)

// SaveRound inserts the round aggregate inside tx.
func (r *Repository) SaveRound(ctx context.Context, tx storage.Tx, round model.Round) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("save_round", err, start)
	}()

	payoutBlockID, err := blockID(round.PayoutBlockID)
	if err != nil {
		return fmt.Errorf("round %d payout block: %w", round.RoundID, err)
	}
	startBlockID, err := blockID(round.StartBlockID)
	if err != nil {
		return fmt.Errorf("round %d start block: %w", round.RoundID, err)
	}

	const query = `
INSERT INTO rounds (
	round_id,
	network_id,
	payout_block_id,
	payout_block_time,
	start_block_id,
	start_block_time,
	total_reward,
	total_stake,
	total_reward_points,
	collators_count,
	runtime,
	total_collator_commission,
	total_bond_reward,
	estimated_bond_reward_loss,
	actual_bond_reward_loss,
	reconciliation_mismatches
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`

	if _, err = tx.Exec(ctx, query,
		int64(round.RoundID),
		round.NetworkID,
		payoutBlockID,
		round.PayoutBlockTime,
		startBlockID,
		round.StartBlockTime,
		numeric(round.TotalReward),
		numeric(round.TotalStake),
		int64(round.TotalRewardPoints),
		round.CollatorsCount,
		int64(round.Runtime),
		numeric(round.TotalCollatorCommission),
		numeric(round.TotalBondReward),
		numeric(round.EstimatedBondRewardLoss),
		numeric(round.ActualBondRewardLoss),
		round.ReconciliationMismatches,
	); err != nil {
		return fmt.Errorf("insert round %d: %w", round.RoundID, err)
	}
	return nil
}
