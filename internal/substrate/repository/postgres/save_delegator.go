package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/parastake-indexer/internal/substrate/model"
	"github.com/goodnatureofminers/parastake-indexer/internal/substrate/storage"
)

// SaveDelegator inserts one delegation row inside tx.
func (r *Repository) SaveDelegator(ctx context.Context, tx storage.Tx, delegator model.Delegator) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("save_delegator", err, start)
	}()

	payoutBlockID, err := optionalBlockID(delegator.PayoutBlockID)
	if err != nil {
		return fmt.Errorf("delegator %s payout block: %w", delegator.AccountID, err)
	}

	const query = `
INSERT INTO delegators (
	round_id,
	network_id,
	account_id,
	collator_id,
	amount,
	final_amount,
	reward,
	payout_block_id,
	payout_block_time
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	if _, err = tx.Exec(ctx, query,
		int64(delegator.RoundID),
		delegator.NetworkID,
		delegator.AccountID,
		delegator.CollatorID,
		numeric(delegator.Amount),
		numeric(delegator.FinalAmount),
		numeric(delegator.Reward),
		payoutBlockID,
		delegator.PayoutBlockTime,
	); err != nil {
		return fmt.Errorf("insert delegator %s of collator %s: %w", delegator.AccountID, delegator.CollatorID, err)
	}
	return nil
}
