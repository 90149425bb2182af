package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/parastake-indexer/internal/substrate/model"
)

func (r *Repository) InsertDelegators(ctx context.Context, delegators []model.Delegator) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("insert_delegators", err, start)
	}()

	if len(delegators) == 0 {
		return nil
	}

	const query = `
INSERT INTO staking_delegators (
	network_id,
	round_id,
	account_id,
	collator_id,
	amount,
	final_amount,
	reward,
	payout_block_id
) VALUES`

	rows, err := mapRows(delegators, delegatorRow)
	if err != nil {
		return fmt.Errorf("map delegators: %w", err)
	}
	if err = r.insert(ctx, query, rows); err != nil {
		return fmt.Errorf("insert delegators: %w", err)
	}
	return nil
}
