package clickhouse

import (
	"fmt"
	"math/big"

	"github.com/goodnatureofminers/parastake-indexer/internal/substrate/model"
	"github.com/goodnatureofminers/parastake-indexer/pkg/safe"
	"github.com/shopspring/decimal"
)

// amount converts a planck amount for a Decimal(76, 0) column. nil is stored as zero.
func amount(v *big.Int) decimal.Decimal {
	if v == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(v, 0)
}

func roundRow(r model.Round) ([]any, error) {
	networkID, err := safe.Uint32(r.NetworkID)
	if err != nil {
		return nil, fmt.Errorf("network id: %w", err)
	}
	collators, err := safe.Uint32(r.CollatorsCount)
	if err != nil {
		return nil, fmt.Errorf("collators count: %w", err)
	}
	mismatches, err := safe.Uint32(r.ReconciliationMismatches)
	if err != nil {
		return nil, fmt.Errorf("reconciliation mismatches: %w", err)
	}

	return []any{
		networkID,
		r.RoundID,
		r.PayoutBlockID,
		r.PayoutBlockTime,
		r.StartBlockID,
		r.StartBlockTime,
		amount(r.TotalReward),
		amount(r.TotalStake),
		r.TotalRewardPoints,
		collators,
		r.Runtime,
		mismatches,
	}, nil
}

func collatorRow(c model.Collator) ([]any, error) {
	networkID, err := safe.Uint32(c.NetworkID)
	if err != nil {
		return nil, fmt.Errorf("network id: %w", err)
	}
	delegators, err := safe.Uint32(c.DelegatorsCount)
	if err != nil {
		return nil, fmt.Errorf("delegators count: %w", err)
	}

	return []any{
		networkID,
		c.RoundID,
		c.AccountID,
		amount(c.OwnStake),
		amount(c.TotalStake),
		delegators,
		c.TotalRewardPoints,
		amount(c.TotalReward),
		amount(c.CollatorReward),
		c.PayoutBlockID,
	}, nil
}

func delegatorRow(d model.Delegator) ([]any, error) {
	networkID, err := safe.Uint32(d.NetworkID)
	if err != nil {
		return nil, fmt.Errorf("network id: %w", err)
	}

	return []any{
		networkID,
		d.RoundID,
		d.AccountID,
		d.CollatorID,
		amount(d.Amount),
		amount(d.FinalAmount),
		amount(d.Reward),
		d.PayoutBlockID,
	}, nil
}

func mapRows[T any](items []T, row func(T) ([]any, error)) ([][]any, error) {
	rows := make([][]any, 0, len(items))
	for i, item := range items {
		values, err := row(item)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		rows = append(rows, values)
	}
	return rows, nil
}
