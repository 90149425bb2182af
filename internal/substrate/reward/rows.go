package reward

import (
	"math/big"
	"time"

	"github.com/goodnatureofminers/parastake-indexer/internal/substrate/model"
)

// Rows converts the distribution into persisted rows. Every snapshot collator and counted delegation gets a row;
// rewards stay zero for accounts not paid in the round window.
func (d *Distribution) Rows(networkID int) (model.Round, []model.Collator, []model.Delegator) {
	round := model.Round{
		RoundID:                  d.RoundID,
		NetworkID:                networkID,
		PayoutBlockID:            d.PayoutBlockID,
		PayoutBlockTime:          d.PayoutBlockTime,
		StartBlockID:             d.StartBlockID,
		StartBlockTime:           d.StartBlockTime,
		TotalReward:              orZero(d.TotalRewardedAmount),
		TotalStake:               orZero(d.TotalStaked),
		TotalRewardPoints:        d.TotalPoints,
		Runtime:                  d.SpecVersion,
		TotalCollatorCommission:  orZero(d.TotalCollatorCommissionRewarded),
		TotalBondReward:          orZero(d.TotalBondRewarded),
		EstimatedBondRewardLoss:  d.EstimatedBondRewardLoss,
		ActualBondRewardLoss:     d.ActualBondRewardLoss,
		ReconciliationMismatches: d.Mismatches,
	}
	if d.Snapshot == nil {
		return round, nil, nil
	}
	round.CollatorsCount = len(d.Snapshot.Order)

	collators := make([]model.Collator, 0, len(d.Snapshot.Order))
	var delegators []model.Delegator
	for _, id := range d.Snapshot.Order {
		sv := d.Snapshot.Collators[id]

		collator := model.Collator{
			RoundID:           d.RoundID,
			NetworkID:         networkID,
			AccountID:         string(sv.ID),
			OwnStake:          new(big.Int).Set(sv.Bond),
			TotalStake:        new(big.Int).Set(sv.Total),
			DelegatorsCount:   len(sv.Delegators),
			TotalRewardPoints: sv.Points,
			TotalReward:       new(big.Int),
			CollatorReward:    new(big.Int),
		}
		var payoutTime *time.Time
		if sv.Payout != nil {
			t := sv.Payout.PayoutBlockTime
			payoutTime = &t
			collator.TotalReward.Set(sv.Payout.TotalCredited)
			collator.CollatorReward.Set(sv.Payout.Credited)
			collator.PayoutBlockID = sv.Payout.PayoutBlockID
			collator.PayoutBlockTime = payoutTime
		}
		collators = append(collators, collator)

		for _, delegatorID := range sv.DelegatorOrder {
			stake := sv.Delegators[delegatorID]
			delegator := model.Delegator{
				RoundID:         d.RoundID,
				NetworkID:       networkID,
				AccountID:       string(stake.ID),
				CollatorID:      string(sv.ID),
				Amount:          new(big.Int).Set(stake.Amount),
				FinalAmount:     new(big.Int).Set(stake.FinalAmount),
				Reward:          new(big.Int).Set(stake.Reward),
				PayoutBlockTime: payoutTime,
			}
			if sv.Payout != nil {
				delegator.PayoutBlockID = sv.Payout.PayoutBlockID
			}
			delegators = append(delegators, delegator)
		}
	}
	return round, collators, delegators
}

func orZero(v *big.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(v)
}
