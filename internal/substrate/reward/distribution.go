package reward

import (
	"fmt"
	"math/big"

	"github.com/goodnatureofminers/parastake-indexer/internal/substrate/chain"
	"github.com/goodnatureofminers/parastake-indexer/pkg/perthing"
)

// reconcileFunc compares a credited amount with the computed one.
type reconcileFunc func(kind string, account chain.AccountID, credited, expected *big.Int) error

// distributor attributes Rewarded credits of payout blocks to the collators of a snapshot.
type distributor struct {
	snapshot           *Snapshot
	totalPoints        *big.Int
	totalStakingReward *big.Int
	commissionPool     *big.Int
	lossAccounting     bool
	reconcile          reconcileFunc
}

// distributeBlock returns the collators paid in the block, in credit order.
func (d *distributor) distributeBlock(block BlockCredits) ([]*CollatorPayout, error) {
	var (
		payouts    []*CollatorPayout
		current    *CollatorPayout
		currentSV  *StakedValue
		shareParts *big.Int
	)

	finish := func() {
		if current == nil || !d.lossAccounting {
			return
		}
		remaining := new(big.Int).Sub(perthing.BillionUnit, shareParts)
		current.EstimatedBondRewardLoss = perthing.Perbill(remaining).Of(current.BondReward)
		current.ActualBondRewardLoss = new(big.Int).Sub(current.BondReward, current.DistributedBondReward)
	}

	for _, credit := range block.Credits {
		if sv, ok := d.snapshot.Collators[credit.Account]; ok {
			finish()
			payout, parts, err := d.payCollator(sv, credit, block)
			if err != nil {
				return nil, err
			}
			current, currentSV, shareParts = payout, sv, parts
			payouts = append(payouts, payout)
			continue
		}

		if !d.snapshot.IsDelegator(credit.Account) {
			return nil, fmt.Errorf("%w: %s at block %d is neither collator nor delegator", ErrInvalidKey, credit.Account, block.BlockID)
		}
		if credit.Amount.Sign() == 0 {
			continue
		}
		if current == nil {
			return nil, fmt.Errorf("%w: delegator %s at block %d", ErrDelegatorBeforeCollator, credit.Account, block.BlockID)
		}
		stake, ok := currentSV.Delegators[credit.Account]
		if !ok {
			return nil, fmt.Errorf("%w: %s at block %d does not delegate to %s", ErrInvalidKey, credit.Account, block.BlockID, currentSV.ID)
		}

		bondShare, err := perthing.PerbillFromRational(stake.Amount, currentSV.Total)
		if err != nil {
			return nil, fmt.Errorf("delegator %s bond share: %w", credit.Account, err)
		}
		delegatorReward := bondShare.Of(current.BondReward)
		shareParts.Add(shareParts, bondShare.Parts())
		current.DistributedBondReward.Add(current.DistributedBondReward, delegatorReward)
		current.TotalCredited.Add(current.TotalCredited, credit.Amount)

		if err := d.reconcile("delegator", credit.Account, credit.Amount, delegatorReward); err != nil {
			return nil, err
		}

		stake.Reward = new(big.Int).Set(delegatorReward)
		current.Delegators = append(current.Delegators, DelegatorPayout{
			Delegator: credit.Account,
			Credited:  new(big.Int).Set(credit.Amount),
			Reward:    delegatorReward,
		})
	}
	finish()

	return payouts, nil
}

func (d *distributor) payCollator(sv *StakedValue, credit Credit, block BlockCredits) (*CollatorPayout, *big.Int, error) {
	pointsShare, err := perthing.PerbillFromRational(new(big.Int).SetUint64(uint64(sv.Points)), d.totalPoints)
	if err != nil {
		return nil, nil, fmt.Errorf("collator %s points share: %w", sv.ID, err)
	}

	gross := pointsShare.Of(d.totalStakingReward)
	commission := pointsShare.Of(d.commissionPool)
	bondReward := new(big.Int).Sub(gross, commission)

	payout := &CollatorPayout{
		Collator:         sv.ID,
		PayoutBlockID:    block.BlockID,
		PayoutBlockTime:  block.BlockTime,
		PointsShare:      pointsShare,
		GrossReward:      gross,
		CommissionReward: commission,
		BondReward:       bondReward,
		Credited:         new(big.Int).Set(credit.Amount),
		TotalCredited:    new(big.Int).Set(credit.Amount),
	}

	var expected *big.Int
	shareParts := new(big.Int)
	if len(sv.Delegators) == 0 {
		payout.OwnBondReward = new(big.Int).Set(bondReward)
		shareParts.Set(perthing.BillionUnit)
		expected = gross
	} else {
		bondShare, err := perthing.PerbillFromRational(sv.Bond, sv.Total)
		if err != nil {
			return nil, nil, fmt.Errorf("collator %s bond share: %w", sv.ID, err)
		}
		payout.OwnBondReward = bondShare.Of(bondReward)
		shareParts.Set(bondShare.Parts())
		expected = new(big.Int).Add(payout.OwnBondReward, commission)
	}
	payout.DistributedBondReward = new(big.Int).Set(payout.OwnBondReward)

	if err := d.reconcile("collator", sv.ID, credit.Amount, expected); err != nil {
		return nil, nil, err
	}

	sv.Payout = payout
	return payout, shareParts, nil
}

// dedupeCredits keeps the first position and the last amount of a repeated account.
func dedupeCredits(events []chain.StakingEvent) []Credit {
	index := make(map[chain.AccountID]int)
	credits := make([]Credit, 0, len(events))
	for _, ev := range events {
		if ev.Kind != chain.EventRewarded || ev.Phase != chain.PhaseInitialization {
			continue
		}
		amount := new(big.Int)
		if ev.Amount != nil {
			amount.Set(ev.Amount)
		}
		if i, ok := index[ev.Account]; ok {
			credits[i].Amount = amount
			continue
		}
		index[ev.Account] = len(credits)
		credits = append(credits, Credit{Account: ev.Account, Amount: amount})
	}
	return credits
}
