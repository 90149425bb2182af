package reward

import (
	"math/big"

	"github.com/goodnatureofminers/parastake-indexer/internal/substrate/chain"
	"github.com/goodnatureofminers/parastake-indexer/pkg/perthing"
)

// RoundIssuance picks the round issuance for the staked amount: min below the expected band,
// max above it, ideal inside it.
func RoundIssuance(cfg chain.InflationConfig, staked, totalIssuance *big.Int) *big.Int {
	perRound := func(parts uint32) *big.Int {
		return perthing.Perbill(new(big.Int).SetUint64(uint64(parts))).Of(totalIssuance)
	}

	switch {
	case cfg.Expect.Min != nil && staked.Cmp(cfg.Expect.Min) < 0:
		return perRound(cfg.Round.Min)
	case cfg.Expect.Max != nil && staked.Cmp(cfg.Expect.Max) > 0:
		return perRound(cfg.Round.Max)
	default:
		return perRound(cfg.Round.Ideal)
	}
}

// CommissionSplit splits issuance into the collator commission pool and the bond reward pool.
func CommissionSplit(issuance *big.Int, commission uint32) (commissionPool, bondRewardPool *big.Int) {
	commissionPool = perthing.Perbill(new(big.Int).SetUint64(uint64(commission))).Of(issuance)
	bondRewardPool = new(big.Int).Sub(issuance, commissionPool)
	return commissionPool, bondRewardPool
}

// StakingReward deducts the treasury bond share from issuance when an amount was reserved for it.
// treasuryShare is the computed share regardless of the reservation.
func StakingReward(issuance *big.Int, bondPercent uint8, reserved *big.Int) (stakingReward, treasuryShare *big.Int) {
	treasuryShare = perthing.Percent(big.NewInt(int64(bondPercent))).Of(issuance)
	if reserved == nil || reserved.Sign() == 0 {
		return new(big.Int).Set(issuance), treasuryShare
	}
	return new(big.Int).Sub(issuance, treasuryShare), treasuryShare
}
